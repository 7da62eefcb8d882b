package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lk16/reversi/internal/models"
	"github.com/lk16/reversi/internal/othello"
)

// CreateGame starts a new game, optionally from an encoded position.
func CreateGame(c *fiber.Ctx) error {
	var req models.CreateGameRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid request body",
			})
		}
	}

	game, err := getManager(c).Create(c.Context(), req.Position)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(game.Response())
}

// GetGame returns the current state of a game.
func GetGame(c *fiber.Ctx) error {
	game, err := getManager(c).Get(c.Context(), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(game.Response())
}

// PlayMove plays a move in a game.
func PlayMove(c *fiber.Ctx) error {
	var req models.MoveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.Side == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing side",
		})
	}

	game, err := getManager(c).Play(c.Context(), c.Params("id"), *req.Side, req.Coordinate)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(game.Response())
}

// GetLegalMoves lists the legal moves of the side given in the query string.
func GetLegalMoves(c *fiber.Ctx) error {
	side, err := othello.ParseSide(c.Query("side"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	moves, err := getManager(c).LegalMoves(c.Context(), c.Params("id"), side)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(moves)
}
