package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lk16/reversi/internal/models"
	"github.com/lk16/reversi/internal/othello"
)

// DecodePosition decodes an encoded position and describes it.
func DecodePosition(c *fiber.Ctx) error {
	var payload models.PositionPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	board, err := othello.NewBoardFromEncoded(payload.Position)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(models.NewPositionResponse(board))
}
