package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/lk16/reversi/internal/games"
	"github.com/lk16/reversi/internal/middleware"
	"github.com/lk16/reversi/internal/othello"
	"github.com/lk16/reversi/internal/repository"
)

// SetupRoutes sets up the API routes.
func SetupRoutes(app *fiber.App) {
	apiGroup := app.Group("/api", middleware.Token())

	// Game routes
	apiGroup.Post("/games", CreateGame)
	apiGroup.Get("/games/:id", GetGame)
	apiGroup.Post("/games/:id/moves", PlayMove)
	apiGroup.Get("/games/:id/legal-moves", GetLegalMoves)

	// Archive routes
	apiGroup.Get("/archive", ListArchive)
	apiGroup.Get("/archive/:id", GetArchivedGame)

	// Position routes
	apiGroup.Post("/positions/decode", DecodePosition)
}

func getManager(c *fiber.Ctx) *games.Manager {
	return c.Locals("games").(*games.Manager) //nolint: errcheck
}

// errorResponse maps domain errors to a status code and writes the error body.
func errorResponse(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError

	switch {
	case errors.Is(err, othello.ErrFormat):
		status = fiber.StatusBadRequest
	case errors.Is(err, repository.ErrGameNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, games.ErrIllegalMove):
		status = fiber.StatusUnprocessableEntity
	}

	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}
