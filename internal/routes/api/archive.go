package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lk16/reversi/internal/repository"
)

// ListArchive returns the most recently finished games.
func ListArchive(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", repository.DefaultArchiveListLimit)

	archived, err := getManager(c).Archived(c.Context(), limit)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(archived)
}

// GetArchivedGame returns a finished game with its final position.
func GetArchivedGame(c *fiber.Ctx) error {
	archived, err := getManager(c).ArchivedGame(c.Context(), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(archived)
}
