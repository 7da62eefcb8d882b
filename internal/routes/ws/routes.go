package ws

import (
	"log/slog"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/lk16/reversi/internal/games"
	"github.com/lk16/reversi/internal/middleware"
	"github.com/lk16/reversi/internal/ws"
)

func handleWs(c *websocket.Conn) {
	manager := c.Locals("games").(*games.Manager) //nolint: errcheck

	h := ws.NewHandler(c, manager)
	err := h.Handle()
	if err != nil {
		slog.Error("ws handle error", "error", err)
	}
}

// upgradeOnly rejects plain HTTP requests to the websocket endpoint.
func upgradeOnly(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// SetupRoutes sets up the routes for the websocket. The websocket creates and
// plays games, so it is guarded by the same token as /api.
func SetupRoutes(app *fiber.App) {
	app.Get("/ws", middleware.Token(), upgradeOnly, websocket.New(handleWs))
}
