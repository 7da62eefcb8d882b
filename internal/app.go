package internal

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lk16/reversi/internal/config"
	"github.com/lk16/reversi/internal/games"
	"github.com/lk16/reversi/internal/middleware"
	"github.com/lk16/reversi/internal/repository"
	"github.com/lk16/reversi/internal/routes"
	"github.com/lk16/reversi/internal/services"
)

const (
	defaultConcurrency  = 256 * 1024 // Maximum number of concurrent connections per worker
	defaultReadTimeout  = 10 * time.Second
	defaultWriteTimeout = 10 * time.Second
	defaultIdleTimeout  = 5 * time.Second
	defaultBodyLimit    = 64 * 1024
	migrateTimeout      = 10 * time.Second
)

// SetupApp connects to the configured services, prepares the archive and
// builds the app. The returned Services must be closed by the caller.
func SetupApp(cfg *config.ServerConfig) (*fiber.App, *services.Services, error) {
	svc, err := services.InitServices(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), migrateTimeout)
	defer cancel()

	if err = repository.NewArchiveRepository(svc.Archive).Migrate(ctx); err != nil {
		_ = svc.Close()
		return nil, nil, err
	}

	manager := games.NewManagerFromServices(svc, cfg.GameTTL)

	return BuildApp(cfg, manager), svc, nil
}

// BuildApp creates the Fiber app serving manager.
func BuildApp(cfg *config.ServerConfig, manager *games.Manager) *fiber.App {
	app := fiber.New(fiber.Config{
		Prefork:      cfg.Prefork,
		Concurrency:  defaultConcurrency,
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
		IdleTimeout:  defaultIdleTimeout,
		BodyLimit:    defaultBodyLimit,
	})

	// Make the game manager and config available to handlers
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("games", manager)
		c.Locals("config", cfg)
		return c.Next()
	})

	// Add logging middleware
	app.Use(middleware.Logging())

	// Setup all routes
	routes.SetupRoutes(app)

	return app
}
