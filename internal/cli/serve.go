package cli

import (
	"fmt"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/lk16/reversi/internal"
	"github.com/lk16/reversi/internal/config"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var envFile string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the game server",
		Long: `Run the HTTP and websocket game server.

Configuration is read from REVERSI_* environment variables, see
REVERSI_SERVER_HOST, REVERSI_SERVER_PORT and REVERSI_DATABASE_URL.
Variables from --env-file do not override the environment.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := loadEnvFile(envFile); err != nil {
				return err
			}
			return runServe()
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", "", "Load environment variables from this file")

	return cmd
}

func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}

	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load env file: %w", err)
	}
	return nil
}

func runServe() error {
	config.SetLogLevel()

	cfg := config.LoadServerConfig()

	app, svc, err := internal.SetupApp(cfg)
	if err != nil {
		return err
	}

	defer func() {
		if err := svc.Close(); err != nil {
			slog.Error("Failed to close services", "error", err)
		}
	}()

	address := cfg.ServerHost + ":" + cfg.ServerPort
	slog.Info("Starting server", "address", address, "database", cfg.DatabaseDriver, "redis", cfg.RedisURL != "")

	return app.Listen(address)
}
