package config

import (
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/adrg/xdg"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	archiveFile      = "reversi/archive.db"
	defaultGameTTL   = 24 * time.Hour
	defaultServerURL = "http://localhost:3000"
)

// ServerConfig holds all configuration values loaded from environment variables.
type ServerConfig struct {
	ServerHost     string
	ServerPort     string
	Prefork        bool
	Token          string
	RedisURL       string
	DatabaseDriver string
	DatabaseURL    string
	GameTTL        time.Duration
}

// LoadServerConfig loads configuration from environment variables.
func LoadServerConfig() *ServerConfig {
	driver := getEnvDefault("REVERSI_DATABASE_DRIVER", DriverSQLite)
	if driver != DriverPostgres && driver != DriverSQLite {
		slog.Error("Unsupported database driver", "driver", driver)
		os.Exit(1)
	}

	databaseURL := os.Getenv("REVERSI_DATABASE_URL")
	if databaseURL == "" {
		if driver == DriverPostgres {
			slog.Error("Environment variable is not set", "key", "REVERSI_DATABASE_URL")
			os.Exit(1)
		}

		path, err := DefaultArchivePath()
		if err != nil {
			slog.Error("Cannot determine archive location", "error", err)
			os.Exit(1)
		}
		databaseURL = path
	}

	cfg := &ServerConfig{
		ServerHost:     getEnvMust("REVERSI_SERVER_HOST"),
		ServerPort:     getEnvMust("REVERSI_SERVER_PORT"),
		Prefork:        getEnvDefault("REVERSI_SERVER_PREFORK", "false") == "true",
		Token:          os.Getenv("REVERSI_TOKEN"),
		RedisURL:       os.Getenv("REVERSI_REDIS_URL"),
		DatabaseDriver: driver,
		DatabaseURL:    databaseURL,
		GameTTL:        getEnvDuration("REVERSI_GAME_TTL", defaultGameTTL),
	}

	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid server configuration", "error", err)
		os.Exit(1)
	}

	return cfg
}

// Validate checks settings that are only invalid in combination.
func (cfg *ServerConfig) Validate() error {
	// Forked processes do not share memory, so live games must be in Redis.
	if cfg.Prefork && cfg.RedisURL == "" {
		return errors.New("REVERSI_SERVER_PREFORK requires REVERSI_REDIS_URL")
	}
	return nil
}

// ClientConfig describes how to reach a running server.
type ClientConfig struct {
	ServerURL string
	Token     string
}

// LoadClientConfig loads the client configuration from environment variables.
func LoadClientConfig() *ClientConfig {
	return &ClientConfig{
		ServerURL: getEnvDefault("REVERSI_SERVER_URL", defaultServerURL),
		Token:     os.Getenv("REVERSI_TOKEN"),
	}
}

// DefaultArchivePath returns the sqlite archive location inside the XDG data
// directory, creating parent directories as needed.
func DefaultArchivePath() (string, error) {
	return xdg.DataFile(archiveFile)
}

// getEnvMust either returns the environment variable or logs a fatal error if it is not set.
func getEnvMust(key string) string {
	value := os.Getenv(key)
	if value == "" {
		slog.Error("Environment variable is not set", "key", key)
		os.Exit(1)
	}
	return value
}

func getEnvDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	duration, err := time.ParseDuration(value)
	if err != nil || duration <= 0 {
		slog.Error("Cannot load environment variable, it must be a positive duration", "key", key, "value", value)
		os.Exit(1)
	}

	return duration
}
