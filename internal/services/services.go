package services

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lk16/reversi/internal/config"
	"github.com/redis/go-redis/v9"
)

// Services contains the connections to the external services.
type Services struct {
	// Archive is the database finished games are written to.
	Archive *sqlx.DB

	// Redis stores live games. It is nil when no Redis URL is configured.
	Redis *redis.Client
}

func InitServices(cfg *config.ServerConfig) (*Services, error) {
	archive, err := InitDatabase(cfg.DatabaseDriver, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = InitRedis(cfg.RedisURL)
		if err != nil {
			_ = archive.Close()
			return nil, err
		}
	}

	return &Services{
		Archive: archive,
		Redis:   redisClient,
	}, nil
}

// Close closes all connections.
func (s *Services) Close() error {
	var redisErr error
	if s.Redis != nil {
		redisErr = s.Redis.Close()
	}

	if err := s.Archive.Close(); err != nil {
		return fmt.Errorf("error closing archive: %w", err)
	}

	if redisErr != nil {
		return fmt.Errorf("error closing Redis: %w", redisErr)
	}

	return nil
}
