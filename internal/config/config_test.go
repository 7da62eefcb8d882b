package config //nolint:testpackage

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{input: "", want: slog.LevelInfo},
		{input: "debug", want: slog.LevelDebug},
		{input: "INFO", want: slog.LevelInfo},
		{input: "Warn", want: slog.LevelWarn},
		{input: "ERROR", want: slog.LevelError},
		{input: "verbose", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, err := ParseLogLevel(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, level)
		})
	}
}

func TestLoadServerConfig(t *testing.T) {
	t.Setenv("REVERSI_SERVER_HOST", "localhost")
	t.Setenv("REVERSI_SERVER_PORT", "3000")
	t.Setenv("REVERSI_DATABASE_DRIVER", "sqlite")
	t.Setenv("REVERSI_DATABASE_URL", ":memory:")
	t.Setenv("REVERSI_GAME_TTL", "90m")
	t.Setenv("REVERSI_TOKEN", "")
	t.Setenv("REVERSI_REDIS_URL", "")
	t.Setenv("REVERSI_SERVER_PREFORK", "")

	cfg := LoadServerConfig()

	require.Equal(t, "localhost", cfg.ServerHost)
	require.Equal(t, "3000", cfg.ServerPort)
	require.False(t, cfg.Prefork)
	require.Equal(t, DriverSQLite, cfg.DatabaseDriver)
	require.Equal(t, ":memory:", cfg.DatabaseURL)
	require.Equal(t, "1h30m0s", cfg.GameTTL.String())
	require.Empty(t, cfg.RedisURL)
}

func TestLoadClientConfig(t *testing.T) {
	t.Setenv("REVERSI_SERVER_URL", "")
	t.Setenv("REVERSI_TOKEN", "secret")

	cfg := LoadClientConfig()
	require.Equal(t, "http://localhost:3000", cfg.ServerURL)
	require.Equal(t, "secret", cfg.Token)

	t.Setenv("REVERSI_SERVER_URL", "http://example.com:8080")
	require.Equal(t, "http://example.com:8080", LoadClientConfig().ServerURL)
}

func TestServerConfigValidate(t *testing.T) {
	tests := []struct {
		name     string
		prefork  bool
		redisURL string
		wantErr  bool
	}{
		{name: "single process in memory"},
		{name: "single process with redis", redisURL: "redis://localhost:6379"},
		{name: "prefork with redis", prefork: true, redisURL: "redis://localhost:6379"},
		{name: "prefork in memory", prefork: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &ServerConfig{Prefork: tt.prefork, RedisURL: tt.redisURL}

			err := cfg.Validate()
			if tt.wantErr {
				require.ErrorContains(t, err, "REVERSI_REDIS_URL")
				return
			}
			require.NoError(t, err)
		})
	}
}
