// Package tests holds helpers shared by the HTTP tests.
package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lk16/reversi/internal"
	"github.com/lk16/reversi/internal/config"
	"github.com/lk16/reversi/internal/games"
	"github.com/lk16/reversi/internal/repository"
	"github.com/lk16/reversi/internal/services"
	"github.com/stretchr/testify/require"
)

const TestToken = "test-token"

// NewApp builds an app backed by in-memory storage and an in-memory sqlite
// archive. Requests to /api need TestToken when withToken is set.
func NewApp(t *testing.T, withToken bool) *fiber.App {
	t.Helper()

	cfg := &config.ServerConfig{
		ServerHost:     "localhost",
		ServerPort:     "3000",
		DatabaseDriver: config.DriverSQLite,
		DatabaseURL:    ":memory:",
		GameTTL:        time.Hour,
	}

	if withToken {
		cfg.Token = TestToken
	}

	db, err := services.InitDatabase(cfg.DatabaseDriver, cfg.DatabaseURL)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, repository.NewArchiveRepository(db).Migrate(context.Background()))

	manager := games.NewManagerFromServices(&services.Services{Archive: db}, cfg.GameTTL)

	return internal.BuildApp(cfg, manager)
}

// Do sends a request with an optional JSON body and token to app.
func Do(t *testing.T, app *fiber.App, method, path string, body any, token string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if token != "" {
		req.Header.Set("x-token", token)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	t.Cleanup(func() { _ = resp.Body.Close() })

	return resp
}

// Decode decodes a JSON response body into v.
func Decode(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

// Serve starts app on a random local port and returns its base URL.
func Serve(t *testing.T, app *fiber.App) string {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	go func() { _ = app.Listener(ln) }()
	t.Cleanup(func() { _ = app.Shutdown() })

	return "http://" + ln.Addr().String()
}
