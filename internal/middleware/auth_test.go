package middleware //nolint:testpackage

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/lk16/reversi/internal/config"
	"github.com/stretchr/testify/require"
)

func TestToken(t *testing.T) {
	tests := []struct {
		name           string
		configured     string
		sent           string
		wantStatusCode int
	}{
		{"no token configured", "", "", http.StatusOK},
		{"missing token", "secret", "", http.StatusUnauthorized},
		{"wrong token", "secret", "guess", http.StatusUnauthorized},
		{"valid token", "secret", "secret", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.ServerConfig{Token: tt.configured}

			app := fiber.New()
			app.Use(func(c *fiber.Ctx) error {
				c.Locals("config", cfg)
				return c.Next()
			})
			app.Get("/", Token(), func(c *fiber.Ctx) error {
				return c.SendStatus(fiber.StatusOK)
			})

			req, err := http.NewRequest(http.MethodGet, "/", nil)
			require.NoError(t, err)
			if tt.sent != "" {
				req.Header.Set("x-token", tt.sent)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			require.Equal(t, tt.wantStatusCode, resp.StatusCode)
		})
	}
}
