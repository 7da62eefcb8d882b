package middleware //nolint:testpackage

import (
	"bytes"
	"net/http"
	"regexp"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func TestLogging(t *testing.T) {
	var buf bytes.Buffer

	app := fiber.New()
	app.Use(LoggingTo(&buf))
	app.Get("/games/:id", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNotFound)
	})

	req, err := http.NewRequest(http.MethodGet, "/games/abc", nil)
	require.NoError(t, err)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.Regexp(t,
		regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2} \| 404 \| +\d+\.\dms \| GET \| /games/abc\n$`),
		buf.String(),
	)
}
