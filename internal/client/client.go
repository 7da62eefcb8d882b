// Package client talks to a running reversi server over its HTTP API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/lk16/reversi/internal/config"
	"github.com/lk16/reversi/internal/models"
	"github.com/lk16/reversi/internal/othello"
)

const (
	clientTimeout = 5 * time.Second
)

// APIError is returned when the server answers with a non-2xx status.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("server returned status %d: %s", e.StatusCode, e.Message)
}

type Client struct {
	// config contains details on how to connect to the server
	config *config.ClientConfig

	http *http.Client
}

func NewClient(cfg *config.ClientConfig) *Client {
	return &Client{
		config: cfg,
		http: &http.Client{
			Timeout: clientTimeout,
		},
	}
}

func (c *Client) logRequestAsCurl(req *http.Request) {
	// Do not build string if we're not logging it
	if !slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		return
	}

	var builder strings.Builder
	builder.WriteString("curl -X ")
	builder.WriteString(req.Method)
	builder.WriteString(" '")
	builder.WriteString(req.URL.String())
	builder.WriteString("'")

	for key, values := range req.Header {
		if strings.EqualFold(key, "x-token") {
			builder.WriteString(" -H 'x-token: ***'")
			continue
		}

		for _, value := range values {
			builder.WriteString(" -H '")
			builder.WriteString(strings.ToLower(key))
			builder.WriteString(": ")
			builder.WriteString(value)
			builder.WriteString("'")
		}
	}

	if req.GetBody != nil {
		body, err := req.GetBody()
		if err == nil {
			payload, _ := io.ReadAll(body)
			if len(payload) > 0 {
				builder.WriteString(" -d '")
				builder.WriteString(strings.ReplaceAll(strings.TrimSpace(string(payload)), "'", "'\\''"))
				builder.WriteString("'")
			}
		}
	}

	slog.Debug("Sending request", "command", builder.String())
}

// do sends a request and decodes a successful JSON response into out.
func (c *Client) do(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader = http.NoBody

	if payload != nil {
		buf := &bytes.Buffer{}
		if err := json.NewEncoder(buf).Encode(payload); err != nil {
			return fmt.Errorf("failed to encode payload: %w", err)
		}
		body = buf
	}

	req, err := http.NewRequestWithContext(ctx, method, strings.TrimRight(c.config.ServerURL, "/")+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.config.Token != "" {
		req.Header.Set("X-Token", c.config.Token)
	}

	c.logRequestAsCurl(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	slog.Debug("Response", "status", resp.Status)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var parsed struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&parsed)

		return &APIError{StatusCode: resp.StatusCode, Message: parsed.Error}
	}

	if out == nil {
		return nil
	}

	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// CreateGame starts a game on the server. An empty position means the
// standard start position.
func (c *Client) CreateGame(ctx context.Context, position string) (models.GameResponse, error) {
	var game models.GameResponse
	err := c.do(ctx, http.MethodPost, "/api/games", models.CreateGameRequest{Position: position}, &game)
	if err != nil {
		return models.GameResponse{}, fmt.Errorf("failed to create game: %w", err)
	}
	return game, nil
}

func (c *Client) GetGame(ctx context.Context, id string) (models.GameResponse, error) {
	var game models.GameResponse
	if err := c.do(ctx, http.MethodGet, "/api/games/"+url.PathEscape(id), nil, &game); err != nil {
		return models.GameResponse{}, fmt.Errorf("failed to get game: %w", err)
	}
	return game, nil
}

func (c *Client) Play(ctx context.Context, id string, side othello.Side, field string) (models.GameResponse, error) {
	payload := models.MoveRequest{
		Side:       &side,
		Coordinate: field,
	}

	var game models.GameResponse
	if err := c.do(ctx, http.MethodPost, "/api/games/"+url.PathEscape(id)+"/moves", payload, &game); err != nil {
		return models.GameResponse{}, fmt.Errorf("failed to play move: %w", err)
	}
	return game, nil
}

func (c *Client) LegalMoves(ctx context.Context, id string, side othello.Side) ([]othello.Coordinate, error) {
	path := "/api/games/" + url.PathEscape(id) + "/legal-moves?side=" + side.String()

	var moves []othello.Coordinate
	if err := c.do(ctx, http.MethodGet, path, nil, &moves); err != nil {
		return nil, fmt.Errorf("failed to get legal moves: %w", err)
	}
	return moves, nil
}

func (c *Client) Archive(ctx context.Context, limit int) ([]models.ArchivedGame, error) {
	var archived []models.ArchivedGame
	if err := c.do(ctx, http.MethodGet, "/api/archive?limit="+strconv.Itoa(limit), nil, &archived); err != nil {
		return nil, fmt.Errorf("failed to list archive: %w", err)
	}
	return archived, nil
}
