package ws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/lk16/reversi/internal/games"
	"github.com/lk16/reversi/internal/models"
)

const (
	requestTimeout = 2 * time.Second
)

// Conn is the part of a websocket connection the handler uses.
type Conn interface {
	ReadMessage() (messageType int, p []byte, err error)
	WriteMessage(messageType int, data []byte) error
}

type Handler struct {
	manager *games.Manager
	ws      Conn
}

// NewHandler creates a new Handler.
func NewHandler(ws Conn, manager *games.Manager) *Handler {
	return &Handler{manager: manager, ws: ws}
}

func (h *Handler) readMessage() (*Incoming, error) {
	var req Incoming

	msgType, msg, err := h.ws.ReadMessage()
	if err != nil {
		return nil, fmt.Errorf("ws read error: %w", err)
	}

	slog.Debug("read ws message", "msgType", msgType, "msg", string(msg))

	if msgType != websocket.TextMessage {
		return nil, fmt.Errorf("unexpected message type: %d", msgType)
	}

	if err = json.Unmarshal(msg, &req); err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	return &req, nil
}

func (h *Handler) writeMessage(outgoing *Outgoing) error {
	msg, err := json.Marshal(outgoing)
	if err != nil {
		return fmt.Errorf("marshal error: %w", err)
	}

	slog.Debug("write ws message", "msg", string(msg))

	if err = h.ws.WriteMessage(websocket.TextMessage, msg); err != nil {
		return fmt.Errorf("write error: %w", err)
	}

	return nil
}

// errProtocol marks requests that break the protocol; they close the connection.
var errProtocol = errors.New("protocol error")

func (h *Handler) handleMessage(req *Incoming) (any, error) {
	if req.Event == "" {
		return nil, fmt.Errorf("%w: event field is either empty or missing", errProtocol)
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	switch req.Event {
	case "create_request":
		return h.handleCreateRequest(ctx, req)
	case "state_request":
		return h.handleStateRequest(ctx, req)
	case "move_request":
		return h.handleMoveRequest(ctx, req)
	default:
		return nil, fmt.Errorf("%w: unknown event: %s", errProtocol, req.Event)
	}
}

// Handle handles the websocket connection. Game errors such as illegal moves
// are reported to the client, protocol errors end the connection.
func (h *Handler) Handle() error {
	for {
		req, err := h.readMessage()
		if err != nil {
			return fmt.Errorf("ws read error: %w", err)
		}

		outgoing := &Outgoing{ID: req.ID}

		data, err := h.handleMessage(req)
		if errors.Is(err, errProtocol) {
			return fmt.Errorf("ws handle error: %w", err)
		}

		if err != nil {
			outgoing.Error = err.Error()
		} else {
			outgoing.Data = data
		}

		if err = h.writeMessage(outgoing); err != nil {
			return fmt.Errorf("ws write error: %w", err)
		}
	}
}

func decodeData(req *Incoming, v any) error {
	if err := json.Unmarshal(req.Data, v); err != nil {
		return fmt.Errorf("%w: %s unmarshal error: %w", errProtocol, req.Event, err)
	}
	return nil
}

func (h *Handler) handleCreateRequest(ctx context.Context, req *Incoming) (models.GameResponse, error) {
	var reqData CreateRequest
	if len(req.Data) > 0 {
		if err := decodeData(req, &reqData); err != nil {
			return models.GameResponse{}, err
		}
	}

	game, err := h.manager.Create(ctx, reqData.Position)
	if err != nil {
		return models.GameResponse{}, err
	}

	return game.Response(), nil
}

func (h *Handler) handleStateRequest(ctx context.Context, req *Incoming) (models.GameResponse, error) {
	var reqData StateRequest
	if err := decodeData(req, &reqData); err != nil {
		return models.GameResponse{}, err
	}

	game, err := h.manager.Get(ctx, reqData.GameID)
	if err != nil {
		return models.GameResponse{}, err
	}

	return game.Response(), nil
}

func (h *Handler) handleMoveRequest(ctx context.Context, req *Incoming) (models.GameResponse, error) {
	var reqData MoveRequest
	if err := decodeData(req, &reqData); err != nil {
		return models.GameResponse{}, err
	}

	if reqData.Side == nil {
		return models.GameResponse{}, fmt.Errorf("%w: %s without side", errProtocol, req.Event)
	}

	game, err := h.manager.Play(ctx, reqData.GameID, *reqData.Side, reqData.Coordinate)
	if err != nil {
		return models.GameResponse{}, err
	}

	return game.Response(), nil
}
