package ws

import (
	"encoding/json"

	"github.com/lk16/reversi/internal/othello"
)

type Incoming struct {
	Event string          `json:"event"`
	ID    int             `json:"id"`
	Data  json.RawMessage `json:"data"`
}

type Outgoing struct {
	ID    int    `json:"id"`
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

type CreateRequest struct {
	Position string `json:"position"`
}

type StateRequest struct {
	GameID string `json:"game_id"`
}

type MoveRequest struct {
	GameID     string        `json:"game_id"`
	Side       *othello.Side `json:"side"`
	Coordinate string        `json:"coordinate"`
}
