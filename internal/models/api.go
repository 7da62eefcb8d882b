package models

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lk16/reversi/internal/othello"
)

// GameRecord is the persisted form of a live game. The board is rebuilt by
// replaying Moves onto Start.
type GameRecord struct {
	ID        string         `json:"id"`
	Start     string         `json:"start"`
	Moves     []othello.Move `json:"moves"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// Board replays the record.
func (r *GameRecord) Board() (*othello.Board, error) {
	board, err := othello.NewBoardFromMoves(r.Start, r.Moves)
	if err != nil {
		return nil, fmt.Errorf("failed to replay game %s: %w", r.ID, err)
	}
	return board, nil
}

// CreateGameRequest represents the payload for creating a game.
type CreateGameRequest struct {
	// Position is an optional encoded start position.
	Position string `json:"position"`
}

// MoveRequest represents the payload for playing a move. Side is required.
type MoveRequest struct {
	Side       *othello.Side `json:"side"`
	Coordinate string        `json:"coordinate"`
}

// PositionPayload carries an encoded position.
type PositionPayload struct {
	Position string `json:"position"`
}

// PositionResponse describes a position and what can be played on it.
type PositionResponse struct {
	Position   string               `json:"position"`
	Cells      []string             `json:"cells"`
	BlackScore int                  `json:"black_score"`
	WhiteScore int                  `json:"white_score"`
	BlackMoves []othello.Coordinate `json:"black_moves"`
	WhiteMoves []othello.Coordinate `json:"white_moves"`
	State      string               `json:"state"`
}

// NewPositionResponse builds a PositionResponse for a board.
func NewPositionResponse(board *othello.Board) PositionResponse {
	grid := board.Grid()

	return PositionResponse{
		Position:   board.Encoded(),
		Cells:      grid.Rows(),
		BlackScore: board.Score(othello.Black),
		WhiteScore: board.Score(othello.White),
		BlackMoves: board.LegalMoves(othello.Black),
		WhiteMoves: board.LegalMoves(othello.White),
		State:      board.State().String(),
	}
}

// GameResponse represents the state of a game.
type GameResponse struct {
	PositionResponse
	ID    string         `json:"id"`
	Start string         `json:"start"`
	Moves []othello.Move `json:"moves"`
}

// NewGameResponse builds a GameResponse from a record and its replayed board.
func NewGameResponse(record *GameRecord, board *othello.Board) GameResponse {
	return GameResponse{
		PositionResponse: NewPositionResponse(board),
		ID:               record.ID,
		Start:            record.Start,
		Moves:            board.Moves(),
	}
}

// ArchivedGame is a finished game as stored in the archive database.
type ArchivedGame struct {
	ID            string   `json:"id"             db:"id"`
	StartPosition string   `json:"start_position" db:"start_position"`
	FinalPosition string   `json:"final_position" db:"final_position"`
	Moves         MoveList `json:"moves"          db:"moves"`
	BlackScore    int      `json:"black_score"    db:"black_score"`
	WhiteScore    int      `json:"white_score"    db:"white_score"`
	// FinishedAt is a unix timestamp in milliseconds.
	FinishedAt int64 `json:"finished_at" db:"finished_at"`
}

// NewArchivedGame builds the archive row for a finished game.
func NewArchivedGame(record *GameRecord, board *othello.Board, finishedAt time.Time) ArchivedGame {
	return ArchivedGame{
		ID:            record.ID,
		StartPosition: record.Start,
		FinalPosition: board.Encoded(),
		Moves:         board.Moves(),
		BlackScore:    board.Score(othello.Black),
		WhiteScore:    board.Score(othello.White),
		FinishedAt:    finishedAt.UnixMilli(),
	}
}

// MoveList is a move history stored as space separated "side:field" words.
type MoveList []othello.Move

// Value implements the driver.Valuer interface for MoveList.
func (m MoveList) Value() (driver.Value, error) {
	words := make([]string, len(m))
	for i, move := range m {
		words[i] = move.String()
	}
	return strings.Join(words, " "), nil
}

// Scan implements the sql.Scanner interface for MoveList.
func (m *MoveList) Scan(value interface{}) error {
	var s string
	switch v := value.(type) {
	case []byte:
		if v == nil {
			return errors.New("cannot scan nil into MoveList")
		}
		s = string(v)
	case string:
		s = v
	default:
		return fmt.Errorf("cannot scan %T into MoveList", value)
	}

	words := strings.Fields(s)

	moves := make([]othello.Move, len(words))
	for i, word := range words {
		move, err := othello.ParseMove(word)
		if err != nil {
			return fmt.Errorf("cannot convert %s to move: %w", word, err)
		}
		moves[i] = move
	}
	*m = moves

	return nil
}

type VersionResponse struct {
	Commit string `json:"commit"`
}
