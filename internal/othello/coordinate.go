package othello

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

const (
	MaxX = 8
	MaxY = 8
)

var ErrInvalidCoordinate = errors.New("invalid coordinate")

// Coordinate addresses a square. Col 0-7 is file a-h, Row 0-7 is rank 1-8.
type Coordinate struct {
	Col int
	Row int
}

// ParseCoordinate converts a field notation (e.g. "a1", "H8") to a Coordinate.
func ParseCoordinate(field string) (Coordinate, error) {
	if len(field) != 2 {
		return Coordinate{}, fmt.Errorf("%w: %q", ErrInvalidCoordinate, field)
	}

	file := field[0]
	if 'A' <= file && file <= 'H' {
		file += 'a' - 'A'
	}

	rank := field[1]

	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return Coordinate{}, fmt.Errorf("%w: %q", ErrInvalidCoordinate, field)
	}

	return Coordinate{Col: int(file - 'a'), Row: int(rank - '1')}, nil
}

// MustParseCoordinate is like ParseCoordinate but panics on invalid input.
func MustParseCoordinate(field string) Coordinate {
	c, err := ParseCoordinate(field)
	if err != nil {
		panic(err)
	}
	return c
}

// Valid returns whether the coordinate lies on the board.
func (c Coordinate) Valid() bool {
	return c.Col >= 0 && c.Col < MaxX && c.Row >= 0 && c.Row < MaxY
}

// String returns the lowercase field notation, or "??" when off the board.
func (c Coordinate) String() string {
	if !c.Valid() {
		return "??"
	}
	return string([]byte{byte('a' + c.Col), byte('1' + c.Row)})
}

// step returns the neighbouring coordinate in direction d.
func (c Coordinate) step(d direction) Coordinate {
	return Coordinate{Col: c.Col + d.dx, Row: c.Row + d.dy}
}

// MarshalJSON implements json.Marshaler for Coordinate.
func (c Coordinate) MarshalJSON() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: (%d, %d)", ErrInvalidCoordinate, c.Col, c.Row)
	}
	return json.Marshal(c.String())
}

// UnmarshalJSON implements json.Unmarshaler for Coordinate.
func (c *Coordinate) UnmarshalJSON(data []byte) error {
	var field string
	if err := json.Unmarshal(data, &field); err != nil {
		return fmt.Errorf("invalid coordinate string: %w", err)
	}

	parsed, err := ParseCoordinate(field)
	if err != nil {
		return err
	}

	*c = parsed
	return nil
}

// Move is a single entry in the move history.
type Move struct {
	Side       Side       `json:"side"`
	Coordinate Coordinate `json:"coordinate"`
}

func (m Move) String() string {
	return m.Side.String() + ":" + m.Coordinate.String()
}

// ParseMove parses the "side:field" form produced by Move.String.
func ParseMove(s string) (Move, error) {
	sideStr, field, found := strings.Cut(s, ":")
	if !found {
		return Move{}, fmt.Errorf("invalid move %q: expected side:field", s)
	}

	side, err := ParseSide(sideStr)
	if err != nil {
		return Move{}, fmt.Errorf("invalid move %q: %w", s, err)
	}

	coord, err := ParseCoordinate(field)
	if err != nil {
		return Move{}, fmt.Errorf("invalid move %q: %w", s, err)
	}

	return Move{Side: side, Coordinate: coord}, nil
}
