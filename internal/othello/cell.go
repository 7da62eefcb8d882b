package othello

import (
	"encoding/json"
	"fmt"
)

// Side is one of the two players.
type Side uint8

const (
	Black Side = iota
	White
)

// Cell is the state of a single square.
type Cell uint8

const (
	Empty Cell = iota
	BlackDisc
	WhiteDisc
)

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == Black {
		return White
	}
	return Black
}

// Cell returns the disc of this side.
func (s Side) Cell() Cell {
	if s == White {
		return WhiteDisc
	}
	return BlackDisc
}

func (s Side) String() string {
	if s == White {
		return "white"
	}
	return "black"
}

// ParseSide parses "black"/"white" or the single letters "b"/"w".
func ParseSide(s string) (Side, error) {
	switch s {
	case "black", "b", "B":
		return Black, nil
	case "white", "w", "W":
		return White, nil
	default:
		return Black, fmt.Errorf("invalid side: %q", s)
	}
}

// MarshalJSON implements json.Marshaler for Side.
func (s Side) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON implements json.Unmarshaler for Side.
func (s *Side) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("invalid side: %w", err)
	}

	side, err := ParseSide(str)
	if err != nil {
		return err
	}

	*s = side
	return nil
}

// Side returns the owner of the disc on this cell, ok is false for an empty cell.
func (c Cell) Side() (side Side, ok bool) {
	switch c {
	case BlackDisc:
		return Black, true
	case WhiteDisc:
		return White, true
	default:
		return Black, false
	}
}

// Occupied returns whether a disc is on the cell.
func (c Cell) Occupied() bool {
	return c != Empty
}

func (c Cell) String() string {
	switch c {
	case BlackDisc:
		return "black"
	case WhiteDisc:
		return "white"
	default:
		return "empty"
	}
}
