package othello

import (
	"fmt"
	"strings"
)

// GameState is the state of a Board as polled by its owner.
type GameState int

const (
	InProgress GameState = iota
	Terminal
)

func (s GameState) String() string {
	if s == Terminal {
		return "terminal"
	}
	return "in_progress"
}

// Board owns a grid, its encoded form and the history of moves played on it.
// A Board is not safe for concurrent use.
type Board struct {
	grid    Grid
	encoded string
	moves   []Move
}

// NewBoard creates a board with the start position.
func NewBoard() *Board {
	return NewBoardFromGrid(NewGridStart())
}

// NewBoardFromGrid creates a board holding a copy of g.
func NewBoardFromGrid(g Grid) *Board {
	return &Board{
		grid:    g,
		encoded: Encode(g),
		moves:   make([]Move, 0),
	}
}

// NewBoardFromEncoded creates a board from an encoded position.
func NewBoardFromEncoded(text string) (*Board, error) {
	g, err := Decode(text)
	if err != nil {
		return nil, err
	}
	return NewBoardFromGrid(g), nil
}

// NewBoardFromMoves replays moves onto start. An empty start means the
// standard start position.
func NewBoardFromMoves(start string, moves []Move) (*Board, error) {
	board := NewBoard()

	if start != "" {
		var err error
		if board, err = NewBoardFromEncoded(start); err != nil {
			return nil, fmt.Errorf("failed to decode start position: %w", err)
		}
	}

	for i, move := range moves {
		if !board.Commit(move.Coordinate, move.Side) {
			return nil, fmt.Errorf("illegal move %d: %s", i+1, move)
		}
	}

	return board, nil
}

// Grid returns a copy of the current grid.
func (b *Board) Grid() Grid {
	return b.grid
}

// Encoded returns the encoded form of the current position.
func (b *Board) Encoded() string {
	return b.encoded
}

// At returns the state of the cell at c.
func (b *Board) At(c Coordinate) Cell {
	return b.grid.At(c)
}

// Moves returns a copy of the move history in the order it was played.
func (b *Board) Moves() []Move {
	return append([]Move{}, b.moves...)
}

// SetPosition replaces the grid with a decoded position. The board is left
// untouched when text is malformed.
func (b *Board) SetPosition(text string) error {
	g, err := Decode(text)
	if err != nil {
		return err
	}

	b.SetGrid(g)
	return nil
}

// SetGrid replaces the grid with g.
func (b *Board) SetGrid(g Grid) {
	b.grid = g
	b.sync()
}

func (b *Board) sync() {
	b.encoded = Encode(b.grid)
}

// IsLegal checks whether side may play on c.
func (b *Board) IsLegal(c Coordinate, side Side) bool {
	return IsLegal(b.grid, c, side)
}

// Commit plays side on c and records the move. It returns false and changes
// nothing when the move is illegal.
func (b *Board) Commit(c Coordinate, side Side) bool {
	if !Commit(&b.grid, c, side) {
		return false
	}

	b.moves = append(b.moves, Move{Side: side, Coordinate: c})
	b.sync()
	return true
}

// CommitField is Commit for a field in text notation such as "d3".
// Unparsable fields are illegal moves.
func (b *Board) CommitField(field string, side Side) bool {
	c, err := ParseCoordinate(field)
	if err != nil {
		return false
	}
	return b.Commit(c, side)
}

// LegalMoves returns the legal moves of side.
func (b *Board) LegalMoves(side Side) []Coordinate {
	return LegalMoves(b.grid, side)
}

// HasLegalMove returns whether side can move.
func (b *Board) HasLegalMove(side Side) bool {
	return HasLegalMove(b.grid, side)
}

// Score returns the number of discs of side.
func (b *Board) Score(side Side) int {
	return Score(b.grid, side)
}

// GameOver returns whether neither side can move.
func (b *Board) GameOver() bool {
	return GameOver(b.grid)
}

// State returns Terminal once neither side can move.
func (b *Board) State() GameState {
	if b.GameOver() {
		return Terminal
	}
	return InProgress
}

// String returns a glyph grid, useful for debugging.
func (b *Board) String() string {
	return strings.Join(b.grid.ASCIIArtLines(nil), "\n") + "\n"
}
