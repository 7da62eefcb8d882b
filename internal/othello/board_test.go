package othello //nolint:testpackage

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	board := NewBoard()

	require.Equal(t, startEncoded, board.Encoded())
	require.Equal(t, 4, board.grid.CountDiscs())
	require.Equal(t, 2, board.Score(Black))
	require.Equal(t, 2, board.Score(White))
	require.Equal(t, 4, board.Score(Black)+board.Score(White))
	require.Empty(t, board.Moves())
	require.Equal(t, InProgress, board.State())

	for _, field := range []string{"d4", "e4", "d5", "e5"} {
		require.True(t, board.At(MustParseCoordinate(field)).Occupied(), field)
	}
}

func TestNewBoardFromEncoded(t *testing.T) {
	board, err := NewBoardFromEncoded("d7/8/8/8/8/8/8/7D")
	require.NoError(t, err)
	require.Equal(t, BlackDisc, board.At(MustParseCoordinate("a1")))
	require.Equal(t, WhiteDisc, board.At(MustParseCoordinate("h8")))
	require.Equal(t, Terminal, board.State())

	_, err = NewBoardFromEncoded("8/8")
	require.ErrorIs(t, err, ErrFormat)
}

func TestBoardCommit(t *testing.T) {
	board := NewBoard()

	require.True(t, board.CommitField("d3", Black))
	require.True(t, board.CommitField("C5", White))
	require.False(t, board.CommitField("a1", Black))
	require.False(t, board.CommitField("zz", Black))
	require.False(t, board.CommitField("d3", Black))

	require.Equal(t, []Move{
		{Side: Black, Coordinate: MustParseCoordinate("d3")},
		{Side: White, Coordinate: MustParseCoordinate("c5")},
	}, board.Moves())

	require.Equal(t, Encode(board.Grid()), board.Encoded())
	require.Equal(t, 3, board.Score(Black))
	require.Equal(t, 3, board.Score(White))
}

func TestBoardCommitIllegalUnchanged(t *testing.T) {
	board := NewBoard()
	grid := board.Grid()
	encoded := board.Encoded()

	require.False(t, board.Commit(MustParseCoordinate("a1"), White))

	require.Equal(t, grid, board.Grid())
	require.Equal(t, encoded, board.Encoded())
	require.Empty(t, board.Moves())
}

func TestBoardMovesIsCopy(t *testing.T) {
	board := NewBoard()
	require.True(t, board.CommitField("d3", Black))

	moves := board.Moves()
	moves[0].Side = White

	require.Equal(t, Black, board.Moves()[0].Side)
}

func TestBoardSetPosition(t *testing.T) {
	board := NewBoard()
	require.True(t, board.CommitField("d3", Black))

	err := board.SetPosition("8/8/8/7/8/8/8/8")
	require.True(t, errors.Is(err, ErrFormat))
	require.Equal(t, "8/8/3d4/3dd3/3dD3/8/8/8", board.Encoded())

	require.NoError(t, board.SetPosition("dD6/8/8/8/8/8/8/8"))
	require.Equal(t, "dD6/8/8/8/8/8/8/8", board.Encoded())
	require.Len(t, board.Moves(), 1)
	require.Equal(t, []Coordinate{MustParseCoordinate("c1")}, board.LegalMoves(Black))
	require.False(t, board.HasLegalMove(White))
}

func TestNewBoardFromMoves(t *testing.T) {
	moves := []Move{
		{Side: Black, Coordinate: MustParseCoordinate("d3")},
		{Side: White, Coordinate: MustParseCoordinate("c5")},
	}

	board, err := NewBoardFromMoves("", moves)
	require.NoError(t, err)
	require.Equal(t, moves, board.Moves())

	_, err = NewBoardFromMoves("", []Move{{Side: White, Coordinate: MustParseCoordinate("d3")}})
	require.EqualError(t, err, "illegal move 1: white:d3")

	_, err = NewBoardFromMoves("8/8", nil)
	require.ErrorIs(t, err, ErrFormat)
}

func TestPlayFullGame(t *testing.T) {
	board := NewBoard()
	side := Black

	for board.State() == InProgress {
		moves := board.LegalMoves(side)
		if len(moves) > 0 {
			require.True(t, board.Commit(moves[0], side))
		}
		side = side.Opponent()
	}

	require.True(t, board.GameOver())
	require.LessOrEqual(t, board.Score(Black)+board.Score(White), 64)
	require.Len(t, board.Moves(), board.Score(Black)+board.Score(White)-4)

	replayed, err := NewBoardFromMoves("", board.Moves())
	require.NoError(t, err)
	require.Equal(t, board.Grid(), replayed.Grid())
}

func TestMoveJSON(t *testing.T) {
	move := Move{Side: White, Coordinate: MustParseCoordinate("h8")}

	data, err := json.Marshal(move)
	require.NoError(t, err)
	require.JSONEq(t, `{"side":"white","coordinate":"h8"}`, string(data))

	var decoded Move
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, move, decoded)

	require.Error(t, json.Unmarshal([]byte(`{"side":"red","coordinate":"h8"}`), &decoded))
	require.Error(t, json.Unmarshal([]byte(`{"side":"black","coordinate":"i9"}`), &decoded))
}

func TestBoardString(t *testing.T) {
	expected := "+-a-b-c-d-e-f-g-h-+\n" +
		"1                 |\n" +
		"2                 |\n" +
		"3                 |\n" +
		"4       ○ ●       |\n" +
		"5       ● ○       |\n" +
		"6                 |\n" +
		"7                 |\n" +
		"8                 |\n" +
		"+-----------------+\n"

	require.Equal(t, expected, NewBoard().String())
}
