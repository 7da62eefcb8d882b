package othello //nolint:testpackage

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustDecode(t *testing.T, text string) Grid {
	t.Helper()
	g, err := Decode(text)
	require.NoError(t, err)
	return g
}

func TestIsLegalStart(t *testing.T) {
	g := NewGridStart()

	tests := []struct {
		side  Side
		legal []string
	}{
		{Black, []string{"d3", "c4", "f5", "e6"}},
		{White, []string{"e3", "f4", "c5", "d6"}},
	}

	for _, tt := range tests {
		t.Run(tt.side.String(), func(t *testing.T) {
			moves := LegalMoves(g, tt.side)

			fields := make([]string, len(moves))
			for i, m := range moves {
				fields[i] = m.String()
			}

			require.ElementsMatch(t, tt.legal, fields)
			require.Equal(t, 4, LegalMoveCount(g, tt.side))
			require.True(t, HasLegalMove(g, tt.side))
		})
	}
}

func TestIsLegalOccupied(t *testing.T) {
	for _, g := range playedGrids() {
		for col := range MaxX {
			for row := range MaxY {
				c := Coordinate{Col: col, Row: row}
				if !g.At(c).Occupied() {
					continue
				}
				require.False(t, IsLegal(g, c, Black))
				require.False(t, IsLegal(g, c, White))
			}
		}
	}
}

func TestIsLegalOffBoard(t *testing.T) {
	g := NewGridStart()

	for _, c := range []Coordinate{{-1, 0}, {0, -1}, {8, 0}, {0, 8}, {100, 100}} {
		require.False(t, IsLegal(g, c, Black))
		require.Nil(t, Flips(g, c, Black))
		require.False(t, Commit(&g, c, Black))
	}

	require.Equal(t, NewGridStart(), g)
}

func TestIsLegalNeedsOpponentBetween(t *testing.T) {
	// Black on b1 next to a1: own disc directly adjacent, nothing bracketed.
	g := mustDecode(t, "1d6/8/8/8/8/8/8/8")
	require.False(t, IsLegal(g, MustParseCoordinate("c1"), Black))
	require.False(t, IsLegal(g, MustParseCoordinate("a1"), Black))
}

func TestIsLegalRunToEdge(t *testing.T) {
	// White run up to the edge with no black disc behind it.
	g := mustDecode(t, "1DDDDDDD/8/8/8/8/8/8/8")
	require.False(t, IsLegal(g, MustParseCoordinate("a1"), Black))

	// A gap ends the run.
	g = mustDecode(t, "1D1d4/8/8/8/8/8/8/8")
	require.False(t, IsLegal(g, MustParseCoordinate("a1"), Black))

	// Long run closed by black.
	g = mustDecode(t, "1DDDDDDd/8/8/8/8/8/8/8")
	require.True(t, IsLegal(g, MustParseCoordinate("a1"), Black))
	require.Len(t, Flips(g, MustParseCoordinate("a1"), Black), 6)
}

func TestCommitOpening(t *testing.T) {
	g := NewGridStart()
	blackBefore := Score(g, Black)
	whiteBefore := Score(g, White)

	require.True(t, Commit(&g, MustParseCoordinate("d3"), Black))

	require.Equal(t, blackBefore+2, Score(g, Black))
	require.Equal(t, whiteBefore-1, Score(g, White))
	require.Equal(t, BlackDisc, g.At(MustParseCoordinate("d3")))
	require.Equal(t, BlackDisc, g.At(MustParseCoordinate("d4")))
	require.Equal(t, "8/8/3d4/3dd3/3dD3/8/8/8", Encode(g))
}

func TestCommitIllegalLeavesGrid(t *testing.T) {
	for _, before := range playedGrids() {
		for col := range MaxX {
			for row := range MaxY {
				c := Coordinate{Col: col, Row: row}
				for _, side := range []Side{Black, White} {
					if IsLegal(before, c, side) {
						continue
					}
					g := before
					require.False(t, Commit(&g, c, side))
					require.Equal(t, before, g)
				}
			}
		}
	}
}

func TestCommitMultiDirection(t *testing.T) {
	// Black plays a1: white b1 is bracketed by c1 and white b2 by c3.
	g := mustDecode(t, "1Dd5/1D6/2d5/8/8/8/8/8")

	a1 := MustParseCoordinate("a1")
	require.ElementsMatch(t,
		[]Coordinate{MustParseCoordinate("b1"), MustParseCoordinate("b2")},
		Flips(g, a1, Black),
	)

	require.True(t, Commit(&g, a1, Black))
	require.Equal(t, "ddd5/1d6/2d5/8/8/8/8/8", Encode(g))
	require.Equal(t, 0, Score(g, White))
}

func TestCommitOnlyQualifyingDirections(t *testing.T) {
	// From d4: east run e4,f4 closed by g4 flips; south run d5 ends at an
	// empty square and must stay white.
	g := mustDecode(t, "8/8/8/4DDd1/3D4/8/8/8")
	d4 := MustParseCoordinate("d4")

	require.True(t, Commit(&g, d4, Black))
	require.Equal(t, BlackDisc, g.At(MustParseCoordinate("e4")))
	require.Equal(t, BlackDisc, g.At(MustParseCoordinate("f4")))
	require.Equal(t, WhiteDisc, g.At(MustParseCoordinate("d5")))
}

func TestGameOver(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"start", startEncoded, false},
		{"empty", "8/8/8/8/8/8/8/8", true},
		{"full", "dddddddd/dddddddd/dddddddd/dddddddd/DDDDDDDD/DDDDDDDD/DDDDDDDD/DDDDDDDD", true},
		{"only black", "d7/8/8/8/8/8/8/8", true},
		{"black only can move", "dD6/8/8/8/8/8/8/8", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, GameOver(mustDecode(t, tt.text)))
		})
	}
}

func TestLegalMovesOneSided(t *testing.T) {
	g := mustDecode(t, "dD6/8/8/8/8/8/8/8")
	require.False(t, HasLegalMove(g, White))
	require.Equal(t, 0, LegalMoveCount(g, White))
	require.Equal(t, []Coordinate{MustParseCoordinate("c1")}, LegalMoves(g, Black))
}

func TestScore(t *testing.T) {
	g := NewGridStart()
	require.Equal(t, 2, Score(g, Black))
	require.Equal(t, 2, Score(g, White))
	require.Equal(t, 0, Score(Grid{}, Black))
}
