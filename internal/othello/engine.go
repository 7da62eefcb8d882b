package othello

type direction struct {
	dx, dy int
}

// directions lists the 8 compass directions, excluding the zero vector.
var directions = [8]direction{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// bracketed returns the opponent discs captured in direction d when side
// plays on c, or nil when that direction captures nothing.
func bracketed(g *Grid, c Coordinate, side Side, d direction) []Coordinate {
	own := side.Cell()
	opp := side.Opponent().Cell()

	var run []Coordinate

	for cur := c.step(d); cur.Valid(); cur = cur.step(d) {
		switch g[cur.Col][cur.Row] {
		case opp:
			run = append(run, cur)
		case own:
			if len(run) == 0 {
				return nil
			}
			return run
		default:
			return nil
		}
	}

	// Walked off the board without meeting an own disc.
	return nil
}

// IsLegal returns whether side may play on c. Off-board coordinates and
// occupied squares are never legal.
func IsLegal(g Grid, c Coordinate, side Side) bool {
	if !c.Valid() || g[c.Col][c.Row].Occupied() {
		return false
	}

	for _, d := range directions {
		if bracketed(&g, c, side, d) != nil {
			return true
		}
	}

	return false
}

// Flips returns all opponent discs that would be flipped if side played on c.
// It returns nil for illegal moves.
func Flips(g Grid, c Coordinate, side Side) []Coordinate {
	if !c.Valid() || g[c.Col][c.Row].Occupied() {
		return nil
	}

	var flipped []Coordinate
	for _, d := range directions {
		flipped = append(flipped, bracketed(&g, c, side, d)...)
	}

	return flipped
}

// Commit plays side on c. Legality is recomputed; an illegal move returns
// false and leaves g untouched. On success every capturing direction is
// flipped and the disc is placed.
func Commit(g *Grid, c Coordinate, side Side) bool {
	flipped := Flips(*g, c, side)
	if len(flipped) == 0 {
		return false
	}

	own := side.Cell()
	for _, f := range flipped {
		g[f.Col][f.Row] = own
	}
	g[c.Col][c.Row] = own

	return true
}

// LegalMoves returns all legal moves of side, ordered a1, b1, ... h8.
func LegalMoves(g Grid, side Side) []Coordinate {
	moves := make([]Coordinate, 0)
	for row := range MaxY {
		for col := range MaxX {
			c := Coordinate{Col: col, Row: row}
			if IsLegal(g, c, side) {
				moves = append(moves, c)
			}
		}
	}
	return moves
}

// HasLegalMove returns whether side has at least one legal move.
func HasLegalMove(g Grid, side Side) bool {
	for row := range MaxY {
		for col := range MaxX {
			if IsLegal(g, Coordinate{Col: col, Row: row}, side) {
				return true
			}
		}
	}
	return false
}

// LegalMoveCount returns the number of legal moves of side.
func LegalMoveCount(g Grid, side Side) int {
	return len(LegalMoves(g, side))
}

// GameOver returns whether neither side can move.
func GameOver(g Grid) bool {
	return !HasLegalMove(g, Black) && !HasLegalMove(g, White)
}

// Score returns the number of discs of side.
func Score(g Grid, side Side) int {
	own := side.Cell()
	count := 0
	for col := range MaxX {
		for row := range MaxY {
			if g[col][row] == own {
				count++
			}
		}
	}
	return count
}
