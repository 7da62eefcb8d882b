package othello

import "fmt"

// Grid holds the 64 cells of a board, indexed [column][row].
type Grid [MaxX][MaxY]Cell

// NewGridStart returns the standard start position.
func NewGridStart() Grid {
	var g Grid
	g[3][3] = WhiteDisc // d4
	g[4][4] = WhiteDisc // e5
	g[4][3] = BlackDisc // e4
	g[3][4] = BlackDisc // d5
	return g
}

// At returns the cell at c. Off-board coordinates read as Empty.
func (g *Grid) At(c Coordinate) Cell {
	if !c.Valid() {
		return Empty
	}
	return g[c.Col][c.Row]
}

// Set puts cell on c. It does nothing for off-board coordinates.
func (g *Grid) Set(c Coordinate, cell Cell) {
	if !c.Valid() {
		return
	}
	g[c.Col][c.Row] = cell
}

// CountDiscs returns the number of occupied cells.
func (g *Grid) CountDiscs() int {
	count := 0
	for col := range MaxX {
		for row := range MaxY {
			if g[col][row].Occupied() {
				count++
			}
		}
	}
	return count
}

// Rows returns one string per rank, rank 1 first, using '.' for empty,
// 'd' for black and 'D' for white.
func (g *Grid) Rows() []string {
	rows := make([]string, MaxY)
	for row := range MaxY {
		line := make([]byte, MaxX)
		for col := range MaxX {
			switch g[col][row] {
			case BlackDisc:
				line[col] = blackLetter
			case WhiteDisc:
				line[col] = whiteLetter
			default:
				line[col] = '.'
			}
		}
		rows[row] = string(line)
	}
	return rows
}

// ASCIIArtLines returns the ascii art lines for the grid. Empty squares in
// marks are shown with a dot.
func (g *Grid) ASCIIArtLines(marks []Coordinate) []string {
	marked := make(map[Coordinate]bool, len(marks))
	for _, c := range marks {
		marked[c] = true
	}

	lines := make([]string, MaxY+2)

	lines[0] = "+-a-b-c-d-e-f-g-h-+"
	for row := range MaxY {
		line := fmt.Sprintf("%d ", row+1)

		for col := range MaxX {
			c := Coordinate{Col: col, Row: row}

			switch {
			case g[col][row] == WhiteDisc:
				line += "○ "
			case g[col][row] == BlackDisc:
				line += "● "
			case marked[c]:
				line += "· "
			default:
				line += "  "
			}
		}

		lines[row+1] = line + "|"
	}

	lines[MaxY+1] = "+-----------------+"

	return lines
}
