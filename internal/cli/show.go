package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/lk16/reversi/internal/othello"
	"github.com/spf13/cobra"
)

func newShowCmd() *cobra.Command {
	var mark string

	cmd := &cobra.Command{
		Use:   "show [position]",
		Short: "Print an encoded position",
		Long: `Decode a position and print the board, disc counts and legal moves
of both sides. Without a position the start position is shown.

Usage:
  reversi show                           # Start position
  reversi show 8/8/3d4/3dd3/3dD3/8/8/8   # Any encoded position
  reversi show --mark white              # Mark the legal moves of white`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			board := othello.NewBoard()

			if len(args) == 1 {
				var err error
				if board, err = othello.NewBoardFromEncoded(args[0]); err != nil {
					return err
				}
			}

			var marks []othello.Coordinate
			if mark != "" {
				side, err := othello.ParseSide(mark)
				if err != nil {
					return err
				}
				marks = board.LegalMoves(side)
			}

			printBoard(cmd.OutOrStdout(), board, marks)
			return nil
		},
	}

	cmd.Flags().StringVarP(&mark, "mark", "m", "", "Mark the legal moves of this side (black or white)")

	return cmd
}

func printBoard(w io.Writer, board *othello.Board, marks []othello.Coordinate) {
	grid := board.Grid()

	for _, line := range grid.ASCIIArtLines(marks) {
		fmt.Fprintln(w, line)
	}

	fmt.Fprintf(w, "position: %s\n", board.Encoded())

	for _, side := range []othello.Side{othello.Black, othello.White} {
		fmt.Fprintf(w, "%s: %d discs, moves: %s\n", side, board.Score(side), formatCoordinates(board.LegalMoves(side)))
	}

	fmt.Fprintf(w, "state: %s\n", board.State())
}

func formatCoordinates(coords []othello.Coordinate) string {
	if len(coords) == 0 {
		return "-"
	}

	fields := make([]string, len(coords))
	for i, c := range coords {
		fields[i] = c.String()
	}
	return strings.Join(fields, " ")
}
