package cli

import (
	"fmt"

	"github.com/lk16/reversi/internal/othello"
	"github.com/spf13/cobra"
)

func newPlayCmd() *cobra.Command {
	var (
		start   string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "play side:field...",
		Short: "Replay moves and print the resulting position",
		Long: `Replay a list of moves onto a start position and print the encoded
result. Replaying stops with an error at the first illegal move.

Usage:
  reversi play black:d3 white:c5
  reversi play --start dD6/8/8/8/8/8/8/8 black:c1
  reversi play -v black:d3             # Also print the board`,
		RunE: func(cmd *cobra.Command, args []string) error {
			moves := make([]othello.Move, 0, len(args))
			for _, arg := range args {
				move, err := othello.ParseMove(arg)
				if err != nil {
					return err
				}
				moves = append(moves, move)
			}

			board, err := othello.NewBoardFromMoves(start, moves)
			if err != nil {
				return err
			}

			if verbose {
				printBoard(cmd.OutOrStdout(), board, nil)
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), board.Encoded())
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "Encoded start position (default: standard start)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print the board instead of only the encoded position")

	return cmd
}
