package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/lk16/reversi/internal/client"
	"github.com/lk16/reversi/internal/config"
	"github.com/lk16/reversi/internal/models"
	"github.com/lk16/reversi/internal/othello"
	"github.com/spf13/cobra"
)

func newRemoteCmd() *cobra.Command {
	var (
		serverURL string
		token     string
		limit     int
	)

	newClient := func() *client.Client {
		cfg := config.LoadClientConfig()
		if serverURL != "" {
			cfg.ServerURL = serverURL
		}
		if token != "" {
			cfg.Token = token
		}
		return client.NewClient(cfg)
	}

	remoteCmd := &cobra.Command{
		Use:   "remote",
		Short: "Play games on a running server",
		Long: `Create and play games on a running reversi server.

The server defaults to REVERSI_SERVER_URL and the token to REVERSI_TOKEN.`,
	}

	remoteCmd.PersistentFlags().StringVar(&serverURL, "server", "", "Server URL (default: $REVERSI_SERVER_URL)")
	remoteCmd.PersistentFlags().StringVar(&token, "token", "", "API token (default: $REVERSI_TOKEN)")

	newCmd := &cobra.Command{
		Use:   "new [position]",
		Short: "Start a game",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var position string
			if len(args) == 1 {
				position = args[0]
			}

			game, err := newClient().CreateGame(cmd.Context(), position)
			if err != nil {
				return err
			}
			return printGame(cmd.OutOrStdout(), game)
		},
	}

	getCmd := &cobra.Command{
		Use:   "get <game-id>",
		Short: "Show a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			game, err := newClient().GetGame(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printGame(cmd.OutOrStdout(), game)
		},
	}

	moveCmd := &cobra.Command{
		Use:   "move <game-id> <side:field>",
		Short: "Play a move",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			move, err := othello.ParseMove(args[1])
			if err != nil {
				return err
			}

			game, err := newClient().Play(cmd.Context(), args[0], move.Side, move.Coordinate.String())
			if err != nil {
				return err
			}
			return printGame(cmd.OutOrStdout(), game)
		},
	}

	archiveCmd := &cobra.Command{
		Use:   "archive",
		Short: "List finished games",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			archived, err := newClient().Archive(cmd.Context(), limit)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, game := range archived {
				finishedAt := time.UnixMilli(game.FinishedAt).UTC().Format(time.RFC3339)
				fmt.Fprintf(w, "%s %s %d-%d %s\n", game.ID, finishedAt, game.BlackScore, game.WhiteScore, game.FinalPosition)
			}
			return nil
		},
	}

	archiveCmd.Flags().IntVarP(&limit, "limit", "n", 20, "Number of games to list")

	remoteCmd.AddCommand(newCmd, getCmd, moveCmd, archiveCmd)

	return remoteCmd
}

func printGame(w io.Writer, game models.GameResponse) error {
	board, err := othello.NewBoardFromEncoded(game.Position)
	if err != nil {
		return fmt.Errorf("server sent invalid position: %w", err)
	}

	fmt.Fprintf(w, "game: %s\n", game.ID)
	printBoard(w, board, nil)

	return nil
}
