// Package cli implements the command-line interface for reversi.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the base command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "reversi",
		Short: "Othello rules engine and game server",
		Long: `reversi keeps Othello boards, checks and applies moves and
reads and writes the compact encoded position format.

Run the game server with "reversi serve", or inspect positions and
replay move lists from the command line.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newServeCmd(), newShowCmd(), newPlayCmd(), newRemoteCmd())

	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
