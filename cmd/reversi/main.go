// reversi - Othello rules engine and game server.
package main

import (
	"github.com/lk16/reversi/internal/cli"
)

func main() {
	cli.Execute()
}
