// Command chessplay is the CLI entry point for the core: a perft driver
// and a one-shot evaluation facade, both built on internal/board and
// internal/engine.
package main

import (
	"log"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "chessplay",
		Short:         "Move generation, search, and evaluation over a bitboard chess core",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(perftCmd())
	root.AddCommand(evalCmd())
	return root
}
