package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/hailam/chesscore/internal/board"
	"github.com/hailam/chesscore/internal/engine"
)

// evalResult is the evaluation facade's wire shape: a fixed-deadline
// search result suitable for a JSON wrapper to consume.
type evalResult struct {
	Score    int32  `json:"score"`
	BestMove string `json:"best_move"`
}

// evalDeadline is the fixed per-call search budget the facade contract
// specifies.
const evalDeadline = 1 * time.Second

func evalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval <fen>",
		Short: "Run a fixed-deadline search and report {score, best_move} as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := board.ParseFEN(args[0])
			if err != nil {
				return fmt.Errorf("invalid FEN %q: %w", args[0], err)
			}

			eng := engine.NewEngine()
			result := eng.SearchWithScore(pos, engine.MaxPly, time.Now().Add(evalDeadline))

			out := evalResult{
				Score:    int32(result.Score),
				BestMove: result.Move.String(),
			}
			enc := json.NewEncoder(os.Stdout)
			return enc.Encode(out)
		},
	}
}
