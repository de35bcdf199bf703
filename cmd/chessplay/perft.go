package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hailam/chesscore/internal/board"
)

// perftCmd implements the perft driver of the external-interface
// contract: `chessplay perft <depth> <fen> [<space-separated-moves>]`.
// Malformed input panics rather than returning a graceful error — the
// driver is a diagnostic tool, not a service, and a bad FEN or move
// string here is a caller mistake, not a runtime condition to recover
// from.
func perftCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "perft <depth> <fen> [moves]",
		Short: "Count leaf nodes at a given depth below a position",
		Args:  cobra.RangeArgs(2, 3),
		Run: func(cmd *cobra.Command, args []string) {
			depth, err := strconv.Atoi(args[0])
			if err != nil {
				panic(fmt.Sprintf("invalid depth %q: %v", args[0], err))
			}

			pos, err := board.ParseFEN(args[1])
			if err != nil {
				panic(fmt.Sprintf("invalid FEN %q: %v", args[1], err))
			}
			pos.SetHasher(board.NoopHasher{})

			if len(args) == 3 {
				for _, ms := range strings.Fields(args[2]) {
					m, err := board.ParseMove(ms, pos)
					if err != nil {
						panic(fmt.Sprintf("invalid move %q: %v", ms, err))
					}
					pos.Make(m)
				}
			}

			runPerft(pos, depth)
		},
	}
}

// runPerft prints, for every legal move from pos, "<move> <count>" where
// count is the number of leaves at depth-1 below that move, then a
// blank line, then the grand total.
func runPerft(pos *board.Position, depth int) {
	root := pos.GenerateLegalMoves()
	var total int64

	for i := 0; i < root.Len(); i++ {
		m := root.Get(i)
		pos.Make(m)
		count := perftCount(pos, depth-1)
		pos.Unmake(m)

		fmt.Printf("%s %d\n", m.String(), count)
		total += count
	}

	fmt.Println()
	fmt.Println(total)
}

func perftCount(pos *board.Position, depth int) int64 {
	if depth == 0 {
		return 1
	}

	moves := pos.GenerateLegalMoves()
	if depth == 1 {
		return int64(moves.Len())
	}

	var nodes int64
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		pos.Make(m)
		nodes += perftCount(pos, depth-1)
		pos.Unmake(m)
	}
	return nodes
}
