/*
cmd/chesscore is a small demo/debug binary: load a position from FEN (or
the standard opening), print the board and legal moves, and run a perft
count against it. Grounded on treepeck-chego/main.go's role as a manual
smoke-test harness for the movegen package, rebuilt against the fen,
cli, and internal/perft collaborator packages.
*/
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ngranek/chesscore"
	"github.com/ngranek/chesscore/cli"
	"github.com/ngranek/chesscore/fen"
	"github.com/ngranek/chesscore/internal/perft"

	"github.com/op/go-logging"
)

func main() {
	fenFlag := flag.String("fen", fen.InitialPosition, "FEN string of the position to load")
	depth := flag.Int("depth", 4, "perft depth")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	if *verbose {
		chesscore.SetLogLevel(logging.DEBUG)
	}

	state, err := fen.Parse(*fenFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "chesscore: invalid FEN: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(cli.Board(state.Position))

	moves := chesscore.GenerateMoves(state.Position, state.SideToMove, state.EPTarget, state.Castling)
	fmt.Println(cli.MoveList(moves))

	s := perft.State{
		Position: state.Position,
		Side:     state.SideToMove,
		EPTarget: state.EPTarget,
		Rights:   state.Castling,
	}
	var breakdown perft.Breakdown
	nodes := perft.CountVerbose(s, *depth, &breakdown)
	fmt.Printf("perft(%d) = %d\n", *depth, nodes)
	fmt.Printf("  captures=%d enPassant=%d castles=%d promotions=%d checks=%d checkmates=%d\n",
		breakdown.Captures, breakdown.EnPassant, breakdown.Castles,
		breakdown.Promotions, breakdown.Checks, breakdown.Checkmates)
}
