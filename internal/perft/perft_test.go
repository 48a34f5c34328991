package perft

import (
	"testing"

	"github.com/ngranek/chesscore"
)

func startingState(t *testing.T) State {
	t.Helper()
	var assignment []chesscore.Placement
	place := func(sq string, p chesscore.Piece) {
		s, err := chesscore.SquareFromString(sq)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		assignment = append(assignment, chesscore.Placement{Square: s, Piece: p})
	}
	back := [8]chesscore.PieceType{
		chesscore.Rook, chesscore.Knight, chesscore.Bishop, chesscore.Queen,
		chesscore.King, chesscore.Bishop, chesscore.Knight, chesscore.Rook,
	}
	files := "abcdefgh"
	for i, pt := range back {
		place(string(files[i])+"1", chesscore.NewPiece(chesscore.White, pt))
		place(string(files[i])+"8", chesscore.NewPiece(chesscore.Black, pt))
		place(string(files[i])+"2", chesscore.WhitePawn)
		place(string(files[i])+"7", chesscore.BlackPawn)
	}
	p, err := chesscore.BuildPosition(assignment)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rights := chesscore.CastlingRights{
		WhiteKingside: true, WhiteQueenside: true,
		BlackKingside: true, BlackQueenside: true,
	}
	return State{Position: p, Side: chesscore.White, EPTarget: chesscore.NoSquare, Rights: rights}
}

// Known perft node counts for the standard starting position.
// See https://www.chessprogramming.org/Perft_Results
func TestCountDepth1(t *testing.T) {
	if got := Count(startingState(t), 1); got != 20 {
		t.Fatalf("perft(1): expected 20, got %d", got)
	}
}

func TestCountDepth2(t *testing.T) {
	if got := Count(startingState(t), 2); got != 400 {
		t.Fatalf("perft(2): expected 400, got %d", got)
	}
}

func TestCountDepth3(t *testing.T) {
	if got := Count(startingState(t), 3); got != 8902 {
		t.Fatalf("perft(3): expected 8902, got %d", got)
	}
}

func TestDivideSumsToCount(t *testing.T) {
	s := startingState(t)
	div := Divide(s, 3)
	sum := 0
	for _, n := range div {
		sum += n
	}
	if sum != Count(s, 3) {
		t.Fatalf("expected Divide's subtree counts to sum to perft(3), got %d vs %d", sum, Count(s, 3))
	}
	if len(div) != 20 {
		t.Fatalf("expected 20 root moves in Divide's breakdown, got %d", len(div))
	}
}

func TestCountVerboseCapturesAtDepth2(t *testing.T) {
	var b Breakdown
	CountVerbose(startingState(t), 2, &b)
	if b.Nodes != 400 {
		t.Fatalf("expected 400 nodes, got %d", b.Nodes)
	}
	if b.Captures != 0 {
		t.Fatalf("expected no captures within the first two plies, got %d", b.Captures)
	}
}
