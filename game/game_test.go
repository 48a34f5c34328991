package game

import (
	"testing"

	"github.com/ngranek/chesscore"
)

func mv(t *testing.T, from, to string, piece chesscore.Piece) chesscore.Move {
	t.Helper()
	f, err := chesscore.SquareFromString(from)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	to2, err := chesscore.SquareFromString(to)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return chesscore.NewStandardMove(f, to2, piece)
}

func TestNewGameInitialState(t *testing.T) {
	g := NewGame()
	if g.SideToMove != chesscore.White {
		t.Fatalf("expected white to move, got %v", g.SideToMove)
	}
	if g.LegalMoves.Len() != 20 {
		t.Fatalf("expected 20 legal moves from the starting position, got %d", g.LegalMoves.Len())
	}
	if g.Result != ResultUnscored {
		t.Fatalf("expected an unscored game, got %v", g.Result)
	}
}

func TestPushMoveAdvancesSideToMoveAndSAN(t *testing.T) {
	g := NewGame()
	m := mv(t, "e2", "e4", chesscore.WhitePawn)
	// GenerateMoves records the jumped-over square on a double push.
	m.EnPassant, _ = chesscore.SquareFromString("e3")
	sanStr := g.PushMove(m)
	if sanStr != "e4" {
		t.Fatalf("expected SAN \"e4\", got %q", sanStr)
	}
	if g.SideToMove != chesscore.Black {
		t.Fatalf("expected black to move after e4, got %v", g.SideToMove)
	}
	if g.EPTarget.String() != "e3" {
		t.Fatalf("expected en passant target e3, got %s", g.EPTarget)
	}
}

func TestPushMoveRevokesCastlingRightsOnKingMove(t *testing.T) {
	g := NewGame()
	g.PushMove(mv(t, "e2", "e4", chesscore.WhitePawn))
	g.PushMove(mv(t, "e7", "e5", chesscore.BlackPawn))
	g.PushMove(mv(t, "e1", "e2", chesscore.WhiteKing))
	if g.Castling.WhiteKingside || g.Castling.WhiteQueenside {
		t.Fatalf("expected white castling rights revoked after a king move, got %+v", g.Castling)
	}
}

func TestPushMoveRevokesCastlingRightsOnRookMove(t *testing.T) {
	g := NewGameFromFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKB1R w KQkq - 0 1")
	g.PushMove(mv(t, "h1", "g1", chesscore.WhiteRook))
	if g.Castling.WhiteKingside {
		t.Fatalf("expected white kingside rights revoked after the h1 rook moves")
	}
	if !g.Castling.WhiteQueenside {
		t.Fatalf("expected white queenside rights untouched")
	}
}

func TestPushMoveResetsHalfmoveClockOnCapture(t *testing.T) {
	g := NewGameFromFEN("rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2")
	capture := mv(t, "e4", "d5", chesscore.WhitePawn)
	capture.Takes = chesscore.BlackPawn
	g.PushMove(capture)
	if g.HalfmoveCnt != 0 {
		t.Fatalf("expected halfmove clock reset on capture, got %d", g.HalfmoveCnt)
	}
}

func TestIsMoveLegal(t *testing.T) {
	g := NewGame()
	if !g.IsMoveLegal(mv(t, "e2", "e4", chesscore.WhitePawn)) {
		t.Fatalf("expected e2e4 to be legal from the starting position")
	}
	if g.IsMoveLegal(mv(t, "e2", "e5", chesscore.WhitePawn)) {
		t.Fatalf("expected e2e5 to be illegal")
	}
}

func TestIsInsufficientMaterialBareKings(t *testing.T) {
	g := NewGameFromFEN("8/8/4k3/8/8/4K3/8/8 w - - 0 1")
	if !g.IsInsufficientMaterial() {
		t.Fatalf("expected bare kings to be insufficient material")
	}
}

func TestIsInsufficientMaterialKingAndPawn(t *testing.T) {
	g := NewGameFromFEN("8/8/4k3/8/8/4K3/4P3/8 w - - 0 1")
	if g.IsInsufficientMaterial() {
		t.Fatalf("expected king+pawn vs king not to be insufficient material")
	}
}

func TestIsInsufficientMaterialSameColorBishops(t *testing.T) {
	// c1 (dark) and f8 (dark) are both dark-squared bishops.
	g := NewGameFromFEN("5b2/8/4k3/8/8/4K3/8/2B5 w - - 0 1")
	if !g.IsInsufficientMaterial() {
		t.Fatalf("expected opposite bishops on the same color to be insufficient material")
	}
}

func TestIsThreefoldRepetition(t *testing.T) {
	g := NewGame()
	for i := 0; i < 2; i++ {
		g.PushMove(mv(t, "g1", "f3", chesscore.WhiteKnight))
		g.PushMove(mv(t, "g8", "f6", chesscore.BlackKnight))
		g.PushMove(mv(t, "f3", "g1", chesscore.WhiteKnight))
		g.PushMove(mv(t, "f6", "g8", chesscore.BlackKnight))
	}
	if !g.IsThreefoldRepetition() {
		t.Fatalf("expected the starting position to recur a third time")
	}
}

func TestSetClockAndDecrement(t *testing.T) {
	g := NewGame()
	g.SetClock(60, 2)
	g.DecrementTime()
	if g.whiteTime != 59 {
		t.Fatalf("expected white's clock to tick down to 59, got %d", g.whiteTime)
	}
}
