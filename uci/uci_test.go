package uci

import (
	"testing"

	"github.com/ngranek/chesscore"
)

func TestParseMoveQuiet(t *testing.T) {
	pm, err := ParseMove("e2e4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	e2, _ := chesscore.SquareFromString("e2")
	e4, _ := chesscore.SquareFromString("e4")
	if pm.From != e2 || pm.To != e4 {
		t.Fatalf("expected e2->e4, got %s->%s", pm.From, pm.To)
	}
	if pm.HasPromo {
		t.Fatalf("expected no promotion")
	}
}

func TestParseMovePromotion(t *testing.T) {
	pm, err := ParseMove("e7e8q")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !pm.HasPromo || pm.Promotion != chesscore.Queen {
		t.Fatalf("expected a queen promotion, got %+v", pm)
	}
}

func TestParseMoveInvalidLength(t *testing.T) {
	if _, err := ParseMove("e2e"); err == nil {
		t.Fatalf("expected an error for a too-short move string")
	}
}

func TestParseMoveInvalidPromotionLetter(t *testing.T) {
	if _, err := ParseMove("e7e8x"); err == nil {
		t.Fatalf("expected an error for an invalid promotion letter")
	}
}

func TestMatchFindsMove(t *testing.T) {
	list := chesscore.NewMoveList()
	e2, _ := chesscore.SquareFromString("e2")
	e4, _ := chesscore.SquareFromString("e4")
	d2, _ := chesscore.SquareFromString("d2")
	d4, _ := chesscore.SquareFromString("d4")
	list.Push(chesscore.NewStandardMove(e2, e4, chesscore.WhitePawn))
	list.Push(chesscore.NewStandardMove(d2, d4, chesscore.WhitePawn))

	pm, err := ParseMove("e2e4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m, ok := Match(list, pm)
	if !ok {
		t.Fatalf("expected e2e4 to match a move in the list")
	}
	if m.To != e4 {
		t.Fatalf("expected matched move to land on e4, got %s", m.To)
	}
}

func TestMatchNoMatch(t *testing.T) {
	list := chesscore.NewMoveList()
	e2, _ := chesscore.SquareFromString("e2")
	e4, _ := chesscore.SquareFromString("e4")
	list.Push(chesscore.NewStandardMove(e2, e4, chesscore.WhitePawn))

	pm, err := ParseMove("a2a4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := Match(list, pm); ok {
		t.Fatalf("expected no match for a2a4")
	}
}
