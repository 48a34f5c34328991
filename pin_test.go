package chesscore

import "testing"

func TestFindPinsDetectsRookPin(t *testing.T) {
	// White king e1, white rook e4, black rook e8: the rook on e4 is
	// pinned along the e-file.
	king := mustSquare("e1")
	friendlyRook := mustSquare("e4")
	enemyRook := mustSquare("e8")
	occupied := king.Mask() | friendlyRook.Mask() | enemyRook.Mask()

	pins := FindPins(king, occupied, king.Mask()|friendlyRook.Mask(), 0, enemyRook.Mask(), 0)
	if len(pins) != 1 {
		t.Fatalf("expected 1 pin, got %d", len(pins))
	}
	if pins[0].Pinned != friendlyRook {
		t.Fatalf("expected pin on e4, got %s", pins[0].Pinned)
	}
	if pins[0].AllowedMask&enemyRook.Mask() == 0 {
		t.Fatalf("allowed mask should include the pinning piece's square (capture)")
	}
	if pins[0].AllowedMask&mustSquare("e2").Mask() == 0 {
		t.Fatalf("allowed mask should include squares between king and pinner")
	}
	if pins[0].AllowedMask&king.Mask() != 0 {
		t.Fatalf("allowed mask should not include the king's own square")
	}
}

func TestFindPinsDetectsBishopPin(t *testing.T) {
	king := mustSquare("e1")
	friendlyBishop := mustSquare("c3")
	enemyBishop := mustSquare("a5")
	occupied := king.Mask() | friendlyBishop.Mask() | enemyBishop.Mask()

	pins := FindPins(king, occupied, king.Mask()|friendlyBishop.Mask(), enemyBishop.Mask(), 0, 0)
	if len(pins) != 1 || pins[0].Pinned != friendlyBishop {
		t.Fatalf("expected pin on c3, got %v", pins)
	}
}

func TestFindPinsNoPinWithTwoFriendlyPieces(t *testing.T) {
	king := mustSquare("e1")
	blocker1 := mustSquare("e3")
	blocker2 := mustSquare("e4")
	enemyRook := mustSquare("e8")
	occupied := king.Mask() | blocker1.Mask() | blocker2.Mask() | enemyRook.Mask()

	pins := FindPins(king, occupied, king.Mask()|blocker1.Mask()|blocker2.Mask(), 0, enemyRook.Mask(), 0)
	if len(pins) != 0 {
		t.Fatalf("expected no pins with two friendly blockers, got %v", pins)
	}
}

func TestFindPinsNoPinWhenSliderWrongKindForRay(t *testing.T) {
	// A rook cannot pin along a diagonal.
	king := mustSquare("e1")
	friendlyBishop := mustSquare("c3")
	enemyRook := mustSquare("a5")
	occupied := king.Mask() | friendlyBishop.Mask() | enemyRook.Mask()

	pins := FindPins(king, occupied, king.Mask()|friendlyBishop.Mask(), 0, enemyRook.Mask(), 0)
	if len(pins) != 0 {
		t.Fatalf("expected no pins (rook does not attack diagonally), got %v", pins)
	}
}
