package chesscore

import "testing"

func TestBitScan(t *testing.T) {
	for i := 0; i < 64; i++ {
		bb := uint64(1) << uint(i)
		if got := bitScan(bb); got != i {
			t.Fatalf("bit %d: expected %d, got %d", i, i, got)
		}
	}
}

func TestPopLSB(t *testing.T) {
	bb := uint64(0b1011000)
	first := popLSB(&bb)
	if first != 3 {
		t.Fatalf("expected first popped bit 3, got %d", first)
	}
	second := popLSB(&bb)
	if second != 4 {
		t.Fatalf("expected second popped bit 4, got %d", second)
	}
	if bb&(bb-1) == 0 && bb != 1<<6 {
		t.Fatalf("expected only bit 6 left, got %#016x", bb)
	}
}

func TestPopCount(t *testing.T) {
	testcases := []struct {
		bb       uint64
		expected int
	}{
		{0, 0},
		{1, 1},
		{0xFF, 8},
		{0xFFFFFFFFFFFFFFFF, 64},
	}
	for _, tc := range testcases {
		if got := popCount(tc.bb); got != tc.expected {
			t.Fatalf("popCount(%#016x): expected %d, got %d", tc.bb, tc.expected, got)
		}
	}
}
