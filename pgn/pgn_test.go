package pgn

import (
	"strings"
	"testing"
)

func TestSerializeTagsAndMovetext(t *testing.T) {
	tags := Tags{Event: "Test Match", White: "Alice", Black: "Bob", Result: "1-0"}
	moves := []string{"e4", "e5", "Nf3", "Nc6", "Bb5"}
	got := Serialize(tags, moves)

	if !strings.Contains(got, `[Event "Test Match"]`) {
		t.Fatalf("expected Event tag, got %q", got)
	}
	if !strings.Contains(got, `[White "Alice"]`) {
		t.Fatalf("expected White tag, got %q", got)
	}
	if !strings.Contains(got, "1. e4 e5 2. Nf3 Nc6 3. Bb5") {
		t.Fatalf("expected numbered movetext, got %q", got)
	}
	if !strings.HasSuffix(got, "1-0") {
		t.Fatalf("expected the result to trail the movetext, got %q", got)
	}
}

func TestSerializeOmitsEmptyTags(t *testing.T) {
	got := Serialize(Tags{}, []string{"e4"})
	if strings.Contains(got, "[Event") {
		t.Fatalf("expected no Event tag when Event is empty, got %q", got)
	}
}

func TestSerializeOddMoveCount(t *testing.T) {
	got := Serialize(Tags{}, []string{"e4", "e5", "Nf3"})
	if !strings.Contains(got, "1. e4 e5 2. Nf3") {
		t.Fatalf("expected trailing white move numbered correctly, got %q", got)
	}
}
