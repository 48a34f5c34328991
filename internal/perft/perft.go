/*
Package perft implements the standard move-generator correctness harness:
walking the move tree to a fixed depth and counting leaf nodes, optionally
broken down by move category.

Grounded on treepeck-chego/internal/perft/perft.go's perft/perftVerbose
pair (same recursive leaf-count-plus-category-tally shape), rebuilt
against chesscore's immutable Position/GenerateMoves/ApplyMove instead of
the teacher's in-place Position.MakeMove, since this core has no mutating
make-move of its own.
*/
package perft

import "github.com/ngranek/chesscore"

// State bundles every piece of state GenerateMoves needs, letting Count
// and Divide recurse without threading four parameters by hand.
type State struct {
	Position chesscore.Position
	Side     chesscore.Color
	EPTarget chesscore.Square
	Rights   chesscore.CastlingRights
}

// Breakdown tallies move categories encountered at the leaves, mirroring
// the categories chess programmers conventionally verify a generator
// against. See https://www.chessprogramming.org/Perft_Results
type Breakdown struct {
	Nodes      int
	Captures   int
	EnPassant  int
	Castles    int
	Promotions int
	Checks     int
	Checkmates int
}

// Count walks the move tree from s to depth plies and returns the number
// of leaf positions reached.
func Count(s State, depth int) int {
	if depth == 0 {
		return 1
	}
	list := chesscore.GenerateMoves(s.Position, s.Side, s.EPTarget, s.Rights)
	if depth == 1 {
		return list.Len()
	}
	nodes := 0
	for i := 0; i < list.Len(); i++ {
		nodes += Count(next(s, list.At(i)), depth-1)
	}
	return nodes
}

// CountVerbose behaves like Count but also accumulates a Breakdown of the
// moves played along the way, for debugging a generator discrepancy.
func CountVerbose(s State, depth int, b *Breakdown) int {
	if depth == 0 {
		b.Nodes++
		return 1
	}
	list := chesscore.GenerateMoves(s.Position, s.Side, s.EPTarget, s.Rights)
	if depth == 1 {
		for i := 0; i < list.Len(); i++ {
			m := list.At(i)
			b.Nodes++
			tallyLeaf(s, m, b)
		}
		return list.Len()
	}
	nodes := 0
	for i := 0; i < list.Len(); i++ {
		nodes += CountVerbose(next(s, list.At(i)), depth-1, b)
	}
	return nodes
}

func tallyLeaf(s State, m chesscore.Move, b *Breakdown) {
	switch m.Kind {
	case chesscore.CastleMove:
		b.Castles++
	default:
		if m.Takes != chesscore.NoPiece {
			b.Captures++
		}
		if m.IsEnPassant {
			b.EnPassant++
		}
		if m.IsPromotion {
			b.Promotions++
		}
	}
	status := chesscore.Classify(s.Position, s.Side, m, nextEPTarget(m), s.Rights)
	if status == chesscore.Check || status == chesscore.Checkmate {
		b.Checks++
	}
	if status == chesscore.Checkmate {
		b.Checkmates++
	}
}

// Divide returns, for each legal move at the root, the node count of the
// subtree it roots at depth-1 further plies -- the standard tool for
// bisecting a perft mismatch against a reference engine.
func Divide(s State, depth int) map[string]int {
	out := make(map[string]int)
	list := chesscore.GenerateMoves(s.Position, s.Side, s.EPTarget, s.Rights)
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		out[m.UCI()] = Count(next(s, m), depth-1)
	}
	return out
}

func next(s State, m chesscore.Move) State {
	return State{
		Position: chesscore.ApplyMove(s.Position, s.Side, m),
		Side:     s.Side.Opposite(),
		EPTarget: nextEPTarget(m),
		Rights:   nextCastlingRights(s.Rights, m),
	}
}

func nextEPTarget(m chesscore.Move) chesscore.Square {
	if m.Kind != chesscore.StandardMove {
		return chesscore.NoSquare
	}
	return m.EnPassant
}

func nextCastlingRights(rights chesscore.CastlingRights, m chesscore.Move) chesscore.CastlingRights {
	clearSquare := func(sq chesscore.Square) {
		switch sq.String() {
		case "e1":
			rights.WhiteKingside, rights.WhiteQueenside = false, false
		case "e8":
			rights.BlackKingside, rights.BlackQueenside = false, false
		case "a1":
			rights.WhiteQueenside = false
		case "h1":
			rights.WhiteKingside = false
		case "a8":
			rights.BlackQueenside = false
		case "h8":
			rights.BlackKingside = false
		}
	}
	if m.Kind == chesscore.CastleMove {
		if m.Color == chesscore.White {
			rights.WhiteKingside, rights.WhiteQueenside = false, false
		} else {
			rights.BlackKingside, rights.BlackQueenside = false, false
		}
		return rights
	}
	clearSquare(m.From)
	clearSquare(m.To)
	return rights
}
