/*
Package uci implements the string-level parsing half of the Universal
Chess Interface, an external collaborator per spec.md §1 — the core
renders UCI (chesscore.Move.UCI) but never parses it back, since that
requires matching against a generated move list to recover
takes/en-passant/check bookkeeping.

Grounded on treepeck-chego/uci.go's Move2UCI (now chesscore.Move.UCI);
this package adds the parse direction the teacher never implemented.
*/
package uci

import "github.com/ngranek/chesscore"

var promotionLetters = map[byte]chesscore.PieceType{
	'n': chesscore.Knight,
	'b': chesscore.Bishop,
	'r': chesscore.Rook,
	'q': chesscore.Queen,
}

// ParsedMove is the raw shape a UCI move string carries before it is
// matched against a position's legal move list.
type ParsedMove struct {
	From, To  chesscore.Square
	Promotion chesscore.PieceType
	HasPromo  bool
}

// ParseMove parses a long-algebraic move string such as "e2e4" or
// "e7e8q" into its from/to squares and optional promotion letter.
func ParseMove(s string) (ParsedMove, *chesscore.Error) {
	if len(s) != 4 && len(s) != 5 {
		return ParsedMove{}, &chesscore.Error{Kind: chesscore.ErrInvalidLength, Str: s}
	}
	from, err := chesscore.SquareFromString(s[0:2])
	if err != nil {
		return ParsedMove{}, err
	}
	to, err := chesscore.SquareFromString(s[2:4])
	if err != nil {
		return ParsedMove{}, err
	}
	pm := ParsedMove{From: from, To: to}
	if len(s) == 5 {
		pt, ok := promotionLetters[s[4]]
		if !ok {
			return ParsedMove{}, &chesscore.Error{Kind: chesscore.ErrInvalidFileChar, Ch: s[4]}
		}
		pm.Promotion = pt
		pm.HasPromo = true
	}
	return pm, nil
}

// Match finds the legal move in list whose from/to/promotion matches pm,
// the usual next step after parsing a "position ... moves e2e4" command.
func Match(list *chesscore.MoveList, pm ParsedMove) (chesscore.Move, bool) {
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		if m.Kind != chesscore.StandardMove {
			continue
		}
		if m.From != pm.From || m.To != pm.To {
			continue
		}
		if pm.HasPromo && (!m.IsPromotion || m.Promotion != pm.Promotion) {
			continue
		}
		return m, true
	}
	return chesscore.Move{}, false
}
