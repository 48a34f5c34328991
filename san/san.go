/*
Package san serializes chesscore moves into Standard Algebraic Notation,
an external collaborator per spec.md §1 (SAN is not part of the core's
move representation, only of the surrounding notation tooling).

Grounded on treepeck-chego/san.go's Move2SAN/disambiguate pair: same
piece-letter-plus-disambiguation-plus-destination assembly, rebuilt
against chesscore.Move's struct fields instead of unpacking a uint16.
See https://ia802908.us.archive.org/26/items/pgn-standard-1994-03-12/PGN_standard_1994-03-12.txt
section 8.2.3.
*/
package san

import (
	"strings"

	"github.com/ngranek/chesscore"
)

var pieceLetters = [6]byte{0, 'N', 'B', 'R', 'Q', 'K'}
var promoLetters = [6]byte{0, 'N', 'B', 'R', 'Q', 0}

// Render encodes m in Standard Algebraic Notation. legalMoves is the full
// legal move list the position from which m was generated, used to
// disambiguate moves when more than one like piece can reach the same
// destination. status classifies the move's effect on the opponent.
func Render(m chesscore.Move, legalMoves *chesscore.MoveList, status chesscore.CheckStatus) string {
	if m.Kind == chesscore.CastleMove {
		var s string
		if m.Side == chesscore.QueensideCastle {
			s = "O-O-O"
		} else {
			s = "O-O"
		}
		return s + suffix(status)
	}

	var b strings.Builder
	b.Grow(6)

	pt := m.Piece.Type()
	if letter := pieceLetters[pt]; letter != 0 {
		b.WriteByte(letter)
	}

	if pt != chesscore.Pawn {
		if disamb, ok := disambiguate(m, legalMoves); ok {
			b.WriteByte(disamb)
		}
	}

	isCapture := m.Takes != chesscore.NoPiece
	if isCapture {
		if pt == chesscore.Pawn {
			b.WriteByte(fileLetter(m.From))
		}
		b.WriteByte('x')
	}

	b.WriteString(m.To.String())

	if m.IsPromotion {
		b.WriteByte('=')
		b.WriteByte(promoLetters[m.Promotion])
	}

	b.WriteString(suffix(status))
	return b.String()
}

func suffix(status chesscore.CheckStatus) string {
	switch status {
	case chesscore.Checkmate:
		return "#"
	case chesscore.Check:
		return "+"
	default:
		return ""
	}
}

func fileLetter(sq chesscore.Square) byte {
	return "abcdefgh"[int(sq)&7]
}

// disambiguate looks for another legal move of the same piece type landing
// on the same square, and returns the file or rank letter that tells them
// apart, per the source's file-first-then-rank rule.
func disambiguate(m chesscore.Move, legalMoves *chesscore.MoveList) (byte, bool) {
	for i := 0; i < legalMoves.Len(); i++ {
		other := legalMoves.At(i)
		if other.Kind != chesscore.StandardMove {
			continue
		}
		if other.Piece != m.Piece || other.To != m.To || other.From == m.From {
			continue
		}
		if fileLetter(other.From) != fileLetter(m.From) {
			return fileLetter(m.From), true
		}
		return rankLetter(m.From), true
	}
	return 0, false
}

func rankLetter(sq chesscore.Square) byte {
	return byte(int(sq)>>3) + '1'
}
