/*
Package fen converts between Forsyth-Edwards Notation strings and
chesscore positions. It is one of the external collaborators spec.md §1
carves out of the core: FEN I/O is not part of move generation itself.

Grounded on treepeck-chego/fen.go's ParseFEN/SerializeFEN/ParseBitboards/
SerializeBitboards field-by-field approach, rebuilt against chesscore's
BuildPosition/PieceAt surface instead of a raw [15]uint64 array.
*/
package fen

import (
	"math/bits"
	"strconv"
	"strings"

	"github.com/ngranek/chesscore"
)

// State is a complete FEN-derived game snapshot: the board plus every
// piece of state generate_moves needs alongside it.
type State struct {
	Position       chesscore.Position
	SideToMove     chesscore.Color
	Castling       chesscore.CastlingRights
	EPTarget       chesscore.Square
	HalfmoveClock  int
	FullmoveNumber int
}

var pieceChars = map[byte]chesscore.Piece{
	'P': chesscore.WhitePawn, 'N': chesscore.WhiteKnight, 'B': chesscore.WhiteBishop,
	'R': chesscore.WhiteRook, 'Q': chesscore.WhiteQueen, 'K': chesscore.WhiteKing,
	'p': chesscore.BlackPawn, 'n': chesscore.BlackKnight, 'b': chesscore.BlackBishop,
	'r': chesscore.BlackRook, 'q': chesscore.BlackQueen, 'k': chesscore.BlackKing,
}

var pieceLetters = map[chesscore.Piece]byte{
	chesscore.WhitePawn: 'P', chesscore.WhiteKnight: 'N', chesscore.WhiteBishop: 'B',
	chesscore.WhiteRook: 'R', chesscore.WhiteQueen: 'Q', chesscore.WhiteKing: 'K',
	chesscore.BlackPawn: 'p', chesscore.BlackKnight: 'n', chesscore.BlackBishop: 'b',
	chesscore.BlackRook: 'r', chesscore.BlackQueen: 'q', chesscore.BlackKing: 'k',
}

// InitialPosition is the FEN of the standard chess starting position.
const InitialPosition = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Parse parses a complete FEN string into a State.
func Parse(fenString string) (State, *chesscore.Error) {
	var s State
	fields := strings.SplitN(fenString, " ", 6)

	assignment := make([]chesscore.Placement, 0, 32)
	square := 56 // rank 8, file a; FEN walks ranks top-down, files left-to-right.
	for i := 0; i < len(fields[0]); i++ {
		c := fields[0][i]
		switch {
		case c == '/':
			square -= 16
		case c >= '1' && c <= '8':
			square += int(c - '0')
		default:
			piece, ok := pieceChars[c]
			if !ok {
				return State{}, &chesscore.Error{Kind: chesscore.ErrInvalidFileChar, Ch: c}
			}
			assignment = append(assignment, chesscore.Placement{Square: chesscore.Square(square), Piece: piece})
			square++
		}
	}
	pos, err := chesscore.BuildPosition(assignment)
	if err != nil {
		return State{}, err
	}
	s.Position = pos

	if len(fields) > 1 && fields[1] == "b" {
		s.SideToMove = chesscore.Black
	}

	if len(fields) > 2 {
		for i := 0; i < len(fields[2]); i++ {
			switch fields[2][i] {
			case 'K':
				s.Castling.WhiteKingside = true
			case 'Q':
				s.Castling.WhiteQueenside = true
			case 'k':
				s.Castling.BlackKingside = true
			case 'q':
				s.Castling.BlackQueenside = true
			}
		}
	}

	s.EPTarget = chesscore.NoSquare
	if len(fields) > 3 && fields[3] != "-" {
		sq, serr := chesscore.SquareFromString(fields[3])
		if serr != nil {
			return State{}, serr
		}
		s.EPTarget = sq
	}

	if len(fields) > 4 {
		n, convErr := strconv.Atoi(fields[4])
		if convErr != nil {
			return State{}, &chesscore.Error{Kind: chesscore.ErrInvalidLength, Str: fields[4]}
		}
		s.HalfmoveClock = n
	}
	if len(fields) > 5 {
		n, convErr := strconv.Atoi(fields[5])
		if convErr != nil {
			return State{}, &chesscore.Error{Kind: chesscore.ErrInvalidLength, Str: fields[5]}
		}
		s.FullmoveNumber = n
	} else {
		s.FullmoveNumber = 1
	}

	return s, nil
}

// Serialize renders s as a FEN string.
func Serialize(s State) string {
	var b strings.Builder
	b.Grow(64)

	var board [64]byte
	for piece := chesscore.WhitePawn; piece <= chesscore.BlackKing; piece++ {
		bb := s.Position.Board(piece)
		for bb != 0 {
			idx := bits.TrailingZeros64(bb)
			board[idx] = pieceLetters[piece]
			bb &= bb - 1
		}
	}

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			c := board[rank*8+file]
			if c == 0 {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteByte('0' + byte(empty))
				empty = 0
			}
			b.WriteByte(c)
		}
		if empty > 0 {
			b.WriteByte('0' + byte(empty))
		}
		if rank != 0 {
			b.WriteByte('/')
		}
	}

	b.WriteByte(' ')
	if s.SideToMove == chesscore.White {
		b.WriteByte('w')
	} else {
		b.WriteByte('b')
	}
	b.WriteByte(' ')

	any := false
	if s.Castling.WhiteKingside {
		b.WriteByte('K')
		any = true
	}
	if s.Castling.WhiteQueenside {
		b.WriteByte('Q')
		any = true
	}
	if s.Castling.BlackKingside {
		b.WriteByte('k')
		any = true
	}
	if s.Castling.BlackQueenside {
		b.WriteByte('q')
		any = true
	}
	if !any {
		b.WriteByte('-')
	}
	b.WriteByte(' ')

	if s.EPTarget == chesscore.NoSquare {
		b.WriteByte('-')
	} else {
		b.WriteString(s.EPTarget.String())
	}
	b.WriteByte(' ')

	b.WriteString(strconv.Itoa(s.HalfmoveClock))
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(s.FullmoveNumber))

	return b.String()
}
