/*
piece.go declares the color and piece-class enumerations described in
spec.md §3. Piece is a single 12-variant enumeration (color x piece type)
rather than a (Color, PieceType) pair, following treepeck-chego's
PieceWPawn..PieceBKing layout, since every bitboard aggregate and lookup
table in the core is indexed by it directly.
*/

package chesscore

// Color identifies a side to move.
type Color uint8

const (
	White Color = iota
	Black
)

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Opposite returns the other color.
func (c Color) Opposite() Color { return c ^ 1 }

// PieceType identifies a piece class independent of color.
type PieceType uint8

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
)

// Piece is one of the twelve (color, piece type) combinations.
type Piece uint8

const (
	WhitePawn Piece = iota
	WhiteKnight
	WhiteBishop
	WhiteRook
	WhiteQueen
	WhiteKing
	BlackPawn
	BlackKnight
	BlackBishop
	BlackRook
	BlackQueen
	BlackKing

	NoPiece Piece = 0xFF
)

// pieceSymbols renders each piece as a single letter; uppercase is white.
var pieceSymbols = [12]byte{
	'P', 'N', 'B', 'R', 'Q', 'K',
	'p', 'n', 'b', 'r', 'q', 'k',
}

// NewPiece combines a color and a piece type into the corresponding Piece.
func NewPiece(c Color, t PieceType) Piece {
	return Piece(c)*6 + Piece(t)
}

// Color returns the piece's side.
func (p Piece) Color() Color { return Color(p / 6) }

// Type returns the piece's class, independent of color.
func (p Piece) Type() PieceType { return PieceType(p % 6) }

// String renders the piece as its single-letter symbol.
func (p Piece) String() string {
	if p > BlackKing {
		return "-"
	}
	return string(pieceSymbols[p])
}
