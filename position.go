/*
position.go implements spec.md §3 and §6.1's position/bitboard set: twelve
per-piece bitboards plus the white, black, and all-occupied aggregates,
built from a square-to-piece assignment rather than incrementally mutated
square by square.

Grounded on treepeck-chego/position.go's Position{Bitboards [15]uint64}
layout and placePiece/removePiece pair; generalized into an immutable
builder (BuildPosition) since spec.md treats position construction as a
single pure operation (§6.1) rather than exposing in-place mutation from
the core.
*/

package chesscore

// Position is an immutable chessboard occupancy: one bitboard per piece,
// plus the three aggregates movegen needs (own side, enemy side, all).
type Position struct {
	boards [12]uint64
	white  uint64
	black  uint64
	all    uint64
}

// Placement asserts that Piece occupies Square; it is the unit BuildPosition
// consumes. A plain map[Square]Piece can't express "the same square was
// asserted twice" (its keys are already deduplicated by construction), so
// callers hand BuildPosition an ordered sequence of these instead, mirroring
// treepeck-chego/position.go's one-square-at-a-time placePiece calls.
type Placement struct {
	Square Square
	Piece  Piece
}

// BuildPosition assembles a Position from an ordered sequence of square
// assertions. Every square may be asserted at most once; asserting the same
// square twice fails with ErrDuplicateSquare.
func BuildPosition(assertions []Placement) (Position, *Error) {
	return buildPosition(assertions, false)
}

// BuildPositionReplace assembles a Position like BuildPosition, but a
// repeated assertion silently overwrites the earlier one instead of
// failing. Used by callers staging incremental edits (e.g. applying a
// move to a scratch position) where overwrite is the intended behavior.
func BuildPositionReplace(assertions []Placement) Position {
	p, _ := buildPosition(assertions, true)
	return p
}

func buildPosition(assertions []Placement, replace bool) (Position, *Error) {
	var p Position
	seen := make(map[Square]Piece, len(assertions))
	for _, a := range assertions {
		if prev, ok := seen[a.Square]; ok {
			if !replace {
				return Position{}, &Error{Kind: ErrDuplicateSquare, Square: a.Square, Piece: a.Piece}
			}
			p.remove(a.Square, prev)
		}
		seen[a.Square] = a.Piece
		p.place(a.Square, a.Piece)
	}
	return p, nil
}

// place sets piece on sq, updating the per-piece board and the relevant
// aggregates. It does not clear a prior occupant of sq; buildPosition
// removes that occupant first when a replace-flagged rebuild asserts the
// same square again.
func (p *Position) place(sq Square, piece Piece) {
	mask := sq.Mask()
	p.boards[piece] |= mask
	if piece.Color() == White {
		p.white |= mask
	} else {
		p.black |= mask
	}
	p.all |= mask
}

// remove clears piece from sq.
func (p *Position) remove(sq Square, piece Piece) {
	mask := sq.Mask()
	p.boards[piece] &^= mask
	if piece.Color() == White {
		p.white &^= mask
	} else {
		p.black &^= mask
	}
	p.all &^= mask
}

// Board returns the raw bitboard for one piece class.
func (p Position) Board(piece Piece) uint64 { return p.boards[piece] }

// Occupied returns the aggregate occupancy of c's side.
func (p Position) Occupied(c Color) uint64 {
	if c == White {
		return p.white
	}
	return p.black
}

// All returns the aggregate occupancy of every piece on the board.
func (p Position) All() uint64 { return p.all }

// PieceAt resolves the piece occupying sq, or NoPiece if it is empty.
// Capture-target resolution (spec.md §4.6's `piece_at`) goes through this.
// It panics with ErrCapturePieceNotFound if sq is marked occupied but no
// per-piece board holds it.
func (p Position) PieceAt(sq Square) (Piece, *Error) {
	mask := sq.Mask()
	if p.all&mask == 0 {
		return NoPiece, nil
	}
	for piece := WhitePawn; piece <= BlackKing; piece++ {
		if p.boards[piece]&mask != 0 {
			return piece, nil
		}
	}
	panic(&Error{Kind: ErrCapturePieceNotFound, Square: sq})
}

// KingSquare returns the square of c's king. Every legal position has
// exactly one; callers constructing scratch positions for testing must
// ensure this invariant holds.
func (p Position) KingSquare(c Color) Square {
	sq, err := SquareFromMask(p.boards[NewPiece(c, King)])
	if err != nil {
		log.Errorf("KingSquare: %v", err)
		return NoSquare
	}
	return sq
}
