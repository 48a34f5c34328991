/*
Package zobrist implements Zobrist hashing for threefold-repetition
detection, an external collaborator per spec.md §1's carve-out (the core
itself never hashes positions).

Grounded on treepeck-chego/zobrist.go's per-piece/per-square random key
table and XOR-fold hash, rebuilt against chesscore's Piece/Square/
CastlingRights/Color types (the position, side to move, en passant target
and castling rights the game package hands it) instead of the teacher's
raw Position.Bitboards array.
*/
package zobrist

import (
	"math/bits"
	"math/rand/v2"

	"github.com/ngranek/chesscore"
)

// Keys holds one freshly-seeded set of random hash keys. Every game.Game
// builds its own with NewKeys; hashes are only comparable when computed
// with the same Keys.
type Keys struct {
	piece    [12][64]uint64
	ep       [64]uint64
	castling [16]uint64
	color    uint64
}

// NewKeys generates a fresh, randomly-seeded key set.
func NewKeys() *Keys {
	k := &Keys{}
	for piece := chesscore.WhitePawn; piece <= chesscore.BlackKing; piece++ {
		for sq := 0; sq < 64; sq++ {
			k.piece[piece][sq] = rand.Uint64()
		}
	}
	for sq := 0; sq < 64; sq++ {
		k.ep[sq] = rand.Uint64()
	}
	for i := range k.castling {
		k.castling[i] = rand.Uint64()
	}
	k.color = rand.Uint64()
	return k
}

func castlingIndex(c chesscore.CastlingRights) int {
	idx := 0
	if c.WhiteKingside {
		idx |= 1
	}
	if c.WhiteQueenside {
		idx |= 2
	}
	if c.BlackKingside {
		idx |= 4
	}
	if c.BlackQueenside {
		idx |= 8
	}
	return idx
}

// Hash computes the Zobrist key for a position snapshot: the board, the
// side to move, castling rights, and the en passant target.
func (k *Keys) Hash(position chesscore.Position, side chesscore.Color, epTarget chesscore.Square, rights chesscore.CastlingRights) uint64 {
	var key uint64
	for piece := chesscore.WhitePawn; piece <= chesscore.BlackKing; piece++ {
		bb := position.Board(piece)
		for bb != 0 {
			idx := bits.TrailingZeros64(bb)
			key ^= k.piece[piece][idx]
			bb &= bb - 1
		}
	}
	if epTarget != chesscore.NoSquare {
		key ^= k.ep[int(epTarget)]
	}
	key ^= k.castling[castlingIndex(rights)]
	if side == chesscore.Black {
		key ^= k.color
	}
	return key
}
