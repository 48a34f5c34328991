/*
pin.go implements spec.md §4.4's pin detection: walking all eight rays out
from a king, a friendly piece is pinned when it is the sole occupant
between the king and an enemy slider attacking along that same ray.

Grounded on treepeck-chego/movegen.go's check/pin bookkeeping inside
genLegalMoves (which folds pin detection into the same ray walk as attack
generation); split out here into its own pass since spec.md treats pin
detection as an independent module consumed by move generation.
*/

package chesscore

// Pin records that the piece on Pinned may only move along AllowedMask
// (the ray between the king and the pinning piece, plus the pinning piece's
// own square) without exposing the king to check.
type Pin struct {
	Pinned      Square
	AllowedMask uint64
}

// isDiagonal reports whether d is one of the four diagonal ray directions.
func isDiagonal(d Direction) bool {
	return d == UpRight || d == UpLeft || d == DownRight || d == DownLeft
}

// FindPins walks all eight rays from kingSquare and returns every pin
// against the side to move's king, given the full board occupancy and the
// enemy's bishop/rook/queen bitboards.
func FindPins(kingSquare Square, occupied uint64, friendly uint64, enemyBishops, enemyRooks, enemyQueens uint64) []Pin {
	var pins []Pin
	origin := kingSquare.Mask()

	for _, d := range append(append([]Direction{}, diagonalRayDirections[:]...), orthogonalRayDirections[:]...) {
		var sliders uint64
		if isDiagonal(d) {
			sliders = enemyBishops | enemyQueens
		} else {
			sliders = enemyRooks | enemyQueens
		}

		var rayMask uint64
		var firstFriendly Square = NoSquare
		current := origin
		for {
			current = Shift(current, d)
			if current == 0 {
				break
			}
			rayMask |= current

			if current&occupied == 0 {
				continue
			}

			if current&friendly != 0 {
				if firstFriendly != NoSquare {
					// Second friendly piece on the ray: no pin possible.
					break
				}
				sq, err := SquareFromMask(current)
				if err != nil {
					log.Errorf("FindPins: %v", err)
					break
				}
				firstFriendly = sq
				continue
			}

			// First occupied square is an enemy piece.
			if firstFriendly == NoSquare {
				break
			}
			if current&sliders != 0 {
				pins = append(pins, Pin{Pinned: firstFriendly, AllowedMask: rayMask})
			}
			break
		}
	}

	return pins
}
