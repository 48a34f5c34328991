/*
check.go implements spec.md §4.8's check/checkmate classification: after a
candidate move is applied to a scratch position, classify it by
re-invoking GenerateMoves for the opponent.

Grounded on treepeck-chego/movegen.go's GenChecksCounter (attack-count
against a king square) and game.go's IsCheckmate (no legal replies plus a
non-zero check count); split here into a standalone classifier since
spec.md keeps check detection out of Position/GenerateMoves's own
surface and scores it only after the fact.
*/

package chesscore

// CheckStatus classifies a move by its effect on the opponent, per
// spec.md §4.8.
type CheckStatus uint8

const (
	NoCheck CheckStatus = iota
	Check
	Checkmate
)

// Classify applies m to position (as the mover's side), then determines
// whether the opponent is in check, checkmated, or neither. It does not
// mutate position.
func Classify(position Position, mover Color, m Move, newEPTarget Square, rights CastlingRights) CheckStatus {
	next := ApplyMove(position, mover, m)
	opp := mover.Opposite()

	opponentKing := next.KingSquare(opp)
	attackers := attackMap(next, mover, next.All())
	inCheck := attackers&opponentKing.Mask() != 0

	replies := GenerateMoves(next, opp, newEPTarget, rights)

	switch {
	case inCheck && replies.Len() == 0:
		return Checkmate
	case inCheck:
		return Check
	default:
		return NoCheck
	}
}

// ApplyMove returns the position that results from playing m for mover.
// It is a scratch-position helper for check classification and the game
// package's make-move bookkeeping; it does not validate legality.
func ApplyMove(position Position, mover Color, m Move) Position {
	assignment := make(map[Square]Piece, 32)
	for piece := WhitePawn; piece <= BlackKing; piece++ {
		board := position.Board(piece)
		for board != 0 {
			sq := popLSB(&board)
			assignment[Square(sq)] = piece
		}
	}

	switch m.Kind {
	case CastleMove:
		geo := castlingGeometries[m.Color][m.Side]
		delete(assignment, geo.kingFrom)
		delete(assignment, geo.rookFrom)
		assignment[geo.kingTo] = NewPiece(m.Color, King)
		assignment[geo.rookTo] = NewPiece(m.Color, Rook)
	default:
		delete(assignment, m.From)
		if m.IsEnPassant {
			back := pawnGeometries[mover].push.Opposite()
			capturedSq, _ := SquareFromMask(Shift(m.To.Mask(), back))
			delete(assignment, capturedSq)
		} else if m.Takes != NoPiece {
			delete(assignment, m.To)
		}
		placed := m.Piece
		if m.IsPromotion {
			placed = NewPiece(mover, m.Promotion)
		}
		assignment[m.To] = placed
	}

	placements := make([]Placement, 0, len(assignment))
	for sq, piece := range assignment {
		placements = append(placements, Placement{Square: sq, Piece: piece})
	}
	return BuildPositionReplace(placements)
}
