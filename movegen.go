/*
movegen.go implements spec.md §4.5's move generators: six pawn
sub-generators, knight, the three slider families, king, and castling,
composed by GenerateMoves in the deterministic order §5 mandates.

Grounded on treepeck-chego/movegen.go's genPawnMoves/genNormalMoves/
genKingMoves family (same piece-by-piece decomposition, same LSB-first
bit iteration via popLSB) but rebuilt around the batched pack-and-unpack
ray walk spec.md §4.5 describes (walkRay/emitRayMoves, all origins of a
piece class at once) instead of the teacher's magic-bitboard attack lookup.
*/

package chesscore

// CastlingRights records which castling moves each side has not yet
// forfeited. It does not check legality (blockers, attacked squares) --
// that is movegen's job -- only whether the right has been revoked.
type CastlingRights struct {
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool
}

// GenerateMoves is the composite, pure entry point: it returns the
// ordered, fully legal move list for side in position, given the optional
// en passant target and the castling rights still held.
func GenerateMoves(position Position, side Color, epTarget Square, rights CastlingRights) *MoveList {
	pseudo := NewMoveList()

	opp := side.Opposite()
	kingSq := position.KingSquare(side)
	pins := FindPins(kingSq, position.All(), position.Occupied(side),
		position.Board(NewPiece(opp, Bishop)), position.Board(NewPiece(opp, Rook)), position.Board(NewPiece(opp, Queen)))
	pinMask := make(map[Square]uint64, len(pins))
	for _, p := range pins {
		pinMask[p.Pinned] = p.AllowedMask
	}

	genPawnMoves(position, side, epTarget, pinMask, pseudo)
	genKnightMoves(position, side, pinMask, pseudo)
	genSliderFamilyMoves(position, side, Bishop, diagonalRayDirections[:], pinMask, pseudo)
	genSliderFamilyMoves(position, side, Rook, orthogonalRayDirections[:], pinMask, pseudo)
	genQueenMoves(position, side, pinMask, pseudo)
	genKingMoves(position, side, kingSq, pseudo)
	genCastlingMoves(position, side, rights, pseudo)

	return filterSelfCheck(position, side, opp, kingSq, pseudo)
}

// filterSelfCheck drops any move in pseudo that would leave side's own king
// attacked after the move is played. The pin filter above only rejects a
// pinned piece's own ray-breaking moves; it says nothing about a mover
// already in check from elsewhere on the board (a distant knight, a check
// from a piece other than the pinner), so every non-king move still needs
// this authoritative after-the-fact check. King moves and castles are
// exempted: genKingMoves/genCastlingMoves already exclude attacked
// destinations and attacked transit squares by construction.
func filterSelfCheck(position Position, side, opp Color, kingSq Square, pseudo *MoveList) *MoveList {
	legal := NewMoveList()
	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.At(i)
		if m.Kind == CastleMove || m.Piece.Type() == King {
			legal.Push(m)
			continue
		}
		next := ApplyMove(position, side, m)
		if attackMap(next, opp, next.All())&kingSq.Mask() == 0 {
			legal.Push(m)
		}
	}
	return legal
}

// pawnGeometry collects the color-dependent directions and ranks the pawn
// sub-generators need; white and black share one code path shaped around
// this table instead of duplicating each sub-generator per color.
type pawnGeometry struct {
	push, capLeft, capRight Direction
	homeRank                Rank
	promoRank               Rank
}

var pawnGeometries = [2]pawnGeometry{
	White: {push: Up, capLeft: UpLeft, capRight: UpRight, homeRank: Rank2, promoRank: Rank7},
	Black: {push: Down, capLeft: DownLeft, capRight: DownRight, homeRank: Rank7, promoRank: Rank2},
}

var promotionPieces = [4]PieceType{Knight, Bishop, Rook, Queen}

func genPawnMoves(position Position, side Color, epTarget Square, pinMask map[Square]uint64, list *MoveList) {
	g := pawnGeometries[side]
	piece := NewPiece(side, Pawn)
	ownPawns := position.Board(piece)
	occupied := position.All()
	enemy := position.Occupied(side.Opposite())
	nonPromo := ownPawns &^ uint64(g.promoRank)
	promo := ownPawns & uint64(g.promoRank)
	back := g.push.Opposite()

	// 1. Single push.
	dest := Shift(nonPromo, g.push) &^ occupied
	for dest != 0 {
		bit := uint64(1) << uint(popLSB(&dest))
		toSq, _ := SquareFromMask(bit)
		fromSq, _ := SquareFromMask(Shift(bit, back))
		if mask, pinned := pinMask[fromSq]; pinned && mask&bit == 0 {
			continue
		}
		list.Push(NewStandardMove(fromSq, toSq, piece))
	}

	// 2. Double push.
	homeOrigins := nonPromo & uint64(g.homeRank)
	first := Shift(homeOrigins, g.push) &^ occupied
	dest2 := Shift(first, g.push) &^ occupied
	for dest2 != 0 {
		bit := uint64(1) << uint(popLSB(&dest2))
		toSq, _ := SquareFromMask(bit)
		jumped := Shift(bit, back)
		fromMask := Shift(jumped, back)
		fromSq, _ := SquareFromMask(fromMask)
		epSq, _ := SquareFromMask(jumped)
		if mask, pinned := pinMask[fromSq]; pinned && mask&bit == 0 {
			continue
		}
		mv := NewStandardMove(fromSq, toSq, piece)
		mv.EnPassant = epSq
		list.Push(mv)
	}

	// 3. Left capture.
	genPawnCapture(nonPromo, g.capLeft, enemy, position, piece, pinMask, list)
	// 4. Right capture.
	genPawnCapture(nonPromo, g.capRight, enemy, position, piece, pinMask, list)

	// 5. En passant.
	if epTarget != NoSquare {
		t := epTarget.Mask()
		origins := (Shift(t, g.capLeft.Opposite()) | Shift(t, g.capRight.Opposite())) & ownPawns
		for origins != 0 {
			bit := uint64(1) << uint(popLSB(&origins))
			fromSq, _ := SquareFromMask(bit)
			if mask, pinned := pinMask[fromSq]; pinned && mask&t == 0 {
				continue
			}
			capturedSq, _ := SquareFromMask(Shift(t, back))
			capturedPiece, _ := position.PieceAt(capturedSq)
			mv := NewStandardMove(fromSq, epTarget, piece)
			mv.Takes = capturedPiece
			mv.IsEnPassant = true
			list.Push(mv)
		}
	}

	// 6. Promotion.
	genPawnPromotions(promo, g, enemy, occupied, position, piece, pinMask, list)
}

func genPawnCapture(origins uint64, d Direction, enemy uint64, position Position, piece Piece, pinMask map[Square]uint64, list *MoveList) {
	back := d.Opposite()
	dest := Shift(origins, d) & enemy
	for dest != 0 {
		bit := uint64(1) << uint(popLSB(&dest))
		toSq, _ := SquareFromMask(bit)
		fromSq, _ := SquareFromMask(Shift(bit, back))
		if mask, pinned := pinMask[fromSq]; pinned && mask&bit == 0 {
			continue
		}
		capturedPiece, _ := position.PieceAt(toSq)
		mv := NewStandardMove(fromSq, toSq, piece)
		mv.Takes = capturedPiece
		list.Push(mv)
	}
}

func genPawnPromotions(origins uint64, g pawnGeometry, enemy, occupied uint64, position Position, piece Piece, pinMask map[Square]uint64, list *MoveList) {
	type cand struct {
		from, to Square
		takes    Piece
	}
	var cands []cand

	pushDest := Shift(origins, g.push) &^ occupied
	for pushDest != 0 {
		bit := uint64(1) << uint(popLSB(&pushDest))
		toSq, _ := SquareFromMask(bit)
		fromSq, _ := SquareFromMask(Shift(bit, g.push.Opposite()))
		cands = append(cands, cand{fromSq, toSq, NoPiece})
	}
	for _, d := range [2]Direction{g.capLeft, g.capRight} {
		dest := Shift(origins, d) & enemy
		for dest != 0 {
			bit := uint64(1) << uint(popLSB(&dest))
			toSq, _ := SquareFromMask(bit)
			fromSq, _ := SquareFromMask(Shift(bit, d.Opposite()))
			capturedPiece, _ := position.PieceAt(toSq)
			cands = append(cands, cand{fromSq, toSq, capturedPiece})
		}
	}

	for _, c := range cands {
		if mask, pinned := pinMask[c.from]; pinned && mask&c.to.Mask() == 0 {
			continue
		}
		for _, pt := range promotionPieces {
			mv := NewStandardMove(c.from, c.to, piece)
			mv.Takes = c.takes
			mv.IsPromotion = true
			mv.Promotion = pt
			list.Push(mv)
		}
	}
}

func genKnightMoves(position Position, side Color, pinMask map[Square]uint64, list *MoveList) {
	piece := NewPiece(side, Knight)
	own := position.Occupied(side)
	enemy := position.Occupied(side.Opposite())
	knights := position.Board(piece)

	for _, d := range knightDirections {
		dest := Shift(knights, d) &^ own
		back := d.Opposite()
		for dest != 0 {
			bit := uint64(1) << uint(popLSB(&dest))
			toSq, _ := SquareFromMask(bit)
			fromSq, _ := SquareFromMask(Shift(bit, back))
			if mask, pinned := pinMask[fromSq]; pinned && mask&bit == 0 {
				continue
			}
			mv := NewStandardMove(fromSq, toSq, piece)
			if bit&enemy != 0 {
				capturedPiece, _ := position.PieceAt(toSq)
				mv.Takes = capturedPiece
			}
			list.Push(mv)
		}
	}
}

// rayStep is one iteration of the shift-and-fold ray walk: next holds the
// destinations reached this step (already excluding own pieces), caps the
// subset of those that are captures.
type rayStep struct {
	next uint64
	caps uint64
}

// walkRay implements spec.md §4.5's iterative pack step: repeatedly shift
// the still-live origin set, drop anything landing on an own piece, record
// the step, and stop feeding a ray past the square it just captured on.
func walkRay(origins uint64, d Direction, ownPieces, enemyPieces uint64) []rayStep {
	var stack []rayStep
	r := origins
	for {
		next := Shift(r, d) &^ ownPieces
		if next == 0 {
			break
		}
		caps := next & enemyPieces
		stack = append(stack, rayStep{next: next, caps: caps})
		r = next &^ enemyPieces
	}
	return stack
}

// emitRayMoves replays walkRay's stack: for stack index k, a destination
// bit's origin is recovered by applying Shift(·, opposite(d)) k+1 times.
func emitRayMoves(origins uint64, d Direction, ownPieces, enemyPieces uint64, piece Piece, position Position, pinMask map[Square]uint64, list *MoveList) {
	stack := walkRay(origins, d, ownPieces, enemyPieces)
	back := d.Opposite()
	for k, step := range stack {
		mask := step.next
		for mask != 0 {
			bit := uint64(1) << uint(popLSB(&mask))
			from := bit
			for i := 0; i <= k; i++ {
				from = Shift(from, back)
			}
			fromSq, _ := SquareFromMask(from)
			toSq, _ := SquareFromMask(bit)
			if pm, pinned := pinMask[fromSq]; pinned && pm&bit == 0 {
				continue
			}
			mv := NewStandardMove(fromSq, toSq, piece)
			if bit&step.caps != 0 {
				capturedPiece, _ := position.PieceAt(toSq)
				mv.Takes = capturedPiece
			}
			list.Push(mv)
		}
	}
}

func genSliderFamilyMoves(position Position, side Color, pt PieceType, dirs []Direction, pinMask map[Square]uint64, list *MoveList) {
	piece := NewPiece(side, pt)
	own := position.Occupied(side)
	enemy := position.Occupied(side.Opposite())
	origins := position.Board(piece)
	for _, d := range dirs {
		emitRayMoves(origins, d, own, enemy, piece, position, pinMask, list)
	}
}

func genQueenMoves(position Position, side Color, pinMask map[Square]uint64, list *MoveList) {
	genSliderFamilyMoves(position, side, Queen, diagonalRayDirections[:], pinMask, list)
	genSliderFamilyMoves(position, side, Queen, orthogonalRayDirections[:], pinMask, list)
}

func genKingMoves(position Position, side Color, kingSq Square, list *MoveList) {
	piece := NewPiece(side, King)
	own := position.Occupied(side)
	enemy := position.Occupied(side.Opposite())
	origin := kingSq.Mask()
	occupiedWithoutKing := position.All() &^ origin
	opponentAttacks := attackMap(position, side.Opposite(), occupiedWithoutKing)

	var destinations uint64
	for _, d := range kingStepDirections {
		destinations |= Shift(origin, d)
	}
	destinations &^= own
	destinations &^= opponentAttacks

	for destinations != 0 {
		bit := uint64(1) << uint(popLSB(&destinations))
		toSq, _ := SquareFromMask(bit)
		mv := NewStandardMove(kingSq, toSq, piece)
		if bit&enemy != 0 {
			capturedPiece, _ := position.PieceAt(toSq)
			mv.Takes = capturedPiece
		}
		list.Push(mv)
	}
}

// castlingGeometry names the squares and masks a castle of one side/color
// needs: where the king and rook start, the squares that must be empty,
// and the squares (including the king's origin) that must be unattacked.
type castlingGeometry struct {
	kingFrom, kingTo, rookFrom, rookTo Square
	emptyMask                          uint64
	kingPath                           uint64 // origin + traversed + destination
}

var castlingGeometries = map[Color]map[CastleSide]castlingGeometry{
	White: {
		KingsideCastle: {
			kingFrom: mustSquare("e1"), kingTo: mustSquare("g1"),
			rookFrom: mustSquare("h1"), rookTo: mustSquare("f1"),
			emptyMask: mustSquare("f1").Mask() | mustSquare("g1").Mask(),
			kingPath:  mustSquare("e1").Mask() | mustSquare("f1").Mask() | mustSquare("g1").Mask(),
		},
		QueensideCastle: {
			kingFrom: mustSquare("e1"), kingTo: mustSquare("c1"),
			rookFrom: mustSquare("a1"), rookTo: mustSquare("d1"),
			emptyMask: mustSquare("b1").Mask() | mustSquare("c1").Mask() | mustSquare("d1").Mask(),
			kingPath:  mustSquare("e1").Mask() | mustSquare("d1").Mask() | mustSquare("c1").Mask(),
		},
	},
	Black: {
		KingsideCastle: {
			kingFrom: mustSquare("e8"), kingTo: mustSquare("g8"),
			rookFrom: mustSquare("h8"), rookTo: mustSquare("f8"),
			emptyMask: mustSquare("f8").Mask() | mustSquare("g8").Mask(),
			kingPath:  mustSquare("e8").Mask() | mustSquare("f8").Mask() | mustSquare("g8").Mask(),
		},
		QueensideCastle: {
			kingFrom: mustSquare("e8"), kingTo: mustSquare("c8"),
			rookFrom: mustSquare("a8"), rookTo: mustSquare("d8"),
			emptyMask: mustSquare("b8").Mask() | mustSquare("c8").Mask() | mustSquare("d8").Mask(),
			kingPath:  mustSquare("e8").Mask() | mustSquare("d8").Mask() | mustSquare("c8").Mask(),
		},
	},
}

func genCastlingMoves(position Position, side Color, rights CastlingRights, list *MoveList) {
	occupied := position.All()
	kingPiece := NewPiece(side, King)
	rookPiece := NewPiece(side, Rook)

	try := func(castleSide CastleSide, allowed bool) {
		if !allowed {
			return
		}
		geo := castlingGeometries[side][castleSide]
		if position.Board(kingPiece)&geo.kingFrom.Mask() == 0 {
			return
		}
		if position.Board(rookPiece)&geo.rookFrom.Mask() == 0 {
			return
		}
		if occupied&geo.emptyMask != 0 {
			return
		}
		opponentAttacks := attackMap(position, side.Opposite(), occupied)
		if opponentAttacks&geo.kingPath != 0 {
			return
		}
		list.Push(NewCastle(side, castleSide))
	}

	if side == White {
		try(KingsideCastle, rights.WhiteKingside)
		try(QueensideCastle, rights.WhiteQueenside)
	} else {
		try(KingsideCastle, rights.BlackKingside)
		try(QueensideCastle, rights.BlackQueenside)
	}
}

// AttacksFromSide returns the union of every square attacker's pieces
// attack or defend in position, using the full board as the blocker set.
// External collaborators (e.g. the game package's checkmate scoring) use
// this instead of reaching into the unexported attackMap helper.
func AttacksFromSide(position Position, attacker Color) uint64 {
	return attackMap(position, attacker, position.All())
}

// attackMap returns the union of every square attacker's pieces attack or
// defend, using occupied as the blocker set for sliders (so callers can
// exclude a soon-to-move king from blocking its own escape square).
func attackMap(position Position, attacker Color, occupied uint64) uint64 {
	var attacks uint64

	pawns := position.Board(NewPiece(attacker, Pawn))
	for pawns != 0 {
		sq := popLSB(&pawns)
		attacks |= PawnAttacks(Square(sq).Mask(), attacker)
	}
	knights := position.Board(NewPiece(attacker, Knight))
	for knights != 0 {
		sq := popLSB(&knights)
		attacks |= KnightAttacks(Square(sq).Mask())
	}
	bishops := position.Board(NewPiece(attacker, Bishop))
	for bishops != 0 {
		sq := popLSB(&bishops)
		attacks |= BishopAttacks(Square(sq).Mask(), occupied)
	}
	rooks := position.Board(NewPiece(attacker, Rook))
	for rooks != 0 {
		sq := popLSB(&rooks)
		attacks |= RookAttacks(Square(sq).Mask(), occupied)
	}
	queens := position.Board(NewPiece(attacker, Queen))
	for queens != 0 {
		sq := popLSB(&queens)
		attacks |= QueenAttacks(Square(sq).Mask(), occupied)
	}
	king := position.Board(NewPiece(attacker, King))
	if king != 0 {
		sq := popLSB(&king)
		attacks |= KingAttacks(Square(sq).Mask())
	}
	return attacks
}
