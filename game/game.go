/*
Package game implements chess game-state management: applying moves,
tracking clocks, and scoring draws and checkmates. It is an external
collaborator per spec.md §1 — the core (chesscore) only generates and
classifies moves; everything stateful about a running game lives here.

Grounded on treepeck-chego/game.go's Game{LegalMoves, position,
repetitions, Result, whiteTime, blackTime, timeBonus} struct and its
NewGame/PushMove/IsThreefoldRepetition/IsInsufficientMaterial/
IsCheckmate/IsMoveLegal/SetClock methods, rebuilt against chesscore's
pure GenerateMoves/Classify/ApplyMove and the fen/san/zobrist
collaborator packages instead of the teacher's packed Move and raw
Bitboards array.
*/
package game

import (
	"github.com/ngranek/chesscore"
	"github.com/ngranek/chesscore/fen"
	"github.com/ngranek/chesscore/san"
	"github.com/ngranek/chesscore/zobrist"
)

// Result is the outcome of a finished game.
type Result int

const (
	ResultUnscored Result = iota
	ResultCheckmate
	ResultStalemate
	ResultInsufficientMaterial
	ResultFiftyMove
	ResultThreefoldRepetition
	ResultTimeout
	ResultResignation
	ResultDrawByAgreement
)

// Game tracks the mutable state around a sequence of moves: the current
// position and its associated FEN-level fields, the legal move list for
// the side to move, repetition/clock bookkeeping, and the final result
// once the game ends.
//
// It's the caller's responsibility to drive a clock (e.g. a time.Ticker)
// and call DecrementTime; PushMove and DecrementTime must not run
// concurrently.
type Game struct {
	Position    chesscore.Position
	SideToMove  chesscore.Color
	Castling    chesscore.CastlingRights
	EPTarget    chesscore.Square
	LegalMoves  *chesscore.MoveList
	Result      Result
	HalfmoveCnt int
	FullmoveCnt int

	keys        *zobrist.Keys
	repetitions map[uint64]int
	whiteTime   int
	blackTime   int
	timeBonus   int
}

// NewGame returns a game starting from the standard opening position.
func NewGame() *Game {
	return NewGameFromFEN(fen.InitialPosition)
}

// NewGameFromFEN returns a game starting from the position fenString
// describes. It panics if fenString is malformed, mirroring the
// teacher's panic-on-invalid-input convention for FEN parsing.
func NewGameFromFEN(fenString string) *Game {
	s, err := fen.Parse(fenString)
	if err != nil {
		panic(err)
	}

	g := &Game{
		Position:    s.Position,
		SideToMove:  s.SideToMove,
		Castling:    s.Castling,
		EPTarget:    s.EPTarget,
		HalfmoveCnt: s.HalfmoveClock,
		FullmoveCnt: s.FullmoveNumber,
		keys:        zobrist.NewKeys(),
		repetitions: make(map[uint64]int, 1),
	}
	g.LegalMoves = chesscore.GenerateMoves(g.Position, g.SideToMove, g.EPTarget, g.Castling)
	g.repetitions[g.hash()]++
	return g
}

func (g *Game) hash() uint64 {
	return g.keys.Hash(g.Position, g.SideToMove, g.EPTarget, g.Castling)
}

// PushMove applies m (which must be present in g.LegalMoves) and returns
// its Standard Algebraic Notation, including any trailing check/mate
// suffix. Not safe for concurrent use.
func (g *Game) PushMove(m chesscore.Move) string {
	status := chesscore.Classify(g.Position, g.SideToMove, m, nextEPTarget(m), g.Castling)
	sanStr := san.Render(m, g.LegalMoves, status)

	isIrreversible := m.Kind == chesscore.CastleMove || m.Takes != chesscore.NoPiece ||
		m.Piece.Type() == chesscore.Pawn
	if isIrreversible {
		clear(g.repetitions)
		g.HalfmoveCnt = 0
	} else {
		g.HalfmoveCnt++
	}

	g.Position = chesscore.ApplyMove(g.Position, g.SideToMove, m)
	g.EPTarget = nextEPTarget(m)
	g.Castling = nextCastlingRights(g.Castling, m)

	if g.SideToMove == chesscore.Black {
		g.FullmoveCnt++
	}
	g.SideToMove = g.SideToMove.Opposite()
	g.whiteTime, g.blackTime = applyBonus(g.SideToMove, g.whiteTime, g.blackTime, g.timeBonus)

	g.repetitions[g.hash()]++
	g.LegalMoves = chesscore.GenerateMoves(g.Position, g.SideToMove, g.EPTarget, g.Castling)

	switch status {
	case chesscore.Checkmate:
		g.Result = ResultCheckmate
	default:
		if g.LegalMoves.Len() == 0 {
			g.Result = ResultStalemate
		}
	}

	return sanStr
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

func applyBonus(toMove chesscore.Color, whiteTime, blackTime, bonus int) (int, int) {
	// The side that just moved receives the increment; toMove has already
	// flipped to the side about to move next.
	if toMove == chesscore.Black {
		return whiteTime + bonus, blackTime
	}
	return whiteTime, blackTime + bonus
}

// IsMoveLegal reports whether m appears in g.LegalMoves.
func (g *Game) IsMoveLegal(m chesscore.Move) bool {
	for i := 0; i < g.LegalMoves.Len(); i++ {
		lm := g.LegalMoves.At(i)
		if lm.Kind != m.Kind {
			continue
		}
		if lm.Kind == chesscore.CastleMove {
			if lm.Color == m.Color && lm.Side == m.Side {
				return true
			}
			continue
		}
		if lm.From == m.From && lm.To == m.To && lm.IsPromotion == m.IsPromotion && lm.Promotion == m.Promotion {
			return true
		}
	}
	return false
}

// IsThreefoldRepetition reports whether any position reached so far (by
// Zobrist hash) has occurred three or more times.
func (g *Game) IsThreefoldRepetition() bool {
	for _, n := range g.repetitions {
		if n >= 3 {
			return true
		}
	}
	return false
}

var darkSquares uint64 = 0xAA55AA55AA55AA55

// IsInsufficientMaterial reports a dead-drawn material balance: bare
// kings, king+minor vs. bare king, or king+bishop vs. king+bishop on
// same-colored squares, or king+knight vs. king+knight.
func (g *Game) IsInsufficientMaterial() bool {
	pieceCount := func(p chesscore.Piece) int {
		bb := g.Position.Board(p)
		n := 0
		for bb != 0 {
			bb &= bb - 1
			n++
		}
		return n
	}

	hasPawnsRooksQueens := pieceCount(chesscore.WhitePawn) > 0 || pieceCount(chesscore.BlackPawn) > 0 ||
		pieceCount(chesscore.WhiteRook) > 0 || pieceCount(chesscore.BlackRook) > 0 ||
		pieceCount(chesscore.WhiteQueen) > 0 || pieceCount(chesscore.BlackQueen) > 0
	if hasPawnsRooksQueens {
		return false
	}

	wn, bn := pieceCount(chesscore.WhiteKnight), pieceCount(chesscore.BlackKnight)
	wb, bb := pieceCount(chesscore.WhiteBishop), pieceCount(chesscore.BlackBishop)

	minors := wn + bn + wb + bb
	if minors == 0 {
		return true
	}
	if minors == 1 {
		return true
	}
	if minors == 2 {
		if wn == 1 && bn == 1 {
			return true
		}
		if wb == 1 && bb == 1 {
			whiteBishops := g.Position.Board(chesscore.WhiteBishop)
			blackBishops := g.Position.Board(chesscore.BlackBishop)
			whiteDark := whiteBishops&darkSquares != 0
			blackDark := blackBishops&darkSquares != 0
			return whiteDark == blackDark
		}
	}
	return false
}

// IsCheckmate reports whether the side to move has no legal replies and
// is currently in check.
func (g *Game) IsCheckmate() bool {
	if g.LegalMoves.Len() != 0 {
		return false
	}
	opponent := g.SideToMove.Opposite()
	kingSq := g.Position.KingSquare(g.SideToMove)
	attacks := chesscore.AttacksFromSide(g.Position, opponent)
	return attacks&kingSq.Mask() != 0
}

// SetClock sets both players' remaining time and per-move increment
// (bonus), in seconds.
func (g *Game) SetClock(control, bonus int) {
	g.whiteTime = control
	g.blackTime = control
	g.timeBonus = bonus
}

// DecrementTime ticks the clock of the side to move down by one second.
// The caller drives the ticker; see the Game doc comment.
func (g *Game) DecrementTime() {
	if g.SideToMove == chesscore.White {
		g.whiteTime--
	} else {
		g.blackTime--
	}
}
