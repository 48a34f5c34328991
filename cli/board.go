/*
Package cli renders a chesscore position and move list for terminal
debugging, the same role treepeck-chego/cli/cli.go served for the
teacher's magic-bitboard core.

Grounded on treepeck-chego/cli/cli.go's rank-by-rank board formatter
(FormatBitboard/FormatPosition), rebuilt on top of
github.com/clinaresl/table instead of a hand-rolled strings.Builder grid
-- grounded on clinaresl-pgnparser's pgnboard.go use of the same library
for board rendering (other_examples/).
*/
package cli

import (
	"fmt"

	"github.com/clinaresl/table"
	"github.com/ngranek/chesscore"
)

var pieceSymbols = map[chesscore.Piece]string{
	chesscore.WhitePawn: "♙", chesscore.WhiteKnight: "♘", chesscore.WhiteBishop: "♗",
	chesscore.WhiteRook: "♖", chesscore.WhiteQueen: "♕", chesscore.WhiteKing: "♔",
	chesscore.BlackPawn: "♟", chesscore.BlackKnight: "♞", chesscore.BlackBishop: "♝",
	chesscore.BlackRook: "♜", chesscore.BlackQueen: "♛", chesscore.BlackKing: "♚",
}

// Board renders position as an 8x8 ASCII table, rank 8 at the top, files
// a-h labeled along the bottom.
func Board(position chesscore.Position) string {
	tab, err := table.NewTable("||cccccccc||")
	if err != nil {
		return fmt.Sprintf("cli: failed to build board table: %v", err)
	}
	tab.AddDoubleRule()

	for rank := 7; rank >= 0; rank-- {
		row := make([]any, 8)
		for file := 0; file < 8; file++ {
			sq := chesscore.Square(rank*8 + file)
			piece, perr := position.PieceAt(sq)
			if perr != nil || piece == chesscore.NoPiece {
				row[file] = "."
				continue
			}
			row[file] = pieceSymbols[piece]
		}
		tab.AddRow(row...)
	}
	tab.AddDoubleRule()

	return fmt.Sprintf("%v", tab)
}

// MoveList renders a move list as a two-column (index, UCI) table, used
// to eyeball a generator's output against a reference during debugging.
func MoveList(list *chesscore.MoveList) string {
	tab, err := table.NewTable("|cl|")
	if err != nil {
		return fmt.Sprintf("cli: failed to build move table: %v", err)
	}
	tab.AddSingleRule()
	tab.AddRow("#", "move")
	tab.AddSingleRule()
	for i := 0; i < list.Len(); i++ {
		tab.AddRow(i+1, list.At(i).UCI())
	}
	tab.AddSingleRule()
	return fmt.Sprintf("%v", tab)
}
