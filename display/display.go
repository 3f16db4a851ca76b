// Package display renders bitboards and positions as bordered ASCII tables
// for debugging and test output.
package display

import (
	"fmt"
	"strings"

	"github.com/ardenflux/zugzwang"
)

const ruleLine = "  +---+---+---+---+---+---+---+---+"

// Bitboard renders bb as a bordered 8x8 table, marking every set square
// with mark and every clear square with a dot.
func Bitboard(bb zugzwang.BitBoard, mark rune) string {
	return grid(func(s zugzwang.Square) byte {
		if bb.Test(s) {
			return byte(mark)
		}
		return '.'
	})
}

// Board renders a position as a bordered 8x8 table of FEN piece letters,
// followed by its FEN record so the grid and a machine-diffable summary
// come out of one call.
func Board(b zugzwang.Board) string {
	var sb strings.Builder
	sb.WriteString(grid(func(s zugzwang.Square) byte {
		if p := b.PieceOn(s); p != zugzwang.PieceNone {
			return zugzwang.PieceChar(p)
		}
		return '.'
	}))
	sb.WriteString(b.ToFEN())
	sb.WriteByte('\n')
	return sb.String()
}

// grid walks every square rank 8 down to rank 1, file a through h, asking
// cell for the character to print in that square, and frames the result
// with a box-drawn border and a rank/file gutter.
func grid(cell func(zugzwang.Square) byte) string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		sb.WriteString(ruleLine)
		sb.WriteByte('\n')
		fmt.Fprintf(&sb, "%d ", rank+1)
		for file := 0; file < 8; file++ {
			fmt.Fprintf(&sb, "| %c ", cell(zugzwang.FromFileRank(file, rank)))
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(ruleLine)
	sb.WriteString("\n    a   b   c   d   e   f   g   h\n")
	return sb.String()
}
