package display_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ardenflux/zugzwang"
	"github.com/ardenflux/zugzwang/display"
)

func TestBoardShowsWhiteKingLetterAndFEN(t *testing.T) {
	b := zugzwang.NewBoard()
	out := display.Board(b)
	require.Contains(t, out, "K")
	require.Contains(t, out, zugzwang.StartFEN)
}

func TestBitboardMarksOnlySetSquares(t *testing.T) {
	bb := zugzwang.EmptyBB.Set(zugzwang.E1)
	out := display.Bitboard(bb, 'x')
	require.Equal(t, 1, strings.Count(out, "x"))
}
