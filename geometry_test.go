package zugzwang_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ardenflux/zugzwang"
)

func TestSquareFromStringRoundTrip(t *testing.T) {
	for _, s := range zugzwang.Square2String {
		sq, ok := zugzwang.SquareFromString(s)
		require.True(t, ok)
		require.Equal(t, s, zugzwang.Square2String[sq])
	}
}

func TestSquareFromStringDash(t *testing.T) {
	sq, ok := zugzwang.SquareFromString("-")
	require.True(t, ok)
	require.Equal(t, zugzwang.NoSquare, sq)
}

func TestSquareFromStringRejectsMalformed(t *testing.T) {
	for _, s := range []string{"", "i9", "a9", "aa", "e"} {
		_, ok := zugzwang.SquareFromString(s)
		require.False(t, ok, "expected %q to be rejected", s)
	}
}

func TestPieceCharRoundTrip(t *testing.T) {
	for p := zugzwang.WhitePawn; p <= zugzwang.BlackKing; p++ {
		c := zugzwang.PieceChar(p)
		got, ok := zugzwang.PieceFromChar(c)
		require.True(t, ok)
		require.Equal(t, p, got)
	}
}

func TestPieceFromCharRejectsUnknown(t *testing.T) {
	_, ok := zugzwang.PieceFromChar('x')
	require.False(t, ok)
}

func TestNewPieceAndAccessors(t *testing.T) {
	p := zugzwang.NewPiece(zugzwang.Rook, zugzwang.ColorBlack)
	require.Equal(t, zugzwang.BlackRook, p)
	require.Equal(t, zugzwang.ColorBlack, zugzwang.PieceColor(p))
	require.Equal(t, zugzwang.Rook, zugzwang.PieceKind(p))
}

func TestOppositeColor(t *testing.T) {
	require.Equal(t, zugzwang.ColorBlack, zugzwang.Opposite(zugzwang.ColorWhite))
	require.Equal(t, zugzwang.ColorWhite, zugzwang.Opposite(zugzwang.ColorBlack))
}
