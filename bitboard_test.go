package zugzwang_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ardenflux/zugzwang"
)

func TestBitBoardSetClearTest(t *testing.T) {
	e4 := zugzwang.FromFileRank(4, 3)
	bb := zugzwang.EmptyBB.Set(e4)
	require.True(t, bb.Test(e4))
	require.False(t, bb.IsEmpty())

	bb = bb.Clear(e4)
	require.False(t, bb.Test(e4))
	require.True(t, bb.IsEmpty())
}

func TestBitBoardPopCount(t *testing.T) {
	require.Equal(t, 8, zugzwang.Rank1BB.PopCount())
	require.Equal(t, 64, zugzwang.FullBB.PopCount())
	require.Equal(t, 0, zugzwang.EmptyBB.PopCount())
}

func TestBitBoardPopLSBIteratesEverySquare(t *testing.T) {
	bb := zugzwang.Rank2BB
	seen := 0
	for bb != zugzwang.EmptyBB {
		sq := bb.PopLSB()
		require.True(t, sq >= zugzwang.A1, "square should be a valid index")
		seen++
	}
	require.Equal(t, 8, seen)
}

func TestBitBoardFlipIsInvolution(t *testing.T) {
	bb := zugzwang.Rank2BB | zugzwang.FileCBB
	require.Equal(t, bb, bb.Flip().Flip())
	require.Equal(t, zugzwang.Rank7BB|zugzwang.FileCBB, bb.Flip())
}
