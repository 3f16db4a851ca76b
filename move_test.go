package zugzwang_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ardenflux/zugzwang"
)

func TestMoveEncodeDecodeRoundTrip(t *testing.T) {
	m := zugzwang.NewMove(zugzwang.E1, zugzwang.G1, zugzwang.KingCastle)
	require.Equal(t, zugzwang.E1, m.GetSrc())
	require.Equal(t, zugzwang.G1, m.GetDest())
	require.Equal(t, zugzwang.KingCastle, m.GetType())
}

func TestMoveIsCaptureCoversEveryCaptureVariant(t *testing.T) {
	capturing := []zugzwang.MoveType{
		zugzwang.Capture, zugzwang.EnPassant,
		zugzwang.PromotionCaptureKnight, zugzwang.PromotionCaptureBishop,
		zugzwang.PromotionCaptureRook, zugzwang.PromotionCaptureQueen,
	}
	for _, mt := range capturing {
		m := zugzwang.NewMove(zugzwang.A1, zugzwang.H8, mt)
		require.True(t, m.IsCapture(), "move type %d should be a capture", mt)
	}

	notCapturing := []zugzwang.MoveType{
		zugzwang.Quiet, zugzwang.DoublePawn, zugzwang.KingCastle, zugzwang.QueenCastle,
		zugzwang.PromotionKnight, zugzwang.PromotionBishop, zugzwang.PromotionRook, zugzwang.PromotionQueen,
	}
	for _, mt := range notCapturing {
		m := zugzwang.NewMove(zugzwang.A1, zugzwang.H8, mt)
		require.False(t, m.IsCapture(), "move type %d should not be a capture", mt)
	}
}

func TestMoveGetPromReturnsColoredPiece(t *testing.T) {
	m := zugzwang.NewMove(zugzwang.FromFileRank(0, 6), zugzwang.FromFileRank(0, 7), zugzwang.PromotionQueen)
	require.Equal(t, zugzwang.WhiteQueen, m.GetProm(zugzwang.ColorWhite))
	require.Equal(t, zugzwang.BlackQueen, m.GetProm(zugzwang.ColorBlack))
}

func TestMoveGetPromPanicsOnNonPromotion(t *testing.T) {
	m := zugzwang.NewMove(zugzwang.A1, zugzwang.H8, zugzwang.Quiet)
	require.Panics(t, func() { m.GetProm(zugzwang.ColorWhite) })
}

func TestMoveUCI(t *testing.T) {
	require.Equal(t, "e1g1", zugzwang.NewMove(zugzwang.E1, zugzwang.G1, zugzwang.KingCastle).UCI())
	require.Equal(t, "a7a8q", zugzwang.NewMove(
		zugzwang.FromFileRank(0, 6), zugzwang.FromFileRank(0, 7), zugzwang.PromotionQueen).UCI())
}

func TestMoveListPushAndSlice(t *testing.T) {
	var list zugzwang.MoveList
	list.Push(zugzwang.NewMove(zugzwang.A1, zugzwang.H8, zugzwang.Quiet))
	list.Push(zugzwang.NewMove(zugzwang.H8, zugzwang.A1, zugzwang.Quiet))
	require.Len(t, list.Slice(), 2)
	require.Equal(t, 2, list.Count)
}
