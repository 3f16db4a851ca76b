package zugzwang_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ardenflux/zugzwang"
)

func TestFromFENToFENRoundTrip(t *testing.T) {
	for _, fen := range []string{
		zugzwang.StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/5bk1/8/2Pp4/8/1K6/8/8 w - d6 0 1",
	} {
		b, err := zugzwang.FromFEN(fen)
		require.NoError(t, err)
		require.Equal(t, fen, b.ToFEN())
	}
}

func TestFromFENRejectsWrongFieldCount(t *testing.T) {
	_, err := zugzwang.FromFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -")
	require.ErrorIs(t, err, zugzwang.ErrInvalidFEN)
}

func TestFromFENRejectsBadPiecePlacement(t *testing.T) {
	_, err := zugzwang.FromFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1")
	require.ErrorIs(t, err, zugzwang.ErrInvalidPiecePlacement)
}

func TestFromFENRejectsBadActiveColor(t *testing.T) {
	_, err := zugzwang.FromFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1")
	require.ErrorIs(t, err, zugzwang.ErrInvalidActiveColor)
}

func TestFromFENRejectsEnPassantOffPermittedRank(t *testing.T) {
	_, err := zugzwang.FromFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e4 0 1")
	require.ErrorIs(t, err, zugzwang.ErrInvalidEnPassant)
}

func TestMakeMoveIsPure(t *testing.T) {
	b := zugzwang.NewBoard()
	before := b.ToFEN()

	_ = b.MakeMove(zugzwang.NewMove(zugzwang.FromFileRank(4, 1), zugzwang.FromFileRank(4, 3), zugzwang.DoublePawn))

	require.Equal(t, before, b.ToFEN(), "MakeMove must not mutate the receiver")
}

func TestMakeMovePanicsOnSrcEqualsDest(t *testing.T) {
	b := zugzwang.NewBoard()
	require.Panics(t, func() {
		b.MakeMove(zugzwang.NewMove(zugzwang.E1, zugzwang.E1, zugzwang.Quiet))
	})
}

func TestMakeMoveUpdatesCastleRightsOnRookMove(t *testing.T) {
	b, err := zugzwang.FromFEN("r3k2r/8/8/8/8/8/8/R3K2n w KQkq - 0 1")
	require.NoError(t, err)

	// The rook leaves its home square a1 for b1 without capturing: only
	// White's queenside right is cleared.
	moved := b.MakeMove(zugzwang.NewMove(zugzwang.A1, zugzwang.FromFileRank(1, 0), zugzwang.Quiet))
	require.Equal(t, zugzwang.CastleWK|zugzwang.CastleBK|zugzwang.CastleBQ, moved.CastleRights())
}

func TestMakeMoveEnPassantRemovesCapturedPawn(t *testing.T) {
	b, err := zugzwang.FromFEN("4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	require.NoError(t, err)

	d6 := zugzwang.FromFileRank(3, 5)
	e5 := zugzwang.FromFileRank(4, 4)
	d5 := zugzwang.FromFileRank(3, 4)

	moved := b.MakeMove(zugzwang.NewMove(e5, d6, zugzwang.EnPassant))
	require.Equal(t, zugzwang.PieceNone, moved.PieceOn(d5))
	require.Equal(t, zugzwang.WhitePawn, moved.PieceOn(d6))
}

func TestMakeMoveCastlingRelocatesRook(t *testing.T) {
	b, err := zugzwang.FromFEN("4k3/8/8/8/8/8/8/4K2R w K - 0 1")
	require.NoError(t, err)

	moved := b.MakeMove(zugzwang.NewMove(zugzwang.E1, zugzwang.G1, zugzwang.KingCastle))
	require.Equal(t, zugzwang.WhiteKing, moved.PieceOn(zugzwang.G1))
	require.Equal(t, zugzwang.WhiteRook, moved.PieceOn(zugzwang.F1))
	require.Equal(t, zugzwang.PieceNone, moved.PieceOn(zugzwang.H1))
}

func TestMakeMovePromotion(t *testing.T) {
	b, err := zugzwang.FromFEN("4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	a7 := zugzwang.FromFileRank(0, 6)
	a8 := zugzwang.FromFileRank(0, 7)
	moved := b.MakeMove(zugzwang.NewMove(a7, a8, zugzwang.PromotionQueen))
	require.Equal(t, zugzwang.WhiteQueen, moved.PieceOn(a8))
}

func TestCheckersDetectsSlidingCheck(t *testing.T) {
	b, err := zugzwang.FromFEN("4k3/8/8/8/8/8/8/q3K3 w - - 0 1")
	require.NoError(t, err)
	require.NotEqual(t, zugzwang.EmptyBB, b.Checkers())
}

func TestCheckersEmptyWhenNotInCheck(t *testing.T) {
	b := zugzwang.NewBoard()
	require.Equal(t, zugzwang.EmptyBB, b.Checkers())
}

func TestNullMovePanicsWhileInCheck(t *testing.T) {
	b, err := zugzwang.FromFEN("4k3/8/8/8/8/8/8/q3K3 w - - 0 1")
	require.NoError(t, err)
	require.Panics(t, func() { b.NullMove() })
}

func TestNullMoveFlipsSideOnly(t *testing.T) {
	b := zugzwang.NewBoard()
	nb := b.NullMove()
	require.Equal(t, zugzwang.ColorBlack, nb.Side())

	placement := func(fen string) string { return fen[:strings.IndexByte(fen, ' ')] }
	require.Equal(t, placement(b.ToFEN()), placement(nb.ToFEN()))
}
