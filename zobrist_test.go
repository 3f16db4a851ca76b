package zugzwang_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ardenflux/zugzwang"
)

func TestRepetitionKeyTransposition(t *testing.T) {
	// 1.Nf3 Nf6 2.Ng1 Ng8 reaches the starting position by a different
	// move order; the resulting hash must match the fresh starting board.
	b := zugzwang.NewBoard()
	b = b.MakeMove(zugzwang.NewMove(zugzwang.FromFileRank(6, 0), zugzwang.FromFileRank(5, 2), zugzwang.Quiet))
	b = b.MakeMove(zugzwang.NewMove(zugzwang.FromFileRank(6, 7), zugzwang.FromFileRank(5, 5), zugzwang.Quiet))
	b = b.MakeMove(zugzwang.NewMove(zugzwang.FromFileRank(5, 2), zugzwang.FromFileRank(6, 0), zugzwang.Quiet))
	b = b.MakeMove(zugzwang.NewMove(zugzwang.FromFileRank(5, 5), zugzwang.FromFileRank(6, 7), zugzwang.Quiet))

	require.Equal(t, zugzwang.NewBoard().RepetitionKey(), b.RepetitionKey())
}

func TestRepetitionKeyDiffersBySideToMove(t *testing.T) {
	b, err := zugzwang.FromFEN("8/8/8/8/8/8/8/4K2k w - - 0 1")
	require.NoError(t, err)
	other, err := zugzwang.FromFEN("8/8/8/8/8/8/8/4K2k b - - 0 1")
	require.NoError(t, err)

	require.NotEqual(t, b.RepetitionKey(), other.RepetitionKey())
}

func TestRepetitionKeyDiffersByEnPassantAvailability(t *testing.T) {
	b, err := zugzwang.FromFEN("4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	require.NoError(t, err)
	other, err := zugzwang.FromFEN("4k3/8/8/3pP3/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	require.NotEqual(t, b.RepetitionKey(), other.RepetitionKey())
}
