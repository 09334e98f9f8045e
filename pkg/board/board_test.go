package board_test

import (
	"testing"

	"github.com/morlock/chesscore/pkg/board"
	"github.com/morlock/chesscore/pkg/board/fen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// applyUnapplyRoundTrip walks every legal move at the given position one ply deep, checking that
// Apply followed by Unapply restores hash, turn, castling rights and occupancy exactly.
func applyUnapplyRoundTrip(t *testing.T, fenStr string) {
	t.Helper()

	zt := board.NewZobristTable(7)
	b, err := fen.Decode(fenStr, zt)
	require.NoError(t, err)

	wantHash := b.Hash()
	wantTurn := b.Turn()
	wantCastling := b.Castling()
	wantOcc := b.Occupied()

	var list board.MoveList
	board.GenerateLegalMoves(b, &list)
	require.Greater(t, list.Len(), 0, "fixture must have legal moves")

	for i := 0; i < list.Len(); i++ {
		m := list.At(i)

		b.Apply(m)
		assert.Equal(t, zt.Hash(b), b.Hash(), "hash out of sync after applying %v", m)

		b.Unapply()
		assert.Equal(t, wantHash, b.Hash(), "hash not restored after unapplying %v", m)
		assert.Equal(t, wantTurn, b.Turn())
		assert.Equal(t, wantCastling, b.Castling())
		assert.Equal(t, wantOcc, b.Occupied())
	}
}

func TestApplyUnapplyRoundTrip(t *testing.T) {
	tests := []string{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
		"4k3/8/8/8/3pPp2/8/8/4K3 b - e3 0 1",
		"k7/3P4/8/8/8/8/8/4K3 w - - 0 1",
		"r4rk1/1pp1qppp/p1np1n2/2b1p1B1/1PB1P1b1/P1NP1N2/2P1QPPP/R4RK1 b - b3 0 10",
	}
	for _, fenStr := range tests {
		applyUnapplyRoundTrip(t, fenStr)
	}
}

func TestOccupancyPartitionsByColor(t *testing.T) {
	zt := board.NewZobristTable(7)
	b, err := fen.Decode("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", zt)
	require.NoError(t, err)

	white := b.Pieces(board.White, board.Pawn) | b.Pieces(board.White, board.Knight) |
		b.Pieces(board.White, board.Bishop) | b.Pieces(board.White, board.Rook) |
		b.Pieces(board.White, board.Queen) | b.Pieces(board.White, board.King)
	black := b.Pieces(board.Black, board.Pawn) | b.Pieces(board.Black, board.Knight) |
		b.Pieces(board.Black, board.Bishop) | b.Pieces(board.Black, board.Rook) |
		b.Pieces(board.Black, board.Queen) | b.Pieces(board.Black, board.King)

	assert.Equal(t, board.Bitboard(0), white&black, "white and black occupancy must not overlap")
	assert.Equal(t, b.Occupied(), white|black)
}

func TestIsCheck(t *testing.T) {
	zt := board.NewZobristTable(7)

	b, err := fen.Decode("4r2k/8/8/8/8/8/8/4K3 w - - 0 1", zt)
	require.NoError(t, err)
	assert.True(t, b.IsCheck())

	b2, err := fen.Decode("4k3/8/8/8/8/8/8/4K3 w - - 0 1", zt)
	require.NoError(t, err)
	assert.False(t, b2.IsCheck())
}

func TestClone(t *testing.T) {
	zt := board.NewZobristTable(7)
	b, err := fen.Decode("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", zt)
	require.NoError(t, err)

	clone := b.Clone()

	var list board.MoveList
	board.GenerateLegalMoves(clone, &list)
	require.Greater(t, list.Len(), 0)
	clone.Apply(list.At(0))

	assert.NotEqual(t, b.Hash(), clone.Hash(), "mutating the clone must not affect the original")
}
