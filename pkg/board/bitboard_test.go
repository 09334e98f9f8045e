package board_test

import (
	"testing"

	"github.com/morlock/chesscore/pkg/board"
	"github.com/stretchr/testify/assert"
)

func TestBitboard(t *testing.T) {
	t.Run("popcount", func(t *testing.T) {
		tests := []struct {
			bb       board.Bitboard
			expected int
		}{
			{board.EmptyBitboard, 0},
			{board.BitMask(board.G4), 1},
			{board.BitMask(board.G3) | board.BitMask(board.G4), 2},
		}

		for _, tt := range tests {
			assert.Equal(t, tt.expected, tt.bb.PopCount())
		}
	})

	t.Run("string", func(t *testing.T) {
		tests := []struct {
			bb       board.Bitboard
			expected string
		}{
			{board.EmptyBitboard, "--------/--------/--------/--------/--------/--------/--------/--------"},
			{board.BitMask(board.H1), "--------/--------/--------/--------/--------/--------/--------/-------X"},
			{board.BitMask(board.G3) | board.BitMask(board.G4), "--------/--------/--------/--------/------X-/------X-/--------/--------"},
		}

		for _, tt := range tests {
			assert.Equal(t, tt.expected, tt.bb.String())
		}
	})

	t.Run("king", func(t *testing.T) {
		tests := []struct {
			sq       board.Square
			expected string
		}{
			{board.H1, "--------/--------/--------/--------/--------/--------/------XX/------X-"},
			{board.D1, "--------/--------/--------/--------/--------/--------/--XXX---/--X-X---"},
			{board.A8, "-X------/XX------/--------/--------/--------/--------/--------/--------"},
		}

		for _, tt := range tests {
			assert.Equal(t, tt.expected, board.KingAttackboard(tt.sq).String())
		}
	})

	t.Run("knight", func(t *testing.T) {
		tests := []struct {
			sq       board.Square
			expected string
		}{
			{board.H1, "--------/--------/--------/--------/--------/------X-/-----X--/--------"},
			{board.D1, "--------/--------/--------/--------/--------/--X-X---/-X---X--/--------"},
			{board.A8, "--------/--X-----/-X------/--------/--------/--------/--------/--------"},
		}

		for _, tt := range tests {
			assert.Equal(t, tt.expected, board.KnightAttackboard(tt.sq).String())
		}
	})

	t.Run("rook", func(t *testing.T) {
		tests := []struct {
			occ      board.Bitboard
			sq       board.Square
			expected string
		}{
			{board.EmptyBitboard, board.H1, "-------X/-------X/-------X/-------X/-------X/-------X/-------X/XXXXXXX-"},
			{board.EmptyBitboard, board.A6, "X-------/X-------/-XXXXXXX/X-------/X-------/X-------/X-------/X-------"},
			{board.BitMask(board.H2), board.H1, "--------/--------/--------/--------/--------/--------/-------X/XXXXXXX-"},
			{board.BitMask(board.H2) | board.BitMask(board.D1), board.H1, "--------/--------/--------/--------/--------/--------/-------X/---XXXX-"},
		}

		for _, tt := range tests {
			assert.Equal(t, tt.expected, board.RookAttackboard(tt.sq, tt.occ).String())
		}
	})

	t.Run("bishop", func(t *testing.T) {
		tests := []struct {
			occ      board.Bitboard
			sq       board.Square
			expected string
		}{
			{board.EmptyBitboard, board.A1, "-------X/------X-/-----X--/----X---/---X----/--X-----/-X------/--------"},
		}

		for _, tt := range tests {
			assert.Equal(t, tt.expected, board.BishopAttackboard(tt.sq, tt.occ).String())
		}
	})

	t.Run("directions", func(t *testing.T) {
		assert.Equal(t, board.BitMask(board.A2), board.BitMask(board.A1).North())
		assert.Equal(t, board.EmptyBitboard, board.BitMask(board.H4).East())
		assert.Equal(t, board.EmptyBitboard, board.BitMask(board.A4).West())
	})
}

func TestPawnCaptureboard(t *testing.T) {
	assert.Equal(t, board.BitMask(board.D5)|board.BitMask(board.F5), board.PawnCaptureboard(board.White, board.BitMask(board.E4)))
	assert.Equal(t, board.BitMask(board.D3)|board.BitMask(board.F3), board.PawnCaptureboard(board.Black, board.BitMask(board.E4)))
}
