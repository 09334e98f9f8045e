package search_test

import (
	"context"
	"testing"

	"github.com/morlock/chesscore/pkg/board"
	"github.com/morlock/chesscore/pkg/board/fen"
	"github.com/morlock/chesscore/pkg/eval"
	"github.com/morlock/chesscore/pkg/search"
	"github.com/seekerror/stdlib/pkg/lang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindBestMoveMateIn1(t *testing.T) {
	zt := board.NewZobristTable(1)
	b, err := fen.Decode("1Q6/8/8/8/8/k1K5/8/8 w - - 0 1", zt)
	require.NoError(t, err)

	move, score, ok := search.FindBestMove(context.Background(), b, search.Options{DepthLimit: lang.Some(4)})
	require.True(t, ok)
	assert.Equal(t, "b8b3", move.String())
	assert.Equal(t, eval.MateIn(1), score)
}

func TestFindBestMoveBackRankMateIn2ForBlack(t *testing.T) {
	zt := board.NewZobristTable(1)
	b, err := fen.Decode("4r2k/4q3/8/8/8/8/5PPP/R5K1 b - - 0 1", zt)
	require.NoError(t, err)

	_, score, ok := search.FindBestMove(context.Background(), b, search.Options{DepthLimit: lang.Some(4)})
	require.True(t, ok)
	assert.GreaterOrEqual(t, score, eval.MateIn(3))
}

func TestFindBestMoveStalemate(t *testing.T) {
	zt := board.NewZobristTable(1)
	b, err := fen.Decode("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", zt)
	require.NoError(t, err)

	var list board.MoveList
	board.GenerateLegalMoves(b, &list)
	require.Equal(t, 0, list.Len())
	require.False(t, b.IsCheck())

	_, _, ok := search.FindBestMove(context.Background(), b, search.Options{DepthLimit: lang.Some(4)})
	assert.False(t, ok)
}

func TestAnalyzeStreamsIncreasingDepths(t *testing.T) {
	zt := board.NewZobristTable(1)
	b, err := fen.Decode(fen.Initial, zt)
	require.NoError(t, err)

	var depths []int
	for pv := range search.Analyze(context.Background(), b, search.Options{DepthLimit: lang.Some(3)}) {
		depths = append(depths, pv.Depth)
	}
	assert.Equal(t, []int{1, 2, 3}, depths)
}

func TestFindBestMoveWithRootParallelism(t *testing.T) {
	zt := board.NewZobristTable(1)
	b, err := fen.Decode(fen.Initial, zt)
	require.NoError(t, err)

	move, _, ok := search.FindBestMove(context.Background(), b, search.Options{DepthLimit: lang.Some(3), Workers: 4})
	require.True(t, ok)
	assert.NotEqual(t, board.Move{}, move)
}
