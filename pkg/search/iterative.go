package search

import (
	"context"
	"time"

	"github.com/morlock/chesscore/pkg/board"
	"github.com/morlock/chesscore/pkg/eval"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// iterativeDeepening runs a full-window alpha-beta search at depth 1, 2, ... up to opt.maxDepth,
// seeding each iteration's move ordering with the previous iteration's best move (the PV move).
// If report is non-nil, it is called after every completed iteration. It stops early, without
// running further iterations, once a forced mate is found -- a deeper search cannot improve on
// delivering mate, and continuing would only spend time confirming it.
func iterativeDeepening(ctx context.Context, b *board.Board, opt Options, list *board.MoveList, report func(PV)) (board.Move, board.Score, bool) {
	s := &searcher{
		tt:      opt.TT,
		killers: newKillerTable(opt.maxDepth + 1),
		history: newHistoryTable(),
		eval:    opt.Eval,
	}

	var best board.Move
	var bestScore board.Score
	found := false

	for depth := 1; depth <= opt.maxDepth; depth++ {
		start := time.Now()
		s.nodes = 0

		orderMoves(list, best, b.Turn(), 0, s.killers, s.history)
		move, score, ok := searchRoot(ctx, s, b, list, depth)
		if !ok {
			break // cancelled mid-iteration: keep the previous iteration's result
		}

		best, bestScore, found = move, score, true
		if report != nil {
			report(PV{Depth: depth, Move: best, Score: bestScore, Nodes: s.nodes, Time: time.Since(start)})
		}
		if eval.IsMateScore(bestScore) || contextx.IsCancelled(ctx) {
			break
		}
	}

	return best, bestScore, found
}

// searchRoot runs one full-window alpha-beta pass over list at the given depth and returns the
// best move and its score, or ok=false if ctx was cancelled before every root move was searched.
func searchRoot(ctx context.Context, s *searcher, b *board.Board, list *board.MoveList, depth int) (board.Move, board.Score, bool) {
	alpha := eval.NegInf
	var best board.Move

	for i := 0; i < list.Len(); i++ {
		if contextx.IsCancelled(ctx) {
			return board.Move{}, 0, false
		}

		m := list.At(i)
		b.Apply(m)
		score := -s.alphabeta(ctx, b, depth-1, 1, -eval.Inf, -alpha)
		b.Unapply()

		if contextx.IsCancelled(ctx) {
			return board.Move{}, 0, false
		}
		if i == 0 || score > alpha {
			alpha = score
			best = m
		}
	}
	return best, alpha, true
}
