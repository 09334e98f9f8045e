// Package search implements alpha-beta game tree search driven by a small capability set --
// move generation, evaluation, move ordering, and board mutation -- supplied here by the board
// and eval packages. It adds iterative deepening, a shared transposition table, and per-worker
// killer/history move ordering on top of the core recursion in alphabeta.go.
package search

import (
	"context"
	"time"

	"github.com/morlock/chesscore/pkg/board"
	"github.com/morlock/chesscore/pkg/eval"
	"github.com/seekerror/stdlib/pkg/lang"
)

// PV is the result of one completed iterative-deepening iteration: the best line found to the
// given depth, and the statistics of finding it.
type PV struct {
	Depth int
	Move  board.Move
	Score board.Score
	Nodes uint64
	Time  time.Duration
}

// Options configures FindBestMove and Analyze. The zero value is valid: every field defaults as
// documented below.
type Options struct {
	// DepthLimit is the deepest iteration run, in plies. Unset means DefaultMaxDepth.
	DepthLimit lang.Optional[int]
	// Eval scores leaf positions. nil means eval.Standard{}.
	Eval eval.Evaluator
	// TT caches search results across iterations and (with Workers > 1) across root workers.
	// nil means a fresh table sized DefaultTTSize, private to this call.
	TT TranspositionTable
	// Workers bounds root-level fan-out. <= 1 means a single-threaded search; root parallelism
	// only engages once the position has at least rootParallelThreshold legal moves (see
	// parallel.go), so a small Workers value is harmless on positions with few root moves.
	Workers int

	// maxDepth is the resolved depth limit, set by withDefaults from DepthLimit.
	maxDepth int
}

// DefaultMaxDepth and DefaultTTSize are used whenever Options leaves the corresponding field
// unset.
const (
	DefaultMaxDepth = 6
	DefaultTTSize   = 32 << 20 // 32MB
)

func withDefaults(opt Options) Options {
	if depth, ok := opt.DepthLimit.V(); ok && depth > 0 {
		opt.maxDepth = depth
	} else {
		opt.maxDepth = DefaultMaxDepth
	}
	if opt.Eval == nil {
		opt.Eval = eval.Standard{}
	}
	if opt.TT == nil {
		opt.TT = NewTranspositionTable(DefaultTTSize)
	}
	return opt
}

// FindBestMove runs iterative deepening alpha-beta from b up to opt.DepthLimit plies, returning
// the best move and its score from b's side-to-move perspective. ok is false if b has no legal
// move (checkmate or stalemate), and also if ctx is cancelled before the first iteration
// completes; no fallback move is returned in that case.
//
// Cancellation is cooperative: ctx is checked at the top of every interior node and at each
// iteration boundary. If ctx is cancelled mid-iteration, FindBestMove returns the best move from
// the last iteration that ran to completion.
func FindBestMove(ctx context.Context, b *board.Board, opt Options) (board.Move, board.Score, bool) {
	opt = withDefaults(opt)

	var list board.MoveList
	board.GenerateLegalMoves(b, &list)
	if list.Len() == 0 {
		return board.Move{}, 0, false
	}

	if opt.Workers > 1 && list.Len() >= rootParallelThreshold {
		return findBestMoveParallel(ctx, b, opt, &list)
	}
	return iterativeDeepening(ctx, b, opt, &list, nil)
}

// Analyze is like FindBestMove but streams a PV after each completed iteration instead of
// blocking until the deepest one finishes, for callers that want to show search progress. The
// channel is closed once the search ends, whether by reaching opt.DepthLimit, by finding a forced
// mate, or by ctx being cancelled.
func Analyze(ctx context.Context, b *board.Board, opt Options) <-chan PV {
	opt = withDefaults(opt)
	out := make(chan PV, 1)

	var list board.MoveList
	board.GenerateLegalMoves(b, &list)
	if list.Len() == 0 {
		close(out)
		return out
	}

	go func() {
		defer close(out)
		iterativeDeepening(ctx, b, opt, &list, func(pv PV) {
			select {
			case out <- pv:
			case <-ctx.Done():
			}
		})
	}()

	return out
}
