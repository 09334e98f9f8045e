package search

import (
	"context"
	"runtime"
	"sync"

	"github.com/morlock/chesscore/pkg/board"
	"github.com/morlock/chesscore/pkg/eval"
	"github.com/seekerror/stdlib/pkg/util/contextx"
	"go.uber.org/atomic"
)

// rootParallelThreshold is the minimum number of legal root moves before root-level fan-out
// engages; below it, dispatch overhead is not worth it and FindBestMove searches sequentially.
const rootParallelThreshold = 10

// findBestMoveParallel runs iterative deepening like iterativeDeepening, but at each depth
// partitions the root move list across opt.Workers goroutines. Each worker clones the board
// (mandatory: workers mutate independently via apply/unapply) and searches its own slice of root
// moves sequentially against a shared transposition table; a shared atomic register combines
// their results. Interior nodes are never parallelized, preserving move-ordering and
// transposition-table locality within each worker's own subtree.
func findBestMoveParallel(ctx context.Context, root *board.Board, opt Options, list *board.MoveList) (board.Move, board.Score, bool) {
	workers := opt.Workers
	if max := runtime.GOMAXPROCS(0); workers > max {
		workers = max
	}
	if workers > list.Len() {
		workers = list.Len()
	}

	var best board.Move
	var bestScore board.Score
	found := false

	for depth := 1; depth <= opt.maxDepth; depth++ {
		// Each iteration runs under its own cancellable context, cancelled once all of that
		// iteration's workers have returned. A mate found by one worker stops the others through
		// the stop flag, checked at each worker's next root-move boundary; a root move already in
		// progress is searched to the end.
		iterCtx, cancel := context.WithCancel(ctx)
		move, score, ok := searchRootParallel(iterCtx, root, opt, list, depth, workers, best)
		cancel()

		if !ok {
			break // cancelled before this iteration finished: keep the previous result
		}
		best, bestScore, found = move, score, true
		if eval.IsMateScore(bestScore) || contextx.IsCancelled(ctx) {
			break
		}
	}
	return best, bestScore, found
}

type rootResult struct {
	move  board.Move
	score board.Score
	ok    bool
}

// searchRootParallel splits list across workers goroutines and runs one full-window alpha-beta
// pass per worker at the given depth, seeded with the prior iteration's best move. The shared
// alpha register and mate-found stop flag are both lock-free atomics: every worker ratchets alpha
// up via a CAS loop and polls the stop flag at its own move boundary, so neither needs a mutex.
func searchRootParallel(ctx context.Context, root *board.Board, opt Options, list *board.MoveList, depth, workers int, seed board.Move) (board.Move, board.Score, bool) {
	orderMoves(list, seed, root.Turn(), 0, newKillerTable(0), newHistoryTable())

	n := list.Len()
	chunk := (n + workers - 1) / workers

	alpha := atomic.NewInt32(int32(eval.NegInf))
	var stop atomic.Bool

	var wg sync.WaitGroup
	results := make([]rootResult, workers)

	for w := 0; w < workers; w++ {
		lo, hi := w*chunk, (w+1)*chunk
		if lo >= n {
			continue
		}
		if hi > n {
			hi = n
		}

		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()

			clone := root.Clone()
			s := &searcher{
				tt:      opt.TT,
				killers: newKillerTable(opt.maxDepth + 1),
				history: newHistoryTable(),
				eval:    opt.Eval,
			}

			var localBest board.Move
			localScore := eval.NegInf
			localOK := false

			for i := lo; i < hi; i++ {
				if stop.Load() || contextx.IsCancelled(ctx) {
					break
				}

				a := board.Score(alpha.Load())

				m := list.At(i)
				clone.Apply(m)
				score := -s.alphabeta(ctx, clone, depth-1, 1, -eval.Inf, -a)
				clone.Unapply()

				if contextx.IsCancelled(ctx) {
					break
				}
				if !localOK || score > localScore {
					localScore, localBest, localOK = score, m, true
				}

				for {
					cur := alpha.Load()
					if score <= cur || alpha.CAS(cur, int32(score)) {
						break
					}
				}
				if eval.IsMateScore(score) {
					stop.Store(true)
				}
			}

			results[w] = rootResult{move: localBest, score: localScore, ok: localOK}
		}(w, lo, hi)
	}
	wg.Wait()

	var best board.Move
	var bestScore board.Score
	found := false
	for _, r := range results {
		if r.ok && (!found || r.score > bestScore) {
			best, bestScore, found = r.move, r.score, true
		}
	}
	return best, bestScore, found
}
