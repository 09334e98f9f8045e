package search

import (
	"context"

	"github.com/morlock/chesscore/pkg/board"
	"github.com/morlock/chesscore/pkg/eval"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// searcher holds the state threaded through one alphabeta call tree: the transposition table,
// shared by every worker of a search, and the killer/history tables, owned by exactly one
// worker (see spec's per-worker ordering-table requirement).
type searcher struct {
	tt      TranspositionTable
	killers *killerTable
	history *historyTable
	eval    eval.Evaluator
	nodes   uint64
}

// alphabeta scores b, from the perspective of the side to move, to the given depth, within the
// window (alpha, beta). ply counts plies from this search's root (0 at the root), used both for
// killer-table indexing and to report mate distance.
//
// Cutoffs are fail-hard: once a move's score reaches beta, the function returns beta itself
// rather than the (possibly higher) score that triggered the cutoff. This keeps the
// transposition store below simple: a stored LowerBound/UpperBound score is always exactly alpha
// or beta as passed in, never some other in-between value a fail-soft variant might have
// returned. Transposition-table hits and terminal (mate) scores are returned as they are and
// can lie outside the window.
func (s *searcher) alphabeta(ctx context.Context, b *board.Board, depth, ply int, alpha, beta board.Score) board.Score {
	if contextx.IsCancelled(ctx) {
		return 0
	}

	hash := b.Hash()
	var ttMove board.Move
	if e, ok := s.tt.Read(hash); ok {
		ttMove = e.Move
		if e.Depth >= depth {
			switch e.Bound {
			case ExactBound:
				return e.Score
			case LowerBound:
				if e.Score >= beta {
					return e.Score
				}
			case UpperBound:
				if e.Score <= alpha {
					return e.Score
				}
			}
		}
	}

	if depth == 0 {
		score := quiescence(ctx, b, s.eval, alpha, beta, &s.nodes)
		qBound := ExactBound
		switch {
		case score <= alpha:
			qBound = UpperBound
		case score >= beta:
			qBound = LowerBound
		}
		s.tt.Write(hash, ply, Entry{Bound: qBound, Depth: 0, Score: score})
		return score
	}

	if ply > 0 && b.IsDraw() {
		return 0
	}

	s.nodes++

	var list board.MoveList
	board.GenerateLegalMoves(b, &list)
	if list.Len() == 0 {
		if b.IsCheck() {
			return -eval.MateIn(ply)
		}
		return 0
	}

	orderMoves(&list, ttMove, b.Turn(), ply, s.killers, s.history)

	bound := UpperBound
	best := board.Move{}
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)

		b.Apply(m)
		score := -s.alphabeta(ctx, b, depth-1, ply+1, -beta, -alpha)
		b.Unapply()

		if score >= beta {
			if !m.IsCapture() {
				s.killers.record(ply, m)
				s.history.bump(b.Turn(), m, depth)
			}
			s.tt.Write(hash, ply, Entry{Bound: LowerBound, Depth: depth, Score: beta, Move: m})
			return beta
		}
		if score > alpha {
			alpha = score
			best = m
			bound = ExactBound
		}
	}

	s.tt.Write(hash, ply, Entry{Bound: bound, Depth: depth, Score: alpha, Move: best})
	return alpha
}
