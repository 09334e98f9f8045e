package search

import (
	"context"

	"github.com/morlock/chesscore/pkg/board"
	"github.com/morlock/chesscore/pkg/eval"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// quiescence extends the search along captures only, past the nominal depth horizon, so a
// position is never evaluated mid-exchange. It always terminates: the set of captures available
// on a board is finite and strictly shrinks every ply (a capture removes a piece).
func quiescence(ctx context.Context, b *board.Board, e eval.Evaluator, alpha, beta board.Score, nodes *uint64) board.Score {
	if contextx.IsCancelled(ctx) {
		return 0
	}
	*nodes++

	standPat := fromSideToMove(b, e)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	var list board.MoveList
	board.GenerateCaptures(b, &list)
	orderCaptures(&list)

	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		b.Apply(m)
		score := -quiescence(ctx, b, e, -beta, -alpha, nodes)
		b.Unapply()

		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			return beta
		}
	}
	return alpha
}

// fromSideToMove converts the evaluator's always-White-relative score to the perspective of
// whoever is to move on b, which every negamax-form node (alphabeta and quiescence alike) works
// in.
func fromSideToMove(b *board.Board, e eval.Evaluator) board.Score {
	s := e.Evaluate(b)
	if b.Turn() == board.Black {
		return -s
	}
	return s
}
