// Package eval contains static position evaluation: material balance and piece-square
// adjustments, combined into a single pure function of a Board.
package eval

import "github.com/morlock/chesscore/pkg/board"

// Evaluator is a static position evaluator, always scoring from White's perspective (positive
// favors White). It is a pure function of the board: no move generation, no mutation, suitable
// for calling at every leaf and quiescence-horizon node.
type Evaluator interface {
	Evaluate(b *board.Board) board.Score
}

// Standard combines material balance with piece-square adjustments, the evaluator the search
// uses by default.
type Standard struct{}

func (Standard) Evaluate(b *board.Board) board.Score {
	return Material(b) + PieceSquare(b)
}
