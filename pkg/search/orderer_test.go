package search

import (
	"testing"

	"github.com/morlock/chesscore/pkg/board"
	"github.com/stretchr/testify/assert"
)

func TestOrderMovesPutsTTMoveFirst(t *testing.T) {
	quiet := board.NewQuietMove(board.E2, board.E4, board.Pawn, board.NoPiece)
	capture := board.NewQuietMove(board.D2, board.D3, board.Pawn, board.Knight)
	ttMove := board.NewQuietMove(board.G1, board.F3, board.Knight, board.NoPiece)

	var list board.MoveList
	list.Add(quiet)
	list.Add(capture)
	list.Add(ttMove)

	orderMoves(&list, ttMove, board.White, 0, newKillerTable(1), newHistoryTable())
	assert.Equal(t, ttMove, list.At(0))
}

func TestOrderMovesRanksCapturesAboveQuiets(t *testing.T) {
	quiet := board.NewQuietMove(board.E2, board.E4, board.Pawn, board.NoPiece)
	winningCapture := board.NewQuietMove(board.D2, board.D3, board.Pawn, board.Queen)

	var list board.MoveList
	list.Add(quiet)
	list.Add(winningCapture)

	orderMoves(&list, board.Move{}, board.White, 0, newKillerTable(1), newHistoryTable())
	assert.Equal(t, winningCapture, list.At(0))
}

func TestOrderMovesPrefersQueenPromotion(t *testing.T) {
	promoteQueen := board.NewPromotionMove(board.D7, board.D8, board.Queen, board.NoPiece)
	promoteKnight := board.NewPromotionMove(board.D7, board.D8, board.Knight, board.NoPiece)

	var list board.MoveList
	list.Add(promoteKnight)
	list.Add(promoteQueen)

	orderMoves(&list, board.Move{}, board.White, 0, newKillerTable(1), newHistoryTable())
	assert.Equal(t, promoteQueen, list.At(0))
}

func TestOrderMovesPutsKillerAboveOtherQuiets(t *testing.T) {
	quiet := board.NewQuietMove(board.A2, board.A3, board.Pawn, board.NoPiece)
	killer := board.NewQuietMove(board.E2, board.E4, board.Pawn, board.NoPiece)

	killers := newKillerTable(1)
	killers.record(0, killer)

	var list board.MoveList
	list.Add(quiet)
	list.Add(killer)

	orderMoves(&list, board.Move{}, board.White, 0, killers, newHistoryTable())
	assert.Equal(t, killer, list.At(0))
}

func TestOrderCapturesByMVVLVA(t *testing.T) {
	pawnTakesQueen := board.NewQuietMove(board.E4, board.D5, board.Pawn, board.Queen)
	queenTakesPawn := board.NewQuietMove(board.H5, board.D5, board.Queen, board.Pawn)

	var list board.MoveList
	list.Add(queenTakesPawn)
	list.Add(pawnTakesQueen)

	orderCaptures(&list)
	assert.Equal(t, pawnTakesQueen, list.At(0), "capturing the queen with a pawn outranks a queen capturing a pawn")
}
