package search

import "github.com/morlock/chesscore/pkg/board"

// historyTable scores quiet moves by how often they have caused a beta cutoff,
// indexed by the mover's color and the move's origin/destination squares. Per-worker, like
// killerTable: approximate aggregation across workers is acceptable but not required, so each
// worker keeps its own rather than paying for synchronization.
type historyTable struct {
	score [board.NumColors][board.NumSquares][board.NumSquares]int
}

func newHistoryTable() *historyTable {
	return &historyTable{}
}

// bump rewards a quiet move that caused a beta cutoff, weighted by depth squared so cutoffs
// found deep in the tree (rarer, more informative) outweigh shallow ones.
func (h *historyTable) bump(c board.Color, m board.Move, depth int) {
	h.score[c][m.From][m.To] += depth * depth
}

func (h *historyTable) at(c board.Color, m board.Move) int {
	return h.score[c][m.From][m.To]
}
