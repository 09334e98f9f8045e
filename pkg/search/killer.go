package search

import "github.com/morlock/chesscore/pkg/board"

// killerTable records, per ply, up to two quiet moves that recently caused a beta cutoff. The
// move orderer tries these before other quiet moves: a move that cut the tree off at this ply in
// one sibling line is likely to do so again in the next. Per-worker only -- a shared table under
// a mutex was found to cause lock contention, so every search worker owns its own.
type killerTable struct {
	moves [][2]board.Move
}

func newKillerTable(maxPly int) *killerTable {
	return &killerTable{moves: make([][2]board.Move, maxPly+1)}
}

// record promotes m to the most-recent killer slot for ply, demoting the previous occupant.
func (k *killerTable) record(ply int, m board.Move) {
	if ply >= len(k.moves) {
		return
	}
	slot := &k.moves[ply]
	if slot[0] == m {
		return
	}
	slot[1] = slot[0]
	slot[0] = m
}

// at returns the two killer moves for ply, most recent first. Either may be the zero Move if
// none has been recorded yet.
func (k *killerTable) at(ply int) (board.Move, board.Move) {
	if ply >= len(k.moves) {
		return board.Move{}, board.Move{}
	}
	return k.moves[ply][0], k.moves[ply][1]
}
