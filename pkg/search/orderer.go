package search

import (
	"sort"

	"github.com/morlock/chesscore/pkg/board"
	"github.com/morlock/chesscore/pkg/eval"
)

// Priority bands keep the five move classes from spec's orderer from ever overlapping: a losing
// capture still outranks every non-capture, a non-queen promotion still outranks a killer, and so
// on. Only the PV move and the two per-ply killers are singled out by identity; everything else
// is ranked within its band by MVV-LVA, promotion kind, or history count.
const (
	priorityPV         = 1 << 28
	priorityCaptureBit = 1 << 24
	priorityPromoBit   = 1 << 20
	priorityKiller1    = 1 << 16
	priorityKiller2    = priorityKiller1 - 1
)

// orderMoves sorts list in place, highest-priority move first, per the orderer's five classes:
// the PV/TT move, winning captures by MVV-LVA, promotions (queen before underpromotion), killer
// moves for this ply, then quiet moves ranked by history. It only reads board state already
// captured on each Move (the captured piece kind); it never applies a move.
func orderMoves(list *board.MoveList, ttMove board.Move, turn board.Color, ply int, killers *killerTable, history *historyTable) {
	k1, k2 := killers.at(ply)

	priorities := make([]int, list.Len())
	for i := 0; i < list.Len(); i++ {
		priorities[i] = movePriority(list.At(i), ttMove, k1, k2, turn, history)
	}
	sort.Sort(&byPriority{list: list, priority: priorities})
}

// orderCaptures sorts a capture-only list (as produced by board.GenerateCaptures) by MVV-LVA,
// for quiescence search, which has no TT move, killers, or history to consult.
func orderCaptures(list *board.MoveList) {
	priorities := make([]int, list.Len())
	for i := 0; i < list.Len(); i++ {
		priorities[i] = mvvLVA(list.At(i))
	}
	sort.Sort(&byPriority{list: list, priority: priorities})
}

func movePriority(m, ttMove, k1, k2 board.Move, turn board.Color, history *historyTable) int {
	if ttMove != (board.Move{}) && m == ttMove {
		return priorityPV
	}
	switch {
	case m.IsCapture():
		return priorityCaptureBit + mvvLVA(m)
	case m.Kind == board.Promotion:
		bonus := 0
		if m.Promote == board.Queen {
			bonus = 1 << 8
		}
		return priorityPromoBit + bonus
	case m == k1:
		return priorityKiller1
	case m == k2:
		return priorityKiller2
	default:
		if h := history.at(turn, m); h < priorityKiller2 {
			return h
		}
		return priorityKiller2 - 1
	}
}

// mvvLVA scores a capture as 100*victim_value - attacker_value, using nominal (not
// piece-square-adjusted) piece values, per spec's move orderer. For a capturing promotion the
// promotion gain is added to the victim value.
func mvvLVA(m board.Move) int {
	return int(100*eval.MaterialGain(m)) - int(eval.NominalValue(m.Piece))
}

// byPriority adapts a board.MoveList and a parallel priority slice to sort.Interface, swapping
// both in lockstep so priorities stay attached to their move after reordering.
type byPriority struct {
	list     *board.MoveList
	priority []int
}

func (b *byPriority) Len() int { return b.list.Len() }

func (b *byPriority) Less(i, j int) bool { return b.priority[i] > b.priority[j] }

func (b *byPriority) Swap(i, j int) {
	mi, mj := b.list.At(i), b.list.At(j)
	b.list.Set(i, mj)
	b.list.Set(j, mi)
	b.priority[i], b.priority[j] = b.priority[j], b.priority[i]
}
