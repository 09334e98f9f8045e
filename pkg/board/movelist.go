package board

// inlineMoveCapacity sizes the MoveList's embedded array. Legal move counts in reachable chess
// positions are almost always under 50 and the theoretical hard cap is 218, so this covers the
// overwhelming majority of positions without touching the heap.
const inlineMoveCapacity = 64

// MoveList is a buffer of moves used by move generation and the orderer. It starts
// backed by an inline array and only spills to a heap-allocated slice past inlineMoveCapacity
// entries, so generating moves for a typical position allocates nothing.
type MoveList struct {
	inline   [inlineMoveCapacity]Move
	n        int
	overflow []Move
}

// Reset empties the list for reuse, retaining any already-allocated overflow capacity.
func (l *MoveList) Reset() {
	l.n = 0
	l.overflow = l.overflow[:0]
}

// Add appends a move to the list.
func (l *MoveList) Add(m Move) {
	if l.n < inlineMoveCapacity {
		l.inline[l.n] = m
		l.n++
		return
	}
	l.overflow = append(l.overflow, m)
}

// Len returns the number of moves currently in the list.
func (l *MoveList) Len() int {
	return l.n + len(l.overflow)
}

// At returns the i-th move, 0 <= i < Len().
func (l *MoveList) At(i int) Move {
	if i < l.n {
		return l.inline[i]
	}
	return l.overflow[i-l.n]
}

// Set overwrites the i-th move in place, used by the orderer to sort without reallocating.
func (l *MoveList) Set(i int, m Move) {
	if i < l.n {
		l.inline[i] = m
		return
	}
	l.overflow[i-l.n] = m
}

// removeAt deletes the i-th move, shifting subsequent entries down by one. Used by the legality
// filter, which removes moves in place rather than building a second list.
func (l *MoveList) removeAt(i int) {
	last := l.Len() - 1
	for j := i; j < last; j++ {
		l.Set(j, l.At(j+1))
	}
	if len(l.overflow) > 0 {
		l.overflow = l.overflow[:len(l.overflow)-1]
	} else {
		l.n--
	}
}

// Slice materializes the list as a plain slice, for callers that want normal slice semantics at
// the cost of one allocation.
func (l *MoveList) Slice() []Move {
	out := make([]Move, l.Len())
	for i := range out {
		out[i] = l.At(i)
	}
	return out
}
