package board

import "fmt"

// PieceSet is the piece placement for one color: six bitboards, one per piece kind, plus a
// derived union. Invariant: the six bitboards are pairwise disjoint and their union equals
// Occupied.
type PieceSet struct {
	boards   [NumPieces]Bitboard
	Occupied Bitboard
}

func (ps *PieceSet) bitboard(p Piece) Bitboard {
	return ps.boards[p]
}

// Place adds a piece of the given kind to sq. sq must not already be occupied in this set.
func (ps *PieceSet) Place(p Piece, sq Square) {
	ps.boards[p] = ps.boards[p].Set(sq)
	ps.Occupied = ps.Occupied.Set(sq)
}

// Remove takes a piece of the given kind off sq.
func (ps *PieceSet) Remove(p Piece, sq Square) {
	ps.boards[p] = ps.boards[p].Clear(sq)
	ps.Occupied = ps.Occupied.Clear(sq)
}

// Move relocates a piece of the given kind from one square to another.
func (ps *PieceSet) Move(p Piece, from, to Square) {
	ps.Remove(p, from)
	ps.Place(p, to)
}

// PieceAt returns the piece kind on sq and true, or (NoPiece, false) if sq is empty in this set.
func (ps *PieceSet) PieceAt(sq Square) (Piece, bool) {
	if !ps.Occupied.IsSet(sq) {
		return NoPiece, false
	}
	for p := ZeroPiece; p < NumPieces; p++ {
		if ps.boards[p].IsSet(sq) {
			return p, true
		}
	}
	panic(fmt.Sprintf("occupied square %v not in any piece bitboard", sq))
}

func (ps *PieceSet) King() Square {
	return ps.boards[King].LastPopSquare()
}
