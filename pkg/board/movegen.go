package board

// GenerateLegalMoves appends every legal move for the side to move into out. out is not reset
// first, and the legality filter runs over every entry in out, so callers pass an empty list (or
// call out.Reset() themselves). Order is unspecified; the search's move orderer re-sorts.
func GenerateLegalMoves(b *Board, out *MoveList) {
	generatePseudoLegalMoves(b, out, false)
	filterLegal(b, out)
}

// GenerateCaptures appends only capturing pseudo-legal moves (capturing promotions included, to
// every promotion piece), already filtered for legality. Non-capturing promotions are not
// generated. Used by quiescence search, which only wants to resolve noisy exchanges.
func GenerateCaptures(b *Board, out *MoveList) {
	generatePseudoLegalMoves(b, out, true)
	filterLegal(b, out)
}

// filterLegal removes every move in out that leaves the mover's king attacked, applying and
// unapplying each in turn. This is the "apply, test, unapply" legality filter: simple, and fast
// enough since move lists are small.
func filterLegal(b *Board, out *MoveList) {
	turn := b.Turn()
	for i := 0; i < out.Len(); {
		m := out.At(i)
		b.Apply(m)
		kingSq := b.pieceSet(turn).King()
		safe := !b.IsAttacked(kingSq, b.Turn())
		b.Unapply()
		if safe {
			i++
		} else {
			out.removeAt(i)
		}
	}
}

// generatePseudoLegalMoves enumerates every move for the side to move without checking whether
// it leaves the king in check. capturesOnly restricts pawns/pieces to capturing moves (pawn
// pushes, including pushes onto the promotion rank, are skipped), used by quiescence search.
func generatePseudoLegalMoves(b *Board, out *MoveList, capturesOnly bool) {
	turn := b.Turn()
	own := b.pieceSet(turn)
	occ := b.Occupied()
	enemy := b.pieceSet(turn.Opponent()).Occupied

	generatePawnMoves(b, out, capturesOnly)

	for _, p := range []Piece{Knight, Bishop, Rook, Queen, King} {
		origin := own.bitboard(p)
		for origin != 0 {
			var from Square
			from, origin = origin.PopLSB()

			targets := Attackboard(p, turn, from, occ) &^ own.Occupied
			if capturesOnly {
				targets &= enemy
			}
			for targets != 0 {
				var to Square
				to, targets = targets.PopLSB()
				captured := NoPiece
				if c, cp, ok := b.PieceAt(to); ok && c == turn.Opponent() {
					captured = cp
				}
				out.Add(NewQuietMove(from, to, p, captured))
			}
		}
	}

	if !capturesOnly {
		generateCastlingMoves(b, out)
	}
}

func generatePawnMoves(b *Board, out *MoveList, capturesOnly bool) {
	turn := b.Turn()
	own := b.pieceSet(turn)
	occ := b.Occupied()
	enemy := b.pieceSet(turn.Opponent())
	pawns := own.bitboard(Pawn)
	promoRank := PawnPromotionRank(turn)

	addPawnMove := func(from, to Square, captured Piece) {
		if BitMask(to)&promoRank != 0 {
			out.Add(NewPromotionMove(from, to, Queen, captured))
			out.Add(NewPromotionMove(from, to, Rook, captured))
			out.Add(NewPromotionMove(from, to, Bishop, captured))
			out.Add(NewPromotionMove(from, to, Knight, captured))
			return
		}
		out.Add(NewQuietMove(from, to, Pawn, captured))
	}

	if !capturesOnly {
		single := PawnMoveboard(occ, turn, pawns)
		for bb := single; bb != 0; {
			var to Square
			to, bb = bb.PopLSB()
			from := pawnPushOrigin(turn, to)
			addPawnMove(from, to, NoPiece)
		}

		homeRank := PawnHomeRank(turn)
		jumpers := pawns & homeRank
		firstStep := PawnMoveboard(occ, turn, jumpers)
		double := PawnMoveboard(occ, turn, firstStep) & PawnJumpRank(turn)
		for bb := double; bb != 0; {
			var to Square
			to, bb = bb.PopLSB()
			from := pawnPushOrigin(turn, pawnPushOrigin(turn, to))
			out.Add(NewQuietMove(from, to, Pawn, NoPiece))
		}
	}

	for bb := pawns; bb != 0; {
		var from Square
		from, bb = bb.PopLSB()

		targets := PawnCaptureboard(turn, BitMask(from)) & enemy.Occupied
		for t := targets; t != 0; {
			var to Square
			to, t = t.PopLSB()
			_, cp, _ := b.PieceAt(to)
			addPawnMove(from, to, cp)
		}

		if ep, ok := b.EnPassant(); ok {
			if PawnCaptureboard(turn, BitMask(from)).IsSet(ep) {
				out.Add(NewEnPassantMove(from, ep))
			}
		}
	}
}

// pawnPushOrigin returns the square a pawn of color c pushed from to reach to (one square back).
func pawnPushOrigin(c Color, to Square) Square {
	if c == White {
		return NewSquare(to.File(), to.Rank()-1)
	}
	return NewSquare(to.File(), to.Rank()+1)
}

func generateCastlingMoves(b *Board, out *MoveList) {
	turn := b.Turn()
	opp := turn.Opponent()
	occ := b.Occupied()
	rights := b.Castling()

	rank := Rank1
	if turn == Black {
		rank = Rank8
	}
	e, f, g, d, c, bSq := NewSquare(FileE, rank), NewSquare(FileF, rank), NewSquare(FileG, rank),
		NewSquare(FileD, rank), NewSquare(FileC, rank), NewSquare(FileB, rank)

	ks, qs := Rights(turn)

	if rights.IsAllowed(ks) && !occ.IsSet(f) && !occ.IsSet(g) {
		if !b.IsAttacked(e, opp) && !b.IsAttacked(f, opp) && !b.IsAttacked(g, opp) {
			out.Add(NewCastleMove(KingSide))
		}
	}
	if rights.IsAllowed(qs) && !occ.IsSet(d) && !occ.IsSet(c) && !occ.IsSet(bSq) {
		if !b.IsAttacked(e, opp) && !b.IsAttacked(d, opp) && !b.IsAttacked(c, opp) {
			out.Add(NewCastleMove(QueenSide))
		}
	}
}
