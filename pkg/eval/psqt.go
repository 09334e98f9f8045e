package eval

import "github.com/morlock/chesscore/pkg/board"

// pieceSquareTable is a positional bonus per square, from White's perspective, laid out rank by
// rank starting at Rank1 so the literal reads like the board rotated to put White's own back
// rank first: pst[rank][file], rank/file both 0-indexed.
type pieceSquareTable [8][8]int16

var (
	pawnPST = pieceSquareTable{
		{0, 0, 0, 0, 0, 0, 0, 0},
		{5, 10, 10, -20, -20, 10, 10, 5},
		{5, -5, -10, 0, 0, -10, -5, 5},
		{0, 0, 0, 20, 20, 0, 0, 0},
		{5, 5, 10, 25, 25, 10, 5, 5},
		{10, 10, 20, 30, 30, 20, 10, 10},
		{50, 50, 50, 50, 50, 50, 50, 50},
		{0, 0, 0, 0, 0, 0, 0, 0},
	}

	knightPST = pieceSquareTable{
		{-50, -40, -30, -30, -30, -30, -40, -50},
		{-40, -20, 0, 5, 5, 0, -20, -40},
		{-30, 5, 10, 15, 15, 10, 5, -30},
		{-30, 0, 15, 20, 20, 15, 0, -30},
		{-30, 5, 15, 20, 20, 15, 5, -30},
		{-30, 0, 10, 15, 15, 10, 0, -30},
		{-40, -20, 0, 0, 0, 0, -20, -40},
		{-50, -40, -30, -30, -30, -30, -40, -50},
	}

	bishopPST = pieceSquareTable{
		{-20, -10, -10, -10, -10, -10, -10, -20},
		{-10, 5, 0, 0, 0, 0, 5, -10},
		{-10, 10, 10, 10, 10, 10, 10, -10},
		{-10, 0, 10, 10, 10, 10, 0, -10},
		{-10, 5, 5, 10, 10, 5, 5, -10},
		{-10, 0, 5, 10, 10, 5, 0, -10},
		{-10, 0, 0, 0, 0, 0, 0, -10},
		{-20, -10, -10, -10, -10, -10, -10, -20},
	}

	rookPST = pieceSquareTable{
		{0, 0, 0, 5, 5, 0, 0, 0},
		{-5, 0, 0, 0, 0, 0, 0, -5},
		{-5, 0, 0, 0, 0, 0, 0, -5},
		{-5, 0, 0, 0, 0, 0, 0, -5},
		{-5, 0, 0, 0, 0, 0, 0, -5},
		{-5, 0, 0, 0, 0, 0, 0, -5},
		{5, 10, 10, 10, 10, 10, 10, 5},
		{0, 0, 0, 0, 0, 0, 0, 0},
	}

	queenPST = pieceSquareTable{
		{-20, -10, -10, -5, -5, -10, -10, -20},
		{-10, 0, 5, 0, 0, 0, 0, -10},
		{-10, 5, 5, 5, 5, 5, 0, -10},
		{0, 0, 5, 5, 5, 5, 0, -5},
		{-5, 0, 5, 5, 5, 5, 0, -5},
		{-10, 0, 5, 5, 5, 5, 0, -10},
		{-10, 0, 0, 0, 0, 0, 0, -10},
		{-20, -10, -10, -5, -5, -10, -10, -20},
	}

	// kingMiddlegamePST favors shelter in a corner; the engine does not switch to an endgame
	// table since that is explicitly out of scope (no game-phase detection).
	kingMiddlegamePST = pieceSquareTable{
		{20, 30, 10, 0, 0, 10, 30, 20},
		{20, 20, 0, 0, 0, 0, 20, 20},
		{-10, -20, -20, -20, -20, -20, -20, -10},
		{-20, -30, -30, -40, -40, -30, -30, -20},
		{-30, -40, -40, -50, -50, -40, -40, -30},
		{-30, -40, -40, -50, -50, -40, -40, -30},
		{-30, -40, -40, -50, -50, -40, -40, -30},
		{-30, -40, -40, -50, -50, -40, -40, -30},
	}
)

func tableFor(p board.Piece) pieceSquareTable {
	switch p {
	case board.Pawn:
		return pawnPST
	case board.Knight:
		return knightPST
	case board.Bishop:
		return bishopPST
	case board.Rook:
		return rookPST
	case board.Queen:
		return queenPST
	case board.King:
		return kingMiddlegamePST
	default:
		return pieceSquareTable{}
	}
}

// squareValue returns the table bonus for a piece of color c sitting on sq. Black's table is the
// vertical mirror of White's: rank r for Black reads White's entry for rank (7-r).
func squareValue(t pieceSquareTable, c board.Color, sq board.Square) board.Score {
	r := int(sq.Rank())
	if c == board.Black {
		r = 7 - r
	}
	return board.Score(t[r][sq.File()])
}

// PieceSquare returns White's total piece-square adjustment: the sum of White's per-piece
// bonuses minus Black's.
func PieceSquare(b *board.Board) board.Score {
	var score board.Score
	for p := board.ZeroPiece; p < board.NumPieces; p++ {
		t := tableFor(p)

		whites := b.Pieces(board.White, p)
		for whites != 0 {
			var sq board.Square
			sq, whites = whites.PopLSB()
			score += squareValue(t, board.White, sq)
		}

		blacks := b.Pieces(board.Black, p)
		for blacks != 0 {
			var sq board.Square
			sq, blacks = blacks.PopLSB()
			score -= squareValue(t, board.Black, sq)
		}
	}
	return score
}
