package eval

import "github.com/morlock/chesscore/pkg/board"

// NominalValue is the material worth of a piece kind in centipawns. The King has no material
// value: it is never captured, so material balance never includes it.
func NominalValue(p board.Piece) board.Score {
	switch p {
	case board.Pawn:
		return 100
	case board.Knight:
		return 320
	case board.Bishop:
		return 330
	case board.Rook:
		return 500
	case board.Queen:
		return 900
	default:
		return 0
	}
}

// Material returns White's material advantage: the sum of White's piece values minus Black's.
func Material(b *board.Board) board.Score {
	var score board.Score
	for p := board.ZeroPiece; p < board.NumPieces; p++ {
		if p == board.King {
			continue
		}
		white := b.Pieces(board.White, p).PopCount()
		black := b.Pieces(board.Black, p).PopCount()
		score += board.Score(white-black) * NominalValue(p)
	}
	return score
}

// MaterialGain is the material swing of applying m, from the mover's perspective: the value of
// anything captured, plus any promotion gain over the pawn it replaces. Used by the move
// orderer's MVV-LVA scoring and by quiescence to prioritize winning captures.
func MaterialGain(m board.Move) board.Score {
	var gain board.Score
	if m.IsCapture() {
		captured := m.Capture
		if m.Kind == board.EnPassant {
			captured = board.Pawn
		}
		gain += NominalValue(captured)
	}
	if m.Kind == board.Promotion {
		gain += NominalValue(m.Promote) - NominalValue(board.Pawn)
	}
	return gain
}
