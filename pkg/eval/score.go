package eval

import "github.com/morlock/chesscore/pkg/board"

// This package reuses board.Score (signed centipawns, positive favors White) rather than
// introducing a second score type, so the evaluator, search and transposition table all speak
// the same unit.

const (
	// Inf/NegInf bound the alpha-beta search window on entry, one past board.MaxScore/MinScore
	// so that any real evaluation or mate score compares strictly inside them.
	Inf    board.Score = board.MaxScore + 1
	NegInf board.Score = board.MinScore - 1

	// MateScore is the score awarded for delivering mate on the current move. Scores at
	// increasing distance from the mating move are MateScore minus the ply count, so that a
	// shorter forced mate is always preferred to a longer one and mate scores never collide
	// with ordinary material+positional evaluations (whose magnitude stays far below
	// mateThreshold, even with every pawn promoted).
	MateScore board.Score = 29000

	// mateThreshold is the score magnitude above which a value is recognized as mate-distance
	// rather than a material/positional evaluation.
	mateThreshold board.Score = MateScore - 1000
)

// IsMateScore reports whether s encodes a forced mate at some distance, rather than a plain
// positional evaluation.
func IsMateScore(s board.Score) bool {
	return s > mateThreshold || s < -mateThreshold
}

// MateIn returns the score, from the perspective of the side delivering it, for a forced mate
// ply plies deep from the current search root (1 = the side to move at the root mates in its
// next move). This is also the magnitude alphabeta assigns a just-discovered checkmate, so that
// a shallower forced mate always outscores a deeper one once propagated to the root.
func MateIn(ply int) board.Score {
	return MateScore - board.Score(ply)
}
