// Package engine provides game-session bookkeeping -- the current position, move history, and
// an in-progress search -- on top of the stateless board/search/eval packages. It is a thin
// caller of search.FindBestMove, not part of the core search contract.
package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/morlock/chesscore/pkg/board"
	"github.com/morlock/chesscore/pkg/board/fen"
	"github.com/morlock/chesscore/pkg/eval"
	"github.com/morlock/chesscore/pkg/search"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
)

var version = build.NewVersion(0, 1, 0)

// Options are engine-level tunables, mirrored onto search.Options at Analyze/Play time.
type Options struct {
	// DepthLimit is the search depth limit. Unset means search.DefaultMaxDepth.
	DepthLimit lang.Optional[int]
	// HashMB is the transposition table size in MB. Zero means no transposition table is
	// shared across searches (each gets its own default-sized table).
	HashMB int
	// Workers bounds root-level parallel fan-out. <= 1 means single-threaded search.
	Workers int
}

func (o Options) String() string {
	depth, _ := o.DepthLimit.V()
	return fmt.Sprintf("{depth=%v, hash=%vMB, workers=%v}", depth, o.HashMB, o.Workers)
}

// Engine wraps a mutable game position with the search/eval packages, for callers that want to
// play a game move by move rather than call search.FindBestMove directly on their own boards.
type Engine struct {
	name, author string

	zt   *board.ZobristTable
	opts Options

	mu sync.Mutex
	b  *board.Board
	tt search.TranspositionTable
}

// Option is an engine construction option.
type Option func(*Engine)

// WithOptions sets the engine's default search options.
func WithOptions(opts Options) Option {
	return func(e *Engine) { e.opts = opts }
}

// New constructs an engine at the standard starting position.
func New(ctx context.Context, name, author string, opts ...Option) *Engine {
	e := &Engine{name: name, author: author, zt: board.NewZobristTable(0)}
	for _, fn := range opts {
		fn(e)
	}
	if err := e.Reset(ctx, fen.Initial); err != nil {
		panic(err) // fen.Initial is always well-formed
	}

	logw.Infof(ctx, "initialized engine %v, options=%v", e.Name(), e.opts)
	return e
}

// Name returns the engine name and version.
func (e *Engine) Name() string {
	return fmt.Sprintf("%v %v", e.name, version)
}

// Author returns the engine author.
func (e *Engine) Author() string {
	return e.author
}

// Position returns the current position in FEN.
func (e *Engine) Position() string {
	e.mu.Lock()
	defer e.mu.Unlock()

	return fen.Encode(e.b)
}

// Reset replaces the current position with the one described by the given FEN record and, when
// Options.HashMB is set, allocates a fresh transposition table of that size.
func (e *Engine) Reset(ctx context.Context, position string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	b, err := fen.Decode(position, e.zt)
	if err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	e.b = b

	e.tt = nil
	if e.opts.HashMB > 0 {
		e.tt = search.NewTranspositionTable(uint64(e.opts.HashMB) << 20)
	}

	logw.Infof(ctx, "reset to %v", position)
	return nil
}

// Move applies a move given in pure algebraic coordinate notation (e.g. "e2e4", "a7a8q") to the
// current position. It is rejected if the candidate is not among the position's legal moves.
func (e *Engine) Move(ctx context.Context, move string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	from, to, promote, err := board.ParseMove(move)
	if err != nil {
		return fmt.Errorf("move: %w", err)
	}

	candidate, ok := e.b.ResolveMove(from, to, promote)
	if !ok {
		return fmt.Errorf("move: illegal move %v", move)
	}

	var list board.MoveList
	board.GenerateLegalMoves(e.b, &list)
	if !containsMove(&list, candidate) {
		return fmt.Errorf("move: illegal move %v", move)
	}

	e.b.Apply(candidate)
	logw.Infof(ctx, "applied %v", candidate)
	return nil
}

// TakeBack undoes the most recently applied move.
func (e *Engine) TakeBack(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.b.Depth() == 0 {
		return fmt.Errorf("takeback: no move to undo")
	}
	e.b.Unapply()

	logw.Infof(ctx, "took back last move")
	return nil
}

// Play finds the best move for the side to move in the current position, applies it, and
// returns it alongside its score. ok is false if the position has no legal move, or if ctx is
// cancelled before the search completes its first iteration.
func (e *Engine) Play(ctx context.Context) (board.Move, board.Score, bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	move, score, ok := search.FindBestMove(ctx, e.b, e.searchOptions())
	if !ok {
		return board.Move{}, 0, false, nil
	}

	e.b.Apply(move)
	logw.Infof(ctx, "played %v (score=%v)", move, score)
	return move, score, true, nil
}

// Analyze streams principal variations for the current position without mutating it.
func (e *Engine) Analyze(ctx context.Context) <-chan search.PV {
	e.mu.Lock()
	defer e.mu.Unlock()

	return search.Analyze(ctx, e.b.Clone(), e.searchOptions())
}

func containsMove(list *board.MoveList, m board.Move) bool {
	for i := 0; i < list.Len(); i++ {
		if list.At(i) == m {
			return true
		}
	}
	return false
}

func (e *Engine) searchOptions() search.Options {
	return search.Options{
		DepthLimit: e.opts.DepthLimit,
		Eval:       eval.Standard{},
		TT:         e.tt,
		Workers:    e.opts.Workers,
	}
}
