package search

import (
	"context"

	"github.com/kpeck/corechess/internal/board"
	"github.com/seekerror/logw"
	"golang.org/x/sync/errgroup"
)

// DefaultDepth and DefaultWorkers mirror the reference configuration: depth
// 4 plies (own move, reply, own move, reply), 4 root-level workers.
const (
	DefaultDepth   = 4
	DefaultWorkers = 4
)

// Config bundles the two knobs external interfaces expose: how deep to
// search and how many workers to fork at the root.
type Config struct {
	Depth   int
	Workers int
}

// DefaultConfig returns the reference configuration.
func DefaultConfig() Config {
	return Config{Depth: DefaultDepth, Workers: DefaultWorkers}
}

// Search runs the root-level parallel alpha-beta search for pos's side to
// move and returns the best score and move found. If pos has no legal
// moves for its side to move (a terminal position), it returns (alpha,
// empty-Move) without spawning any worker — callers are expected to check
// terminality themselves if they need to distinguish checkmate from
// stalemate.
//
// ctx does not stop the search: Search always waits for every worker to run
// its fixed-depth search to completion, and a context error seen once the
// workers are done is only logged.
func Search(ctx context.Context, pos *board.Position, side board.Color, cfg Config) Result {
	moves := pos.ListMoves(side)
	if len(moves) == 0 {
		logw.Infof(ctx, "[search] no legal moves for %v at ply=%d, returning immediately", side, pos.Ply)
		return Result{Score: -mateSentinel}
	}

	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(moves) {
		workers = len(moves)
	}
	slices := splitRoundRobin(moves, workers)

	logw.Infof(ctx, "[search] depth=%d workers=%d moves=%d side=%v", cfg.Depth, workers, len(moves), side)

	shared := newSharedBest()
	g, gctx := errgroup.WithContext(ctx)
	for id, slice := range slices {
		id, slice := id, slice
		if len(slice) == 0 {
			continue
		}
		workerPos := pos.Clone()
		g.Go(func() error {
			rootWorker(workerPos, slice, cfg.Depth, side, shared, id)
			return gctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		logw.Warningf(ctx, "[search] context ended before all workers finished: %v", err)
	}

	best := Result{Score: -mateSentinel}
	haveMove := false
	for _, r := range shared.snapshot() {
		if r.Move == (board.Move{}) {
			continue
		}
		if !haveMove || r.Score > best.Score {
			best = r
			haveMove = true
		}
	}
	if !haveMove {
		// No published entry carries a move (every move in every slice
		// failed low); return any one published entry, whichever map
		// iteration yields first, or an empty result if none was published.
		// Either way Move is the zero value.
		for _, r := range shared.snapshot() {
			return r
		}
		return Result{Score: -mateSentinel}
	}

	logw.Infof(ctx, "[search] best=%v score=%d", best.Move, best.Score)
	return best
}
