package search

import (
	"sync"

	"github.com/kpeck/corechess/internal/board"
)

// sharedBest is the cross-worker best-score map described in the
// concurrency model: last-writer-wins, readers tolerate stale entries
// because alpha only ever rises. One entry per worker id.
type sharedBest struct {
	mu      sync.Mutex
	results map[int]Result
}

func newSharedBest() *sharedBest {
	return &sharedBest{results: make(map[int]Result)}
}

func (s *sharedBest) publish(workerID int, r Result) {
	s.mu.Lock()
	s.results[workerID] = r
	s.mu.Unlock()
}

// raiseAlpha scans every worker's published best (including the caller's
// own, which is harmless: it can never exceed the caller's own alpha) and
// returns the highest score seen, or alpha unchanged if nothing beats it.
func (s *sharedBest) raiseAlpha(alpha int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.results {
		if r.Score > alpha {
			alpha = r.Score
		}
	}
	return alpha
}

func (s *sharedBest) snapshot() map[int]Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[int]Result, len(s.results))
	for k, v := range s.results {
		out[k] = v
	}
	return out
}

// rootWorker runs the root-level alpha-beta loop against its own slice of
// root moves, on its own Position clone, publishing its running best into
// shared each time alpha improves (and on a beta cutoff). This mirrors the source's minimax entry point,
// kept separate from maximize/minimize so the root's parallel-sharing
// behavior doesn't have to be threaded through the plain recursive search.
func rootWorker(pos *board.Position, moves []board.Move, depth int, side board.Color, shared *sharedBest, workerID int) Result {
	alpha := -mateSentinel
	beta := mateSentinel
	opponent := side.Opponent()
	var best board.Move

	for _, m := range moves {
		alpha = shared.raiseAlpha(alpha)

		if !pos.TryMove(m.X1, m.Y1, m.X2, m.Y2) {
			continue
		}
		score := minimize(pos, alpha, beta, depth-1, opponent).Score
		pos.Unmake()

		if score >= beta {
			shared.publish(workerID, Result{Score: beta, Move: best})
			return Result{Score: beta, Move: best}
		}
		if score > alpha {
			alpha = score
			best = m
			shared.publish(workerID, Result{Score: alpha, Move: best})
		}
	}
	return Result{Score: alpha, Move: best}
}

// splitRoundRobin partitions moves across n workers by round-robin
// assignment, so that adjacent root moves land on different workers and no
// single worker is stuck with a contiguous "hard" region of the move list.
func splitRoundRobin(moves []board.Move, n int) [][]board.Move {
	slices := make([][]board.Move, n)
	for i, m := range moves {
		w := i % n
		slices[w] = append(slices[w], m)
	}
	return slices
}
