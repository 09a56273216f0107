// Package search implements the alpha-beta negamax search, parallelised at
// the root across worker goroutines that share a best-score map.
package search

import (
	"github.com/kpeck/corechess/internal/board"
	"github.com/kpeck/corechess/internal/eval"
)

// mateSentinel is the beta value a minimize call starts from; if it survives
// untouched, the side to move had no reply at all.
const mateSentinel = 1000000

// Result pairs a score with the move that produced it. Move is the zero
// value when no move improved on alpha (including at depth 0, where no move
// is searched at all).
type Result struct {
	Score int
	Move  board.Move
}

// maximize returns the best score pos's side to move can force, from side's
// perspective, searching depthLeft plies further.
func maximize(pos *board.Position, alpha, beta, depthLeft int, side board.Color) Result {
	if depthLeft == 0 {
		return Result{Score: eval.Evaluate(pos.Board, side)}
	}

	opponent := side.Opponent()
	var best board.Move
	for _, m := range pos.ListMoves(side) {
		if !pos.TryMove(m.X1, m.Y1, m.X2, m.Y2) {
			continue
		}
		score := minimize(pos, alpha, beta, depthLeft-1, opponent).Score
		pos.Unmake()

		if score >= beta {
			return Result{Score: beta}
		}
		if score > alpha {
			alpha = score
			best = m
		}
	}
	return Result{Score: alpha, Move: best}
}

// minimize returns the score side's opponent would force by replying
// optimally to the move maximize just played; side here is the side to move
// at this node (the opponent from maximize's point of view), matching the
// mutual recursion in the source this search is modeled on.
func minimize(pos *board.Position, alpha, beta, depthLeft int, side board.Color) Result {
	if depthLeft == 0 {
		return Result{Score: -eval.Evaluate(pos.Board, side)}
	}

	opponent := side.Opponent()
	movingBeta := beta
	var best board.Move
	moves := pos.ListMoves(side)
	for _, m := range moves {
		if !pos.TryMove(m.X1, m.Y1, m.X2, m.Y2) {
			continue
		}
		score := maximize(pos, alpha, movingBeta, depthLeft-1, opponent).Score
		pos.Unmake()

		if score <= alpha {
			return Result{Score: alpha}
		}
		if score < movingBeta {
			movingBeta = score
			best = m
		}
	}

	if best == (board.Move{}) && movingBeta == mateSentinel {
		if pos.IsStalemate(side) {
			return Result{Score: alpha}
		}
		movingBeta -= 10 - depthLeft
	}
	return Result{Score: movingBeta, Move: best}
}
