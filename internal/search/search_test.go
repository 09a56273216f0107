package search

import (
	"context"
	"testing"

	"github.com/kpeck/corechess/internal/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bareBoard() *board.Board {
	b := &board.Board{}
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			b.Clear(x, y)
		}
	}
	return b
}

func TestSearchFindsMateInOne(t *testing.T) {
	b := bareBoard()
	// Classic back-rank mate: white rook swings from e1 to e8. Black's own
	// pawns block every flight square but f8/h8, both covered by the rook
	// once it lands on the 8th rank.
	b.Set(0, 7, board.Piece{Color: board.White, Kind: board.King})
	b.Set(4, 7, board.Piece{Color: board.White, Kind: board.Rook})
	b.Set(6, 0, board.Piece{Color: board.Black, Kind: board.King})
	b.Set(5, 1, board.Piece{Color: board.Black, Kind: board.Pawn})
	b.Set(6, 1, board.Piece{Color: board.Black, Kind: board.Pawn})
	b.Set(7, 1, board.Piece{Color: board.Black, Kind: board.Pawn})

	pos := &board.Position{Board: b, Ply: 0, SideToMove: board.White}

	result := Search(context.Background(), pos, board.White, Config{Depth: 2, Workers: 2})
	require.NotEqual(t, board.Move{}, result.Move)

	ok := pos.TryMove(result.Move.X1, result.Move.Y1, result.Move.X2, result.Move.Y2)
	require.True(t, ok, "search returned a move TryMove rejects")
	assert.True(t, pos.IsCheckmate(board.Black), "search should have found the mating rook move")
}

func TestSearchOnTerminalPositionReturnsNoMove(t *testing.T) {
	b := bareBoard()
	// Classic stalemate: black king a8, white king c7, white queen b6,
	// black to move.
	b.Set(0, 0, board.Piece{Color: board.Black, Kind: board.King})
	b.Set(2, 1, board.Piece{Color: board.White, Kind: board.King})
	b.Set(1, 2, board.Piece{Color: board.White, Kind: board.Queen})

	pos := &board.Position{Board: b, Ply: 0, SideToMove: board.Black}
	require.True(t, pos.IsStalemate(board.Black))

	result := Search(context.Background(), pos, board.Black, DefaultConfig())
	assert.Equal(t, board.Move{}, result.Move)
}

func TestSplitRoundRobinCoversEveryMove(t *testing.T) {
	moves := make([]board.Move, 10)
	for i := range moves {
		moves[i] = board.Move{X1: i}
	}
	slices := splitRoundRobin(moves, 4)

	var total int
	for _, s := range slices {
		total += len(s)
	}
	assert.Equal(t, len(moves), total)
	assert.LessOrEqual(t, len(slices[0])-len(slices[3]), 1)
}
