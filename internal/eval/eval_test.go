package eval

import (
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

func TestEvaluateKingsOnlySymmetry(t *testing.T) {
	b := bareBoard()
	b.Set(4, 7, board.Piece{Color: board.White, Kind: board.King})
	b.Set(4, 0, board.Piece{Color: board.Black, Kind: board.King})

	white := Evaluate(b, board.White)
	black := Evaluate(b, board.Black)

	// Each side scores its own king from its own table at a mirrored square,
	// so the two evaluations should be exact negations of one another.
	assert.Equal(t, white, -black)
}

func TestEvaluateMaterialAdvantage(t *testing.T) {
	b := bareBoard()
	b.Set(4, 7, board.Piece{Color: board.White, Kind: board.King})
	b.Set(4, 0, board.Piece{Color: board.Black, Kind: board.King})
	b.Set(0, 6, board.Piece{Color: board.White, Kind: board.Pawn})

	score := Evaluate(b, board.White)
	require.Positive(t, score)
}

func TestEvaluateEndgameKingTableSwitch(t *testing.T) {
	require.Less(t, board.Piece{Kind: board.Rook}.MaterialValue(), endgameThreshold)
	require.NotEqual(t,
		whiteKingEndTable[4][7],
		whiteKingTable[4][7],
		"endgame and middlegame king tables must differ at e1 for the switch to be observable",
	)

	endgame := bareBoard()
	endgame.Set(4, 7, board.Piece{Color: board.White, Kind: board.King})
	endgame.Set(4, 0, board.Piece{Color: board.Black, Kind: board.King})
	endgame.Set(0, 7, board.Piece{Color: board.White, Kind: board.Rook})

	withoutKingBonus := board.Piece{Kind: board.Rook}.MaterialValue() + whiteRookTable[0][7]
	wantEndgame := withoutKingBonus + whiteKingEndTable[4][7] - blackKingEndTable[4][0]
	assert.Equal(t, wantEndgame, Evaluate(endgame, board.White))

	// Starting position: full material for both sides, well above the
	// threshold, so the middlegame king table applies to both kings.
	full := board.NewPosition()
	wantMiddlegame := Evaluate(full.Board, board.White)
	assert.Equal(t, whiteKingTable[4][7]-blackKingTable[4][0], wantMiddlegame,
		"full material at the start position must use the middlegame king tables; "+
			"material and non-king PST terms cancel exactly by board symmetry")
}
