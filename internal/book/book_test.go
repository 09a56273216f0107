package book

import (
	"testing"

	"github.com/kpeck/corechess/internal/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirstMoveIsARootChild(t *testing.T) {
	b := New()
	move, ok := b.FirstMove()
	require.True(t, ok)

	var found bool
	for _, child := range b.Root.Children {
		if child.Move == move {
			found = true
		}
	}
	assert.True(t, found, "first move must be one of the root's candidate openings")
}

func TestAdvanceFollowsKnownLine(t *testing.T) {
	b := New()
	e2e4 := board.Move{X1: 4, Y1: 6, X2: 4, Y2: 4}

	// Force the book onto the e2e4 line directly, independent of the random
	// pick, so the rest of the test is deterministic.
	for _, child := range b.Root.Children {
		if child.Move == e2e4 {
			b.cur = child
		}
	}
	require.NotNil(t, b.cur)

	reply, ok := b.Advance(board.Move{X1: 4, Y1: 1, X2: 4, Y2: 3}) // e7e5
	require.True(t, ok)
	assert.Equal(t, board.Move{X1: 6, Y1: 7, X2: 5, Y2: 5}, reply) // Nf3
	assert.True(t, b.Active())
}

func TestAdvanceMatchesOpponentsFirstMoveForSecondPlayer(t *testing.T) {
	// A book that plays second (e.g. the engine on black) never calls
	// FirstMove; its first call is Advance against White's opening move,
	// which must match against Root.Children rather than finding no
	// current node and deactivating immediately.
	b := New()
	e2e4 := board.Move{X1: 4, Y1: 6, X2: 4, Y2: 4}

	reply, ok := b.Advance(e2e4)
	require.True(t, ok)

	var found bool
	for _, child := range b.Root.Children {
		if child.Move == e2e4 {
			for _, grandchild := range child.Children {
				if grandchild.Move == reply {
					found = true
				}
			}
		}
	}
	assert.True(t, found, "reply must be one of e2e4's scripted continuations")
	assert.True(t, b.Active())
}

func TestAdvanceDeactivatesOnDeviation(t *testing.T) {
	b := New()
	e2e4 := board.Move{X1: 4, Y1: 6, X2: 4, Y2: 4}
	for _, child := range b.Root.Children {
		if child.Move == e2e4 {
			b.cur = child
		}
	}
	require.NotNil(t, b.cur)

	_, ok := b.Advance(board.Move{X1: 0, Y1: 1, X2: 0, Y2: 2}) // a7a6, off book
	assert.False(t, ok)
	assert.False(t, b.Active())

	_, ok = b.Advance(board.Move{X1: 4, Y1: 1, X2: 4, Y2: 3})
	assert.False(t, ok, "a deactivated book must not resume on a later matching move")
}
