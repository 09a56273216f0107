package book

import (
	"math/rand/v2"

	"github.com/kpeck/corechess/internal/board"
)

// Book tracks the engine's position within the opening tree for one game.
// It is read-only after construction except for the cursor fields below, so
// the Root itself may be shared safely across games or search workers.
type Book struct {
	Root   *Node
	cur    *Node
	active bool
}

// New returns a book positioned at the root, active for a fresh game. cur
// starts at Root itself (not nil) so that a second-player engine — which
// never calls FirstMove and instead opens with Advance against the
// opponent's first move — still matches against Root.Children rather than
// finding no current node and deactivating immediately.
func New() *Book {
	root := NewRoot()
	return &Book{Root: root, cur: root, active: true}
}

// Active reports whether the book still has a line to offer.
func (b *Book) Active() bool {
	return b.active
}

// FirstMove returns a move uniformly chosen among the root's candidate
// openings, advancing the cursor into the tree. It must only be called
// once, before any move has been played in the game.
func (b *Book) FirstMove() (board.Move, bool) {
	if !b.active || len(b.Root.Children) == 0 {
		return board.Move{}, false
	}
	choice := b.Root.Children[rand.IntN(len(b.Root.Children))]
	b.cur = choice
	return choice.Move, true
}

// Advance reports the book's reply to the opponent's move, if the book is
// still active and that move matches one of the current node's scripted
// children. If the opponent's move deviates from every known continuation,
// or the matched line has no further reply, the book deactivates itself for
// the rest of the game and returns false.
func (b *Book) Advance(opponentMove board.Move) (board.Move, bool) {
	if !b.active || b.cur == nil {
		b.active = false
		return board.Move{}, false
	}
	for _, child := range b.cur.Children {
		if child.Move != opponentMove {
			continue
		}
		if len(child.Children) == 0 {
			b.active = false
			return board.Move{}, false
		}
		choice := child.Children[rand.IntN(len(child.Children))]
		b.cur = choice
		return choice.Move, true
	}
	b.active = false
	return board.Move{}, false
}
