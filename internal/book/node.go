// Package book implements the opening book: a small rooted tree of
// pre-scripted move sequences consulted before search while the current
// game stays on a known line.
package book

import "github.com/kpeck/corechess/internal/board"

// Node is one ply of a scripted line. The root node carries the zero Move
// and is never itself played; its children are the book's candidate first
// moves.
type Node struct {
	Move     board.Move
	Children []*Node
}

func node(x1, y1, x2, y2 int) *Node {
	return &Node{Move: board.Move{X1: x1, Y1: y1, X2: x2, Y2: y2}}
}

func (n *Node) add(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// NewRoot builds the book's seed opening theory: the named lines below are
// reproduced move-for-move from the program this engine is modeled on,
// which built the same tree from hand-written algebraic-style comments.
func NewRoot() *Node {
	root := &Node{}

	e2e4 := node(4, 6, 4, 4)
	root.add(e2e4)

	// Italian Game / Four Knights, no bishop pin.
	e7e5 := node(4, 1, 4, 3)
	g1f3 := node(6, 7, 5, 5)
	b8c6 := node(1, 0, 2, 2)
	f1c4 := node(5, 7, 2, 4)
	f8c5 := node(5, 0, 2, 3)
	e1g1 := node(4, 7, 6, 7)
	g8f6 := node(6, 0, 5, 2)
	f1e1 := node(5, 7, 4, 7)
	e2e4.add(e7e5)
	e7e5.add(g1f3)
	g1f3.add(b8c6)
	b8c6.add(f1c4)
	f1c4.add(f8c5)
	f8c5.add(e1g1)
	e1g1.add(g8f6)
	g8f6.add(f1e1)

	// Ruy Lopez, bishop pins the knight.
	f1b5 := node(5, 7, 1, 3)
	g8f6b := node(6, 0, 5, 2)
	d2d3 := node(3, 6, 3, 5)
	f8c5b := node(5, 0, 2, 3)
	c2c3 := node(2, 6, 2, 5)
	e8g8 := node(4, 0, 6, 0)
	e1g1b := node(4, 7, 6, 7)
	b8c6.add(f1b5)
	f1b5.add(g8f6b)
	g8f6b.add(d2d3)
	d2d3.add(f8c5b)
	f8c5b.add(c2c3)
	c2c3.add(e8g8)
	e8g8.add(e1g1b)

	// Caro-Kann.
	c7c6 := node(2, 1, 2, 2)
	d2d4b := node(3, 6, 3, 4)
	d7d5 := node(3, 1, 3, 3)
	e4d5 := node(4, 4, 3, 3)
	c6d5 := node(2, 2, 3, 3)
	f1d3 := node(5, 7, 3, 5)
	b8c6b := node(1, 0, 2, 2)
	c2c3b := node(2, 6, 2, 5)
	g8f6c := node(6, 0, 5, 2)
	c1f4 := node(2, 7, 5, 4)
	e2e4.add(c7c6)
	c7c6.add(d2d4b)
	d2d4b.add(d7d5)
	d7d5.add(e4d5)
	e4d5.add(c6d5)
	c6d5.add(f1d3)
	f1d3.add(b8c6b)
	b8c6b.add(c2c3b)
	c2c3b.add(g8f6c)
	g8f6c.add(c1f4)

	// Sicilian.
	c7c5 := node(2, 1, 2, 3)
	g1f3c := node(6, 7, 5, 5)
	d7d6 := node(3, 1, 3, 2)
	b1c3c := node(1, 7, 2, 5)
	e2e4.add(c7c5)
	c7c5.add(g1f3c)
	g1f3c.add(d7d6)
	d7d6.add(b1c3c)

	d2d4 := node(3, 6, 3, 4)
	root.add(d2d4)

	// Queen's Gambit Accepted.
	d7d5b := node(3, 1, 3, 3)
	c2c4 := node(2, 6, 2, 4)
	d5c4 := node(3, 3, 2, 4)
	e2e4b := node(4, 6, 4, 4)
	e7e6 := node(4, 1, 4, 2)
	f1c4b := node(5, 7, 2, 4)
	g8f6d := node(6, 0, 5, 2)
	e4e5 := node(4, 4, 4, 3)
	f6d5 := node(5, 2, 3, 3)
	b1c3b := node(1, 7, 2, 5)
	d2d4.add(d7d5b)
	d7d5b.add(c2c4)
	c2c4.add(d5c4)
	d5c4.add(e2e4b)
	e2e4b.add(e7e6)
	e7e6.add(f1c4b)
	f1c4b.add(g8f6d)
	g8f6d.add(e4e5)
	e4e5.add(f6d5)
	f6d5.add(b1c3b)

	// Queen's Gambit Declined.
	e7e6b := node(4, 1, 4, 2)
	b1c3 := node(1, 7, 2, 5)
	g8f6e := node(6, 0, 5, 2)
	c4d5 := node(2, 4, 3, 3)
	c2c4.add(e7e6b)
	e7e6b.add(b1c3)
	b1c3.add(g8f6e)
	g8f6e.add(c4d5)

	e6d5 := node(4, 2, 3, 3) // recapture with pawn
	c1g5 := node(2, 7, 6, 3)
	c4d5.add(e6d5)
	e6d5.add(c1g5)

	f6d5b := node(5, 2, 3, 3) // recapture with knight
	g1f3b := node(6, 7, 5, 5)
	c4d5.add(f6d5b)
	f6d5b.add(g1f3b)

	// Slav Defense.
	c7c6b := node(2, 1, 2, 2)
	g1f3d := node(6, 7, 5, 5)
	g8f6f := node(6, 0, 5, 2)
	b1c3d := node(1, 7, 2, 5)
	c2c4.add(c7c6b)
	c7c6b.add(g1f3d)
	g1f3d.add(g8f6f)
	g8f6f.add(b1c3d)

	return root
}
