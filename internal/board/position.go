package board

// UndoRecord snapshots everything TryMove touched on a single half-move, so
// that PartialUnmake can restore the board bit-identically. Each field is
// an independent value snapshot, never a reference into the live board:
// copy-on-push avoids any aliasing between the board and the undo stack.
type UndoRecord struct {
	// PrevMover and PrevTarget are always populated: the piece that moved
	// (as it stood before moving) and whatever occupied the destination
	// square (possibly the empty sentinel).
	PrevMover  Piece
	PrevTarget Piece

	// PrevSpecialMover carries the rook (castling) or the captured pawn (en
	// passant), snapshotted at its square before the move touched it.
	// PrevSpecialTarget carries whatever occupied the rook's destination
	// square before castling (always empty, but still snapshotted so the
	// square can be cleared again on unmake). HasSpecialMover/Target report
	// whether each applies to this record.
	PrevSpecialMover  Piece
	PrevSpecialTarget Piece
	HasSpecialMover   bool
	HasSpecialTarget  bool
}

// Position composes a Board with the game-level state needed to make,
// unmake and generate moves: the ply counter, the side to move, and the
// undo stack. UndoStack.length == Ply holds at rest between moves.
type Position struct {
	Board      *Board
	Ply        int
	SideToMove Color
	UndoStack  []UndoRecord
}

// NewPosition returns the standard starting position: white to move, ply 0,
// empty undo stack.
func NewPosition() *Position {
	return &Position{
		Board:      NewBoard(),
		Ply:        0,
		SideToMove: White,
		UndoStack:  nil,
	}
}

// MoveResult is the discriminated outcome of MakeMove.
type MoveResult int

const (
	Rejected MoveResult = iota
	Accepted
	AcceptedCheckmate
	AcceptedStalemate
)

// TryMove attempts to play (x1,y1)->(x2,y2). It returns false and leaves the
// position completely unchanged if the source square is empty, the piece
// does not belong to the side to move, the target is not pseudo-legally
// reachable, or the move would leave the mover's own king in check.
func (pos *Position) TryMove(x1, y1, x2, y2 int) bool {
	if !onBoard(x1, y1) || !onBoard(x2, y2) {
		return false
	}

	b := pos.Board
	mover := b.At(x1, y1)
	target := b.At(x2, y2)

	if mover.IsEmpty() || mover.Color != pos.SideToMove {
		return false
	}
	if !ValidMove(mover, target, b, pos.Ply) {
		return false
	}

	rec := UndoRecord{
		PrevMover:  mover,
		PrevTarget: target,
	}

	doublePush := false
	if mover.Kind == Pawn {
		if canEnPassant(mover, target, b, pos.Ply) {
			dir := pawnDirection(mover.Color)
			capX, capY := target.X, target.Y-dir
			rec.PrevSpecialMover = b.At(capX, capY)
			rec.HasSpecialMover = true
			b.Clear(capX, capY)
		} else if abs(y2-y1) == 2 {
			doublePush = true
		}
	}

	castleKingSide, castleQueenSide := false, false
	if mover.Kind == King {
		if validQueenSideCastle(mover, target, b, pos.Ply) {
			castleQueenSide = true
		} else if validKingSideCastle(mover, target, b, pos.Ply) {
			castleKingSide = true
		}
	}
	if castleKingSide || castleQueenSide {
		rookFrom, rookTo := 7, 5
		if castleQueenSide {
			rookFrom, rookTo = 0, 3
		}
		rook := b.At(rookFrom, mover.Y)
		rec.PrevSpecialMover = rook
		rec.HasSpecialMover = true
		rec.PrevSpecialTarget = b.At(rookTo, mover.Y)
		rec.HasSpecialTarget = true
		b.Clear(rookFrom, mover.Y)
		rook.HasMoved = true
		b.Set(rookTo, mover.Y, rook)
	}

	b.Clear(x1, y1)
	mover.X, mover.Y = x2, y2
	if doublePush {
		mover.MovedDouble = true
		mover.DoubleMovePly = pos.Ply
	}
	b.Squares[x2][y2] = mover

	pos.UndoStack = append(pos.UndoStack, rec)

	king := b.King(pos.SideToMove)
	if InCheck(king, b, pos.Ply) {
		pos.PartialUnmake()
		return false
	}

	if mover.Kind == Pawn && (mover.Y == 0 || mover.Y == 7) {
		queen := Piece{Color: mover.Color, Kind: Queen}
		b.Set(x2, y2, queen)
	}

	final := b.At(x2, y2)
	final.HasMoved = true
	if castleKingSide || castleQueenSide {
		final.HasCastled = true
	}
	b.Squares[x2][y2] = final

	pos.Ply++
	pos.SideToMove = pos.SideToMove.Opponent()
	return true
}

// MakeMove is TryMove plus post-move detection of checkmate/stalemate on the
// opponent now to move.
func (pos *Position) MakeMove(x1, y1, x2, y2 int) MoveResult {
	if !pos.TryMove(x1, y1, x2, y2) {
		return Rejected
	}
	opp := pos.SideToMove
	if pos.IsCheckmate(opp) {
		return AcceptedCheckmate
	}
	if pos.IsStalemate(opp) {
		return AcceptedStalemate
	}
	return Accepted
}

// PartialUnmake restores the topmost undo record and pops it, without
// touching Ply or SideToMove. It is used both to back out a trial move that
// proved illegal and, via Unmake, to reverse a completed move.
func (pos *Position) PartialUnmake() {
	n := len(pos.UndoStack)
	rec := pos.UndoStack[n-1]
	pos.UndoStack = pos.UndoStack[:n-1]

	b := pos.Board
	b.Squares[rec.PrevMover.X][rec.PrevMover.Y] = rec.PrevMover
	b.Squares[rec.PrevTarget.X][rec.PrevTarget.Y] = rec.PrevTarget
	if rec.HasSpecialMover {
		b.Squares[rec.PrevSpecialMover.X][rec.PrevSpecialMover.Y] = rec.PrevSpecialMover
	}
	if rec.HasSpecialTarget {
		b.Squares[rec.PrevSpecialTarget.X][rec.PrevSpecialTarget.Y] = rec.PrevSpecialTarget
	}
}

// Unmake reverses the most recently applied successful move: PartialUnmake
// plus decrementing Ply and flipping SideToMove.
func (pos *Position) Unmake() {
	pos.PartialUnmake()
	pos.Ply--
	pos.SideToMove = pos.SideToMove.Opponent()
}

// ListMoves enumerates every legal move for color by trial-applying every
// (from, to) pair in [0..7]^4 through TryMove and immediately unmaking it.
// It leaves the position byte-identical to its pre-call state. Ordering is
// natural lexicographic by (x1,y1,x2,y2); the search does not depend on any
// particular order, only on this being reproducible.
func (pos *Position) ListMoves(color Color) []Move {
	var moves []Move
	for x1 := 0; x1 < 8; x1++ {
		for y1 := 0; y1 < 8; y1++ {
			if pos.Board.At(x1, y1).Color != color {
				continue
			}
			for x2 := 0; x2 < 8; x2++ {
				for y2 := 0; y2 < 8; y2++ {
					if pos.TryMove(x1, y1, x2, y2) {
						moves = append(moves, Move{X1: x1, Y1: y1, X2: x2, Y2: y2})
						pos.Unmake()
					}
				}
			}
		}
	}
	return moves
}

// Clone returns an independent copy of the position, including its own
// board and a copy of the undo stack. Used to hand each search worker its
// own position so that no two workers ever share a board.
func (pos *Position) Clone() *Position {
	stack := make([]UndoRecord, len(pos.UndoStack))
	copy(stack, pos.UndoStack)
	return &Position{
		Board:      pos.Board.Copy(),
		Ply:        pos.Ply,
		SideToMove: pos.SideToMove,
		UndoStack:  stack,
	}
}
