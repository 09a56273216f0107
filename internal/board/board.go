package board

// Board is the 8x8 grid of squares. X is file (0=a..7=h); Y is rank, with
// Y=0 the black back rank and Y=7 the white back rank. Board holds pieces
// by value: copying a Board by assignment is a full, independent snapshot.
type Board struct {
	Squares [8][8]Piece
}

// At returns the piece occupying (x, y).
func (b *Board) At(x, y int) Piece {
	return b.Squares[x][y]
}

// Set places p at (x, y), stamping p's own coordinates to match the slot.
func (b *Board) Set(x, y int, p Piece) {
	p.X, p.Y = x, y
	b.Squares[x][y] = p
}

// Clear overwrites (x, y) with the empty sentinel.
func (b *Board) Clear(x, y int) {
	b.Squares[x][y] = empty(x, y)
}

// NewBoard returns the standard starting position.
func NewBoard() *Board {
	b := &Board{}
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			b.Clear(x, y)
		}
	}

	backRank := [8]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for x, kind := range backRank {
		b.Set(x, 0, Piece{Color: Black, Kind: kind})
		b.Set(x, 7, Piece{Color: White, Kind: kind})
		b.Set(x, 1, Piece{Color: Black, Kind: Pawn})
		b.Set(x, 6, Piece{Color: White, Kind: Pawn})
	}
	return b
}

// King locates the king of the given color. Per the board invariants
// exactly one exists at all times; a missing king is a programmer error
// and panics rather than returning a zero value silently.
func (b *Board) King(color Color) Piece {
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			p := b.Squares[x][y]
			if p.Kind == King && p.Color == color {
				return p
			}
		}
	}
	panic("board: no king of color " + color.String())
}

// Copy returns an independent deep copy of the board. Piece is plain data,
// so assignment alone is a deep copy; no field holds a reference into b.
func (b *Board) Copy() *Board {
	cp := *b
	return &cp
}
