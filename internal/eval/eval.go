// Package eval provides a static evaluation of a board position: material
// plus piece-square-table bonuses, with a middlegame/endgame split on the
// king's table.
package eval

import "github.com/kpeck/corechess/internal/board"

// endgameThreshold is the non-pawn-material total (king included, pawns
// excluded) that both sides must be under for the kings' contributions to
// switch to the endgame tables; if either side is at or above it, both
// kings use the middlegame tables. It corresponds to two rooks, one bishop, and a king
// (20000+500+500+330 = 21330), so anything strictly under 21331 has at most
// that much material left.
const endgameThreshold = 21331

// Evaluate returns a score from perspective's point of view: positive means
// perspective is better off. Each side is scored with its own color's
// tables and the two totals are differenced, so evaluating the same board
// from the other color's perspective returns exactly the negated score.
func Evaluate(b *board.Board, perspective board.Color) int {
	opponent := perspective.Opponent()

	var ownScore, oppScore int
	var ownMaterial, oppMaterial int
	var ownKing, oppKing board.Piece
	haveOwnKing, haveOppKing := false, false

	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			p := b.At(x, y)
			switch p.Color {
			case perspective:
				if p.Kind == board.King {
					ownKing, haveOwnKing = p, true
					continue
				}
				if p.Kind != board.Pawn {
					ownMaterial += p.MaterialValue()
				}
				ownScore += p.MaterialValue() + pieceSquareValue(p)
			case opponent:
				if p.Kind == board.King {
					oppKing, haveOppKing = p, true
					continue
				}
				if p.Kind != board.Pawn {
					oppMaterial += p.MaterialValue()
				}
				oppScore += p.MaterialValue() + pieceSquareValue(p)
			}
		}
	}

	if haveOwnKing {
		ownMaterial += ownKing.MaterialValue()
	}
	if haveOppKing {
		oppMaterial += oppKing.MaterialValue()
	}
	endgame := ownMaterial < endgameThreshold && oppMaterial < endgameThreshold

	if haveOwnKing {
		ownScore += ownKing.MaterialValue() + kingTableValue(ownKing, endgame)
	}
	if haveOppKing {
		oppScore += oppKing.MaterialValue() + kingTableValue(oppKing, endgame)
	}

	return ownScore - oppScore
}

// pieceSquareValue looks up p's colored piece-square table at its own
// square. Dispatch is explicit per kind: unlike the program this evaluator
// is modeled on, no kind silently inherits another kind's table.
func pieceSquareValue(p board.Piece) int {
	white := p.Color == board.White
	switch p.Kind {
	case board.Pawn:
		if white {
			return whitePawnTable[p.X][p.Y]
		}
		return blackPawnTable[p.X][p.Y]
	case board.Knight:
		if white {
			return whiteKnightTable[p.X][p.Y]
		}
		return blackKnightTable[p.X][p.Y]
	case board.Bishop:
		if white {
			return whiteBishopTable[p.X][p.Y]
		}
		return blackBishopTable[p.X][p.Y]
	case board.Rook:
		if white {
			return whiteRookTable[p.X][p.Y]
		}
		return blackRookTable[p.X][p.Y]
	case board.Queen:
		if white {
			return whiteQueenTable[p.X][p.Y]
		}
		return blackQueenTable[p.X][p.Y]
	default:
		return 0
	}
}

func kingTableValue(king board.Piece, endgame bool) int {
	white := king.Color == board.White
	switch {
	case white && endgame:
		return whiteKingEndTable[king.X][king.Y]
	case white && !endgame:
		return whiteKingTable[king.X][king.Y]
	case !white && endgame:
		return blackKingEndTable[king.X][king.Y]
	default:
		return blackKingTable[king.X][king.Y]
	}
}
