package eval

// Piece-square tables, indexed [x][y] in the board package's file/rank
// convention, taken (like the source this engine is modeled on credits)
// from https://www.chessprogramming.org/Simplified_Evaluation_Function with
// minor source-specific adjustments. One table per (kind, color); white and
// black tables are vertical mirrors of each other (black[x][y] ==
// white[x][7-y]) since y=0 is black's back rank and y=7 is white's, with two
// exceptions: the black queen table is the white one flipped across files
// instead (black[x][y] == white[7-x][y]), and the a- and h-file columns
// (x=0 and x=7) of the two rook tables are identical, not mirrored.

var whitePawnTable = [8][8]int{
	{0, 50, 10, 5, 0, 5, 5, 0},
	{0, 50, 10, 5, 0, -5, 10, 0},
	{0, 50, 20, 10, 0, -10, 10, 0},
	{0, 50, 30, 25, 24, 0, -20, 0},
	{0, 50, 30, 25, 24, 0, -20, 0},
	{0, 50, 20, 10, 0, -10, 10, 0},
	{0, 50, 10, 5, 0, -5, 10, 0},
	{0, 50, 10, 5, 0, 5, 5, 0},
}

var blackPawnTable = [8][8]int{
	{0, 5, 5, 0, 5, 10, 50, 0},
	{0, 10, -5, 0, 5, 10, 50, 0},
	{0, 10, -10, 0, 10, 20, 50, 0},
	{0, -20, 0, 24, 25, 30, 50, 0},
	{0, -20, 0, 24, 25, 30, 50, 0},
	{0, 10, -10, 0, 10, 20, 50, 0},
	{0, 10, -5, 0, 5, 10, 50, 0},
	{0, 5, 5, 0, 5, 10, 50, 0},
}

var whiteKnightTable = [8][8]int{
	{-50, -40, -30, -30, -30, -30, -40, -50},
	{-40, -20, 0, 5, 0, 5, -20, -40},
	{-30, 0, 10, 15, 15, 10, 0, -30},
	{-30, 0, 15, 20, 20, 15, 5, -30},
	{-30, 0, 15, 20, 20, 15, 5, -30},
	{-30, 0, 10, 15, 15, 10, 0, -30},
	{-40, -20, 0, 5, 0, 5, -20, -40},
	{-50, -40, -30, -30, -30, -30, -40, -50},
}

var blackKnightTable = [8][8]int{
	{-50, -40, -30, -30, -30, -30, -40, -50},
	{-40, -20, 5, 0, 5, 0, -20, -40},
	{-30, 0, 10, 15, 15, 10, 0, -30},
	{-30, 5, 15, 20, 20, 15, 0, -30},
	{-30, 5, 15, 20, 20, 15, 0, -30},
	{-30, 0, 10, 15, 15, 10, 0, -30},
	{-40, -20, 5, 0, 5, 0, -20, -40},
	{-50, -40, -30, -30, -30, -30, -40, -50},
}

var whiteBishopTable = [8][8]int{
	{-20, -10, -10, -10, -10, -10, -10, -20},
	{-10, 0, 0, 5, 0, 10, 5, -10},
	{-10, 0, 5, 5, 10, 10, 0, -10},
	{-10, 0, 10, 10, 10, 10, 0, -10},
	{-10, 0, 10, 10, 10, 10, 0, -10},
	{-10, 0, 5, 5, 10, 10, 0, -10},
	{-10, 0, 0, 5, 0, 10, 5, -10},
	{-20, -10, -10, -10, -10, -10, -10, -20},
}

var blackBishopTable = [8][8]int{
	{-20, -10, -10, -10, -10, -10, -10, -20},
	{-10, 5, 10, 0, 5, 0, 0, -10},
	{-10, 0, 10, 10, 5, 5, 0, -10},
	{-10, 0, 10, 10, 10, 10, 0, -10},
	{-10, 0, 10, 10, 10, 10, 0, -10},
	{-10, 0, 10, 10, 5, 5, 0, -10},
	{-10, 5, 10, 0, 5, 0, 0, -10},
	{-20, -10, -10, -10, -10, -10, -10, -20},
}

var whiteRookTable = [8][8]int{
	{0, 5, -5, -5, -5, -5, -5, 0},
	{0, 10, 0, 0, 0, 0, 0, 0},
	{0, 10, 0, 0, 0, 0, 0, 0},
	{0, 10, 0, 0, 0, 0, 0, 5},
	{0, 10, 0, 0, 0, 0, 0, 5},
	{0, 10, 0, 0, 0, 0, 0, 0},
	{0, 10, 0, 0, 0, 0, 0, 0},
	{0, 5, -5, -5, -5, -5, -5, 0},
}

var blackRookTable = [8][8]int{
	{0, 5, -5, -5, -5, -5, -5, 0},
	{0, 0, 0, 0, 0, 0, 10, 0},
	{0, 0, 0, 0, 0, 0, 10, 0},
	{5, 0, 0, 0, 0, 0, 10, 0},
	{5, 0, 0, 0, 0, 0, 10, 0},
	{0, 0, 0, 0, 0, 0, 10, 0},
	{0, 0, 0, 0, 0, 0, 10, 0},
	{0, 5, -5, -5, -5, -5, -5, 0},
}

var whiteQueenTable = [8][8]int{
	{-20, -10, -10, -5, 0, -10, -10, -20},
	{-10, 0, 0, 0, 0, 5, 0, -10},
	{-10, 0, 5, 5, 5, 5, 5, -10},
	{-5, 0, 5, 5, 5, 5, 0, -5},
	{-5, 0, 5, 5, 5, 5, 0, -5},
	{-10, 0, 5, 5, 5, 5, 0, -10},
	{-10, 0, 0, 0, 0, 0, 0, -10},
	{-20, -10, -10, -5, -5, -10, -10, -20},
}

var blackQueenTable = [8][8]int{
	{-20, -10, -10, -5, -5, -10, -10, -20},
	{-10, 0, 0, 0, 0, 0, 0, -10},
	{-10, 0, 5, 5, 5, 5, 0, -10},
	{-5, 0, 5, 5, 5, 5, 0, -5},
	{-5, 0, 5, 5, 5, 5, 0, -5},
	{-10, 0, 5, 5, 5, 5, 5, -10},
	{-10, 0, 0, 0, 0, 5, 0, -10},
	{-20, -10, -10, -5, 0, -10, -10, -20},
}

var whiteKingTable = [8][8]int{
	{-30, -30, -30, -30, -20, -10, 20, 20},
	{-40, -40, -40, -40, -30, -20, 20, 30},
	{-40, -40, -40, -40, -30, -20, 0, 10},
	{-50, -50, -50, -50, -40, -20, 0, 0},
	{-50, -50, -50, -50, -40, -20, 0, 0},
	{-40, -40, -40, -40, -30, -20, 0, 10},
	{-40, -40, -40, -40, -30, -20, 20, 30},
	{-30, -30, -30, -30, -20, -10, 20, 20},
}

var blackKingTable = [8][8]int{
	{20, 20, -10, -20, -30, -30, -30, -30},
	{30, 20, -20, -30, -40, -40, -40, -40},
	{10, 0, -20, -30, -40, -40, -40, -40},
	{0, 0, -20, -40, -50, -50, -50, -50},
	{0, 0, -20, -40, -50, -50, -50, -50},
	{10, 0, -20, -30, -40, -40, -40, -40},
	{30, 20, -20, -30, -40, -40, -40, -40},
	{20, 20, -10, -20, -30, -30, -30, -30},
}

var whiteKingEndTable = [8][8]int{
	{-50, -30, -30, -30, -30, -30, -30, -50},
	{-40, -20, -10, -10, -10, -10, -30, -30},
	{-30, -10, 20, 30, 30, 20, 0, -30},
	{-20, 0, 30, 40, 40, 30, 0, -30},
	{-20, 0, 30, 40, 40, 30, 0, -30},
	{-30, -10, 20, 30, 30, 20, 0, -30},
	{-40, -20, -10, -10, -10, -10, -30, -30},
	{-50, -30, -30, -30, -30, -30, -30, -50},
}

var blackKingEndTable = [8][8]int{
	{-50, -30, -30, -30, -30, -30, -30, -50},
	{-30, -30, -10, -10, -10, -10, -20, -40},
	{-30, 0, 20, 30, 30, 20, -10, -30},
	{-30, 0, 30, 40, 40, 30, 0, -20},
	{-30, 0, 30, 40, 40, 30, 0, -20},
	{-30, 0, 20, 30, 30, 20, -10, -30},
	{-30, -30, -10, -10, -10, -10, -20, -40},
	{-50, -30, -30, -30, -30, -30, -30, -50},
}
