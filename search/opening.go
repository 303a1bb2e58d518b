package search

import (
	"lukechampine.com/frand"

	"github.com/irori/blokusduo/board"
	"github.com/irori/blokusduo/move"
)

// openingBook lists textual codes for first moves that score well in
// self-play but are far enough apart from each other that a game
// doesn't become predictable. It only applies to the standard board's
// first ply; the mini board and later plies get no book answer.
var openingBook = []string{
	"56t2", "65u0", "66p4", "56o4", "56t6",
	"65o6", "66t0", "64r2", "55t2", "75o2",
}

// OpeningMove returns a randomly chosen strong first move for node, or
// move.Invalid if node isn't a position OpeningMove applies to (not
// turn zero, or not the standard board).
func OpeningMove(node *board.Board) move.Move {
	if node.Turn() != 0 || node.Spec().Width < 10 {
		return move.Invalid
	}
	code := openingBook[frand.Intn(len(openingBook))]
	m, err := move.ParseCode(code)
	if err != nil {
		return move.Invalid
	}
	return m
}
