package search

import (
	"github.com/irori/blokusduo/board"
	"github.com/irori/blokusduo/move"
)

// Perfect exhaustively solves node for its exact final relative score
// (the current player's tile count minus the opponent's, at the game's
// end under optimal play from both sides) rather than WLD's coarser
// sign. It is only practical once the midgame has narrowed enough that
// full enumeration to game end is feasible; callers typically switch
// to it from NegaScout once remaining turns drop low enough.
func Perfect(node board.Board) Result {
	tt := newTranspositionTable(maxTurnsRemaining(&node) + 1)
	dl := &deadline{}

	moves := node.ValidMoves()
	best := negInf
	var bestMove move.Move
	alpha, beta := negInf, posInf
	for i, m := range moves {
		c := node.Child(m)
		score, err := perfectRec(c, -beta, -alpha, tt, dl)
		if err != nil {
			return Result{Move: move.Pass, Score: 0}
		}
		score = -score
		if i == 0 || score > best {
			best = score
			bestMove = m
		}
		if score > alpha {
			alpha = score
		}
	}
	return Result{Move: bestMove, Score: best}
}

// perfectRec is a plain fail-soft negamax with alpha-beta cutoffs,
// structured like wldRec but caching a real (lo, hi) bound per
// position instead of a bare sign, since Perfect needs the actual
// score rather than just its sign.
func perfectRec(node board.Board, alpha, beta int16, tt *transpositionTable, dl *deadline) (int16, error) {
	VisitedNodes++

	if node.IsGameOver() {
		return int16(node.RelativeScore()), nil
	}

	depth := maxTurnsRemaining(&node)
	key := node.Key()
	flip := node.Player() == 1
	if b, ok := tt.lookup(depth, key); ok {
		lo, hi := b.Lo, b.Hi
		if flip {
			lo, hi = -b.Hi, -b.Lo
		}
		if lo >= beta {
			return lo, nil
		}
		if hi <= alpha {
			return hi, nil
		}
		if lo > alpha {
			alpha = lo
		}
		if hi < beta {
			beta = hi
		}
	}

	origAlpha := alpha
	moves := node.ValidMoves()
	best := negInf
	for _, m := range moves {
		c := node.Child(m)
		score, err := perfectRec(c, -beta, -alpha, tt, dl)
		if err != nil {
			return 0, err
		}
		score = -score
		if score > best {
			best = score
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			break
		}
	}

	storePerfectBound(tt, depth, key, flip, origAlpha, beta, best)
	return best, nil
}

// storePerfectBound records what this search learned about a
// position's exact score as a (lo, hi) bound, canonicalized to
// violet's perspective the same way wldRec's cache is: failing low
// only tightens the upper bound, failing high only tightens the lower
// bound, and landing strictly inside the window is exact.
func storePerfectBound(tt *transpositionTable, depth int, key board.Key, flip bool, origAlpha, beta, best int16) {
	var lo, hi int16
	switch {
	case best <= origAlpha:
		lo, hi = negInf, best
	case best >= beta:
		lo, hi = best, posInf
	default:
		lo, hi = best, best
	}
	if flip {
		lo, hi = -hi, -lo
	}
	tt.store(depth, key, bound{lo, hi})
}
