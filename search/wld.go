package search

import (
	"time"

	"github.com/irori/blokusduo/board"
	"github.com/irori/blokusduo/move"
)

// WLD exhaustively solves node for win/loss/draw: the returned score is
// positive if the side to move can force a win, negative if they are
// forced to lose, and zero for a forced draw, regardless of how the
// margin falls out. It shares its transposition cache's depth-keyed
// design with NegaScout and Perfect, but only ever stores and compares
// the sign of a score, which lets it search far deeper than either in
// the same time. timeout bounds the whole call; on timeout it returns
// the best result found so far with a non-exact score.
func WLD(node board.Board, timeout time.Duration) Result {
	dl := &deadline{at: time.Now().Add(timeout), enabled: timeout > 0}
	tt := newTranspositionTable(maxTurnsRemaining(&node) + 1)

	moves := node.ValidMoves()
	best := int16(-2)
	var bestMove move.Move
	for i, m := range moves {
		c := node.Child(m)
		score, err := wldRec(c, -1, 1, tt, dl)
		if err != nil {
			break
		}
		score = -score
		if i == 0 || score > best {
			best = score
			bestMove = m
		}
		if best == 1 {
			break // the maximum possible result, no later move can beat it
		}
	}
	return Result{Move: bestMove, Score: best}
}

func maxTurnsRemaining(node *board.Board) int {
	return node.Spec().NumBlocks()*2 + 2 - node.Turn()
}

// wldRec returns the sign of the relative score node's side to move can
// force, within the [alpha, beta] window (each in {-1, 0, 1}).
func wldRec(node board.Board, alpha, beta int16, tt *transpositionTable, dl *deadline) (int16, error) {
	VisitedNodes++
	if dl.expired() {
		return 0, timeoutError{}
	}

	// Both players passed in succession: the game is over and the
	// margin is locked in for good.
	if node.IsGameOver() {
		return signOf(node.RelativeScore()), nil
	}

	depth := maxTurnsRemaining(&node)
	key := node.Key()
	flip := node.Player() == 1
	if b, ok := tt.lookup(depth, key); ok {
		v := b.Lo
		if flip {
			v = -v
		}
		return v, nil
	}

	moves := node.ValidMoves()

	// A lone forced pass only short-circuits when the current margin is
	// already a loss: it can't be erased before the opponent moves
	// again. An even or winning margin must still look one ply ahead,
	// since the opponent's reply can still flip it.
	if len(moves) == 1 && moves[0].IsPass() {
		if rel := node.RelativeScore(); rel < 0 {
			return int16(signOf(rel)), nil
		}
	}

	origAlpha := alpha
	best := int16(-2)
	for _, m := range moves {
		c := node.Child(m)
		score, err := wldRec(c, -beta, -alpha, tt, dl)
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

	// Fail-soft alpha-beta only guarantees an exact value when it falls
	// strictly inside the window it was asked for; a value at or beyond
	// either edge is merely a bound and must not be cached as exact.
	if best > origAlpha && best < beta {
		store := best
		if flip {
			store = -best
		}
		tt.store(depth, key, bound{store, store})
	}
	return best, nil
}

func signOf(v int) int16 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
