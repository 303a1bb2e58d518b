package search

import (
	"sort"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/irori/blokusduo/board"
	"github.com/irori/blokusduo/move"
)

// Result is the move a search settled on and the negamax score (from
// the mover's point of view) it found for it.
type Result struct {
	Move  move.Move
	Score int16
}

// VisitedNodes counts how many positions NegaScout, WLD, and Perfect
// have examined across every call made with this package, for
// reporting search throughput. It is never reset automatically.
var VisitedNodes int

// timeoutError is used internally to unwind the recursion once the
// deadline passes; it is never returned to callers.
type timeoutError struct{}

func (timeoutError) Error() string { return "search: deadline exceeded" }

type deadline struct {
	at      time.Time
	enabled bool
}

func (d *deadline) expired() bool {
	return d.enabled && !d.at.IsZero() && time.Now().After(d.at)
}

// child is one generated move together with the board it leads to and
// a move-ordering score seeded from the previous iteration's
// transposition table (or a static eval when nothing is cached yet).
type child struct {
	m     move.Move
	board board.Board
	score int16
}

func negaEval(b *board.Board) int16 { return int16(b.NegaEval()) }

// moveFilter implements the search's move-ordering prune: pieces
// smaller than a pentomino are not worth considering while the board
// is nearly empty, since a small piece played that early is almost
// never part of a strong plan. A catalog without pentominoes (the mini
// board) is never pruned.
func moveFilter(b *board.Board, letter byte) bool {
	if b.Spec().NumBlocks() <= int('j'-'a') {
		return true
	}
	return !(b.Turn() < 8 && letter < 'j')
}

// NegaScout runs iterative deepening from node up to maxDepth plies, or
// until stopAfter elapses, whichever comes first. Each completed
// iteration commits its best move before the next begins, so a
// deadline hit mid-iteration still returns the last fully searched
// result. timeoutAfter additionally bounds every iteration after the
// first, so a slow deep iteration aborts instead of blocking
// commitment of the previous iteration's result past stopAfter.
func NegaScout(node board.Board, maxDepth int, stopAfter, timeoutAfter time.Duration) Result {
	start := time.Now()
	stop := &deadline{at: start.Add(stopAfter), enabled: stopAfter > 0}
	timeout := &deadline{at: start.Add(timeoutAfter)}

	// prevTT holds the previous iteration's bounds, read-only, and is
	// used only to seed child move ordering; tt is this iteration's
	// write target. The two are never the same table: collapsing them
	// would mean move ordering chases scores this very iteration is
	// still revising.
	prevTT := newTranspositionTable(maxDepth)

	best := Result{Move: move.Pass, Score: 0}
	for depth := 2; depth <= maxDepth; depth++ {
		timeout.enabled = depth > 2
		tt := newTranspositionTable(maxDepth)
		var bestMove move.Move
		score, err := negaScoutRec(node, depth, negInf, posInf, &bestMove, tt, prevTT, 8, timeout)
		if err != nil {
			log.Debug().Int("depth", depth).Msg("negascout: iteration aborted by deadline")
			break
		}
		prevTT = tt
		best = Result{Move: bestMove, Score: score}
		log.Debug().Int("depth", depth).Str("move", best.Move.Code()).Int("score", int(best.Score)).
			Dur("elapsed", time.Since(start)).Msg("negascout: iteration complete")
		if stop.expired() {
			break
		}
	}
	return best
}

// negaScoutRec implements the recursive NegaScout / principal variation
// search: a depth-keyed transposition cache gated by hashDepth (writes
// stop once hashDepth reaches zero, matching the reference engine's
// fixed cache horizon from the root), ProbCut forward pruning, and
// ordered children seeded from the previous iteration's scores.
// bestMove is only non-nil at the root call; every recursive call
// passes nil, matching the reference engine's single out-parameter
// that is only populated at the top of the tree.
func negaScoutRec(node board.Board, depth int, alpha, beta int16, bestMove *move.Move, tt, prevTT *transpositionTable, hashDepth int, timeout *deadline) (int16, error) {
	VisitedNodes++
	if timeout.expired() {
		return 0, timeoutError{}
	}

	if depth <= 1 {
		return leafSearch(&node, alpha, beta), nil
	}

	var key board.Key
	entry := bound{negInf, posInf}
	if hashDepth > 0 {
		key = node.Key()
		if b, ok := tt.lookup(depth, key); ok {
			entry = b
			if entry.Hi <= alpha {
				return entry.Hi, nil
			}
			if entry.Lo >= beta {
				return entry.Lo, nil
			}
			if entry.Lo == entry.Hi {
				return entry.Lo, nil
			}
			if entry.Lo > alpha {
				alpha = entry.Lo
			}
			if entry.Hi < beta {
				beta = entry.Hi
			}
		} else {
			tt.store(depth, key, entry)
		}
	}

	if v, err := probeProbCut(&node, depth, alpha, beta, tt, prevTT, timeout); err != nil {
		return 0, err
	} else if v != nil {
		if hashDepth > 0 {
			if *v >= beta {
				raiseLo(tt, depth, key, entry, *v)
			} else {
				lowerHi(tt, depth, key, entry, *v)
			}
		}
		return *v, nil
	}

	children := collectChildren(&node, depth-1, prevTT)
	if len(children) == 0 {
		score := negaEval(&node)
		if hashDepth > 0 {
			tt.store(depth, key, bound{score, score})
		}
		return score, nil
	}
	sort.Slice(children, func(i, j int) bool { return children[i].score < children[j].score })

	origAlpha := alpha
	foundPV := false
	scoreMax := negInf
	scoreMaxMove := children[0].m
	a := alpha
	for _, c := range children {
		var score int16
		var err error
		if foundPV {
			score, err = negaScoutRec(c.board, depth-1, -a-1, -a, nil, tt, prevTT, hashDepth-1, timeout)
			score = -score
			if err == nil && score > a && score < beta {
				score, err = negaScoutRec(c.board, depth-1, -beta, -score, nil, tt, prevTT, hashDepth-1, timeout)
				score = -score
			}
		} else {
			score, err = negaScoutRec(c.board, depth-1, -beta, -a, nil, tt, prevTT, hashDepth-1, timeout)
			score = -score
		}
		if err != nil {
			return 0, err
		}

		if score >= beta {
			if hashDepth > 0 {
				raiseLo(tt, depth, key, entry, score)
			}
			if bestMove != nil {
				*bestMove = c.m
			}
			return score, nil
		}
		if score > scoreMax {
			scoreMax = score
			scoreMaxMove = c.m
			if score > a {
				a = score
			}
			if score > alpha {
				foundPV = true
			}
		}
	}
	if bestMove != nil {
		*bestMove = scoreMaxMove
	}

	if hashDepth > 0 {
		if scoreMax > origAlpha {
			tt.store(depth, key, bound{scoreMax, scoreMax})
		} else {
			hi := scoreMax
			if entry.Hi < hi {
				hi = entry.Hi
			}
			tt.store(depth, key, bound{entry.Lo, hi})
		}
	}
	return scoreMax, nil
}

// raiseLo records that a node's value is now known to be at least
// score, keeping any previously known upper bound.
func raiseLo(tt *transpositionTable, depth int, key board.Key, entry bound, score int16) {
	lo := score
	if entry.Lo > lo {
		lo = entry.Lo
	}
	tt.store(depth, key, bound{lo, entry.Hi})
}

// lowerHi records that a node's value is now known to be at most
// score, keeping any previously known lower bound.
func lowerHi(tt *transpositionTable, depth int, key board.Key, entry bound, score int16) {
	hi := score
	if entry.Hi < hi {
		hi = entry.Hi
	}
	tt.store(depth, key, bound{entry.Lo, hi})
}

// leafSearch runs a plain alpha-beta pass one ply deep, evaluating each
// generated child directly instead of recursing further. A result at
// or below alpha is reported as alpha itself.
func leafSearch(node *board.Board, alpha, beta int16) int16 {
	v := &alphaBetaVisitor{node: node, alpha: alpha, beta: beta}
	node.VisitMoves(v)
	return v.alpha
}

type alphaBetaVisitor struct {
	node        *board.Board
	alpha, beta int16
}

func (v *alphaBetaVisitor) Filter(letter byte, orientation int, b *board.Board) bool {
	return moveFilter(b, letter)
}

func (v *alphaBetaVisitor) VisitMove(m move.Move) bool {
	VisitedNodes++
	c := v.node.Child(m)
	score := -negaEval(&c)
	if score > v.alpha {
		v.alpha = score
		if v.alpha >= v.beta {
			return false
		}
	}
	return true
}

// collectChildren enumerates every move legal at node (after the
// turn<8 small-piece filter), pairing each with the resulting board
// and a move-ordering score: the midpoint of prevTT's cached bound for
// that child at childDepth-1 (the depth the previous, one-ply-shallower
// iteration searched it to) if one exists and is exact-ish, or the
// child's own static evaluation otherwise.
func collectChildren(node *board.Board, childDepth int, prevTT *transpositionTable) []child {
	moves := lo.Filter(node.ValidMoves(), func(m move.Move, _ int) bool {
		return m.IsPass() || moveFilter(node, m.Letter())
	})
	return lo.Map(moves, func(m move.Move, _ int) child {
		cb := node.Child(m)
		score := negaEval(&cb)
		if prevTT != nil {
			if b, ok := prevTT.lookup(childDepth-1, cb.Key()); ok && b.Lo > negInf && b.Hi < posInf {
				score = int16((int(b.Lo)+int(b.Hi))/2 - 1000)
			}
		}
		return child{m: m, board: cb, score: score}
	})
}
