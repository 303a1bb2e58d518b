// Package search implements Blokus Duo's game-tree search: an
// iterative-deepening NegaScout with ProbCut forward pruning for
// timed midgame play, plus exact win/loss/draw and perfect-score
// endgame solvers sharing the same depth-keyed transposition cache
// design.
package search

import (
	"github.com/pbnjay/memory"
	"github.com/rs/zerolog/log"

	"github.com/irori/blokusduo/board"
)

// bound records what a previous search at some depth learned about a
// position's value: a closed [Lo, Hi] range the true negamax score is
// known to fall within. Lo == Hi means the value is exact.
type bound struct {
	Lo, Hi int16
}

// entrySize is the approximate footprint, in bytes, of one transposition
// table entry once Go's map overhead is counted alongside the Key and
// bound values themselves.
const entrySize = 96

// tableBudgetFraction is how much of total system memory a single
// transposition table is allowed to grow toward before levels stop
// accepting new entries. Blokus Duo's board.Key is far smaller than
// Scrabble's zobrist hash, so this stays conservative.
const tableBudgetFraction = 0.05

// transpositionTable caches bounds per board.Key, indexed by search
// depth: levels[d] holds entries discovered while searching to depth d,
// so looking a position up at a shallower remaining depth than it was
// last stored at is never a false hit. This mirrors how the original
// engine keeps one hash array per depth rather than a single table
// sized for the deepest search. Unlike the original's fixed power-of-two
// array, each level grows on demand and stops accepting new entries once
// maxEntries is reached, to keep memory bounded across the whole run.
type transpositionTable struct {
	levels     []map[board.Key]bound
	maxEntries int
}

func newTranspositionTable(maxDepth int) *transpositionTable {
	totalMem := memory.TotalMemory()
	maxEntries := int(tableBudgetFraction * float64(totalMem) / entrySize)
	if maxEntries < 1<<16 {
		maxEntries = 1 << 16
	}
	log.Debug().Int("max-entries-per-level", maxEntries).
		Uint64("total-system-memory-bytes", totalMem).
		Msg("transposition-table-size")

	t := &transpositionTable{
		levels:     make([]map[board.Key]bound, maxDepth+1),
		maxEntries: maxEntries,
	}
	for i := range t.levels {
		t.levels[i] = make(map[board.Key]bound)
	}
	return t
}

func (t *transpositionTable) lookup(depth int, key board.Key) (bound, bool) {
	if depth < 0 || depth >= len(t.levels) {
		return bound{}, false
	}
	b, ok := t.levels[depth][key]
	return b, ok
}

func (t *transpositionTable) store(depth int, key board.Key, b bound) {
	if depth < 0 || depth >= len(t.levels) {
		return
	}
	level := t.levels[depth]
	if _, exists := level[key]; !exists && len(level) >= t.maxEntries {
		return
	}
	level[key] = b
}

const (
	negInf int16 = -32767
	posInf int16 = 32767
)
