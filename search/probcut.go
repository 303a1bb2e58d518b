package search

import "github.com/irori/blokusduo/board"

// probCutEntry describes one depth's statistical shortcut: a shallow
// search to probeDepth correlates with the full-depth score closely
// enough (slope `a`, intercept `b`, residual std deviation `sigma`)
// that failing high or low against a `threshold`-times-sigma-widened bound in
// the shallow search lets the full-depth search cut early. This is
// deliberately a small illustrative table, not the original engine's
// regression-fit data: ProbCut only pays off with coefficients tuned
// against real game records, which are out of scope here.
type probCutEntry struct {
	probeDepth int
	a, b       float64
	sigma      float64
}

// probCutMinHeight/probCutMaxHeight bound the remaining-depth range
// ProbCut is allowed to fire in: too shallow and the full search is
// already cheap, too deep and the shallow probe stops being
// predictive.
const (
	probCutMinHeight = 3
	probCutMaxHeight = 10
	probCutMaxTurn   = 24
)

var probCutTable = map[int]probCutEntry{
	3:  {probeDepth: 1, a: 1.0, b: 0, sigma: 12},
	4:  {probeDepth: 2, a: 1.0, b: 0, sigma: 14},
	5:  {probeDepth: 2, a: 1.0, b: 0, sigma: 16},
	6:  {probeDepth: 2, a: 1.0, b: 0, sigma: 18},
	7:  {probeDepth: 3, a: 1.0, b: 0, sigma: 19},
	8:  {probeDepth: 3, a: 1.0, b: 0, sigma: 20},
	9:  {probeDepth: 4, a: 1.0, b: 0, sigma: 21},
	10: {probeDepth: 4, a: 1.0, b: 0, sigma: 22},
}

// roundHalfAway rounds x to the nearest integer, ties away from zero,
// matching the reference engine's round_() helper.
func roundHalfAway(x float64) int16 {
	if x >= 0 {
		return int16(x + 0.5)
	}
	return int16(x - 0.5)
}

// probeProbCut attempts a ProbCut cutoff for node at the given depth
// and [alpha, beta] window, testing both directions: the upper probe
// asks whether the true value is likely >= beta, the lower probe
// (symmetric around alpha) asks whether it's likely <= alpha. It
// returns nil when neither probe cuts, in which case the caller
// proceeds with a full-width search. The shallow probes share the
// live tt/prevTT tables (hashDepth 0, so they never write into them)
// rather than standing up throwaway tables per call.
func probeProbCut(node *board.Board, depth int, alpha, beta int16, tt, prevTT *transpositionTable, timeout *deadline) (*int16, error) {
	if node.Spec().Width < 10 {
		return nil, nil // mini board: no tuned coefficients, matching the reference engine's own scope
	}
	if node.Turn() > probCutMaxTurn || depth < probCutMinHeight || depth > probCutMaxHeight {
		return nil, nil
	}
	entry, ok := probCutTable[depth]
	if !ok {
		return nil, nil
	}

	threshold := 1.6
	if node.Turn() >= 15 {
		threshold = 2.0
	}

	// Upper probe: does the true value likely reach beta?
	probeBeta := roundHalfAway((float64(beta)-entry.b)/entry.a + threshold*entry.sigma)
	score, err := negaScoutRec(*node, entry.probeDepth, probeBeta-1, probeBeta, nil, tt, prevTT, 0, timeout)
	if err != nil {
		return nil, err
	}
	if score >= probeBeta {
		v := beta
		return &v, nil
	}

	// Lower probe: does the true value likely fall to or below alpha?
	probeAlpha := roundHalfAway((float64(alpha)-entry.b)/entry.a - threshold*entry.sigma)
	score, err = negaScoutRec(*node, entry.probeDepth, probeAlpha, probeAlpha+1, nil, tt, prevTT, 0, timeout)
	if err != nil {
		return nil, err
	}
	if score <= probeAlpha {
		v := alpha
		return &v, nil
	}

	return nil, nil
}
