package board

// pieceWeights assigns a heuristic value to holding each block
// in reserve, keyed by block index (not letter): small pieces are
// cheap, the run of pentominoes is flat because by the midgame which
// pentomino remains matters far less than whether any big piece does.
var pieceWeights = []int{
	2, 4, 6, 6, 10, 10, 10, 10, 10, 16, 16,
	16, 16, 16, 16, 16, 16, 16, 16, 16, 16,
}

// EvalPieces scores the position from violet's perspective by the
// weighted count of pieces each side still has available: a player's
// score goes up for every piece the *opponent* has yet to play and
// down for every
// piece they themselves have yet to play. Net effect: it rewards having
// played more (or weightier) pieces than the opponent.
func (b *Board) EvalPieces() int {
	score := 0
	for i := 0; i < b.spec.NumBlocks() && i < len(pieceWeights); i++ {
		if b.IsPieceAvailable(0, i) {
			score -= pieceWeights[i]
		}
		if b.IsPieceAvailable(1, i) {
			score += pieceWeights[i]
		}
	}
	return score
}

// EvalInfluence scores the position from violet's perspective by a
// three-step flood fill from each side's open corners: cells reachable
// in fewer steps from a player's corners count as contested territory
// for that player. The flood starts on the corner cells themselves and
// moves orthogonally only; it stops at the board edge but not at
// occupied cells, and in the third step a cell next to several frontier
// cells is counted once per neighbor. It is defined only for boards large enough for the
// distinction to be meaningful (the standard 14x14 board); on the mini
// board it returns 0, matching the reference engine's own scope for
// this heuristic.
func (b *Board) EvalInfluence() int {
	if b.spec.Width < 10 || b.spec.Height < 10 {
		return 0
	}

	w, h := b.spec.Width, b.spec.Height
	total := 0
	for player := 0; player < 2; player++ {
		mask := VioletMask | OrangeTile
		corner := VioletCorner
		if player == 1 {
			mask = OrangeMask | VioletTile
			corner = OrangeCorner
		}

		reached := make([][]bool, h)
		for y := range reached {
			reached[y] = make([]bool, w)
		}

		var frontier [][2]int
		playerScore := 0
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if b.cells[y][x]&mask == corner {
					reached[y][x] = true
					frontier = append(frontier, [2]int{x, y})
					playerScore++
				}
			}
		}

		for step := 0; step < 2; step++ {
			var next [][2]int
			for _, c := range frontier {
				for _, d := range [][2]int{{0, -1}, {-1, 0}, {1, 0}, {0, 1}} {
					nx, ny := c[0]+d[0], c[1]+d[1]
					if nx < 0 || ny < 0 || nx >= w || ny >= h || reached[ny][nx] {
						continue
					}
					reached[ny][nx] = true
					next = append(next, [2]int{nx, ny})
					playerScore++
				}
			}
			frontier = next
		}
		// A third ply counts cells but doesn't grow the frontier further.
		for _, c := range frontier {
			for _, d := range [][2]int{{0, -1}, {-1, 0}, {1, 0}, {0, 1}} {
				nx, ny := c[0]+d[0], c[1]+d[1]
				if nx < 0 || ny < 0 || nx >= w || ny >= h || reached[ny][nx] {
					continue
				}
				playerScore++
			}
		}

		if player == 0 {
			total += playerScore
		} else {
			total -= playerScore
		}
	}
	return total
}

// Evaluate heuristically scores the position. Higher favors violet,
// lower favors orange.
func (b *Board) Evaluate() int {
	return b.EvalPieces() + b.EvalInfluence()
}

// NegaEval is Evaluate from the current player's point of view: higher
// is always better for whoever is to move.
func (b *Board) NegaEval() int {
	if b.player == 0 {
		return b.Evaluate()
	}
	return -b.Evaluate()
}
