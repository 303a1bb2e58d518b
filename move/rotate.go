package move

import "github.com/irori/blokusduo/piece"

// Rotate returns the move that results from applying the r-th symmetry
// of the square board (r in 0..7: four rotations and four reflections)
// to m. Nothing else in this module calls it; the search's
// transposition tables key positions without symmetry folding.
//
// The symmetry group of the board is the same dihedral group of order
// 8 that piece.Catalog uses for orientations (see piece.makeVariations):
// index 2*a+s names "rotate a quarter turns, mirror if s is set". Move
// composes that same group element with m's own orientation to find
// the resulting orientation, then relocates the piece's actual board
// cells through the matching point symmetry to find the new anchor.
func Rotate(m Move, r int, boardSize int, cat *piece.Catalog) Move {
	if m.IsPass() || !m.IsValid() {
		return m
	}
	blk := cat.Blocks[m.BlockID()]
	rot := blk.Rotations[m.Orientation()]
	v := cat.Variant(rot.Canonical)

	originX := m.X() + int(rot.OffsetX)
	originY := m.Y() + int(rot.OffsetY)

	d := int8(boardSize)
	cells := make([]piece.Point, len(v.Coords))
	for i, c := range v.Coords {
		abs := piece.Point{X: int8(originX) + c.X, Y: int8(originY) + c.Y}
		cells[i] = transformPoint(abs, r, d)
	}

	o2 := composeOrientation(m.Orientation(), r)
	rot2 := blk.Rotations[o2]
	v2 := cat.Variant(rot2.Canonical)

	tMin := minPoint(cells)
	base := make([]piece.Point, len(v2.Coords))
	for i, c := range v2.Coords {
		base[i] = piece.Point{X: c.X + rot2.OffsetX, Y: c.Y + rot2.OffsetY}
	}
	bMin := minPoint(base)

	anchorX := int(tMin.X - bMin.X)
	anchorY := int(tMin.Y - bMin.Y)
	return New(anchorX, anchorY, m.BlockID(), o2)
}

func minPoint(pts []piece.Point) piece.Point {
	m := pts[0]
	for _, p := range pts {
		if p.X < m.X {
			m.X = p.X
		}
		if p.Y < m.Y {
			m.Y = p.Y
		}
	}
	return m
}

// transformPoint applies the r-th symmetry of a boardSize x boardSize
// grid (coordinates 0..boardSize-1) to p.
func transformPoint(p piece.Point, r int, d int8) piece.Point {
	x, y := p.X, p.Y
	switch r & 7 {
	case 0:
		return piece.Point{X: x, Y: y}
	case 1:
		return piece.Point{X: d - 1 - x, Y: y}
	case 2:
		return piece.Point{X: d - 1 - y, Y: x}
	case 3:
		return piece.Point{X: y, Y: x}
	case 4:
		return piece.Point{X: d - 1 - x, Y: d - 1 - y}
	case 5:
		return piece.Point{X: x, Y: d - 1 - y}
	case 6:
		return piece.Point{X: y, Y: d - 1 - x}
	default: // 7
		return piece.Point{X: d - 1 - y, Y: d - 1 - x}
	}
}

// composeOrientation finds the orientation index that results from
// applying board symmetry r to a piece currently in orientation o,
// using the group's (rotation-count, mirrored) decomposition: index =
// 2*count + (1 if mirrored).
func composeOrientation(o, r int) int {
	s0, a0 := o&1, o>>1
	sr, ar := r&1, r>>1
	var newS, newA int
	if s0 == 0 {
		newS = sr
		newA = (ar + a0) % 4
	} else {
		newS = (sr + 1) % 2
		newA = ((a0-ar)%4 + 4) % 4
	}
	return 2*newA + newS
}
