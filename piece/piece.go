// Package piece holds the static polyomino geometry that the board and
// search packages consume: per-orientation cell offsets, bounding boxes,
// and the directed-corner tables used to drive move generation.
//
// The catalogue is generated once, at first use, by dihedral-transforming
// a small set of base shapes (see blocks.go) and deduplicating symmetric
// orientations the same way the reference tooling does. Nothing here is
// hand-transcribed per orientation, so the tables cannot drift from the
// generation rule.
package piece

import "sort"

// Point is a cell offset relative to a piece's own origin.
type Point struct {
	X, Y int8
}

// Quadrant names one of the four directions a piece corner can face.
type Quadrant int

const (
	NW Quadrant = iota
	NE
	SW
	SE
)

// NumOrientations is the size of the dihedral group acting on a shape.
const NumOrientations = 8

// Variant is one materialized oriented piece. Only the canonical
// orientation of a symmetric shape gets a Variant; other orientations
// resolve to it through Block.Rotations.
type Variant struct {
	ID          int // block_id*8 + orientation
	BlockID     int
	Orientation int
	Letter      byte
	Size        int
	Coords      []Point
	MinX, MinY, MaxX, MaxY int8
	// Corners[q] lists the cells of this variant that are exposed at
	// quadrant q, indexed by NW/NE/SW/SE.
	Corners [4][]Point
}

// Rotation maps a raw (possibly non-canonical) orientation to the
// canonical variant that represents it, plus the anchor translation
// needed to reuse the canonical geometry.
type Rotation struct {
	OffsetX, OffsetY int8
	Canonical        int // Variant.ID
}

// Block is a shape family: one polyomino up to its 8 dihedral images.
type Block struct {
	ID         int
	Letter     byte
	Size       int
	VariantIDs []int // materialized Variant.ID values, ascending by orientation of first appearance
	Rotations  [NumOrientations]Rotation
}

// Catalog is the read-only geometry table for one board variant
// (standard or mini). It is safe for concurrent use once built.
type Catalog struct {
	Blocks      []Block
	PieceSet    []*Variant // every materialized variant, in block order
	variantByID map[int]*Variant
}

// Variant looks up a materialized oriented piece by its full id
// (block_id*8 + orientation). It returns nil if id names an orientation
// that was folded into another canonical variant; callers normally
// reach materialized ids only through Block.Rotations[...].Canonical.
func (c *Catalog) Variant(id int) *Variant {
	return c.variantByID[id]
}

// NumBlocks reports the number of shape families in the catalog.
func (c *Catalog) NumBlocks() int { return len(c.Blocks) }

type blockDef struct {
	letter byte
	coords []Point
}

func pt(x, y int8) Point { return Point{x, y} }

func buildCatalog(defs []blockDef) *Catalog {
	cat := &Catalog{variantByID: make(map[int]*Variant)}
	for blockID, def := range defs {
		canonical, rotations := makeVariations(blockID, def.letter, def.coords)
		block := Block{
			ID:        blockID,
			Letter:    def.letter,
			Size:      len(def.coords),
			Rotations: rotations,
		}
		for _, v := range canonical {
			block.VariantIDs = append(block.VariantIDs, v.ID)
			cat.variantByID[v.ID] = v
			cat.PieceSet = append(cat.PieceSet, v)
		}
		cat.Blocks = append(cat.Blocks, block)
	}
	return cat
}

// makeVariations replays the reference shape's mirror/rotate loop: it
// visits all 8 dihedral images of coords, keeps the first occurrence of
// each distinct shape as a canonical Variant, and records how every
// orientation (including duplicates) maps back onto a canonical id.
func makeVariations(blockID int, letter byte, coords []Point) ([]*Variant, [NumOrientations]Rotation) {
	var canonical []*Variant
	var canonicalNorm [][]Point // normalizedSorted(coords) for each canonical, parallel to `canonical`
	var canonicalMin []Point    // per-axis min of each canonical's raw coords, parallel to `canonical`

	var rotations [NumOrientations]Rotation
	cur := append([]Point(nil), coords...)

	for i := 0; i < NumOrientations; i++ {
		curNorm := normalizedSorted(cur)
		curMin := axisMin(cur)

		matched := -1
		for j, norm := range canonicalNorm {
			if pointsEqual(norm, curNorm) {
				matched = j
				break
			}
		}

		if matched >= 0 {
			rotations[i] = Rotation{
				OffsetX:   curMin.X - canonicalMin[matched].X,
				OffsetY:   curMin.Y - canonicalMin[matched].Y,
				Canonical: canonical[matched].ID,
			}
		} else {
			v := buildVariant(blockID, i, letter, cur)
			canonical = append(canonical, v)
			canonicalNorm = append(canonicalNorm, curNorm)
			canonicalMin = append(canonicalMin, curMin)
			rotations[i] = Rotation{Canonical: v.ID}
		}

		cur = mirrorX(cur)
		if i%2 == 1 {
			cur = rotateRight(cur)
		}
	}
	return canonical, rotations
}

func buildVariant(blockID, orientation int, letter byte, coords []Point) *Variant {
	v := &Variant{
		ID:          blockID*8 + orientation,
		BlockID:     blockID,
		Orientation: orientation,
		Letter:      letter,
		Size:        len(coords),
		Coords:      append([]Point(nil), coords...),
	}
	v.MinX, v.MinY = coords[0].X, coords[0].Y
	v.MaxX, v.MaxY = coords[0].X, coords[0].Y
	for _, c := range coords {
		if c.X < v.MinX {
			v.MinX = c.X
		}
		if c.X > v.MaxX {
			v.MaxX = c.X
		}
		if c.Y < v.MinY {
			v.MinY = c.Y
		}
		if c.Y > v.MaxY {
			v.MaxY = c.Y
		}
	}
	v.Corners = directedCorners(coords)
	return v
}

func contains(coords []Point, p Point) bool {
	for _, c := range coords {
		if c == p {
			return true
		}
	}
	return false
}

// directedCorners finds the cells of a shape that are "exposed" at each
// of the four diagonal directions: a cell counts as a corner in a
// quadrant when neither of the two orthogonal neighbors that would
// close off that quadrant also belong to the shape.
func directedCorners(coords []Point) [4][]Point {
	var plain []Point
	for _, c := range coords {
		north := contains(coords, pt(c.X, c.Y-1))
		south := contains(coords, pt(c.X, c.Y+1))
		west := contains(coords, pt(c.X-1, c.Y))
		east := contains(coords, pt(c.X+1, c.Y))
		if !((west && east) || (north && south)) {
			plain = append(plain, c)
		}
	}

	var out [4][]Point
	for _, c := range plain {
		north := contains(coords, pt(c.X, c.Y-1))
		south := contains(coords, pt(c.X, c.Y+1))
		west := contains(coords, pt(c.X-1, c.Y))
		east := contains(coords, pt(c.X+1, c.Y))
		if !(north || west) {
			out[NW] = append(out[NW], c)
		}
		if !(north || east) {
			out[NE] = append(out[NE], c)
		}
		if !(south || west) {
			out[SW] = append(out[SW], c)
		}
		if !(south || east) {
			out[SE] = append(out[SE], c)
		}
	}
	return out
}

func mirrorX(coords []Point) []Point {
	out := make([]Point, len(coords))
	for i, c := range coords {
		out[i] = pt(-c.X, c.Y)
	}
	return out
}

// rotateRight applies the piece-local 90-degree rotation used between
// odd generation steps: (x, y) -> (-y, x).
func rotateRight(coords []Point) []Point {
	out := make([]Point, len(coords))
	for i, c := range coords {
		out[i] = pt(-c.Y, c.X)
	}
	return out
}

func axisMin(coords []Point) Point {
	m := coords[0]
	for _, c := range coords {
		if c.X < m.X {
			m.X = c.X
		}
		if c.Y < m.Y {
			m.Y = c.Y
		}
	}
	return m
}

// normalizedSorted shifts coords so their per-axis minimum is zero, then
// sorts them. Two point sets that are pure translations of one another
// produce identical results, since translation preserves lexicographic
// order.
func normalizedSorted(coords []Point) []Point {
	m := axisMin(coords)
	out := make([]Point, len(coords))
	for i, c := range coords {
		out[i] = pt(c.X-m.X, c.Y-m.Y)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].X != out[j].X {
			return out[i].X < out[j].X
		}
		return out[i].Y < out[j].Y
	})
	return out
}

func pointsEqual(a, b []Point) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
