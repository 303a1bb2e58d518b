package move

import "github.com/irori/blokusduo/piece"

// Mirror reflects m across the board's main diagonal (swapping X and Y
// on every cell the piece occupies). It is grounded on the same
// rotations table used by Canonicalize: diagonal reflection is orientation
// index (o + 5) mod 8 for odd o, (o + 3) mod 8 for even o, within the
// dihedral group piece.Catalog generates.
func Mirror(m Move, cat *piece.Catalog) Move {
	if m.IsPass() || !m.IsValid() {
		return m
	}
	o := m.Orientation()
	step := 3
	if o&1 == 1 {
		step = 5
	}
	d := (o + step) & 7

	blk := cat.Blocks[m.BlockID()]
	rot := blk.Rotations[d]
	v := cat.Variant(rot.Canonical)

	newX := m.Y() + int(rot.OffsetX)
	newY := m.X() + int(rot.OffsetY)
	return New(newX, newY, v.BlockID, v.Orientation)
}
