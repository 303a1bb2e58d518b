// Package board implements the Blokus Duo board state machine: cell
// occupancy and adjacency flags, legal-move enumeration driven by
// per-color corner cells, scoring, and the compact Key used to
// deduplicate positions in search.
package board

import "github.com/irori/blokusduo/piece"

// Spec describes everything about a board variant that isn't part of
// the game's universal rules: its size, its two starting squares, and
// the piece catalog in play. Standard and Mini are its only two
// instances, but nothing below depends on that.
type Spec struct {
	Name                   string
	Width, Height          int
	Start1X, Start1Y       int
	Start2X, Start2Y       int
	Catalog                *piece.Catalog
}

// NumBlocks is the number of distinct shape families (hence the width
// of the per-player piece-availability bitset) this spec uses.
func (s *Spec) NumBlocks() int { return s.Catalog.NumBlocks() }

// Standard is the full 14x14, 21-piece board.
func Standard() *Spec {
	return &Spec{
		Name:    "standard",
		Width:   14,
		Height:  14,
		Start1X: 4, Start1Y: 4,
		Start2X: 9, Start2Y: 9,
		Catalog: piece.Standard(),
	}
}

// Mini is the simplified 8x8, 9-piece board.
func Mini() *Spec {
	return &Spec{
		Name:    "mini",
		Width:   8,
		Height:  8,
		Start1X: 2, Start1Y: 2,
		Start2X: 5, Start2Y: 5,
		Catalog: piece.Mini(),
	}
}
