package board

import (
	"strings"

	"github.com/irori/blokusduo/move"
	"github.com/irori/blokusduo/piece"
)

// Cell flags, one byte per board square. A cell can simultaneously be
// an edge and corner neighbor of both colors, which is exactly the
// information legal-move generation needs.
const (
	VioletTile   uint8 = 0x01 // occupied by violet
	OrangeTile   uint8 = 0x02 // occupied by orange
	VioletEdge   uint8 = 0x04 // orthogonally adjacent to a violet piece
	OrangeEdge   uint8 = 0x08 // orthogonally adjacent to an orange piece
	VioletCorner uint8 = 0x10 // diagonally adjacent to a violet piece
	OrangeCorner uint8 = 0x20 // diagonally adjacent to an orange piece

	VioletMask = VioletTile | VioletEdge | VioletCorner
	OrangeMask = OrangeTile | OrangeEdge | OrangeCorner
)

const passed uint32 = 0x80000000

// maxWidth bounds the fixed cell array so Board stays a plain value
// type: the largest variant (standard, 14x14) fits exactly.
const maxWidth = 14

// Board is the full game state for one variant. It is intentionally a
// plain struct of fixed-size arrays, never a pointer to a dynamically
// sized one: copying a Board (as Child does) is a real, independent
// deep copy by ordinary Go assignment.
type Board struct {
	spec   *Spec
	cells  [maxWidth][maxWidth]uint8
	pieces [2]uint32 // bit i: block i has been played; high bit: player passed
	turn   int
	player int
	key    Key
}

// New returns the initial position for spec: an empty board with both
// starting squares marked as the relevant player's corner.
func New(spec *Spec) Board {
	var b Board
	b.spec = spec
	b.cells[spec.Start1Y][spec.Start1X] = VioletCorner
	b.cells[spec.Start2Y][spec.Start2X] = OrangeCorner
	return b
}

// Spec returns the board variant in play.
func (b *Board) Spec() *Spec { return b.spec }

// Player returns the side to move: 0 (violet) or 1 (orange).
func (b *Board) Player() int { return b.player }

// Opponent returns 1 - Player().
func (b *Board) Opponent() int { return 1 - b.player }

// Turn returns the number of plies played so far.
func (b *Board) Turn() int { return b.turn }

// Key returns the board's compact position key.
func (b *Board) Key() Key { return b.key }

// At returns the cell flags at (x, y).
func (b *Board) At(x, y int) uint8 { return b.cells[y][x] }

// IsGameOver reports whether both players have passed in succession.
func (b *Board) IsGameOver() bool {
	return b.pieces[0]&b.pieces[1]&passed != 0
}

// IsPieceAvailable reports whether player has not yet played block.
func (b *Board) IsPieceAvailable(player, block int) bool {
	return b.pieces[player]&(1<<uint(block)) == 0
}

// DidPass reports whether player has passed.
func (b *Board) DidPass(player int) bool {
	return b.pieces[player]&passed != 0
}

func inBounds(spec *Spec, x, y int) bool {
	return x >= 0 && y >= 0 && x < spec.Width && y < spec.Height
}

// IsValidMove reports whether m can legally be played in the current
// position. Pass is always valid to check (whether it is actually the
// only legal choice is the caller's business via VisitMoves).
func (b *Board) IsValidMove(m move.Move) bool {
	if m.IsPass() {
		return true
	}
	if !b.IsPieceAvailable(b.player, m.BlockID()) {
		return false
	}
	blk := b.spec.Catalog.Blocks[m.BlockID()]
	rot := blk.Rotations[m.Orientation()]
	v := b.spec.Catalog.Variant(rot.Canonical)
	px := m.X() + int(rot.OffsetX)
	py := m.Y() + int(rot.OffsetY)

	if px+int(v.MinX) < 0 || px+int(v.MaxX) >= b.spec.Width ||
		py+int(v.MinY) < 0 || py+int(v.MaxY) >= b.spec.Height ||
		!b.placeable(px, py, v) {
		return false
	}

	cornerFlag := VioletCorner
	if b.player == 1 {
		cornerFlag = OrangeCorner
	}
	for _, c := range v.Coords {
		if b.cells[py+int(c.Y)][px+int(c.X)]&cornerFlag != 0 {
			return true
		}
	}
	return false
}

// placeable reports whether v can be dropped with its origin at
// (px, py) without overlapping a piece, or touching edge-to-edge with
// one of the current player's own color.
func (b *Board) placeable(px, py int, v *piece.Variant) bool {
	var mask uint8
	if b.player == 0 {
		mask = VioletTile | VioletEdge | OrangeTile
	} else {
		mask = OrangeTile | OrangeEdge | VioletTile
	}
	for _, c := range v.Coords {
		if b.cells[py+int(c.Y)][px+int(c.X)]&mask != 0 {
			return false
		}
	}
	return true
}

// PlayMove applies m to the board, advancing the turn and flipping the
// side to move.
func (b *Board) PlayMove(m move.Move) {
	if m.IsPass() {
		b.pieces[b.player] |= passed
		b.key.SetPass(b.player)
	} else {
		b.pieces[b.player] |= 1 << uint(m.BlockID())
		blk := b.spec.Catalog.Blocks[m.BlockID()]
		rot := blk.Rotations[m.Orientation()]
		v := b.spec.Catalog.Variant(rot.Canonical)
		px := m.X() + int(rot.OffsetX)
		py := m.Y() + int(rot.OffsetY)

		tileBit := VioletTile
		edgeBit := VioletEdge
		cornerBit := VioletCorner
		if b.player == 1 {
			tileBit, edgeBit, cornerBit = OrangeTile, OrangeEdge, OrangeCorner
		}

		for _, c := range v.Coords {
			x, y := px+int(c.X), py+int(c.Y)
			b.cells[y][x] |= tileBit
			b.key.Set(b.player, x, y)
			if inBounds(b.spec, x-1, y) {
				b.cells[y][x-1] |= edgeBit
			}
			if inBounds(b.spec, x, y-1) {
				b.cells[y-1][x] |= edgeBit
			}
			if inBounds(b.spec, x+1, y) {
				b.cells[y][x+1] |= edgeBit
			}
			if inBounds(b.spec, x, y+1) {
				b.cells[y+1][x] |= edgeBit
			}
			if inBounds(b.spec, x-1, y-1) {
				b.cells[y-1][x-1] |= cornerBit
			}
			if inBounds(b.spec, x+1, y-1) {
				b.cells[y-1][x+1] |= cornerBit
			}
			if inBounds(b.spec, x-1, y+1) {
				b.cells[y+1][x-1] |= cornerBit
			}
			if inBounds(b.spec, x+1, y+1) {
				b.cells[y+1][x+1] |= cornerBit
			}
		}
	}
	b.turn++
	b.player = b.Opponent()
	b.key.FlipPlayer()
}

// Child returns a copy of the board with move applied, leaving the
// receiver unmodified.
func (b Board) Child(m move.Move) Board {
	b.PlayMove(m)
	return b
}

// String renders the board as one character per cell: 'V' for violet,
// 'O' for orange, '.' for empty, one row per line.
func (b *Board) String() string {
	var sb strings.Builder
	for y := 0; y < b.spec.Height; y++ {
		for x := 0; x < b.spec.Width; x++ {
			switch {
			case b.cells[y][x]&VioletTile != 0:
				sb.WriteByte('V')
			case b.cells[y][x]&OrangeTile != 0:
				sb.WriteByte('O')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Score returns the number of tiles player has placed on the board.
func (b *Board) Score(player int) int {
	score := 0
	for i := 0; i < b.spec.NumBlocks(); i++ {
		if !b.IsPieceAvailable(player, i) {
			score += b.spec.Catalog.Blocks[i].Size
		}
	}
	return score
}

// RelativeScore returns the current player's score minus the
// opponent's.
func (b *Board) RelativeScore() int {
	v, o := b.Score(0), b.Score(1)
	if b.player == 0 {
		return v - o
	}
	return o - v
}
