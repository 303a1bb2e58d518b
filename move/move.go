// Package move defines the compact, value-semantic encoding of a single
// Blokus Duo ply: where a piece lands and which of its eight dihedral
// orientations it lands in.
package move

import (
	"fmt"

	"github.com/irori/blokusduo/piece"
)

// Move packs a placement into 16 bits: 4 bits of Y, 4 bits of X, 3 bits
// of orientation, and 5 bits of block id, low to high. The two
// remaining bit patterns above the valid range are reserved for Pass
// and Invalid.
type Move uint16

const (
	// Pass represents a player passing their turn because no piece can
	// be legally placed.
	Pass Move = 0xffff
	// Invalid is the sentinel for "no move has been decided". It is not
	// the zero Move, which encodes block 'a' at (0, 0).
	Invalid Move = 0xfffe
)

// New builds the move that drops the given block, in the given
// orientation, with its origin cell at (x, y).
func New(x, y, blockID, orientation int) Move {
	return Move(x<<4 | y | orientation<<8 | blockID<<11)
}

// FromVariant builds the move that places v with its origin at (x, y).
func FromVariant(x, y int, v *piece.Variant) Move {
	return New(x, y, v.BlockID, v.Orientation)
}

// X returns the column of the move's origin cell.
func (m Move) X() int { return int(m>>4) & 0xf }

// Y returns the row of the move's origin cell.
func (m Move) Y() int { return int(m) & 0xf }

// Orientation returns the dihedral orientation index, 0..7.
func (m Move) Orientation() int { return int(m>>8) & 0x7 }

// BlockID returns the shape family index.
func (m Move) BlockID() int { return int(m >> 11) }

// VariantID returns the full block_id*8+orientation id used to look up
// geometry in a piece.Catalog.
func (m Move) VariantID() int { return m.BlockID()*8 + m.Orientation() }

// Letter returns the single-character block name ('a', 'b', ...).
func (m Move) Letter() byte { return 'a' + byte(m.BlockID()) }

// IsPass reports whether this move represents passing.
func (m Move) IsPass() bool { return m == Pass }

// IsValid reports whether this move is anything other than Invalid. Pass
// is valid; no further structural check is made.
func (m Move) IsValid() bool { return m != Invalid }

// codeBias is added to the packed (x<<4|y) byte before hex-encoding it
// (and subtracted back out when parsing), so that the textual code
// never starts with a digit that could be confused with a leading
// minus sign or an all-zero placeholder.
const codeBias = 0x11

// Code renders the move in the four-character textual form: a
// two-digit uppercase hex byte encoding (x<<4|y)+codeBias, the block
// letter, then a single decimal orientation digit. Pass renders as
// "----".
func (m Move) Code() string {
	if m.IsPass() {
		return "----"
	}
	if !m.IsValid() {
		return "????"
	}
	xy := uint8(m.X()<<4|m.Y()) + codeBias
	const hex = "0123456789ABCDEF"
	return string([]byte{
		hex[xy>>4],
		hex[xy&0xf],
		m.Letter(),
		byte('0' + m.Orientation()),
	})
}

func (m Move) String() string { return m.Code() }

func hexNibble(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10, true
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, true
	default:
		return 0, false
	}
}

// ParseCode parses the four-character textual form produced by Code.
// It accepts "----" for Move.Pass.
func ParseCode(s string) (Move, error) {
	if s == "----" {
		return Pass, nil
	}
	if len(s) != 4 {
		return Invalid, fmt.Errorf("move: bad code %q: want 4 characters", s)
	}
	hi, ok1 := hexNibble(s[0])
	lo, ok2 := hexNibble(s[1])
	if !ok1 || !ok2 {
		return Invalid, fmt.Errorf("move: bad code %q: bad hex byte", s)
	}
	xy := uint8(hi<<4|lo) - codeBias
	x := int(xy>>4) & 0xf
	y := int(xy) & 0xf

	letter := s[2]
	if letter < 'a' || letter > 'z' {
		return Invalid, fmt.Errorf("move: bad code %q: bad block letter %q", s, letter)
	}
	if s[3] < '0' || s[3] > '7' {
		return Invalid, fmt.Errorf("move: bad code %q: bad orientation digit", s)
	}
	orientation := int(s[3] - '0')
	return New(x, y, int(letter-'a'), orientation), nil
}

// Canonicalize rewrites m so its orientation names the catalog's
// canonical variant for m's shape, translating the origin by the
// offset that variant's Rotations table records for m's raw
// orientation. It is a no-op for moves whose orientation is already
// canonical.
func Canonicalize(m Move, cat *piece.Catalog) Move {
	if !m.IsValid() || m.IsPass() {
		return m
	}
	blk := cat.Blocks[m.BlockID()]
	rot := blk.Rotations[m.Orientation()]
	v := cat.Variant(rot.Canonical)
	x := m.X() + int(rot.OffsetX)
	y := m.Y() + int(rot.OffsetY)
	return New(x, y, v.BlockID, v.Orientation)
}
