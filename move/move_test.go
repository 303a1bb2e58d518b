package move

import (
	"testing"

	"github.com/irori/blokusduo/piece"
)

func TestParseCodeBasics(t *testing.T) {
	m, err := ParseCode("56f2")
	if err != nil {
		t.Fatalf("ParseCode: %v", err)
	}
	if m.X() != 4 {
		t.Errorf("X() = %d, want 4", m.X())
	}
	if m.Y() != 5 {
		t.Errorf("Y() = %d, want 5", m.Y())
	}
	if m.Letter() != 'f' {
		t.Errorf("Letter() = %q, want 'f'", m.Letter())
	}
	if m.Orientation() != 2 {
		t.Errorf("Orientation() = %d, want 2", m.Orientation())
	}
}

func TestPassAndInvalid(t *testing.T) {
	if !Pass.IsPass() || !Pass.IsValid() {
		t.Fatalf("Pass must be pass and valid")
	}
	if Invalid.IsValid() {
		t.Fatalf("Invalid must not be valid")
	}
	if Invalid.IsPass() {
		t.Fatalf("Invalid must not be pass")
	}
}

func TestPassCodeRoundTrip(t *testing.T) {
	if got := Pass.Code(); got != "----" {
		t.Fatalf("Pass.Code() = %q, want %q", got, "----")
	}
	parsed, err := ParseCode("----")
	if err != nil {
		t.Fatalf("ParseCode(%q): %v", "----", err)
	}
	if parsed != Pass {
		t.Fatalf("ParseCode(%q) = %s, want Pass", "----", parsed.Code())
	}
}

func TestCodeRoundTrip(t *testing.T) {
	cat := piece.Standard()
	for _, v := range cat.PieceSet {
		for x := 0; x < 14; x++ {
			for y := 0; y < 14; y++ {
				m := New(x, y, v.BlockID, v.Orientation)
				parsed, err := ParseCode(m.Code())
				if err != nil {
					t.Fatalf("ParseCode(%q): %v", m.Code(), err)
				}
				if parsed != m {
					t.Fatalf("round trip: %s -> %s", m.Code(), parsed.Code())
				}
			}
		}
	}
}

func TestCanonicalizeIsIdempotent(t *testing.T) {
	cat := piece.Mini()
	for _, blk := range cat.Blocks {
		for o := 0; o < piece.NumOrientations; o++ {
			m := New(4, 4, blk.ID, o)
			c1 := Canonicalize(m, cat)
			c2 := Canonicalize(c1, cat)
			if c1 != c2 {
				t.Fatalf("canonicalize not idempotent for block %d orientation %d: %s -> %s -> %s",
					blk.ID, o, m.Code(), c1.Code(), c2.Code())
			}
		}
	}
}

func TestCanonicalizePreservesBlock(t *testing.T) {
	cat := piece.Standard()
	for _, blk := range cat.Blocks {
		for o := 0; o < piece.NumOrientations; o++ {
			m := New(6, 6, blk.ID, o)
			c := Canonicalize(m, cat)
			if c.BlockID() != blk.ID {
				t.Fatalf("canonicalize changed block id: %d -> %d", blk.ID, c.BlockID())
			}
		}
	}
}

func TestRotateEightTimesIsIdentityOrientation(t *testing.T) {
	cat := piece.Standard()
	m := New(6, 6, 19, 0) // block 't', asymmetric: orientation must survive a full cycle
	cur := m
	for r := 0; r < 8; r++ {
		cur = Rotate(cur, 1, 14, cat)
	}
	if cur.Orientation() != m.Orientation() || cur.BlockID() != m.BlockID() {
		t.Fatalf("eight applications of symmetry 1 (a mirror) did not return to the start: %s -> %s", m.Code(), cur.Code())
	}
}

func TestRotateByZeroIsIdentity(t *testing.T) {
	cat := piece.Standard()
	m := New(5, 5, 19, 3)
	if r := Rotate(m, 0, 14, cat); r != m {
		t.Fatalf("Rotate(m, 0, ...) = %s, want %s", r.Code(), m.Code())
	}
}
