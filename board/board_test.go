package board

import (
	"math/rand"
	"testing"

	"github.com/irori/blokusduo/move"
)

func TestOpeningMovesCoverStartSquare(t *testing.T) {
	for _, spec := range []*Spec{Standard(), Mini()} {
		b := New(spec)
		for _, m := range b.ValidMoves() {
			if m.IsPass() {
				t.Fatalf("%s: pass offered as an opening move", spec.Name)
			}
			if !b.IsValidMove(m) {
				t.Fatalf("%s: VisitMoves produced an invalid move %s", spec.Name, m.Code())
			}
			covers := false
			blk := spec.Catalog.Blocks[m.BlockID()]
			rot := blk.Rotations[m.Orientation()]
			v := spec.Catalog.Variant(rot.Canonical)
			px := m.X() + int(rot.OffsetX)
			py := m.Y() + int(rot.OffsetY)
			for _, c := range v.Coords {
				if px+int(c.X) == spec.Start1X && py+int(c.Y) == spec.Start1Y {
					covers = true
				}
			}
			if !covers {
				t.Fatalf("%s: opening move %s does not cover the start square", spec.Name, m.Code())
			}
		}
	}
}

func TestAllPossibleMovesCount(t *testing.T) {
	if got := len(AllPossibleMoves(Mini())); got != 1270 {
		t.Errorf("mini AllPossibleMoves() = %d, want 1270", got)
	}
	if got := len(AllPossibleMoves(Standard())); got != 13730 {
		t.Errorf("standard AllPossibleMoves() = %d, want 13730", got)
	}
}

func TestRandomPlayoutTerminatesAndKeyStaysConsistent(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, spec := range []*Spec{Mini(), Standard()} {
		b := New(spec)
		plies := 0
		for !b.IsGameOver() {
			plies++
			if plies > 1000 {
				t.Fatalf("%s: playout did not terminate", spec.Name)
			}
			moves := b.ValidMoves()
			if len(moves) == 0 {
				t.Fatalf("%s: no moves offered and game not over", spec.Name)
			}
			if len(moves) > 1 {
				for _, m := range moves {
					if m.IsPass() {
						t.Fatalf("%s: pass offered alongside other legal moves", spec.Name)
					}
				}
			}
			chosen := moves[rng.Intn(len(moves))]
			if !b.IsValidMove(chosen) {
				t.Fatalf("%s: generated move %s rejected by IsValidMove", spec.Name, chosen.Code())
			}
			b.PlayMove(chosen)
			verifyKey(t, &b)
		}
	}
}

func verifyKey(t *testing.T, b *Board) {
	t.Helper()
	var want Key
	for y := 0; y < b.spec.Height; y++ {
		for x := 0; x < b.spec.Width; x++ {
			c := b.At(x, y)
			if c&VioletTile != 0 {
				want.Set(0, x, y)
			}
			if c&OrangeTile != 0 {
				want.Set(1, x, y)
			}
		}
	}
	if b.DidPass(0) {
		want.SetPass(0)
	}
	if b.DidPass(1) {
		want.SetPass(1)
	}
	if b.Player() == 1 {
		want.FlipPlayer()
	}
	if want != b.Key() {
		t.Fatalf("key mismatch: computed %+v, board has %+v", want, b.Key())
	}
}

func TestChildLeavesReceiverUnmodified(t *testing.T) {
	spec := Mini()
	b := New(spec)
	m := b.ValidMoves()[0]
	c := b.Child(m)
	if b.Turn() != 0 {
		t.Fatalf("Child mutated the receiver: turn = %d, want 0", b.Turn())
	}
	if c.Turn() != 1 {
		t.Fatalf("Child() turn = %d, want 1", c.Turn())
	}
	if b.IsValidMove(m) == false {
		t.Fatalf("receiver's move %s no longer valid on its own unmodified board", m.Code())
	}
}

func TestScoreTracksPlacedPieces(t *testing.T) {
	spec := Mini()
	b := New(spec)
	if b.Score(0) != 0 || b.Score(1) != 0 {
		t.Fatalf("fresh board has nonzero score")
	}
	m := b.ValidMoves()[0]
	size := spec.Catalog.Blocks[m.BlockID()].Size
	b.PlayMove(m)
	if got := b.Score(0); got != size {
		t.Fatalf("Score(0) = %d, want %d", got, size)
	}
}

func TestEvalInfluenceFavorsPlayerWithMoreExposedCorners(t *testing.T) {
	spec := Standard()
	b := New(spec)
	moves := b.ValidMoves()
	if len(moves) == 0 {
		t.Fatal("no opening moves available on an empty standard board")
	}
	// Only violet has placed a piece, so violet alone owns freshly
	// exposed corner cells beyond its single starting square.
	after := b.Child(moves[0])
	if got := after.EvalInfluence(); got <= 0 {
		t.Fatalf("EvalInfluence() = %d, want > 0 (violet-favoring) once only violet has placed a piece", got)
	}
}

func TestParseAndCodeRoundTrip(t *testing.T) {
	spec := Mini()
	b := New(spec)
	for _, m := range b.ValidMoves() {
		code := m.Code()
		parsed, err := move.ParseCode(code)
		if err != nil {
			t.Fatalf("ParseCode(%q): %v", code, err)
		}
		if parsed != m {
			t.Fatalf("round trip mismatch: %s -> %q -> %s", m.Code(), code, parsed.Code())
		}
	}
}
