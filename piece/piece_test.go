package piece

import "testing"

func TestStandardCatalogCounts(t *testing.T) {
	cat := Standard()
	if got := cat.NumBlocks(); got != 21 {
		t.Fatalf("NumBlocks() = %d, want 21", got)
	}
	if got := len(cat.PieceSet); got != 91 {
		t.Fatalf("len(PieceSet) = %d, want 91", got)
	}
}

func TestMiniCatalogCounts(t *testing.T) {
	cat := Mini()
	if got := cat.NumBlocks(); got != 9 {
		t.Fatalf("NumBlocks() = %d, want 9", got)
	}
	if got := len(cat.PieceSet); got != 28 {
		t.Fatalf("len(PieceSet) = %d, want 28", got)
	}
}

func TestMonominoHasOneOrientation(t *testing.T) {
	cat := Mini()
	blk := cat.Blocks[0]
	if len(blk.VariantIDs) != 1 {
		t.Fatalf("monomino has %d distinct orientations, want 1", len(blk.VariantIDs))
	}
	for _, rot := range blk.Rotations {
		if rot.Canonical != blk.VariantIDs[0] {
			t.Fatalf("monomino orientation did not fold to its single canonical variant")
		}
	}
}

func TestDominoHasTwoOrientations(t *testing.T) {
	cat := Mini()
	blk := cat.Blocks[1]
	if len(blk.VariantIDs) != 2 {
		t.Fatalf("domino has %d distinct orientations, want 2", len(blk.VariantIDs))
	}
}

func TestEveryVariantHasFiveOrFewerCells(t *testing.T) {
	cat := Standard()
	for _, v := range cat.PieceSet {
		if v.Size < 1 || v.Size > 5 {
			t.Fatalf("variant %d has size %d", v.ID, v.Size)
		}
		if len(v.Coords) != v.Size {
			t.Fatalf("variant %d: len(Coords)=%d != Size=%d", v.ID, len(v.Coords), v.Size)
		}
	}
}

func TestRotationsTableCoversAllEightOrientations(t *testing.T) {
	cat := Standard()
	for _, blk := range cat.Blocks {
		for o := 0; o < NumOrientations; o++ {
			if cat.Variant(blk.Rotations[o].Canonical) == nil {
				t.Fatalf("block %c orientation %d: no canonical variant", blk.Letter, o)
			}
		}
	}
}
