package piece

import "sync"

var (
	standardOnce sync.Once
	standardCat  *Catalog

	miniOnce sync.Once
	miniCat  *Catalog
)

// Standard returns the 21-block catalog used by the full 14x14 board.
// It is built once and memoized.
func Standard() *Catalog {
	standardOnce.Do(func() {
		standardCat = buildCatalog(blockDefs)
	})
	return standardCat
}

// Mini returns the 9-block catalog used by the 8x8 board: every
// standard block of size 4 or smaller.
func Mini() *Catalog {
	miniOnce.Do(func() {
		miniCat = buildCatalog(blockDefs[:miniBlockCount])
	})
	return miniCat
}
