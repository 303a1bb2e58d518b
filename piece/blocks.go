package piece

// blockDefs lists the 21 polyomino shapes of Blokus Duo, one monomino
// through the twelve pentominoes, each given as a set of cell offsets
// from an arbitrary origin cell. Orientation variants and corner tables
// are derived from these at catalog build time; nothing below encodes
// rotation or reflection directly.
var blockDefs = []blockDef{
	{'a', []Point{pt(0, 0)}}, // I1

	{'b', []Point{pt(0, 0), pt(0, 1)}}, // I2

	{'c', []Point{pt(0, 0), pt(0, 1), pt(0, -1)}}, // I3
	{'d', []Point{pt(0, 0), pt(1, 0), pt(0, -1)}}, // L3

	{'e', []Point{pt(0, 0), pt(0, 1), pt(0, 2), pt(0, -1)}},  // I4
	{'f', []Point{pt(0, 0), pt(0, -1), pt(0, 1), pt(-1, 1)}}, // L4
	{'g', []Point{pt(0, 0), pt(1, 0), pt(0, 1), pt(0, -1)}},  // T4
	{'h', []Point{pt(0, 0), pt(1, 0), pt(0, 1), pt(1, 1)}},   // O4
	{'i', []Point{pt(-1, 0), pt(0, 0), pt(0, 1), pt(1, 1)}},  // Z4

	{'j', []Point{pt(0, 0), pt(0, 1), pt(0, 2), pt(0, -1), pt(0, -2)}},    // I5
	{'k', []Point{pt(0, 0), pt(0, 1), pt(0, -2), pt(0, -1), pt(-1, 1)}},   // L5
	{'l', []Point{pt(0, -2), pt(0, -1), pt(0, 0), pt(-1, 0), pt(-1, 1)}},  // N5
	{'m', []Point{pt(0, -1), pt(-1, 0), pt(0, 0), pt(-1, 1), pt(0, 1)}},   // P5
	{'n', []Point{pt(0, 0), pt(0, 1), pt(-1, 1), pt(0, -1), pt(-1, -1)}},  // C5
	{'o', []Point{pt(0, -1), pt(0, 0), pt(1, 0), pt(0, 1), pt(0, 2)}},     // Y5
	{'p', []Point{pt(0, 0), pt(0, -1), pt(0, 1), pt(-1, 1), pt(1, 1)}},    // T5
	{'q', []Point{pt(0, 0), pt(1, 0), pt(2, 0), pt(0, -1), pt(0, -2)}},    // V5
	{'r', []Point{pt(0, 0), pt(1, 0), pt(1, 1), pt(0, -1), pt(-1, -1)}},   // W5
	{'s', []Point{pt(0, 0), pt(1, 0), pt(1, 1), pt(-1, 0), pt(-1, -1)}},   // Z5
	{'t', []Point{pt(-1, -1), pt(-1, 0), pt(0, 0), pt(1, 0), pt(0, 1)}},   // F5
	{'u', []Point{pt(0, 0), pt(1, 0), pt(0, 1), pt(-1, 0), pt(0, -1)}},    // X5
}

// miniBlockCount is how many of blockDefs (taken in order) belong to
// the mini variant: every block of size <= 4, i.e. the monomino through
// the tetrominoes.
const miniBlockCount = 9
