package board

// Key is a compact, collision-free summary of a board position: which
// cells each player occupies, whether each player has already passed,
// and whose turn it is. Two positions compare equal under Key if and
// only if they are the same position, which makes Key usable directly
// as a map key for transposition tables without a true hash function.
//
// Tiles[p] holds one bit per occupied cell, packed Width bits per row;
// a board can be at most 14 wide, so one uint16 per row (14 rows per
// player) covers every variant without per-variant key types.
type Key struct {
	Tiles [2][maxHeight]uint16
	Flags uint8 // bit0: player0 passed, bit1: player1 passed, bit2: side to move
}

const maxHeight = 14

const (
	flagPass0 uint8 = 1 << 0
	flagPass1 uint8 = 1 << 1
	flagSide  uint8 = 1 << 2
)

// Set marks (x, y) occupied by player.
func (k *Key) Set(player, x, y int) {
	k.Tiles[player][y] |= 1 << uint(x)
}

// SetPass records that player has passed.
func (k *Key) SetPass(player int) {
	if player == 0 {
		k.Flags |= flagPass0
	} else {
		k.Flags |= flagPass1
	}
}

// FlipPlayer toggles the side-to-move bit.
func (k *Key) FlipPlayer() {
	k.Flags ^= flagSide
}
