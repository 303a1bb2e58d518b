package board

import "github.com/irori/blokusduo/move"

// MoveVisitor receives the moves VisitMoves enumerates for the current
// position.
type MoveVisitor interface {
	// Filter is consulted once per piece variant before its placements
	// are generated. Returning false skips every move for that piece,
	// which callers use to prune small pieces from consideration deep
	// in a search. The default behavior (visit everything) is available
	// via EveryMove.
	Filter(letter byte, orientation int, b *Board) bool

	// VisitMove is called once per legal placement. Returning false
	// stops enumeration early.
	VisitMove(m move.Move) bool
}

// EveryMove is a MoveVisitor base that accepts every piece; embed it to
// get a default Filter implementation.
type EveryMove struct{}

// Filter always returns true.
func (EveryMove) Filter(letter byte, orientation int, b *Board) bool { return true }

type diagPoint struct {
	x, y, orientation int
}

// VisitMoves enumerates every legal move for the side to move, calling
// visitor.VisitMove for each. It returns false if the visitor stopped
// enumeration early (by returning false from VisitMove).
//
// The first two plies are special-cased: each player's only legal
// placements are ones covering their own starting square, enumerated by
// anchoring every piece orientation on that square directly rather than
// scanning for exposed corners (there are none yet). On the mini board,
// the second move may need to avoid completely blocking the opponent's
// first move, so that branch also runs a placeability check that the
// general case does not need.
func (b *Board) VisitMoves(visitor MoveVisitor) bool {
	cat := b.spec.Catalog

	if b.turn < 2 {
		startX, startY := b.spec.Start1X, b.spec.Start1Y
		if b.player == 1 {
			startX, startY = b.spec.Start2X, b.spec.Start2Y
		}
		for _, p := range cat.PieceSet {
			if !visitor.Filter(p.Letter, p.Orientation, b) {
				continue
			}
			for _, c := range p.Coords {
				x := startX - int(c.X)
				y := startY - int(c.Y)
				if x+int(p.MinX) < 0 || y+int(p.MinY) < 0 ||
					x+int(p.MaxX) >= b.spec.Width || y+int(p.MaxY) >= b.spec.Height {
					continue
				}
				if b.spec.Height <= 8 && b.turn == 1 && !b.placeable(x, y, p) {
					continue
				}
				if !visitor.VisitMove(move.FromVariant(x, y, p)) {
					return false
				}
			}
		}
		return true
	}

	var diagPoints []diagPoint
	{
		cornerMask := VioletMask | OrangeTile
		cornerBit := VioletCorner
		edgeBit := VioletEdge
		if b.player == 1 {
			cornerMask = OrangeMask | VioletTile
			cornerBit = OrangeCorner
			edgeBit = OrangeEdge
		}
		for ey := 0; ey < b.spec.Height; ey++ {
			for ex := 0; ex < b.spec.Width; ex++ {
				if b.cells[ey][ex]&cornerMask == cornerBit {
					north := ey > 0 && b.cells[ey-1][ex]&edgeBit != 0
					west := ex > 0 && b.cells[ey][ex-1]&edgeBit != 0
					var orientation int
					switch {
					case north && west:
						orientation = 0
					case north:
						orientation = 1
					case west:
						orientation = 2
					default:
						orientation = 3
					}
					diagPoints = append(diagPoints, diagPoint{ex, ey, orientation})
				}
			}
		}
	}

	nmove := 0
	for _, p := range cat.PieceSet {
		if !b.IsPieceAvailable(b.player, p.BlockID) {
			continue
		}
		if !visitor.Filter(p.Letter, p.Orientation, b) {
			continue
		}
		checked := make([]uint32, b.spec.Height)
		for _, dp := range diagPoints {
			for _, corner := range p.Corners[dp.orientation] {
				x := dp.x - int(corner.X)
				y := dp.y - int(corner.Y)
				if y+int(p.MinY) < 0 || y+int(p.MaxY) >= b.spec.Height ||
					x+int(p.MinX) < 0 || x+int(p.MaxX) >= b.spec.Width {
					continue
				}
				if checked[y]&(1<<uint(x)) != 0 {
					continue
				}
				checked[y] |= 1 << uint(x)
				if b.placeable(x, y, p) {
					if !visitor.VisitMove(move.FromVariant(x, y, p)) {
						return false
					}
					nmove++
				}
			}
		}
	}
	if nmove == 0 {
		return visitor.VisitMove(move.Pass)
	}
	return true
}

// moveCollector is the concrete MoveVisitor used by ValidMoves.
type moveCollector struct {
	EveryMove
	moves []move.Move
}

func (c *moveCollector) VisitMove(m move.Move) bool {
	c.moves = append(c.moves, m)
	return true
}

// ValidMoves is a convenience wrapper around VisitMoves that collects
// every legal move into a slice.
func (b *Board) ValidMoves() []move.Move {
	var c moveCollector
	b.VisitMoves(&c)
	return c.moves
}

// AllPossibleMoves lists every move that could ever be generated for
// spec, ignoring the current game state entirely: each canonical piece
// variant at every anchor position that keeps it on the board, plus
// Pass. It exists to support exhaustive testing of move encoding and
// piece geometry, not for play.
func AllPossibleMoves(spec *Spec) []move.Move {
	var moves []move.Move
	for _, p := range spec.Catalog.PieceSet {
		for y := 0; y < spec.Height; y++ {
			for x := 0; x < spec.Width; x++ {
				if x+int(p.MinX) >= 0 && y+int(p.MinY) >= 0 &&
					x+int(p.MaxX) < spec.Width && y+int(p.MaxY) < spec.Height {
					moves = append(moves, move.FromVariant(x, y, p))
				}
			}
		}
	}
	moves = append(moves, move.Pass)
	return moves
}
