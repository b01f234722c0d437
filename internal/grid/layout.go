package grid

import (
	"math"

	"maze-shooter/internal/physics"
)

// Layout maps grid cells onto continuous world space. Cell (0,0) has its
// top-left corner at Origin and every cell is CellSize wide and tall.
type Layout struct {
	CellSize float64
	Origin   physics.Vec
}

// NewLayout returns a layout with the given cell size and origin at (0,0).
func NewLayout(cellSize float64) Layout {
	return Layout{CellSize: cellSize}
}

// Centered returns a layout whose origin puts the center of a width×height
// grid at world (0,0).
func Centered(cellSize float64, width, height int) Layout {
	return Layout{
		CellSize: cellSize,
		Origin:   physics.V(-float64(width)*cellSize/2, -float64(height)*cellSize/2),
	}
}

// CellOrigin returns the world position of the top-left corner of c.
func (l Layout) CellOrigin(c Coord) physics.Vec {
	return physics.V(
		l.Origin.X+float64(c.X)*l.CellSize,
		l.Origin.Y+float64(c.Y)*l.CellSize,
	)
}

// CellToWorld returns the world position of the center of c.
func (l Layout) CellToWorld(c Coord) physics.Vec {
	half := l.CellSize / 2
	return l.CellOrigin(c).Add(physics.V(half, half))
}

// WorldToCell returns the cell containing world position p.
// Positions left of or above the origin map to negative coordinates.
func (l Layout) WorldToCell(p physics.Vec) Coord {
	return Coord{
		X: int(math.Floor((p.X - l.Origin.X) / l.CellSize)),
		Y: int(math.Floor((p.Y - l.Origin.Y) / l.CellSize)),
	}
}

// Snap returns the center of the cell containing p.
func (l Layout) Snap(p physics.Vec) physics.Vec {
	return l.CellToWorld(l.WorldToCell(p))
}

// CellBox returns the bounding box of cell c.
func (l Layout) CellBox(c Coord) physics.AABB {
	return physics.Box(l.CellToWorld(c), l.CellSize, l.CellSize)
}

// CellsCovering returns the inclusive cell range overlapped by box.
func (l Layout) CellsCovering(box physics.AABB) (lo, hi Coord) {
	return l.WorldToCell(box.Min()), l.WorldToCell(box.Max())
}
