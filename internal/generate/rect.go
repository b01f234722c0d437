package generate

import "maze-shooter/internal/grid"

// Rect is an inclusive cell rectangle used for rooms.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// Center returns the middle cell, rounded toward the top-left.
func (r Rect) Center() grid.Coord {
	return grid.C((r.X1+r.X2)/2, (r.Y1+r.Y2)/2)
}

// Intersects reports whether r and o share a cell.
func (r Rect) Intersects(o Rect) bool {
	return r.X1 <= o.X2 && r.X2 >= o.X1 && r.Y1 <= o.Y2 && r.Y2 >= o.Y1
}
