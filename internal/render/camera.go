package render

import "maze-shooter/internal/grid"

// CellColumns is the number of terminal columns one maze cell occupies.
// Emoji are two columns wide.
const CellColumns = 2

// Camera translates between maze cells and screen coordinates.
type Camera struct {
	OffsetX    int // leftmost visible cell column
	OffsetY    int // topmost visible cell row
	ViewWidth  int // in terminal columns
	ViewHeight int // in terminal rows
}

// NewCamera creates a camera centered on c.
func NewCamera(c grid.Coord, viewW, viewH int) *Camera {
	cam := &Camera{ViewWidth: viewW, ViewHeight: viewH}
	cam.Center(c)
	return cam
}

// Center repositions the camera so that cell c is in the middle of the view.
func (c *Camera) Center(cell grid.Coord) {
	c.OffsetX = cell.X - (c.ViewWidth/CellColumns)/2
	c.OffsetY = cell.Y - c.ViewHeight/2
}

// Fit centers the camera on a width×height maze when it fits the view, and
// on focus otherwise.
func (c *Camera) Fit(width, height int, focus grid.Coord) {
	cols := c.ViewWidth / CellColumns
	switch {
	case width <= cols && height <= c.ViewHeight:
		c.OffsetX = -(cols - width) / 2
		c.OffsetY = -(c.ViewHeight - height) / 2
	default:
		c.Center(focus)
	}
}

// CellToScreen converts cell to the screen position of its left column.
// visible is false when the result falls outside the viewport.
func (c *Camera) CellToScreen(cell grid.Coord) (sx, sy int, visible bool) {
	sx = (cell.X - c.OffsetX) * CellColumns
	sy = cell.Y - c.OffsetY
	visible = sx >= 0 && sx+CellColumns <= c.ViewWidth && sy >= 0 && sy < c.ViewHeight
	return
}

// ScreenToCell converts screen (sx, sy) to the cell under it.
func (c *Camera) ScreenToCell(sx, sy int) grid.Coord {
	return grid.C(floorDiv(sx, CellColumns)+c.OffsetX, sy+c.OffsetY)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
