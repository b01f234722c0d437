package grid

import "fmt"

// Coord addresses one cell. X grows to the right, Y grows downward.
type Coord struct {
	X, Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord { return Coord{X: x, Y: y} }

func (c Coord) String() string { return fmt.Sprintf("(%d,%d)", c.X, c.Y) }

// Add returns c offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord { return Coord{c.X + dx, c.Y + dy} }

// Neighbors4 returns the orthogonal neighbors: left, right, up, down.
func (c Coord) Neighbors4() [4]Coord {
	return [4]Coord{
		{c.X - 1, c.Y},
		{c.X + 1, c.Y},
		{c.X, c.Y - 1},
		{c.X, c.Y + 1},
	}
}

// Manhattan returns the taxicab distance between a and b.
func Manhattan(a, b Coord) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
