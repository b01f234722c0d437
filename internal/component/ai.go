package component

import (
	"maze-shooter/internal/ecs"
	"maze-shooter/internal/grid"
)

const (
	CChaser ecs.ComponentType = 6
	CSpeed  ecs.ComponentType = 7
)

// Chaser follows the player along an A* path. Path[Next] is the cell the
// enemy is currently heading for.
type Chaser struct {
	Path   []grid.Coord
	Next   int
	Target grid.Coord
	// Repath counts down in seconds; the path is recomputed at zero.
	Repath float64
	// Direct is set while the enemy steers straight at the player.
	Direct bool
}

func (Chaser) Type() ecs.ComponentType { return CChaser }

// Waypoint returns the cell currently being steered to.
func (c Chaser) Waypoint() (grid.Coord, bool) {
	if c.Next < 0 || c.Next >= len(c.Path) {
		return grid.Coord{}, false
	}
	return c.Path[c.Next], true
}

// Speed is the top speed in world units per second.
type Speed struct {
	Value float64
}

func (Speed) Type() ecs.ComponentType { return CSpeed }
