package system

import (
	"maze-shooter/internal/grid"
	"maze-shooter/internal/maze"
	"maze-shooter/internal/physics"
)

// WallQuery returns the static solids of m: every Blocked cell plus every
// cell outside the maze, so the border is closed.
func WallQuery(m *maze.Maze, layout grid.Layout) physics.SolidQuery {
	return func(area physics.AABB) []physics.AABB {
		lo, hi := layout.CellsCovering(area)
		var solids []physics.AABB
		for y := lo.Y; y <= hi.Y; y++ {
			for x := lo.X; x <= hi.X; x++ {
				c := grid.C(x, y)
				if m.IsWalkable(c) {
					continue
				}
				solids = append(solids, layout.CellBox(c))
			}
		}
		return solids
	}
}

// HitsWall reports whether box overlaps a Blocked cell or leaves the maze.
func HitsWall(m *maze.Maze, layout grid.Layout, box physics.AABB) bool {
	for _, s := range WallQuery(m, layout)(box) {
		if box.Overlaps(s) {
			return true
		}
	}
	return false
}
