package generate

import (
	"fmt"

	"maze-shooter/internal/grid"
	"maze-shooter/internal/maze"

	"github.com/zyedidia/generic/mapset"
)

// carveCorridor digs a tunnel between two cells in the configured style.
func carveCorridor(m *maze.Maze, a, b grid.Coord, cfg *Config) error {
	switch cfg.CorridorStyle {
	case CorridorZShaped:
		return carveZShaped(m, a, b)
	case CorridorStraight:
		return carveL(m, a, b, true)
	}
	return carveL(m, a, b, cfg.Rand.Intn(2) == 0)
}

// carveL digs an L-shaped tunnel, horizontal leg first when hFirst is set.
func carveL(m *maze.Maze, a, b grid.Coord, hFirst bool) error {
	if hFirst {
		if err := carveH(m, a.X, b.X, a.Y); err != nil {
			return err
		}
		return carveV(m, a.Y, b.Y, b.X)
	}
	if err := carveV(m, a.Y, b.Y, a.X); err != nil {
		return err
	}
	return carveH(m, a.X, b.X, b.Y)
}

func carveH(m *maze.Maze, x1, x2, y int) error {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		if err := m.Free(grid.C(x, y)); err != nil {
			return fmt.Errorf("carve corridor: %w", err)
		}
	}
	return nil
}

func carveV(m *maze.Maze, y1, y2, x int) error {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		if err := m.Free(grid.C(x, y)); err != nil {
			return fmt.Errorf("carve corridor: %w", err)
		}
	}
	return nil
}

func carveZShaped(m *maze.Maze, a, b grid.Coord) error {
	midY := (a.Y + b.Y) / 2
	if err := carveV(m, a.Y, midY, a.X); err != nil {
		return err
	}
	if err := carveH(m, a.X, b.X, midY); err != nil {
		return err
	}
	return carveV(m, midY, b.Y, b.X)
}

// reachable flood-fills the walkable cells connected to start.
func reachable(m *maze.Maze, start grid.Coord) mapset.Set[grid.Coord] {
	seen := mapset.New[grid.Coord]()
	if !m.IsWalkable(start) {
		return seen
	}
	seen.Put(start)
	queue := []grid.Coord{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range cur.Neighbors4() {
			if seen.Has(n) || !m.IsWalkable(n) {
				continue
			}
			seen.Put(n)
			queue = append(queue, n)
		}
	}
	return seen
}

// connectStragglers links any room the BSP pass left isolated to the first
// room, so every room is reachable from the player spawn.
func connectStragglers(m *maze.Maze, rooms []Rect, cfg *Config) error {
	if len(rooms) < 2 {
		return nil
	}
	home := rooms[0].Center()
	seen := reachable(m, home)
	for _, r := range rooms[1:] {
		if seen.Has(r.Center()) {
			continue
		}
		if err := carveCorridor(m, r.Center(), home, cfg); err != nil {
			return err
		}
		seen = reachable(m, home)
	}
	return nil
}
