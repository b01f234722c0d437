package generate

import (
	"errors"
	"math/rand"
	"testing"

	"maze-shooter/internal/grid"
	"maze-shooter/internal/maze"
)

func blockedMaze(t *testing.T, w, h int) *maze.Maze {
	t.Helper()
	m, err := maze.New(w, h)
	if err != nil {
		t.Fatal(err)
	}
	if err := fillBlocked(m); err != nil {
		t.Fatal(err)
	}
	return m
}

// freeRow checks that every cell at y between x1 and x2 (inclusive) is walkable.
func freeRow(m *maze.Maze, x1, x2, y int) bool {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		if !m.IsWalkable(grid.C(x, y)) {
			return false
		}
	}
	return true
}

// freeCol checks that every cell at x between y1 and y2 (inclusive) is walkable.
func freeCol(m *maze.Maze, y1, y2, x int) bool {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		if !m.IsWalkable(grid.C(x, y)) {
			return false
		}
	}
	return true
}

func TestCarveH(t *testing.T) {
	m := blockedMaze(t, 20, 20)
	if err := carveH(m, 8, 3, 5); err != nil {
		t.Fatal(err)
	}

	if !freeRow(m, 3, 8, 5) {
		t.Error("carveH(8,3,5) should free cells from x=3 to x=8 at y=5")
	}
	if m.IsWalkable(grid.C(2, 5)) || m.IsWalkable(grid.C(9, 5)) {
		t.Error("cells outside the segment should remain walls")
	}
}

func TestCarveV(t *testing.T) {
	m := blockedMaze(t, 20, 20)
	if err := carveV(m, 2, 7, 4); err != nil {
		t.Fatal(err)
	}

	if !freeCol(m, 2, 7, 4) {
		t.Error("carveV(2,7,4) should free cells from y=2 to y=7 at x=4")
	}
	if m.IsWalkable(grid.C(4, 1)) || m.IsWalkable(grid.C(4, 8)) {
		t.Error("cells outside the segment should remain walls")
	}
}

func TestCarveZShaped(t *testing.T) {
	m := blockedMaze(t, 20, 20)
	a, b := grid.C(2, 2), grid.C(10, 12)
	if err := carveZShaped(m, a, b); err != nil {
		t.Fatal(err)
	}

	midY := (a.Y + b.Y) / 2
	if !freeCol(m, a.Y, midY, a.X) || !freeRow(m, a.X, b.X, midY) || !freeCol(m, midY, b.Y, b.X) {
		t.Error("Z corridor should be fully carved")
	}
}

func TestCarveCorridorConnectsEndpoints(t *testing.T) {
	styles := []CorridorStyle{CorridorLShaped, CorridorZShaped, CorridorStraight}
	for _, style := range styles {
		for seed := int64(0); seed < 5; seed++ {
			m := blockedMaze(t, 20, 20)
			cfg := Config{CorridorStyle: style, Rand: rand.New(rand.NewSource(seed))}
			a, b := grid.C(3, 15), grid.C(16, 2)
			if err := carveCorridor(m, a, b, &cfg); err != nil {
				t.Fatalf("style=%d seed=%d: %v", style, seed, err)
			}
			if !reachable(m, a).Has(b) {
				t.Errorf("style=%d seed=%d: %v not connected to %v", style, seed, a, b)
			}
		}
	}
}

func TestConnectStragglers(t *testing.T) {
	m := blockedMaze(t, 20, 10)
	rooms := []Rect{{1, 1, 3, 3}, {10, 5, 13, 8}}
	for _, r := range rooms {
		for y := r.Y1; y <= r.Y2; y++ {
			if err := carveH(m, r.X1, r.X2, y); err != nil {
				t.Fatal(err)
			}
		}
	}
	if reachable(m, rooms[0].Center()).Has(rooms[1].Center()) {
		t.Fatal("rooms should start disconnected")
	}
	cfg := Config{Rand: rand.New(rand.NewSource(1))}
	if err := connectStragglers(m, rooms, &cfg); err != nil {
		t.Fatal(err)
	}
	if !reachable(m, rooms[0].Center()).Has(rooms[1].Center()) {
		t.Error("connectStragglers should join the isolated room")
	}
}

func TestCarveOutsideMazeFails(t *testing.T) {
	cases := []struct {
		name  string
		carve func(m *maze.Maze) error
	}{
		{"horizontal past right edge", func(m *maze.Maze) error { return carveH(m, 15, 22, 5) }},
		{"vertical past bottom edge", func(m *maze.Maze) error { return carveV(m, 5, 12, 3) }},
		{"room above the maze", func(m *maze.Maze) error { return carveRoom(m, Rect{2, -1, 4, 1}) }},
		{"corridor to outside", func(m *maze.Maze) error {
			cfg := Config{CorridorStyle: CorridorZShaped}
			return carveCorridor(m, grid.C(2, 2), grid.C(25, 8), &cfg)
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := blockedMaze(t, 20, 10)
			if err := tc.carve(m); !errors.Is(err, maze.ErrOutOfBounds) {
				t.Errorf("err = %v; want ErrOutOfBounds", err)
			}
		})
	}
}
