package render

import (
	"testing"

	"maze-shooter/internal/config"
	"maze-shooter/internal/ecs"
	"maze-shooter/internal/factory"
	"maze-shooter/internal/grid"
	"maze-shooter/internal/maze"
	"maze-shooter/internal/physics"

	"github.com/gdamore/tcell/v2"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("")
	if err := s.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func TestCameraRoundTrip(t *testing.T) {
	cam := NewCamera(grid.C(10, 10), 40, 20)
	for _, c := range []grid.Coord{grid.C(10, 10), grid.C(1, 0), grid.C(19, 19)} {
		sx, sy, visible := cam.CellToScreen(c)
		if !visible {
			t.Fatalf("%v should be visible, got screen (%d,%d)", c, sx, sy)
		}
		for dx := 0; dx < CellColumns; dx++ {
			if got := cam.ScreenToCell(sx+dx, sy); got != c {
				t.Errorf("ScreenToCell(%d,%d) = %v; want %v", sx+dx, sy, got, c)
			}
		}
	}
	if _, _, visible := cam.CellToScreen(grid.C(30, 10)); visible {
		t.Error("cell right of the view should not be visible")
	}
}

func TestCameraFitCentersSmallMaze(t *testing.T) {
	cam := &Camera{ViewWidth: 40, ViewHeight: 20}
	cam.Fit(10, 10, grid.C(0, 0))
	sx, sy, visible := cam.CellToScreen(grid.C(0, 0))
	if !visible || sx != 10 || sy != 5 {
		t.Errorf("top-left cell at (%d,%d) visible=%v; want (10,5)", sx, sy, visible)
	}
}

func TestDrawMazeAndEntities(t *testing.T) {
	s := newSimScreen(t, 20, 10)
	r := NewRenderer(s, ThemeByName("ascii"))
	m, err := maze.Parse("#.P\n..E\n")
	if err != nil {
		t.Fatal(err)
	}
	r.Frame(m.Width(), m.Height(), grid.C(0, 0))
	r.DrawMaze(m, true)

	sx, sy, _ := r.CellToScreen(grid.C(0, 0))
	if ch, _, _, _ := s.GetContent(sx, sy); ch != '#' {
		t.Errorf("wall glyph = %q; want '#'", ch)
	}
	px, py, _ := r.CellToScreen(grid.C(2, 0))
	if ch, _, _, _ := s.GetContent(px, py); ch != 'P' {
		t.Errorf("player spawn glyph = %q; want 'P'", ch)
	}
	if ch, _, _, _ := s.GetContent(px+1, py); ch != ' ' {
		t.Errorf("narrow glyph should be padded, got %q", ch)
	}

	r.DrawMaze(m, false)
	if ch, _, _, _ := s.GetContent(px, py); ch != '.' {
		t.Errorf("hidden spawn glyph = %q; want floor", ch)
	}

	w := ecs.NewWorld()
	layout := grid.NewLayout(1)
	factory.NewProjectile(w, ecs.NilEntity, layout.CellToWorld(grid.C(1, 1)), physics.V(1, 0), config.Default())
	r.DrawEntities(w, layout)
	ex, ey, _ := r.CellToScreen(grid.C(1, 1))
	if ch, _, _, _ := s.GetContent(ex, ey); ch != []rune(factory.GlyphProjectile)[0] {
		t.Errorf("projectile glyph = %q; want %q", ch, factory.GlyphProjectile)
	}
}

func TestThemeByNameFallsBack(t *testing.T) {
	if got := ThemeByName("nope"); got.Wall != Themes["emoji"].Wall {
		t.Errorf("unknown theme should fall back to emoji, got %q", got.Wall)
	}
}
