package render

import (
	"sort"

	"maze-shooter/internal/component"
	"maze-shooter/internal/ecs"
	"maze-shooter/internal/grid"
	"maze-shooter/internal/maze"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// HUDRows is the number of screen rows reserved below the maze.
const HUDRows = 5

// Renderer draws the maze, entities and HUD onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
	theme  Theme
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen, theme Theme) *Renderer {
	r := &Renderer{screen: screen, camera: &Camera{}, theme: theme}
	r.Resize()
	return r
}

// Resize refits the viewport to the current screen size.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.camera.ViewWidth = w
	r.camera.ViewHeight = max(h-HUDRows, 1)
}

// Frame positions the camera for a width×height maze around focus.
func (r *Renderer) Frame(width, height int, focus grid.Coord) {
	r.camera.Fit(width, height, focus)
}

// ScreenToCell converts a screen position (e.g. a mouse click) to a cell.
func (r *Renderer) ScreenToCell(sx, sy int) grid.Coord {
	return r.camera.ScreenToCell(sx, sy)
}

// CellToScreen converts a cell to its screen position.
func (r *Renderer) CellToScreen(c grid.Coord) (sx, sy int, visible bool) {
	return r.camera.CellToScreen(c)
}

// Clear blanks the screen ahead of a new frame.
func (r *Renderer) Clear() { r.screen.Clear() }

// DrawMaze renders every visible maze cell. Spawn markers are drawn only
// when showSpawns is set; otherwise spawn cells look like floor.
func (r *Renderer) DrawMaze(m *maze.Maze, showSpawns bool) {
	bg := tcell.StyleDefault.Background(r.theme.Background)
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			c := grid.C(x, y)
			sx, sy, onScreen := r.camera.CellToScreen(c)
			if !onScreen {
				continue
			}
			glyph, style := r.theme.Floor, bg.Foreground(r.theme.FloorColor)
			switch m.At(c) {
			case maze.Blocked:
				glyph, style = r.theme.Wall, bg.Foreground(r.theme.WallColor)
			case maze.PlayerSpawn:
				if showSpawns {
					glyph, style = r.theme.PlayerSpawn, bg.Foreground(tcell.ColorYellow)
				}
			case maze.EnemySpawn:
				if showSpawns {
					glyph, style = r.theme.EnemySpawn, bg.Foreground(tcell.ColorRed)
				}
			}
			r.putGlyph(sx, sy, glyph, style)
		}
	}
}

// renderableEntity holds sorting info for entity rendering.
type renderableEntity struct {
	id   ecs.EntityID
	cell grid.Coord
	rend component.Renderable
}

// DrawEntities renders all entities with Renderable + Position, ordered by
// RenderOrder so the highest order wins a shared cell.
func (r *Renderer) DrawEntities(w *ecs.World, layout grid.Layout) {
	ids := w.Query(component.CRenderable, component.CPosition)
	entities := make([]renderableEntity, 0, len(ids))
	for _, id := range ids {
		pos := w.Get(id, component.CPosition).(component.Position)
		rend := w.Get(id, component.CRenderable).(component.Renderable)
		entities = append(entities, renderableEntity{id: id, cell: layout.WorldToCell(pos.Vec), rend: rend})
	}

	sort.SliceStable(entities, func(i, j int) bool {
		return entities[i].rend.RenderOrder < entities[j].rend.RenderOrder
	})

	for _, e := range entities {
		sx, sy, onScreen := r.camera.CellToScreen(e.cell)
		if !onScreen {
			continue
		}
		bg := e.rend.BGColor
		if bg == tcell.ColorDefault {
			bg = r.theme.Background
		}
		style := tcell.StyleDefault.Foreground(e.rend.FGColor).Background(bg)
		r.putGlyph(sx, sy, e.rend.Glyph, style)
	}
}

// DrawCursor highlights the editor cursor cell, keeping whatever glyph is
// already there.
func (r *Renderer) DrawCursor(c grid.Coord) {
	sx, sy, onScreen := r.camera.CellToScreen(c)
	if !onScreen {
		return
	}
	for dx := 0; dx < CellColumns; dx++ {
		mainc, combc, style, _ := r.screen.GetContent(sx+dx, sy)
		r.screen.SetContent(sx+dx, sy, mainc, combc, style.Background(r.theme.CursorBG))
	}
}

// putGlyph draws a glyph filling one cell (CellColumns wide) at (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	if runewidth.RuneWidth(runes[0]) >= CellColumns {
		r.screen.SetContent(x, y, runes[0], runes[1:], style)
		return
	}
	// Narrow glyphs take one rune per column and are padded with spaces.
	col := 0
	for _, ch := range runes {
		if col >= CellColumns {
			break
		}
		r.screen.SetContent(x+col, y, ch, nil, style)
		col += max(runewidth.RuneWidth(ch), 1)
	}
	for ; col < CellColumns; col++ {
		r.screen.SetContent(x+col, y, ' ', nil, style)
	}
}
