package game

import (
	"errors"
	"fmt"

	"maze-shooter/internal/generate"
	"maze-shooter/internal/grid"
	"maze-shooter/internal/maze"

	"github.com/gdamore/tcell/v2"
)

const editHelp = "arrows/hjkl move  # wall  p player  e enemy  x free  c clear  g generate  s save  o load  Enter play  q quit"

func (g *Game) editAction(a Action) {
	switch a {
	case ActionQuit:
		g.quit = true
	case ActionCursorUp:
		g.moveCursor(0, -1)
	case ActionCursorDown:
		g.moveCursor(0, 1)
	case ActionCursorLeft:
		g.moveCursor(-1, 0)
	case ActionCursorRight:
		g.moveCursor(1, 0)
	case ActionPlaceWall:
		g.place(g.cursor, maze.Blocked)
	case ActionPlacePlayer:
		g.place(g.cursor, maze.PlayerSpawn)
	case ActionPlaceEnemy:
		g.place(g.cursor, maze.EnemySpawn)
	case ActionFree:
		g.place(g.cursor, maze.Free)
	case ActionClear:
		g.maze.Clear()
		g.addMessage("Maze cleared.")
	case ActionGenerate:
		g.generate()
	case ActionSave:
		g.save()
	case ActionLoad:
		g.load()
	case ActionPlay:
		if g.save() {
			g.startPlay()
		}
	}
}

// editMouse paints with the mouse: left places a wall (Shift: player spawn,
// Ctrl: enemy spawn) and right frees. Dragging repeats the action. The cursor
// follows the pointer even with no button held, previewing the target cell.
func (g *Game) editMouse(cell grid.Coord, buttons tcell.ButtonMask, mods tcell.ModMask) {
	if !g.maze.InBounds(cell) {
		return
	}
	g.cursor = cell
	switch {
	case buttons&tcell.Button1 != 0:
		sym := maze.Blocked
		switch {
		case mods&tcell.ModShift != 0:
			sym = maze.PlayerSpawn
		case mods&tcell.ModCtrl != 0:
			sym = maze.EnemySpawn
		}
		g.place(cell, sym)
	case buttons&tcell.Button2 != 0:
		g.place(cell, maze.Free)
	}
}

func (g *Game) moveCursor(dx, dy int) {
	next := g.cursor.Add(dx, dy)
	if g.maze.InBounds(next) {
		g.cursor = next
	}
}

func (g *Game) place(c grid.Coord, sym maze.Symbol) {
	if err := g.maze.Place(c, sym); err != nil {
		g.addMessage(err.Error())
	}
}

func (g *Game) generate() {
	cfg := generate.DefaultConfig(g.maze.Width(), g.maze.Height(), g.cfg.GenerateEnemies, g.rng)
	res, err := generate.Generate(cfg)
	if err != nil {
		g.addMessage(fmt.Sprintf("Generate failed: %v", err))
		return
	}
	g.maze = res.Maze
	g.clampCursor()
	g.addMessage(fmt.Sprintf("Generated %d rooms.", len(res.Rooms)))
	g.log.Debug().Int("rooms", len(res.Rooms)).Int("enemies", g.maze.Count(maze.EnemySpawn)).Msg("maze generated")
}

// save writes the maze to the save path and reports success.
func (g *Game) save() bool {
	if err := g.maze.Save(g.mazePath); err != nil {
		g.addMessage(fmt.Sprintf("Save failed: %v", err))
		g.log.Error().Err(err).Str("path", g.mazePath).Msg("save maze")
		return false
	}
	g.addMessage(fmt.Sprintf("Saved %s.", g.mazePath))
	g.log.Info().Str("path", g.mazePath).Msg("maze saved")
	return true
}

func (g *Game) load() {
	m, err := maze.Load(g.mazePath)
	if err != nil {
		msg := fmt.Sprintf("Load failed: %v", err)
		if errors.Is(err, maze.ErrUnknownSymbol) || errors.Is(err, maze.ErrMultiplePlayerSpawns) {
			msg = fmt.Sprintf("Bad maze file: %v", err)
		}
		g.addMessage(msg)
		g.log.Warn().Err(err).Str("path", g.mazePath).Msg("load maze")
		return
	}
	g.maze = m
	g.clampCursor()
	g.addMessage(fmt.Sprintf("Loaded %s.", g.mazePath))
}

func (g *Game) clampCursor() {
	g.cursor.X = min(max(g.cursor.X, 0), g.maze.Width()-1)
	g.cursor.Y = min(max(g.cursor.Y, 0), g.maze.Height()-1)
}
