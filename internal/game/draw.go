package game

import (
	"fmt"

	"maze-shooter/internal/component"
	"maze-shooter/internal/render"

	"github.com/gdamore/tcell/v2"
)

// draw renders the current mode.
func (g *Game) draw() {
	r := g.renderer
	r.Clear()

	focus := g.cursor
	if g.mode != ModeEdit && g.world != nil {
		if c := g.world.Get(g.playerID, component.CPosition); c != nil {
			focus = g.layout.WorldToCell(c.(component.Position).Vec)
		}
	}
	r.Frame(g.maze.Width(), g.maze.Height(), focus)

	status := render.Status{Mode: g.mode.String(), Messages: g.messages}
	switch g.mode {
	case ModeEdit:
		r.DrawMaze(g.maze, true)
		r.DrawCursor(g.cursor)
		status.Cursor = g.cursor.String()
		status.Help = editHelp
	default:
		r.DrawMaze(g.maze, false)
		r.DrawEntities(g.world, g.layout)
		if c := g.world.Get(g.playerID, component.CHealth); c != nil {
			hp := c.(component.Health)
			status.Health, status.MaxHealth = hp.Current, hp.Max
		} else {
			status.MaxHealth = g.cfg.PlayerHealth
		}
		status.Enemies = g.world.Count(component.CTagEnemy)
		status.Kills = g.run.Kills
		status.Help = playHelp
	}

	switch g.mode {
	case ModeWon:
		r.DrawBanner(tcell.ColorGreen, "YOU WIN", fmt.Sprintf("%d kills in %.1fs", g.run.Kills, g.run.Seconds), "[R] replay  [E] edit  [Q] quit")
	case ModeLost:
		r.DrawBanner(tcell.ColorRed, "YOU LOSE", fmt.Sprintf("%d kills in %.1fs", g.run.Kills, g.run.Seconds), "[R] replay  [E] edit  [Q] quit")
	}
	r.DrawHUD(status)
}
