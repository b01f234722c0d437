package game

import (
	"fmt"
	"time"

	"maze-shooter/internal/component"
	"maze-shooter/internal/ecs"
	"maze-shooter/internal/factory"
	"maze-shooter/internal/grid"
	"maze-shooter/internal/physics"
	"maze-shooter/internal/system"
)

const playHelp = "WASD/arrows move  space/f fire  click aim+fire  Esc editor  q quit"

// startPlay spawns the world from the maze and switches to play mode.
// An invalid maze keeps the editor open with a message.
func (g *Game) startPlay() {
	w := ecs.NewWorld()
	player, err := factory.SpawnFromMaze(w, g.maze, g.layout, g.cfg)
	if err != nil {
		g.addMessage(fmt.Sprintf("Cannot play: %v", err))
		return
	}
	g.world = w
	g.playerID = player
	g.keys.reset()
	g.fire = false
	g.aim = nil
	g.mode = ModePlay
	g.run = newRunLog(g.mazePath)
	g.addMessage(fmt.Sprintf("Go! %d enemies.", w.Count(component.CTagEnemy)))
	g.log.Info().Str("run", g.run.ID).Int("enemies", w.Count(component.CTagEnemy)).Msg("play started")
}

func (g *Game) playAction(a Action) {
	if d, ok := moveDirection(a); ok {
		g.keys.press(d)
		return
	}
	switch a {
	case ActionFire:
		g.fire = true
	case ActionEdit:
		g.abandonRun()
		g.mode = ModeEdit
		g.addMessage("Back to the editor.")
	case ActionQuit:
		g.quit = true
	}
}

// aimAt queues a shot from the player toward the center of cell.
func (g *Game) aimAt(cell grid.Coord) {
	pc := g.world.Get(g.playerID, component.CPosition)
	if pc == nil {
		return
	}
	dir := g.layout.CellToWorld(cell).Sub(pc.(component.Position).Vec)
	if dir.IsZero() {
		return
	}
	g.aim = &dir
}

// Update advances the simulation by dt seconds. It is a no-op outside play.
func (g *Game) Update(dt float64) {
	if g.mode != ModePlay {
		return
	}
	w := g.world
	g.run.elapsed += dt

	system.SetPlayerVelocity(w, g.playerID, g.keys.axis())
	g.keys.tick(dt)
	system.TickWeapons(w, dt)
	system.UpdateChasers(w, g.maze, g.layout, g.playerID, dt, g.cfg)
	system.Move(w, g.maze, g.layout, dt)
	g.shoot()

	rep := system.ResolveCollisions(w, g.maze, g.layout)
	g.run.Kills += rep.Kills
	g.run.Hits += rep.PlayerHits
	if rep.Kills > 0 {
		g.addMessage(fmt.Sprintf("Enemy down! %d left.", w.Count(component.CTagEnemy)))
	}
	if rep.PlayerHits > 0 {
		g.addMessage("You were hit!")
	}

	switch system.CheckOutcome(w, g.playerID) {
	case system.Won:
		g.finish(ModeWon)
	case system.Lost:
		g.finish(ModeLost)
	}
}

// shoot fires a queued mouse shot, or a facing shot when fire was pressed.
func (g *Game) shoot() {
	if g.aim == nil && !g.fire {
		return
	}
	dir := g.facing()
	if g.aim != nil {
		dir = *g.aim
	}
	g.aim, g.fire = nil, false
	if _, ok := system.Fire(g.world, g.playerID, dir, g.cfg); ok {
		g.run.Shots++
	}
}

func (g *Game) facing() physics.Vec {
	if c := g.world.Get(g.playerID, component.CWeapon); c != nil {
		return c.(component.Weapon).Facing
	}
	return physics.Vec{}
}

func (g *Game) finish(mode Mode) {
	g.mode = mode
	g.keys.reset()
	outcome := "won"
	if mode == ModeLost {
		outcome = "lost"
	}
	g.run.Outcome = outcome
	g.recordRun()
	g.addMessage(fmt.Sprintf("You %s! r replay, e edit, q quit.", outcome))
}

// abandonRun records a run that ended without a win or loss.
func (g *Game) abandonRun() {
	if g.mode != ModePlay {
		return
	}
	g.run.Outcome = "abandoned"
	g.recordRun()
}

func (g *Game) recordRun() {
	g.run.Seconds = g.run.elapsed
	if err := saveRunLog(g.runLogDir, g.run); err != nil {
		g.log.Warn().Err(err).Msg("save run log")
	}
	g.log.Info().
		Str("run", g.run.ID).
		Str("outcome", g.run.Outcome).
		Int("kills", g.run.Kills).
		Int("shots", g.run.Shots).
		Int("hits", g.run.Hits).
		Dur("duration", time.Duration(g.run.Seconds*float64(time.Second))).
		Msg("play finished")
}

func (g *Game) endAction(a Action) {
	switch a {
	case ActionReplay:
		g.startPlay()
	case ActionEdit:
		g.mode = ModeEdit
	case ActionQuit:
		g.quit = true
	}
}
