package system

import (
	"maze-shooter/internal/component"
	"maze-shooter/internal/config"
	"maze-shooter/internal/ecs"
	"maze-shooter/internal/grid"
	"maze-shooter/internal/maze"
	"maze-shooter/internal/pathfind"
	"maze-shooter/internal/physics"
)

// arriveRadius is how close, as a fraction of the cell size, an enemy must
// get to a waypoint's center before it steers to the next one.
const arriveRadius = 0.05

// UpdateChasers steers every chasing enemy toward the player. An enemy
// re-plans with A* when its repath timer runs out or the player has moved to
// another cell. It heads straight for the player when it already shares the
// player's cell or when no path exists.
func UpdateChasers(w *ecs.World, m *maze.Maze, layout grid.Layout, player ecs.EntityID, dt float64, cfg config.Config) {
	pc := w.Get(player, component.CPosition)
	if pc == nil {
		for _, id := range w.Query(component.CChaser, component.CVelocity) {
			w.Add(id, component.Velocity{})
		}
		return
	}
	target := pc.(component.Position).Vec
	targetCell := layout.WorldToCell(target)

	for _, id := range w.Query(component.CChaser, component.CPosition) {
		ch := w.Get(id, component.CChaser).(component.Chaser)
		pos := w.Get(id, component.CPosition).(component.Position)
		cell := layout.WorldToCell(pos.Vec)

		ch.Repath -= dt
		if ch.Repath <= 0 || ch.Target != targetCell || (ch.Path == nil && !ch.Direct) {
			replan(&ch, m, cell, targetCell, cfg)
		}

		goal := target
		if cell != targetCell && !ch.Direct {
			goal = nextWaypoint(&ch, layout, pos.Vec, target)
		}

		speed := 0.0
		if c := w.Get(id, component.CSpeed); c != nil {
			speed = c.(component.Speed).Value
		}
		w.Add(id, component.Velocity{Vec: steer(pos.Vec, goal, speed, dt)})
		w.Add(id, ch)
	}
}

func replan(ch *component.Chaser, m *maze.Maze, from, to grid.Coord, cfg config.Config) {
	ch.Target = to
	ch.Repath = cfg.RepathInterval
	path, err := pathfind.Find(m, from, to, pathfind.WithMaxExpansions(cfg.MaxExpansions))
	if err != nil {
		ch.Path, ch.Next, ch.Direct = nil, 0, true
		return
	}
	ch.Path, ch.Next, ch.Direct = path, 1, false
}

// nextWaypoint advances past reached waypoints and returns the world position
// to steer to. Past the end of the path it returns target.
func nextWaypoint(ch *component.Chaser, layout grid.Layout, pos, target physics.Vec) physics.Vec {
	for {
		wp, ok := ch.Waypoint()
		if !ok {
			return target
		}
		center := layout.CellToWorld(wp)
		if center.Sub(pos).Len() > arriveRadius*layout.CellSize {
			return center
		}
		ch.Next++
	}
}

// steer returns the velocity that moves from pos toward goal at speed
// without overshooting it within dt.
func steer(pos, goal physics.Vec, speed, dt float64) physics.Vec {
	d := goal.Sub(pos)
	dist := d.Len()
	if dist == 0 || speed == 0 {
		return physics.Vec{}
	}
	if dt > 0 && dist < speed*dt {
		return d.Scale(1 / dt)
	}
	return d.Normalize().Scale(speed)
}
