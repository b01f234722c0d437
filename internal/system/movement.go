package system

import (
	"maze-shooter/internal/component"
	"maze-shooter/internal/ecs"
	"maze-shooter/internal/grid"
	"maze-shooter/internal/maze"
	"maze-shooter/internal/physics"
)

// SetPlayerVelocity sets the player's velocity from an input axis. The axis
// is normalized so diagonals are not faster. A non-zero axis also becomes the
// weapon's facing.
func SetPlayerVelocity(w *ecs.World, player ecs.EntityID, axis physics.Vec) {
	if !w.Alive(player) {
		return
	}
	speed := 0.0
	if c := w.Get(player, component.CSpeed); c != nil {
		speed = c.(component.Speed).Value
	}
	dir := axis.Normalize()
	w.Add(player, component.Velocity{Vec: dir.Scale(speed)})

	if dir.IsZero() {
		return
	}
	if c := w.Get(player, component.CWeapon); c != nil {
		wp := c.(component.Weapon)
		wp.Facing = dir
		w.Add(player, wp)
	}
}

// Move advances every entity with a velocity by dt seconds. Players and
// enemies slide along walls and the maze border, and overlapping enemies are
// pushed apart. Projectiles move last so they meet enemies where those ended
// up this tick.
func Move(w *ecs.World, m *maze.Maze, layout grid.Layout, dt float64) {
	walls := WallQuery(m, layout)
	var projectiles []ecs.EntityID
	for _, id := range w.Query(component.CPosition, component.CVelocity, component.CCollider) {
		pos := w.Get(id, component.CPosition).(component.Position)
		vel := w.Get(id, component.CVelocity).(component.Velocity)
		col := w.Get(id, component.CCollider).(component.Collider)

		switch col.Kind {
		case component.KindSolid:
			continue
		case component.KindProjectile:
			projectiles = append(projectiles, id)
			continue
		}
		box, _ := physics.MoveAndSlide(col.Box(pos), vel.Scale(dt), walls)
		w.Add(id, component.Position{Vec: box.Center})
	}
	separateEnemies(w, walls)

	if len(projectiles) == 0 {
		return
	}
	var enemies []physics.AABB
	for _, e := range w.Query(component.CTagEnemy, component.CPosition, component.CCollider) {
		enemies = append(enemies, boxOf(w, e))
	}
	for _, id := range projectiles {
		moveProjectile(w, m, layout, id, enemies, dt)
	}
}

// moveProjectile flies a projectile along its velocity in substeps and stops
// it at the first one that touches a wall, the border or an enemy, leaving
// the contact for ResolveCollisions. Range is spent by the distance flown.
func moveProjectile(w *ecs.World, m *maze.Maze, layout grid.Layout, id ecs.EntityID, enemies []physics.AABB, dt float64) {
	vel := w.Get(id, component.CVelocity).(component.Velocity)
	delta := vel.Scale(dt)
	if delta.IsZero() {
		return
	}
	box := boxOf(w, id)
	steps := physics.Substeps(box, delta)
	step := delta.Scale(1 / float64(steps))

	flown := 0.0
	for i := 0; i < steps; i++ {
		box = box.Translate(step)
		flown += step.Len()
		if HitsWall(m, layout, box) || overlapsAny(box, enemies) {
			break
		}
	}
	w.Add(id, component.Position{Vec: box.Center})
	if c := w.Get(id, component.CProjectile); c != nil {
		pr := c.(component.Projectile)
		pr.Range -= flown
		w.Add(id, pr)
	}
}

func overlapsAny(box physics.AABB, others []physics.AABB) bool {
	for _, o := range others {
		if box.Overlaps(o) {
			return true
		}
	}
	return false
}

// separateEnemies resolves enemy-enemy overlaps pairwise in ID order. Each
// push is itself slid against the walls so it never shoves an enemy into one.
func separateEnemies(w *ecs.World, walls physics.SolidQuery) {
	ids := w.Query(component.CTagEnemy, component.CPosition, component.CCollider)
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			a, b := ids[i], ids[j]
			pa := w.Get(a, component.CPosition).(component.Position)
			pb := w.Get(b, component.CPosition).(component.Position)
			ca := w.Get(a, component.CCollider).(component.Collider)
			cb := w.Get(b, component.CCollider).(component.Collider)

			da, db := physics.Separate(ca.Box(pa), cb.Box(pb))
			if da.IsZero() && db.IsZero() {
				continue
			}
			boxA, _ := physics.MoveAndSlide(ca.Box(pa), da, walls)
			boxB, _ := physics.MoveAndSlide(cb.Box(pb), db, walls)
			w.Add(a, component.Position{Vec: boxA.Center})
			w.Add(b, component.Position{Vec: boxB.Center})
		}
	}
}
