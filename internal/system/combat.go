package system

import (
	"maze-shooter/internal/component"
	"maze-shooter/internal/config"
	"maze-shooter/internal/ecs"
	"maze-shooter/internal/factory"
	"maze-shooter/internal/grid"
	"maze-shooter/internal/maze"
	"maze-shooter/internal/physics"
)

// Report tallies what ResolveCollisions did during one tick.
type Report struct {
	Kills      int // enemies destroyed by projectiles
	PlayerHits int // enemies that reached the player
	Spent      int // projectiles removed by walls, border or range
}

// TickWeapons counts every weapon's cooldown down by dt.
func TickWeapons(w *ecs.World, dt float64) {
	for _, id := range w.Query(component.CWeapon) {
		wp := w.Get(id, component.CWeapon).(component.Weapon)
		if wp.Remaining <= 0 {
			continue
		}
		wp.Remaining -= dt
		if wp.Remaining < 0 {
			wp.Remaining = 0
		}
		w.Add(id, wp)
	}
}

// Fire spawns a projectile from shooter along dir if its weapon is ready.
// A zero dir is ignored. It returns the projectile and whether one was fired.
func Fire(w *ecs.World, shooter ecs.EntityID, dir physics.Vec, cfg config.Config) (ecs.EntityID, bool) {
	if dir.IsZero() || !w.Alive(shooter) {
		return ecs.NilEntity, false
	}
	wc := w.Get(shooter, component.CWeapon)
	pc := w.Get(shooter, component.CPosition)
	if wc == nil || pc == nil {
		return ecs.NilEntity, false
	}
	wp := wc.(component.Weapon)
	if !wp.Ready() {
		return ecs.NilEntity, false
	}
	wp.Remaining = wp.Cooldown
	w.Add(shooter, wp)

	pos := pc.(component.Position).Vec
	return factory.NewProjectile(w, shooter, pos, dir, cfg), true
}

// ResolveCollisions applies the contact rules for one tick:
// a projectile in a wall, outside the maze or out of range is removed;
// a projectile touching an enemy removes both;
// an enemy touching the player is removed and costs the player one health.
func ResolveCollisions(w *ecs.World, m *maze.Maze, layout grid.Layout) Report {
	var rep Report

	for _, id := range w.Query(component.CProjectile, component.CPosition, component.CCollider) {
		pr := w.Get(id, component.CProjectile).(component.Projectile)
		box := boxOf(w, id)
		if pr.Range <= 0 || HitsWall(m, layout, box) {
			w.DestroyEntity(id)
			rep.Spent++
			continue
		}
		for _, e := range w.Query(component.CTagEnemy, component.CPosition, component.CCollider) {
			if box.Overlaps(boxOf(w, e)) {
				w.DestroyEntity(e)
				w.DestroyEntity(id)
				rep.Kills++
				break
			}
		}
	}

	for _, p := range w.Query(component.CTagPlayer, component.CPosition, component.CCollider) {
		pbox := boxOf(w, p)
		for _, e := range w.Query(component.CTagEnemy, component.CPosition, component.CCollider) {
			if !pbox.Overlaps(boxOf(w, e)) {
				continue
			}
			w.DestroyEntity(e)
			rep.PlayerHits++
			if c := w.Get(p, component.CHealth); c != nil {
				hp := c.(component.Health)
				hp.Current--
				w.Add(p, hp)
			}
		}
	}
	return rep
}

func boxOf(w *ecs.World, id ecs.EntityID) physics.AABB {
	pos := w.Get(id, component.CPosition).(component.Position)
	col := w.Get(id, component.CCollider).(component.Collider)
	return col.Box(pos)
}
