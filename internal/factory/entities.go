package factory

import (
	"maze-shooter/internal/component"
	"maze-shooter/internal/config"
	"maze-shooter/internal/ecs"
	"maze-shooter/internal/grid"
	"maze-shooter/internal/maze"
	"maze-shooter/internal/physics"

	"github.com/gdamore/tcell/v2"
)

// Box sizes as a fraction of the cell size. Movers stay smaller than a cell
// so they fit through one-cell corridors.
const (
	playerScale     = 0.8
	enemyScale      = 0.7
	projectileScale = 0.2
)

const (
	GlyphPlayer     = "🙂"
	GlyphEnemy      = "👾"
	GlyphProjectile = "•"
)

// NewPlayer creates the player entity centered at pos.
func NewPlayer(w *ecs.World, pos physics.Vec, cfg config.Config) ecs.EntityID {
	half := cfg.CellSize * playerScale / 2
	return w.Spawn(
		component.Position{Vec: pos},
		component.Velocity{},
		component.Collider{Kind: component.KindPlayer, Half: physics.V(half, half)},
		component.Speed{Value: cfg.PlayerSpeed},
		component.Health{Current: cfg.PlayerHealth, Max: cfg.PlayerHealth},
		component.Weapon{Cooldown: cfg.FireCooldown, Facing: physics.V(1, 0)},
		component.Renderable{
			Glyph:       GlyphPlayer,
			FGColor:     tcell.ColorYellow,
			BGColor:     tcell.ColorDefault,
			RenderOrder: 10,
		},
		component.TagPlayer{},
	)
}

// NewEnemy creates a chasing enemy centered at pos.
func NewEnemy(w *ecs.World, pos physics.Vec, cfg config.Config) ecs.EntityID {
	half := cfg.CellSize * enemyScale / 2
	return w.Spawn(
		component.Position{Vec: pos},
		component.Velocity{},
		component.Collider{Kind: component.KindEnemy, Half: physics.V(half, half)},
		component.Speed{Value: cfg.EnemySpeed},
		component.Health{Current: 1, Max: 1},
		component.Chaser{},
		component.Renderable{
			Glyph:       GlyphEnemy,
			FGColor:     tcell.ColorRed,
			BGColor:     tcell.ColorDefault,
			RenderOrder: 5,
		},
		component.TagEnemy{},
	)
}

// NewProjectile creates a projectile at pos travelling along dir.
// dir is normalized; a zero dir gives a projectile that never moves.
func NewProjectile(w *ecs.World, owner ecs.EntityID, pos, dir physics.Vec, cfg config.Config) ecs.EntityID {
	half := cfg.CellSize * projectileScale / 2
	return w.Spawn(
		component.Position{Vec: pos},
		component.Velocity{Vec: dir.Normalize().Scale(cfg.ProjectileSpeed)},
		component.Collider{Kind: component.KindProjectile, Half: physics.V(half, half)},
		component.Projectile{Owner: owner, Range: cfg.ProjectileRange},
		component.Renderable{
			Glyph:       GlyphProjectile,
			FGColor:     tcell.ColorAqua,
			BGColor:     tcell.ColorDefault,
			RenderOrder: 8,
		},
	)
}

// SpawnFromMaze populates w from the spawn cells of m: one player at the
// player spawn and one enemy per enemy spawn. It returns the player ID.
func SpawnFromMaze(w *ecs.World, m *maze.Maze, layout grid.Layout, cfg config.Config) (ecs.EntityID, error) {
	if err := m.Validate(); err != nil {
		return ecs.NilEntity, err
	}
	p, _ := m.PlayerSpawn()
	player := NewPlayer(w, layout.CellToWorld(p), cfg)
	for _, c := range m.EnemySpawns() {
		NewEnemy(w, layout.CellToWorld(c), cfg)
	}
	return player, nil
}
