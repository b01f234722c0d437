package component

import (
	"maze-shooter/internal/ecs"
	"maze-shooter/internal/physics"
)

const (
	CWeapon     ecs.ComponentType = 8
	CProjectile ecs.ComponentType = 9
)

// Weapon fires projectiles. Facing is the last non-zero movement direction.
type Weapon struct {
	Cooldown  float64 // seconds between shots
	Remaining float64 // seconds until the next shot is allowed
	Facing    physics.Vec
}

func (Weapon) Type() ecs.ComponentType { return CWeapon }

// Ready reports whether the weapon can fire now.
func (w Weapon) Ready() bool { return w.Remaining <= 0 }

// Projectile flies in a straight line until it hits something or its range
// runs out.
type Projectile struct {
	Owner ecs.EntityID
	Range float64 // world units left to travel
}

func (Projectile) Type() ecs.ComponentType { return CProjectile }
