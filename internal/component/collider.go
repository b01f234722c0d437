package component

import (
	"maze-shooter/internal/ecs"
	"maze-shooter/internal/physics"
)

const CCollider ecs.ComponentType = 3

// ColliderKind decides which collision rules apply to an entity.
type ColliderKind uint8

const (
	KindSolid ColliderKind = iota
	KindPlayer
	KindEnemy
	KindProjectile
)

func (k ColliderKind) String() string {
	switch k {
	case KindSolid:
		return "solid"
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindProjectile:
		return "projectile"
	}
	return "unknown"
}

// Collider is an axis-aligned box centered on the entity's Position.
type Collider struct {
	Kind ColliderKind
	Half physics.Vec
}

func (Collider) Type() ecs.ComponentType { return CCollider }

// Box returns the collider placed at p.
func (c Collider) Box(p Position) physics.AABB {
	return physics.AABB{Center: p.Vec, Half: c.Half}
}
