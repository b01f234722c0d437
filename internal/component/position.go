package component

import (
	"maze-shooter/internal/ecs"
	"maze-shooter/internal/physics"
)

const (
	CPosition ecs.ComponentType = 1
	CVelocity ecs.ComponentType = 2
)

// Position is the world-space center of an entity.
type Position struct {
	physics.Vec
}

func (Position) Type() ecs.ComponentType { return CPosition }

// Velocity is in world units per second.
type Velocity struct {
	physics.Vec
}

func (Velocity) Type() ecs.ComponentType { return CVelocity }
