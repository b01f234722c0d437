package component

import "maze-shooter/internal/ecs"

const CHealth ecs.ComponentType = 4

type Health struct {
	Current, Max int
}

func (Health) Type() ecs.ComponentType { return CHealth }

// Dead reports whether the entity has no health left.
func (h Health) Dead() bool { return h.Current <= 0 }
