package component

import "maze-shooter/internal/ecs"

const (
	CTagPlayer ecs.ComponentType = 10
	CTagEnemy  ecs.ComponentType = 11
)

// TagPlayer marks the player-controlled entity.
type TagPlayer struct{}

func (TagPlayer) Type() ecs.ComponentType { return CTagPlayer }

// TagEnemy marks entities that count toward the win condition.
type TagEnemy struct{}

func (TagEnemy) Type() ecs.ComponentType { return CTagEnemy }
