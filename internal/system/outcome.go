package system

import (
	"maze-shooter/internal/component"
	"maze-shooter/internal/ecs"
)

// Outcome is the state of a play session after a tick.
type Outcome uint8

const (
	Running Outcome = iota
	Won
	Lost
)

func (o Outcome) String() string {
	switch o {
	case Won:
		return "won"
	case Lost:
		return "lost"
	}
	return "running"
}

// CheckOutcome reports Lost when the player is gone or out of health, Won
// when no enemies remain, and Running otherwise. Losing takes precedence.
func CheckOutcome(w *ecs.World, player ecs.EntityID) Outcome {
	c := w.Get(player, component.CHealth)
	if !w.Alive(player) || c == nil || c.(component.Health).Dead() {
		return Lost
	}
	if w.Count(component.CTagEnemy) == 0 {
		return Won
	}
	return Running
}
