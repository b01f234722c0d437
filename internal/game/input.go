package game

import (
	"maze-shooter/internal/physics"

	"github.com/gdamore/tcell/v2"
)

// Action represents a player-requested action in one of the modes.
type Action uint8

const (
	ActionNone Action = iota
	ActionQuit

	// Editor.
	ActionCursorUp
	ActionCursorDown
	ActionCursorLeft
	ActionCursorRight
	ActionPlaceWall
	ActionPlacePlayer
	ActionPlaceEnemy
	ActionFree
	ActionClear
	ActionGenerate
	ActionSave
	ActionLoad
	ActionPlay

	// Play.
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionFire
	ActionEdit

	// Won/Lost.
	ActionReplay
)

// editKeyToAction maps a key event in the editor.
func editKeyToAction(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyUp:
		return ActionCursorUp
	case tcell.KeyDown:
		return ActionCursorDown
	case tcell.KeyLeft:
		return ActionCursorLeft
	case tcell.KeyRight:
		return ActionCursorRight
	case tcell.KeyDelete, tcell.KeyBackspace, tcell.KeyBackspace2:
		return ActionFree
	case tcell.KeyEnter:
		return ActionPlay
	case tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyRune:
	default:
		return ActionNone
	}

	switch ev.Rune() {
	case 'k':
		return ActionCursorUp
	case 'j':
		return ActionCursorDown
	case 'h':
		return ActionCursorLeft
	case 'l':
		return ActionCursorRight
	case '#', ' ':
		return ActionPlaceWall
	case 'p':
		return ActionPlacePlayer
	case 'e':
		return ActionPlaceEnemy
	case 'x':
		return ActionFree
	case 'c':
		return ActionClear
	case 'g':
		return ActionGenerate
	case 's':
		return ActionSave
	case 'o':
		return ActionLoad
	case 'P':
		return ActionPlay
	case 'q', 'Q':
		return ActionQuit
	}
	return ActionNone
}

// playKeyToAction maps a key event while playing.
func playKeyToAction(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyUp:
		return ActionMoveUp
	case tcell.KeyDown:
		return ActionMoveDown
	case tcell.KeyLeft:
		return ActionMoveLeft
	case tcell.KeyRight:
		return ActionMoveRight
	case tcell.KeyEscape:
		return ActionEdit
	case tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyRune:
	default:
		return ActionNone
	}

	switch ev.Rune() {
	case 'w', 'W':
		return ActionMoveUp
	case 's', 'S':
		return ActionMoveDown
	case 'a', 'A':
		return ActionMoveLeft
	case 'd', 'D':
		return ActionMoveRight
	case ' ', 'f', 'F':
		return ActionFire
	case 'q', 'Q':
		return ActionQuit
	}
	return ActionNone
}

// endKeyToAction maps a key event on the won/lost screen.
func endKeyToAction(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyEscape:
		return ActionEdit
	case tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyEnter:
		return ActionReplay
	}
	switch ev.Rune() {
	case 'r', 'R':
		return ActionReplay
	case 'e', 'E':
		return ActionEdit
	case 'q', 'Q':
		return ActionQuit
	}
	return ActionNone
}

type direction uint8

const (
	dirUp direction = iota
	dirDown
	dirLeft
	dirRight
)

func (d direction) opposite() direction {
	return d ^ 1
}

func (d direction) vec() physics.Vec {
	switch d {
	case dirUp:
		return physics.V(0, -1)
	case dirDown:
		return physics.V(0, 1)
	case dirLeft:
		return physics.V(-1, 0)
	}
	return physics.V(1, 0)
}

func moveDirection(a Action) (direction, bool) {
	switch a {
	case ActionMoveUp:
		return dirUp, true
	case ActionMoveDown:
		return dirDown, true
	case ActionMoveLeft:
		return dirLeft, true
	case ActionMoveRight:
		return dirRight, true
	}
	return 0, false
}

// heldKeys turns key presses into a movement axis. Terminals report presses
// and auto-repeats but never releases, so a direction stays held for a short
// window after its last event.
type heldKeys struct {
	hold      float64
	remaining [4]float64
}

func (h *heldKeys) press(d direction) {
	h.remaining[d] = h.hold
	h.remaining[d.opposite()] = 0
}

func (h *heldKeys) axis() physics.Vec {
	var v physics.Vec
	for d, left := range h.remaining {
		if left > 0 {
			v = v.Add(direction(d).vec())
		}
	}
	return v
}

func (h *heldKeys) tick(dt float64) {
	for d := range h.remaining {
		h.remaining[d] = max(h.remaining[d]-dt, 0)
	}
}

func (h *heldKeys) reset() {
	h.remaining = [4]float64{}
}
