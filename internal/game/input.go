package game

import (
	"time"
	"winternight/internal/component"
	"winternight/internal/geom"
	"winternight/internal/system"

	"github.com/gdamore/tcell/v2"
)

// Action represents a player-requested game action.
type Action uint8

const (
	ActionNone Action = iota
	ActionMoveW
	ActionMoveE
	ActionMoveN
	ActionMoveS
	ActionConfirm
	ActionQuit
)

// keyToAction maps a tcell key event to a game action. fast is set for
// shifted movement keys.
func keyToAction(ev *tcell.EventKey) (a Action, fast bool) {
	shift := ev.Modifiers()&tcell.ModShift != 0
	switch ev.Key() {
	case tcell.KeyUp:
		return ActionMoveN, shift
	case tcell.KeyDown:
		return ActionMoveS, shift
	case tcell.KeyRight:
		return ActionMoveE, shift
	case tcell.KeyLeft:
		return ActionMoveW, shift
	case tcell.KeyEnter:
		return ActionConfirm, false
	case tcell.KeyEscape:
		return ActionQuit, false
	case tcell.KeyRune:
	default:
		return ActionNone, false
	}

	switch ev.Rune() {
	case 'k', 'w':
		return ActionMoveN, false
	case 'K', 'W':
		return ActionMoveN, true
	case 'j', 's':
		return ActionMoveS, false
	case 'J', 'S':
		return ActionMoveS, true
	case 'l', 'd':
		return ActionMoveE, false
	case 'L', 'D':
		return ActionMoveE, true
	case 'h', 'a':
		return ActionMoveW, false
	case 'H', 'A':
		return ActionMoveW, true
	case 'e', 'E', ' ':
		return ActionConfirm, false
	case 'q', 'Q':
		return ActionQuit, false
	}
	return ActionNone, false
}

// actionToDirection converts a movement action to a facing.
func actionToDirection(a Action) (component.Direction, bool) {
	switch a {
	case ActionMoveW:
		return component.Left, true
	case ActionMoveE:
		return component.Right, true
	case ActionMoveN:
		return component.Up, true
	case ActionMoveS:
		return component.Down, true
	}
	return 0, false
}

// inputState turns key presses into per-frame input. Terminals report
// presses but not releases, so a direction counts as held for hold after its
// latest press; key auto-repeat keeps it held.
type inputState struct {
	hold    time.Duration
	pressed [4]time.Time // by component.Direction
	fastAt  time.Time
	confirm bool
}

func newInputState(hold time.Duration) *inputState {
	return &inputState{hold: hold}
}

// press records ev and reports whether the player asked to quit.
func (s *inputState) press(ev *tcell.EventKey, now time.Time) (quit bool) {
	a, fast := keyToAction(ev)
	switch a {
	case ActionQuit:
		return true
	case ActionConfirm:
		s.confirm = true
		return false
	}
	dir, ok := actionToDirection(a)
	if !ok {
		return false
	}
	s.pressed[dir] = now
	s.pressed[opposite(dir)] = time.Time{}
	if fast {
		s.fastAt = now
	}
	return false
}

// sample returns this frame's input and consumes the confirm edge.
func (s *inputState) sample(now time.Time, dt float64) system.Input {
	var axis geom.Vec
	for d, at := range s.pressed {
		if s.held(at, now) {
			axis = axis.Add(component.Direction(d).Vec())
		}
	}
	in := system.Input{DT: dt, Axis: axis, Confirm: s.confirm, Fast: s.held(s.fastAt, now)}
	s.confirm = false
	return in
}

func (s *inputState) held(at, now time.Time) bool {
	return !at.IsZero() && now.Sub(at) <= s.hold
}

func opposite(d component.Direction) component.Direction {
	switch d {
	case component.Left:
		return component.Right
	case component.Right:
		return component.Left
	case component.Up:
		return component.Down
	}
	return component.Up
}
