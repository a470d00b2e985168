package script

import (
	"winternight/internal/component"
	"winternight/internal/gamemap"
)

// Action is applied when a step's condition holds. Actions are the only
// place persistent state changes.
type Action interface {
	action()
}

type Noop struct{}

// ChangeAnimation switches to the named clip of the character's set.
type ChangeAnimation struct {
	Clip string
}

type SetPlayingAnimation struct {
	Playing bool
}

// SetAnimationTime overrides the clip time, including a clamp applied by
// AnimationFinish in the same step.
type SetAnimationTime struct {
	Seconds float64
}

// MoveTo sets the character's destination. The movement system walks there.
type MoveTo struct {
	Cell gamemap.Cell
}

// Teleport places the character on Cell immediately.
type Teleport struct {
	Cell gamemap.Cell
}

// TeleportPlayer places the player on Cell immediately.
type TeleportPlayer struct {
	Cell gamemap.Cell
}

// GiveTag appends Tag to the player's tags. Duplicates are kept.
type GiveTag struct {
	Tag component.Tag
}

// ShowScreen raises the full-screen overlay Index.
type ShowScreen struct {
	Index int
}

type HideScreen struct{}

// SetInteractMessage sets what the character says when bumped. Empty clears it.
type SetInteractMessage struct {
	Text string
}

type SetCollision struct {
	On bool
}

type SetName struct {
	Name string
}

// SetDrawOver moves the character above or below the player in draw order.
type SetDrawOver struct {
	Over bool
}

func (Noop) action()                {}
func (ChangeAnimation) action()     {}
func (SetPlayingAnimation) action() {}
func (SetAnimationTime) action()    {}
func (MoveTo) action()              {}
func (Teleport) action()            {}
func (TeleportPlayer) action()      {}
func (GiveTag) action()             {}
func (ShowScreen) action()          {}
func (HideScreen) action()          {}
func (SetInteractMessage) action()  {}
func (SetCollision) action()        {}
func (SetName) action()             {}
func (SetDrawOver) action()         {}
