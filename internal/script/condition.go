// Package script defines the condition→action steps that drive every
// character. Scripts are plain Go tables built by the factory package; the
// system package interprets them one frame at a time.
package script

import (
	"winternight/internal/component"
	"winternight/internal/geom"
)

// Condition gates a step. The set of conditions is closed.
type Condition interface {
	condition()
}

// AlwaysChange is satisfied every frame.
type AlwaysChange struct{}

// NeverChange is never satisfied. It holds a character idle.
type NeverChange struct{}

// PlayerHasTag is satisfied once the player owns Tag.
type PlayerHasTag struct {
	Tag component.Tag
}

// PlayerInteract shows Prompt while the player stands near Anchor and is
// satisfied when the player confirms there.
type PlayerInteract struct {
	Prompt string
	Anchor geom.Vec
}

// ReachedDestination is satisfied on the frame a MoveTo goal is reached.
type ReachedDestination struct{}

// AnimationFinish is satisfied when the playing clip has run its full length.
type AnimationFinish struct{}

// Dialogue shows a dialogue box until the player confirms.
type Dialogue struct {
	Text    string
	Speaker string // optional
}

// Time is satisfied once the step has been current for Seconds.
type Time struct {
	Seconds float64
}

func (AlwaysChange) condition()       {}
func (NeverChange) condition()        {}
func (PlayerHasTag) condition()       {}
func (PlayerInteract) condition()     {}
func (ReachedDestination) condition() {}
func (AnimationFinish) condition()    {}
func (Dialogue) condition()           {}
func (Time) condition()               {}
