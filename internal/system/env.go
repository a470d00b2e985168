// Package system holds the per-frame logic that advances a scene: the script
// interpreter, the movement controller and its pathfinder, the interaction
// gate and the player controller. Every function runs synchronously on the
// game loop and mutates the entities it is handed in place.
package system

import (
	"winternight/internal/anim"
	"winternight/internal/entity"
	"winternight/internal/gamemap"
	"winternight/internal/geom"
)

// Default tuning values.
const (
	MoveTime       = 0.25 // seconds to cross one cell
	FastMoveTime   = 0.1  // debug fast-move override
	InteractRadius = 12.0 // pixels between the player and a PlayerInteract anchor
)

// Input is one frame's input sample.
type Input struct {
	DT      float64  // seconds since the previous frame
	Axis    geom.Vec // movement axis, zero when no direction is held
	Confirm bool     // confirm was pressed since the previous frame
	Fast    bool     // debug fast-move key held
}

// Tuning holds the movement and interaction constants.
type Tuning struct {
	MoveTime       float64
	FastMoveTime   float64
	InteractRadius float64
	FastMove       bool // allow the debug fast-move override
}

// DefaultTuning returns the shipped constants with fast move disabled.
func DefaultTuning() Tuning {
	return Tuning{
		MoveTime:       MoveTime,
		FastMoveTime:   FastMoveTime,
		InteractRadius: InteractRadius,
	}
}

// DialogueBox is the text shown in the dialogue panel.
type DialogueBox struct {
	Text    string
	Speaker string
}

// UI collects the transient prompts produced while evaluating conditions.
// Within one frame the first writer wins.
type UI struct {
	Dialogue *DialogueBox
	Tooltip  string
}

// ShowDialogue requests the dialogue box for this frame and reports whether
// the caller got it. The first request of a frame wins.
func (u *UI) ShowDialogue(text, speaker string) bool {
	if u.Dialogue != nil {
		return false
	}
	u.Dialogue = &DialogueBox{Text: text, Speaker: speaker}
	return true
}

// ShowTooltip requests the tooltip for this frame and reports whether the
// caller got it.
func (u *UI) ShowTooltip(text string) bool {
	if u.Tooltip != "" {
		return false
	}
	u.Tooltip = text
	return true
}

// Screen is the full-screen overlay state, which persists across frames.
type Screen struct {
	Index   int
	Shown   bool
	Elapsed float64 // seconds since it was shown
}

// Show raises overlay i.
func (s *Screen) Show(i int) {
	s.Index = i
	s.Shown = true
	s.Elapsed = 0
}

// Hide drops the overlay.
func (s *Screen) Hide() { s.Shown = false }

// Env is the world as seen by the systems during one frame.
type Env struct {
	Input  Input
	Tuning Tuning
	Player *entity.Player
	Anims  anim.Library
	UI     *UI
	Screen *Screen
}

// TakeConfirm reports this frame's confirm press and consumes it, so one
// press resolves at most one dialogue or interaction.
func (e *Env) TakeConfirm() bool {
	c := e.Input.Confirm
	e.Input.Confirm = false
	return c
}

// Speed returns the movement speed in pixels per second for this frame.
func (e *Env) Speed() float64 {
	t := e.Tuning.MoveTime
	if e.Tuning.FastMove && e.Input.Fast {
		t = e.Tuning.FastMoveTime
	}
	return gamemap.TileSize / t
}
