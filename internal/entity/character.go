// Package entity holds the two kinds of actor in a scene: scripted
// characters and the single player.
package entity

import (
	"winternight/internal/component"
	"winternight/internal/gamemap"
	"winternight/internal/script"
)

// Character is a scripted NPC or prop (door, hearth). Characters live for the
// whole session; they are never destroyed.
type Character struct {
	Name string
	component.Position
	Script script.Script
	Cursor int     // index of the active step, never decreases
	Timer  float64 // seconds since the active step became current
	Anim   component.Animator
	Move   component.Mover
	Talk   component.Interactable
	Facing component.Direction
	Render component.Renderable
	// Collidable characters block the player's cell.
	Collidable bool
}

// Step returns the active step, or script.Terminal once the script is done.
func (c *Character) Step() script.Step {
	return c.Script.At(c.Cursor)
}

// Advance moves the cursor to the next step and restarts the step timer.
func (c *Character) Advance() {
	if c.Cursor < len(c.Script) {
		c.Cursor++
	}
	c.Timer = 0
}

// Teleport snaps the character to cell and cancels pending movement.
func (c *Character) Teleport(cell gamemap.Cell) {
	c.Position = component.At(cell)
	c.Move.Clear()
}

// Occupies reports whether the character blocks cell for the player.
func (c *Character) Occupies(cell gamemap.Cell) bool {
	return c.Collidable && c.Cell == cell
}
