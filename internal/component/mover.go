package component

import "winternight/internal/gamemap"

// Mover tracks a pending MoveTo destination.
type Mover struct {
	Goal    gamemap.Cell
	HasGoal bool
	Hopping bool // draw position is travelling to Position.Cell
	Reached bool // goal arrived at this frame
}

// SetGoal replaces any previous destination.
func (m *Mover) SetGoal(c gamemap.Cell) {
	m.Goal = c
	m.HasGoal = true
}

// Clear drops the destination and any hop in progress.
func (m *Mover) Clear() {
	m.HasGoal = false
	m.Hopping = false
}
