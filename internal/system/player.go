package system

import (
	"winternight/internal/component"
	"winternight/internal/entity"
	"winternight/internal/geom"
)

// UpdatePlayer advances the player controller by one frame. While gated
// (a character is interacting or waiting on dialogue) an idle player ignores
// the movement axis; a step already under way still finishes.
//
// When the player bumps a collidable character that has a message, that
// character starts interacting and turns to face the player. The returned
// index names the bumped character, or -1. The bump consumes the frame's
// confirm press.
func UpdatePlayer(env *Env, grid Walls, chars []*entity.Character, gated bool) (MoveResult, int) {
	p := env.Player
	p.Time += env.Input.DT

	if p.State == entity.Moving {
		if !StepToward(&p.Position, env.Speed(), env.Input.DT) {
			return MoveStepping, -1
		}
		p.State = entity.Idle
		return MoveArrived, -1
	}

	if gated || env.Input.Axis.IsZero() {
		return MoveNone, -1
	}
	p.Facing = component.DirectionFromAxis(env.Input.Axis, p.Facing.Vec())
	target := p.Cell.Add(p.Facing.Delta())
	if !grid.Walkable(target) {
		return MoveBlocked, -1
	}
	for i, c := range chars {
		if !c.Occupies(target) {
			continue
		}
		if !c.Talk.CanInteract() {
			return MoveBlocked, i
		}
		c.Talk.Interacting = true
		// the message opens this frame; a confirm held with the bump must
		// not close it unseen
		env.Input.Confirm = false
		toward := p.Draw.Sub(c.Draw).Normalize()
		face(env, c, component.DirectionFromAxis(toward, geom.Zero))
		return MoveInteract, i
	}
	p.Cell = target
	p.State = entity.Moving
	return MoveOK, -1
}
