package system

import (
	"winternight/internal/component"
	"winternight/internal/entity"
	"winternight/internal/geom"
)

// MoveResult describes what a movement update did this frame.
type MoveResult uint8

const (
	MoveNone     MoveResult = iota // nothing to do
	MoveOK                         // a step toward a new cell started
	MoveStepping                   // draw position still travelling
	MoveArrived                    // draw position reached the cell
	MoveBlocked                    // wall, out of bounds or a collidable character
	MoveInteract                   // bumped a character with something to say
	MoveNoPath                     // goal unreachable this frame, retried next frame
)

func (r MoveResult) String() string {
	switch r {
	case MoveOK:
		return "ok"
	case MoveStepping:
		return "stepping"
	case MoveArrived:
		return "arrived"
	case MoveBlocked:
		return "blocked"
	case MoveInteract:
		return "interact"
	case MoveNoPath:
		return "no path"
	}
	return "none"
}

// StepToward moves p's draw position toward its cell by speed*dt pixels and
// snaps once the remaining distance is within one frame's travel. It reports
// whether the position is now settled.
func StepToward(p *component.Position, speed, dt float64) bool {
	target := p.Cell.Pixel()
	step := speed * dt
	if p.Draw.Distance(target) <= step {
		p.Draw = target
		return true
	}
	p.Draw = p.Draw.MoveTowards(target, step)
	return false
}

// UpdateMovement walks c one frame toward its MoveTo goal. The route is
// replanned before every hop with the player's cell treated as blocked, so a
// character steps around the player or waits when the player closes the only
// way through.
//
// Move.Reached is set only on the frame the goal is reached. A character
// showing its interact message stands still, mid-hop included, and keeps its
// goal and Reached flag until the player confirms.
func UpdateMovement(env *Env, grid Walls, c *entity.Character) MoveResult {
	if c.Talk.Interacting {
		return MoveNone
	}
	c.Move.Reached = false
	if !c.Move.HasGoal {
		return MoveNone
	}
	if c.Move.Hopping {
		if !StepToward(&c.Position, env.Speed(), env.Input.DT) {
			return MoveStepping
		}
		c.Move.Hopping = false
	}
	if c.Cell == c.Move.Goal {
		c.Move.HasGoal = false
		c.Move.Reached = true
		return MoveArrived
	}

	path, _, ok := FindPath(grid, c.Cell, c.Move.Goal, env.Player.Cell)
	if !ok {
		return MoveNoPath
	}
	next := path[1]
	dir := component.DirectionFromAxis(geom.V(float64(next.X-c.Cell.X), float64(next.Y-c.Cell.Y)), geom.Zero)
	face(env, c, dir)
	c.Cell = next
	c.Move.Hopping = true
	return MoveOK
}

// face turns c toward dir and switches to the matching walk clip when the
// character's set has one.
func face(env *Env, c *entity.Character, dir component.Direction) {
	c.Facing = dir
	if i, ok := env.Anims.Set(c.Anim.Kind).Index(dir.Name()); ok {
		c.Anim.Index = i
	}
}
