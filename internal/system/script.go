package system

import (
	"fmt"
	"winternight/internal/entity"
	"winternight/internal/script"
)

// Advance records one script step that fired.
type Advance struct {
	Character string
	Index     int
	Step      script.Step
}

// RunScript evaluates c's active step once. When the condition holds the
// action is applied, the step timer resets and the cursor moves on; at most
// one step fires per call, so a run of AlwaysChange steps drains one step per
// frame.
//
// A character that the player is interacting with shows its message instead
// and does not run its script until the player confirms. Only the owner of
// the frame's dialogue box or tooltip may take the confirm press.
func RunScript(env *Env, c *entity.Character) (Advance, bool) {
	if c.Anim.Playing {
		c.Anim.Time += env.Input.DT
	}
	if c.Talk.Interacting {
		if env.UI.ShowDialogue(c.Talk.Message, c.Name) && env.TakeConfirm() {
			c.Talk.Interacting = false
		}
		return Advance{}, false
	}

	c.Timer += env.Input.DT
	step := c.Step()
	if !checkCondition(env, c, step.When) {
		return Advance{}, false
	}
	applyAction(env, c, step.Do)
	adv := Advance{Character: c.Name, Index: c.Cursor, Step: step}
	c.Advance()
	return adv, true
}

func checkCondition(env *Env, c *entity.Character, when script.Condition) bool {
	switch cond := when.(type) {
	case script.AlwaysChange:
		return true
	case script.NeverChange:
		return false
	case script.PlayerHasTag:
		return env.Player.HasTag(cond.Tag)
	case script.PlayerInteract:
		r := env.Tuning.InteractRadius
		if env.Player.Draw.DistanceSquared(cond.Anchor) > r*r {
			return false
		}
		if !env.UI.ShowTooltip(cond.Prompt) || env.UI.Dialogue != nil {
			return false
		}
		return env.TakeConfirm()
	case script.ReachedDestination:
		reached := c.Move.Reached
		c.Move.Reached = false
		return reached
	case script.AnimationFinish:
		if !c.Anim.Playing {
			return false
		}
		total := env.Anims.Set(c.Anim.Kind).Clip(c.Anim.Index).TotalMS
		if c.Anim.TimeMS() < total {
			return false
		}
		// hold the last frame instead of wrapping to the first
		c.Anim.SetTimeMS(total - 1)
		return true
	case script.Dialogue:
		return env.UI.ShowDialogue(cond.Text, cond.Speaker) && env.TakeConfirm()
	case script.Time:
		return c.Timer >= cond.Seconds
	}
	panic(fmt.Sprintf("system: unhandled condition %T", when))
}

func applyAction(env *Env, c *entity.Character, do script.Action) {
	switch a := do.(type) {
	case script.Noop:
	case script.ChangeAnimation:
		c.Anim.Index = env.Anims.Set(c.Anim.Kind).MustIndex(a.Clip)
	case script.SetPlayingAnimation:
		c.Anim.Playing = a.Playing
	case script.SetAnimationTime:
		c.Anim.Time = a.Seconds
	case script.MoveTo:
		c.Move.SetGoal(a.Cell)
	case script.Teleport:
		c.Teleport(a.Cell)
	case script.TeleportPlayer:
		env.Player.Teleport(a.Cell)
	case script.GiveTag:
		env.Player.GiveTag(a.Tag)
	case script.ShowScreen:
		env.Screen.Show(a.Index)
	case script.HideScreen:
		env.Screen.Hide()
	case script.SetInteractMessage:
		c.Talk.Message = a.Text
		if a.Text == "" {
			c.Talk.Interacting = false
		}
	case script.SetCollision:
		c.Collidable = a.On
	case script.SetName:
		c.Name = a.Name
	case script.SetDrawOver:
		c.Render.Over = a.Over
	default:
		panic(fmt.Sprintf("system: unhandled action %T", do))
	}
}
