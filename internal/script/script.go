package script

import (
	"fmt"
	"strings"
	"winternight/internal/anim"
)

// Step pairs a condition with the action it releases.
type Step struct {
	When Condition
	Do   Action
}

// Terminal is the implicit step past the end of every script.
var Terminal = Step{When: NeverChange{}, Do: Noop{}}

// Script is an ordered, fixed list of steps.
type Script []Step

// At returns step i, or Terminal once i runs past the end.
func (s Script) At(i int) Step {
	if i < 0 || i >= len(s) {
		return Terminal
	}
	return s[i]
}

// Done reports whether cursor has run past the last step.
func (s Script) Done(cursor int) bool { return cursor >= len(s) }

// Validate checks that every step is complete and that every clip the
// script names exists in set.
func (s Script) Validate(set *anim.Set) error {
	for i, st := range s {
		if st.When == nil || st.Do == nil {
			return fmt.Errorf("step %d: missing condition or action", i)
		}
		switch a := st.Do.(type) {
		case ChangeAnimation:
			if _, ok := set.Index(a.Clip); !ok {
				return fmt.Errorf("step %d: set %q: %w: %q", i, set.Kind, anim.ErrUnknownClip, a.Clip)
			}
		case ShowScreen:
			if a.Index < 0 {
				return fmt.Errorf("step %d: negative screen index %d", i, a.Index)
			}
		}
	}
	return nil
}

// Describe renders a condition or action for logs, e.g. "Time(0.8)".
func Describe(v any) string {
	switch x := v.(type) {
	case PlayerHasTag:
		return fmt.Sprintf("PlayerHasTag(%s)", x.Tag)
	case PlayerInteract:
		return fmt.Sprintf("PlayerInteract(%q)", x.Prompt)
	case Dialogue:
		return fmt.Sprintf("Dialogue(%q)", x.Speaker)
	case Time:
		return fmt.Sprintf("Time(%g)", x.Seconds)
	case ChangeAnimation:
		return fmt.Sprintf("ChangeAnimation(%s)", x.Clip)
	case SetPlayingAnimation:
		return fmt.Sprintf("SetPlayingAnimation(%t)", x.Playing)
	case SetAnimationTime:
		return fmt.Sprintf("SetAnimationTime(%g)", x.Seconds)
	case MoveTo:
		return fmt.Sprintf("MoveTo%s", x.Cell)
	case Teleport:
		return fmt.Sprintf("Teleport%s", x.Cell)
	case TeleportPlayer:
		return fmt.Sprintf("TeleportPlayer%s", x.Cell)
	case GiveTag:
		return fmt.Sprintf("GiveTag(%s)", x.Tag)
	case ShowScreen:
		return fmt.Sprintf("ShowScreen(%d)", x.Index)
	case SetInteractMessage:
		return fmt.Sprintf("SetInteractMessage(%q)", x.Text)
	case SetCollision:
		return fmt.Sprintf("SetCollision(%t)", x.On)
	case SetName:
		return fmt.Sprintf("SetName(%q)", x.Name)
	case SetDrawOver:
		return fmt.Sprintf("SetDrawOver(%t)", x.Over)
	case nil:
		return "<nil>"
	}
	t := fmt.Sprintf("%T", v)
	return t[strings.LastIndexByte(t, '.')+1:]
}
