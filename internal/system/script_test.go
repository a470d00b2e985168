package system

import (
	"testing"
	"winternight/internal/component"
	"winternight/internal/entity"
	"winternight/internal/geom"
	"winternight/internal/script"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func step(when script.Condition, do script.Action) script.Step {
	return script.Step{When: when, Do: do}
}

func TestAlwaysChangeAdvancesOneStepPerFrame(t *testing.T) {
	env := newEnv(t, cell(0, 0))
	c := newWalker("a", cell(3, 3),
		step(script.AlwaysChange{}, script.GiveTag{Tag: component.OpenedDoor}),
		step(script.AlwaysChange{}, script.GiveTag{Tag: component.LightFire}),
		step(script.AlwaysChange{}, script.Noop{}),
	)
	for frame := 1; frame <= 3; frame++ {
		env.frame(Input{DT: 1.0 / 60})
		adv, ok := RunScript(env, c)
		require.True(t, ok)
		assert.Equal(t, frame-1, adv.Index)
		assert.Equal(t, frame, c.Cursor)
	}
	assert.Equal(t, []component.Tag{component.OpenedDoor, component.LightFire}, env.Player.Tags)
}

func TestCursorStopsAtEnd(t *testing.T) {
	env := newEnv(t, cell(0, 0))
	c := newWalker("a", cell(3, 3), step(script.AlwaysChange{}, script.Noop{}))
	for iter := 0; iter < 5; iter++ {
		env.frame(Input{DT: 0.1})
		RunScript(env, c)
	}
	assert.Equal(t, 1, c.Cursor)
	assert.Equal(t, script.Terminal, c.Step())
}

func TestTimeWaitsForAccumulatedStepTime(t *testing.T) {
	env := newEnv(t, cell(0, 0))
	c := newWalker("a", cell(3, 3),
		step(script.AlwaysChange{}, script.Noop{}),
		step(script.Time{Seconds: 0.5}, script.Noop{}),
	)
	env.frame(Input{DT: 0.125})
	_, ok := RunScript(env, c)
	require.True(t, ok)
	assert.Zero(t, c.Timer, "timer resets on advance")

	for i := 1; i <= 3; i++ {
		env.frame(Input{DT: 0.125})
		_, ok = RunScript(env, c)
		assert.False(t, ok, "frame %d", i)
	}
	env.frame(Input{DT: 0.125})
	_, ok = RunScript(env, c)
	assert.True(t, ok)
	assert.Equal(t, 2, c.Cursor)
}

func TestTagVisibleToLaterCharacterSameFrame(t *testing.T) {
	env := newEnv(t, cell(0, 0))
	giver := newWalker("giver", cell(1, 1), step(script.AlwaysChange{}, script.GiveTag{Tag: component.FerretInside}))
	waiterAfter := newWalker("after", cell(2, 1), step(script.PlayerHasTag{Tag: component.FerretInside}, script.Noop{}))
	waiterBefore := newWalker("before", cell(3, 1), step(script.PlayerHasTag{Tag: component.FerretInside}, script.Noop{}))

	env.frame(Input{DT: 0.1})
	for _, c := range []*entity.Character{waiterBefore, giver, waiterAfter} {
		RunScript(env, c)
	}
	assert.Equal(t, 1, giver.Cursor)
	assert.Equal(t, 1, waiterAfter.Cursor, "later character sees the tag this frame")
	assert.Equal(t, 0, waiterBefore.Cursor, "earlier character waits a frame")

	env.frame(Input{DT: 0.1})
	RunScript(env, waiterBefore)
	assert.Equal(t, 1, waiterBefore.Cursor)
}

func TestTagGatedScriptGrantsTag(t *testing.T) {
	env := newEnv(t, cell(0, 0))
	c := newWalker("gate", cell(2, 2),
		step(script.PlayerHasTag{Tag: component.OpenedDoor}, script.Noop{}),
		step(script.AlwaysChange{}, script.GiveTag{Tag: component.LightFire}),
	)
	for iter := 0; iter < 10; iter++ {
		env.frame(Input{DT: 0.1})
		RunScript(env, c)
	}
	assert.Equal(t, 0, c.Cursor)

	env.Player.GiveTag(component.OpenedDoor)
	env.frame(Input{DT: 0.1})
	RunScript(env, c)
	assert.Equal(t, 1, c.Cursor)
	assert.False(t, env.Player.HasTag(component.LightFire))

	env.frame(Input{DT: 0.1})
	RunScript(env, c)
	assert.Equal(t, 2, c.Cursor)
	assert.True(t, env.Player.HasTag(component.LightFire))
}

func TestAnimationFinishHoldsLastFrame(t *testing.T) {
	env := newEnv(t, cell(0, 0))
	door := &entity.Character{Name: "door", Position: component.At(cell(2, 0))}
	door.Anim.Kind = kindDoor
	door.Anim.Index = env.Anims.Set(kindDoor).MustIndex("open")
	door.Anim.Playing = true
	door.Script = script.Script{
		step(script.AnimationFinish{}, script.SetPlayingAnimation{Playing: false}),
	}

	for i := 1; i <= 3; i++ {
		env.frame(Input{DT: 0.125})
		_, ok := RunScript(env, door)
		require.False(t, ok, "frame %d", i)
	}
	env.frame(Input{DT: 0.125})
	_, ok := RunScript(env, door)
	require.True(t, ok)

	assert.False(t, door.Anim.Playing)
	assert.Equal(t, uint32(399), door.Anim.TimeMS())
	clip := env.Anims.Set(kindDoor).Clip(door.Anim.Index)
	assert.Equal(t, clip.Last(), clip.FrameAt(door.Anim.TimeMS()))
}

func TestAnimationFinishNeedsPlaying(t *testing.T) {
	env := newEnv(t, cell(0, 0))
	door := &entity.Character{Name: "door"}
	door.Anim.Kind = kindDoor
	door.Anim.Time = 10
	door.Script = script.Script{step(script.AnimationFinish{}, script.Noop{})}

	env.frame(Input{DT: 0.1})
	_, ok := RunScript(env, door)
	assert.False(t, ok)
}

func TestDialogueWaitsForConfirm(t *testing.T) {
	env := newEnv(t, cell(0, 0))
	c := newWalker("Ferret", cell(3, 3),
		step(script.Dialogue{Text: "Hello there.", Speaker: "Ferret"}, script.Noop{}),
	)

	env.frame(Input{DT: 0.1})
	_, ok := RunScript(env, c)
	assert.False(t, ok)
	require.NotNil(t, env.UI.Dialogue)
	assert.Equal(t, DialogueBox{Text: "Hello there.", Speaker: "Ferret"}, *env.UI.Dialogue)

	env.frame(Input{DT: 0.1, Confirm: true})
	_, ok = RunScript(env, c)
	assert.True(t, ok)
	assert.NotNil(t, env.UI.Dialogue, "box is still drawn on the confirming frame")
}

func TestFirstDialogueWins(t *testing.T) {
	env := newEnv(t, cell(0, 0))
	a := newWalker("a", cell(1, 1), step(script.Dialogue{Text: "first"}, script.Noop{}))
	b := newWalker("b", cell(2, 2), step(script.Dialogue{Text: "second"}, script.Noop{}))

	env.frame(Input{DT: 0.1, Confirm: true})
	RunScript(env, a)
	RunScript(env, b)
	require.NotNil(t, env.UI.Dialogue)
	assert.Equal(t, "first", env.UI.Dialogue.Text)
	assert.Equal(t, 1, a.Cursor)
	assert.Equal(t, 0, b.Cursor, "the hidden line keeps waiting")

	env.frame(Input{DT: 0.1})
	RunScript(env, a)
	RunScript(env, b)
	require.NotNil(t, env.UI.Dialogue)
	assert.Equal(t, "second", env.UI.Dialogue.Text)

	env.frame(Input{DT: 0.1, Confirm: true})
	RunScript(env, a)
	RunScript(env, b)
	assert.Equal(t, 1, b.Cursor)
}

func TestConfirmClosesMessageBeforeLaterDialogue(t *testing.T) {
	env := newEnv(t, cell(0, 0))
	ferret := newWalker("Ferret", cell(1, 1), step(script.NeverChange{}, script.Noop{}))
	ferret.Talk = component.Interactable{Message: "They should be here soon.", Interacting: true}
	family := newWalker("Small voices", cell(2, 2),
		step(script.Dialogue{Text: "We followed the tracks!"}, script.SetName{Name: "Ferret family"}))

	env.frame(Input{DT: 0.1, Confirm: true})
	RunScript(env, ferret)
	RunScript(env, family)
	assert.False(t, ferret.Talk.Interacting)
	assert.Equal(t, 0, family.Cursor)
	assert.Equal(t, "Small voices", family.Name)
}

func TestPlayerInteractYieldsToDialogue(t *testing.T) {
	env := newEnv(t, cell(4, 4))
	talker := newWalker("talker", cell(1, 1), step(script.Dialogue{Text: "hold on"}, script.Noop{}))
	door := newWalker("door", cell(4, 3),
		step(script.PlayerInteract{Prompt: "E: open", Anchor: cell(4, 4).Pixel()}, script.Noop{}))

	env.frame(Input{DT: 0.1, Confirm: true})
	RunScript(env, talker)
	RunScript(env, door)
	assert.Equal(t, 1, talker.Cursor)
	assert.Equal(t, 0, door.Cursor)
}

func TestPlayerInteractNeedsRangeAndConfirm(t *testing.T) {
	anchor := cell(4, 4).Pixel()
	newDoor := func() *entity.Character {
		return newWalker("door", cell(4, 3), step(script.PlayerInteract{Prompt: "E: open", Anchor: anchor}, script.Noop{}))
	}

	t.Run("out of range", func(t *testing.T) {
		env := newEnv(t, cell(0, 0))
		door := newDoor()
		env.frame(Input{DT: 0.1, Confirm: true})
		_, ok := RunScript(env, door)
		assert.False(t, ok)
		assert.Empty(t, env.UI.Tooltip)
	})

	t.Run("in range without confirm", func(t *testing.T) {
		env := newEnv(t, cell(4, 4))
		door := newDoor()
		env.frame(Input{DT: 0.1})
		_, ok := RunScript(env, door)
		assert.False(t, ok)
		assert.Equal(t, "E: open", env.UI.Tooltip)
	})

	t.Run("in range with confirm", func(t *testing.T) {
		env := newEnv(t, cell(4, 4))
		env.Player.Draw = env.Player.Draw.Add(geom.V(8, 0))
		door := newDoor()
		env.frame(Input{DT: 0.1, Confirm: true})
		_, ok := RunScript(env, door)
		assert.True(t, ok)
	})
}

func TestInteractingCharacterPausesScript(t *testing.T) {
	env := newEnv(t, cell(0, 0))
	c := newWalker("Ferret", cell(3, 3), step(script.AlwaysChange{}, script.Noop{}))
	c.Talk = component.Interactable{Message: "Warm in here.", Interacting: true}

	env.frame(Input{DT: 0.1})
	_, ok := RunScript(env, c)
	assert.False(t, ok)
	assert.Equal(t, 0, c.Cursor)
	require.NotNil(t, env.UI.Dialogue)
	assert.Equal(t, DialogueBox{Text: "Warm in here.", Speaker: "Ferret"}, *env.UI.Dialogue)

	env.frame(Input{DT: 0.1, Confirm: true})
	_, ok = RunScript(env, c)
	assert.False(t, ok, "confirm only closes the message")
	assert.False(t, c.Talk.Interacting)

	env.frame(Input{DT: 0.1})
	_, ok = RunScript(env, c)
	assert.True(t, ok)
}

func TestReachedDestinationIsConsumed(t *testing.T) {
	env := newEnv(t, cell(0, 0))
	c := newWalker("a", cell(3, 3),
		step(script.ReachedDestination{}, script.Noop{}),
		step(script.ReachedDestination{}, script.Noop{}),
	)
	c.Move.Reached = true

	env.frame(Input{DT: 0.1})
	_, ok := RunScript(env, c)
	require.True(t, ok)
	env.frame(Input{DT: 0.1})
	_, ok = RunScript(env, c)
	assert.False(t, ok)
}

func TestActions(t *testing.T) {
	tests := []struct {
		name  string
		do    script.Action
		check func(t *testing.T, env *Env, c *entity.Character)
	}{
		{"change animation", script.ChangeAnimation{Clip: "sit"}, func(t *testing.T, env *Env, c *entity.Character) {
			assert.Equal(t, env.Anims.Set(kindWalker).MustIndex("sit"), c.Anim.Index)
		}},
		{"set playing", script.SetPlayingAnimation{Playing: true}, func(t *testing.T, _ *Env, c *entity.Character) {
			assert.True(t, c.Anim.Playing)
		}},
		{"set animation time", script.SetAnimationTime{Seconds: 0.25}, func(t *testing.T, _ *Env, c *entity.Character) {
			assert.Equal(t, uint32(250), c.Anim.TimeMS())
		}},
		{"move to", script.MoveTo{Cell: cell(5, 5)}, func(t *testing.T, _ *Env, c *entity.Character) {
			assert.True(t, c.Move.HasGoal)
			assert.Equal(t, cell(5, 5), c.Move.Goal)
		}},
		{"teleport", script.Teleport{Cell: cell(6, 1)}, func(t *testing.T, _ *Env, c *entity.Character) {
			assert.Equal(t, cell(6, 1), c.Cell)
			assert.Equal(t, cell(6, 1).Pixel(), c.Draw)
			assert.False(t, c.Move.HasGoal, "teleport cancels movement")
		}},
		{"teleport player", script.TeleportPlayer{Cell: cell(2, 2)}, func(t *testing.T, env *Env, _ *entity.Character) {
			assert.Equal(t, cell(2, 2), env.Player.Cell)
			assert.Equal(t, entity.Idle, env.Player.State)
		}},
		{"give tag", script.GiveTag{Tag: component.FamilyArrived}, func(t *testing.T, env *Env, _ *entity.Character) {
			assert.True(t, env.Player.HasTag(component.FamilyArrived))
		}},
		{"show screen", script.ShowScreen{Index: 2}, func(t *testing.T, env *Env, _ *entity.Character) {
			assert.True(t, env.Screen.Shown)
			assert.Equal(t, 2, env.Screen.Index)
		}},
		{"hide screen", script.HideScreen{}, func(t *testing.T, env *Env, _ *entity.Character) {
			assert.False(t, env.Screen.Shown)
		}},
		{"clear interact message", script.SetInteractMessage{}, func(t *testing.T, _ *Env, c *entity.Character) {
			assert.False(t, c.Talk.CanInteract())
		}},
		{"set collision", script.SetCollision{On: false}, func(t *testing.T, _ *Env, c *entity.Character) {
			assert.False(t, c.Collidable)
		}},
		{"set name", script.SetName{Name: "Ferret family"}, func(t *testing.T, _ *Env, c *entity.Character) {
			assert.Equal(t, "Ferret family", c.Name)
		}},
		{"draw over", script.SetDrawOver{Over: true}, func(t *testing.T, _ *Env, c *entity.Character) {
			assert.True(t, c.Render.Over)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newEnv(t, cell(0, 0))
			env.Screen.Show(0)
			c := newWalker("a", cell(3, 3), step(script.AlwaysChange{}, tt.do))
			c.Talk.Message = "hi"
			c.Move.SetGoal(cell(9, 9))
			env.frame(Input{DT: 0.1})
			_, ok := RunScript(env, c)
			require.True(t, ok)
			tt.check(t, env, c)
		})
	}
}

func TestAnyInteracting(t *testing.T) {
	quiet := newWalker("quiet", cell(1, 1), step(script.Time{Seconds: 1}, script.Noop{}))
	talking := newWalker("talking", cell(2, 2))
	talking.Talk = component.Interactable{Message: "hi", Interacting: true}
	speaking := newWalker("speaking", cell(3, 3), step(script.Dialogue{Text: "hello"}, script.Noop{}))

	_, ok := AnyInteracting([]*entity.Character{quiet})
	assert.False(t, ok)

	i, ok := AnyInteracting([]*entity.Character{quiet, speaking, talking})
	assert.True(t, ok)
	assert.Equal(t, 1, i)

	i, ok = AnyInteracting([]*entity.Character{talking, speaking})
	assert.True(t, ok)
	assert.Equal(t, 0, i)
}
