package system

import (
	"testing"
	"winternight/internal/anim"
	"winternight/internal/component"
	"winternight/internal/entity"
	"winternight/internal/gamemap"
	"winternight/internal/script"

	"github.com/stretchr/testify/require"
)

const (
	kindDoor   anim.Kind = "door"
	kindWalker anim.Kind = "walker"
)

func testLibrary(t *testing.T) anim.Library {
	t.Helper()
	door, err := anim.NewSet(kindDoor,
		anim.NewClip("closed", anim.F("▮", 1000)),
		anim.NewClip("open", anim.F("▯", 200), anim.F("_", 200)),
	)
	require.NoError(t, err)
	walker, err := anim.NewSet(kindWalker,
		anim.NewClip("left", anim.F("<", 250), anim.F("‹", 250)),
		anim.NewClip("right", anim.F(">", 250), anim.F("›", 250)),
		anim.NewClip("up", anim.F("^", 250), anim.F("ˆ", 250)),
		anim.NewClip("down", anim.F("v", 250), anim.F("ˇ", 250)),
		anim.NewClip("sit", anim.F("s", 1000)),
	)
	require.NoError(t, err)
	lib, err := anim.NewLibrary(door, walker)
	require.NoError(t, err)
	return lib
}

// newEnv builds an environment with the player resting on playerCell.
func newEnv(t *testing.T, playerCell gamemap.Cell) *Env {
	t.Helper()
	return &Env{
		Tuning: DefaultTuning(),
		Player: entity.NewPlayer(playerCell),
		Anims:  testLibrary(t),
		UI:     &UI{},
		Screen: &Screen{},
	}
}

// frame starts a new frame with in as the input sample.
func (e *Env) frame(in Input) {
	e.Input = in
	e.UI = &UI{}
}

func newWalker(name string, at gamemap.Cell, steps ...script.Step) *entity.Character {
	c := &entity.Character{Name: name, Script: steps, Collidable: true}
	c.Position = component.At(at)
	c.Anim.Kind = kindWalker
	return c
}
