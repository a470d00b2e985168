package entity

import (
	"testing"
	"winternight/internal/component"
	"winternight/internal/gamemap"
	"winternight/internal/script"

	"github.com/stretchr/testify/assert"
)

func TestCharacterAdvanceIsBounded(t *testing.T) {
	c := &Character{Script: script.Script{
		{When: script.AlwaysChange{}, Do: script.Noop{}},
	}}
	c.Timer = 3
	c.Advance()
	assert.Equal(t, 1, c.Cursor)
	assert.Zero(t, c.Timer)

	c.Advance()
	assert.Equal(t, 1, c.Cursor, "cursor must not pass the script length")
	assert.Equal(t, script.Terminal, c.Step())
}

func TestCharacterTeleportCancelsMovement(t *testing.T) {
	c := &Character{Position: component.At(gamemap.Cell{X: 1, Y: 1})}
	c.Move.SetGoal(gamemap.Cell{X: 5, Y: 5})
	c.Move.Hopping = true

	c.Teleport(gamemap.Cell{X: 3, Y: 2})

	assert.Equal(t, gamemap.Cell{X: 3, Y: 2}, c.Cell)
	assert.Equal(t, gamemap.Cell{X: 3, Y: 2}.Pixel(), c.Draw)
	assert.False(t, c.Move.HasGoal)
	assert.False(t, c.Move.Hopping)
}

func TestCharacterOccupies(t *testing.T) {
	c := &Character{Position: component.At(gamemap.Cell{X: 2, Y: 2})}
	assert.False(t, c.Occupies(gamemap.Cell{X: 2, Y: 2}), "non-collidable never blocks")
	c.Collidable = true
	assert.True(t, c.Occupies(gamemap.Cell{X: 2, Y: 2}))
	assert.False(t, c.Occupies(gamemap.Cell{X: 2, Y: 3}))
}

func TestPlayerTagsAreAppendOnly(t *testing.T) {
	p := NewPlayer(gamemap.Cell{})
	assert.False(t, p.HasTag(component.OpenedDoor))

	p.GiveTag(component.OpenedDoor)
	p.GiveTag(component.OpenedDoor)

	assert.True(t, p.HasTag(component.OpenedDoor))
	assert.Len(t, p.Tags, 2, "duplicates are kept")
}

func TestPlayerTeleport(t *testing.T) {
	p := NewPlayer(gamemap.Cell{X: 1, Y: 1})
	p.State = Moving
	p.Teleport(gamemap.Cell{X: 4, Y: 4})
	assert.Equal(t, Idle, p.State)
	assert.True(t, p.Settled())
	assert.Equal(t, gamemap.Cell{X: 4, Y: 4}, p.Cell)
}
