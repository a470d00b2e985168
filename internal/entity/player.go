package entity

import (
	"slices"
	"winternight/internal/component"
	"winternight/internal/gamemap"
)

// PlayerState is the player controller's state.
type PlayerState uint8

const (
	Idle PlayerState = iota
	Moving
)

func (s PlayerState) String() string {
	if s == Moving {
		return "moving"
	}
	return "idle"
}

// Player is the single player-controlled entity.
type Player struct {
	component.Position
	Facing component.Direction
	State  PlayerState
	Time   float64 // seconds since the session started, drives the walk cycle
	Tags   []component.Tag
}

// NewPlayer places an idle player on cell.
func NewPlayer(cell gamemap.Cell) *Player {
	return &Player{Position: component.At(cell), Facing: component.Left}
}

// HasTag reports whether t appears anywhere in the player's tags.
func (p *Player) HasTag(t component.Tag) bool {
	return slices.Contains(p.Tags, t)
}

// GiveTag appends t. Tags are never removed and duplicates are kept.
func (p *Player) GiveTag(t component.Tag) {
	p.Tags = append(p.Tags, t)
}

// Teleport snaps the player to cell and ends any step in progress.
func (p *Player) Teleport(cell gamemap.Cell) {
	p.Position = component.At(cell)
	p.State = Idle
}
