// Package factory builds the scene's archetypes. Every constructor returns a
// fresh value with its script validated against the character's animation
// set, so a misspelled clip name fails at startup rather than mid-scene.
package factory

import (
	"fmt"
	"winternight/assets"
	"winternight/internal/anim"
	"winternight/internal/component"
	"winternight/internal/entity"
	"winternight/internal/gamemap"
	"winternight/internal/script"

	"github.com/gdamore/tcell/v2"
)

// Scene is what the archetypes are placed into.
type Scene struct {
	Map   *gamemap.GameMap
	Anims anim.Library
}

// Archetype builds one character for a scene.
type Archetype func(Scene) (*entity.Character, error)

// Archetypes lists the scene's characters in update order. Order matters: a
// tag granted by an earlier character is visible to later ones in the same
// frame.
var Archetypes = []Archetype{NewDoor, NewFerret, NewHearth, NewFamily}

// Cast builds every archetype in update order.
func Cast(s Scene) ([]*entity.Character, error) {
	chars := make([]*entity.Character, 0, len(Archetypes))
	for _, build := range Archetypes {
		c, err := build(s)
		if err != nil {
			return nil, err
		}
		chars = append(chars, c)
	}
	return chars, nil
}

// NewPlayer places the player on the player marker.
func NewPlayer(s Scene) (*entity.Player, error) {
	at, err := s.Map.FindTile(assets.MarkerPlayer)
	if err != nil {
		return nil, fmt.Errorf("player: %w", err)
	}
	if _, err := s.Anims.Lookup(assets.KindPlayer); err != nil {
		return nil, fmt.Errorf("player: %w", err)
	}
	return entity.NewPlayer(at), nil
}

// character resolves the marker and initial clip and validates steps.
func (s Scene) character(name string, kind anim.Kind, clip string, marker rune, steps script.Script) (*entity.Character, error) {
	at, err := s.Map.FindTile(marker)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	set, err := s.Anims.Lookup(kind)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	idx, ok := set.Index(clip)
	if !ok {
		return nil, fmt.Errorf("%s: initial clip %q: %w", name, clip, anim.ErrUnknownClip)
	}
	if err := steps.Validate(set); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	c := &entity.Character{
		Name:       name,
		Script:     steps,
		Anim:       component.Animator{Kind: kind, Index: idx},
		Facing:     component.Down,
		Render:     component.Renderable{FGColor: tcell.ColorWhite},
		Collidable: true,
	}
	c.Position = component.At(at)
	return c, nil
}

// marker looks up a cell that a script refers to.
func (s Scene) marker(name string, id rune) (gamemap.Cell, error) {
	c, err := s.Map.FindTile(id)
	if err != nil {
		return gamemap.NoCell, fmt.Errorf("%s: %w", name, err)
	}
	return c, nil
}

func on(when script.Condition, do script.Action) script.Step {
	return script.Step{When: when, Do: do}
}
