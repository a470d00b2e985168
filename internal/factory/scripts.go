package factory

import (
	"winternight/assets"
	"winternight/internal/component"
	"winternight/internal/entity"
	"winternight/internal/script"

	"github.com/gdamore/tcell/v2"
)

// Speaker names shown on the dialogue nameplate.
const (
	FerretName = "Ferret in a raincoat"
	FamilyName = "Ferret family"
	strangers  = "Small voices"
)

// NewDoor is the cabin door. It raises the title screen, opens when the
// player uses it from inside and shuts again once the family is in.
func NewDoor(s Scene) (*entity.Character, error) {
	at, err := s.marker("door", assets.MarkerDoor)
	if err != nil {
		return nil, err
	}
	inside := at.Add(0, -1)
	c, err := s.character("Door", assets.KindDoor, "closed", assets.MarkerDoor, script.Script{
		on(script.AlwaysChange{}, script.ShowScreen{Index: assets.ScreenIntro}),
		on(script.PlayerInteract{Prompt: "E: open the door", Anchor: inside.Pixel()}, script.ChangeAnimation{Clip: "open"}),
		on(script.AlwaysChange{}, script.SetAnimationTime{Seconds: 0}),
		on(script.AlwaysChange{}, script.SetPlayingAnimation{Playing: true}),
		on(script.AnimationFinish{}, script.SetPlayingAnimation{Playing: false}),
		on(script.AlwaysChange{}, script.SetCollision{On: false}),
		on(script.AlwaysChange{}, script.SetDrawOver{Over: false}),
		on(script.AlwaysChange{}, script.GiveTag{Tag: component.OpenedDoor}),

		on(script.PlayerHasTag{Tag: component.FamilyArrived}, script.ChangeAnimation{Clip: "shut"}),
		on(script.AlwaysChange{}, script.SetAnimationTime{Seconds: 0}),
		on(script.AlwaysChange{}, script.SetPlayingAnimation{Playing: true}),
		on(script.AnimationFinish{}, script.SetPlayingAnimation{Playing: false}),
		on(script.AlwaysChange{}, script.SetCollision{On: true}),
		on(script.AlwaysChange{}, script.SetDrawOver{Over: true}),
		on(script.AlwaysChange{}, script.GiveTag{Tag: component.ClosedDoor}),
	})
	if err != nil {
		return nil, err
	}
	c.Render = component.Renderable{FGColor: tcell.ColorSaddleBrown, Over: true}
	return c, nil
}

// NewFerret is the visitor in the raincoat. It waits outside until the door
// opens, asks to come in, takes the seat by the hearth and asks for a fire.
func NewFerret(s Scene) (*entity.Character, error) {
	seat, err := s.marker("ferret", assets.MarkerSeat)
	if err != nil {
		return nil, err
	}
	c, err := s.character(FerretName, assets.KindFerret, "down", assets.MarkerFerret, script.Script{
		on(script.PlayerHasTag{Tag: component.OpenedDoor}, script.Noop{}),
		on(script.Time{Seconds: 0.8}, script.ChangeAnimation{Clip: "up"}),
		on(script.Dialogue{Text: "Oh! Hello. I saw your light through the snow.", Speaker: FerretName}, script.Noop{}),
		on(script.Dialogue{Text: "May I come in and warm up for a while?", Speaker: FerretName}, script.MoveTo{Cell: seat}),
		on(script.ReachedDestination{}, script.ChangeAnimation{Clip: "sit"}),
		on(script.AlwaysChange{}, script.SetPlayingAnimation{Playing: true}),
		on(script.AlwaysChange{}, script.GiveTag{Tag: component.FerretInside}),
		on(script.AlwaysChange{}, script.SetInteractMessage{Text: "It's so cold in here. Could you light the fire?"}),

		on(script.PlayerHasTag{Tag: component.LightFire}, script.SetInteractMessage{}),
		on(script.Time{Seconds: 1.5}, script.Noop{}),
		on(script.Dialogue{Text: "Thank you. My family is still out there, following my tracks.", Speaker: FerretName}, script.SetInteractMessage{Text: "They should be here soon."}),
		on(script.AlwaysChange{}, script.GiveTag{Tag: component.FamilyShouldArrive}),
	})
	if err != nil {
		return nil, err
	}
	c.Render.FGColor = tcell.ColorYellow
	return c, nil
}

// NewHearth is the fireplace. It can only be lit once the ferret is inside.
func NewHearth(s Scene) (*entity.Character, error) {
	at, err := s.marker("hearth", assets.MarkerHearth)
	if err != nil {
		return nil, err
	}
	c, err := s.character("Hearth", assets.KindHearth, "cold", assets.MarkerHearth, script.Script{
		on(script.PlayerHasTag{Tag: component.FerretInside}, script.Noop{}),
		on(script.PlayerInteract{Prompt: "E: light the fire", Anchor: at.Below().Pixel()}, script.ChangeAnimation{Clip: "burning"}),
		on(script.AlwaysChange{}, script.SetPlayingAnimation{Playing: true}),
		on(script.AlwaysChange{}, script.GiveTag{Tag: component.LightFire}),
	})
	if err != nil {
		return nil, err
	}
	c.Render.FGColor = tcell.ColorOrangeRed
	return c, nil
}

// NewFamily is the ferret's family. They follow the tracks in once the fire
// is lit, and their arrival ends the night.
func NewFamily(s Scene) (*entity.Character, error) {
	entry, err := s.marker("family", assets.MarkerEntry)
	if err != nil {
		return nil, err
	}
	second, err := s.marker("family", assets.MarkerSecondSeat)
	if err != nil {
		return nil, err
	}
	c, err := s.character(strangers, assets.KindFamily, "left", assets.MarkerFamily, script.Script{
		on(script.PlayerHasTag{Tag: component.FamilyShouldArrive}, script.Noop{}),
		on(script.Time{Seconds: 2}, script.ShowScreen{Index: assets.ScreenLater}),
		on(script.AlwaysChange{}, script.MoveTo{Cell: entry}),
		on(script.ReachedDestination{}, script.ChangeAnimation{Clip: "down"}),
		on(script.Dialogue{Text: "We followed the tracks all the way to your light!", Speaker: strangers}, script.SetName{Name: FamilyName}),
		on(script.AlwaysChange{}, script.GiveTag{Tag: component.FamilyArrived}),
		on(script.Time{Seconds: 1.5}, script.TeleportPlayer{Cell: second}),
		on(script.AlwaysChange{}, script.ShowScreen{Index: assets.ScreenEnding}),
		on(script.AlwaysChange{}, script.SetInteractMessage{Text: "Thank you for keeping the light on."}),
	})
	if err != nil {
		return nil, err
	}
	c.Facing = component.Left
	c.Render.FGColor = tcell.ColorLightYellow
	return c, nil
}
