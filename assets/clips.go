package assets

import (
	"fmt"
	"winternight/internal/anim"
)

// Animation set keys.
const (
	KindPlayer anim.Kind = "player"
	KindDoor   anim.Kind = "door"
	KindFerret anim.Kind = "ferret"
	KindHearth anim.Kind = "hearth"
	KindFamily anim.Kind = "family"
)

// walk builds the four directional walk clips from a standing and a
// stepping glyph.
func walk(stand, stride string, ms uint32) []anim.Clip {
	clips := make([]anim.Clip, 0, 4)
	for _, dir := range []string{"left", "right", "up", "down"} {
		clips = append(clips, anim.NewClip(dir, anim.F(stand, ms), anim.F(stride, ms)))
	}
	return clips
}

// Clips builds the animation library for every character in the scene.
func Clips() (anim.Library, error) {
	type def struct {
		kind  anim.Kind
		clips []anim.Clip
	}
	defs := []def{
		{KindPlayer, walk("🧑", "🚶", 125)},
		{KindDoor, []anim.Clip{
			anim.NewClip("closed", anim.F("🚪", 1000)),
			anim.NewClip("open", anim.F("🚪", 150), anim.F("▐", 150), anim.F("▕", 150)),
			anim.NewClip("shut", anim.F("▕", 150), anim.F("▐", 150), anim.F("🚪", 150)),
		}},
		{KindFerret, append(walk("🦦", "🦦", 200), anim.NewClip("sit", anim.F("🦦", 600), anim.F("💤", 600)))},
		{KindHearth, []anim.Clip{
			anim.NewClip("cold", anim.F("🪵", 1000)),
			anim.NewClip("burning", anim.F("🔥", 180), anim.F("♨️", 120), anim.F("🔥", 220)),
		}},
		{KindFamily, walk("🐾", "🦦", 200)},
	}

	sets := make([]*anim.Set, 0, len(defs))
	for _, d := range defs {
		s, err := anim.NewSet(d.kind, d.clips...)
		if err != nil {
			return nil, fmt.Errorf("clips: %w", err)
		}
		sets = append(sets, s)
	}
	return anim.NewLibrary(sets...)
}
