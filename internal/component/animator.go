package component

import "winternight/internal/anim"

// Animator is the playback state of an entity's current clip. Kind keys into
// the caller-owned anim.Library; Index selects the clip within that set.
type Animator struct {
	Kind    anim.Kind
	Index   int
	Playing bool
	Time    float64 // seconds into the clip
}

// TimeMS returns the elapsed clip time in whole milliseconds.
func (a Animator) TimeMS() uint32 {
	if a.Time <= 0 {
		return 0
	}
	// absorb float error so SetTimeMS(n) reads back as n
	return uint32(a.Time*1000 + 1e-6)
}

// SetTimeMS positions the clip at ms milliseconds.
func (a *Animator) SetTimeMS(ms uint32) { a.Time = float64(ms) / 1000 }
