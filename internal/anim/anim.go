// Package anim holds the frame-timed glyph animations used by every entity.
//
// A Set groups the named clips (tags) of one entity kind. Characters refer to
// their set by Kind and to a clip by index, so the Library stays owned by the
// caller and entities never hold pointers into it.
package anim

import (
	"errors"
	"fmt"
)

var (
	// ErrZeroDuration rejects clips that could never advance.
	ErrZeroDuration = errors.New("clip total duration is zero")
	// ErrUnknownClip is returned when a clip name is not part of a set.
	ErrUnknownClip = errors.New("unknown animation clip")
	// ErrUnknownKind is returned when no set is registered for a kind.
	ErrUnknownKind = errors.New("unknown animation kind")
)

// Kind names the animation set of one entity archetype.
type Kind string

// Frame is one glyph shown for DurationMS milliseconds.
type Frame struct {
	Glyph      string
	DurationMS uint32
}

// F is shorthand for authoring frames.
func F(glyph string, ms uint32) Frame { return Frame{Glyph: glyph, DurationMS: ms} }

// Clip is a named sequence of frames.
type Clip struct {
	Name    string
	Frames  []Frame
	TotalMS uint32
}

// NewClip builds a clip and totals its frame durations.
func NewClip(name string, frames ...Frame) Clip {
	c := Clip{Name: name, Frames: frames}
	for _, f := range frames {
		c.TotalMS += f.DurationMS
	}
	return c
}

// FrameAt returns the frame shown ms milliseconds into the clip. Time wraps
// around the clip length, so looping clips need no special casing.
func (c *Clip) FrameAt(ms uint32) Frame {
	ms %= c.TotalMS
	for _, f := range c.Frames {
		if ms < f.DurationMS {
			return f
		}
		ms -= f.DurationMS
	}
	// unreachable for a validated clip
	return c.Frames[len(c.Frames)-1]
}

// Last returns the terminal frame of the clip.
func (c *Clip) Last() Frame { return c.Frames[len(c.Frames)-1] }

// Set is the validated clip collection of one Kind.
type Set struct {
	Kind  Kind
	Clips []Clip
	index map[string]int
}

// NewSet validates clips and indexes them by name. Clip order is preserved,
// index 0 is the clip an entity starts with.
func NewSet(kind Kind, clips ...Clip) (*Set, error) {
	if len(clips) == 0 {
		return nil, fmt.Errorf("anim set %q: no clips", kind)
	}
	s := &Set{Kind: kind, Clips: clips, index: make(map[string]int, len(clips))}
	for i, c := range clips {
		if len(c.Frames) == 0 || c.TotalMS == 0 {
			return nil, fmt.Errorf("anim set %q clip %q: %w", kind, c.Name, ErrZeroDuration)
		}
		if _, dup := s.index[c.Name]; dup {
			return nil, fmt.Errorf("anim set %q: duplicate clip %q", kind, c.Name)
		}
		s.index[c.Name] = i
	}
	return s, nil
}

// Index resolves a clip name.
func (s *Set) Index(name string) (int, bool) {
	i, ok := s.index[name]
	return i, ok
}

// MustIndex resolves a clip name and panics when it is missing. Scripts are
// validated at construction, so a miss here is an authoring bug.
func (s *Set) MustIndex(name string) int {
	i, ok := s.index[name]
	if !ok {
		panic(fmt.Sprintf("anim set %q: %v: %q", s.Kind, ErrUnknownClip, name))
	}
	return i
}

// Clip returns the clip at index i.
func (s *Set) Clip(i int) *Clip {
	return &s.Clips[i]
}

// Library maps each Kind to its Set.
type Library map[Kind]*Set

// NewLibrary indexes sets by kind.
func NewLibrary(sets ...*Set) (Library, error) {
	lib := make(Library, len(sets))
	for _, s := range sets {
		if _, dup := lib[s.Kind]; dup {
			return nil, fmt.Errorf("anim library: duplicate kind %q", s.Kind)
		}
		lib[s.Kind] = s
	}
	return lib, nil
}

// Lookup returns the set registered for kind.
func (l Library) Lookup(kind Kind) (*Set, error) {
	s, ok := l[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return s, nil
}

// Set returns the set for kind and panics if none is registered.
func (l Library) Set(kind Kind) *Set {
	s, err := l.Lookup(kind)
	if err != nil {
		panic(err)
	}
	return s
}

// DurationMS returns the total length of the named clip of kind.
func (l Library) DurationMS(kind Kind, clip string) (uint32, error) {
	c, err := l.clip(kind, clip)
	if err != nil {
		return 0, err
	}
	return c.TotalMS, nil
}

// FrameAt returns the frame of the named clip of kind at ms.
func (l Library) FrameAt(kind Kind, clip string, ms uint32) (Frame, error) {
	c, err := l.clip(kind, clip)
	if err != nil {
		return Frame{}, err
	}
	return c.FrameAt(ms), nil
}

func (l Library) clip(kind Kind, name string) (*Clip, error) {
	s, err := l.Lookup(kind)
	if err != nil {
		return nil, err
	}
	i, ok := s.Index(name)
	if !ok {
		return nil, fmt.Errorf("anim set %q: %w: %q", kind, ErrUnknownClip, name)
	}
	return s.Clip(i), nil
}
