package anim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doorSet(t *testing.T) *Set {
	t.Helper()
	s, err := NewSet("door",
		NewClip("open", F("closed", 100), F("ajar", 100), F("open", 200)),
		NewClip("shut", F("closed", 50)),
	)
	require.NoError(t, err)
	return s
}

func TestNewClipTotalsDurations(t *testing.T) {
	c := NewClip("walk", F("a", 120), F("b", 80))
	assert.Equal(t, uint32(200), c.TotalMS)
}

func TestFrameAt(t *testing.T) {
	s := doorSet(t)
	c := s.Clip(s.MustIndex("open"))
	cases := []struct {
		ms   uint32
		want string
	}{
		{0, "closed"},
		{99, "closed"},
		{100, "ajar"},
		{250, "open"},
		{399, "open"},
		{400, "closed"}, // wraps
		{500, "ajar"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, c.FrameAt(tc.ms).Glyph, "FrameAt(%d)", tc.ms)
	}
	assert.Equal(t, c.Last(), c.FrameAt(c.TotalMS-1))
}

func TestNewSetRejectsZeroDuration(t *testing.T) {
	cases := []struct {
		name string
		clip Clip
	}{
		{"no frames", NewClip("empty")},
		{"zero length frames", NewClip("still", F("a", 0), F("b", 0))},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewSet("broken", tc.clip)
			assert.ErrorIs(t, err, ErrZeroDuration)
		})
	}
}

func TestNewSetRejectsDuplicates(t *testing.T) {
	_, err := NewSet("dup", NewClip("a", F("x", 1)), NewClip("a", F("y", 1)))
	assert.Error(t, err)

	_, err = NewSet("none")
	assert.Error(t, err)
}

func TestMustIndexPanicsOnUnknownClip(t *testing.T) {
	s := doorSet(t)
	assert.Equal(t, 1, s.MustIndex("shut"))
	assert.Panics(t, func() { s.MustIndex("dance") })
}

func TestLibraryLookups(t *testing.T) {
	lib, err := NewLibrary(doorSet(t))
	require.NoError(t, err)

	d, err := lib.DurationMS("door", "open")
	require.NoError(t, err)
	assert.Equal(t, uint32(400), d)

	f, err := lib.FrameAt("door", "open", 150)
	require.NoError(t, err)
	assert.Equal(t, "ajar", f.Glyph)

	_, err = lib.DurationMS("door", "dance")
	assert.ErrorIs(t, err, ErrUnknownClip)

	_, err = lib.FrameAt("ghost", "open", 0)
	assert.ErrorIs(t, err, ErrUnknownKind)
	assert.Panics(t, func() { lib.Set("ghost") })

	_, err = NewLibrary(doorSet(t), doorSet(t))
	assert.Error(t, err)
}
