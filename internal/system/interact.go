package system

import (
	"winternight/internal/entity"
	"winternight/internal/script"
)

// AnyInteracting returns the index of the first character that is showing
// its interact message or waiting on a Dialogue step. While one exists the
// player does not move.
func AnyInteracting(chars []*entity.Character) (int, bool) {
	for i, c := range chars {
		if c.Talk.Interacting {
			return i, true
		}
		if _, ok := c.Step().When.(script.Dialogue); ok {
			return i, true
		}
	}
	return -1, false
}
