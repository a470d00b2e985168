package component

import "github.com/gdamore/tcell/v2"

// Renderable holds how an entity is drawn. Over entities are drawn after the
// player, on top of the world foreground.
type Renderable struct {
	FGColor tcell.Color
	Over    bool
}
