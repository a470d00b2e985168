package render

import (
	"winternight/internal/gamemap"

	"github.com/gdamore/tcell/v2"
)

// TileGlyph is how one tile kind is drawn. Emoji carry their own colours;
// single-width glyphs use FG.
type TileGlyph struct {
	Glyph string
	FG    tcell.Color
}

// TileTheme maps tile kinds to glyphs.
type TileTheme map[gamemap.TileKind]TileGlyph

// NightTheme is the cabin at night in a snowstorm.
var NightTheme = TileTheme{
	gamemap.TileWall:   {"🟫", tcell.ColorDefault},
	gamemap.TileFloor:  {"·", tcell.ColorSaddleBrown},
	gamemap.TileRug:    {"▒", tcell.ColorDarkRed},
	gamemap.TileSnow:   {"░", tcell.ColorLightSteelBlue},
	gamemap.TileTree:   {"🌲", tcell.ColorDefault},
	gamemap.TileWindow: {"🪟", tcell.ColorDefault},
}

func (t TileTheme) glyph(kind gamemap.TileKind) TileGlyph {
	if g, ok := t[kind]; ok {
		return g
	}
	return TileGlyph{"?", tcell.ColorRed}
}
