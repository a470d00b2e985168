// Package render draws game frames onto a tcell screen: the map, sprites,
// the dialogue box, the tooltip, full-screen overlays and the journal.
package render

import (
	"winternight/internal/component"
	"winternight/internal/gamemap"
	"winternight/internal/geom"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// hudRows is the number of rows reserved at the bottom for the journal.
const hudRows = 2

// Sprite is a glyph at a continuous draw position.
type Sprite struct {
	Glyph  string
	At     geom.Vec
	Color  tcell.Color
	Name   string
	Player bool
}

// Dialogue is the text box with an optional speaker nameplate.
type Dialogue struct {
	Text    string
	Speaker string
}

// Overlay is a full-screen interstitial.
type Overlay struct {
	Title string
	Body  string
}

// View is everything drawn in one frame.
type View struct {
	Sprites  []Sprite // in draw order
	Focus    geom.Vec
	Dialogue *Dialogue
	Tooltip  string
	Overlay  *Overlay
	Tags     []component.Tag
}

// Renderer draws the game world onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
	theme  TileTheme
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	r := &Renderer{screen: screen, theme: NightTheme}
	r.Resize()
	return r
}

// Resize refits the camera to the screen size.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.camera = NewCamera(gamemap.Cell{}, w, max(h-hudRows, 1))
}

// Draw renders one frame and shows it.
func (r *Renderer) Draw(gmap *gamemap.GameMap, v View) {
	r.screen.Clear()
	defer r.screen.Show()

	if v.Overlay != nil {
		r.drawOverlay(*v.Overlay)
		return
	}
	r.camera.Center(gamemap.CellAt(v.Focus))
	r.drawMap(gmap)
	r.drawSprites(v.Sprites)
	r.drawHUD(v.Tags)
	if v.Tooltip != "" {
		r.drawTooltip(v.Tooltip)
	}
	if v.Dialogue != nil {
		r.drawDialogue(*v.Dialogue)
	}
}

func (r *Renderer) drawMap(gmap *gamemap.GameMap) {
	for y := 0; y < gmap.Height; y++ {
		for x := 0; x < gmap.Width; x++ {
			c := gamemap.Cell{X: x, Y: y}
			sx, sy, onScreen := r.camera.WorldToScreen(c)
			if !onScreen {
				continue
			}
			g := r.theme.glyph(gmap.At(c).Kind)
			r.putGlyph(sx, sy, g.Glyph, tcell.StyleDefault.Foreground(g.FG).Background(tcell.ColorBlack))
		}
	}
}

// drawSprites draws each sprite on the cell nearest its draw position, in
// order, so later sprites cover earlier ones.
func (r *Renderer) drawSprites(sprites []Sprite) {
	for _, s := range sprites {
		sx, sy, onScreen := r.camera.WorldToScreen(gamemap.CellAt(s.At))
		if !onScreen {
			continue
		}
		style := tcell.StyleDefault.Foreground(s.Color).Background(tcell.ColorBlack)
		r.putGlyph(sx, sy, s.Glyph, style)
	}
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen
// position (x, y), always covering two columns.
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	mainc := runes[0]
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, mainc, combc, style)
	if runewidth.StringWidth(glyph) < 2 {
		// Fill the second column so narrow glyphs keep the grid square.
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}

// drawText writes text from (x, y) and returns the column after it.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) int {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += max(runewidth.RuneWidth(ch), 1)
	}
	return col
}

func (r *Renderer) fill(x0, y0, x1, y1 int, style tcell.Style) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}
