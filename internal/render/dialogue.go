package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"
)

const (
	maxBoxWidth = 64
	confirmHint = "[E] continue"
)

var (
	boxStyle     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)
	speakerStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorNavy).Bold(true)
	hintStyle    = tcell.StyleDefault.Foreground(tcell.ColorGray).Background(tcell.ColorNavy)
)

// wrap word-wraps text to width and splits it into lines.
func wrap(text string, width int) []string {
	return strings.Split(wordwrap.String(text, max(width, 1)), "\n")
}

// drawDialogue draws the box at the bottom of the map view, above the
// tooltip row, with the speaker on the top border.
func (r *Renderer) drawDialogue(d Dialogue) {
	screenW, screenH := r.screen.Size()
	boxW := min(screenW-2, maxBoxWidth)
	lines := wrap(d.Text, boxW-4)
	boxH := len(lines) + 3
	x0 := (screenW - boxW) / 2
	y0 := max(screenH-hudRows-1-boxH, 0)

	r.fill(x0, y0, x0+boxW, y0+boxH, boxStyle)
	r.drawBorder(x0, y0, boxW, boxH, boxStyle)
	if d.Speaker != "" {
		col := r.drawText(x0+2, y0, "┤ ", boxStyle)
		col = r.drawText(col, y0, d.Speaker, speakerStyle)
		r.drawText(col, y0, " ├", boxStyle)
	}
	for i, line := range lines {
		r.drawText(x0+2, y0+1+i, line, boxStyle)
	}
	r.drawText(x0+boxW-2-runewidth.StringWidth(confirmHint), y0+boxH-2, confirmHint, hintStyle)
}

// drawTooltip centres a one-line prompt just above the journal.
func (r *Renderer) drawTooltip(text string) {
	screenW, screenH := r.screen.Size()
	label := " " + text + " "
	x := max((screenW-runewidth.StringWidth(label))/2, 0)
	r.drawText(x, screenH-hudRows-1, label, tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorLightYellow))
}

// drawOverlay fills the screen with a title card.
func (r *Renderer) drawOverlay(o Overlay) {
	screenW, screenH := r.screen.Size()
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	r.fill(0, 0, screenW, screenH, style)

	y := screenH / 3
	r.drawCentered(y, o.Title, style.Bold(true))
	for i, line := range wrap(o.Body, min(screenW-8, maxBoxWidth)) {
		r.drawCentered(y+2+i, line, style)
	}
	r.drawCentered(screenH-2, confirmHint, style.Foreground(tcell.ColorGray))
}

func (r *Renderer) drawCentered(y int, text string, style tcell.Style) {
	screenW, _ := r.screen.Size()
	r.drawText(max((screenW-runewidth.StringWidth(text))/2, 0), y, text, style)
}

func (r *Renderer) drawBorder(x0, y0, w, h int, style tcell.Style) {
	x1, y1 := x0+w-1, y0+h-1
	for x := x0 + 1; x < x1; x++ {
		r.screen.SetContent(x, y0, '─', nil, style)
		r.screen.SetContent(x, y1, '─', nil, style)
	}
	for y := y0 + 1; y < y1; y++ {
		r.screen.SetContent(x0, y, '│', nil, style)
		r.screen.SetContent(x1, y, '│', nil, style)
	}
	r.screen.SetContent(x0, y0, '╭', nil, style)
	r.screen.SetContent(x1, y0, '╮', nil, style)
	r.screen.SetContent(x0, y1, '╰', nil, style)
	r.screen.SetContent(x1, y1, '╯', nil, style)
}
