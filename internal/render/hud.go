package render

import (
	"strings"
	"unicode"
	"winternight/internal/component"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// drawHUD renders the separator and the journal of story tags at the bottom
// of the screen.
func (r *Renderer) drawHUD(tags []component.Tag) {
	_, screenH := r.screen.Size()
	hudY := screenH - hudRows

	r.drawHLine(hudY, tcell.ColorGray)
	x := r.drawText(0, hudY+1, "Journal: ", tcell.StyleDefault.Foreground(tcell.ColorWhite))
	r.drawText(x, hudY+1, Journal(tags), tcell.StyleDefault.Foreground(tcell.ColorLightYellow))
}

// Journal renders tags as readable labels, skipping repeats.
func Journal(tags []component.Tag) string {
	if len(tags) == 0 {
		return "-"
	}
	seen := make(map[component.Tag]bool, len(tags))
	labels := make([]string, 0, len(tags))
	for _, t := range tags {
		if seen[t] {
			continue
		}
		seen[t] = true
		labels = append(labels, journalLabel(t))
	}
	return strings.Join(labels, " · ")
}

// journalLabel turns "FamilyShouldArrive" into "Family Should Arrive".
func journalLabel(t component.Tag) string {
	var b strings.Builder
	for i, ch := range t.String() {
		if i > 0 && unicode.IsUpper(ch) {
			b.WriteByte(' ')
		}
		b.WriteRune(ch)
	}
	return cases.Title(language.English).String(strings.ToLower(b.String()))
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}
