package game

import (
	"time"
	"winternight/internal/logger"
	"winternight/internal/render"

	"github.com/gdamore/tcell/v2"
)

// maxDT caps a frame's delta so a stalled terminal does not teleport
// anything.
const maxDT = 0.1

// Run drives the session on screen until the player quits or the screen
// closes. Events are read on their own goroutine; all game state is touched
// only from this one.
func (g *Game) Run(screen tcell.Screen) error {
	events := make(chan tcell.Event, 32)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(screen, events, done)

	r := render.NewRenderer(screen)
	in := newInputState(g.cfg.KeyHold)
	ticker := time.NewTicker(time.Second / time.Duration(g.cfg.FPS))
	defer ticker.Stop()
	defer g.finish()

	last := time.Now()
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
				r.Resize()
			case *tcell.EventKey:
				if in.press(ev, time.Now()) {
					g.logger.Info("quit requested", "frames", g.frames)
					return nil
				}
			}
		case now := <-ticker.C:
			dt := min(now.Sub(last).Seconds(), maxDT)
			last = now
			f := g.Update(in.sample(now, dt))
			r.Draw(g.scene.Map, g.view(f))
		}
	}
}

// pollEvents forwards screen events until the screen closes or done is
// closed.
func pollEvents(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	defer close(events)
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// finish records the run log when enabled.
func (g *Game) finish() {
	rl := g.RunLog()
	g.logger.Info("session ended", "frames", rl.Frames, "seconds", rl.Seconds, "finished", rl.Finished)
	if g.cfg.RunLog {
		rl.Timestamp = time.Now()
		if err := appendRunLog(rl); err != nil {
			logger.WithError(g.logger, err).Warn("run log not saved")
		}
	}
}

// view converts a Frame into the renderer's input.
func (g *Game) view(f Frame) render.View {
	v := render.View{
		Focus:   f.Focus,
		Tooltip: f.Tooltip,
		Tags:    f.Tags,
	}
	for _, s := range f.Sprites {
		v.Sprites = append(v.Sprites, render.Sprite{Glyph: s.Glyph, At: s.At, Color: s.Color, Name: s.Name, Player: s.Player})
	}
	if f.Dialogue != nil {
		v.Dialogue = &render.Dialogue{Text: f.Dialogue.Text, Speaker: f.Dialogue.Speaker}
	}
	if f.Screen != nil {
		v.Overlay = &render.Overlay{Title: f.Screen.Title, Body: f.Screen.Body}
	}
	return v
}
