// Package game owns a running scene. Update advances it by exactly one frame
// in a fixed order; Run drives Update from a terminal.
package game

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"winternight/assets"
	"winternight/internal/anim"
	"winternight/internal/component"
	"winternight/internal/config"
	"winternight/internal/entity"
	"winternight/internal/factory"
	"winternight/internal/gamemap"
	"winternight/internal/geom"
	"winternight/internal/logger"
	"winternight/internal/script"
	"winternight/internal/system"

	"github.com/gdamore/tcell/v2"
)

// ErrUnknownScreen is returned when a script shows a screen that does not
// exist.
var ErrUnknownScreen = errors.New("unknown screen")

// Scene is a loaded world ready to play.
type Scene struct {
	Map        *gamemap.GameMap
	Anims      anim.Library
	Player     *entity.Player
	PlayerKind anim.Kind
	Chars      []*entity.Character // update order
	Screens    []assets.Screen
}

// LoadScene builds the cabin from the compiled-in assets.
func LoadScene() (Scene, error) {
	gmap, err := assets.LoadMap()
	if err != nil {
		return Scene{}, fmt.Errorf("load map: %w", err)
	}
	lib, err := assets.Clips()
	if err != nil {
		return Scene{}, fmt.Errorf("load clips: %w", err)
	}
	fs := factory.Scene{Map: gmap, Anims: lib}
	player, err := factory.NewPlayer(fs)
	if err != nil {
		return Scene{}, err
	}
	chars, err := factory.Cast(fs)
	if err != nil {
		return Scene{}, err
	}
	s := Scene{
		Map:        gmap,
		Anims:      lib,
		Player:     player,
		PlayerKind: assets.KindPlayer,
		Chars:      chars,
		Screens:    assets.Screens,
	}
	return s, s.Validate()
}

// Validate checks the references that cross package lines: screen indices
// used by scripts and the player's directional clips.
func (s Scene) Validate() error {
	for _, c := range s.Chars {
		for i, st := range c.Script {
			if show, ok := st.Do.(script.ShowScreen); ok && show.Index >= len(s.Screens) {
				return fmt.Errorf("%s step %d: screen %d: %w", c.Name, i, show.Index, ErrUnknownScreen)
			}
		}
	}
	set, err := s.Anims.Lookup(s.PlayerKind)
	if err != nil {
		return fmt.Errorf("player: %w", err)
	}
	for _, d := range []component.Direction{component.Left, component.Right, component.Up, component.Down} {
		if _, ok := set.Index(d.Name()); !ok {
			return fmt.Errorf("player clip %q: %w", d.Name(), anim.ErrUnknownClip)
		}
	}
	return nil
}

// Sprite is one glyph to draw this frame.
type Sprite struct {
	Glyph  string
	At     geom.Vec // draw position in pixels
	Color  tcell.Color
	Name   string
	Player bool
}

// Frame is everything the renderer needs for one frame.
type Frame struct {
	Sprites  []Sprite // in draw order
	Screen   *assets.Screen
	Dialogue *system.DialogueBox
	Tooltip  string
	Focus    geom.Vec
	Tags     []component.Tag
}

// Game is the top-level orchestrator of one session.
type Game struct {
	cfg      config.Config
	logger   *slog.Logger
	runID    string
	scene    Scene
	env      system.Env
	overlay  system.Screen
	lastMove []system.MoveResult
	frames   int
	elapsed  float64
}

// New starts a session on scene.
func New(cfg config.Config, l *slog.Logger, scene Scene) *Game {
	l, runID := logger.WithRunID(l)
	g := &Game{
		cfg:      cfg,
		logger:   l,
		runID:    runID,
		scene:    scene,
		lastMove: make([]system.MoveResult, len(scene.Chars)),
	}
	g.env = system.Env{
		Tuning: system.Tuning{
			MoveTime:       cfg.MoveTime,
			FastMoveTime:   cfg.FastMoveTime,
			InteractRadius: cfg.InteractRadius,
			FastMove:       cfg.FastMove,
		},
		Player: scene.Player,
		Anims:  scene.Anims,
		UI:     &system.UI{},
		Screen: &g.overlay,
	}
	l.Info("scene loaded", "characters", len(scene.Chars), "map", fmt.Sprintf("%dx%d", scene.Map.Width, scene.Map.Height))
	return g
}

// Player returns the session's player.
func (g *Game) Player() *entity.Player { return g.scene.Player }

// Characters returns the scripted characters in update order.
func (g *Game) Characters() []*entity.Character { return g.scene.Chars }

// Map returns the scene's map.
func (g *Game) Map() *gamemap.GameMap { return g.scene.Map }

// Update advances the session by one frame:
//
//  1. a visible overlay absorbs the frame; confirm dismisses it once its
//     hold time has passed
//  2. the interaction gate is sampled
//  3. the player controller runs
//  4. each character moves and then runs its script, in slice order
//  5. sprites are assembled
func (g *Game) Update(in system.Input) Frame {
	g.frames++
	g.elapsed += in.DT
	g.env.Input = in
	g.env.UI = &system.UI{}

	if g.overlay.Shown {
		g.overlay.Elapsed += in.DT
		if in.Confirm && g.overlay.Elapsed >= g.scene.Screens[g.overlay.Index].Hold {
			g.overlay.Hide()
			g.logger.Info("screen dismissed", "screen", g.overlay.Index)
		}
		return g.frame()
	}

	_, gated := system.AnyInteracting(g.scene.Chars)
	res, bumped := system.UpdatePlayer(&g.env, g.scene.Map, g.scene.Chars, gated)
	if res == system.MoveInteract {
		g.logger.Debug("interaction started", "character", g.scene.Chars[bumped].Name)
	}

	for i, c := range g.scene.Chars {
		mv := system.UpdateMovement(&g.env, g.scene.Map, c)
		if mv == system.MoveNoPath && g.lastMove[i] != system.MoveNoPath {
			g.logger.Debug("no path, waiting", "character", c.Name, "from", c.Cell, "goal", c.Move.Goal)
		}
		g.lastMove[i] = mv

		wasShown := g.overlay.Shown
		adv, ok := system.RunScript(&g.env, c)
		if !ok {
			continue
		}
		g.logger.Debug("script step",
			"character", adv.Character,
			"step", adv.Index,
			"when", script.Describe(adv.Step.When),
			"do", script.Describe(adv.Step.Do),
			"frame", g.frames,
		)
		if g.overlay.Shown && !wasShown {
			g.logger.Info("screen shown", "screen", g.overlay.Index, "by", adv.Character)
		}
	}
	return g.frame()
}

// RunLog summarises the session so far.
func (g *Game) RunLog() RunLog {
	p := g.scene.Player
	rl := RunLog{
		RunID:    g.runID,
		Frames:   g.frames,
		Seconds:  g.elapsed,
		Tags:     make([]string, 0, len(p.Tags)),
		Cursors:  make(map[string]int, len(g.scene.Chars)),
		Finished: p.HasTag(component.FamilyArrived),
	}
	for _, t := range p.Tags {
		rl.Tags = append(rl.Tags, t.String())
	}
	for _, c := range g.scene.Chars {
		rl.Cursors[c.Name] = c.Cursor
	}
	return rl
}

func (g *Game) frame() Frame {
	f := Frame{
		Sprites:  g.sprites(),
		Dialogue: g.env.UI.Dialogue,
		Tooltip:  g.env.UI.Tooltip,
		Focus:    g.scene.Player.Draw,
		Tags:     slices.Clone(g.scene.Player.Tags),
	}
	if g.overlay.Shown {
		s := g.scene.Screens[g.overlay.Index]
		f.Screen = &s
	}
	return f
}

// sprites orders characters under the player first, then the player, then
// characters drawn over it.
func (g *Game) sprites() []Sprite {
	out := make([]Sprite, 0, len(g.scene.Chars)+1)
	var over []Sprite
	for _, c := range g.scene.Chars {
		clip := g.scene.Anims.Set(c.Anim.Kind).Clip(c.Anim.Index)
		s := Sprite{
			Glyph: clip.FrameAt(c.Anim.TimeMS()).Glyph,
			At:    c.Draw,
			Color: c.Render.FGColor,
			Name:  c.Name,
		}
		if c.Render.Over {
			over = append(over, s)
		} else {
			out = append(out, s)
		}
	}
	out = append(out, g.playerSprite())
	return append(out, over...)
}

// playerSprite shows the walk cycle while moving and the first frame at rest.
func (g *Game) playerSprite() Sprite {
	p := g.scene.Player
	set := g.scene.Anims.Set(g.scene.PlayerKind)
	clip := set.Clip(set.MustIndex(p.Facing.Name()))
	var ms uint32
	if p.State == entity.Moving {
		ms = uint32(p.Time * 1000)
	}
	return Sprite{Glyph: clip.FrameAt(ms).Glyph, At: p.Draw, Color: tcell.ColorWhite, Player: true}
}
