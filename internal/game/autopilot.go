package game

import (
	"errors"
	"fmt"
	"strconv"
	"unicode"
	"winternight/internal/component"
	"winternight/internal/entity"
	"winternight/internal/system"
)

// ErrBadProgram is returned by ParseAutopilot for malformed programs.
var ErrBadProgram = errors.New("bad autopilot program")

// DefaultProgram walks the player to the door, out of the ferret's way and
// over to the hearth. With confirm held the rest of the night plays out.
const DefaultProgram = "100. 3l d e 3r 600. 4l 4u"

// Autopilot replays a fixed input program for headless runs. A program is a
// sequence of ops, each an optional repeat count and one of:
//
//	l r u d  step one cell in that direction
//	e        press confirm for one frame
//	.        wait one frame
//
// Whitespace is ignored. When Confirm is set every frame that is not a step
// presses confirm, which answers dialogue and dismisses overlays.
type Autopilot struct {
	Confirm  bool
	ops      []op
	pos      int
	stepping bool
}

type op struct {
	code rune
	n    int
}

// ParseAutopilot compiles program.
func ParseAutopilot(program string, confirm bool) (*Autopilot, error) {
	a := &Autopilot{Confirm: confirm}
	count := ""
	for i, r := range program {
		switch {
		case unicode.IsSpace(r):
			if count != "" {
				return nil, fmt.Errorf("%w: count without op at %d", ErrBadProgram, i)
			}
		case unicode.IsDigit(r):
			count += string(r)
		case r == 'l' || r == 'r' || r == 'u' || r == 'd' || r == 'e' || r == '.':
			n := 1
			if count != "" {
				var err error
				if n, err = strconv.Atoi(count); err != nil || n == 0 {
					return nil, fmt.Errorf("%w: count %q at %d", ErrBadProgram, count, i)
				}
				count = ""
			}
			a.ops = append(a.ops, op{code: r, n: n})
		default:
			return nil, fmt.Errorf("%w: unknown op %q at %d", ErrBadProgram, r, i)
		}
	}
	if count != "" {
		return nil, fmt.Errorf("%w: trailing count %q", ErrBadProgram, count)
	}
	return a, nil
}

// Done reports whether the program has run out.
func (a *Autopilot) Done() bool { return a.pos >= len(a.ops) }

// Next returns the input for the coming frame. A step op holds its direction
// until the player has started and finished one move; a step that cannot
// start (wall, gate, overlay) is dropped after one frame.
func (a *Autopilot) Next(p *entity.Player, dt float64) system.Input {
	in := system.Input{DT: dt, Confirm: a.Confirm}
	for !a.Done() {
		o := &a.ops[a.pos]
		switch o.code {
		case 'e':
			in.Confirm = true
			a.consume(o)
			return in
		case '.':
			a.consume(o)
			return in
		}
		if a.stepping {
			if p.State == entity.Moving {
				in.Confirm = false
				return in
			}
			a.stepping = false
			a.consume(o)
			continue
		}
		a.stepping = true
		in.Axis = stepDirection(o.code).Vec()
		in.Confirm = false
		return in
	}
	return in
}

func (a *Autopilot) consume(o *op) {
	o.n--
	if o.n == 0 {
		a.pos++
	}
}

func stepDirection(code rune) component.Direction {
	switch code {
	case 'r':
		return component.Right
	case 'u':
		return component.Up
	case 'd':
		return component.Down
	}
	return component.Left
}
