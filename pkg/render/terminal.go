// pkg/render/terminal.go
package render

import (
	"math"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"github.com/splitrock/go-driftfield/pkg/engine"
	"github.com/splitrock/go-driftfield/pkg/input"
)

// headingGlyphs are ship glyphs by facing octant, starting at +X and
// going counter-clockwise.
var headingGlyphs = []rune{'>', '/', '^', '\\', '<', '/', 'v', '\\'}

// TerminalRenderer draws the board as character cells on a tcell screen
// and doubles as the input source, translating tcell key events into the
// core key enumeration. Terminals deliver key presses but no releases, so
// each press gets a synthesized release delivered by the *next* Poll:
// a tapped key is held for exactly one tick. Delivering the release in
// the same batch would cancel the press before the held-key set is read.
type TerminalRenderer struct {
	screen tcell.Screen
	style  tcell.Style

	events  chan input.Event
	closed  atomic.Bool
	pending []input.Key // presses delivered last poll, released next poll
}

// NewTerminalRenderer initializes a renderer on the real terminal. An
// initialization failure is a setup failure for the caller to treat as
// fatal.
func NewTerminalRenderer() (*TerminalRenderer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return newTerminalRenderer(screen), nil
}

// NewTerminalRendererFor wraps an existing screen. Tests pass a tcell
// SimulationScreen here.
func NewTerminalRendererFor(screen tcell.Screen) *TerminalRenderer {
	return newTerminalRenderer(screen)
}

func newTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	r := &TerminalRenderer{
		screen: screen,
		style:  tcell.StyleDefault.Foreground(tcell.ColorWhite),
		events: make(chan input.Event, 64),
	}
	go r.readEvents()
	return r
}

// Close releases the terminal. Safe to call once the loop has returned.
func (r *TerminalRenderer) Close() {
	r.screen.Fini()
}

// readEvents pumps tcell events into the input queue until the screen is
// finalized.
func (r *TerminalRenderer) readEvents() {
	for {
		ev := r.screen.PollEvent()
		if ev == nil {
			r.closed.Store(true)
			return
		}
		switch tev := ev.(type) {
		case *tcell.EventKey:
			r.handleKey(tev)
		case *tcell.EventResize:
			r.screen.Sync()
		}
	}
}

// handleKey translates one tcell key event. Interrupt keys act as the
// window-close signal rather than a quit key event.
func (r *TerminalRenderer) handleKey(ev *tcell.EventKey) {
	var key input.Key
	switch ev.Key() {
	case tcell.KeyLeft:
		key = input.KeyLeft
	case tcell.KeyRight:
		key = input.KeyRight
	case tcell.KeyUp:
		key = input.KeyUp
	case tcell.KeyDown:
		key = input.KeyDown
	case tcell.KeyCtrlC, tcell.KeyEscape:
		r.closed.Store(true)
		return
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			key = input.KeyFire
		case 'q', 'Q':
			key = input.KeyQuit
		default:
			return
		}
	default:
		return
	}

	select {
	case r.events <- input.Event{Key: key, Pressed: true}:
	default:
		// queue full, drop rather than block the event pump
	}
}

// Poll implements engine.InputSource. It first releases the keys whose
// presses the previous Poll delivered, then drains the fresh presses.
// Poll is called from the loop goroutine only.
func (r *TerminalRenderer) Poll() []input.Event {
	events := make([]input.Event, 0, len(r.pending))
	for _, key := range r.pending {
		events = append(events, input.Event{Key: key, Pressed: false})
	}
	r.pending = r.pending[:0]

	for {
		select {
		case ev := <-r.events:
			events = append(events, ev)
			r.pending = append(r.pending, ev.Key)
		default:
			if len(events) == 0 {
				return nil
			}
			return events
		}
	}
}

// Closed implements engine.InputSource.
func (r *TerminalRenderer) Closed() bool {
	return r.closed.Load()
}

// Clear implements engine.Renderer.
func (r *TerminalRenderer) Clear() {
	r.screen.Clear()
}

// Present implements engine.Renderer.
func (r *TerminalRenderer) Present() {
	r.screen.Show()
}

// RenderShip implements engine.Renderer.
func (r *TerminalRenderer) RenderShip(ship engine.ShipState) {
	x, y, ok := r.project(ship.Position.X, ship.Position.Y)
	if !ok {
		return
	}
	octant := int(math.Round(normalizeAngle(ship.Rotation)/(math.Pi/4))) % 8
	r.screen.SetContent(x, y, headingGlyphs[octant], nil, r.style)
	if ship.Thrusting {
		if tx, ty, ok := r.project(ship.Position.X, ship.Position.Y); ok && ty+1 < r.heightCells() {
			r.screen.SetContent(tx, ty+1, '*', nil, r.style)
		}
	}
}

// RenderMook implements engine.Renderer. The glyph is the mook's level
// digit, so the size tier reads directly off the screen.
func (r *TerminalRenderer) RenderMook(mook engine.MookState) {
	x, y, ok := r.project(mook.Position.X, mook.Position.Y)
	if !ok {
		return
	}
	glyph := '@'
	if mook.Level >= 1 && mook.Level <= 9 {
		glyph = rune('0' + mook.Level)
	}
	r.screen.SetContent(x, y, glyph, nil, r.style)
}

// RenderBullet implements engine.Renderer.
func (r *TerminalRenderer) RenderBullet(bullet engine.BulletState) {
	x, y, ok := r.project(bullet.Position.X, bullet.Position.Y)
	if !ok {
		return
	}
	r.screen.SetContent(x, y, '.', nil, r.style)
}

// project maps field coordinates (roughly [-1.05, 1.05] on both axes)
// onto screen cells, Y flipped so field-up is screen-up.
func (r *TerminalRenderer) project(fx, fy float64) (int, int, bool) {
	w, h := r.screen.Size()
	if w == 0 || h == 0 {
		return 0, 0, false
	}
	x := int((fx + 1.05) / 2.1 * float64(w))
	y := int((1.05 - fy) / 2.1 * float64(h))
	if x < 0 || x >= w || y < 0 || y >= h {
		return 0, 0, false
	}
	return x, y, true
}

func (r *TerminalRenderer) heightCells() int {
	_, h := r.screen.Size()
	return h
}

// normalizeAngle maps an angle into [0, 2π).
func normalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}
