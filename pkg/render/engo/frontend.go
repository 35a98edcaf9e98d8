// pkg/render/engo/frontend.go

// Package engo renders the board in a window using the Engo game engine
// and feeds keyboard state back to the simulation. Engo owns the OS
// thread and frame pacing; the simulation loop runs on its own goroutine
// and talks to this frontend through a latest-wins frame channel and a
// key event queue.
package engo

import (
	"sync/atomic"

	"github.com/EngoEngine/engo"

	"github.com/splitrock/go-driftfield/pkg/config"
	"github.com/splitrock/go-driftfield/pkg/engine"
	"github.com/splitrock/go-driftfield/pkg/input"
)

// frame is one complete board snapshot staged for drawing.
type frame struct {
	ship    engine.ShipState
	mooks   []engine.MookState
	bullets []engine.BulletState
}

// Frontend implements engine.Renderer and engine.InputSource on top of a
// running Engo window.
type Frontend struct {
	cfg config.RenderConfig

	frames  chan frame
	events  chan input.Event
	closed  atomic.Bool
	pending frame
}

// NewFrontend creates a frontend for the given window settings. Run must
// be called on the main goroutine before frames appear on screen.
func NewFrontend(cfg config.RenderConfig) *Frontend {
	return &Frontend{
		cfg:    cfg,
		frames: make(chan frame, 1),
		events: make(chan input.Event, 64),
	}
}

// Run opens the window and blocks until it closes. Must run on the main
// goroutine; Engo requires the OS thread that started the process.
func (f *Frontend) Run() {
	opts := engo.RunOptions{
		Title:  f.cfg.Title,
		Width:  f.cfg.Width,
		Height: f.cfg.Height,
		VSync:  true,
	}
	engo.Run(opts, newGameScene(f))
	f.closed.Store(true)
}

// Stop closes the window, unblocking Run.
func (f *Frontend) Stop() {
	engo.Exit()
}

// Clear implements engine.Renderer. It begins a fresh pending frame.
func (f *Frontend) Clear() {
	f.pending = frame{}
}

// RenderShip implements engine.Renderer.
func (f *Frontend) RenderShip(ship engine.ShipState) {
	f.pending.ship = ship
}

// RenderMook implements engine.Renderer.
func (f *Frontend) RenderMook(mook engine.MookState) {
	f.pending.mooks = append(f.pending.mooks, mook)
}

// RenderBullet implements engine.Renderer.
func (f *Frontend) RenderBullet(bullet engine.BulletState) {
	f.pending.bullets = append(f.pending.bullets, bullet)
}

// Present implements engine.Renderer. The pending frame replaces any
// frame the window has not yet drawn; the simulation never blocks on
// rendering.
func (f *Frontend) Present() {
	select {
	case <-f.frames:
	default:
	}
	f.frames <- f.pending
}

// Poll implements engine.InputSource.
func (f *Frontend) Poll() []input.Event {
	var drained []input.Event
	for {
		select {
		case ev := <-f.events:
			drained = append(drained, ev)
		default:
			return drained
		}
	}
}

// Closed implements engine.InputSource.
func (f *Frontend) Closed() bool {
	return f.closed.Load()
}

// pushEvent queues a key event for the simulation, dropping when the
// queue is full rather than stalling the render thread.
func (f *Frontend) pushEvent(ev input.Event) {
	select {
	case f.events <- ev:
	default:
	}
}

// latestFrame returns the most recent presented frame, if any.
func (f *Frontend) latestFrame() (frame, bool) {
	select {
	case fr := <-f.frames:
		return fr, true
	default:
		return frame{}, false
	}
}
