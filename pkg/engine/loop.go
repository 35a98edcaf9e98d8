// pkg/engine/loop.go
package engine

import (
	"context"
	"time"

	"github.com/splitrock/go-driftfield/pkg/config"
	"github.com/splitrock/go-driftfield/pkg/event"
	"github.com/splitrock/go-driftfield/pkg/input"
	"github.com/splitrock/go-driftfield/pkg/logging"
)

// Renderer produces a frame from a board snapshot. Implementations never
// see the live board and must not retain the snapshot across frames.
type Renderer interface {
	Clear()
	RenderShip(ShipState)
	RenderMook(MookState)
	RenderBullet(BulletState)
	Present()
}

// InputSource delivers key state changes and the window-close signal from
// a frontend. Poll drains all events queued since the previous call;
// Closed reports the close signal, which is distinct from any key event.
type InputSource interface {
	Poll() []input.Event
	Closed() bool
}

// Loop is the game loop driver. Each tick runs the fixed order: step the
// simulation, render the snapshot, poll input, apply held-key intents,
// run the spawner. The loop is the board's only mutator.
type Loop struct {
	board    *Board
	spawner  Spawner
	renderer Renderer
	source   InputSource
	keys     *input.State
	events   *event.Bus
	logger   *logging.Logger
	tickRate int
}

// NewLoop assembles a driver around a board and its collaborators. A nil
// spawner disables spawning.
func NewLoop(board *Board, spawner Spawner, renderer Renderer, source InputSource, bus *event.Bus, logger *logging.Logger, cfg *config.GameConfig) *Loop {
	if spawner == nil {
		spawner = NopSpawner{}
	}
	return &Loop{
		board:    board,
		spawner:  spawner,
		renderer: renderer,
		source:   source,
		keys:     input.NewState(),
		events:   bus,
		logger:   logger,
		tickRate: cfg.Simulation.TickRate,
	}
}

// Run drives the session until a quit intent, a window close, ship
// destruction, or context cancellation. All of those are clean
// terminations and return nil; the caller maps setup failures, not loop
// outcomes, onto nonzero exit codes.
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(l.tickRate))
	defer ticker.Stop()

	l.events.Publish(&event.BaseEvent{EventType: event.GameStarted, Source: l.board})
	l.logger.Info(ctx, "session started", "tick_rate", l.tickRate)

	for {
		select {
		case <-ctx.Done():
			l.finish(ctx, "context cancelled")
			return nil
		case <-ticker.C:
			if done := l.runTick(ctx); done {
				return nil
			}
		}
	}
}

// runTick executes one iteration of the fixed tick order and reports
// whether the session ended.
func (l *Loop) runTick(ctx context.Context) bool {
	l.board.Step()

	l.renderFrame()

	for _, ev := range l.source.Poll() {
		l.keys.Handle(ev)
	}
	if l.source.Closed() {
		l.finish(ctx, "window closed")
		return true
	}

	// The thrust flag covers one tick's intents; the frame rendered above
	// saw the previous tick's value.
	l.board.thrusting = false
	quit := false
	for _, intent := range l.keys.Intents() {
		if intent == input.Quit {
			quit = true
			continue
		}
		l.board.Apply(intent)
	}
	if quit {
		l.finish(ctx, "quit intent")
		return true
	}

	if l.board.ShipDestroyed() {
		l.finish(ctx, "ship destroyed")
		return true
	}

	l.spawner.Update(l.board)
	return false
}

// renderFrame hands the current snapshot to the renderer. Rendering is
// synchronous: the simulation does not advance while a frame is produced.
func (l *Loop) renderFrame() {
	state := l.board.Snapshot()
	l.renderer.Clear()
	l.renderer.RenderShip(state.Ship)
	for _, mook := range state.Mooks {
		l.renderer.RenderMook(mook)
	}
	for _, bullet := range state.Bullets {
		l.renderer.RenderBullet(bullet)
	}
	l.renderer.Present()
}

func (l *Loop) finish(ctx context.Context, reason string) {
	l.events.Publish(&event.BaseEvent{EventType: event.GameEnded, Source: l.board})
	l.logger.Info(ctx, "session ended",
		"reason", reason,
		"ticks", l.board.Tick(),
	)
}
