// pkg/engine/loop_test.go
package engine

import (
	"context"
	"math"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/splitrock/go-driftfield/pkg/config"
	"github.com/splitrock/go-driftfield/pkg/event"
	"github.com/splitrock/go-driftfield/pkg/input"
	"github.com/splitrock/go-driftfield/pkg/logging"
)

// scriptedSource replays a fixed schedule of input events, keyed by the
// Poll call number. After the script runs out it delivers nothing.
type scriptedSource struct {
	script map[int][]input.Event
	calls  int
	closed bool
}

func (s *scriptedSource) Poll() []input.Event {
	s.calls++
	return s.script[s.calls]
}

func (s *scriptedSource) Closed() bool {
	return s.closed
}

// countingRenderer records how many frames were presented and what each
// frame contained.
type countingRenderer struct {
	presents int
	ships    int
	mooks    int
	bullets  int
}

func (r *countingRenderer) Clear()                   {}
func (r *countingRenderer) RenderShip(ShipState)     { r.ships++ }
func (r *countingRenderer) RenderMook(MookState)     { r.mooks++ }
func (r *countingRenderer) RenderBullet(BulletState) { r.bullets++ }
func (r *countingRenderer) Present()                 { r.presents++ }

func fastConfig() *config.GameConfig {
	cfg := config.DefaultConfig()
	cfg.Simulation.TickRate = 1000
	return cfg
}

func TestLoop_HeldKeysApplyEachTick(t *testing.T) {
	cfg := fastConfig()
	bus := event.NewEventBus()
	board := NewBoard(cfg, bus, rand.New(rand.NewPCG(5, 6)))
	renderer := &countingRenderer{}

	// Tick 1: press left and up together. Tick 2: release both, press
	// quit to end the session.
	source := &scriptedSource{script: map[int][]input.Event{
		1: {
			{Key: input.KeyLeft, Pressed: true},
			{Key: input.KeyUp, Pressed: true},
		},
		2: {
			{Key: input.KeyLeft, Pressed: false},
			{Key: input.KeyUp, Pressed: false},
			{Key: input.KeyQuit, Pressed: true},
		},
	}}

	loop := NewLoop(board, nil, renderer, source, bus, logging.NewLogger(), cfg)

	var ended int
	bus.Subscribe(event.GameEnded, func(event.Event) { ended++ })

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := loop.Run(ctx); err != nil {
		t.Fatalf("Run returned %v, expected nil", err)
	}

	// Both intents from tick 1 must have landed in the same tick.
	if board.Ship.Rotation != cfg.Simulation.TurnIncrement {
		t.Errorf("Rotation = %v, expected one turn increment %v", board.Ship.Rotation, cfg.Simulation.TurnIncrement)
	}
	if math.Abs(board.Ship.Velocity.Length()-cfg.Simulation.Accel) > 1e-9 {
		t.Errorf("speed = %v, expected one thrust increment %v", board.Ship.Velocity.Length(), cfg.Simulation.Accel)
	}

	if ended != 1 {
		t.Errorf("GameEnded published %d times, expected 1", ended)
	}
	if renderer.presents < 2 {
		t.Errorf("Present called %d times, expected at least 2", renderer.presents)
	}
	if renderer.ships != renderer.presents {
		t.Errorf("ship rendered %d times across %d frames", renderer.ships, renderer.presents)
	}
}

func TestLoop_WindowCloseEndsSession(t *testing.T) {
	cfg := fastConfig()
	bus := event.NewEventBus()
	board := NewBoard(cfg, bus, rand.New(rand.NewPCG(5, 6)))
	source := &scriptedSource{closed: true}

	loop := NewLoop(board, nil, &countingRenderer{}, source, bus, logging.NewLogger(), cfg)

	var ended int
	bus.Subscribe(event.GameEnded, func(event.Event) { ended++ })

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := loop.Run(ctx); err != nil {
		t.Fatalf("Run returned %v, expected nil", err)
	}
	if ended != 1 {
		t.Errorf("GameEnded published %d times, expected 1", ended)
	}
}

func TestLoop_ContextCancelEndsSession(t *testing.T) {
	cfg := fastConfig()
	bus := event.NewEventBus()
	board := NewBoard(cfg, bus, rand.New(rand.NewPCG(5, 6)))
	source := &scriptedSource{}

	loop := NewLoop(board, nil, &countingRenderer{}, source, bus, logging.NewLogger(), cfg)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := loop.Run(ctx); err != nil {
		t.Fatalf("Run returned %v, expected nil on cancellation", err)
	}
}

func TestLoop_SpawnerRunsEachTick(t *testing.T) {
	cfg := fastConfig()
	bus := event.NewEventBus()
	board := NewBoard(cfg, bus, rand.New(rand.NewPCG(5, 6)))

	// Quit on the fourth poll so the spawner sees ticks 1 through 3.
	source := &scriptedSource{script: map[int][]input.Event{
		4: {{Key: input.KeyQuit, Pressed: true}},
	}}
	spawner := &IntervalSpawner{Interval: 1, Max: 10}

	loop := NewLoop(board, spawner, &countingRenderer{}, source, bus, logging.NewLogger(), cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := loop.Run(ctx); err != nil {
		t.Fatalf("Run returned %v, expected nil", err)
	}

	// Ticks 1, 2, 3 each spawn; the quit tick ends before its spawner run.
	if len(board.Mooks) != 3 {
		t.Errorf("got %d mooks, expected 3", len(board.Mooks))
	}
}
