// cmd/driftfield/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/splitrock/go-driftfield/pkg/config"
	"github.com/splitrock/go-driftfield/pkg/engine"
	"github.com/splitrock/go-driftfield/pkg/event"
	"github.com/splitrock/go-driftfield/pkg/logging"
	"github.com/splitrock/go-driftfield/pkg/render"
	engorender "github.com/splitrock/go-driftfield/pkg/render/engo"
)

func main() {
	logger := logging.NewLogger()
	ctx := logging.WithCorrelationID(context.Background(), "")

	cfg, err := config.LoadConfigFromEnv()
	if err != nil {
		logger.Error(ctx, "invalid configuration", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	bus := event.NewEventBus()
	board := engine.NewBoard(cfg, bus, nil)
	for i := 0; i < cfg.Mooks.InitialCount; i++ {
		board.SpawnMook()
	}
	spawner := &engine.IntervalSpawner{
		Interval: cfg.Mooks.SpawnInterval,
		Max:      cfg.Mooks.MaxCount,
	}

	logger.Info(ctx, "starting session",
		"backend", cfg.Render.Backend,
		"initial_mooks", cfg.Mooks.InitialCount,
	)

	switch cfg.Render.Backend {
	case "terminal":
		runTerminal(ctx, board, spawner, bus, logger, cfg)
	case "null":
		runHeadless(ctx, board, spawner, bus, logger, cfg)
	default:
		runWindowed(ctx, board, spawner, bus, logger, cfg)
	}
}

// runWindowed drives the session with the Engo window frontend. Engo must
// own the main goroutine, so the simulation loop moves to a worker.
func runWindowed(ctx context.Context, board *engine.Board, spawner engine.Spawner, bus *event.Bus, logger *logging.Logger, cfg *config.GameConfig) {
	frontend := engorender.NewFrontend(cfg.Render)
	loop := engine.NewLoop(board, spawner, frontend, frontend, bus, logger, cfg)

	go func() {
		loop.Run(ctx)
		frontend.Stop()
	}()

	frontend.Run()
}

// runTerminal drives the session on a tcell screen.
func runTerminal(ctx context.Context, board *engine.Board, spawner engine.Spawner, bus *event.Bus, logger *logging.Logger, cfg *config.GameConfig) {
	frontend, err := render.NewTerminalRenderer()
	if err != nil {
		logger.Error(ctx, "terminal initialization failed", err)
		os.Exit(1)
	}
	defer frontend.Close()

	loop := engine.NewLoop(board, spawner, frontend, frontend, bus, logger, cfg)
	loop.Run(ctx)
}

// runHeadless drives the session with no rendering or input; the session
// runs until the ship is destroyed or the process is signalled.
func runHeadless(ctx context.Context, board *engine.Board, spawner engine.Spawner, bus *event.Bus, logger *logging.Logger, cfg *config.GameConfig) {
	loop := engine.NewLoop(board, spawner, render.NewNullRenderer(), render.NullSource{}, bus, logger, cfg)
	loop.Run(ctx)
}
