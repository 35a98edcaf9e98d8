// pkg/config/config.go
package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// GameConfig contains the tunable parameters for a driftfield session.
// All simulation values are in normalized field units: the visible field
// spans roughly [-1, 1] on both axes.
type GameConfig struct {
	Simulation SimulationConfig `json:"simulation"`
	Mooks      MookConfig       `json:"mooks"`
	Render     RenderConfig     `json:"render"`
}

// SimulationConfig contains the physics and tick parameters.
type SimulationConfig struct {
	Step          float64 `json:"step"`          // distance-per-tick integration factor
	Accel         float64 `json:"accel"`         // thrust applied per held tick
	MaxSpeed      float64 `json:"maxSpeed"`      // hard cap on ship speed
	MuzzleSpeed   float64 `json:"muzzleSpeed"`   // bullet launch speed
	TurnIncrement float64 `json:"turnIncrement"` // radians per held tick
	WrapLimit     float64 `json:"wrapLimit"`     // field edge for the sign-flip bounce
	BulletRangeSq float64 `json:"bulletRangeSq"` // squared distance past which bullets are swept
	BulletRadius  float64 `json:"bulletRadius"`  // bullet bounding radius
	TickRate      int     `json:"tickRate"`      // ticks per second
}

// MookConfig contains enemy spawning and collision parameters.
type MookConfig struct {
	BaseRadius     float64 `json:"baseRadius"`     // bounding radius per level tier
	HitDamage      float64 `json:"hitDamage"`      // health removed per bullet hit
	Spin           float64 `json:"spin"`           // rotation increment per tick
	DefaultLevel   int     `json:"defaultLevel"`   // tier of freshly spawned mooks
	MinLevel       int     `json:"minLevel"`       // tier below which mooks stop splitting
	InitialCount   int     `json:"initialCount"`   // mooks spawned at session start
	SpawnInterval  int     `json:"spawnInterval"`  // ticks between spawner invocations, 0 disables
	MaxCount       int     `json:"maxCount"`       // spawner stops adding past this population
	ExactTolerance float64 `json:"exactTolerance"` // exact-phase collision radius scale
}

// RenderConfig selects and sizes the frontend.
type RenderConfig struct {
	Backend string `json:"backend"` // "engo", "terminal" or "null"
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Title   string `json:"title"`
}

// LoadConfig loads a configuration from a file
func LoadConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// SaveConfig saves a configuration to a file
func SaveConfig(config *GameConfig, path string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the stock session configuration.
func DefaultConfig() *GameConfig {
	return &GameConfig{
		Simulation: SimulationConfig{
			Step:          0.02,
			Accel:         0.01,
			MaxSpeed:      1.0,
			MuzzleSpeed:   2.0,
			TurnIncrement: 10.0 * math.Pi / 180.0,
			WrapLimit:     1.05,
			BulletRangeSq: 2.0,
			BulletRadius:  0.01,
			TickRate:      50,
		},
		Mooks: MookConfig{
			BaseRadius:     0.04,
			HitDamage:      0.5,
			Spin:           0.02,
			DefaultLevel:   3,
			MinLevel:       1,
			InitialCount:   4,
			SpawnInterval:  600,
			MaxCount:       24,
			ExactTolerance: 0.9,
		},
		Render: RenderConfig{
			Backend: "engo",
			Width:   800,
			Height:  800,
			Title:   "Driftfield",
		},
	}
}

// Validate checks the configuration for values the simulation cannot run
// with.
func (c *GameConfig) Validate() error {
	if c.Simulation.Step <= 0 {
		return fmt.Errorf("simulation step must be positive, got %v", c.Simulation.Step)
	}
	if c.Simulation.MaxSpeed <= 0 {
		return fmt.Errorf("max speed must be positive, got %v", c.Simulation.MaxSpeed)
	}
	if c.Simulation.TickRate <= 0 {
		return fmt.Errorf("tick rate must be positive, got %d", c.Simulation.TickRate)
	}
	if c.Simulation.WrapLimit <= 0 {
		return fmt.Errorf("wrap limit must be positive, got %v", c.Simulation.WrapLimit)
	}
	if c.Simulation.BulletRangeSq <= 0 {
		return fmt.Errorf("bullet range must be positive, got %v", c.Simulation.BulletRangeSq)
	}
	if c.Mooks.HitDamage <= 0 {
		return fmt.Errorf("hit damage must be positive, got %v", c.Mooks.HitDamage)
	}
	if c.Mooks.MinLevel < 1 {
		return fmt.Errorf("minimum mook level must be at least 1, got %d", c.Mooks.MinLevel)
	}
	if c.Mooks.DefaultLevel < c.Mooks.MinLevel {
		return fmt.Errorf("default mook level %d below minimum %d",
			c.Mooks.DefaultLevel, c.Mooks.MinLevel)
	}
	switch c.Render.Backend {
	case "engo", "terminal", "null":
	default:
		return fmt.Errorf("unknown render backend %q", c.Render.Backend)
	}
	return nil
}
