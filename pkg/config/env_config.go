// pkg/config/env_config.go
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variable names recognized by LoadConfigFromEnv. Every value
// is optional; unset variables keep the default (or file-loaded) value.
const (
	EnvConfigPath    = "DRIFTFIELD_CONFIG"
	EnvRenderBackend = "DRIFTFIELD_RENDERER"
	EnvTickRate      = "DRIFTFIELD_TICK_RATE"
	EnvInitialMooks  = "DRIFTFIELD_INITIAL_MOOKS"
	EnvSpawnInterval = "DRIFTFIELD_SPAWN_INTERVAL"
	EnvMaxMooks      = "DRIFTFIELD_MAX_MOOKS"
	EnvWindowWidth   = "DRIFTFIELD_WIDTH"
	EnvWindowHeight  = "DRIFTFIELD_HEIGHT"
)

// LoadConfigFromEnv builds the session configuration from the
// environment. If DRIFTFIELD_CONFIG names a file, that file is loaded
// first; the remaining variables override individual fields on top of it.
func LoadConfigFromEnv() (*GameConfig, error) {
	cfg := DefaultConfig()

	if path := os.Getenv(EnvConfigPath); path != "" {
		loaded, err := LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if backend := os.Getenv(EnvRenderBackend); backend != "" {
		cfg.Render.Backend = backend
	}

	var err error
	if cfg.Simulation.TickRate, err = getEnvInt(EnvTickRate, cfg.Simulation.TickRate); err != nil {
		return nil, err
	}
	if cfg.Mooks.InitialCount, err = getEnvInt(EnvInitialMooks, cfg.Mooks.InitialCount); err != nil {
		return nil, err
	}
	if cfg.Mooks.SpawnInterval, err = getEnvInt(EnvSpawnInterval, cfg.Mooks.SpawnInterval); err != nil {
		return nil, err
	}
	if cfg.Mooks.MaxCount, err = getEnvInt(EnvMaxMooks, cfg.Mooks.MaxCount); err != nil {
		return nil, err
	}
	if cfg.Render.Width, err = getEnvInt(EnvWindowWidth, cfg.Render.Width); err != nil {
		return nil, err
	}
	if cfg.Render.Height, err = getEnvInt(EnvWindowHeight, cfg.Render.Height); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// getEnvInt parses an integer environment variable, returning the
// fallback when the variable is unset.
func getEnvInt(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	return value, nil
}
