// Package config provides YAML-based game configuration loading and
// difficulty presets for the 2048 game.
package config

import (
	"fmt"
)

// Config contains all configuration for the 2048 game.
type Config struct {
	Board BoardConfig `yaml:"board"`
	Spawn SpawnConfig `yaml:"spawn"`
	Undo  UndoConfig  `yaml:"undo"`
}

// BoardConfig defines the board shape and win condition.
type BoardConfig struct {
	Size   int `yaml:"size"`
	Target int `yaml:"target"`
}

// SpawnConfig defines how new tiles appear.
type SpawnConfig struct {
	Policy            string  `yaml:"policy"`
	Spawn4Probability float64 `yaml:"spawn4_probability"`
	InitialTiles      int     `yaml:"initial_tiles"`
}

// UndoConfig toggles single-step undo.
type UndoConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Validate checks the config for values the engine would reject.
func (c Config) Validate() error {
	if c.Board.Size < 2 || c.Board.Size > 8 {
		return fmt.Errorf("config: board.size %d out of range 2..8", c.Board.Size)
	}
	if t := c.Board.Target; t < 4 || t&(t-1) != 0 {
		return fmt.Errorf("config: board.target %d is not a power of two >= 4", t)
	}
	switch c.Spawn.Policy {
	case "always2", "always4", "random":
	default:
		return fmt.Errorf("config: unknown spawn.policy %q", c.Spawn.Policy)
	}
	if p := c.Spawn.Spawn4Probability; p < 0 || p > 1 {
		return fmt.Errorf("config: spawn.spawn4_probability %v out of range 0..1", p)
	}
	if n := c.Spawn.InitialTiles; n < 1 || n > c.Board.Size*c.Board.Size {
		return fmt.Errorf("config: spawn.initial_tiles %d out of range 1..%d", n, c.Board.Size*c.Board.Size)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ApplyPreset modifies the config based on a difficulty preset.
// Unknown or empty presets leave the config untouched.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Spawn.Policy = "always2"
		cfg.Undo.Enabled = true
	case DifficultyHard:
		cfg.Spawn.Policy = "random"
		cfg.Spawn.Spawn4Probability = 0.75
		cfg.Undo.Enabled = false
	}
}
