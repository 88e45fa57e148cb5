package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var defaultT2048YAML []byte

// Default returns the built-in 2048 configuration.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Size:   4,
			Target: 2048,
		},
		Spawn: SpawnConfig{
			Policy:            "random",
			Spawn4Probability: 0.5,
			InitialTiles:      2,
		},
		Undo: UndoConfig{
			Enabled: true,
		},
	}
}
