package main

import (
	"os"

	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// runtimeConfig builds the runtime config from global flags and the
// terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	cfg.Seed = flagSeed
	return cfg
}

// loadConfig reads the game config and applies a difficulty preset.
func loadConfig(preset string) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, config.DifficultyPreset(preset))
	return cfg, nil
}

// openStore opens the database. Games still work without it, so failures
// are only logged.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open database, scores and saved games are disabled", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
