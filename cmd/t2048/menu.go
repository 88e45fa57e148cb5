package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a board picker menu",
	Long: `Start in interactive menu mode.

Pick a board and a difficulty, or continue one of your saved games.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select board or saved game
  X            - Delete highlighted saved game
  Tab          - Scoreboard
  Q            - Quit

Examples:
  t2048 menu
  t2048 menu --fps 30
  t2048 menu --db ./scores.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	base, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				logger.Error("scoreboard failed", "error", err)
			}
			if goBack {
				continue
			}
			return nil
		}

		if menuResult.GameID == "" {
			return nil
		}

		var resume *storage.SavedSession
		gameCfg := base
		if menuResult.SessionID != "" {
			resume, err = store.LoadSession(menuResult.SessionID)
			if err != nil {
				logger.Warn("cannot load saved game", "session", menuResult.SessionID, "error", err)
				continue
			}
		} else {
			preset, err := tui.RunDifficultySelector(menuResult.Title, cfg)
			if err != nil {
				return err
			}
			if preset == nil {
				continue
			}
			config.ApplyPreset(&gameCfg, *preset)
		}

		game, err := registry.Create(menuResult.GameID, gameCfg)
		if err != nil {
			logger.Error("cannot create game", "game", menuResult.GameID, "error", err)
			continue
		}

		// Fresh seed for each game unless one was pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		res, err := tui.Run(game, store, cfg, resume)
		if err != nil {
			logger.Error("game failed", "game", menuResult.GameID, "error", err)
			continue
		}
		reportResult(res)
	}
}
