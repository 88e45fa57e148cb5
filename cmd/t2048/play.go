package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagDifficulty string
	flagSize       int
	flagTarget     int
	flagUndo       bool
	flagPolicy     string
	flagResume     string
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a board",
	Long: `Start playing the specified board (2048 when omitted).

Controls:
  Arrows/WASD/HJKL  - Slide tiles
  U/Backspace       - Undo last move
  P/Space           - Pause
  R                 - Restart (paused or after game over)
  Esc/B             - Back (paused or after game over)
  Ctrl+S            - Save screenshot
  Q/Ctrl+C          - Quit and save progress

Difficulty options:
  easy   - Only 2s spawn, undo enabled
  normal - Configured settings
  hard   - 4s spawn three times out of four, no undo

Examples:
  t2048 play
  t2048 play 2048_mini --difficulty easy
  t2048 play --size 6 --target 4096
  t2048 play --resume 4b1d0c2e-...`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().IntVar(&flagSize, "size", 0, "Board size override (classic board only)")
	playCmd.Flags().IntVar(&flagTarget, "target", 0, "Winning tile override (classic board only)")
	playCmd.Flags().BoolVar(&flagUndo, "undo", true, "Allow single-step undo")
	playCmd.Flags().StringVar(&flagPolicy, "policy", "", "New tile policy: random, always2, always4")
	playCmd.Flags().StringVar(&flagResume, "resume", "", "Continue a saved game by ID")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := "2048"
	if len(args) > 0 {
		gameID = args[0]
	}

	switch config.DifficultyPreset(flagDifficulty) {
	case "", config.DifficultyEasy, config.DifficultyNormal, config.DifficultyHard:
	default:
		return fmt.Errorf("unknown difficulty %q", flagDifficulty)
	}

	cfg, err := loadConfig(flagDifficulty)
	if err != nil {
		return err
	}

	// Explicit flags win over the preset
	if flagSize > 0 {
		cfg.Board.Size = flagSize
	}
	if flagTarget > 0 {
		cfg.Board.Target = flagTarget
	}
	if cmd.Flags().Changed("undo") {
		cfg.Undo.Enabled = flagUndo
	}
	if flagPolicy != "" {
		cfg.Spawn.Policy = flagPolicy
	}
	if cfg.Spawn.InitialTiles > cfg.Board.Size*cfg.Board.Size {
		cfg.Spawn.InitialTiles = 1
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	var resume *storage.SavedSession
	if flagResume != "" {
		if store == nil {
			return fmt.Errorf("cannot resume %s without a database", flagResume)
		}
		resume, err = store.LoadSession(flagResume)
		if err != nil {
			return err
		}
		gameID = resume.GameID
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown board %q, run 't2048 variants' to see available boards", gameID)
	}

	game, err := registry.Create(gameID, cfg)
	if err != nil {
		return err
	}

	res, err := tui.Run(game, store, runtimeConfig(), resume)
	if err != nil {
		return err
	}
	reportResult(res)
	return nil
}

// reportResult logs how a game ended once the terminal is restored.
func reportResult(res tui.GameResult) {
	if res.Err != nil {
		logger.Error("could not persist game", "game", res.GameID, "error", res.Err)
	}
	switch {
	case res.Finished:
		logger.Info("game over", "game", res.GameID, "score", res.Score, "max_tile", res.MaxTile)
	case res.SessionID != "":
		logger.Info("progress saved", "game", res.GameID, "score", res.Score, "resume", res.SessionID)
	default:
		logger.Debug("game closed", "game", res.GameID, "score", res.Score)
	}
}
