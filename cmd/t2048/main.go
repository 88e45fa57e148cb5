// t2048 is the 2048 sliding tile puzzle for the terminal.
//
// Usage:
//
//	t2048 variants            - List available boards
//	t2048 play [variant]      - Play a board (default: 2048)
//	t2048 menu                - Pick boards and saved games interactively
//	t2048 serve               - Start SSH server for remote play
//	t2048 scores [variant]    - Show high scores for a board
//	t2048 sessions            - List or delete saved games
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.arcade/scores.db)
//	--config <path>     - Use a custom game config YAML
//	--log-level <level> - Set log verbosity (debug, info, warn, error)
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import the game to register its variants
	_ "github.com/vovakirdan/tui-2048/internal/games/t2048"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "t2048",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 - Slide and merge tiles in your terminal",
	Long: `2048 is the sliding tile puzzle: move every tile on the board in one
direction, merge equal neighbours and try to build the 2048 tile.

Available commands:
  variants  - Show all available boards
  play      - Play a board directly
  menu      - Interactive picker with saved games
  serve     - Start SSH server for remote play
  scores    - View high scores
  sessions  - Manage saved games

Examples:
  t2048 play
  t2048 play 2048_mini --difficulty easy
  t2048 menu
  t2048 serve --ssh :2222
  t2048 scores 2048_big`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return err
		}
		logger.SetLevel(level)
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(variantsCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(sessionsCmd)
}
