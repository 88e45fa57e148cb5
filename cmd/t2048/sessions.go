package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/storage"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions [variant]",
	Short: "List saved games",
	Long: `Show unfinished games that can be resumed, newest first.

Examples:
  t2048 sessions
  t2048 sessions 2048_big
  t2048 sessions delete <id>
  t2048 play --resume <id>`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSessions,
}

var sessionsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a saved game",
	Args:  cobra.ExactArgs(1),
	RunE:  runSessionsDelete,
}

func init() {
	sessionsCmd.AddCommand(sessionsDeleteCmd)
}

func runSessions(_ *cobra.Command, args []string) error {
	gameID := ""
	if len(args) > 0 {
		gameID = args[0]
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	sessions, err := store.ListSessions(gameID)
	if err != nil {
		return err
	}

	if len(sessions) == 0 {
		fmt.Println("No saved games.")
		return nil
	}

	fmt.Printf("  %-36s  %-10s  %-8s  %s\n", "ID", "Board", "Score", "Updated")
	fmt.Printf("  %-36s  %-10s  %-8s  %s\n", "--", "-----", "-----", "-------")
	for _, s := range sessions {
		fmt.Printf("  %-36s  %-10s  %-8d  %s\n", s.ID, s.GameID, s.Score, s.UpdatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	fmt.Println("Run 't2048 play --resume <id>' to continue a game.")
	return nil
}

func runSessionsDelete(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.DeleteSession(args[0]); err != nil {
		return err
	}
	logger.Info("deleted saved game", "session", args[0])
	return nil
}
