package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

var variantsCmd = &cobra.Command{
	Use:     "variants",
	Aliases: []string{"list"},
	Short:   "List all available boards",
	Long:    `Shows every registered board with its size and winning tile.`,
	Run:     runVariants,
}

func runVariants(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No boards available.")
		return
	}

	fmt.Println("Available boards:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	fmt.Printf("  %-*s  %-6s  %-6s  %s\n", maxIDLen, "ID", "Size", "Target", "Title")
	fmt.Printf("  %-*s  %-6s  %-6s  %s\n", maxIDLen, "--", "----", "------", "-----")

	for _, g := range games {
		size, target := "config", "config"
		if v := t2048.VariantByID(g.ID); v != nil && v.Size > 0 {
			size = fmt.Sprintf("%dx%d", v.Size, v.Size)
			target = strconv.Itoa(v.Target)
		}
		fmt.Printf("  %-*s  %-6s  %-6s  %s\n", maxIDLen, g.ID, size, target, g.Title)
	}

	fmt.Println()
	fmt.Println("Run 't2048 play <id>' to play a board.")
}
