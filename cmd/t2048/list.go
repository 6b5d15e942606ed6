package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/platform/tui"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available game modes",
	Long:  `Shows every registered game mode.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	items := tui.ModeItems()

	if len(items) == 0 {
		fmt.Println("No modes available.")
		return
	}

	fmt.Println("Available modes:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, it := range items {
		maxIDLen = max(maxIDLen, len(it.GameID))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Goal")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "----")

	for _, it := range items {
		fmt.Printf("  %-*s  %s\n", maxIDLen, it.GameID, it.Goal)
	}

	fmt.Println()
	fmt.Println("Run 't2048 play classic' or 't2048 play endless' to play.")
}
