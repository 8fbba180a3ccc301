package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dungeon-slimes/internal/registry"
)

var frontendsCmd = &cobra.Command{
	Use:   "frontends",
	Short: "List available frontends",
	Long:  `Shows every frontend that can host the game.`,
	Run:   runFrontends,
}

func runFrontends(cmd *cobra.Command, args []string) {
	frontends := registry.List()

	if len(frontends) == 0 {
		fmt.Println("No frontends available.")
		return
	}

	fmt.Println("Available frontends:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, f := range frontends {
		if len(f.ID) > maxIDLen {
			maxIDLen = len(f.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, f := range frontends {
		fmt.Printf("  %-*s  %s\n", maxIDLen, f.ID, f.Title)
	}

	fmt.Println()
	fmt.Println("Run 'slimes --frontend <id>' to use one.")
}

func unknownFrontendError(id string) error {
	return fmt.Errorf("unknown frontend %q (run 'slimes frontends' to see available frontends)", id)
}
