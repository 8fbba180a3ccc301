// slimes is a small dungeon arcade game: walk the cave cell by cell, dodge
// the patrolling slimes, grab the treasure and escape through the exit door.
//
// Usage:
//
//	slimes                  - Play in the terminal
//	slimes --frontend gfx   - Play in a desktop window
//	slimes frontends        - List available frontends
//	slimes map              - Print the cave map
//
// The desktop window links ebiten, which on Linux needs cgo with the X11 and
// ALSA development headers. Build with -tags nogfx for a terminal-only binary:
//
//	go build -tags nogfx ./cmd/slimes
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: from config, 60)
//	--log-file <path>   - Log destination (default: ~/.slimes/slimes.log, "-" = stderr)
//	--debug             - Log debug messages
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import frontends to register them
	_ "github.com/vovakirdan/dungeon-slimes/internal/platform/tui"
)

var (
	// Global flags
	flagFPS     int
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "slimes",
	Short: "Dungeon Slimes - grab the treasure, dodge the slimes",
	Long: `Dungeon Slimes is a small tile-based arcade game. Walk the cave one
cell at a time, avoid the patrolling slimes, pick up the treasure and
leave through the exit door.

Controls:
  Arrows/WASD  - Move (menu: move focus)
  Enter        - Activate menu button, return to menu after a run
  Mouse        - Click menu buttons
  M            - Toggle music (menu)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slimes move at 75% speed
  normal - Stock speed
  hard   - Slimes move at 135% speed

Examples:
  slimes
  slimes --difficulty hard
  slimes --frontend gfx --locale pt_BR
  slimes --config ./my-slimes.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.slimes/slimes.log", `Log file ("-" for stderr)`)
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log debug messages")

	// Add subcommands
	rootCmd.AddCommand(frontendsCmd)
	rootCmd.AddCommand(mapCmd)
}

// fail prints err and exits with status 1.
func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
