package main

import (
	"fmt"
	"io"
	"os"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/dungeon-slimes/internal/cave"
)

// Map legend symbols.
const (
	symbolHero     = 'H'
	symbolTreasure = 'T'
	symbolExit     = 'X'
	symbolSlime    = 'S'
)

var flagPlain bool

var mapCmd = &cobra.Command{
	Use:   "map",
	Short: "Print the cave map",
	Long: `Prints the cave with the spawn points marked:

  H  hero spawn      T  treasure
  X  exit door       S  slime spawn
  #  wall            .  floor`,
	Run: runMap,
}

func init() {
	mapCmd.Flags().BoolVar(&flagPlain, "plain", false, "Disable colors")
}

var symbolStyles = map[rune]color.Style{
	'#':            {color.FgGray},
	'.':            {color.FgDarkGray},
	symbolHero:     {color.FgCyan, color.OpBold},
	symbolTreasure: {color.FgYellow, color.OpBold},
	symbolExit:     {color.FgGreen, color.OpBold},
	symbolSlime:    {color.FgLightGreen},
}

// annotatedMap returns the cave rows with spawn points drawn over the terrain.
func annotatedMap() [][]rune {
	rows := make([][]rune, len(cave.CaveMap))
	for r, line := range cave.CaveMap {
		rows[r] = []rune(line)
	}

	mark := func(p cave.CellPos, sym rune) {
		if p.Row >= 0 && p.Row < len(rows) && p.Col >= 0 && p.Col < len(rows[p.Row]) {
			rows[p.Row][p.Col] = sym
		}
	}
	for _, sp := range cave.EnemyRoster {
		mark(sp.Cell, symbolSlime)
	}
	mark(cave.TreasureCell, symbolTreasure)
	mark(cave.ExitCell, symbolExit)
	mark(cave.HeroSpawn, symbolHero)

	return rows
}

func printMap(w io.Writer, plain bool) {
	for _, row := range annotatedMap() {
		for _, sym := range row {
			style, ok := symbolStyles[sym]
			if plain || !ok {
				fmt.Fprint(w, string(sym))
				continue
			}
			fmt.Fprint(w, style.Sprint(string(sym)))
		}
		fmt.Fprintln(w)
	}
}

func runMap(cmd *cobra.Command, args []string) {
	printMap(os.Stdout, flagPlain)
}
