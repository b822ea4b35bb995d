// flood is a terminal flood-it puzzle: repaint the board into a single
// color, one flood move at a time.
//
// Usage:
//
//	flood play               - Pick a mode interactively and play
//	flood play flood         - Play classic mode directly
//	flood play flood_zen     - Play zen mode directly
//	flood scores [mode]      - Show high scores
//	flood list               - List available modes
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible boards
//	--db <path>     - Set database path (default: ~/.flood/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import modes to register them
	_ "github.com/dchistyakov/flood-tui/internal/games/flood"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flood",
	Short: "Flood - a color flood puzzle in your terminal",
	Long: `Flood is a terminal puzzle game. Every move repaints the flooded
region, which always contains the top-left tile, into a color of your
choice; adjacent tiles of that color join the region. Fill the whole
board to finish the level.

Available commands:
  play     - Play a mode (interactive picker when no mode is given)
  scores   - View high scores
  list     - Show all available modes

Examples:
  flood play
  flood play flood --difficulty hard
  flood play flood_zen --width 8 --height 8 --colors 4
  flood scores flood`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.flood/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
}
