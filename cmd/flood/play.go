package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dchistyakov/flood-tui/internal/config"
	"github.com/dchistyakov/flood-tui/internal/core"
	"github.com/dchistyakov/flood-tui/internal/games/flood"
	"github.com/dchistyakov/flood-tui/internal/platform/tui"
	"github.com/dchistyakov/flood-tui/internal/registry"
	"github.com/dchistyakov/flood-tui/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagWidth      int
	flagHeight     int
	flagColors     int
	flagResume     bool
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play the flood puzzle",
	Long: `Start playing. Without a mode argument an interactive picker is shown.

Controls:
  1-9          - Flood with that palette color
  Left/Right   - Move the palette cursor (a/d and h/l work too)
  Enter/Space  - Flood with the selected color / next level
  P            - Pause
  R            - Restart (abandons the current run)
  Q/Ctrl+C     - Quit (progress is saved)

Difficulty presets:
  easy   - 10x10 board, 4 colors
  normal - 12x12 board, 6 colors
  hard   - 14x14 board, 8 colors

Examples:
  flood play
  flood play flood --difficulty easy
  flood play flood_zen --colors 4
  flood play flood --width 16 --height 16 --colors 8
  flood play flood --resume
  flood play flood --config ./my-flood.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().IntVar(&flagWidth, "width", 0, "Board width (overrides config)")
	playCmd.Flags().IntVar(&flagHeight, "height", 0, "Board height (overrides config)")
	playCmd.Flags().IntVar(&flagColors, "colors", 0, "Palette size (overrides config)")
	playCmd.Flags().BoolVar(&flagResume, "resume", false, "Resume the saved run for this mode")
}

func runPlay(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "flood"})

	// Get terminal size early for the mode selector
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	if flagDifficulty != "" && !config.ValidPreset(flagDifficulty) {
		logger.Warn("unknown difficulty preset, using config values", "preset", flagDifficulty)
		flagDifficulty = ""
	}

	gameID := ""
	if len(args) == 1 {
		gameID = args[0]
		if !registry.Exists(gameID) {
			fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
			fmt.Fprintln(os.Stderr, "Run 'flood list' to see available modes.")
			os.Exit(1)
		}
	} else {
		// Show the mode/difficulty picker
		selection, selErr := tui.RunModeSelector(cfg)
		if selErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
			os.Exit(1)
		}

		// User backed out or quit
		if selection == nil {
			return
		}

		gameID = "flood"
		if selection.Mode == tui.GameModeZen {
			gameID = "flood_zen"
		}
		if flagDifficulty == "" {
			flagDifficulty = string(selection.Preset)
		}
	}

	// Set config path and generation parameters before creation
	flood.SetConfigPath(flagConfig)
	flood.SetDifficultyPreset(flagDifficulty)
	flood.SetBoardOverride(flagWidth, flagHeight, flagColors)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg, flagResume)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
