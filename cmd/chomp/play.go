package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dkoval/chomp-arcade/internal/core"
	"github.com/dkoval/chomp-arcade/internal/games/chomp"
	"github.com/dkoval/chomp-arcade/internal/platform/tui"
	"github.com/dkoval/chomp-arcade/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMaze       string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game run.

Controls:
  WASD/Arrows - Steer
  P           - Pause
  R           - Restart (after game over)
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - More lives, slower pursuers
  normal - Default balance
  hard   - Fewer lives, faster pursuers
  fixed  - No per-level scaling, every level plays like the first

Examples:
  chomp play
  chomp play --difficulty easy
  chomp play --config ./my-chomp.yaml
  chomp play --maze ./my-maze.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagMaze, "maze", "", "Path to custom maze YAML (replaces the built-in rotation)")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Get terminal size
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

	// Wire flags into the game before creation
	chomp.SetConfigPath(flagConfig)
	chomp.SetDifficultyPreset(flagDifficulty)
	chomp.SetMazePath(flagMaze)

	// Fail fast on a broken maze file instead of silently falling back
	if flagMaze != "" {
		if _, err := chomp.LoadLayoutFile(flagMaze); err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid maze file: %v\n", err)
			os.Exit(1)
		}
	}

	game := chomp.New()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
