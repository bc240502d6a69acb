// chomp is a terminal maze-chase arcade game.
//
// Usage:
//
//	chomp play               - Play the game
//	chomp scores             - Show the high score table
//	chomp serve              - Start SSH server for remote play
//	chomp check <maze.yaml>  - Validate a custom maze file
//	chomp config             - Print the default config YAML
//	chomp list               - List registered games
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.chomp/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/dkoval/chomp-arcade/internal/games/chomp"
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
	Use:   "chomp",
	Short: "Chomp - a maze-chase arcade game for your terminal",
	Long: `Chomp is a terminal maze-chase game: clear every dot while four
pursuers with distinct hunting styles close in. Power pellets turn the
tables for a few seconds, fruit bonuses wander the tunnels, and each
level tightens the screws.

Available commands:
  play     - Play the game
  scores   - View high scores
  serve    - Start SSH server for remote play
  check    - Validate a custom maze file
  config   - Print the default config YAML
  list     - List registered games

Examples:
  chomp play
  chomp play --difficulty hard
  chomp play --maze ./my-maze.yaml
  chomp serve --ssh :2222
  chomp scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.chomp/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(listCmd)
}
