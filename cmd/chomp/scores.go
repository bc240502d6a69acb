package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dkoval/chomp-arcade/internal/platform/tui"
	"github.com/dkoval/chomp-arcade/internal/storage"
)

var flagScoresPlain bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the high score table",
	Long: `Display the high score table.

By default an interactive scoreboard opens. Use --plain for a simple
text listing suitable for scripts.

Examples:
  chomp scores
  chomp scores --plain`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresPlain, "plain", false, "Print scores as plain text instead of the interactive table")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresPlain {
		printScores(store)
		return
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if _, err := tui.RunScoreboard(store, "chomp", "Chomp", width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error showing scores: %v\n", err)
		os.Exit(1)
	}
}

func printScores(store *storage.Store) {
	scores, err := store.TopScores("chomp", 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores - Chomp")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Run 'chomp play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %-6s  %s\n", "Rank", "Score", "Level", "Date")
	fmt.Printf("  %-4s  %-10s  %-6s  %s\n", "----", "-----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-6d  %s\n", i+1, entry.Score, entry.Level, dateStr)
	}

	if stats, statsErr := store.Stats("chomp"); statsErr == nil && stats.Plays > 0 {
		fmt.Println()
		fmt.Printf("Runs: %d  Best: %d  Avg: %.0f  Deepest level: %d\n",
			stats.Plays, stats.Best, stats.Average, stats.MaxLevel)
	}
}
