package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dkoval/chomp-arcade/internal/games/chomp"
	"github.com/dkoval/chomp-arcade/internal/games/chomp/sim"
)

var checkCmd = &cobra.Command{
	Use:   "check <maze.yaml>",
	Short: "Validate a custom maze file",
	Long: `Check that a custom maze YAML file is playable.

Validation covers the template grid, tunnel rows, the ghost house
geometry and reachability of every dot from the player spawn.

Examples:
  chomp check ./my-maze.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) {
	path := args[0]

	layout, err := chomp.LoadLayoutFile(path)
	if err != nil {
		var verr sim.ValidationError
		if errors.As(err, &verr) {
			fmt.Fprintf(os.Stderr, "%s: invalid maze (%s): %s\n", path, verr.Code, verr.Message)
		} else {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
		}
		os.Exit(1)
	}

	maze, err := sim.ParseMaze(layout.Template)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
		os.Exit(1)
	}

	fmt.Printf("%s: OK\n", path)
	fmt.Printf("  name:    %s\n", layout.Name)
	fmt.Printf("  size:    %dx%d\n", maze.Width(), maze.Height())
	fmt.Printf("  dots:    %d\n", maze.DotsRemaining())
	fmt.Printf("  tunnels: %d row(s)\n", len(maze.TunnelRows()))
}
