package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dkoval/chomp-arcade/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default config YAML",
	Long: `Print the built-in default configuration in YAML form.

Redirect the output to a file, edit it, and pass it back with
'chomp play --config':

  chomp config > my-chomp.yaml
  chomp play --config ./my-chomp.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) {
	data := config.GetDefaultYAML("chomp")
	if len(data) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no default config available")
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
