package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration YAML",
	Long: `Print the default gameplay configuration in YAML format.

Save it to ~/.invaders/configs/invaders.yaml or pass it with --config
to customize gameplay:

  invaders config > my-invaders.yaml
  invaders play --config my-invaders.yaml`,
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Print(string(config.GetDefaultYAML()))
	},
}
