package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/shapematch/internal/config"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the shapes of the active config",
	Long: `Shows every token with its kind, color, start and slot position,
along with the round settings of the active config.

Use --defaults to print the built-in config as YAML, a starting point
for a custom --config file.`,
	Args: cobra.NoArgs,
	Run:  runCatalog,
}

var flagDefaults bool

func init() {
	catalogCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom match config YAML")
	catalogCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in config YAML")
}

func runCatalog(cmd *cobra.Command, args []string) {
	if flagDefaults {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Config: %s\n", source)
	fmt.Printf("Canvas: %dx%d  Duration: %s  Shape size: %d  Threshold: %d\n",
		cfg.Canvas.Width, cfg.Canvas.Height, cfg.Gameplay.Duration,
		cfg.Gameplay.ShapeSize, cfg.Gameplay.MatchThreshold)
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, t := range cfg.Tokens {
		if len(t.Name) > maxNameLen {
			maxNameLen = len(t.Name)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-13s  %-7s  %-10s  %s\n", maxNameLen, "Name", "Kind", "Color", "Start", "Slot")
	fmt.Printf("  %-*s  %-13s  %-7s  %-10s  %s\n", maxNameLen, "----", "----", "-----", "-----", "----")

	for _, t := range cfg.Tokens {
		fmt.Printf("  %-*s  %-13s  %-7s  %-10s  %s\n", maxNameLen, t.Name, t.Kind, t.Color,
			t.Source.Point(), t.Target.Point())
	}
}
