// shapematch is a timed drag-and-drop shape matching game for the terminal.
//
// Usage:
//
//	shapematch play          - Play a round
//	shapematch scores        - Show recorded rounds
//	shapematch catalog       - List the tokens of the active config
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--db <path>         - Set database path (default: ~/.shapematch/scores.db)
//	--log-file <path>   - Write debug logs of the round to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS     int
	flagDBPath  string
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shapematch",
	Short: "Shape Match - drag shapes onto their slots before time runs out",
	Long: `Shape Match is a terminal game: drag each shape with the mouse onto
the slot with its name before the countdown ends. Every shape dropped
close enough to its slot locks in place and scores a point.

Available commands:
  play     - Play a round
  scores   - View recorded rounds
  catalog  - List the shapes of the active config

Examples:
  shapematch play
  shapematch play --duration 30s
  shapematch scores --interactive
  shapematch catalog --config ./my-match.yaml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.shapematch/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write round debug logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(catalogCmd)
}

// newLogger returns the console logger used outside the TUI.
func newLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "shapematch",
	})
}

// newRoundLogger returns the logger used while the TUI owns the terminal.
// Without --log-file, round logs are discarded. The returned closer must
// be called when the round ends.
func newRoundLogger() (*log.Logger, io.Closer, error) {
	if flagLogFile == "" {
		return log.New(io.Discard), io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "round",
		Level:           log.DebugLevel,
	})
	return logger, f, nil
}
