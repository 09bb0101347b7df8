package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/shapematch/internal/background"
	"github.com/vovakirdan/shapematch/internal/config"
	"github.com/vovakirdan/shapematch/internal/core"
	"github.com/vovakirdan/shapematch/internal/match"
	"github.com/vovakirdan/shapematch/internal/platform/tui"
	"github.com/vovakirdan/shapematch/internal/storage"
)

var (
	flagConfig       string
	flagDuration     time.Duration
	flagThreshold    int
	flagBackground   string
	flagNoBackground bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a round",
	Long: `Start a timed round.

Controls:
  Mouse drag  - Pick up a shape and drop it on its slot
  Esc         - End the round early
  Q/Ctrl+C    - Quit immediately

Examples:
  shapematch play
  shapematch play --duration 30s --threshold 80
  shapematch play --background ./space.png
  shapematch play --config ./my-match.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom match config YAML")
	playCmd.Flags().DurationVar(&flagDuration, "duration", 0, "Round length (overrides config)")
	playCmd.Flags().IntVar(&flagThreshold, "threshold", 0, "Match distance per axis (overrides config)")
	playCmd.Flags().StringVar(&flagBackground, "background", "", "Background image (overrides config)")
	playCmd.Flags().BoolVar(&flagNoBackground, "no-background", false, "Use a solid background")
}

func runPlay(cmd *cobra.Command, args []string) {
	logger := newLogger()

	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	config.Overrides{
		Duration:       flagDuration,
		MatchThreshold: flagThreshold,
		Background:     flagBackground,
		NoBackground:   flagNoBackground,
	}.Apply(&cfg)
	logger.Debug("config loaded", "source", source)

	// A missing background is reported once, then the canvas stays solid
	bg, bgErr := background.LoadOrSolid(cfg.Canvas.Background, cfg.Canvas.Width, cfg.Canvas.Height)
	if bgErr != nil {
		var rle *background.ResourceLoadError
		if errors.As(bgErr, &rle) {
			logger.Warn("background unavailable, using solid canvas", "path", rle.Path, "error", rle.Err)
		} else {
			logger.Warn("background unavailable, using solid canvas", "error", bgErr)
		}
	}

	game, err := match.New(cfg, bg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	rcfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	roundLogger, closer, err := newRoundLogger()
	if err != nil {
		logger.Warn("round logging disabled", "error", err)
		roundLogger, closer = nil, nil // The TUI discards logs
	}

	result, runErr := tui.Run(game, store, rcfg, roundLogger)

	if closer != nil {
		closer.Close()
	}
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}

	logger.Info("game over",
		"score", result.Score,
		"total", result.Total,
		"reason", string(result.Reason),
		"elapsed", result.Elapsed.Round(time.Millisecond))
	fmt.Println(match.BannerText(result.Score))
}
