package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/shapematch/internal/match"
	"github.com/vovakirdan/shapematch/internal/platform/tui"
	"github.com/vovakirdan/shapematch/internal/storage"
)

var (
	flagInteractive bool
	flagClear       bool
	flagLimit       int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show recorded rounds",
	Long: `Display the best recorded rounds.

Examples:
  shapematch scores
  shapematch scores --limit 20
  shapematch scores --interactive
  shapematch scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in a table view")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded rounds")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of rounds to show")
}

func runScores(cmd *cobra.Command, args []string) {
	title := "Shape Match"

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(match.GameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Scores cleared.")
		return
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, match.GameID, title, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	scores, err := store.TopScores(match.GameID, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	// Display scores
	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'shapematch play' to set the first high score!")
		return
	}

	// Print header
	format := "  %-5s  %-5s  %-6s  %-9s  %-6s  %s\n"
	fmt.Printf(format, "Rank", "Score", "Placed", "Ended", "Time", "Date")
	fmt.Printf(format, "----", "-----", "------", "-----", "----", "----")

	for i, entry := range scores {
		row := tui.ScoreRow(i+1, entry)
		fmt.Printf(format, row[0], row[1], row[2], row[3], row[4], row[5])
	}

	// Show high score
	fmt.Println()
	if highScore, err := store.HighScore(match.GameID); err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
}
