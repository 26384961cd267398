package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/hugomg/falling-tower/internal/platform/tui"
	"github.com/hugomg/falling-tower/internal/storage"
)

var flagPlain bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the recorded high scores.

Opens an interactive scoreboard when running in a terminal; use
--plain for script-friendly text output.

Examples:
  tower scores
  tower scores --plain`,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print scores as plain text")
}

func runScores(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		return fmt.Errorf("cannot open scores database: %w", err)
	}
	defer store.Close()

	width, height, termErr := term.GetSize(int(os.Stdout.Fd()))
	if flagPlain || termErr != nil {
		return printScores(store)
	}

	return tui.RunScoreboard(store, width, height)
}

// printScores writes the leaderboard as plain text.
func printScores(store *storage.Store) error {
	scores, err := store.TopScores(10)
	if err != nil {
		return fmt.Errorf("cannot retrieve scores: %w", err)
	}

	fmt.Println("High Scores - Falling Tower")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'tower play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-12s  %s\n", "Rank", "Score", "Seed", "Date")
	fmt.Printf("  %-4s  %-10s  %-12s  %s\n", "----", "-----", "----", "----")

	for i, entry := range scores {
		seed := entry.Seed
		if seed == "" {
			seed = "-"
		}
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-12s  %s\n", i+1, entry.Score, seed, dateStr)
	}

	fmt.Println()
	if best, err := store.HighScore(); err == nil {
		fmt.Printf("Best: %d", best)
	}
	if today, err := store.BestToday(); err == nil {
		fmt.Printf("   Best today: %d", today)
	}
	fmt.Println()
	return nil
}
