// tower is an endless vertical jumping game for the terminal.
//
// Usage:
//
//	tower play               - Play the game
//	tower scores             - Show the leaderboard
//	tower serve              - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>  - Use a specific config file
//	--db <path>      - Override the scores database path
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hugomg/falling-tower/internal/config"
)

var (
	// Global flags
	flagConfig string
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tower",
	Short: "Falling Tower - an endless jumping game in your terminal",
	Long: `Falling Tower is a terminal rendition of the classic endless
jumping game: climb an infinite tower of platforms while the screen
scrolls ever faster beneath you.

Available commands:
  play     - Play the game
  scores   - View the leaderboard
  serve    - Start SSH server for remote play

Examples:
  tower play
  tower play --seed 42 --hard-scroll
  tower scores
  tower serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML (default: ~/.falling-tower/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (overrides config)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig loads the effective configuration, applying global flag
// overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	return cfg, nil
}
