package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/hugomg/falling-tower/internal/game"
	"github.com/hugomg/falling-tower/internal/platform/tui"
	"github.com/hugomg/falling-tower/internal/storage"
)

var (
	flagSeed       int64
	flagSoftScroll bool
	flagHardScroll bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game of Falling Tower.

Controls:
  Left/Right, A/D  - Run
  Space/Up/W       - Jump (hold for a higher jump)
  P/Esc            - Pause
  Enter            - Skip game over screen / start next game
  Q/Ctrl+C         - Quit

The tower starts scrolling on your first jump and never stops
accelerating. Falling off the bottom of the screen ends the game.

Examples:
  tower play
  tower play --seed 42          # reproducible tower
  tower play --hard-scroll      # whole-tile scrolling
  tower play --config ./my.yaml`,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random)")
	playCmd.Flags().BoolVar(&flagSoftScroll, "soft-scroll", false, "Force pixel-smooth scrolling")
	playCmd.Flags().BoolVar(&flagHardScroll, "hard-scroll", false, "Force whole-tile scrolling")
	playCmd.MarkFlagsMutuallyExclusive("soft-scroll", "hard-scroll")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if flagSoftScroll {
		cfg.Scroll.Soft = true
	}
	if flagHardScroll {
		cfg.Scroll.Soft = false
	}

	// The playfield has a fixed size; warn early when it won't fit.
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		needW, needH := cfg.Field.Width, cfg.Field.Height+2
		if w < needW || h < needH {
			fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, the game needs at least %dx%d\n", w, h, needW, needH)
		}
	}

	var rng *game.RNG
	seedLabel := ""
	if flagSeed != 0 {
		rng = game.NewRNG(uint64(flagSeed), 0)
		seedLabel = fmt.Sprintf("%d", flagSeed)
	} else {
		rng, err = game.NewSeededRNG()
		if err != nil {
			return err
		}
	}

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - the game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	model, err := tui.NewModel(cfg, rng, seedLabel, store)
	if err != nil {
		return err
	}

	return tui.Run(model)
}
