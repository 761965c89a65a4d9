package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/avanyukov/skyflap/internal/config"
	"github.com/avanyukov/skyflap/internal/core"
	"github.com/avanyukov/skyflap/internal/game"
	"github.com/avanyukov/skyflap/internal/platform/tui"
	"github.com/avanyukov/skyflap/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagDebug      bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start the game in the current terminal.

Controls:
  Space/Up/W - Flap (also starts and restarts)
  P/Esc      - Pause
  D          - Toggle hitbox debug overlay
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Gentle ramp
  normal - Default ramp
  hard   - Steep ramp, tighter gap floor
  fixed  - No ramp at all

Examples:
  skyflap play
  skyflap play --difficulty hard
  skyflap play --config ./my-skyflap.yaml
  skyflap play --debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagDebug, "debug", false, "Start with the hitbox debug overlay on")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagDifficulty != "" {
		preset := config.DifficultyPreset(flagDifficulty)
		switch preset {
		case config.DifficultyEasy, config.DifficultyNormal, config.DifficultyHard, config.DifficultyFixed:
			config.ApplyPreset(&cfg, preset)
		default:
			return fmt.Errorf("unknown difficulty %q (use easy, normal, hard, or fixed)", flagDifficulty)
		}
	}
	if flagDebug {
		cfg.Debug.ShowHitboxes = true
	}

	// Probe terminal size for the renderer
	runtime := core.DefaultRuntimeConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		runtime.ScreenW = w
		runtime.ScreenH = h
	}
	runtime.TickRate = flagFPS
	runtime.Seed = flagSeed

	// Open score storage; the game still works without it
	var rec game.ScoreRecorder
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
	} else {
		rec = store
		defer store.Close()
	}

	sim := game.New(cfg, runtime.Seed, rec)
	if err := tui.Run(sim, cfg, runtime); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
