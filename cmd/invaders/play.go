package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invaders/internal/audio"
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

var flagMute bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start the game in the current terminal.

Controls:
  A/Left     - Move left
  D/Right    - Move right
  Space/W/Up - Fire (also starts a round from the menu)
  P/Esc      - Pause
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - 5 lives, timid enemy fire, gentle speed-up
  normal - Classic parameters
  hard   - 2 lives, aggressive enemy fire, faster formation

Examples:
  invaders play
  invaders play --difficulty hard
  invaders play --config ./my-invaders.yaml
  invaders play --seed 42 --mute`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
}

// loadTuning loads the gameplay config, applies the difficulty preset,
// and converts the result to game tuning parameters.
func loadTuning() (invaders.Tuning, error) {
	cfg, err := config.LoadInvaders(flagConfig)
	if err != nil {
		return invaders.Tuning{}, err
	}

	if flagDifficulty != "" {
		preset := config.DifficultyPreset(flagDifficulty)
		if !config.ValidPreset(preset) {
			return invaders.Tuning{}, fmt.Errorf("unknown difficulty %q (easy, normal, hard)", flagDifficulty)
		}
		config.ApplyInvadersPreset(&cfg, preset)
	}

	return invaders.Tuning{
		PlayerSpeed:  cfg.Physics.PlayerSpeed,
		EnemySpeed:   cfg.Physics.EnemySpeed,
		BulletSpeed:  cfg.Physics.BulletSpeed,
		SpeedRamp:    cfg.Physics.SpeedRamp,
		Lives:        cfg.Gameplay.Lives,
		FireCooldown: cfg.Gameplay.FireCooldown,
		FireChance:   cfg.Gameplay.FireChance,
		RewardBase:   cfg.Gameplay.RewardBase,
	}, nil
}

func runPlay(cmd *cobra.Command, args []string) {
	tuning, err := loadTuning()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Create game instance
	game := invaders.New()
	game.SetTuning(tuning)

	// Sound is best-effort: fall back to silence if the audio device
	// cannot be opened.
	if !flagMute {
		engine := audio.NewEngine()
		if audioErr := engine.Initialize(); audioErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: sound disabled: %v\n", audioErr)
		} else {
			game.SetSound(engine)
			defer engine.Cleanup()
		}
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
