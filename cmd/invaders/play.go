package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invaders/internal/audio"
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

const defaultGame = "invaders"

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play the game",
	Long: `Start playing. The game defaults to invaders.

Controls:
  Left/A, Right/D  - Move
  Space            - Fire
  Enter            - Start from the title screen
  P/Esc            - Pause
  Ctrl+S           - Save a screenshot to ~/.invaders/screenshots
  Q/Ctrl+C         - Quit

Examples:
  invaders play
  invaders play --seed 42
  invaders play --config ./my-invaders.yaml --mute`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := defaultGame
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'invaders list' to see available games", gameID)
	}

	opts, err := loadOptions()
	if err != nil {
		return err
	}

	logger, logCloser, err := newLogger(opts.LogFile, opts.LogLevel)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	cfg, source, err := config.LoadInvaders(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logger.Info("config loaded", "source", source)

	sink, closeAudio := openAudio(opts.Mute, logger)
	defer closeAudio()

	game, err := registry.Create(gameID, registry.Env{
		Config: &cfg,
		Audio:  sink,
		Logger: logger,
	})
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	tickRate := cfg.Timing.TickRate
	if opts.FPS > 0 {
		tickRate = opts.FPS
	}

	rc := core.RuntimeConfig{
		ScreenW:      width,
		ScreenH:      height,
		TickRate:     tickRate,
		Seed:         opts.Seed,
		FireInterval: time.Duration(cfg.Timing.EnemyFireMS) * time.Millisecond,
	}

	if err := tui.Run(game, rc, logger); err != nil {
		return err
	}
	logger.Info("bye")
	return nil
}

// openAudio starts the sound engine. Sound is optional: a failing device
// falls back to silence.
func openAudio(mute bool, logger *log.Logger) (audio.Sink, func()) {
	if mute {
		return audio.Nop{}, func() {}
	}

	engine := audio.NewEngine()
	if err := engine.Init(); err != nil {
		logger.Warn("audio unavailable, continuing without sound", "error", err)
		return audio.Nop{}, func() {}
	}
	return engine, engine.Close
}
