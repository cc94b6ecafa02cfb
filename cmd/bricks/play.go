package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/brick-breaker/internal/audio"
	"github.com/vovakirdan/brick-breaker/internal/config"
	"github.com/vovakirdan/brick-breaker/internal/core"
	"github.com/vovakirdan/brick-breaker/internal/platform/tui"
	"github.com/vovakirdan/brick-breaker/internal/replay"
	"github.com/vovakirdan/brick-breaker/internal/storage"
)

var (
	flagRecord  string
	flagNoAudio bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start the menu and play rounds until you quit.

Controls:
  Left/Right, A/D  - Move paddle
  Up/Down, W/S     - Menu focus
  Space/Enter      - Launch ball / select
  Esc              - Leave round (quit from menu)
  F/F11            - Toggle fullscreen
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slower ball, fewer rows, weaker bricks
  normal - Config as written
  hard   - Faster ball, more rows, tougher bricks
  fixed  - Config as written, never adjusted

Examples:
  bricks play
  bricks play --difficulty easy
  bricks play --config ./my-bricks.yaml
  bricks play --record ./run.json`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagRecord, "record", "", "Record input to a replay file")
	playCmd.Flags().BoolVar(&flagNoAudio, "no-audio", false, "Disable sound")
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newFileLogger()
	defer closeLog()
	if err != nil {
		return err
	}

	cfg, preset, atlas, err := loadGame()
	if err != nil {
		return err
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	settingsPath := config.SettingsPath()
	settings, err := config.LoadSettings(settingsPath)
	if err != nil {
		logger.Warn("could not load settings, using defaults", "error", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open history database: %v\n", err)
		logger.Warn("could not open history database", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	player := newAudio(cfg, logger)
	defer player.Close()

	var recorder *replay.Recorder
	if flagRecord != "" {
		recorder = replay.NewRecorder(cfg, atlas, string(preset))
	}

	logger.Info("starting", "difficulty", preset, "fps", flagFPS, "width", width, "height", height)
	final, runErr := tui.Run(tui.Options{
		Config:   cfg,
		Atlas:    atlas,
		Settings: settings,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
		},
		Store:      store,
		Audio:      player,
		Logger:     logger,
		Recorder:   recorder,
		Difficulty: string(preset),
	})

	if settingsPath != "" {
		if err := config.SaveSettings(settingsPath, final); err != nil {
			logger.Warn("could not save settings", "error", err)
		}
	}
	if recorder != nil {
		if err := recorder.Save(flagRecord); err != nil {
			logger.Error("could not save replay", "error", err)
			fmt.Fprintf(os.Stderr, "Error saving replay: %v\n", err)
		} else {
			fmt.Printf("Replay saved to %s\n", flagRecord)
		}
	}

	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}

// newAudio opens the speaker, falling back to silence.
func newAudio(cfg config.GameConfig, logger *log.Logger) audio.Player {
	if flagNoAudio || !cfg.Audio.Enabled {
		return audio.Nop{}
	}
	sp := audio.NewSpeaker(cfg.Audio.Volume)
	if err := sp.Init(); err != nil {
		logger.Warn("audio unavailable", "error", err)
		return audio.Nop{}
	}
	return sp
}
