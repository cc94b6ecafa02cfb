// bricks is a brick breaker for the terminal.
//
// Usage:
//
//	bricks play              - Play in this terminal
//	bricks serve             - Start SSH server for remote play
//	bricks scores            - Show session history
//	bricks replay <file>     - Re-simulate a recorded session
//
// Global flags:
//
//	--fps <rate>            - Set tick rate (default: 60)
//	--db <path>             - Set database path (default: ~/.bricks/bricks.db)
//	--config <path>         - Custom game config YAML
//	--difficulty <preset>   - easy, normal, hard or fixed
//	--log-level <level>     - debug, info, warn or error
//	--log-file <path>       - Log destination (default: ~/.bricks/bricks.log)
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/brick-breaker/internal/config"
	"github.com/vovakirdan/brick-breaker/internal/sprites"
)

var (
	// Global flags
	flagFPS        int
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bricks",
	Short: "Brick Breaker - break bricks in your terminal",
	Long: `Brick Breaker is a paddle and ball game for the terminal.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  scores   - View session history
  replay   - Re-simulate a recorded session

Examples:
  bricks play
  bricks play --difficulty hard --record ./run.json
  bricks serve --ssh :2222
  bricks scores -i
  bricks replay ./run.json`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.bricks/bricks.db", "Path to session history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file (default ~/.bricks/bricks.log)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(replayCmd)
}

// newFileLogger opens the log file for a command that owns the terminal.
// The returned close func is never nil.
func newFileLogger() (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, func() {}, fmt.Errorf("invalid --log-level: %w", err)
	}

	path := flagLogFile
	if path == "" {
		path = filepath.Join(config.Dir(), "bricks.log")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, func() {}, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, func() {}, fmt.Errorf("open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "bricks",
	})
	return logger, func() { _ = f.Close() }, nil
}

// loadGame resolves the game config, difficulty preset and sprite atlas
// from the global flags.
func loadGame() (config.GameConfig, config.DifficultyPreset, *sprites.Atlas, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, "", nil, err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return cfg, "", nil, err
	}
	config.ApplyPreset(&cfg, preset)

	var atlas *sprites.Atlas
	if cfg.Atlas != "" {
		atlas, err = sprites.Load(cfg.Atlas)
	} else {
		atlas, err = sprites.Default()
	}
	if err != nil {
		return cfg, "", nil, err
	}
	return cfg, preset, atlas, nil
}
