// snake is a classic grid Snake game for the terminal, a desktop window, or
// remote players over SSH.
//
// Usage:
//
//	snake play [variant]     - Play in the terminal (menu when no variant is given)
//	snake window [variant]   - Play in a desktop window
//	snake scores [variant]   - Show high scores
//	snake list               - List available variants
//	snake serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.snake/scores.db)
//	--config <path>       - Load a custom config YAML
//	--difficulty <name>   - Difficulty preset: easy, normal, hard, fixed
//	--log-level <level>   - debug, info, warn, error
//	--log-file <path>     - Write logs to a file
//	--sound               - Enable sound effects
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/audio"
	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
	flagSound      bool
)

var (
	logger  = log.NewWithOptions(os.Stderr, log.Options{Prefix: "snake"})
	logFile *os.File
	gameCfg config.SnakeConfig
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic grid game in your terminal",
	Long: `Snake moves on a fixed grid, grows by eating apples, and loses when it
hits a wall or itself.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  scores   - View high scores
  list     - Show all variants
  serve    - Start SSH server for remote play

Examples:
  snake play
  snake play snake_sampled --difficulty hard
  snake window --fps 120
  snake serve --ssh :2222
  snake scores snake`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.snake/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file instead of stderr")
	pf.BoolVar(&flagSound, "sound", false, "Enable sound effects (overrides config)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// setup configures logging and loads the game config shared by every command.
func setup(cmd *cobra.Command, args []string) error {
	if err := setupLogging(cmd, args); err != nil {
		return err
	}

	preset, err := config.ParseDifficultyPreset(flagDifficulty)
	if err != nil {
		return err
	}

	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return err
	}
	config.ApplySnakePreset(&cfg, preset)
	if cmd.Flags().Changed("sound") {
		cfg.Sound.Enabled = flagSound
	}

	gameCfg = cfg
	snake.SetConfig(cfg)
	logger.Debug("config loaded", "path", flagConfig, "grid", fmt.Sprintf("%dx%d", cfg.Grid.Width, cfg.Grid.Height), "difficulty", preset)
	return nil
}

// setupLogging applies --log-level and --log-file.
func setupLogging(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	logger.SetLevel(level)

	if flagLogFile != "" {
		if err := os.MkdirAll(filepath.Dir(flagLogFile), 0o755); err != nil {
			return fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		logger.SetOutput(f)
		logger.SetReportTimestamp(true)
	}
	return nil
}

// tuiLogger returns the logger for full-screen terminal sessions, which
// must not write to the terminal they draw on.
func tuiLogger() *log.Logger {
	if logFile == nil {
		return log.New(io.Discard)
	}
	return logger
}

// openStore opens the scores database. Scores are optional: on failure the
// game runs without them.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// openSound starts audio output when enabled. Returns nil when sound is off
// or the device cannot be opened.
func openSound() *audio.SoundManager {
	if !gameCfg.Sound.Enabled {
		return nil
	}
	sm := audio.NewSoundManager(audio.Config{
		Enabled:    true,
		Volume:     gameCfg.Sound.Volume,
		SampleRate: audio.DefaultSampleRate,
	})
	if err := sm.Initialize(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: sound disabled: %v\n", err)
		return nil
	}
	return sm
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed,
	}
}
