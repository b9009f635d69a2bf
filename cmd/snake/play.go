package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/audio"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play in the terminal",
	Long: `Start playing in the terminal. Without a variant, a menu lets you pick
one and browse the scoreboard; after a game you return to the menu.

Controls:
  WASD/Arrows  - Steer
  P/Esc        - Pause
  R            - Restart (after game over)
  B            - Back to menu (paused or game over)
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Start slow, speed up as the score grows
  normal - Start at 30% speed-up, progresses to max
  hard   - Start at 70% speed-up, progresses to max
  fixed  - No progression, constant move interval

Examples:
  snake play
  snake play snake
  snake play snake_sampled --difficulty hard
  snake play --config ./my-snake.yaml --sound`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	if len(args) == 1 && !registry.Exists(args[0]) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", args[0])
		fmt.Fprintln(os.Stderr, "Run 'snake list' to see available variants.")
		os.Exit(1)
	}

	store := openStore()
	sound := openSound()
	opts := tui.Options{
		Store:  store,
		Sound:  sound,
		Logger: tuiLogger(),
	}
	cfg := runtimeConfig()

	var err error
	if len(args) == 1 {
		var back bool
		back, err = playOnce(args[0], opts, cfg)
		if err == nil && back {
			err = menuLoop(opts, cfg)
		}
	} else {
		err = menuLoop(opts, cfg)
	}

	// Release resources before potential exit
	closeAll(store, sound)

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// playOnce runs one variant. Returns true if the player asked for the menu.
func playOnce(gameID string, opts tui.Options, cfg core.RuntimeConfig) (bool, error) {
	game, err := registry.Create(gameID)
	if err != nil {
		return false, err
	}
	logger.Debug("starting game", "game", gameID, "seed", cfg.Seed)
	return tui.Run(game, opts, cfg)
}

// menuLoop alternates between the menu, the scoreboard and games until the
// player quits.
func menuLoop(opts tui.Options, cfg core.RuntimeConfig) error {
	lastGame := ""
	for {
		menuResult, err := tui.RunMenu(opts.Store, cfg)
		if err != nil {
			return err
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(opts.Store, cfg.ScreenW, cfg.ScreenH, lastGame)
			if sbErr != nil {
				return sbErr
			}
			if goBack {
				continue
			}
			return nil
		}

		// Fresh seed for each game unless one was pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		lastGame = menuResult.GameID
		back, err := playOnce(lastGame, opts, cfg)
		if err != nil {
			return err
		}
		if !back {
			return nil
		}
	}
}

func closeAll(store *storage.Store, sound *audio.SoundManager) {
	if sound != nil {
		sound.Cleanup()
	}
	if store != nil {
		store.Close()
	}
}
