package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/window"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

var windowCmd = &cobra.Command{
	Use:   "window [variant]",
	Short: "Play in a desktop window",
	Long: `Open a resizable desktop window and play the given variant
(default: snake). The grid is scaled to the largest whole cell size that fits.

Controls:
  WASD/Arrows  - Steer
  P/Esc        - Pause
  R            - Restart (after game over)
  Q            - Quit

Examples:
  snake window
  snake window snake_sampled --fps 120`,
	Args: cobra.MaximumNArgs(1),
	Run:  runWindow,
}

func runWindow(cmd *cobra.Command, args []string) {
	gameID := snake.VariantClassic
	if len(args) == 1 {
		gameID = args[0]
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'snake list' to see available variants.")
		os.Exit(1)
	}
	sg, ok := game.(*snake.Game)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: %q cannot run in a window\n", gameID)
		os.Exit(1)
	}

	// The config's frame rate applies unless --fps was given
	fps := gameCfg.Render.FPS
	if cmd.Flags().Changed("fps") {
		fps = flagFPS
	}

	store := openStore()
	sound := openSound()

	runErr := window.Run(sg, window.Options{
		Width:  gameCfg.Render.ScreenWidth,
		Height: gameCfg.Render.ScreenHeight,
		FPS:    fps,
		Seed:   flagSeed,
		Store:  store,
		Sound:  sound,
		Logger: logger,
	})

	closeAll(store, sound)

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running window: %v\n", runErr)
		os.Exit(1)
	}
}
