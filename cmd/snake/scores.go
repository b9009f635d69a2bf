package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagScoresLimit       int
	flagScoresInteractive bool
	flagScoresAll         bool
	flagScoresClear       bool
	flagScoresRun         string
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show high scores",
	Long: `Display the top scores for a variant (default: snake), or browse every
variant in the interactive scoreboard.

Every saved run is logged with its run id; --run looks one up.

Examples:
  snake scores
  snake scores snake_sampled --limit 20
  snake scores --all
  snake scores --run 5f0c6a2e-...
  snake scores snake_sampled --clear
  snake scores -i`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagScoresLimit, "limit", "n", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVarP(&flagScoresInteractive, "interactive", "i", false, "Open the interactive scoreboard")
	scoresCmd.Flags().BoolVarP(&flagScoresAll, "all", "a", false, "Show every recorded score")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores for the variant")
	scoresCmd.Flags().StringVar(&flagScoresRun, "run", "", "Show a single run by its id")
	scoresCmd.MarkFlagsMutuallyExclusive("all", "clear", "run", "interactive")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := "snake"
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'snake list' to see available variants.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagScoresInteractive:
		cfg := runtimeConfig()
		if _, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH, gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	case flagScoresRun != "":
		err = printRun(os.Stdout, store, flagScoresRun)
	case flagScoresClear:
		err = clearScores(os.Stdout, store, gameID)
	default:
		limit := flagScoresLimit
		if flagScoresAll {
			limit = 0
		}
		err = printScores(os.Stdout, store, gameID, limit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// printScores writes the score table for a variant. A limit of zero lists
// every recorded run.
func printScores(w io.Writer, store *storage.Store, gameID string, limit int) error {
	info, ok := registry.Lookup(gameID)
	if !ok {
		return fmt.Errorf("%w %q", registry.ErrUnknownVariant, gameID)
	}

	var (
		scores []storage.ScoreEntry
		err    error
	)
	if limit > 0 {
		scores, err = store.TopScores(gameID, limit)
	} else {
		scores, err = store.AllScores(gameID)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "High Scores - %s\n\n", info.Title)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Play 'snake play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-12s  %-6s  %-6s  %s\n", "Rank", "Player", "Score", "Length", "Date")
	fmt.Fprintf(w, "  %-4s  %-12s  %-6s  %-6s  %s\n", "----", "------", "-----", "------", "----")
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Fprintf(w, "  %-4d  %-12s  %-6d  %-6d  %s\n", i+1, entry.Player, entry.Score, entry.Length, dateStr)
	}

	fmt.Fprintln(w)
	if stats, err := store.GetGameStats(gameID); err == nil && stats.GamesCount > 0 {
		fmt.Fprintf(w, "Best: %d  Runs: %d  Average: %.1f  Longest snake: %d\n",
			stats.HighScore, stats.GamesCount, stats.AvgScore, stats.LongestRun)
	}
	return nil
}

// printRun writes the details of one saved run.
func printRun(w io.Writer, store *storage.Store, runID string) error {
	entry, err := store.RunByID(runID)
	if err != nil {
		return err
	}
	if entry == nil {
		return fmt.Errorf("no run with id %q", runID)
	}

	fmt.Fprintf(w, "Run     %s\n", entry.RunID)
	fmt.Fprintf(w, "Variant %s\n", entry.GameID)
	fmt.Fprintf(w, "Player  %s\n", entry.Player)
	fmt.Fprintf(w, "Score   %d\n", entry.Score)
	fmt.Fprintf(w, "Length  %d\n", entry.Length)
	fmt.Fprintf(w, "Date    %s\n", entry.CreatedAt.Format("2006-01-02 15:04"))
	return nil
}

func clearScores(w io.Writer, store *storage.Store, gameID string) error {
	if err := store.ClearScores(gameID); err != nil {
		return err
	}
	logger.Info("scores cleared", "variant", gameID)
	fmt.Fprintf(w, "Cleared all scores for %s.\n", gameID)
	return nil
}
