package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wordsnake/internal/games/wordsnake"
	"github.com/vovakirdan/wordsnake/internal/registry"
	"github.com/vovakirdan/wordsnake/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresRecent bool
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show the best rounds of a mode",
	Long: `Display the best rounds for a mode (wordsnake by default), ranked by
the best human score and then by words completed.

Examples:
  wordsnake scores
  wordsnake scores wordsnake_duo --limit 20
  wordsnake scores --recent
  wordsnake scores --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of rounds to show")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "Show the latest rounds instead of the best")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores of the mode")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := wordsnake.IDSolo
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'wordsnake list')", gameID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			return fmt.Errorf("clearing scores: %w", err)
		}
		fmt.Printf("Cleared all scores for %s.\n", gameID)
		return nil
	}

	return printScores(os.Stdout, store, gameID)
}

// printScores writes the round table and the mode's stats to w.
func printScores(w io.Writer, store *storage.Store, gameID string) error {
	if store == nil {
		return errors.New("no scores database")
	}

	title := "High Scores"
	rounds, err := store.TopRounds(gameID, flagScoresLimit)
	if flagScoresRecent {
		title = "Recent Rounds"
		rounds, err = store.RecentRounds(gameID, flagScoresLimit)
	}
	if err != nil {
		return fmt.Errorf("retrieving rounds: %w", err)
	}

	fmt.Fprintf(w, "%s - %s\n\n", title, gameID)

	if len(rounds) == 0 {
		fmt.Fprintln(w, "No rounds recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'wordsnake play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-6s  %-4s  %-5s  %-6s  %-20s  %s\n", "Rank", "Score", "AI", "Words", "Ticks", "End", "Date")
	fmt.Fprintf(w, "  %-4s  %-6s  %-4s  %-5s  %-6s  %-20s  %s\n", "----", "-----", "--", "-----", "-----", "---", "----")
	for i, r := range rounds {
		end := r.Reason
		if r.Culprit != "" {
			end = r.Culprit + " " + r.Reason
		}
		fmt.Fprintf(w, "  %-4d  %-6d  %-4d  %-5d  %-6d  %-20s  %s\n",
			i+1, r.HumanScore, r.AIScore, r.WordsCompleted, r.Ticks, end, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return nil
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Best: %d  Rounds: %d  Average: %.1f  Words: %d  Longest: %d ticks\n",
		stats.HighScore, stats.GamesCount, stats.AvgScore, stats.TotalWords, stats.LongestTick)
	return nil
}
