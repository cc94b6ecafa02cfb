package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/brick-breaker/internal/platform/tui"
	"github.com/vovakirdan/brick-breaker/internal/storage"
)

var (
	flagScoresLimit       int
	flagScoresRecent      bool
	flagScoresPlayer      string
	flagScoresInteractive bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show session history",
	Long: `Display the best (or most recent) rounds from the history database.

Examples:
  bricks scores
  bricks scores --recent --limit 20
  bricks scores --player alice
  bricks scores -i`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of rounds to show")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "Show most recent rounds instead of the best")
	scoresCmd.Flags().StringVar(&flagScoresPlayer, "player", "", "Only show rounds of this player")
	scoresCmd.Flags().BoolVarP(&flagScoresInteractive, "interactive", "i", false, "Browse history in a table")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening history database: %w", err)
	}
	defer store.Close()

	if flagScoresInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		return tui.RunScoreboard(store, width, height)
	}

	var records []storage.SessionRecord
	title := "Best Rounds"
	switch {
	case flagScoresPlayer != "":
		title = "Rounds of " + flagScoresPlayer
		records, err = store.PlayerSessions(flagScoresPlayer, flagScoresLimit)
	case flagScoresRecent:
		title = "Recent Rounds"
		records, err = store.RecentSessions(flagScoresLimit)
	default:
		records, err = store.TopSessions(flagScoresLimit)
	}
	if err != nil {
		return fmt.Errorf("retrieving rounds: %w", err)
	}

	fmt.Printf("%s\n\n", title)

	if len(records) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Println("Play 'bricks play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-7s  %-9s  %-6s  %-6s  %-12s  %s\n", "Rank", "Score", "Result", "Bricks", "Time", "Player", "Date")
	fmt.Printf("  %-4s  %-7s  %-9s  %-6s  %-6s  %-12s  %s\n", "----", "-----", "------", "------", "----", "------", "----")
	for i, r := range records {
		fmt.Printf("  %-4d  %-7d  %-9s  %-6d  %-6s  %-12s  %s\n",
			i+1, r.Score, r.Outcome, r.BricksDestroyed, tui.FormatTicks(r.Ticks, 60), r.Player,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if sum, err := store.Summary(); err == nil {
		fmt.Printf("Rounds: %d  Cleared: %d  Best: %d  Average: %.1f  Bricks: %d\n",
			sum.Sessions, sum.Wins, sum.HighScore, sum.AvgScore, sum.TotalBricks)
	}
	return nil
}
