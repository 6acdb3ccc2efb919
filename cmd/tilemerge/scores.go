package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tile-merge/internal/platform/tui"
)

var (
	flagInteractive bool
	flagLimit       int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the top finished games",
	Long: `Display the highest scoring finished games.

Examples:
  tilemerge scores
  tilemerge scores --limit 25
  tilemerge scores --interactive`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in a scrollable table")
	scoresCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of games to show")
}

func runScores(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, width, height)
	}

	games, err := store.TopGames(flagLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "High Scores")
	fmt.Fprintln(out)

	if len(games) == 0 {
		fmt.Fprintln(out, "No games recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'tilemerge play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-8s  %-6s  %-6s  %-3s  %s\n", "Rank", "Score", "Max", "Moves", "Won", "Date")
	fmt.Fprintf(out, "  %-4s  %-8s  %-6s  %-6s  %-3s  %s\n", "----", "-----", "---", "-----", "---", "----")
	for i, g := range games {
		won := ""
		if g.Won {
			won = "yes"
		}
		fmt.Fprintf(out, "  %-4d  %-8d  %-6d  %-6d  %-3s  %s\n",
			i+1, g.Score, g.MaxTile, g.Moves, won, g.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.Stats(); err == nil {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Games: %d  Wins: %d  Average: %.0f\n", stats.GamesCount, stats.Wins, stats.AvgScore)
	}
	return nil
}
