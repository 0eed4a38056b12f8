package main

import (
	"fmt"
	"math"
	"sort"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/grid-arcade/internal/registry"
	"github.com/vovakirdan/grid-arcade/internal/storage"
)

var (
	flagLimit   int
	flagClear   bool
	flagAll     bool
	flagFastest bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores for a game",
	Long: `Display the best results for the specified game.

Every Minesweeper board size and Gemgem preset keeps its own table.

Examples:
  arcade scores minesweeper_beginner
  arcade scores gemgem --limit 20
  arcade scores gemgem --limit 0
  arcade scores minesweeper_expert --fastest
  arcade scores gemgem --clear
  arcade scores --all`,
	Args: func(cmd *cobra.Command, args []string) error {
		if flagAll {
			return cobra.NoArgs(cmd, args)
		}
		return cobra.ExactArgs(1)(cmd, args)
	},
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of results to show (0 for all)")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all stored results for the game")
	scoresCmd.Flags().BoolVar(&flagAll, "all", false, "Show a summary for every game")
	scoresCmd.Flags().BoolVar(&flagFastest, "fastest", false, "List the quickest wins instead of the top scores")
}

func runScores(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagAll {
		return printAllStats(store)
	}

	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}

	if flagClear {
		n, err := store.ClearScores(gameID)
		if err != nil {
			return err
		}
		fmt.Printf("Removed %d results for %s.\n", n, gameID)
		return nil
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	return printScores(store, gameID, game.Title())
}

func printScores(store *storage.Store, gameID, title string) error {
	heading := "High Scores"
	if flagFastest {
		heading = "Fastest Wins"
	}

	scores, err := listScores(store, gameID, flagLimit, flagFastest)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("%s - %s\n\n", heading, title)
	if len(scores) == 0 {
		fmt.Println("No results recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to set the first one!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-7s  %-8s  %-6s  %-12s  %s\n", "Rank", "Score", "Result", "Time", "Player", "Date")
	fmt.Printf("  %-4s  %-7s  %-8s  %-6s  %-12s  %s\n", "----", "-----", "------", "----", "------", "----")
	for i, e := range scores {
		outcome := e.Outcome
		if outcome == "" {
			outcome = "-"
		}
		fmt.Printf("  %-4d  %-7d  %-8s  %-6s  %-12s  %s\n",
			i+1, e.Score, outcome, clock(e.Duration), e.Player, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Printf("\n%s\n", statsLine(stats))
	}
	return nil
}

// listScores picks the query behind a scores listing. A limit of zero or
// less lists every result.
func listScores(store *storage.Store, gameID string, limit int, fastest bool) ([]storage.ScoreEntry, error) {
	switch {
	case fastest:
		if limit <= 0 {
			limit = math.MaxInt32
		}
		return store.FastestWins(gameID, limit)
	case limit <= 0:
		return store.AllScores(gameID)
	}
	return store.TopScores(gameID, limit)
}

// statsLine summarises one game's stored results.
func statsLine(s *storage.GameStats) string {
	line := fmt.Sprintf("Played %d, won %d, best %d", s.GamesCount, s.Wins, s.HighScore)
	if s.Wins > 0 {
		line += ", best time " + clock(s.BestTime)
	}
	return line
}

func printAllStats(store *storage.Store) error {
	stats, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		fmt.Println("No results recorded yet.")
		return nil
	}

	ids := lo.Keys(stats)
	sort.Strings(ids)

	fmt.Printf("  %-26s  %6s  %5s  %7s  %8s  %9s\n", "Game", "Played", "Wins", "Best", "Average", "Best time")
	for _, id := range ids {
		s := stats[id]
		best := "-"
		if s.Wins > 0 {
			best = clock(s.BestTime)
		}
		fmt.Printf("  %-26s  %6d  %5d  %7d  %8.1f  %9s\n", id, s.GamesCount, s.Wins, s.HighScore, s.AvgScore, best)
	}
	return nil
}

// clock renders seconds as m:ss.
func clock(secs int) string {
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
