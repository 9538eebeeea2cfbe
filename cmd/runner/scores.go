package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-runner/internal/platform/tui"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

var (
	flagPlain bool
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Browse run history",
	Long: `Show the best and the most recent runs.

Opens an interactive table when attached to a terminal; use --plain
to print the top 10 runs instead.

Examples:
  runner scores
  runner scores --plain
  runner scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print the top runs without the interactive table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the whole run history")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(); err != nil {
			return err
		}
		fmt.Println("Run history cleared.")
		return nil
	}

	width, height, termErr := term.GetSize(int(os.Stdout.Fd()))
	if !flagPlain && termErr == nil {
		return tui.RunScoreboard(store, width, height)
	}
	return printScores(store)
}

func printScores(store *storage.Store) error {
	runs, err := store.TopRuns(10)
	if err != nil {
		return err
	}

	fmt.Println("High Scores")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'runner play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-12s  %-5s  %-8s  %-6s  %s\n", "Rank", "Player", "Level", "Score", "Result", "Date")
	fmt.Printf("  %-4s  %-12s  %-5s  %-8s  %-6s  %s\n", "----", "------", "-----", "-----", "------", "----")
	for i, r := range runs {
		result := "lost"
		if r.Won {
			result = "won"
		}
		fmt.Printf("  %-4d  %-12s  %-5d  %-8d  %-6s  %s\n",
			i+1, r.Player, r.Level, r.Score, result, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats()
	if err == nil {
		fmt.Println()
		fmt.Printf("Runs: %d  Wins: %d  Best: %d  Average: %.0f\n",
			stats.Runs, stats.Wins, stats.BestScore, stats.AvgScore)
	}
	return nil
}
