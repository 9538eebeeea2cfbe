package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/level"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List available levels",
	Long: `Shows the levels of the built-in set, or of --levels <dir>.

Level files are named level<N>.yaml, level<N>.yml or level<N>.json
and are played in order starting at level 1.`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func runLevels(_ *cobra.Command, _ []string) error {
	catalog := levelCatalog()
	entries, err := catalog.List()
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Printf("No levels found in %s.\n", catalog.Source())
		return nil
	}

	fmt.Printf("Levels (%s):\n", catalog.Source())
	fmt.Println()
	fmt.Printf("  %-3s  %-20s  %-7s  %-9s  %s\n", "#", "Name", "Length", "Treasure", "Obstacles")
	fmt.Printf("  %-3s  %-20s  %-7s  %-9s  %s\n", "-", "----", "------", "--------", "---------")

	for _, e := range entries {
		l := level.New()
		if err := catalog.Load(e.Number, l); err != nil {
			fmt.Printf("  %-3d  %s: %v\n", e.Number, e.File, err)
			continue
		}
		fmt.Printf("  %-3d  %-20s  %-7.0f  %-9d  %d\n",
			e.Number, l.Name, l.Length, l.Remaining(), len(l.Obstacles))
	}

	fmt.Println()
	fmt.Println("Run 'runner play' to start at level 1.")
	return nil
}
