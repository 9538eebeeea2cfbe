// runner is an auto-running platformer for the terminal.
//
// Usage:
//
//	runner play     - Play locally
//	runner serve    - Start SSH server for remote play
//	runner scores   - Browse run history
//	runner levels   - List available levels
//
// Global flags:
//
//	--config <path>      - Game tuning YAML
//	--levels <dir>       - Directory of level<N>.yaml/.json files
//	--difficulty <name>  - easy, normal or hard
//	--store <kind>       - High score store: gdata or sqlite
//	--db <path>          - Run history database (default: ~/.runner/runner.db)
//	--log-level <level>  - debug, info, warn, error
//	--log-file <path>    - Log destination (default: ~/.runner/runner.log)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagConfig     string
	flagLevels     string
	flagDifficulty string
	flagStore      string
	flagDBPath     string
	flagFPS        int
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Runner - an auto-running platformer in your terminal",
	Long: `Runner is a side-scrolling platformer played in the terminal.
The world scrolls on its own; jump over obstacles and gaps,
collect treasures and reach the finish line of every level.

Available commands:
  play     - Play locally
  serve    - Start SSH server for remote play
  scores   - Browse run history
  levels   - List available levels

Examples:
  runner play
  runner play --difficulty easy
  runner play --levels ./my-levels
  runner serve --ssh :2222
  runner scores`,
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagLevels, "levels", "", "Directory with level files (default: built-in levels)")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	pf.StringVar(&flagStore, "store", storeGdata, "High score store: gdata or sqlite")
	pf.StringVar(&flagDBPath, "db", "~/.runner/runner.db", "Path to run history database")
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Log file (default: ~/.runner/runner.log)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelsCmd)
}
