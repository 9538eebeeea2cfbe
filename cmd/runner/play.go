package main

import (
	"os"
	"os/user"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-runner/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play locally",
	Long: `Start the game at the title screen.

Controls:
  Space/Up/W   - Jump
  Enter        - Select
  P            - Pause
  Esc/B        - Back (ends the current run)
  Ctrl+S       - Save a text screenshot to ~/.runner/screenshots
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - 5 lives, slower scrolling, easier pickups
  normal - Tuning as configured
  hard   - 1 life, faster scrolling, shorter death pause

Examples:
  runner play
  runner play --difficulty hard
  runner play --config ./my-game.yaml --levels ./levels`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	opts, cleanup, err := session(logger)
	if err != nil {
		return err
	}
	defer cleanup()

	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		opts.Runtime.ScreenW, opts.Runtime.ScreenH = w, h
	}
	opts.Player = localPlayer()

	return tui.Run(opts)
}

func localPlayer() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "player"
}
