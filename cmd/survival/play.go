package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/zombie-survival/internal/core"
	"github.com/vovakirdan/zombie-survival/internal/games/survival"
	"github.com/vovakirdan/zombie-survival/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a run in the terminal.

Controls:
  W/A/S/D or arrows  - Move (hold or repeat)
  P/Esc              - Pause
  R                  - Restart (after game over)
  Q/Ctrl+C           - Quit

Examples:
  survival play
  survival play --seed 42
  survival play --log ~/.survival/events.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	rc := core.DefaultConfig()
	rc.TickInterval = cfg.Timing.TickInterval
	rc.Seed = flagSeed

	// Get terminal size for the first frame
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}

	logger, closer, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	runErr := tui.Run(survival.New(cfg), rc, tui.Options{
		HoldWindow: cfg.Input.HoldWindow,
		Logger:     logger,
	})

	// Close the log before potential exit
	closer.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
