package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/zombie-survival/internal/core"
	"github.com/vovakirdan/zombie-survival/internal/games/survival"
	"github.com/vovakirdan/zombie-survival/internal/loop"
	"github.com/vovakirdan/zombie-survival/internal/render"
)

var (
	flagSeconds int
	flagOut     string
)

var frameCmd = &cobra.Command{
	Use:   "frame",
	Short: "Simulate without a terminal and save a PNG frame",
	Long: `Run the simulation with a stationary player for the given amount of
simulated time, then draw the final state to a PNG image.

Examples:
  survival frame
  survival frame --seconds 30 --seed 7 --out late.png`,
	Args: cobra.NoArgs,
	Run:  runFrame,
}

func init() {
	frameCmd.Flags().IntVar(&flagSeconds, "seconds", 10, "Simulated seconds to run")
	frameCmd.Flags().StringVarP(&flagOut, "out", "o", "survival.png", "Output PNG path")
}

func runFrame(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	logger, closer, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	rc := core.DefaultConfig()
	rc.TickInterval = cfg.Timing.TickInterval
	rc.Seed = flagSeed
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}

	game := survival.New(cfg)
	game.Reset(rc)

	simulated := loop.Simulate(time.Duration(flagSeconds)*time.Second, cfg.Timing.TickInterval, func(elapsed time.Duration) bool {
		res := game.Step(core.NewKeys(), elapsed)
		for _, e := range res.Events {
			logger.Info(e.Message(), e.KeyVals()...)
		}
		return !res.State.GameOver
	})

	// Close the log before potential exit
	closer.Close()

	f, err := os.Create(flagOut)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	snap := game.Snapshot()
	presenter := render.NewPNGPresenter(int(cfg.Field.Width), int(cfg.Field.Height), f)
	presentErr := presenter.Present(snap)
	closeErr := f.Close()
	if presentErr != nil || closeErr != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", flagOut, errors.Join(presentErr, closeErr))
		os.Exit(1)
	}

	fmt.Printf("Wrote %s after %s (seed %d): %s, score %d, health %d, %d zombies\n",
		flagOut, simulated, rc.Seed, snap.Phase, snap.Score, snap.Health, len(snap.Enemies))
}
