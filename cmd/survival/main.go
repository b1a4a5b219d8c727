// survival is a top-down zombie survival game for the terminal.
//
// Usage:
//
//	survival                 - Play (same as "survival play")
//	survival play            - Play in the terminal
//	survival frame           - Simulate headlessly and write a PNG frame
//	survival config          - Print the effective configuration
//
// Global flags:
//
//	--seed <value>   - Set RNG seed for reproducible runs
//	--config <path>  - Load tuning from a YAML file
//	--log <path>     - Write the event log to a file
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/zombie-survival/internal/config"
)

var (
	// Global flags
	flagSeed    int64
	flagConfig  string
	flagLogPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "survival",
	Short: "Zombie Survival - Outlast the horde in your terminal",
	Long: `Zombie Survival is a top-down survival game. Zombies enter from the
edges of the field and chase you; every second alive scores a point.
Zombies arrive faster and faster until your health runs out.

Available commands:
  play     - Play in the terminal (default)
  frame    - Simulate without a terminal and save a PNG frame
  config   - Print the effective configuration as YAML

Examples:
  survival
  survival play --seed 42
  survival frame --seconds 30 --out frame.png
  survival config --config ./my-survival.yaml`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom survival config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write the event log to this file (default: no log)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(frameCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the survival config or exits.
func loadConfig() config.SurvivalConfig {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// newLogger builds the event logger. The terminal belongs to the game,
// so without --log the events are discarded.
func newLogger() (*log.Logger, io.Closer, error) {
	if flagLogPath == "" {
		return log.New(io.Discard), io.NopCloser(nil), nil
	}

	path := expandHome(flagLogPath)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("log: failed to create directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("log: failed to open %s: %w", path, err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "survival",
		Level:           log.DebugLevel,
	})
	return logger, f, nil
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
