// doodle is a Doodle Jump-style platformer for the terminal, a desktop
// window, or remote play over SSH.
//
// Usage:
//
//	doodle play              - Play in the terminal
//	doodle window            - Play in a graphical window
//	doodle sim --frames N    - Run a headless simulation
//	doodle scores            - Show the score history
//	doodle serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>        - Override the frame-rate cap
//	--seed <value>      - Set RNG seed for a reproducible platform layout
//	--db <path>         - Set database path (default: ~/.doodle/scores.db)
//	--config <path>     - Use a specific YAML config file
//	--verbose           - Log at debug level
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/doodle-jump/internal/config"
	"github.com/vovakirdan/doodle-jump/internal/core"
	"github.com/vovakirdan/doodle-jump/internal/storage"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagVerbose bool
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "doodle",
	Short: "Doodle Jump - bounce your way up",
	Long: `Doodle Jump is a small platformer: steer the doodler left and right,
bounce off platforms, and climb as high as you can.

Platforms:
  green  - regular, stays put
  cyan   - fast, drifts quickly
  red    - slow, drifts and breaks after one bounce

Available commands:
  play     - Play in the terminal
  window   - Play in a graphical window
  sim      - Run a headless simulation
  scores   - View the score history
  serve    - Start SSH server for remote play
  config   - Print the default configuration

Examples:
  doodle play
  doodle play --seed 42
  doodle window --config ./doodle.yaml
  doodle sim --frames 3600 --seed 7
  doodle serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frame-rate cap (0 = use config, default 60)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.doodle/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Log at debug level")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadGameConfig resolves the YAML config and applies the global flag
// overrides.
func loadGameConfig() (core.GameConfig, error) {
	fileCfg, err := config.LoadDoodle(flagConfig)
	if err != nil {
		return core.GameConfig{}, err
	}
	if flagFPS > 0 {
		fileCfg.Window.MaxFPS = flagFPS
	}
	return fileCfg.GameConfig(flagSeed), nil
}

// newLogger creates the command logger. Logs go to --log-file when set,
// otherwise to fallback. The returned close func is always non-nil.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, func(), error) {
	out := fallback
	closeFn := func() {}

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() } //nolint:errcheck // Best-effort close on exit
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}

// openStore opens the score database. Failures are logged and play
// continues without a store.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
