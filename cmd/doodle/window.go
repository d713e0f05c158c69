package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/doodle-jump/internal/platform/gui"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a graphical window",
	Long: `Open a desktop window and play.

The background image and score font are read from the asset paths in the
config. Missing assets fall back to a plain sky and a built-in font.

Controls:
  Left/A     - Move left
  Right/D    - Move right
  Close the window to quit

Examples:
  doodle window
  doodle window --seed 7`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(_ *cobra.Command, _ []string) error {
	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger("doodle", os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		//nolint:errcheck // Best-effort close on exit
		defer store.Close()
	}

	return gui.Run(cfg, store, logger)
}
