package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/doodle-jump/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

The playfield is scaled to the terminal size. Terminals do not report key
releases, so a direction stays held while the key auto-repeats and is
released shortly after it stops.

Controls:
  Left/A     - Move left
  Right/D    - Move right
  Q/Esc      - Quit

Examples:
  doodle play
  doodle play --seed 42 --fps 30
  doodle play --log-file doodle.log --verbose`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	// The alternate screen owns stderr, so logs are dropped unless --log-file is set
	logger, closeLog, err := newLogger("doodle", io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store := openStore(logger)
	if store != nil {
		//nolint:errcheck // Best-effort close on exit
		defer store.Close()
	}

	return tui.Run(cfg, store, logger, width, height)
}
