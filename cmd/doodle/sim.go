package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/doodle-jump/internal/platform/headless"
)

var (
	flagFrames int
	flagSave   bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless simulation",
	Long: `Run the game loop without a display for a fixed number of frames and
print the final state. Frames advance at a fixed 1/fps step, so the same
seed always gives the same result.

Examples:
  doodle sim
  doodle sim --frames 3600 --seed 7
  doodle sim --frames 600 --save`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagFrames, "frames", 600, "Number of frames to simulate")
	simCmd.Flags().BoolVar(&flagSave, "save", false, "Record the run in the score history")
}

func runSim(cmd *cobra.Command, _ []string) error {
	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger("doodle-sim", os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	l, res, err := headless.Simulate(cmd.Context(), cfg, flagFrames, nil, logger)
	if err != nil {
		return err
	}

	fmt.Printf("frames:    %d\n", res.Frames)
	fmt.Printf("seed:      %d\n", res.Seed)
	fmt.Printf("score:     %.1f (%s)\n", res.Score, res.ScoreText)
	fmt.Printf("doodler:   x=%.1f y=%.1f\n", res.DoodlerX, res.DoodlerY)
	fmt.Printf("platforms: %d visible\n", res.Platforms)

	if flagSave {
		store := openStore(logger)
		if store == nil {
			return nil
		}
		//nolint:errcheck // Best-effort close on exit
		defer store.Close()
		return l.SaveScore(store)
	}
	return nil
}
