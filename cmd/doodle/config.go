package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/doodle-jump/internal/config"
)

var flagConfigWrite string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in YAML configuration, or write it to a file as a
starting point for your own.

Config search order:
  --config <path>, ~/.doodle/configs/doodle.yaml, ./configs/doodle.yaml,
  then the built-in defaults

Examples:
  doodle config
  doodle config --write ~/.doodle/configs/doodle.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfigWrite, "write", "", "Write the default config to this path (never overwrites)")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagConfigWrite == "" {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	path := flagConfigWrite
	if path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("cannot create directory: %w", err)
	}
	if err := os.WriteFile(path, config.DefaultYAML(), 0o644); err != nil {
		return fmt.Errorf("cannot write config: %w", err)
	}
	fmt.Printf("Wrote default config to %s\n", path)
	return nil
}
