package config

import (
	_ "embed"

	"github.com/vovakirdan/doodle-jump/internal/core"
)

//go:embed defaults/doodle.yaml
var defaultDoodleYAML []byte

// DefaultDoodleConfig returns the built-in configuration.
func DefaultDoodleConfig() DoodleConfig {
	d := core.DefaultConfig()
	return DoodleConfig{
		Window: WindowConfig{
			Title:  d.Title,
			Width:  d.WindowWidth,
			Height: d.WindowHeight,
			MaxFPS: d.MaxFPS,
		},
		Platforms: PlatformConfig{
			Count: d.PlatformCount,
		},
		Assets: AssetConfig{
			BackgroundImage: d.BackgroundImage,
			BackgroundText:  d.BackgroundText,
			Font:            d.FontPath,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultDoodleYAML
}
