// Package config provides YAML-based configuration loading for the game.
// Only the window, platform count and asset paths are configurable; physics
// stays in Go constants.
package config

import (
	"fmt"

	"github.com/vovakirdan/doodle-jump/internal/core"
	"github.com/vovakirdan/doodle-jump/internal/games/doodle"
)

// DoodleConfig is the on-disk configuration.
type DoodleConfig struct {
	Window    WindowConfig   `yaml:"window"`
	Platforms PlatformConfig `yaml:"platforms"`
	Assets    AssetConfig    `yaml:"assets"`
}

// WindowConfig defines the rendering surface.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	MaxFPS int    `yaml:"max_fps"`
}

// PlatformConfig defines the platform set created at start.
type PlatformConfig struct {
	Count int `yaml:"count"`
}

// AssetConfig lists files loaded by the rendering surfaces.
type AssetConfig struct {
	BackgroundImage string `yaml:"background_image"`
	BackgroundText  string `yaml:"background_text"`
	Font            string `yaml:"font"`
}

// Validate checks that the configuration describes a playable world.
func (c DoodleConfig) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("config: window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	// Platforms and the doodler must fit inside the window
	if minW := max(doodle.PlatformWidth, doodle.DoodlerWidth); c.Window.Width < minW {
		return fmt.Errorf("config: window width must be at least %d, got %d", minW, c.Window.Width)
	}
	if c.Window.Height <= doodle.DoodlerSpriteH {
		return fmt.Errorf("config: window height must exceed %d, got %d", doodle.DoodlerSpriteH, c.Window.Height)
	}
	if c.Window.MaxFPS <= 0 {
		return fmt.Errorf("config: max_fps must be positive, got %d", c.Window.MaxFPS)
	}
	if c.Platforms.Count < 0 {
		return fmt.Errorf("config: platform count must not be negative, got %d", c.Platforms.Count)
	}
	return nil
}

// GameConfig converts the file configuration into the immutable runtime
// configuration handed to the game loop.
func (c DoodleConfig) GameConfig(seed int64) core.GameConfig {
	return core.GameConfig{
		WindowWidth:     c.Window.Width,
		WindowHeight:    c.Window.Height,
		Title:           c.Window.Title,
		MaxFPS:          c.Window.MaxFPS,
		PlatformCount:   c.Platforms.Count,
		BackgroundImage: c.Assets.BackgroundImage,
		BackgroundText:  c.Assets.BackgroundText,
		FontPath:        c.Assets.Font,
		Seed:            seed,
	}
}
