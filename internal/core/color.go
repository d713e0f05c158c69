package core

// Color represents a foreground color for a screen cell.
// Values map to ANSI 256-color codes in the terminal renderer.
type Color uint8

// Palette used by the terminal surface.
const (
	ColorDefault Color = iota
	ColorGreen
	ColorCyan
	ColorBrightRed
	ColorBrightYellow
	ColorBrightWhite
	ColorGray
)

// Sprite identifies what a drawn rectangle depicts, so each surface can pick
// its own glyph, color, or texture.
type Sprite int

const (
	SpriteDoodler Sprite = iota
	SpriteRegularPlatform
	SpriteSlowPlatform
	SpriteFastPlatform
)

// String returns a short name for the sprite.
func (s Sprite) String() string {
	switch s {
	case SpriteDoodler:
		return "doodler"
	case SpriteRegularPlatform:
		return "regular"
	case SpriteSlowPlatform:
		return "slow"
	case SpriteFastPlatform:
		return "fast"
	default:
		return "unknown"
	}
}
