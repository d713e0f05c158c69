package core

// GameConfig is the immutable configuration handed to the game loop at
// construction. Values are fixed for the lifetime of a run.
type GameConfig struct {
	WindowWidth   int    // Logical window width in pixels
	WindowHeight  int    // Logical window height in pixels
	Title         string // Window title
	MaxFPS        int    // Frame-rate cap applied by the rendering surface
	PlatformCount int    // Number of platforms created at start

	BackgroundImage string // PNG drawn behind the graphical window
	BackgroundText  string // Text art drawn behind the terminal surface
	FontPath        string // TTF used for the score text in the graphical window

	Seed int64 // RNG seed for platform placement (0 = time based)
}

// Compile-time defaults.
const (
	DefaultWindowWidth   = 400
	DefaultWindowHeight  = 533
	DefaultTitle         = "Doodle Jump"
	DefaultMaxFPS        = 60
	DefaultPlatformCount = 12
)

// DefaultConfig returns a GameConfig with the built-in defaults.
func DefaultConfig() GameConfig {
	return GameConfig{
		WindowWidth:     DefaultWindowWidth,
		WindowHeight:    DefaultWindowHeight,
		Title:           DefaultTitle,
		MaxFPS:          DefaultMaxFPS,
		PlatformCount:   DefaultPlatformCount,
		BackgroundImage: "assets/background.png",
		BackgroundText:  "assets/background.txt",
		FontPath:        "assets/font.ttf",
		Seed:            0, // 0 means use current time in the loop
	}
}
