package arbor

import (
	"image"
	"time"
)

// Surface is an opaque drawable handle owned by the platform. *ebiten.Image
// satisfies it, as do the terminal host's glyph surfaces.
type Surface interface {
	Bounds() image.Rectangle
}

// Platform is the capability surface the game loop calls into: display,
// events, and clock. Implementations live in ebitenhost and termhost; a
// headless implementation is provided for tests and servers.
type Platform interface {
	// Open creates the window or screen described by cfg.
	Open(cfg Config) error
	// PollEvents returns the events received since the previous call.
	PollEvents() []Event
	// Tick returns the time elapsed since the previous tick, blocking as
	// needed to stay at or below targetFPS when it is positive.
	Tick(targetFPS int) time.Duration
	// Draw queues s to be drawn at pos for the current frame.
	Draw(s Surface, pos Vec2)
	// Present flips the frame's draws to the display.
	Present() error
	// Close releases the platform subsystem.
	Close() error
}

// Config holds window and loop settings for a Game.
type Config struct {
	// Title is the window title.
	Title string
	// Width and Height are the window size in pixels (cells for terminals).
	Width, Height int
	// Fullscreen requests a fullscreen window where supported.
	Fullscreen bool
	// TargetFPS caps the frame rate. Zero or negative runs as fast as the
	// platform allows.
	TargetFPS int
}

// DefaultConfig returns a 640x480 windowed, uncapped configuration.
func DefaultConfig() Config {
	return Config{Title: "arbor", Width: 640, Height: 480}
}

// withDefaults fills in a zero window size.
func (c Config) withDefaults() Config {
	if c.Width <= 0 || c.Height <= 0 {
		d := DefaultConfig()
		c.Width, c.Height = d.Width, d.Height
	}
	return c
}
