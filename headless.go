package arbor

import (
	"errors"
	"time"
)

// DrawCall is one recorded Platform.Draw.
type DrawCall struct {
	Surface  Surface
	Position Vec2
}

// HeadlessPlatform is a Platform with no display. It advances time in fixed
// steps without sleeping, records draws, and delivers injected or scripted
// events. Use it for tests and server-side simulation.
type HeadlessPlatform struct {
	// FixedStep is returned by every Tick.
	FixedStep time.Duration

	cfg       Config
	open      bool
	opens     int
	closes    int
	presents  int
	queue     []Event
	script    *FrameScript
	draws     []DrawCall
	presented []DrawCall
}

// NewHeadlessPlatform creates a headless platform ticking at 60 steps per
// second.
func NewHeadlessPlatform() *HeadlessPlatform {
	return &HeadlessPlatform{FixedStep: time.Second / 60}
}

// Open records cfg. Fails if the platform is already open.
func (h *HeadlessPlatform) Open(cfg Config) error {
	if h.open {
		return errors.New("headless: already open")
	}
	h.open = true
	h.cfg = cfg
	h.opens++
	return nil
}

// PollEvents advances the frame script, if any, and returns queued events.
func (h *HeadlessPlatform) PollEvents() []Event {
	if h.script != nil {
		h.script.step(h)
	}
	events := h.queue
	h.queue = nil
	return events
}

// Tick returns FixedStep without blocking.
func (h *HeadlessPlatform) Tick(int) time.Duration {
	return h.FixedStep
}

// Draw records a draw for the current frame.
func (h *HeadlessPlatform) Draw(s Surface, pos Vec2) {
	h.draws = append(h.draws, DrawCall{Surface: s, Position: pos})
}

// Present moves the current frame's draws to Presented.
func (h *HeadlessPlatform) Present() error {
	h.presented = h.draws
	h.draws = nil
	h.presents++
	return nil
}

// Close marks the platform closed.
func (h *HeadlessPlatform) Close() error {
	h.open = false
	h.closes++
	return nil
}

// InjectEvent queues e for the next PollEvents.
func (h *HeadlessPlatform) InjectEvent(e Event) {
	h.queue = append(h.queue, e)
}

// InjectQuit queues a quit event.
func (h *HeadlessPlatform) InjectQuit() {
	h.InjectEvent(Event{Type: EventQuit})
}

// InjectKey queues a key event for the named key.
func (h *HeadlessPlatform) InjectKey(key string) {
	h.InjectEvent(Event{Type: EventKey, Key: key})
}

// SetScript attaches a frame script, which is advanced once per PollEvents.
func (h *HeadlessPlatform) SetScript(s *FrameScript) {
	h.script = s
}

// Config returns the configuration passed to the last Open.
func (h *HeadlessPlatform) Config() Config { return h.cfg }

// IsOpen reports whether Open has been called without a matching Close.
func (h *HeadlessPlatform) IsOpen() bool { return h.open }

// Opens returns the number of Open calls.
func (h *HeadlessPlatform) Opens() int { return h.opens }

// Closes returns the number of Close calls.
func (h *HeadlessPlatform) Closes() int { return h.closes }

// Presents returns the number of presented frames.
func (h *HeadlessPlatform) Presents() int { return h.presents }

// Presented returns the draws of the most recently presented frame.
func (h *HeadlessPlatform) Presented() []DrawCall { return h.presented }
