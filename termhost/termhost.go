// Package termhost runs arbor games in a terminal using tcell.
//
// The terminal is the display: one cell per unit of position. Surfaces are
// [Glyph] and [Text] values; anything else is ignored by Draw.
package termhost

import (
	"errors"
	"fmt"
	"image"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/arbor"
)

const eventBuffer = 100

// Glyph is a single styled rune.
type Glyph struct {
	Rune  rune
	Style tcell.Style
}

// Bounds returns a one-cell rectangle.
func (g Glyph) Bounds() image.Rectangle {
	return image.Rect(0, 0, 1, 1)
}

// Text is a single line of styled text.
type Text struct {
	Content string
	Style   tcell.Style
}

// Bounds returns a one-row rectangle as wide as the content.
func (t Text) Bounds() image.Rectangle {
	return image.Rect(0, 0, len([]rune(t.Content)), 1)
}

// Platform is an arbor.Platform backed by a tcell screen.
type Platform struct {
	// QuitKeys are keys that produce arbor.EventQuit in addition to Escape
	// and Ctrl-C.
	QuitKeys []tcell.Key

	newScreen func() (tcell.Screen, error)
	screen    tcell.Screen
	clock     *arbor.Clock

	events chan tcell.Event
	quit   chan struct{}
	wg     sync.WaitGroup
	open   bool
}

// New creates a Platform that opens the real terminal.
func New() *Platform {
	return &Platform{newScreen: tcell.NewScreen, clock: arbor.NewClock()}
}

// NewWithScreen creates a Platform that uses screen, e.g. a
// tcell.SimulationScreen in tests. Open initializes it.
func NewWithScreen(screen tcell.Screen) *Platform {
	return &Platform{
		newScreen: func() (tcell.Screen, error) { return screen, nil },
		clock:     arbor.NewClock(),
	}
}

// SetClock replaces the clock used by Tick.
func (p *Platform) SetClock(c *arbor.Clock) {
	p.clock = c
}

// Screen returns the tcell screen while open.
func (p *Platform) Screen() tcell.Screen {
	return p.screen
}

// Open initializes the screen and starts the event pump. The terminal's own
// size is used; cfg.Width and cfg.Height are ignored.
func (p *Platform) Open(cfg arbor.Config) error {
	if p.open {
		return errors.New("termhost: already open")
	}
	screen, err := p.newScreen()
	if err != nil {
		return fmt.Errorf("termhost: new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("termhost: init screen: %w", err)
	}
	if cfg.Title != "" {
		screen.SetTitle(cfg.Title)
	}
	screen.Clear()

	p.screen = screen
	p.events = make(chan tcell.Event, eventBuffer)
	p.quit = make(chan struct{})
	p.open = true
	p.clock.Reset()

	p.wg.Add(1)
	go p.pump(screen, p.events, p.quit)
	return nil
}

// pump forwards screen events until the screen is finalized.
func (p *Platform) pump(screen tcell.Screen, out chan<- tcell.Event, quit <-chan struct{}) {
	defer p.wg.Done()
	defer close(out)
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		case <-quit:
			return
		}
	}
}

// PollEvents drains pending terminal events without blocking.
func (p *Platform) PollEvents() []arbor.Event {
	var out []arbor.Event
	for {
		select {
		case ev, ok := <-p.events:
			if !ok {
				return append(out, arbor.Event{Type: arbor.EventQuit})
			}
			if e, ok := p.translate(ev); ok {
				out = append(out, e)
			}
		default:
			return out
		}
	}
}

// translate maps a tcell event to an arbor event.
func (p *Platform) translate(ev tcell.Event) (arbor.Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if p.isQuitKey(ev) {
			return arbor.Event{Type: arbor.EventQuit}, true
		}
		if ev.Key() == tcell.KeyRune {
			return arbor.Event{Type: arbor.EventKey, Key: string(ev.Rune())}, true
		}
		return arbor.Event{Type: arbor.EventKey, Key: tcell.KeyNames[ev.Key()]}, true
	case *tcell.EventResize:
		w, h := ev.Size()
		return arbor.Event{Type: arbor.EventResize, Width: w, Height: h}, true
	case *tcell.EventInterrupt:
		return arbor.Event{Type: arbor.EventQuit}, true
	}
	return arbor.Event{}, false
}

func (p *Platform) isQuitKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		return true
	}
	for _, k := range p.QuitKeys {
		if ev.Key() == k {
			return true
		}
	}
	return false
}

// Tick advances the platform clock.
func (p *Platform) Tick(targetFPS int) time.Duration {
	return p.clock.Tick(targetFPS)
}

// Draw writes a Glyph or Text at pos, rounded to the nearest cell.
func (p *Platform) Draw(s arbor.Surface, pos arbor.Vec2) {
	if p.screen == nil {
		return
	}
	x, y := cell(pos.X), cell(pos.Y)
	switch s := s.(type) {
	case Glyph:
		p.screen.SetContent(x, y, s.Rune, nil, s.Style)
	case *Glyph:
		p.screen.SetContent(x, y, s.Rune, nil, s.Style)
	case Text:
		p.drawText(x, y, s)
	case *Text:
		p.drawText(x, y, *s)
	}
}

func (p *Platform) drawText(x, y int, t Text) {
	for i, r := range []rune(t.Content) {
		p.screen.SetContent(x+i, y, r, nil, t.Style)
	}
}

// Present shows the frame and clears the back buffer for the next one.
func (p *Platform) Present() error {
	if p.screen == nil {
		return errors.New("termhost: not open")
	}
	p.screen.Show()
	p.screen.Clear()
	return nil
}

// Close finalizes the screen and waits for the event pump to exit.
func (p *Platform) Close() error {
	if !p.open {
		return nil
	}
	p.open = false
	close(p.quit)
	p.screen.Fini()
	p.wg.Wait()
	p.screen = nil
	return nil
}

func cell(v float64) int {
	if v < 0 {
		return int(v - 0.5)
	}
	return int(v + 0.5)
}
