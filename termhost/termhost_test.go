package termhost

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/arbor"
)

func newSimPlatform(t *testing.T) (*Platform, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	p := NewWithScreen(screen)
	if err := p.Open(arbor.Config{Title: "test", Width: 80, Height: 24}); err != nil {
		t.Fatalf("Open: %v", err)
	}
	screen.SetSize(80, 24)
	return p, screen
}

// pollUntil polls p until an event of type typ arrives or the deadline passes.
func pollUntil(t *testing.T, p *Platform, typ arbor.EventType) arbor.Event {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		for _, e := range p.PollEvents() {
			if e.Type == typ {
				return e
			}
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("no %v event before deadline", typ)
	return arbor.Event{}
}

func TestOpenTwiceFails(t *testing.T) {
	p, _ := newSimPlatform(t)
	defer p.Close()
	if err := p.Open(arbor.DefaultConfig()); err == nil {
		t.Error("second Open should fail")
	}
}

func TestCloseIdempotent(t *testing.T) {
	p, _ := newSimPlatform(t)
	if err := p.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := p.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
	if p.Screen() != nil {
		t.Error("Screen should be nil after Close")
	}
}

func TestEscapeIsQuit(t *testing.T) {
	p, screen := newSimPlatform(t)
	defer p.Close()
	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	pollUntil(t, p, arbor.EventQuit)
}

func TestCustomQuitKey(t *testing.T) {
	p, screen := newSimPlatform(t)
	defer p.Close()
	p.QuitKeys = []tcell.Key{tcell.KeyF10}
	screen.InjectKey(tcell.KeyF10, 0, tcell.ModNone)
	pollUntil(t, p, arbor.EventQuit)
}

func TestRuneKeyEvent(t *testing.T) {
	p, screen := newSimPlatform(t)
	defer p.Close()
	screen.InjectKey(tcell.KeyRune, 'a', tcell.ModNone)
	e := pollUntil(t, p, arbor.EventKey)
	if e.Key != "a" {
		t.Errorf("Key = %q, want %q", e.Key, "a")
	}
}

func TestDrawGlyphAndText(t *testing.T) {
	p, screen := newSimPlatform(t)
	defer p.Close()

	p.Draw(Glyph{Rune: '@'}, arbor.Vec2{X: 2, Y: 1})
	p.Draw(Text{Content: "hi"}, arbor.Vec2{X: 4.4, Y: 3})
	if err := p.Present(); err != nil {
		t.Fatalf("Present: %v", err)
	}

	cells, w, _ := screen.GetContents()
	check := func(x, y int, want rune) {
		t.Helper()
		c := cells[y*w+x]
		if len(c.Runes) == 0 || c.Runes[0] != want {
			t.Errorf("cell (%d,%d) = %q, want %q", x, y, c.Runes, want)
		}
	}
	check(2, 1, '@')
	check(4, 3, 'h')
	check(5, 3, 'i')
}

func TestTextBounds(t *testing.T) {
	b := Text{Content: "héllo"}.Bounds()
	if b.Dx() != 5 || b.Dy() != 1 {
		t.Errorf("Bounds = %v, want 5x1", b)
	}
}

func TestTickUsesClock(t *testing.T) {
	p, _ := newSimPlatform(t)
	defer p.Close()

	now := time.Unix(0, 0)
	p.SetClock(arbor.NewClockWithSource(
		func() time.Time { return now },
		func(d time.Duration) { now = now.Add(d) },
	))
	if got := p.Tick(10); got != 100*time.Millisecond {
		t.Errorf("Tick(10) = %v, want 100ms", got)
	}
}

// quitter injects Escape into the screen when the loop starts.
type quitter struct {
	arbor.Base
	screen tcell.SimulationScreen
}

func (q *quitter) Start() {
	q.screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
}

func TestMainloopQuitsOnEscape(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	p := NewWithScreen(screen)

	scene := arbor.NewScene()
	obj := arbor.NewGameObject(scene)
	obj.Transform().SetPosition(3, 2)
	if _, err := obj.AddComponent(arbor.NewSprite(Glyph{Rune: '#'})); err != nil {
		t.Fatal(err)
	}
	if _, err := obj.AddComponent(arbor.Instance(&quitter{screen: screen})); err != nil {
		t.Fatal(err)
	}

	game := arbor.NewGame(p, arbor.Config{Width: 80, Height: 24, TargetFPS: 120})
	done := make(chan error, 1)
	go func() { done <- game.Mainloop(scene) }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Mainloop: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Mainloop did not exit on Escape")
	}
	if game.State() != arbor.StateClosed {
		t.Errorf("State = %v, want closed", game.State())
	}
}
