package arbor

import (
	"fmt"
	"time"
)

// State is the lifecycle state of a Game.
type State uint8

const (
	StateUninitialized State = iota // constructed, loop not yet run
	StateRunning                    // inside Mainloop
	StateClosed                     // loop finished or Close called
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateRunning:
		return "running"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// LifecycleType identifies a game loop lifecycle event.
type LifecycleType uint8

const (
	LifecycleStarted LifecycleType = iota // Start hooks are about to run
	LifecycleFrame                        // a frame was presented
	LifecycleClosed                       // the loop tore down
)

// LifecycleEvent carries loop state for an EventSink.
type LifecycleEvent struct {
	Type       LifecycleType
	FrameCount int
	DeltaTime  float64
}

// EventSink is the interface for optional lifecycle event forwarding, e.g.
// into an ECS world.
type EventSink interface {
	EmitEvent(event LifecycleEvent)
}

// Game owns the platform and runs the frame loop against a Scene. A Game runs
// its loop once; after the loop returns, Mainloop fails with
// ErrObjectDisposed until Reopen is called.
type Game struct {
	platform Platform
	cfg      Config
	sink     EventSink

	running bool
	closed  bool

	scene    *Scene
	frame    *Frame
	events   []Event
	snapshot []Component
}

// NewGame creates a Game that drives p with the given configuration.
func NewGame(p Platform, cfg Config) *Game {
	if p == nil {
		panic("arbor: nil platform")
	}
	return &Game{platform: p, cfg: cfg.withDefaults()}
}

// Config returns the game's configuration.
func (g *Game) Config() Config {
	return g.cfg
}

// State reports the current lifecycle state.
func (g *Game) State() State {
	switch {
	case g.running:
		return StateRunning
	case g.closed:
		return StateClosed
	default:
		return StateUninitialized
	}
}

// Scene returns the scene being run, or nil outside Mainloop.
func (g *Game) Scene() *Scene {
	return g.scene
}

// Frame returns the live frame context, or nil outside Mainloop.
func (g *Game) Frame() *Frame {
	return g.frame
}

// Events returns the events polled at the start of the current frame. The
// returned slice MUST NOT be mutated by the caller.
func (g *Game) Events() []Event {
	return g.events
}

// SetEventSink sets the optional lifecycle event bridge.
func (g *Game) SetEventSink(sink EventSink) {
	g.sink = sink
}

// Draw queues s at pos on the platform display. No-op outside Mainloop.
func (g *Game) Draw(s Surface, pos Vec2) {
	if !g.running || s == nil {
		return
	}
	g.platform.Draw(s, pos)
}

// Close asks the loop to stop. The flag is checked at the start of the next
// frame, so the current frame always completes. Callable at any time,
// including from a component's Update.
func (g *Game) Close() {
	g.closed = true
}

// Reopen clears the closed state so Mainloop can run again. Re-running a Game
// is discouraged; prefer a new Game.
func (g *Game) Reopen() error {
	if g.running {
		return fmt.Errorf("reopen: %w", ErrGameRunning)
	}
	g.closed = false
	return nil
}

// Mainloop runs scene until Close is called or the platform reports a quit
// event. Start runs once on every component, then each frame runs Update on
// every component followed by NextUpdate on every component, in pre-order
// tree order.
func (g *Game) Mainloop(scene *Scene) (err error) {
	if g.running {
		return fmt.Errorf("mainloop: %w", ErrGameRunning)
	}
	if g.closed {
		return fmt.Errorf("mainloop: game has already been run: %w", ErrObjectDisposed)
	}
	if scene == nil {
		panic("arbor: nil scene")
	}
	if scene.IsDisposed() {
		return fmt.Errorf("mainloop %s: %w", scene, ErrObjectDisposed)
	}
	if err := g.platform.Open(g.cfg); err != nil {
		return fmt.Errorf("open platform: %w", err)
	}

	g.running = true
	g.scene = scene
	g.frame = newFrame()
	scene.game = g
	defer func() {
		if cerr := g.teardown(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	g.emit(LifecycleStarted)
	for _, c := range g.collect() {
		if s, ok := c.(Starter); ok && live(c) {
			s.Start()
		}
	}

	for {
		if g.closed {
			return nil
		}
		g.events = g.platform.PollEvents()
		for _, e := range g.events {
			if e.Type == EventQuit {
				return nil
			}
		}
		g.frame.DeltaTime = g.platform.Tick(g.cfg.TargetFPS).Seconds()

		if err := g.step(); err != nil {
			return err
		}
		g.emit(LifecycleFrame)
	}
}

// step runs the update phase, the next-update phase, and presents.
func (g *Game) step() error {
	var stats debugStats
	var t0 time.Time
	debug := g.scene.debug
	if debug {
		t0 = time.Now()
	}

	for _, c := range g.collect() {
		if u, ok := c.(Updater); ok && live(c) {
			u.Update(g.frame)
		}
	}
	if debug {
		stats.updateTime = time.Since(t0)
		stats.componentCount = len(g.snapshot)
		t0 = time.Now()
	}

	for _, c := range g.collect() {
		if u, ok := c.(NextUpdater); ok && live(c) {
			u.NextUpdate(g.frame)
		}
	}
	if debug {
		stats.nextUpdateTime = time.Since(t0)
		t0 = time.Now()
	}

	g.frame.FrameCount++
	if err := g.platform.Present(); err != nil {
		return fmt.Errorf("present frame %d: %w", g.frame.FrameCount, err)
	}
	if debug {
		stats.presentTime = time.Since(t0)
		stats.frame = g.frame.FrameCount
		debugLogFrame(stats)
	}
	return nil
}

// collect snapshots every component of the scene in traversal order. The
// snapshot isolates a phase from tree changes made by the components it runs.
func (g *Game) collect() []Component {
	g.snapshot = g.snapshot[:0]
	for obj := range g.scene.RecurChildren() {
		g.snapshot = append(g.snapshot, obj.components...)
	}
	return g.snapshot
}

// teardown invalidates the frame, releases the platform, and marks the game
// closed.
func (g *Game) teardown() error {
	g.emit(LifecycleClosed)
	g.frame.invalidate()
	g.frame = nil
	g.events = nil
	clear(g.snapshot)
	g.snapshot = g.snapshot[:0]
	g.running = false
	g.closed = true
	g.scene = nil
	if err := g.platform.Close(); err != nil {
		return fmt.Errorf("close platform: %w", err)
	}
	return nil
}

func (g *Game) emit(t LifecycleType) {
	if g.sink == nil {
		return
	}
	e := LifecycleEvent{Type: t}
	if g.frame != nil {
		e.FrameCount = g.frame.FrameCount
		e.DeltaTime = g.frame.DeltaTime
	}
	g.sink.EmitEvent(e)
}
