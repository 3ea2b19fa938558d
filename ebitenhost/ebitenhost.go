// Package ebitenhost runs arbor games in an Ebitengine window.
//
// Ebitengine owns the main thread and calls Update and Draw on its own
// schedule, while arbor's Game pulls frames from its Platform. Run bridges the
// two: the arbor loop runs on its own goroutine, and each ebiten Update
// releases exactly one arbor frame and waits for it to be presented. Only one
// side runs at a time, so components never run concurrently with Draw.
//
//	p := ebitenhost.New()
//	game := arbor.NewGame(p, arbor.Config{Title: "demo", Width: 640, Height: 480})
//	if err := ebitenhost.Run(p, func() error { return game.Mainloop(scene) }); err != nil {
//		log.Fatal(err)
//	}
package ebitenhost

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/phanxgames/arbor"
)

// drawCmd is a queued image draw.
type drawCmd struct {
	img  *ebiten.Image
	x, y float64
}

// Platform is an arbor.Platform backed by an Ebitengine window.
// Surfaces passed to Draw must be *ebiten.Image; others are ignored.
type Platform struct {
	// QuitKeys produce arbor.EventQuit when pressed.
	QuitKeys []ebiten.Key

	cfg     arbor.Config
	frames  chan struct{} // ebiten Update -> loop: run one frame
	done    chan struct{} // loop -> ebiten Update: frame presented
	exited  chan struct{} // closed when the arbor loop returns
	stopped chan struct{} // closed when ebiten.RunGame returns
	closing atomic.Bool
	keyQuit atomic.Bool

	mu        sync.Mutex
	pending   []drawCmd
	presented []drawCmd
	keys      []ebiten.Key // pressed since the last PollEvents

	last time.Time
	now  func() time.Time
}

// New creates a Platform. Pass it to arbor.NewGame and then to Run.
func New() *Platform {
	return &Platform{
		frames:  make(chan struct{}),
		done:    make(chan struct{}),
		exited:  make(chan struct{}),
		stopped: make(chan struct{}),
		now:     time.Now,
	}
}

// Open applies the window configuration.
func (p *Platform) Open(cfg arbor.Config) error {
	p.mu.Lock()
	p.cfg = cfg
	p.mu.Unlock()
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetFullscreen(cfg.Fullscreen)
	ebiten.SetWindowClosingHandled(true)
	if cfg.TargetFPS > 0 {
		ebiten.SetTPS(cfg.TargetFPS)
	} else {
		ebiten.SetTPS(ebiten.SyncWithFPS)
	}
	p.last = p.now()
	return nil
}

// PollEvents reports a quit when the window is closing, a QuitKeys key was
// pressed during the last ebiten Update, or Ebitengine has stopped. Other
// newly pressed keys become arbor.EventKey events named by ebiten.Key.String.
func (p *Platform) PollEvents() []arbor.Event {
	if p.closing.Load() || p.keyQuit.Load() || p.isStopped() {
		return []arbor.Event{{Type: arbor.EventQuit}}
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.keys) == 0 {
		return nil
	}
	events := make([]arbor.Event, 0, len(p.keys))
	for _, k := range p.keys {
		events = append(events, arbor.Event{Type: arbor.EventKey, Key: k.String()})
	}
	p.keys = p.keys[:0]
	return events
}

// Tick blocks until ebiten schedules the next Update, or until Ebitengine
// stops, and returns the time since the previous tick. The rate is governed
// by ebiten's TPS.
func (p *Platform) Tick(int) time.Duration {
	select {
	case <-p.frames:
	case <-p.stopped:
	}
	now := p.now()
	elapsed := now.Sub(p.last)
	p.last = now
	return elapsed
}

// Draw queues an *ebiten.Image at pos for the current frame.
func (p *Platform) Draw(s arbor.Surface, pos arbor.Vec2) {
	img, ok := s.(*ebiten.Image)
	if !ok || img == nil {
		return
	}
	p.mu.Lock()
	p.pending = append(p.pending, drawCmd{img: img, x: pos.X, y: pos.Y})
	p.mu.Unlock()
}

// Present hands the frame's draws to ebiten and releases the waiting Update.
func (p *Platform) Present() error {
	p.mu.Lock()
	p.presented, p.pending = p.pending, p.presented[:0]
	p.mu.Unlock()
	select {
	case p.done <- struct{}{}:
	case <-p.stopped:
	}
	return nil
}

func (p *Platform) isStopped() bool {
	select {
	case <-p.stopped:
		return true
	default:
		return false
	}
}

// Close is called by the arbor loop on teardown. Run observes the loop
// exiting and ends the ebiten game.
func (p *Platform) Close() error {
	return nil
}

// runGame is ebiten.RunGame; tests replace it.
var runGame = ebiten.RunGame

// Run starts loop on a new goroutine and runs Ebitengine on the calling
// goroutine, which must be the main goroutine. It returns loop's error once
// both have stopped.
func Run(p *Platform, loop func() error) error {
	var loopErr error
	go func() {
		defer close(p.exited)
		loopErr = loop()
	}()

	err := runGame(&bridge{p: p})
	close(p.stopped)
	<-p.exited
	if errors.Is(err, ebiten.Termination) {
		err = nil
	}
	return errors.Join(loopErr, err)
}

// bridge implements ebiten.Game on behalf of a Platform.
type bridge struct {
	p *Platform
}

func (b *bridge) Update() error {
	p := b.p
	if ebiten.IsWindowBeingClosed() {
		p.closing.Store(true)
	}
	for _, k := range p.QuitKeys {
		if ebiten.IsKeyPressed(k) {
			p.keyQuit.Store(true)
		}
	}
	p.mu.Lock()
	p.keys = inpututil.AppendJustPressedKeys(p.keys)
	p.mu.Unlock()

	select {
	case p.frames <- struct{}{}:
	case <-p.exited:
		return ebiten.Termination
	}
	select {
	case <-p.done:
		return nil
	case <-p.exited:
		return ebiten.Termination
	}
}

func (b *bridge) Draw(screen *ebiten.Image) {
	p := b.p
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, cmd := range p.presented {
		var op ebiten.DrawImageOptions
		op.GeoM.Translate(cmd.x, cmd.y)
		screen.DrawImage(cmd.img, &op)
	}
}

func (b *bridge) Layout(outsideWidth, outsideHeight int) (int, int) {
	b.p.mu.Lock()
	cfg := b.p.cfg
	b.p.mu.Unlock()
	if cfg.Width > 0 && cfg.Height > 0 {
		return cfg.Width, cfg.Height
	}
	return outsideWidth, outsideHeight
}
