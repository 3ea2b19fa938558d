package arbor

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// InitAudio initializes the speaker at sample rate sr with a 100ms buffer.
// It must be called once before any AudioSource plays through the speaker.
func InitAudio(sr beep.SampleRate) error {
	if err := speaker.Init(sr, sr.N(time.Second/10)); err != nil {
		return fmt.Errorf("init audio: %w", err)
	}
	return nil
}

// Tone returns a sine tone at freq Hz lasting d.
func Tone(sr beep.SampleRate, freq float64, d time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(sr, freq)
	if err != nil {
		return nil, fmt.Errorf("tone %vHz: %w", freq, err)
	}
	return beep.Take(sr.N(d), sine), nil
}

// AudioSource plays a beep.Streamer on behalf of its owner. Playback is
// paused when the component is removed or its owner is disposed.
type AudioSource struct {
	Base

	Streamer    beep.Streamer
	PlayOnStart bool
	// Player hands streamers to the output device. Nil uses speaker.Play.
	Player func(s ...beep.Streamer)

	ctrl *beep.Ctrl
}

// NewAudioSource returns a factory for an AudioSource playing s.
func NewAudioSource(s beep.Streamer, playOnStart bool) ComponentFactory {
	return func(*GameObject) Component {
		return &AudioSource{Streamer: s, PlayOnStart: playOnStart}
	}
}

// Start plays the streamer when PlayOnStart is set.
func (a *AudioSource) Start() {
	if a.PlayOnStart {
		a.Play()
	}
}

// Play starts the streamer from its current position.
func (a *AudioSource) Play() {
	if a.Streamer == nil {
		return
	}
	a.ctrl = &beep.Ctrl{Streamer: a.Streamer}
	play := a.Player
	if play == nil {
		play = speaker.Play
	}
	play(a.ctrl)
}

// Pause pauses playback.
func (a *AudioSource) Pause() {
	a.setPaused(true)
}

// Resume resumes paused playback.
func (a *AudioSource) Resume() {
	a.setPaused(false)
}

// Playing reports whether the source has been played and is not paused.
func (a *AudioSource) Playing() bool {
	if a.ctrl == nil {
		return false
	}
	speaker.Lock()
	defer speaker.Unlock()
	return !a.ctrl.Paused
}

// OnDestroy pauses playback.
func (a *AudioSource) OnDestroy() {
	a.Pause()
}

func (a *AudioSource) setPaused(paused bool) {
	if a.ctrl == nil {
		return
	}
	speaker.Lock()
	a.ctrl.Paused = paused
	speaker.Unlock()
}
