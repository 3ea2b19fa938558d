package arbor

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

const testSampleRate = beep.SampleRate(44100)

func countSamples(s beep.Streamer) int {
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
	}
}

func TestToneLength(t *testing.T) {
	s, err := Tone(testSampleRate, 440, 10*time.Millisecond)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := countSamples(s), testSampleRate.N(10*time.Millisecond); got != want {
		t.Errorf("samples = %d, want %d", got, want)
	}
}

func TestToneInvalidFrequency(t *testing.T) {
	// A tone at or above the Nyquist frequency cannot be generated.
	if _, err := Tone(testSampleRate, float64(testSampleRate), time.Millisecond); err == nil {
		t.Error("expected error for frequency above Nyquist")
	}
}

type fakePlayer struct {
	played []beep.Streamer
}

func (p *fakePlayer) Play(s ...beep.Streamer) { p.played = append(p.played, s...) }

func newTestSource(t *testing.T, g *GameObject, playOnStart bool) (*AudioSource, *fakePlayer) {
	t.Helper()
	tone, err := Tone(testSampleRate, 440, time.Millisecond)
	if err != nil {
		t.Fatal(err)
	}
	a := mustAdd(t, g, NewAudioSource(tone, playOnStart)).(*AudioSource)
	p := &fakePlayer{}
	a.Player = p.Play
	return a, p
}

func TestAudioSourcePlayPauseResume(t *testing.T) {
	a, p := newTestSource(t, NewGameObject(nil), false)
	if a.Playing() {
		t.Error("should not be playing before Play")
	}
	a.Play()
	if len(p.played) != 1 {
		t.Fatalf("played = %d, want 1", len(p.played))
	}
	if !a.Playing() {
		t.Error("should be playing")
	}
	a.Pause()
	if a.Playing() {
		t.Error("should be paused")
	}
	a.Resume()
	if !a.Playing() {
		t.Error("should resume")
	}
}

func TestAudioSourcePlayOnStart(t *testing.T) {
	s := NewScene()
	a, p := newTestSource(t, NewGameObject(s), true)
	runFrames(t, s, NewHeadlessPlatform(), 1)
	if len(p.played) != 1 || !a.Playing() {
		t.Errorf("played = %d, playing = %v; want 1, true", len(p.played), a.Playing())
	}
}

func TestAudioSourceNoPlayOnStart(t *testing.T) {
	s := NewScene()
	_, p := newTestSource(t, NewGameObject(s), false)
	runFrames(t, s, NewHeadlessPlatform(), 1)
	if len(p.played) != 0 {
		t.Errorf("played = %d, want 0", len(p.played))
	}
}

func TestAudioSourcePausedOnDestroy(t *testing.T) {
	g := NewGameObject(nil)
	a, _ := newTestSource(t, g, false)
	a.Play()
	g.Dispose(true)
	if a.Playing() {
		t.Error("playback should pause when the owner is disposed")
	}
}

func TestAudioSourceNilStreamer(t *testing.T) {
	g := NewGameObject(nil)
	a := mustAdd(t, g, NewAudioSource(nil, false)).(*AudioSource)
	p := &fakePlayer{}
	a.Player = p.Play
	a.Play()
	a.Pause()
	if len(p.played) != 0 || a.Playing() {
		t.Error("nil streamer should not play")
	}
}
