package ecs

import (
	"testing"

	"github.com/phanxgames/arbor"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)
	if sink == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
}

func TestDonburiSink_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []arbor.LifecycleEvent
	LifecycleEventType.Subscribe(world, func(w donburi.World, e arbor.LifecycleEvent) {
		received = append(received, e)
	})

	sink.EmitEvent(arbor.LifecycleEvent{Type: arbor.LifecycleStarted})
	sink.EmitEvent(arbor.LifecycleEvent{Type: arbor.LifecycleFrame, FrameCount: 3, DeltaTime: 0.5})

	// Events are queued; process them.
	LifecycleEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if received[0].Type != arbor.LifecycleStarted {
		t.Errorf("event 0: %+v", received[0])
	}
	if received[1].Type != arbor.LifecycleFrame || received[1].FrameCount != 3 || received[1].DeltaTime != 0.5 {
		t.Errorf("event 1: %+v", received[1])
	}
}

// closeAfter closes the running game once FrameCount reaches n.
type closeAfter struct {
	arbor.Base
	n int
}

func (c *closeAfter) Update(f *arbor.Frame) {
	if f.FrameCount+1 >= c.n {
		c.Game().Close()
	}
}

func TestDonburiSink_GameLoop(t *testing.T) {
	world := donburi.NewWorld()

	var types []arbor.LifecycleType
	var lastFrame int
	LifecycleEventType.Subscribe(world, func(w donburi.World, e arbor.LifecycleEvent) {
		types = append(types, e.Type)
		if e.Type == arbor.LifecycleFrame {
			lastFrame = e.FrameCount
		}
	})

	scene := arbor.NewScene()
	obj := arbor.NewGameObject(scene)
	if _, err := obj.AddComponent(arbor.Instance(&closeAfter{n: 2})); err != nil {
		t.Fatal(err)
	}

	game := arbor.NewGame(arbor.NewHeadlessPlatform(), arbor.DefaultConfig())
	game.SetEventSink(NewDonburiSink(world))
	if err := game.Mainloop(scene); err != nil {
		t.Fatalf("Mainloop: %v", err)
	}
	events.ProcessAllEvents(world)

	want := []arbor.LifecycleType{
		arbor.LifecycleStarted,
		arbor.LifecycleFrame,
		arbor.LifecycleFrame,
		arbor.LifecycleClosed,
	}
	if len(types) != len(want) {
		t.Fatalf("events = %v, want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, types[i], want[i])
		}
	}
	if lastFrame != 2 {
		t.Errorf("last frame count = %d, want 2", lastFrame)
	}
}
