package ecs

import (
	"github.com/phanxgames/arbor"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// LifecycleEventType is the Donburi event type for arbor game loop events.
// Subscribe to this in your ECS systems to react to loop start, frames and
// shutdown.
var LifecycleEventType = events.NewEventType[arbor.LifecycleEvent]()

var _ arbor.EventSink = (*donburiSink)(nil)

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Lifecycle events are published to LifecycleEventType and can be consumed
// with Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) arbor.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event arbor.LifecycleEvent) {
	LifecycleEventType.Publish(s.world, event)
}
