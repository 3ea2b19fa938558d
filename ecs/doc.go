// Package ecs provides ECS adapters for arbor's game loop.
//
// The primary adapter is [NewDonburiSink], which bridges arbor lifecycle
// events (loop started, frame presented, loop closed) into a [Donburi] world
// as typed events. Subscribe to [LifecycleEventType] in your ECS systems to
// receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	game.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
