// Package ecs provides ECS adapters for the cursor router.
//
// The primary adapter is [NewDonburiStore], which publishes every routed
// event (move, enter, exit, button edges) into a [Donburi] world as a typed
// event. Subscribe to [CursorEventType] in your ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	router.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
