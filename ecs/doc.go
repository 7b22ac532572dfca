// Package ecs provides ECS adapters for folio's page events.
//
// The primary adapter is [NewDonburiStore], which bridges folio page events
// (section changes and content reveals) into a [Donburi] world as typed
// events. Subscribe to [PageEventType] in your ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	scene.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
