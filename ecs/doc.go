// Package ecs provides ECS adapters for starburst's sky events.
//
// The primary adapter is [NewDonburiStore], which bridges sky events
// (fireworks, shooting stars, clicks, culls, visibility changes) into a
// [Donburi] world as typed events. Subscribe to [SkyEventType] in your ECS
// systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	sky.AddEventStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
