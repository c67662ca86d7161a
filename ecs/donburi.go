package ecs

import (
	"github.com/phanxgames/starburst"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// SkyEventType is the Donburi event type for starburst sky events.
// Subscribe to this in your ECS systems to react to bursts and clicks.
var SkyEventType = events.NewEventType[starburst.SkyEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventStore backed by a Donburi world.
// Sky events are published to SkyEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) starburst.EventStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event starburst.SkyEvent) {
	SkyEventType.Publish(s.world, event)
}

// Counter tallies sky events by type. Register Subscribe on a world that
// receives events from NewDonburiStore.
type Counter struct {
	counts map[starburst.EventType]int
}

// NewCounter returns an empty Counter.
func NewCounter() *Counter {
	return &Counter{counts: make(map[starburst.EventType]int)}
}

// Subscribe attaches the counter to world.
func (c *Counter) Subscribe(world donburi.World) {
	SkyEventType.Subscribe(world, c.handle)
}

func (c *Counter) handle(_ donburi.World, e starburst.SkyEvent) {
	c.counts[e.Type]++
}

// Count returns how many events of type t were processed.
func (c *Counter) Count(t starburst.EventType) int {
	return c.counts[t]
}
