// Package ecs provides ECS adapters for folio.
package ecs

import (
	"github.com/phanxgames/folio"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// PageEventType is the Donburi event type for folio page events.
// Subscribe to this in your ECS systems to receive section changes and
// reveals.
var PageEventType = events.NewEventType[folio.PageEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Page events are published to PageEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) folio.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event folio.PageEvent) {
	PageEventType.Publish(s.world, event)
}
