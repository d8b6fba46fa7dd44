package ecs

import (
	"github.com/phanxgames/cursor"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// CursorEventType is the Donburi event type for routed cursor events.
var CursorEventType = events.NewEventType[cursor.Event]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Events are queued on CursorEventType and delivered by ProcessEvents.
func NewDonburiStore(world donburi.World) cursor.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event cursor.Event) {
	CursorEventType.Publish(s.world, event)
}
