package ecs

import (
	"github.com/phanxgames/strokedtext"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// SyncFailed is published when a sync pass had declarations whose children
// could not be created. Those declarations are retried on the next pass.
type SyncFailed struct {
	Err error
}

// SyncFailedEventType is the Donburi event type for failed sync passes.
var SyncFailedEventType = events.NewEventType[SyncFailed]()

// installed marks a Donburi world the plugin has already been built on.
type installed struct {
	world *World
}

var (
	installedComponent = donburi.NewComponentType[installed]()
	installedQuery     = donburi.NewQuery(filter.Contains(installedComponent))
)

// Plugin installs stroked text synchronization on a Donburi ECS.
type Plugin struct{}

// Build registers the sync system on e and returns the World it drives.
// Building the plugin twice on the same ECS registers the system once and
// returns the same World.
func (Plugin) Build(e *ecs.ECS) *World {
	if entry, ok := installedQuery.First(e.World); ok {
		return installedComponent.Get(entry).world
	}
	w := NewWorld(e.World)
	marker := e.World.Entry(e.World.Create(installedComponent))
	installedComponent.SetValue(marker, installed{world: w})
	e.AddSystem(func(*ecs.ECS) { w.Sync() })
	return w
}

// Sync runs one synchronization pass over the world. Failed declarations
// stay flagged and a SyncFailed event is published.
func (w *World) Sync() {
	syncAndPublish(w, w.world)
}

func syncAndPublish(h strokedtext.Host, world donburi.World) {
	if err := strokedtext.Sync(h); err != nil {
		SyncFailedEventType.Publish(world, SyncFailed{Err: err})
	}
}

// ProcessEvents delivers queued SyncFailed events to subscribers.
func ProcessEvents(w donburi.World) {
	SyncFailedEventType.ProcessEvents(w)
}
