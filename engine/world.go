package engine

import (
	"sort"

	"github.com/lixenwraith/sparkburst/core"
)

// System is a per-frame step of the simulation pipeline
type System interface {
	// Init resets system state, called on construction and world reset
	Init()
	// Priority orders systems, lower values run first
	Priority() int
	// Update runs one frame against the world
	Update()
}

// World owns all entities, their components and the shared resources
// Single-threaded: only the frame loop goroutine may touch it
type World struct {
	nextEntityID core.Entity

	Resource  Resource
	Component ComponentStore

	allStores []AnyStore
	systems   []System
}

// NewWorld creates a world with default resources and empty stores
func NewWorld() *World {
	w := &World{
		nextEntityID: 1,
		Resource:     newResource(),
	}
	initComponentStores(w)
	return w
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyEntity removes the entity from every store
func (w *World) DestroyEntity(e core.Entity) {
	for _, store := range w.allStores {
		store.Remove(e)
	}
}

// DestroyBatch removes a set of entities from every store in one pass per store
func (w *World) DestroyBatch(entities []core.Entity) {
	if len(entities) == 0 {
		return
	}
	for _, store := range w.allStores {
		store.RemoveBatch(entities)
	}
}

// Alive reports whether any store still holds a component of the entity
func (w *World) Alive(e core.Entity) bool {
	for _, store := range w.allStores {
		if store.Has(e) {
			return true
		}
	}
	return false
}

// Clear removes all components; entity IDs keep increasing so old IDs stay dead
func (w *World) Clear() {
	for _, store := range w.allStores {
		store.Clear()
	}
}

// AddSystem registers a system, keeping the pipeline sorted by priority
// Systems with equal priority keep registration order
func (w *World) AddSystem(system System) {
	w.systems = append(w.systems, system)
	sort.SliceStable(w.systems, func(i, j int) bool {
		return w.systems[i].Priority() < w.systems[j].Priority()
	})
}

// Update runs one frame: every system in priority order
func (w *World) Update() {
	for _, system := range w.systems {
		system.Update()
	}
}

// Reset clears all entities, zeroes telemetry and reinitializes every system
func (w *World) Reset() {
	w.Clear()
	w.Resource.Status.Reset()
	for _, system := range w.systems {
		system.Init()
	}
}
