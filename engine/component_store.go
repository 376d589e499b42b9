package engine

import (
	"github.com/lixenwraith/sparkburst/component"
)

// ComponentStore provides typed pointers to every component store
// Pointers remain valid for the world's lifetime
type ComponentStore struct {
	Kinetic  *Store[component.KineticComponent]
	Particle *Store[component.ParticleComponent]
}

// initComponentStores creates the stores and registers them for lifecycle operations
func initComponentStores(w *World) {
	w.Component = ComponentStore{
		Kinetic:  NewStore[component.KineticComponent](),
		Particle: NewStore[component.ParticleComponent](),
	}

	w.allStores = []AnyStore{
		w.Component.Kinetic,
		w.Component.Particle,
	}
}
