package engine

import (
	"github.com/lixenwraith/sparkburst/core"
)

// Store is a sparse set container for components of type T
// Components are packed densely for iteration; index maps entity to slot
type Store[T any] struct {
	index    map[core.Entity]int
	entities []core.Entity
	values   []T
}

// NewStore creates a new component store for type T
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		index:    make(map[core.Entity]int),
		entities: make([]core.Entity, 0, 64),
		values:   make([]T, 0, 64),
	}
}

// Set inserts or replaces the component of an entity
func (s *Store[T]) Set(e core.Entity, val T) {
	if i, ok := s.index[e]; ok {
		s.values[i] = val
		return
	}
	s.index[e] = len(s.entities)
	s.entities = append(s.entities, e)
	s.values = append(s.values, val)
}

// Get returns a copy of the component of an entity
func (s *Store[T]) Get(e core.Entity) (T, bool) {
	if i, ok := s.index[e]; ok {
		return s.values[i], true
	}
	var zero T
	return zero, false
}

// Ref returns a pointer to the stored component for in-place mutation
// The pointer is invalidated by the next Set of a new entity or any Remove
func (s *Store[T]) Ref(e core.Entity) *T {
	if i, ok := s.index[e]; ok {
		return &s.values[i]
	}
	return nil
}

// Remove deletes the component of an entity, moving the last slot into the hole
func (s *Store[T]) Remove(e core.Entity) {
	i, ok := s.index[e]
	if !ok {
		return
	}
	last := len(s.entities) - 1
	if i != last {
		s.entities[i] = s.entities[last]
		s.values[i] = s.values[last]
		s.index[s.entities[i]] = i
	}
	var zero T
	s.values[last] = zero
	s.entities = s.entities[:last]
	s.values = s.values[:last]
	delete(s.index, e)
}

// RemoveBatch deletes multiple entities - O(n+m) single compaction pass
func (s *Store[T]) RemoveBatch(entities []core.Entity) {
	if len(entities) == 0 || len(s.entities) == 0 {
		return
	}

	removed := 0
	for _, e := range entities {
		if _, ok := s.index[e]; ok {
			delete(s.index, e)
			removed++
		}
	}
	if removed == 0 {
		return
	}

	write := 0
	for read, e := range s.entities {
		if _, keep := s.index[e]; !keep {
			continue
		}
		if write != read {
			s.entities[write] = e
			s.values[write] = s.values[read]
		}
		s.index[e] = write
		write++
	}

	var zero T
	for i := write; i < len(s.values); i++ {
		s.values[i] = zero
	}
	s.entities = s.entities[:write]
	s.values = s.values[:write]
}

// Has checks if entity has this component
func (s *Store[T]) Has(e core.Entity) bool {
	_, ok := s.index[e]
	return ok
}

// All returns a copy of the entity list, safe to hold across mutation
func (s *Store[T]) All() []core.Entity {
	result := make([]core.Entity, len(s.entities))
	copy(result, s.entities)
	return result
}

// Each calls fn with a pointer to every component in dense order
// fn must not add or remove components of this store
func (s *Store[T]) Each(fn func(e core.Entity, val *T)) {
	for i := range s.values {
		fn(s.entities[i], &s.values[i])
	}
}

// Count returns number of entities with this component
func (s *Store[T]) Count() int {
	return len(s.entities)
}

// Clear removes all components, keeping allocated capacity
func (s *Store[T]) Clear() {
	clear(s.index)
	clear(s.values)
	s.entities = s.entities[:0]
	s.values = s.values[:0]
}
