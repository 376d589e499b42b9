package engine

import (
	"slices"
	"testing"

	"github.com/lixenwraith/sparkburst/core"
)

type mockComponent struct {
	Value int
}

func TestStore_SetGetRemove(t *testing.T) {
	s := NewStore[mockComponent]()

	s.Set(1, mockComponent{Value: 10})
	s.Set(2, mockComponent{Value: 20})
	s.Set(3, mockComponent{Value: 30})

	if s.Count() != 3 {
		t.Fatalf("Expected 3 components, got %d", s.Count())
	}

	s.Set(2, mockComponent{Value: 21})
	if v, ok := s.Get(2); !ok || v.Value != 21 {
		t.Errorf("Expected replaced value 21, got %v (ok=%v)", v, ok)
	}
	if s.Count() != 3 {
		t.Errorf("Replace must not grow store, got %d", s.Count())
	}

	s.Remove(1)
	if s.Has(1) {
		t.Error("Entity 1 should be removed")
	}
	// Swap-remove must keep the moved entity addressable
	if v, ok := s.Get(3); !ok || v.Value != 30 {
		t.Errorf("Expected entity 3 intact after swap, got %v (ok=%v)", v, ok)
	}

	s.Remove(99)
	if s.Count() != 2 {
		t.Errorf("Removing unknown entity changed count to %d", s.Count())
	}
}

func TestStore_RefMutatesInPlace(t *testing.T) {
	s := NewStore[mockComponent]()
	s.Set(7, mockComponent{Value: 1})

	ref := s.Ref(7)
	if ref == nil {
		t.Fatal("Expected non-nil ref")
	}
	ref.Value = 5

	if v, _ := s.Get(7); v.Value != 5 {
		t.Errorf("Expected mutated value 5, got %d", v.Value)
	}
	if s.Ref(8) != nil {
		t.Error("Expected nil ref for missing entity")
	}
}

func TestStore_RemoveBatch(t *testing.T) {
	s := NewStore[mockComponent]()
	for i := core.Entity(1); i <= 10; i++ {
		s.Set(i, mockComponent{Value: int(i) * 10})
	}

	s.RemoveBatch([]core.Entity{2, 4, 6, 8, 10, 42})

	if s.Count() != 5 {
		t.Fatalf("Expected 5 remaining, got %d", s.Count())
	}
	for i := core.Entity(1); i <= 10; i++ {
		v, ok := s.Get(i)
		if i%2 == 0 {
			if ok {
				t.Errorf("Entity %d should be removed", i)
			}
			continue
		}
		if !ok || v.Value != int(i)*10 {
			t.Errorf("Entity %d corrupted: %v (ok=%v)", i, v, ok)
		}
	}

	all := s.All()
	slices.Sort(all)
	if !slices.Equal(all, []core.Entity{1, 3, 5, 7, 9}) {
		t.Errorf("Unexpected entity list %v", all)
	}
}

func TestStore_EachVisitsAll(t *testing.T) {
	s := NewStore[mockComponent]()
	s.Set(1, mockComponent{Value: 1})
	s.Set(2, mockComponent{Value: 2})

	sum := 0
	s.Each(func(_ core.Entity, v *mockComponent) {
		v.Value *= 3
		sum += v.Value
	})
	if sum != 9 {
		t.Errorf("Expected sum 9, got %d", sum)
	}
	if v, _ := s.Get(2); v.Value != 6 {
		t.Errorf("Each must mutate in place, got %d", v.Value)
	}
}

func TestStore_Clear(t *testing.T) {
	s := NewStore[mockComponent]()
	s.Set(1, mockComponent{})
	s.Set(2, mockComponent{})
	s.Clear()

	if s.Count() != 0 || s.Has(1) || len(s.All()) != 0 {
		t.Error("Store not empty after Clear")
	}
	s.Set(3, mockComponent{Value: 3})
	if v, ok := s.Get(3); !ok || v.Value != 3 {
		t.Error("Store unusable after Clear")
	}
}
