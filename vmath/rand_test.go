package vmath

import "testing"

func TestFastRand_IntRangeInclusive(t *testing.T) {
	r := NewFastRand(12345)
	seen := make(map[int]int)
	for i := 0; i < 10000; i++ {
		v := r.IntRange(150, 250)
		if v < 150 || v > 250 {
			t.Fatalf("IntRange out of bounds: %d", v)
		}
		seen[v]++
	}
	if seen[150] == 0 || seen[250] == 0 {
		t.Errorf("Endpoints not drawn: 150=%d 250=%d", seen[150], seen[250])
	}
	if len(seen) != 101 {
		t.Errorf("Expected 101 distinct values, got %d", len(seen))
	}
}

func TestFastRand_IntBetweenHalfOpen(t *testing.T) {
	r := NewFastRand(9)
	hitLow := false
	for i := 0; i < 5000; i++ {
		v := r.IntBetween(-5, 5)
		if v < -5 || v >= 5 {
			t.Fatalf("IntBetween out of bounds: %d", v)
		}
		if v == -5 {
			hitLow = true
		}
	}
	if !hitLow {
		t.Error("Lower bound never drawn")
	}
	if v := r.IntBetween(3, 3); v != 3 {
		t.Errorf("Empty range must return lo, got %d", v)
	}
}

func TestFastRand_SeedReproducible(t *testing.T) {
	a := NewFastRand(77)
	b := NewFastRand(77)
	for i := 0; i < 100; i++ {
		if a.Next() != b.Next() {
			t.Fatalf("Sequences diverged at %d", i)
		}
	}

	a.Seed(77)
	c := NewFastRand(77)
	if a.Next() != c.Next() {
		t.Error("Seed must restart the sequence")
	}
	if NewFastRand(0).Next() == 0 {
		t.Error("Zero seed must not produce the stuck zero state")
	}
}

func TestFastRand_Float32Range(t *testing.T) {
	r := NewFastRand(3)
	for i := 0; i < 1000; i++ {
		if f := r.Float32(); f < 0 || f >= 1 {
			t.Fatalf("Float32 out of [0,1): %f", f)
		}
	}
}
