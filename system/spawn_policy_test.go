package system

import (
	"math"
	"testing"

	"github.com/lixenwraith/sparkburst/config"
	"github.com/lixenwraith/sparkburst/vmath"
)

func headingDeg(rad float32) int {
	return int(math.Round(float64(vmath.RadToDeg(rad))))
}

func TestFrameHue(t *testing.T) {
	tests := []struct {
		elapsed float64
		want    float32
	}{
		{0, 0},
		{1.5, 150},
		{3.6, 0},
		{4.0, 40},
		{10.25, 305},
		// Rounds to 360 in float32, wraps to 0
		{3.59999999999, 0},
	}
	for _, tt := range tests {
		got := FrameHue(tt.elapsed, 100)
		if math.Abs(float64(got-tt.want)) > 1e-3 {
			t.Errorf("FrameHue(%v) = %f, want %f", tt.elapsed, got, tt.want)
		}
	}
}

func TestAppendBurst_CountAndRanges(t *testing.T) {
	p := &config.Default().Particle
	rng := vmath.NewFastRand(7)

	batch := AppendBurst(nil, rng, p, 123)
	if len(batch) != 50 {
		t.Fatalf("Expected 50 descriptors, got %d", len(batch))
	}
	for i, d := range batch {
		if d.Size < 10 || d.Size > 50 || d.Size != float32(int(d.Size)) {
			t.Errorf("Descriptor %d size %f outside integer [10,50]", i, d.Size)
		}
		if d.Speed < 150 || d.Speed > 250 {
			t.Errorf("Descriptor %d speed %f outside [150,250]", i, d.Speed)
		}
		if deg := headingDeg(d.Heading); deg < 0 || deg >= 360 {
			t.Errorf("Descriptor %d heading %d° outside [0,360)", i, deg)
		}
		if d.Hue != 123 {
			t.Errorf("Descriptor %d hue %f, want shared 123", i, d.Hue)
		}
	}
}

func TestAppendBurst_HeadingUniform(t *testing.T) {
	p := &config.Default().Particle
	rng := vmath.NewFastRand(2024)

	const bursts = 400
	const bins = 12
	var hist [bins]int
	var buf []SpawnDescriptor
	for i := 0; i < bursts; i++ {
		buf = AppendBurst(buf[:0], rng, p, 0)
		for _, d := range buf {
			hist[headingDeg(d.Heading)/(360/bins)]++
		}
	}

	expected := float64(bursts*p.BurstCount) / bins
	for i, n := range hist {
		if dev := math.Abs(float64(n)-expected) / expected; dev > 0.1 {
			t.Errorf("Bin %d (%d°-%d°): %d samples, %.1f%% off uniform", i, i*30, i*30+30, n, dev*100)
		}
	}
}

func TestAppendBurst_SizeCoversRange(t *testing.T) {
	p := &config.Default().Particle
	rng := vmath.NewFastRand(99)

	seen := make(map[int]bool)
	var buf []SpawnDescriptor
	for i := 0; i < 100; i++ {
		buf = AppendBurst(buf[:0], rng, p, 0)
		for _, d := range buf {
			seen[int(d.Size)] = true
		}
	}
	for size := 10; size <= 50; size++ {
		if !seen[size] {
			t.Errorf("Size %d never drawn, inclusive bounds broken", size)
		}
	}
}

func TestAppendStream_LaneClustering(t *testing.T) {
	p := &config.Default().Particle
	rng := vmath.NewFastRand(11)

	for _, hue := range []float32{0, 37.9, 180, 359.5} {
		for frame := 0; frame < 50; frame++ {
			batch := AppendStream(nil, rng, p, hue)
			if len(batch) != 5 {
				t.Fatalf("Expected 5 descriptors, got %d", len(batch))
			}
			for i, d := range batch {
				lane := 1 + i%4
				center := 3*int(hue) + lane*90
				deg := headingDeg(d.Heading)
				if deg < center-5 || deg >= center+5 {
					t.Errorf("hue %.1f particle %d: heading %d° outside [%d,%d)", hue, i, deg, center-5, center+5)
				}
				if diff := vmath.AngleDiffDeg(float32(center), float32(deg)); diff < -5 || diff >= 5 {
					t.Errorf("hue %.1f particle %d: wrapped diff %f", hue, i, diff)
				}
				if d.Size < 10 || d.Size > 40 {
					t.Errorf("Stream size %f outside [10,40]", d.Size)
				}
				if d.Speed < 150 || d.Speed > 250 {
					t.Errorf("Stream speed %f outside [150,250]", d.Speed)
				}
			}
		}
	}
}

func TestStreamLaneCenter_FifthParticleRepeatsFirstLane(t *testing.T) {
	p := &config.Default().Particle
	if a, b := StreamLaneCenter(p, 20, 0), StreamLaneCenter(p, 20, 4); a != b {
		t.Errorf("Particles 0 and 4 must share a lane, got %d and %d", a, b)
	}
	if got := StreamLaneCenter(p, 20.9, 1); got != 3*20+2*90 {
		t.Errorf("Expected truncated hue in center, got %d", got)
	}
}

func TestSpawnPolicy_SeedReproducible(t *testing.T) {
	p := &config.Default().Particle
	a := AppendStream(AppendBurst(nil, vmath.NewFastRand(5), p, 10), vmath.NewFastRand(6), p, 10)
	b := AppendStream(AppendBurst(nil, vmath.NewFastRand(5), p, 10), vmath.NewFastRand(6), p, 10)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Descriptor %d differs with equal seeds: %+v vs %+v", i, a[i], b[i])
		}
	}
}
