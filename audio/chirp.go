package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// chirp is a sine sweep with exponential pitch glide and linear decay
type chirp struct {
	phase    float64
	position int
	total    int
	startHz  float64
	ratio    float64 // endHz / startHz
	rate     beep.SampleRate
}

// NewChirp creates a finite sine sweep from startHz to endHz
// Amplitude falls linearly to silence at the end so the tail never clicks
func NewChirp(startHz, endHz float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &chirp{
		total:   rate.N(duration),
		startHz: startHz,
		ratio:   endHz / startHz,
		rate:    rate,
	}
}

func (c *chirp) Stream(samples [][2]float64) (n int, ok bool) {
	if c.position >= c.total {
		return 0, false
	}
	for i := range samples {
		if c.position >= c.total {
			return i, true
		}

		t := float64(c.position) / float64(c.total)
		freq := c.startHz * math.Pow(c.ratio, t)
		val := math.Sin(2*math.Pi*c.phase) * (1 - t)

		samples[i][0] = val
		samples[i][1] = val

		c.phase += freq / float64(c.rate)
		c.phase -= math.Floor(c.phase)
		c.position++
	}
	return len(samples), true
}

func (c *chirp) Err() error { return nil }
