package engine

import "time"

// FrameClock produces per-frame timing with pause support
// Elapsed excludes paused intervals; a frame taken while paused has zero delta
type FrameClock struct {
	provider TimeProvider

	startTime time.Time
	lastTick  time.Time

	paused      bool
	pauseStart  time.Time
	totalPaused time.Duration

	frame int64
}

// NewFrameClock creates a clock starting at the provider's current time
func NewFrameClock(provider TimeProvider) *FrameClock {
	now := provider.Now()
	return &FrameClock{
		provider:  provider,
		startTime: now,
		lastTick:  now,
	}
}

// Tick advances one frame and writes the result into tr
func (c *FrameClock) Tick(tr *TimeResource) {
	now := c.provider.Now()
	c.frame++

	var delta time.Duration
	if !c.paused {
		delta = now.Sub(c.lastTick)
		if delta < 0 {
			delta = 0
		}
	}
	c.lastTick = now

	tr.Update(c.elapsedAt(now), delta, c.frame, c.paused)
}

// Elapsed returns simulation time since start
func (c *FrameClock) Elapsed() time.Duration {
	return c.elapsedAt(c.provider.Now())
}

func (c *FrameClock) elapsedAt(now time.Time) time.Duration {
	paused := c.totalPaused
	if c.paused {
		paused += now.Sub(c.pauseStart)
	}
	return now.Sub(c.startTime) - paused
}

// Pause freezes simulation time
func (c *FrameClock) Pause() {
	if c.paused {
		return
	}
	c.paused = true
	c.pauseStart = c.provider.Now()
}

// Resume continues simulation time; the first frame after resume measures from resume
func (c *FrameClock) Resume() {
	if !c.paused {
		return
	}
	now := c.provider.Now()
	c.totalPaused += now.Sub(c.pauseStart)
	c.paused = false
	c.lastTick = now
}

// Toggle flips pause state and returns the new state
func (c *FrameClock) Toggle() bool {
	if c.paused {
		c.Resume()
	} else {
		c.Pause()
	}
	return c.paused
}

func (c *FrameClock) IsPaused() bool {
	return c.paused
}

// Frame returns the number of ticks taken
func (c *FrameClock) Frame() int64 {
	return c.frame
}
