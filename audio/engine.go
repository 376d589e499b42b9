// Package audio plays the burst sound through the beep speaker
package audio

import (
	"log"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"

	"github.com/lixenwraith/sparkburst/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// Engine owns the speaker and a mixer that one-shot sounds are added to
// PlayBurst is safe to call before Initialize or after Close, it does nothing
type Engine struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewEngine creates an engine with an empty mixer
func NewEngine() *Engine {
	return &Engine{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker and starts streaming the mixer
func (e *Engine) Initialize() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return errors.Wrap(err, "init speaker")
	}
	speaker.Play(e.mixer)
	e.initialized = true
	log.Printf("audio: speaker started at %d Hz", parameter.AudioSampleRate)
	return nil
}

// SetMuted drops subsequent sounds while set
func (e *Engine) SetMuted(muted bool) {
	e.mu.Lock()
	e.muted = muted
	e.mu.Unlock()
}

// Muted reports the mute state
func (e *Engine) Muted() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.muted
}

// PlayBurst queues the burst chirp on the mixer without blocking on playback
func (e *Engine) PlayBurst() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized || e.muted {
		return
	}

	speaker.Lock()
	e.mixer.Add(BurstSound(sampleRate))
	speaker.Unlock()
}

// Close stops playback and releases the speaker
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	e.initialized = false
}

// BurstSound builds the short descending "pop" played on every burst
func BurstSound(rate beep.SampleRate) beep.Streamer {
	return &effects.Volume{
		Streamer: NewChirp(parameter.BurstSoundStartHz, parameter.BurstSoundEndHz, parameter.BurstSoundDuration, rate),
		Base:     2,
		Volume:   parameter.BurstSoundVolume,
	}
}
