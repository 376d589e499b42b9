package parameter

import "time"

// Frame loop
const (
	// FrameRate is the target frames per second of the host loop
	FrameRate = 60
	// EventBufferSize is the capacity of the terminal event channel
	EventBufferSize = 100
)

// Logging
const (
	LogDir      = "logs"
	LogFileName = "sparkburst.log"
	// MaxLogSize triggers rotation of the existing log file on startup
	MaxLogSize = 10 * 1024 * 1024
)

// Audio
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 48000
	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond
	// BurstSoundDuration is the length of the burst chirp
	BurstSoundDuration = 120 * time.Millisecond
	// BurstSoundStartHz and BurstSoundEndHz bound the chirp sweep
	BurstSoundStartHz = 880.0
	BurstSoundEndHz   = 220.0
	// BurstSoundVolume is the beep effects.Volume exponent (base 2)
	BurstSoundVolume = -1.5
)
