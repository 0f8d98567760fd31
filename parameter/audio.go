package parameter

import "time"

// Audio output
const (
	AudioSampleRate = 48000

	// AudioBufferDuration determines latency of the speaker
	AudioBufferDuration = 100 * time.Millisecond

	// AudioResampleQuality is passed to beep.Resample for music files
	AudioResampleQuality = 4
)

// Cue volumes, linear 0.0-1.0
const (
	DropVolume    = 0.1
	CollectVolume = 0.2
	MusicVolume   = 0.3
)

// Drop cue: short falling blip
const (
	DropCueDuration = 90 * time.Millisecond
	DropCueStartHz  = 440.0
	DropCueEndHz    = 180.0
)

// Collect cue: rising two-note chime
const (
	CollectCueDuration = 160 * time.Millisecond
	CollectCueLowHz    = 660.0
	CollectCueHighHz   = 990.0
)

// Generated music bed used when no music file is configured
const (
	MusicBeatInterval = 600 * time.Millisecond // 100 BPM
	MusicKickLength   = 100 * time.Millisecond
	MusicKickHz       = 60.0
	MusicBassHz       = 110.0
)
