package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// TickInterval is the fixed simulation step (50 Hz)
	TickInterval = 20 * time.Millisecond

	// CountdownDuration is the beat clock time before the player starts moving
	CountdownDuration = 19750 * time.Millisecond

	// InputQueueSize is the buffered capacity between the terminal poller and the loop
	InputQueueSize = 128

	// LevelScale multiplies level file coordinates into world pixels
	LevelScale = 2
)
