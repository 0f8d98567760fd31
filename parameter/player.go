package parameter

// Player locomotion
const (
	// PlayerSpeedFloat is the nominal travel speed in pixels per second
	PlayerSpeedFloat = 375.0

	// PlayerCellSize is the movement grid pitch in pixels, also the player sprite size
	PlayerCellSize = 64

	// WorldSize is the toroidal wrap period on both axes in pixels
	WorldSize = 704

	// PlayerBounce reverses direction on wall contact instead of stopping
	PlayerBounce = true

	// AnalogThresholdFloat is the stick deflection a sample must exceed to request a turn
	AnalogThresholdFloat = 0.4
)

// Player animation
const (
	// PlayerFrameStride is the travelled distance in pixels per animation frame
	PlayerFrameStride = 16

	// PlayerFrameCount is the number of frames in one walk cycle
	PlayerFrameCount = 4

	// Sprite sheet rows
	PlayerRowUp         = 0
	PlayerRowDown       = 1
	PlayerRowHorizontal = 2
)
