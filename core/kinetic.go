package core

// Kinetic holds sub-pixel motion state for bodies integrated in fixed point
type Kinetic struct {
	// PreciseX and PreciseY are sub-pixel coordinates in Q32.32 format
	PreciseX, PreciseY int64
	// VelX and VelY represent velocity in pixels per second (Q32.32)
	VelX, VelY int64
	// AccelX and AccelY represent acceleration in pixels per second squared (Q32.32)
	AccelX, AccelY int64
}
