package constant

import (
	"github.com/lixenwraith/collecta/parameter"
	"github.com/lixenwraith/collecta/vmath"
)

// Pre-computed Q32.32 physics constants
// Initialized once, used by entities to avoid repeated FromFloat calls
var (
	// TickDT is one simulation step in seconds
	TickDT = vmath.FromFloat(parameter.TickInterval.Seconds())

	// Player locomotion (Q32.32)
	PlayerSpeed     = vmath.FromFloat(parameter.PlayerSpeedFloat)
	AnalogThreshold = vmath.FromFloat(parameter.AnalogThresholdFloat)

	// Loot drop physics (Q32.32)
	LootGravity        = vmath.FromFloat(parameter.LootGravityFloat)
	LootLaunchVelocity = vmath.FromFloat(parameter.LootLaunchVelocityFloat)
	LootDamping        = vmath.FromFloat(parameter.LootDampingFloat)
)
