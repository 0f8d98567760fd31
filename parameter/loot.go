package parameter

// Loot drop physics
const (
	// LootGravityFloat is the downward acceleration in pixels per second squared
	LootGravityFloat = 1000.0

	// LootLaunchVelocityFloat is the initial vertical velocity when an item appears
	LootLaunchVelocityFloat = 160.0

	// LootDampingFloat scales velocity on each floor bounce
	LootDampingFloat = 0.7

	// LootPopHeight is how far above its resting height an item appears, in pixels
	LootPopHeight = 8

	// LootProximity is the per-axis centre distance below which two bodies touch
	LootProximity = 24
)

// Object types in the level objects layer that are not loot
var NonLootObjects = map[string]bool{"door": true, "button": true, "key": true, "block": true}

// PlayerObject is the objects-layer type marking the player spawn
const PlayerObject = "player"
