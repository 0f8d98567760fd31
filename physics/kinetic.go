package physics

import (
	"github.com/lixenwraith/collecta/core"
	"github.com/lixenwraith/collecta/vmath"
)

// Integrate performs physics integration: v = v + a*dt; p = p + v*dt
func Integrate(k *core.Kinetic, dt int64) (x, y int) {
	k.VelX += vmath.Mul(k.AccelX, dt)
	k.VelY += vmath.Mul(k.AccelY, dt)
	k.PreciseX += vmath.Mul(k.VelX, dt)
	k.PreciseY += vmath.Mul(k.VelY, dt)
	return vmath.ToInt(k.PreciseX), vmath.ToInt(k.PreciseY)
}

// ApplyImpulse adds velocity delta (momentum transfer)
func ApplyImpulse(k *core.Kinetic, vx, vy int64) {
	k.VelX += vx
	k.VelY += vy
}

// BounceFloor handles a body falling through floorY (screen space, +Y is down)
// On crossing it clamps to the floor and reverses vertical velocity scaled by damping (Q32.32)
// Returns true if a bounce occurred
func BounceFloor(k *core.Kinetic, floorY, damping int64) bool {
	if k.PreciseY <= floorY {
		return false
	}
	k.PreciseY = floorY
	k.VelY = -vmath.Mul(k.VelY, damping)
	return true
}
