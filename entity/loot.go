package entity

import (
	"github.com/lixenwraith/collecta/constant"
	"github.com/lixenwraith/collecta/core"
	"github.com/lixenwraith/collecta/parameter"
	"github.com/lixenwraith/collecta/physics"
	"github.com/lixenwraith/collecta/vmath"
)

// LootParams tunes the drop bounce; Q32.32 fields are marked
type LootParams struct {
	Gravity        int64 // px/s², Q32.32
	LaunchVelocity int64 // px/s, Q32.32, positive is downward
	Damping        int64 // Q32.32
	PopHeight      int
	Proximity      int
}

func DefaultLootParams() LootParams {
	return LootParams{
		Gravity:        constant.LootGravity,
		LaunchVelocity: constant.LootLaunchVelocity,
		Damping:        constant.LootDamping,
		PopHeight:      parameter.LootPopHeight,
		Proximity:      parameter.LootProximity,
	}
}

// Loot is a collectable drop
// It appears PopHeight above its resting place, falls, and becomes collectable
// once it has bounced off the resting height for the first time
type Loot struct {
	Actor
	Kind string

	params LootParams
	cues   Cues
	kin    core.Kinetic
	base   int64 // resting Y, Q32.32
	home   core.Rect

	ready     bool
	spawned   bool
	collected bool
}

// NewLoot builds an item whose resting place is r
func NewLoot(kind string, r core.Rect, params LootParams, cues Cues) *Loot {
	if cues == nil {
		cues = NopCues{}
	}
	l := &Loot{
		Kind:   kind,
		params: params,
		cues:   cues,
		base:   vmath.FromInt(r.Y),
		home:   r,
	}
	l.Rect = r.Moved(0, -params.PopHeight)
	l.kin.PreciseY = vmath.FromInt(l.Rect.Y)
	l.kin.AccelY = params.Gravity
	physics.ApplyImpulse(&l.kin, 0, params.LaunchVelocity)
	return l
}

func (l *Loot) Ready() bool     { return l.ready }
func (l *Loot) Spawned() bool   { return l.spawned }
func (l *Loot) Collected() bool { return l.collected }

// MarkSpawned flags the item as promoted into the active set
func (l *Loot) MarkSpawned() { l.spawned = true }

// Home returns the resting rectangle used for placement checks
func (l *Loot) Home() core.Rect { return l.home }

// Velocity returns vertical velocity in px/s
func (l *Loot) Velocity() float64 { return vmath.ToFloat(l.kin.VelY) }

// PreciseY returns the sub-pixel top edge
func (l *Loot) PreciseY() float64 { return vmath.ToFloat(l.kin.PreciseY) }

// Update integrates one tick of fall and bounce
func (l *Loot) Update(dt int64) {
	physics.Integrate(&l.kin, dt)
	if physics.BounceFloor(&l.kin, l.base, l.params.Damping) {
		if !l.ready {
			l.cues.Drop()
		}
		l.ready = true
	}
	l.Rect.Y = vmath.ToInt(l.kin.PreciseY)
}

// Touch reports whether other's centre is within Proximity of this item's centre on both axes
func (l *Loot) Touch(other physics.Body) bool {
	b := other.Bounds()
	return near(b.CenterX(), l.Rect.CenterX(), l.params.Proximity) &&
		near(b.CenterY(), l.Rect.CenterY(), l.params.Proximity)
}

// Bump collects the item when it is ready and the player is close enough
func (l *Loot) Bump(p *Player) bool {
	if !l.ready || l.collected {
		return false
	}
	if !l.Touch(p) {
		return false
	}
	p.Collect(l)
	l.cues.Collect()
	l.collected = true
	return true
}

func near(a, b, limit int) bool {
	return vmath.AbsInt(a-b) < limit
}
