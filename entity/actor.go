package entity

import "github.com/lixenwraith/collecta/core"

// Entity is a member of the active entity set
type Entity interface {
	Bounds() core.Rect
}

// Updater is implemented by entities that advance every tick
type Updater interface {
	Update(dt int64)
}

// Bumper is implemented by entities that react to the player touching them
// Bump returns true when the entity consumed itself and must leave the active set
type Bumper interface {
	Bump(p *Player) bool
}

// Actor is the positional base shared by all entities
type Actor struct {
	Rect core.Rect
}

func (a *Actor) Bounds() core.Rect { return a.Rect }

// Wall is static geometry registered as an entity for debug rendering
type Wall struct {
	Actor
}

func NewWall(r core.Rect) *Wall {
	return &Wall{Actor: Actor{Rect: r}}
}
