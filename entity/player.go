package entity

import (
	"github.com/lixenwraith/collecta/constant"
	"github.com/lixenwraith/collecta/core"
	"github.com/lixenwraith/collecta/parameter"
	"github.com/lixenwraith/collecta/physics"
	"github.com/lixenwraith/collecta/vmath"
)

// Direction is the committed travel axis: at most one component is non-zero
type Direction struct {
	X, Y int
}

// Cardinal reports exactly one non-zero axis
func (d Direction) Cardinal() bool {
	return vmath.AbsInt(d.X)+vmath.AbsInt(d.Y) == 1
}

func (d Direction) Idle() bool {
	return d.X == 0 && d.Y == 0
}

// PlayerParams tunes the controller; Q32.32 fields are marked
type PlayerParams struct {
	Speed       int64 // px/s, Q32.32
	Threshold   int64 // analog deflection, Q32.32
	CellSize    int
	WorldSize   int
	Bounce      bool
	FrameStride int
	FrameCount  int
}

func DefaultPlayerParams() PlayerParams {
	return PlayerParams{
		Speed:       constant.PlayerSpeed,
		Threshold:   constant.AnalogThreshold,
		CellSize:    parameter.PlayerCellSize,
		WorldSize:   parameter.WorldSize,
		Bounce:      parameter.PlayerBounce,
		FrameStride: parameter.PlayerFrameStride,
		FrameCount:  parameter.PlayerFrameCount,
	}
}

// PlayerState is the externally observable result of a tick
type PlayerState struct {
	Pos     core.Rect
	Dir     Direction
	Blocked [4]bool
}

// Player is the grid-locked controller
//
// Direction changes are only committed on the tick the position enters a new grid cell,
// and the commit pulls the old travel axis back onto the boundary just crossed. Integer
// truncation losses and grid corrections are carried in debt, which is repaid one pixel
// per tick so average speed stays at Speed.
type Player struct {
	Actor
	params  PlayerParams
	walls   physics.Walls
	collect func(*Loot)

	Dir Direction
	// Blocked is indexed by physics.Side
	Blocked [4]bool

	analogX, analogY int64
	peakX, peakY     int64
	debt             int64

	anchor core.Point // cell floor at the last sync
	snap   core.Point // boundary a turn snaps back to
	synced bool
	moving bool

	dist     int
	FrameCol int
	FrameRow int
	Mirrored bool
}

// NewPlayer places the controller at r, facing right
// collect is invoked for every item picked up and may be nil
func NewPlayer(r core.Rect, walls physics.Walls, params PlayerParams, collect func(*Loot)) *Player {
	p := &Player{
		Actor:   Actor{Rect: r},
		params:  params,
		walls:   walls,
		collect: collect,
		Dir:     Direction{X: 1},
		synced:  true,
		anchor: core.Point{
			X: vmath.FloorTo(r.X, params.CellSize),
			Y: vmath.FloorTo(r.Y, params.CellSize),
		},
		FrameRow: parameter.PlayerRowHorizontal,
	}
	p.updateSnap()
	return p
}

// SetAnalog stores the latest stick sample; values are clamped to [-1, 1]
func (p *Player) SetAnalog(x, y float64) {
	p.analogX = vmath.FromFloat(clampUnit(x))
	p.analogY = vmath.FromFloat(clampUnit(y))
}

// SetMoving enables or suspends locomotion
func (p *Player) SetMoving(moving bool) { p.moving = moving }

func (p *Player) Moving() bool { return p.moving }
func (p *Player) Synced() bool { return p.synced }

// Peaks returns the pending turn request per axis
func (p *Player) Peaks() (float64, float64) {
	return vmath.ToFloat(p.peakX), vmath.ToFloat(p.peakY)
}

// Debt returns the accumulated sub-pixel error in pixels
func (p *Player) Debt() float64 { return vmath.ToFloat(p.debt) }

// SnapTarget returns the grid boundary a turn would snap to
func (p *Player) SnapTarget() core.Point { return p.snap }

// Collect forwards a picked-up item to the owner's handler
func (p *Player) Collect(item *Loot) {
	if p.collect != nil {
		p.collect(item)
	}
}

func (p *Player) State() PlayerState {
	return PlayerState{Pos: p.Rect, Dir: p.Dir, Blocked: p.Blocked}
}

// Step is Update with its inputs and outputs made explicit
func (p *Player) Step(dt int64, analogX, analogY float64, moving bool) PlayerState {
	p.SetAnalog(analogX, analogY)
	p.SetMoving(moving)
	p.Update(dt)
	return p.State()
}

// Update advances one fixed tick of dt seconds (Q32.32)
func (p *Player) Update(dt int64) {
	dx, dy := p.calculateDelta(dt)
	dx, dy = p.changeDirection(dx, dy)
	dx, dy = p.collideWithWalls(dx, dy)
	p.updatePosition(dx, dy)
	p.updateFrame(dx, dy)
}

func (p *Player) calculateDelta(dt int64) (int, int) {
	if !p.moving {
		return 0, 0
	}
	fx := vmath.Mul(int64(p.Dir.X)*p.params.Speed, dt)
	fy := vmath.Mul(int64(p.Dir.Y)*p.params.Speed, dt)
	p.debt += vmath.Frac(fx) + vmath.Frac(fy)
	if p.debt > vmath.Half && p.Dir.Cardinal() {
		fx += vmath.FromInt(p.Dir.X)
		fy += vmath.FromInt(p.Dir.Y)
		p.debt -= vmath.Scale
	}
	return vmath.Trunc(fx), vmath.Trunc(fy)
}

func (p *Player) changeDirection(dx, dy int) (int, int) {
	thr := p.params.Threshold
	ax, ay := vmath.Abs(p.analogX), vmath.Abs(p.analogY)
	if ax > thr && ax > vmath.Abs(p.peakX) {
		p.peakX = p.analogX
	}
	if ay > thr && ay > vmath.Abs(p.peakY) {
		p.peakY = p.analogY
	}

	stationary := dx == 0 && dy == 0
	if !p.synced && p.moving && !stationary {
		return dx, dy
	}

	// A live deflection overrides whatever was remembered
	if ax > thr || ay > thr {
		p.peakX, p.peakY = p.analogX, p.analogY
	}

	px, py := vmath.Abs(p.peakX), vmath.Abs(p.peakY)
	switch {
	case px > thr && py <= px && (stationary || p.open(vmath.Sign(p.peakX), 0)):
		p.Dir = Direction{X: vmath.Sign(p.peakX)}
		dx, dy = p.snapToGrid(dx, dy)
		p.peakX = 0
	case py > thr && px <= py && (stationary || p.open(0, vmath.Sign(p.peakY))):
		p.Dir = Direction{Y: vmath.Sign(p.peakY)}
		dx, dy = p.snapToGrid(dx, dy)
		p.peakY = 0
	}
	return dx, dy
}

// open reports whether the side facing (sx, sy) was free of walls last tick
func (p *Player) open(sx, sy int) bool {
	switch {
	case sx > 0:
		return !p.Blocked[physics.SideRight]
	case sx < 0:
		return !p.Blocked[physics.SideLeft]
	case sy > 0:
		return !p.Blocked[physics.SideDown]
	case sy < 0:
		return !p.Blocked[physics.SideUp]
	}
	return true
}

// snapToGrid replaces the displacement on the axis perpendicular to Dir with the
// correction landing exactly on the snap boundary
func (p *Player) snapToGrid(dx, dy int) (int, int) {
	if !p.moving {
		return 0, 0
	}
	switch {
	case p.Dir.X != 0:
		correct := vmath.WrapDelta(p.snap.Y-p.Rect.Y, p.params.WorldSize)
		p.addDebt(dy - correct)
		dy = correct
	case p.Dir.Y != 0:
		correct := vmath.WrapDelta(p.snap.X-p.Rect.X, p.params.WorldSize)
		p.addDebt(dx - correct)
		dx = correct
	}
	return dx, dy
}

// collideWithWalls resolves the horizontal and vertical displacement in two independent
// passes, then recomputes the blocked flags at the resolved position
func (p *Player) collideWithWalls(dx, dy int) (int, int) {
	if p.moving {
		dx, dy = p.resolveX(dx, dy)
		var bounced bool
		dx, dy, bounced = p.resolveY(dx, dy)
		if bounced {
			// The vertical bounce re-snapped the horizontal axis; sweep both again in order
			dx, _ = p.clampX(dx)
			dy, _ = p.clampY(dx, dy)
		}
	}
	p.Blocked = p.walls.Adjacent(p.Rect.Moved(dx, dy))
	return dx, dy
}

func (p *Player) clampX(dx int) (int, bool) {
	travel, hit := p.walls.SweepX(p.Rect, dx)
	if !hit {
		return dx, false
	}
	p.addDebt(dx - travel)
	return travel, true
}

func (p *Player) clampY(dx, dy int) (int, bool) {
	travel, hit := p.walls.SweepY(p.Rect.Moved(dx, 0), dy)
	if !hit {
		return dy, false
	}
	p.addDebt(dy - travel)
	return travel, true
}

func (p *Player) resolveX(dx, dy int) (int, int) {
	heading := vmath.SignInt(dx)
	dx, hit := p.clampX(dx)
	if hit && heading != 0 && heading == p.Dir.X {
		p.Dir.X = p.rebound(p.Dir.X)
		dx, dy = p.snapToGrid(dx, dy)
	}
	return dx, dy
}

func (p *Player) resolveY(dx, dy int) (int, int, bool) {
	heading := vmath.SignInt(dy)
	dy, hit := p.clampY(dx, dy)
	if hit && heading != 0 && heading == p.Dir.Y {
		p.Dir.Y = p.rebound(p.Dir.Y)
		dx, dy = p.snapToGrid(dx, dy)
		return dx, dy, true
	}
	return dx, dy, false
}

// addDebt folds a discarded displacement into debt
// Debt is capped at one cell so repeated turns cannot build an unbounded speed-up
func (p *Player) addDebt(lost int) {
	p.debt += vmath.FromInt(vmath.AbsInt(lost))
	if limit := vmath.FromInt(p.params.CellSize); p.debt > limit {
		p.debt = limit
	}
}

func (p *Player) rebound(axis int) int {
	if p.params.Bounce {
		return -axis
	}
	return 0
}

func (p *Player) updatePosition(dx, dy int) {
	if !p.moving {
		p.updateSnap()
		return
	}
	size := p.params.WorldSize
	p.Rect.X = vmath.Wrap(p.Rect.X+dx, size)
	p.Rect.Y = vmath.Wrap(p.Rect.Y+dy, size)

	cell := core.Point{
		X: vmath.FloorTo(p.Rect.X, p.params.CellSize),
		Y: vmath.FloorTo(p.Rect.Y, p.params.CellSize),
	}
	p.synced = cell != p.anchor
	if p.synced {
		p.anchor = cell
	} else {
		p.updateSnap()
	}
}

// updateSnap targets the boundary ahead when travelling in a positive direction
// from inside a cell, otherwise the current cell floor
func (p *Player) updateSnap() {
	p.snap = p.anchor
	if p.Dir.X > 0 && p.Rect.X != p.anchor.X {
		p.snap.X += p.params.CellSize
	}
	if p.Dir.Y > 0 && p.Rect.Y != p.anchor.Y {
		p.snap.Y += p.params.CellSize
	}
}

func (p *Player) updateFrame(dx, dy int) {
	p.dist += vmath.AbsInt(dx) + vmath.AbsInt(dy)
	if p.dist >= p.params.FrameStride {
		p.FrameCol = (p.FrameCol + 1) % p.params.FrameCount
		p.dist -= p.params.FrameStride
	}
	switch {
	case p.Dir.X != 0:
		p.FrameRow = parameter.PlayerRowHorizontal
	case p.Dir.Y < 0:
		p.FrameRow = parameter.PlayerRowUp
	case p.Dir.Y > 0:
		p.FrameRow = parameter.PlayerRowDown
	}
	p.Mirrored = p.Dir.X > 0
}

func clampUnit(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
