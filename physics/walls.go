package physics

import (
	"github.com/lixenwraith/collecta/core"
	"github.com/lixenwraith/collecta/vmath"
)

// Side indexes the four edges of a rectangle
type Side uint8

const (
	SideUp Side = iota
	SideDown
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideUp:
		return "UP"
	case SideDown:
		return "DOWN"
	case SideLeft:
		return "LEFT"
	case SideRight:
		return "RIGHT"
	}
	return "?"
}

// Walls is the immutable static geometry of a room
// Period is the toroidal world size; walls are tested against their images
// one period away on each axis so contact across the seam is detected. Zero disables wrapping
type Walls struct {
	Rects  []core.Rect
	Period int
}

// NewWalls copies rects so later mutation by the caller cannot leak in
func NewWalls(rects []core.Rect, period int) Walls {
	own := make([]core.Rect, len(rects))
	copy(own, rects)
	return Walls{Rects: own, Period: period}
}

func (w Walls) Len() int { return len(w.Rects) }

// images calls fn for each wall and its wrapped copies
func (w Walls) images(fn func(core.Rect)) {
	shifts := [3]int{0, -w.Period, w.Period}
	n := 3
	if w.Period <= 0 {
		n = 1
	}
	for _, r := range w.Rects {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				fn(r.Moved(shifts[i], shifts[j]))
			}
		}
	}
}

// Penetrates reports whether r has positive overlap with any wall
func (w Walls) Penetrates(r core.Rect) bool {
	hit := false
	w.images(func(wall core.Rect) {
		if !hit && Overlaps(r, wall) {
			hit = true
		}
	})
	return hit
}

// SweepX moves r horizontally by dx and returns the displacement it can take before its
// leading edge is flush with a wall, and whether a wall was reached
// Only walls with strictly positive vertical overlap are considered
func (w Walls) SweepX(r core.Rect, dx int) (int, bool) {
	if dx == 0 {
		return 0, false
	}
	best := vmath.AbsInt(dx)
	hit := false
	w.images(func(wall core.Rect) {
		if wall.Top() >= r.Bottom() || wall.Bottom() <= r.Top() {
			return
		}
		var gap int
		if dx > 0 {
			if wall.Left() < r.Right() {
				return
			}
			gap = wall.Left() - r.Right()
		} else {
			if wall.Right() > r.Left() {
				return
			}
			gap = r.Left() - wall.Right()
		}
		if gap <= best {
			best = gap
			hit = true
		}
	})
	return vmath.SignInt(dx) * best, hit
}

// SweepY is SweepX for the vertical axis
func (w Walls) SweepY(r core.Rect, dy int) (int, bool) {
	if dy == 0 {
		return 0, false
	}
	best := vmath.AbsInt(dy)
	hit := false
	w.images(func(wall core.Rect) {
		if wall.Left() >= r.Right() || wall.Right() <= r.Left() {
			return
		}
		var gap int
		if dy > 0 {
			if wall.Top() < r.Bottom() {
				return
			}
			gap = wall.Top() - r.Bottom()
		} else {
			if wall.Bottom() > r.Top() {
				return
			}
			gap = r.Top() - wall.Bottom()
		}
		if gap <= best {
			best = gap
			hit = true
		}
	})
	return vmath.SignInt(dy) * best, hit
}

// Flush reports whether wall sits against the given side of r with strictly
// positive overlap along that side
func Flush(wall, r core.Rect, side Side) bool {
	switch side {
	case SideUp:
		return wall.Left() < r.Right() && wall.Right() > r.Left() && wall.Bottom() == r.Top()
	case SideDown:
		return wall.Left() < r.Right() && wall.Right() > r.Left() && wall.Top() == r.Bottom()
	case SideLeft:
		return wall.Top() < r.Bottom() && wall.Bottom() > r.Top() && wall.Right() == r.Left()
	case SideRight:
		return wall.Top() < r.Bottom() && wall.Bottom() > r.Top() && wall.Left() == r.Right()
	}
	return false
}

// Adjacent returns, per Side, whether any wall is flush against that edge of r
func (w Walls) Adjacent(r core.Rect) [4]bool {
	var blocked [4]bool
	w.images(func(wall core.Rect) {
		for s := SideUp; s <= SideRight; s++ {
			blocked[s] = blocked[s] || Flush(wall, r, s)
		}
	})
	return blocked
}
