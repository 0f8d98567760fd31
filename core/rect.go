package core

// Point is an integer pixel coordinate
type Point struct {
	X, Y int
}

// Rect is an axis-aligned pixel rectangle
// Right and Bottom are exclusive: a rect at X=0 with W=64 has Right() == 64
type Rect struct {
	X, Y int // Top-left corner
	W, H int // Dimensions (positive)
}

func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

func (r Rect) Left() int    { return r.X }
func (r Rect) Right() int   { return r.X + r.W }
func (r Rect) Top() int     { return r.Y }
func (r Rect) Bottom() int  { return r.Y + r.H }
func (r Rect) CenterX() int { return r.X + r.W/2 }
func (r Rect) CenterY() int { return r.Y + r.H/2 }

// Pos returns the top-left corner
func (r Rect) Pos() Point {
	return Point{X: r.X, Y: r.Y}
}

// Moved returns a copy translated by dx, dy
func (r Rect) Moved(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Valid reports whether the rect has positive area
func (r Rect) Valid() bool {
	return r.W > 0 && r.H > 0
}
