package physics

import "github.com/lixenwraith/collecta/core"

// Body is anything with a world-space bounding rectangle
type Body interface {
	Bounds() core.Rect
}

// Overlaps reports strictly positive intersection area
// Rects that only share an edge do not overlap
func Overlaps(a, b core.Rect) bool {
	return a.Left() < b.Right() && b.Left() < a.Right() &&
		a.Top() < b.Bottom() && b.Top() < a.Bottom()
}

// Touches reports intersection including shared edges and corners
func Touches(a, b core.Rect) bool {
	return a.Left() <= b.Right() && b.Left() <= a.Right() &&
		a.Top() <= b.Bottom() && b.Top() <= a.Bottom()
}

// CollidingWith returns members of set whose bounds touch subject
// Result order is unspecified, callers must not depend on it
func CollidingWith[T Body](subject core.Rect, set []T) []T {
	var hits []T
	for _, member := range set {
		if Touches(subject, member.Bounds()) {
			hits = append(hits, member)
		}
	}
	return hits
}
