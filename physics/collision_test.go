package physics

import (
	"testing"

	"github.com/lixenwraith/collecta/core"
)

type box struct{ r core.Rect }

func (b box) Bounds() core.Rect { return b.r }

func TestOverlapsAndTouches(t *testing.T) {
	a := core.NewRect(0, 0, 64, 64)
	tests := []struct {
		name     string
		b        core.Rect
		overlaps bool
		touches  bool
	}{
		{"inside", core.NewRect(10, 10, 8, 8), true, true},
		{"shared edge", core.NewRect(64, 0, 64, 64), false, true},
		{"shared corner", core.NewRect(64, 64, 8, 8), false, true},
		{"apart", core.NewRect(65, 0, 8, 8), false, false},
		{"partial", core.NewRect(60, 60, 8, 8), true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(a, tt.b); got != tt.overlaps {
				t.Errorf("Overlaps = %v, want %v", got, tt.overlaps)
			}
			if got := Touches(a, tt.b); got != tt.touches {
				t.Errorf("Touches = %v, want %v", got, tt.touches)
			}
		})
	}
}

func TestCollidingWith(t *testing.T) {
	set := []box{
		{core.NewRect(0, 0, 10, 10)},
		{core.NewRect(100, 100, 10, 10)},
		{core.NewRect(10, 0, 10, 10)},
	}
	hits := CollidingWith(core.NewRect(5, 5, 5, 5), set)
	if len(hits) != 2 {
		t.Fatalf("hits = %d, want 2", len(hits))
	}
	for _, h := range hits {
		if h.r.X == 100 {
			t.Error("distant box reported as colliding")
		}
	}
	if hits := CollidingWith(core.NewRect(50, 50, 5, 5), set); len(hits) != 0 {
		t.Errorf("hits = %d, want 0", len(hits))
	}
}
