package entity

import (
	"math"
	"testing"

	"github.com/lixenwraith/collecta/core"
	"github.com/lixenwraith/collecta/physics"
)

type countingCues struct {
	drops, collects int
}

func (c *countingCues) Drop()    { c.drops++ }
func (c *countingCues) Collect() { c.collects++ }

func TestLootFirstBounce(t *testing.T) {
	cues := &countingCues{}
	l := NewLoot("gem", core.NewRect(100, 200, 16, 16), DefaultLootParams(), cues)
	if l.Rect.Y != 192 {
		t.Fatalf("initial y = %d, want pop height above rest", l.Rect.Y)
	}

	for i := 0; i < 2; i++ {
		l.Update(tick)
		if l.Ready() {
			t.Fatalf("ready too early at tick %d", i)
		}
	}
	if v := l.Velocity(); math.Abs(v-200) > 0.01 {
		t.Errorf("velocity before bounce = %v, want 200", v)
	}

	l.Update(tick)
	if !l.Ready() {
		t.Fatal("expected ready after the third tick")
	}
	if v := l.Velocity(); math.Abs(v+154) > 0.01 {
		t.Errorf("velocity after bounce = %v, want -154", v)
	}
	if l.Rect.Y != 200 {
		t.Errorf("y at bounce = %d, want clamped to 200", l.Rect.Y)
	}
	if cues.drops != 1 {
		t.Errorf("drop cues = %d, want 1", cues.drops)
	}
}

func TestLootSettlesWithSingleCue(t *testing.T) {
	cues := &countingCues{}
	l := NewLoot("coin", core.NewRect(0, 100, 16, 16), DefaultLootParams(), cues)
	for i := 0; i < 200; i++ {
		l.Update(tick)
		if l.Rect.Y > 100 {
			t.Fatalf("tick %d: fell through its resting height to %d", i, l.Rect.Y)
		}
	}
	if cues.drops != 1 {
		t.Errorf("drop cues = %d, want exactly one", cues.drops)
	}
	if l.PreciseY() < 99 {
		t.Errorf("still bouncing at %v after 4s", l.PreciseY())
	}
}

func TestLootBouncePeaksDecrease(t *testing.T) {
	l := NewLoot("coin", core.NewRect(0, 100, 16, 16), DefaultLootParams(), nil)

	var peaks []float64
	highest := math.Inf(1) // lowest PreciseY since the last floor contact
	contacts := 0
	settled := false
	for i := 0; i < 300; i++ {
		l.Update(tick)
		if contacts > 0 && !l.Ready() {
			t.Fatalf("tick %d: ready reverted", i)
		}
		if l.PreciseY() != 100 {
			highest = math.Min(highest, l.PreciseY())
			continue
		}
		if contacts > 0 {
			if math.IsInf(highest, 1) {
				settled = true
			} else {
				if settled {
					t.Fatalf("tick %d: rose again after settling", i)
				}
				peaks = append(peaks, 100-highest)
			}
		}
		contacts++
		highest = math.Inf(1)
	}

	if len(peaks) < 3 {
		t.Fatalf("peaks = %v, want at least three rebounds", peaks)
	}
	for i := 1; i < len(peaks); i++ {
		if peaks[i] >= peaks[i-1] {
			t.Errorf("peak %d = %.3f, not below %.3f", i, peaks[i], peaks[i-1])
		}
	}
	if !settled {
		t.Error("still rebounding after 6s")
	}
}

func TestLootTouch(t *testing.T) {
	l := NewLoot("gem", core.NewRect(100, 200, 16, 16), DefaultLootParams(), nil)
	l.Rect = l.Home()
	tests := []struct {
		name string
		r    core.Rect
		want bool
	}{
		{"overlapping", core.NewRect(80, 170, 64, 64), true},
		{"far right", core.NewRect(200, 170, 64, 64), false},
		{"aligned but far below", core.NewRect(76, 240, 64, 64), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := l.Touch(NewWall(tt.r)); got != tt.want {
				t.Errorf("Touch = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLootBump(t *testing.T) {
	cues := &countingCues{}
	l := NewLoot("gem", core.NewRect(100, 200, 16, 16), DefaultLootParams(), cues)
	var got *Loot
	p := NewPlayer(core.NewRect(80, 170, 64, 64), physics.Walls{}, DefaultPlayerParams(), func(item *Loot) { got = item })

	if l.Bump(p) {
		t.Fatal("collected before ready")
	}
	for !l.Ready() {
		l.Update(tick)
	}
	if !l.Bump(p) {
		t.Fatal("expected collection once ready")
	}
	if got != l || !l.Collected() || cues.collects != 1 {
		t.Errorf("collect callback %v collected %v cues %d", got == l, l.Collected(), cues.collects)
	}
	if l.Bump(p) {
		t.Error("collected twice")
	}
}
