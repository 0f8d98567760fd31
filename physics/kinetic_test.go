package physics

import (
	"math"
	"testing"

	"github.com/lixenwraith/collecta/core"
	"github.com/lixenwraith/collecta/vmath"
)

func TestIntegrate(t *testing.T) {
	k := core.Kinetic{VelY: vmath.FromInt(100), AccelY: vmath.FromInt(1000)}
	_, y := Integrate(&k, vmath.FromFloat(0.1))
	// v = 200, y = 20
	if y != 19 && y != 20 {
		t.Errorf("y = %d, want about 20", y)
	}
	if v := vmath.ToFloat(k.VelY); math.Abs(v-200) > 0.01 {
		t.Errorf("v = %v, want 200", v)
	}
}

func TestBounceFloor(t *testing.T) {
	k := core.Kinetic{PreciseY: vmath.FromInt(105), VelY: vmath.FromInt(100)}
	if !BounceFloor(&k, vmath.FromInt(100), vmath.FromFloat(0.5)) {
		t.Fatal("expected a bounce")
	}
	if k.PreciseY != vmath.FromInt(100) {
		t.Errorf("PreciseY = %v, want clamped to floor", vmath.ToFloat(k.PreciseY))
	}
	if v := vmath.ToFloat(k.VelY); math.Abs(v+50) > 0.01 {
		t.Errorf("VelY = %v, want -50", v)
	}
	if BounceFloor(&k, vmath.FromInt(100), vmath.FromFloat(0.5)) {
		t.Error("body resting on the floor must not bounce again")
	}
}
