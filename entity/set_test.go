package entity

import (
	"testing"

	"github.com/lixenwraith/collecta/core"
	"github.com/lixenwraith/collecta/physics"
)

func TestSetPreservesOrder(t *testing.T) {
	s := NewSet()
	a, b, c := NewWall(core.NewRect(0, 0, 1, 1)), NewWall(core.NewRect(1, 0, 1, 1)), NewWall(core.NewRect(2, 0, 1, 1))
	s.Add(a)
	s.Add(b)
	s.Add(c)
	if !s.Remove(b) {
		t.Fatal("Remove reported missing member")
	}
	if s.Remove(b) {
		t.Error("second Remove should report false")
	}
	m := s.Members()
	if len(m) != 2 || m[0] != Entity(a) || m[1] != Entity(c) {
		t.Errorf("members = %v, want [a c]", m)
	}
	if !s.Contains(c) || s.Contains(b) {
		t.Error("Contains mismatch")
	}
	s.Clear()
	if s.Len() != 0 {
		t.Errorf("Len after Clear = %d", s.Len())
	}
}

func TestSetUpdateAndBump(t *testing.T) {
	s := NewSet()
	collected := 0
	p := NewPlayer(core.NewRect(80, 170, 64, 64), physics.Walls{}, DefaultPlayerParams(), func(*Loot) { collected++ })
	near := NewLoot("gem", core.NewRect(100, 200, 16, 16), DefaultLootParams(), nil)
	far := NewLoot("gem", core.NewRect(500, 500, 16, 16), DefaultLootParams(), nil)
	s.Add(p)
	s.Add(near)
	s.Add(far)

	for i := 0; i < 3; i++ {
		s.Update(tick)
	}
	if !near.Ready() || !far.Ready() {
		t.Fatal("loot should be ready after three ticks")
	}

	removed := s.Bump(p, physics.CollidingWith(p.Bounds(), s.Members()))
	if removed != 1 || collected != 1 {
		t.Errorf("removed %d collected %d, want 1 and 1", removed, collected)
	}
	if s.Contains(near) || !s.Contains(far) || !s.Contains(p) {
		t.Error("only the touched item should leave the set")
	}
}
