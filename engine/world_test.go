package engine

import (
	"errors"
	"testing"

	"github.com/lixenwraith/collecta/core"
	"github.com/lixenwraith/collecta/entity"
	"github.com/lixenwraith/collecta/level"
)

const testLevels = "../level/testdata"

func loadProject(t *testing.T) *level.Project {
	t.Helper()
	p, err := level.LoadProject(testLevels)
	if err != nil {
		t.Fatalf("LoadProject: %v", err)
	}
	return p
}

func loadWorld(t *testing.T, name string) (*World, *level.Project) {
	t.Helper()
	p := loadProject(t)
	lv, err := p.LoadLevel(name)
	if err != nil {
		t.Fatalf("LoadLevel: %v", err)
	}
	w := NewWorld(DefaultWorldParams(), nil)
	if err := w.Load(p, lv); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return w, p
}

func TestWorldLoad(t *testing.T) {
	w, _ := loadWorld(t, "01-cloister")

	if w.Walls.Len() != 10 || len(w.WallList) != 10 {
		t.Errorf("walls = %d/%d, want 10", w.Walls.Len(), len(w.WallList))
	}
	if w.Walls.Rects[0] != core.NewRect(0, 0, 320, 64) {
		t.Errorf("first wall = %+v, want scaled by 2", w.Walls.Rects[0])
	}
	if w.Player.Rect != core.NewRect(64, 64, 64, 64) {
		t.Errorf("player = %+v", w.Player.Rect)
	}
	if w.Entities.Len() != 1 {
		t.Errorf("entities = %d, want only the player", w.Entities.Len())
	}
	if w.Spawner.Pending() != 6 || w.Spawner.Groups() != 2 {
		t.Errorf("pending %d groups %d, want 6 and 2", w.Spawner.Pending(), w.Spawner.Groups())
	}
}

func TestWorldSpawnsEveryItem(t *testing.T) {
	w, _ := loadWorld(t, "01-cloister")
	for i := 0; i < 100; i++ {
		w.Step(dt)
	}
	loot := w.Loot()
	if len(loot) != 6 {
		t.Fatalf("active loot = %d, want 6", len(loot))
	}
	kinds := map[string]int{}
	for _, l := range loot {
		if !l.Ready() {
			t.Errorf("%s still falling", l.Kind)
		}
		kinds[l.Kind]++
	}
	if kinds["gem"] != 3 || kinds["coin"] != 2 || kinds["star"] != 1 {
		t.Errorf("kinds = %v", kinds)
	}
	// The first layer's group drains before the bonus layer's
	if loot[len(loot)-1].Kind != "star" {
		t.Errorf("last spawned = %s, want star", loot[len(loot)-1].Kind)
	}
	if w.Ticks() != 100 {
		t.Errorf("Ticks = %d", w.Ticks())
	}
}

func TestWorldPickup(t *testing.T) {
	w, _ := loadWorld(t, "01-cloister")
	var picked []*entity.Loot
	w.OnCollect = func(l *entity.Loot) { picked = append(picked, l) }
	for i := 0; i < 100; i++ {
		w.Step(dt)
	}

	target := w.Loot()[0]
	home := target.Home()
	w.Player.Rect = core.NewRect(home.CenterX()-32, home.CenterY()-32, 64, 64)
	before := w.Spawner.Active(target.Kind)
	w.Step(dt)

	if len(picked) == 0 || picked[0] != target {
		t.Fatalf("picked = %v, want the targeted %s", picked, target.Kind)
	}
	if w.Entities.Contains(target) {
		t.Error("collected item still active")
	}
	if got := w.Spawner.Active(target.Kind); got != before-len(picked) {
		t.Errorf("active %s = %d, want %d", target.Kind, got, before-len(picked))
	}
}

func TestWorldLoadResetsState(t *testing.T) {
	w, p := loadWorld(t, "01-cloister")
	for i := 0; i < 50; i++ {
		w.Step(dt)
	}
	lv, err := p.LoadLevel("02-courtyard")
	if err != nil {
		t.Fatalf("LoadLevel: %v", err)
	}
	if err := w.Load(p, lv); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if w.Ticks() != 0 || w.Entities.Len() != 1 || len(w.Loot()) != 0 {
		t.Errorf("ticks %d entities %d loot %d after reload", w.Ticks(), w.Entities.Len(), len(w.Loot()))
	}
	if w.Walls.Len() != 5 || w.Spawner.Pending() != 6 {
		t.Errorf("walls %d pending %d, want 5 and 6", w.Walls.Len(), w.Spawner.Pending())
	}
}

func TestWorldLoadRejectsBadLevel(t *testing.T) {
	w, p := loadWorld(t, "01-cloister")
	lv := &level.Level{Name: "inline", Width: 64, Height: 64, Layers: []level.Layer{
		{Name: "items", Type: level.LayerObjects, Present: true, Instances: []level.Instance{{Type: "gem"}}},
	}}
	if err := w.Load(p, lv); !errors.Is(err, level.ErrNoPlayer) {
		t.Errorf("err = %v, want ErrNoPlayer", err)
	}
	if w.Walls.Len() != 10 {
		t.Error("failed load must keep the previous level")
	}
}
