package engine

import (
	"fmt"

	"github.com/lixenwraith/collecta/core"
	"github.com/lixenwraith/collecta/entity"
	"github.com/lixenwraith/collecta/level"
	"github.com/lixenwraith/collecta/parameter"
	"github.com/lixenwraith/collecta/physics"
)

// WorldParams bundles the tuning a World hands to the entities it builds
type WorldParams struct {
	Player entity.PlayerParams
	Loot   entity.LootParams
	// Scale multiplies level file coordinates into world pixels
	Scale int
}

func DefaultWorldParams() WorldParams {
	return WorldParams{
		Player: entity.DefaultPlayerParams(),
		Loot:   entity.DefaultLootParams(),
		Scale:  parameter.LevelScale,
	}
}

// World owns every mutable piece of simulation state for the loaded level
type World struct {
	Params   WorldParams
	Walls    physics.Walls
	WallList []*entity.Wall
	Entities *entity.Set
	Player   *entity.Player
	Spawner  *Sequencer
	Level    *level.Level

	cues entity.Cues
	// OnCollect observes every pickup after the spawner has been told
	OnCollect func(*entity.Loot)
	ticks     uint64
}

func NewWorld(params WorldParams, cues entity.Cues) *World {
	if cues == nil {
		cues = entity.NopCues{}
	}
	if params.Scale <= 0 {
		params.Scale = 1
	}
	return &World{
		Params:   params,
		cues:     cues,
		Entities: entity.NewSet(),
		Spawner:  NewSequencer(nil, entity.NewSet()),
	}
}

// Load replaces all state with a fresh build of lv
// Object sizes come from the project's definitions. On error the previous state is kept.
func (w *World) Load(p *level.Project, lv *level.Level) error {
	scale := w.Params.Scale
	scaled := func(x, y, width, height int) core.Rect {
		return core.NewRect(x*scale, y*scale, width*scale, height*scale)
	}

	var rects []core.Rect
	for _, layer := range lv.Layers {
		if layer.Type != level.LayerGrid {
			continue
		}
		for _, r := range layer.Rects {
			rects = append(rects, scaled(r.X, r.Y, r.W, r.H))
		}
	}

	var buildErr error
	playerInst, groups := Partition(lv.Layers, func(inst level.Instance) *entity.Loot {
		iw, ih := inst.Size(p.Objects[inst.Type])
		r := scaled(inst.X, inst.Y, iw, ih)
		if !r.Valid() && buildErr == nil {
			buildErr = fmt.Errorf("object %s at %d,%d: %w", inst.Type, inst.X, inst.Y, level.ErrDegenerateRect)
		}
		return entity.NewLoot(inst.Type, r, w.Params.Loot, w.cues)
	})
	if buildErr != nil {
		return buildErr
	}
	if playerInst == nil {
		return fmt.Errorf("level %s: %w", lv.Name, level.ErrNoPlayer)
	}
	pw, ph := playerInst.Size(p.Objects[playerInst.Type])
	playerRect := scaled(playerInst.X, playerInst.Y, pw, ph)
	if !playerRect.Valid() {
		return fmt.Errorf("player size %dx%d: %w", pw, ph, level.ErrDegenerateRect)
	}

	// Commit: nothing from the previous level survives
	w.Level = lv
	w.Walls = physics.NewWalls(rects, w.Params.Player.WorldSize)
	w.WallList = make([]*entity.Wall, 0, len(rects))
	for _, r := range rects {
		w.WallList = append(w.WallList, entity.NewWall(r))
	}
	w.Entities = entity.NewSet()
	w.Player = entity.NewPlayer(playerRect, w.Walls, w.Params.Player, w.collect)
	w.Entities.Add(w.Player)
	w.Spawner = NewSequencer(groups, w.Entities)
	w.ticks = 0
	return nil
}

// Step advances one fixed tick: entity updates, pickup, then spawning
func (w *World) Step(dt int64) {
	if w.Player == nil {
		return
	}
	w.Entities.Update(dt)
	hits := physics.CollidingWith(w.Player.Bounds(), w.Entities.Members())
	w.Entities.Bump(w.Player, hits)
	w.Spawner.Advance()
	w.ticks++
}

func (w *World) Ticks() uint64 { return w.ticks }

// Loot returns the active loot items in spawn order
func (w *World) Loot() []*entity.Loot {
	var out []*entity.Loot
	for _, e := range w.Entities.Members() {
		if l, ok := e.(*entity.Loot); ok {
			out = append(out, l)
		}
	}
	return out
}

func (w *World) collect(item *entity.Loot) {
	w.Spawner.Collect(item.Kind)
	if w.OnCollect != nil {
		w.OnCollect(item)
	}
}
