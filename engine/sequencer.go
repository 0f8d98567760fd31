package engine

import (
	"github.com/lixenwraith/collecta/entity"
	"github.com/lixenwraith/collecta/level"
	"github.com/lixenwraith/collecta/parameter"
	"github.com/lixenwraith/collecta/physics"
)

// Group maps loot kinds to their items, keeping kinds in first-seen order
type Group struct {
	kinds []string
	items map[string][]*entity.Loot
}

func NewGroup() *Group {
	return &Group{items: make(map[string][]*entity.Loot)}
}

// Add appends l under its kind
func (g *Group) Add(l *entity.Loot) {
	if _, ok := g.items[l.Kind]; !ok {
		g.kinds = append(g.kinds, l.Kind)
	}
	g.items[l.Kind] = append(g.items[l.Kind], l)
}

// Len returns the number of kinds still pending in the group
func (g *Group) Len() int { return len(g.kinds) }

func (g *Group) Kinds() []string { return g.kinds }

func (g *Group) Items(kind string) []*entity.Loot { return g.items[kind] }

func (g *Group) remove(kind string) {
	for i, k := range g.kinds {
		if k == kind {
			g.kinds = append(g.kinds[:i], g.kinds[i+1:]...)
			break
		}
	}
	delete(g.items, kind)
}

// Partition splits the object layers of a level into spawn groups
// Every objects layer opens a new group unless the previous one is still empty.
// The player instance is returned separately; ignored object types are dropped.
func Partition(layers []level.Layer, build func(level.Instance) *entity.Loot) (*level.Instance, []*Group) {
	var player *level.Instance
	groups := []*Group{NewGroup()}
	for _, layer := range layers {
		if layer.Type != level.LayerObjects || !layer.Present {
			continue
		}
		if groups[len(groups)-1].Len() > 0 {
			groups = append(groups, NewGroup())
		}
		current := groups[len(groups)-1]
		for i := range layer.Instances {
			inst := layer.Instances[i]
			switch {
			case inst.Type == parameter.PlayerObject:
				if player == nil {
					player = &inst
				}
			case parameter.NonLootObjects[inst.Type]:
			default:
				current.Add(build(inst))
			}
		}
	}
	return player, groups
}

// Sequencer promotes pending loot into the active entity set one item at a time
//
// A kind is committed only when none of its items is still active and all of them can be
// placed clear of every active entity. Its items are then drained from a stack, each waiting
// for the previous one to finish its first bounce, so at most one kind is in flight. The
// tick the last item pops is also the tick the next kind can be committed.
type Sequencer struct {
	pending  []*Group
	queue    []*entity.Loot
	active   map[string]int
	entities *entity.Set
}

func NewSequencer(groups []*Group, entities *entity.Set) *Sequencer {
	return &Sequencer{
		pending:  groups,
		active:   make(map[string]int),
		entities: entities,
	}
}

// Advance runs one spawn step
func (s *Sequencer) Advance() {
	if len(s.queue) > 0 {
		top := s.queue[len(s.queue)-1]
		if top.Spawned() && !top.Ready() {
			return
		}
		if top.Ready() {
			s.queue = s.queue[:len(s.queue)-1]
		}
		if len(s.queue) > 0 {
			next := s.queue[len(s.queue)-1]
			next.MarkSpawned()
			s.entities.Add(next)
			return
		}
	}

	for gi, g := range s.pending {
		for _, kind := range g.Kinds() {
			if s.active[kind] > 0 {
				continue
			}
			items := g.Items(kind)
			if !s.placeable(items) {
				continue
			}
			s.active[kind] = len(items)
			s.queue = make([]*entity.Loot, 0, len(items))
			for i := len(items) - 1; i >= 0; i-- {
				s.queue = append(s.queue, items[i])
			}
			g.remove(kind)
			if g.Len() == 0 {
				s.pending = append(s.pending[:gi], s.pending[gi+1:]...)
			}
			return
		}
	}
}

// placeable reports whether every item clears the active entities at its spawn position
func (s *Sequencer) placeable(items []*entity.Loot) bool {
	for _, item := range items {
		for _, other := range physics.CollidingWith(item.Bounds(), s.entities.Members()) {
			if item.Touch(other) {
				return false
			}
		}
	}
	return true
}

// Collect records the pickup of one item of kind
func (s *Sequencer) Collect(kind string) {
	if s.active[kind] > 0 {
		s.active[kind]--
	}
}

// Active returns how many items of kind are committed and not yet collected
func (s *Sequencer) Active(kind string) int { return s.active[kind] }

// InFlight returns the number of committed items still waiting in the spawn stack
func (s *Sequencer) InFlight() int { return len(s.queue) }

// Pending returns the number of items not yet committed
func (s *Sequencer) Pending() int {
	n := 0
	for _, g := range s.pending {
		for _, kind := range g.Kinds() {
			n += len(g.Items(kind))
		}
	}
	return n
}

func (s *Sequencer) Groups() int { return len(s.pending) }
