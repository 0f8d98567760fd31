package entity

// Set is the ordered active entity set for a level
// Iteration order is insertion order; removal preserves it
type Set struct {
	members []Entity
}

func NewSet() *Set {
	return &Set{}
}

func (s *Set) Add(e Entity) {
	s.members = append(s.members, e)
}

// Remove deletes e, reporting whether it was present
func (s *Set) Remove(e Entity) bool {
	for i, m := range s.members {
		if m == e {
			s.members = append(s.members[:i], s.members[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Set) Contains(e Entity) bool {
	for _, m := range s.members {
		if m == e {
			return true
		}
	}
	return false
}

func (s *Set) Len() int { return len(s.members) }

// Members returns the backing slice; callers must not modify it
func (s *Set) Members() []Entity { return s.members }

func (s *Set) Clear() {
	s.members = nil
}

// Update advances every Updater in insertion order
func (s *Set) Update(dt int64) {
	for _, m := range s.members {
		if u, ok := m.(Updater); ok {
			u.Update(dt)
		}
	}
}

// Bump offers each candidate other than the player itself to p and removes the ones consumed
// Returns the number of entities removed
func (s *Set) Bump(p *Player, candidates []Entity) int {
	removed := 0
	for _, c := range candidates {
		if c == Entity(p) {
			continue
		}
		b, ok := c.(Bumper)
		if !ok {
			continue
		}
		if b.Bump(p) && s.Remove(c) {
			removed++
		}
	}
	return removed
}
