package component

import "github.com/milk9111/bosshex/hex"

// StatusEffect is one timed condition. Factor is read per status.
type StatusEffect struct {
	Ticks  int
	Factor float64
}

// Statuses holds the timed conditions on an entity. Hexes refresh them every
// tick, so they lapse soon after the encounter ends.
type Statuses struct {
	Active map[hex.Status]StatusEffect
}

// Apply sets s to last at least ticks.
func (s *Statuses) Apply(status hex.Status, ticks int, factor float64) {
	if s.Active == nil {
		s.Active = make(map[hex.Status]StatusEffect)
	}
	cur := s.Active[status]
	s.Active[status] = StatusEffect{Ticks: max(cur.Ticks, ticks), Factor: factor}
}

func (s *Statuses) Has(status hex.Status) bool {
	if s == nil {
		return false
	}
	e, ok := s.Active[status]
	return ok && e.Ticks > 0
}

// Factor returns the multiplier of an active status, or 1.
func (s *Statuses) Factor(status hex.Status) float64 {
	if !s.Has(status) {
		return 1
	}
	if f := s.Active[status].Factor; f > 0 {
		return f
	}
	return 1
}

// Tick counts every status down and drops the expired ones.
func (s *Statuses) Tick() {
	if s == nil {
		return
	}
	for k, e := range s.Active {
		e.Ticks--
		if e.Ticks <= 0 {
			delete(s.Active, k)
			continue
		}
		s.Active[k] = e
	}
}

var StatusesComponent = NewComponent[Statuses]()
