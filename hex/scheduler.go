package hex

import "fmt"

// Announcement is a one-time broadcast to every participant.
type Announcement struct {
	Text  string `json:"text"`
	Color string `json:"color"`
}

// Host is the simulation the scheduler acts on.
type Host interface {
	// Authoritative reports whether this process owns the simulation.
	Authoritative() bool
	Roster() Roster
	Kill(id, damage int, reason string)
	FlipGravity(id int)
	Announce(a Announcement)
	SpawnMeteor(m MeteorSpawn)
}

// Scheduler runs the timed hexes: the time limit, unstable gravity and the
// meteor shower. It keeps the meteor clusters queued for the running encounter.
type Scheduler struct {
	tuning Tuning
	rng    Rand
	curve  IntensityCurve

	pending []ScheduledCluster
	owner   *ActiveSet
	engaged map[*ActiveSet]bool
}

func NewScheduler(t Tuning, r Rand, curve IntensityCurve) *Scheduler {
	if curve == nil {
		curve = DefaultCurve
	}
	return &Scheduler{tuning: t, rng: r, curve: curve, engaged: make(map[*ActiveSet]bool)}
}

func (s *Scheduler) SetTuning(t Tuning) { s.tuning = t }

func (s *Scheduler) SetCurve(c IntensityCurve) {
	if c == nil {
		c = DefaultCurve
	}
	s.curve = c
}

// Reset drops the queued clusters and forgets every set it has run.
func (s *Scheduler) Reset() {
	s.pending = nil
	s.owner = nil
	s.engaged = make(map[*ActiveSet]bool)
}

// Pending returns a copy of the queued clusters.
func (s *Scheduler) Pending() []ScheduledCluster {
	return append([]ScheduledCluster(nil), s.pending...)
}

// Advance runs one tick for set. Nothing happens off the authority.
func (s *Scheduler) Advance(set *ActiveSet, host Host) {
	if s == nil || host == nil || !host.Authoritative() {
		return
	}
	if set != s.owner {
		s.pending = nil
		s.owner = set
		s.engage(set)
	}
	if set == nil {
		return
	}

	switch set.Flashy {
	case TimeLimit:
		s.advanceTimeLimit(set, host)
	case UnstableGravity:
		s.advanceGravity(set, host)
	case MeteorShower:
		s.advanceMeteors(set, host)
	}
}

// engage zeroes the per-fight counters when a set it already ran comes back,
// so a re-engaged boss keeps its hexes but not the old fight's progress.
func (s *Scheduler) engage(set *ActiveSet) {
	if set == nil || !set.HasAny() {
		return
	}
	if s.engaged[set] {
		set.ResetEncounter()
	}
	s.engaged[set] = true
}

func (s *Scheduler) advanceTimeLimit(set *ActiveSet, host Host) {
	alert, expired := TickTimeLimit(set, s.tuning.TimeLimitAlerts)
	if alert != nil {
		host.Announce(Announcement{Text: alert.Text, Color: alert.Color})
	}
	if !expired {
		return
	}
	for _, p := range host.Roster().Valid() {
		host.Kill(p.ID, s.tuning.LethalDamage, fmt.Sprintf(s.tuning.DeathReason, p.Name))
	}
}

func (s *Scheduler) advanceGravity(set *ActiveSet, host Host) {
	if !TickGravity(set, s.tuning, s.rng) {
		return
	}
	for _, p := range host.Roster().Valid() {
		host.FlipGravity(p.ID)
	}
	host.Announce(Announcement{Text: s.tuning.GravityText, Color: ColorPurple})
}

func (s *Scheduler) advanceMeteors(set *ActiveSet, host Host) {
	set.FightTicks++
	if set.MeteorWindowTicks == 0 {
		targets := host.Roster().Valid()
		s.pending = append(s.pending, ScheduleWindow(set.FightTicks, targets, s.tuning, s.rng, s.curve)...)
	}
	set.MeteorWindowTicks++
	if set.MeteorWindowTicks >= s.tuning.MeteorWindowTicks {
		set.MeteorWindowTicks = 0
	}

	if len(s.pending) == 0 {
		return
	}
	var roster Roster
	for i := len(s.pending) - 1; i >= 0; i-- {
		c := s.pending[i]
		if c.SpawnTick > set.FightTicks {
			continue
		}
		s.pending = append(s.pending[:i], s.pending[i+1:]...)
		if roster == nil {
			roster = host.Roster()
		}
		target, ok := roster.Find(c.Target)
		if !ok || !target.Valid() {
			// the original target left or died; aim at someone else
			target, ok = pick(s.rng, roster.Valid())
			if !ok {
				continue
			}
		}
		for _, m := range ExpandCluster(c, target, s.tuning, s.rng) {
			host.SpawnMeteor(m)
		}
	}
}
