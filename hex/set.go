package hex

// NoParticipant marks an unassigned participant role.
const NoParticipant = -1

// ActiveSet is the hex assignment for one boss type plus the hazard counters
// that belong to it. A category left at None is inactive.
type ActiveSet struct {
	Flashy     Flashy     `json:"flashy"`
	Modifier   Modifier   `json:"modifier"`
	Constraint Constraint `json:"constraint"`

	// TimeLimit
	TimeLimitTicks int `json:"time_limit_ticks,omitempty"`
	TimeLimitTotal int `json:"time_limit_total,omitempty"`

	// UnstableGravity; NextGravityFlipAt is a forced flip point, 0 when unbounded.
	GravityFlipTicks  int `json:"gravity_flip_ticks,omitempty"`
	NextGravityFlipAt int `json:"next_gravity_flip_at,omitempty"`

	// MeteorShower
	MeteorWindowTicks int `json:"meteor_window_ticks,omitempty"`
	FightTicks        int `json:"fight_ticks,omitempty"`

	PacifistHealer int `json:"pacifist_healer"`
}

func NewActiveSet() *ActiveSet {
	return &ActiveSet{PacifistHealer: NoParticipant}
}

// HasAny reports whether at least one category holds a hex.
func (s *ActiveSet) HasAny() bool {
	if s == nil {
		return false
	}
	return s.Flashy != FlashyNone || s.Modifier != ModifierNone || s.Constraint != ConstraintNone
}

// Names returns the display names of the active hexes, flashy first.
func (s *ActiveSet) Names() []string {
	if s == nil {
		return nil
	}
	var out []string
	if s.Flashy != FlashyNone {
		out = append(out, DisplayName(s.Flashy.String()))
	}
	if s.Modifier != ModifierNone {
		out = append(out, DisplayName(s.Modifier.String()))
	}
	if s.Constraint != ConstraintNone {
		out = append(out, DisplayName(s.Constraint.String()))
	}
	return out
}

func (s *ActiveSet) Clone() *ActiveSet {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}

// ResetEncounter clears the per-fight counters so a re-engaged boss starts its
// meteor curve and gravity timer from the top. The hexes and time limit stay.
func (s *ActiveSet) ResetEncounter() {
	if s == nil {
		return
	}
	s.GravityFlipTicks = 0
	s.MeteorWindowTicks = 0
	s.FightTicks = 0
}
