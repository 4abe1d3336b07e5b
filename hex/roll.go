package hex

// Participant is one roster slot as seen by the hex engine.
type Participant struct {
	ID     int
	Name   string
	Active bool
	Dead   bool
	X, Y   float64
}

// Valid reports whether the participant is in the fight and still standing.
func (p Participant) Valid() bool {
	return p.Active && !p.Dead
}

// Roster lists participant slots in id order, including inactive ones.
type Roster []Participant

// CountNamed counts active participants with a name, never less than one.
func (r Roster) CountNamed() int {
	n := 0
	for _, p := range r {
		if p.Active && p.Name != "" {
			n++
		}
	}
	if n < 1 {
		return 1
	}
	return n
}

func (r Roster) Valid() []Participant {
	out := make([]Participant, 0, len(r))
	for _, p := range r {
		if p.Valid() {
			out = append(out, p)
		}
	}
	return out
}

func (r Roster) Find(id int) (Participant, bool) {
	for _, p := range r {
		if p.ID == id {
			return p, true
		}
	}
	return Participant{}, false
}

// Roll picks hexes for a fight with the given participant count. One
// participant gets a single hex, two get hexes in two distinct categories, and
// three or more get one hex per category. Categories whose pool is empty stay None.
func Roll(c *Catalog, participants int, r Rand) *ActiveSet {
	set := NewActiveSet()
	if c == nil || r == nil {
		return set
	}
	switch {
	case participants <= 1:
		rollCategory(set, c, Category(r.Intn(int(categoryCount))), r)
	case participants == 2:
		first := r.Intn(int(categoryCount))
		second := (first + 1 + r.Intn(2)) % int(categoryCount)
		rollCategory(set, c, Category(first), r)
		rollCategory(set, c, Category(second), r)
	default:
		for cat := CategoryFlashy; cat < categoryCount; cat++ {
			rollCategory(set, c, cat, r)
		}
	}
	return set
}

func rollCategory(set *ActiveSet, c *Catalog, cat Category, r Rand) {
	switch cat {
	case CategoryFlashy:
		set.Flashy, _ = pick(r, c.FlashyPool())
	case CategoryModifier:
		set.Modifier, _ = pick(r, c.ModifierPool())
	case CategoryConstraint:
		set.Constraint, _ = pick(r, c.ConstraintPool())
	}
}

// RollEncounter rolls for the roster and primes the state the rolled hexes need.
func RollEncounter(c *Catalog, t Tuning, roster Roster, r Rand) *ActiveSet {
	count := roster.CountNamed()
	set := Roll(c, count, r)
	Prime(set, t)
	if set.Constraint == PacifistHealer && count > 1 {
		set.PacifistHealer = AssignHealer(roster, r)
	}
	return set
}

// Prime initialises the countdowns of a freshly rolled set.
func Prime(set *ActiveSet, t Tuning) {
	switch set.Flashy {
	case TimeLimit:
		set.TimeLimitTicks = t.TimeLimitTicks
		set.TimeLimitTotal = t.TimeLimitTicks
	case UnstableGravity:
		set.NextGravityFlipAt = t.GravityMaxTicks
	}
}

// AssignHealer scans every slot once, starting at a random one, and returns the
// first valid participant. NoParticipant when none qualifies.
func AssignHealer(roster Roster, r Rand) int {
	if len(roster) == 0 {
		return NoParticipant
	}
	start := r.Intn(len(roster))
	for i := range roster {
		p := roster[(start+i)%len(roster)]
		if p.Valid() {
			return p.ID
		}
	}
	return NoParticipant
}
