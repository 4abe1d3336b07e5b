package component

// Abilities holds the movement resources a participant can spend in the air.
// Flight is ticks of flight left; DoubleJumps are air jumps left.
type Abilities struct {
	MaxFlight      int
	Flight         int
	MaxDoubleJumps int
	DoubleJumps    int
}

// Refill restores every resource, typically on landing.
func (a *Abilities) Refill() {
	a.Flight = a.MaxFlight
	a.DoubleJumps = a.MaxDoubleJumps
}

var AbilitiesComponent = NewComponent[Abilities]()
