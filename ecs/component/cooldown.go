package component

// Cooldown blocks weapon use until Frames counts down to zero, at which point
// the component is removed.
type Cooldown struct {
	Frames int
}

var CooldownComponent = NewComponent[Cooldown]()
