package component

// Invulnerable marks an entity as temporarily immune to damage.
// If Frames > 0 it counts down each tick and is removed at zero. Frames == 0
// means indefinite invulnerability until explicitly removed.
type Invulnerable struct {
	Frames int
}

var InvulnerableComponent = NewComponent[Invulnerable]()
