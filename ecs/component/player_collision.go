package component

// PlayerCollision stores per-participant contact state derived from physics.
// Grounded follows the current gravity direction.
type PlayerCollision struct {
	Grounded    bool
	GroundGrace int
}

var PlayerCollisionComponent = NewComponent[PlayerCollision]()
