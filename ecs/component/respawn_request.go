package component

// RespawnRequest counts down while a participant is dead. At zero the
// participant is revived at its spawn point.
type RespawnRequest struct {
	Frames int
}

var RespawnRequestComponent = NewComponent[RespawnRequest]()
