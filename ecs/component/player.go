package component

// Participant is a fighter in the arena. Slot is the stable roster id used by
// the hex engine.
type Participant struct {
	Slot      int
	Name      string
	Active    bool
	MoveSpeed float64
	JumpSpeed float64
	SpawnX    float64
	SpawnY    float64
	Width     float64
	Height    float64
}

var ParticipantComponent = NewComponent[Participant]()
