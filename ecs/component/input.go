package component

// Input stores per-tick intent for a participant, from the keyboard or a bot.
// AimX/AimY is a world-space point.
type Input struct {
	MoveX       float64
	Jump        bool
	JumpPressed bool
	Attack      bool
	UseTool     bool
	AimX        float64
	AimY        float64
}

var InputComponent = NewComponent[Input]()
