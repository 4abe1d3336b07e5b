package component

// WhiteFlash blinks a sprite white after it takes damage. On toggles every
// Interval frames until Frames runs out.
type WhiteFlash struct {
	Frames   int
	Interval int
	Timer    int
	On       bool
}

var WhiteFlashComponent = NewComponent[WhiteFlash]()
