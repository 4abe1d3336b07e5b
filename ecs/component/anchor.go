package component

// Anchor is a launched grapple hook flying toward a target point. Once
// latched it pulls its owner in until the owner arrives or the hook expires.
type Anchor struct {
	Owner   uint64
	TargetX float64
	TargetY float64
	Speed   float64
	Pull    float64
	Latched bool
}

var AnchorComponent = NewComponent[Anchor]()
