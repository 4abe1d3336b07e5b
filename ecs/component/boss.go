package component

import "github.com/milk9111/bosshex/hex"

// Boss identifies a boss entity. Hexes are keyed by Type.
type Boss struct {
	Type          hex.BossType
	Name          string
	Speed         float64
	ContactDamage int
}

// BossRuntime stores per-entity state the hex effects and AI need.
type BossRuntime struct {
	Target     uint64
	IdleFrames int

	// ScaleApplied is set once a size hex has resized this entity.
	ScaleApplied bool

	// Boost is the eased speed under a speed hex, 0 otherwise.
	Boost float64
}

var BossComponent = NewComponent[Boss]()
var BossRuntimeComponent = NewComponent[BossRuntime]()
