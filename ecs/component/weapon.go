package component

import "github.com/milk9111/bosshex/hex"

// Weapon is a participant's attack. Projectile weapons fire Speed px/tick
// bolts; others hit anything within Range.
type Weapon struct {
	Class         hex.DamageClass
	Damage        int
	Range         float64
	Projectile    bool
	Speed         float64
	CooldownTicks int
}

var WeaponComponent = NewComponent[Weapon]()

// Tool is a movement tool. Style is the projectile style it launches.
type Tool struct {
	Name          string
	Style         string
	Range         float64
	Pull          float64
	CooldownTicks int
	Cooldown      int
}

var ToolComponent = NewComponent[Tool]()
