package component

import "github.com/milk9111/bosshex/hex"

// Projectile deals damage on first contact with a side it hits, then expires.
// VX/VY is the launch velocity.
type Projectile struct {
	Owner            uint64
	OwnerSlot        int
	From             hex.Side
	Class            hex.DamageClass
	Damage           int
	HitsParticipants bool
	HitsBosses       bool
	VX               float64
	VY               float64
	Spent            bool
}

var ProjectileComponent = NewComponent[Projectile]()
