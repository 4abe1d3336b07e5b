package component

import "github.com/milk9111/bosshex/hex"

// HitEvent is one damage instance queued against the entity holding
// PendingDamage. Source is the attacker entity, zero for hazards.
type HitEvent struct {
	Source uint64
	Hit    hex.Hit
	Reason string
}

// PendingDamage collects the hits an entity took this tick. DamageSystem
// consumes and removes it.
type PendingDamage struct {
	Hits []HitEvent
}

var PendingDamageComponent = NewComponent[PendingDamage]()
