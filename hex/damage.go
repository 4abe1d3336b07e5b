package hex

type Side int

const (
	SideParticipant Side = iota
	SideBoss
	SideHazard
)

// Hit is one damage instance before hexes are applied.
type Hit struct {
	Amount     float64
	Class      DamageClass
	Projectile bool
	From       Side
	FromID     int
	To         Side
}

// HitResult is what remains of a hit, plus healing it produced.
type HitResult struct {
	Amount float64
	Heal   float64
}

// ResolveHit applies the damage side of the active hexes. Class gating looks
// only at the class, so projectiles and direct hits are treated alike.
func ResolveHit(set *ActiveSet, h Hit, t Tuning) HitResult {
	res := HitResult{Amount: h.Amount}
	if h.From == SideHazard && h.To == SideBoss {
		res.Amount *= t.MeteorBossScale
	}
	for _, e := range Effects(set, t) {
		switch e.Kind {
		case EffectDamageScale:
			if h.To == SideBoss || h.From == SideBoss {
				res.Amount *= e.Factor
			}
		case EffectBlockDamage:
			if h.To == SideBoss && h.Class == e.Class {
				res.Amount = 0
			}
		case EffectPacifist:
			if h.To == SideBoss && h.From == SideParticipant && set.PacifistHealer != NoParticipant && h.FromID == set.PacifistHealer {
				res.Heal += res.Amount * e.Factor
				res.Amount = 0
			}
		}
	}
	return res
}
