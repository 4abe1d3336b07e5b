package hex

type EffectKind int

const (
	EffectHide EffectKind = iota + 1
	EffectZeroFlight
	EffectStatus
	EffectScaleOnce
	EffectSpeedBoost
	EffectMaxHealth
	EffectDamageScale
	EffectBlockDamage
	EffectNoJump
	EffectDenyTool
	EffectPacifist
)

type Target int

const (
	TargetBoss Target = iota
	TargetParticipants
	TargetHealer
)

// Status is a short-lived condition the host re-applies every tick.
type Status int

const (
	StatusNone Status = iota
	StatusDarkness
	StatusSlow
	StatusHaste
	StatusArmorBreak
	StatusFrail
	StatusGrounded
	StatusNoGrapple
	statusCount
)

var statusNames = [statusCount]string{
	StatusNone:       "none",
	StatusDarkness:   "darkness",
	StatusSlow:       "slow",
	StatusHaste:      "haste",
	StatusArmorBreak: "armor_break",
	StatusFrail:      "frail",
	StatusGrounded:   "grounded",
	StatusNoGrapple:  "no_grapple",
}

func (s Status) String() string { return enumName(statusNames[:], int(s)) }

type DamageClass int

const (
	DamageNone DamageClass = iota
	DamageMelee
	DamageRanged
	DamageMagic
	DamageSummon
)

func ParseDamageClass(s string) DamageClass {
	switch s {
	case "melee":
		return DamageMelee
	case "ranged":
		return DamageRanged
	case "magic":
		return DamageMagic
	case "summon":
		return DamageSummon
	}
	return DamageNone
}

// GrappleStyle is the projectile style tag carried by grappling tools.
const GrappleStyle = "grapple"

// Effect is one instruction for the host. Fields beyond Kind and Target are
// read per kind.
type Effect struct {
	Kind      EffectKind
	Target    Target
	Status    Status
	Ticks     int
	Factor    float64
	Cap       float64
	Smoothing float64
	Class     DamageClass
	Style     string
}

type effectRule func(t Tuning) []Effect

func none(Tuning) []Effect { return nil }

func status(target Target, s Status, factor float64) effectRule {
	return func(t Tuning) []Effect {
		return []Effect{{Kind: EffectStatus, Target: target, Status: s, Ticks: t.StatusTicks, Factor: factor}}
	}
}

func blockClass(c DamageClass) effectRule {
	return func(Tuning) []Effect {
		return []Effect{{Kind: EffectBlockDamage, Target: TargetBoss, Class: c}}
	}
}

// Every hex has a row; effectless rows are placeholders or hexes the
// scheduler drives.
var flashyRules = [flashyCount]effectRule{
	FlashyNone: none,
	InvisibleBoss: func(Tuning) []Effect {
		return []Effect{{Kind: EffectHide, Target: TargetBoss}}
	},
	WingClip: func(Tuning) []Effect {
		return []Effect{{Kind: EffectZeroFlight, Target: TargetParticipants}}
	},
	Blackout:  status(TargetParticipants, StatusDarkness, 1),
	TimeLimit: none,
	Reversal:  none,
	TinyFastBoss: func(t Tuning) []Effect {
		return []Effect{
			{Kind: EffectScaleOnce, Target: TargetBoss, Factor: t.TinyScale},
			{Kind: EffectSpeedBoost, Target: TargetBoss, Cap: t.TinySpeedCap, Smoothing: t.TinySpeedSmoothing},
		}
	},
	HugeBoss: func(t Tuning) []Effect {
		return []Effect{{Kind: EffectScaleOnce, Target: TargetBoss, Factor: t.HugeScale}}
	},
	Mirrored:        none,
	UnstableGravity: none,
	MeteorShower:    none,
}

var modifierRules = [modifierCount]effectRule{
	ModifierNone:        none,
	ExtraPotionSickness: none,
	SlowAttack:          none,
	ManaDrain:           none,
	Inaccurate:          none,
	SwiftBoss: func(t Tuning) []Effect {
		return status(TargetBoss, StatusHaste, t.SwiftFactor)(t)
	},
	Sluggish: func(t Tuning) []Effect {
		return status(TargetParticipants, StatusSlow, t.SluggishFactor)(t)
	},
	Frail: func(t Tuning) []Effect {
		return []Effect{{Kind: EffectMaxHealth, Target: TargetParticipants, Status: StatusFrail, Ticks: t.StatusTicks, Factor: t.FrailFactor}}
	},
	BrokenArmor: status(TargetParticipants, StatusArmorBreak, 0.5),
	GlassCannon: func(t Tuning) []Effect {
		return []Effect{{Kind: EffectDamageScale, Target: TargetBoss, Factor: t.GlassCannonFactor}}
	},
	Marked: none,
}

var constraintRules = [constraintCount]effectRule{
	ConstraintNone: none,
	NoBuffPotions:  none,
	NoRangedDamage: blockClass(DamageRanged),
	NoMeleeDamage:  blockClass(DamageMelee),
	NoMagicDamage:  blockClass(DamageMagic),
	Grounded: func(t Tuning) []Effect {
		return []Effect{{Kind: EffectNoJump, Target: TargetParticipants, Status: StatusGrounded, Ticks: t.StatusTicks}}
	},
	NoGrapple: func(t Tuning) []Effect {
		return []Effect{{Kind: EffectDenyTool, Target: TargetParticipants, Status: StatusNoGrapple, Ticks: t.StatusTicks, Style: GrappleStyle}}
	},
	PacifistHealer: func(t Tuning) []Effect {
		return []Effect{{Kind: EffectPacifist, Target: TargetHealer, Factor: t.HealerShare}}
	},
}

func FlashyEffects(f Flashy, t Tuning) []Effect         { return ruleFor(flashyRules[:], int(f))(t) }
func ModifierEffects(m Modifier, t Tuning) []Effect     { return ruleFor(modifierRules[:], int(m))(t) }
func ConstraintEffects(c Constraint, t Tuning) []Effect { return ruleFor(constraintRules[:], int(c))(t) }

func ruleFor(rules []effectRule, i int) effectRule {
	if i < 0 || i >= len(rules) || rules[i] == nil {
		return none
	}
	return rules[i]
}

// Effects lists what the set asks of the host this tick.
func Effects(set *ActiveSet, t Tuning) []Effect {
	if !set.HasAny() {
		return nil
	}
	var out []Effect
	out = append(out, FlashyEffects(set.Flashy, t)...)
	out = append(out, ModifierEffects(set.Modifier, t)...)
	out = append(out, ConstraintEffects(set.Constraint, t)...)
	return out
}

// ToolAllowed reports whether a tool with the given projectile style may be used.
func ToolAllowed(set *ActiveSet, style string, t Tuning) bool {
	for _, e := range ConstraintEffects(constraintOf(set), t) {
		if e.Kind == EffectDenyTool && e.Style == style {
			return false
		}
	}
	return true
}

func constraintOf(set *ActiveSet) Constraint {
	if set == nil {
		return ConstraintNone
	}
	return set.Constraint
}
