// Package hex assigns and runs per-encounter boss hexes: random modifiers drawn
// from three categories that persist per boss type until the boss is defeated.
package hex

import (
	"fmt"
	"strings"
	"unicode"
)

type Category int

const (
	CategoryFlashy Category = iota
	CategoryModifier
	CategoryConstraint
	categoryCount
)

var categoryNames = [categoryCount]string{
	CategoryFlashy:     "flashy",
	CategoryModifier:   "modifier",
	CategoryConstraint: "constraint",
}

func (c Category) String() string {
	if c < 0 || c >= categoryCount {
		return fmt.Sprintf("category(%d)", int(c))
	}
	return categoryNames[c]
}

func ParseCategory(s string) (Category, error) {
	for i, name := range categoryNames {
		if strings.EqualFold(name, s) {
			return Category(i), nil
		}
	}
	return 0, fmt.Errorf("hex: unknown category %q", s)
}

// Flashy hexes change how the fight looks or moves.
type Flashy int

const (
	FlashyNone Flashy = iota
	InvisibleBoss
	WingClip
	Blackout
	TimeLimit
	Reversal
	TinyFastBoss
	HugeBoss
	Mirrored
	UnstableGravity
	MeteorShower
	flashyCount
)

var flashyNames = [flashyCount]string{
	FlashyNone:      "None",
	InvisibleBoss:   "InvisibleBoss",
	WingClip:        "WingClip",
	Blackout:        "Blackout",
	TimeLimit:       "TimeLimit",
	Reversal:        "Reversal",
	TinyFastBoss:    "TinyFastBoss",
	HugeBoss:        "HugeBoss",
	Mirrored:        "Mirrored",
	UnstableGravity: "UnstableGravity",
	MeteorShower:    "MeteorShower",
}

func (f Flashy) String() string { return enumName(flashyNames[:], int(f)) }

// Modifier hexes adjust stats on either side of the fight.
type Modifier int

const (
	ModifierNone Modifier = iota
	ExtraPotionSickness
	SlowAttack
	ManaDrain
	Inaccurate
	SwiftBoss
	Sluggish
	Frail
	BrokenArmor
	GlassCannon
	Marked
	modifierCount
)

var modifierNames = [modifierCount]string{
	ModifierNone:        "None",
	ExtraPotionSickness: "ExtraPotionSickness",
	SlowAttack:          "SlowAttack",
	ManaDrain:           "ManaDrain",
	Inaccurate:          "Inaccurate",
	SwiftBoss:           "SwiftBoss",
	Sluggish:            "Sluggish",
	Frail:               "Frail",
	BrokenArmor:         "BrokenArmor",
	GlassCannon:         "GlassCannon",
	Marked:              "Marked",
}

func (m Modifier) String() string { return enumName(modifierNames[:], int(m)) }

// Constraint hexes restrict what participants may do.
type Constraint int

const (
	ConstraintNone Constraint = iota
	NoBuffPotions
	NoRangedDamage
	NoMeleeDamage
	NoMagicDamage
	Grounded
	NoGrapple
	PacifistHealer
	constraintCount
)

var constraintNames = [constraintCount]string{
	ConstraintNone: "None",
	NoBuffPotions:  "NoBuffPotions",
	NoRangedDamage: "NoRangedDamage",
	NoMeleeDamage:  "NoMeleeDamage",
	NoMagicDamage:  "NoMagicDamage",
	Grounded:       "Grounded",
	NoGrapple:      "NoGrapple",
	PacifistHealer: "PacifistHealer",
}

func (c Constraint) String() string { return enumName(constraintNames[:], int(c)) }

func (f Flashy) MarshalText() ([]byte, error)     { return []byte(f.String()), nil }
func (m Modifier) MarshalText() ([]byte, error)   { return []byte(m.String()), nil }
func (c Constraint) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

func (f *Flashy) UnmarshalText(b []byte) error {
	v, err := parseEnum[Flashy](flashyNames[:], string(b))
	*f = v
	return err
}

func (m *Modifier) UnmarshalText(b []byte) error {
	v, err := parseEnum[Modifier](modifierNames[:], string(b))
	*m = v
	return err
}

func (c *Constraint) UnmarshalText(b []byte) error {
	v, err := parseEnum[Constraint](constraintNames[:], string(b))
	*c = v
	return err
}

func enumName(names []string, v int) string {
	if v < 0 || v >= len(names) {
		return fmt.Sprintf("hex(%d)", v)
	}
	return names[v]
}

// parseEnum accepts the PascalCase name or its snake_case spelling.
func parseEnum[T ~int](names []string, s string) (T, error) {
	key := strings.ReplaceAll(strings.ToLower(s), "_", "")
	for i, name := range names {
		if strings.ToLower(name) == key {
			return T(i), nil
		}
	}
	return 0, fmt.Errorf("hex: unknown hex %q", s)
}

// DisplayName splits a PascalCase identifier into words: "TinyFastBoss" -> "Tiny Fast Boss".
func DisplayName(name string) string {
	var b strings.Builder
	for i, r := range name {
		if i > 0 && unicode.IsUpper(r) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Entry is one catalog row. Entries that are not eligible stay listed but are
// never rolled.
type Entry[T ~int] struct {
	ID       T
	Eligible bool
}

// Catalog lists every hex per category along with its eligibility.
type Catalog struct {
	Flashy     []Entry[Flashy]
	Modifier   []Entry[Modifier]
	Constraint []Entry[Constraint]
}

// DefaultCatalog returns the shipped catalog. TimeLimit and PacifistHealer
// work but are withheld; the remaining ineligible entries have no effect yet.
func DefaultCatalog() *Catalog {
	return &Catalog{
		Flashy: []Entry[Flashy]{
			{InvisibleBoss, true},
			{WingClip, true},
			{Blackout, true},
			{TimeLimit, false},
			{Reversal, false},
			{TinyFastBoss, true},
			{HugeBoss, true},
			{Mirrored, false},
			{UnstableGravity, true},
			{MeteorShower, true},
		},
		Modifier: []Entry[Modifier]{
			{ExtraPotionSickness, false},
			{SlowAttack, false},
			{ManaDrain, false},
			{Inaccurate, false},
			{SwiftBoss, true},
			{Sluggish, true},
			{Frail, true},
			{BrokenArmor, true},
			{GlassCannon, true},
			{Marked, false},
		},
		Constraint: []Entry[Constraint]{
			{NoBuffPotions, false},
			{NoRangedDamage, true},
			{NoMeleeDamage, true},
			{NoMagicDamage, true},
			{Grounded, true},
			{NoGrapple, true},
			{PacifistHealer, false},
		},
	}
}

func (c *Catalog) Clone() *Catalog {
	if c == nil {
		return nil
	}
	return &Catalog{
		Flashy:     append([]Entry[Flashy](nil), c.Flashy...),
		Modifier:   append([]Entry[Modifier](nil), c.Modifier...),
		Constraint: append([]Entry[Constraint](nil), c.Constraint...),
	}
}

func (c *Catalog) FlashyPool() []Flashy         { return pool(c.Flashy) }
func (c *Catalog) ModifierPool() []Modifier     { return pool(c.Modifier) }
func (c *Catalog) ConstraintPool() []Constraint { return pool(c.Constraint) }

func pool[T ~int](entries []Entry[T]) []T {
	out := make([]T, 0, len(entries))
	for _, e := range entries {
		if e.Eligible {
			out = append(out, e.ID)
		}
	}
	return out
}

// SetEligible toggles a catalog entry by category and name.
func (c *Catalog) SetEligible(cat Category, name string, eligible bool) error {
	switch cat {
	case CategoryFlashy:
		return setEligible(c.Flashy, flashyNames[:], name, eligible)
	case CategoryModifier:
		return setEligible(c.Modifier, modifierNames[:], name, eligible)
	case CategoryConstraint:
		return setEligible(c.Constraint, constraintNames[:], name, eligible)
	}
	return fmt.Errorf("hex: unknown category %v", cat)
}

func setEligible[T ~int](entries []Entry[T], names []string, name string, eligible bool) error {
	id, err := parseEnum[T](names, name)
	if err != nil {
		return err
	}
	for i := range entries {
		if entries[i].ID == id {
			entries[i].Eligible = eligible
			return nil
		}
	}
	return fmt.Errorf("hex: %q is not in the catalog", name)
}
