package hex

import (
	"encoding/json"
	"math"
	"testing"
)

func TestEveryHexHasAnEffectRow(t *testing.T) {
	for i, rule := range flashyRules {
		if rule == nil {
			t.Fatalf("flashy %v has no effect row", Flashy(i))
		}
	}
	for i, rule := range modifierRules {
		if rule == nil {
			t.Fatalf("modifier %v has no effect row", Modifier(i))
		}
	}
	for i, rule := range constraintRules {
		if rule == nil {
			t.Fatalf("constraint %v has no effect row", Constraint(i))
		}
	}
}

func TestEffectsPerHex(t *testing.T) {
	tun := DefaultTuning()
	tests := []struct {
		name string
		set  ActiveSet
		kind EffectKind
		want Effect
	}{
		{"invisible", ActiveSet{Flashy: InvisibleBoss}, EffectHide, Effect{Kind: EffectHide, Target: TargetBoss}},
		{"wing_clip", ActiveSet{Flashy: WingClip}, EffectZeroFlight, Effect{Kind: EffectZeroFlight, Target: TargetParticipants}},
		{"blackout", ActiveSet{Flashy: Blackout}, EffectStatus, Effect{Kind: EffectStatus, Target: TargetParticipants, Status: StatusDarkness, Ticks: 2, Factor: 1}},
		{"huge", ActiveSet{Flashy: HugeBoss}, EffectScaleOnce, Effect{Kind: EffectScaleOnce, Target: TargetBoss, Factor: 2}},
		{"tiny_scale", ActiveSet{Flashy: TinyFastBoss}, EffectScaleOnce, Effect{Kind: EffectScaleOnce, Target: TargetBoss, Factor: 0.5}},
		{"tiny_speed", ActiveSet{Flashy: TinyFastBoss}, EffectSpeedBoost, Effect{Kind: EffectSpeedBoost, Target: TargetBoss, Cap: tun.TinySpeedCap, Smoothing: 0.05}},
		{"sluggish", ActiveSet{Modifier: Sluggish}, EffectStatus, Effect{Kind: EffectStatus, Target: TargetParticipants, Status: StatusSlow, Ticks: 2, Factor: 0.75}},
		{"swift", ActiveSet{Modifier: SwiftBoss}, EffectStatus, Effect{Kind: EffectStatus, Target: TargetBoss, Status: StatusHaste, Ticks: 2, Factor: 1.25}},
		{"frail", ActiveSet{Modifier: Frail}, EffectMaxHealth, Effect{Kind: EffectMaxHealth, Target: TargetParticipants, Status: StatusFrail, Ticks: 2, Factor: 0.8}},
		{"broken_armor", ActiveSet{Modifier: BrokenArmor}, EffectStatus, Effect{Kind: EffectStatus, Target: TargetParticipants, Status: StatusArmorBreak, Ticks: 2, Factor: 0.5}},
		{"grounded", ActiveSet{Constraint: Grounded}, EffectNoJump, Effect{Kind: EffectNoJump, Target: TargetParticipants, Status: StatusGrounded, Ticks: 2}},
		{"no_grapple", ActiveSet{Constraint: NoGrapple}, EffectDenyTool, Effect{Kind: EffectDenyTool, Target: TargetParticipants, Status: StatusNoGrapple, Ticks: 2, Style: GrappleStyle}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var found bool
			for _, e := range Effects(&tc.set, tun) {
				if e.Kind == tc.kind {
					found = true
					if e != tc.want {
						t.Fatalf("expected %+v, got %+v", tc.want, e)
					}
				}
			}
			if !found {
				t.Fatalf("no %v effect for %+v", tc.kind, tc.set)
			}
		})
	}

	if got := Effects(NewActiveSet(), tun); got != nil {
		t.Fatalf("empty set should have no effects, got %v", got)
	}
	if got := Effects(&ActiveSet{Flashy: Reversal}, tun); len(got) != 0 {
		t.Fatalf("placeholder hex should be inert, got %v", got)
	}
}

func TestResolveHit(t *testing.T) {
	tun := DefaultTuning()
	healer := ActiveSet{Constraint: PacifistHealer, PacifistHealer: 2}
	unassigned := ActiveSet{Constraint: PacifistHealer, PacifistHealer: NoParticipant}

	tests := []struct {
		name     string
		set      ActiveSet
		hit      Hit
		want     float64
		wantHeal float64
	}{
		{"no_hex", ActiveSet{}, Hit{Amount: 10, Class: DamageMelee, To: SideBoss}, 10, 0},
		{"melee_blocked_direct", ActiveSet{Constraint: NoMeleeDamage}, Hit{Amount: 10, Class: DamageMelee, To: SideBoss}, 0, 0},
		{"ranged_blocked_projectile", ActiveSet{Constraint: NoRangedDamage}, Hit{Amount: 10, Class: DamageRanged, Projectile: true, To: SideBoss}, 0, 0},
		{"magic_blocked_projectile", ActiveSet{Constraint: NoMagicDamage}, Hit{Amount: 10, Class: DamageMagic, Projectile: true, To: SideBoss}, 0, 0},
		{"other_class_passes", ActiveSet{Constraint: NoMeleeDamage}, Hit{Amount: 10, Class: DamageMagic, To: SideBoss}, 10, 0},
		{"boss_damage_to_players_untouched", ActiveSet{Constraint: NoMeleeDamage}, Hit{Amount: 10, Class: DamageMelee, From: SideBoss, To: SideParticipant}, 10, 0},
		{"glass_cannon_dealt", ActiveSet{Modifier: GlassCannon}, Hit{Amount: 10, To: SideBoss}, 15, 0},
		{"glass_cannon_taken", ActiveSet{Modifier: GlassCannon}, Hit{Amount: 10, From: SideBoss, To: SideParticipant}, 15, 0},
		{"glass_cannon_not_between_players", ActiveSet{Modifier: GlassCannon}, Hit{Amount: 10, From: SideHazard, To: SideParticipant}, 10, 0},
		{"meteor_on_boss", ActiveSet{Flashy: MeteorShower}, Hit{Amount: 30, From: SideHazard, To: SideBoss}, 3, 0},
		{"meteor_on_player", ActiveSet{Flashy: MeteorShower}, Hit{Amount: 30, From: SideHazard, To: SideParticipant}, 30, 0},
		{"healer_hit", healer, Hit{Amount: 10, From: SideParticipant, FromID: 2, To: SideBoss}, 0, 5},
		{"teammate_hit", healer, Hit{Amount: 10, From: SideParticipant, FromID: 1, To: SideBoss}, 10, 0},
		{"unassigned_healer_inert", unassigned, Hit{Amount: 10, From: SideParticipant, FromID: 0, To: SideBoss}, 10, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ResolveHit(&tc.set, tc.hit, tun)
			if math.Abs(got.Amount-tc.want) > 1e-9 || math.Abs(got.Heal-tc.wantHeal) > 1e-9 {
				t.Fatalf("expected %v/%v, got %+v", tc.want, tc.wantHeal, got)
			}
		})
	}
}

func TestToolAllowed(t *testing.T) {
	tun := DefaultTuning()
	if ToolAllowed(&ActiveSet{Constraint: NoGrapple}, GrappleStyle, tun) {
		t.Fatalf("grapple should be blocked")
	}
	if !ToolAllowed(&ActiveSet{Constraint: NoGrapple}, "hook_shot", tun) {
		t.Fatalf("other styles stay usable")
	}
	if !ToolAllowed(nil, GrappleStyle, tun) {
		t.Fatalf("no set means no restriction")
	}
}

func TestCatalogEligibility(t *testing.T) {
	c := DefaultCatalog()
	if got := len(c.FlashyPool()); got != 7 {
		t.Fatalf("expected 7 eligible flashy hexes, got %d", got)
	}
	if got := len(c.ModifierPool()); got != 5 {
		t.Fatalf("expected 5 eligible modifiers, got %d", got)
	}
	if got := len(c.ConstraintPool()); got != 5 {
		t.Fatalf("expected 5 eligible constraints, got %d", got)
	}

	clone := c.Clone()
	if err := clone.SetEligible(CategoryFlashy, "time_limit", true); err != nil {
		t.Fatalf("enable time limit: %v", err)
	}
	if len(clone.FlashyPool()) != 8 || len(c.FlashyPool()) != 7 {
		t.Fatalf("clone should be independent")
	}
	if err := clone.SetEligible(CategoryConstraint, "Bogus", true); err == nil {
		t.Fatalf("expected unknown hex error")
	}
	if _, err := ParseCategory("Modifier"); err != nil {
		t.Fatalf("parse category: %v", err)
	}
}

func TestDisplayNames(t *testing.T) {
	set := ActiveSet{Flashy: TinyFastBoss, Constraint: NoRangedDamage}
	names := set.Names()
	if len(names) != 2 || names[0] != "Tiny Fast Boss" || names[1] != "No Ranged Damage" {
		t.Fatalf("unexpected names %v", names)
	}
}

func TestActiveSetJSON(t *testing.T) {
	in := ActiveSet{Flashy: MeteorShower, Modifier: Frail, Constraint: Grounded, PacifistHealer: NoParticipant, FightTicks: 12}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	var out ActiveSet
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal %s: %v", data, err)
	}
	if out != in {
		t.Fatalf("expected %+v, got %+v", in, out)
	}
}
