package system

import (
	"testing"

	"github.com/milk9111/bosshex/ecs"
	"github.com/milk9111/bosshex/ecs/component"
	"github.com/milk9111/bosshex/hex"
)

func participantHit(slot int, amount float64, class hex.DamageClass) component.HitEvent {
	return component.HitEvent{Hit: hex.Hit{Amount: amount, Class: class, From: hex.SideParticipant, FromID: slot, To: hex.SideBoss}}
}

func TestDamageAgainstBoss(t *testing.T) {
	tests := []struct {
		name string
		src  staticSource
		hit  component.HitEvent
		want int
	}{
		{name: "plain", src: hexed(hex.FlashyNone, hex.ModifierNone, hex.ConstraintNone), hit: participantHit(0, 20, hex.DamageMelee), want: 20},
		{name: "melee blocked", src: hexed(hex.FlashyNone, hex.ModifierNone, hex.NoMeleeDamage), hit: participantHit(0, 20, hex.DamageMelee), want: 0},
		{name: "ranged unaffected by melee block", src: hexed(hex.FlashyNone, hex.ModifierNone, hex.NoMeleeDamage), hit: participantHit(0, 20, hex.DamageRanged), want: 20},
		{name: "glass cannon", src: hexed(hex.FlashyNone, hex.GlassCannon, hex.ConstraintNone), hit: participantHit(0, 20, hex.DamageMagic), want: 30},
		{name: "meteor scaled", src: hexed(hex.MeteorShower, hex.ModifierNone, hex.ConstraintNone), hit: component.HitEvent{Hit: hex.Hit{Amount: 30, From: hex.SideHazard, FromID: hex.NoParticipant, To: hex.SideBoss, Projectile: true}}, want: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newArena(t)
			boss := addBoss(t, w, 1, "Slime")
			queueHit(w, boss, tt.hit)

			NewDamageSystem(tt.src, hex.DefaultTuning()).Update(w)
			h := health(t, w, boss)
			if got := h.BaseMax - h.Current; got != tt.want {
				t.Fatalf("expected %d damage, got %d", tt.want, got)
			}
			if ecs.Has(w, boss, component.PendingDamageComponent.Kind()) {
				t.Fatalf("pending damage not consumed")
			}
		})
	}
}

func TestDamageArmorAndInvulnerability(t *testing.T) {
	w := newArena(t)
	p := addParticipant(t, w, 0, "Ash", 100)
	bossHit := component.HitEvent{Hit: hex.Hit{Amount: 25, Class: hex.DamageMelee, From: hex.SideBoss, FromID: hex.NoParticipant, To: hex.SideParticipant}}

	sys := NewDamageSystem(hexed(hex.FlashyNone, hex.ModifierNone, hex.ConstraintNone), hex.DefaultTuning())
	queueHit(w, p, bossHit)
	queueHit(w, p, bossHit)
	sys.Update(w)

	// defense 10 absorbs 5; the second hit lands during invulnerability
	h := health(t, w, p)
	if h.Current != 80 {
		t.Fatalf("expected 80 health, got %d", h.Current)
	}
	if !ecs.Has(w, p, component.InvulnerableComponent.Kind()) {
		t.Fatalf("boss hit granted no invulnerability")
	}

	_ = ecs.Remove(w, p, component.InvulnerableComponent.Kind())
	st, _ := ecs.Get(w, p, component.StatusesComponent.Kind())
	st.Apply(hex.StatusArmorBreak, 2, 0.5)
	queueHit(w, p, bossHit)
	sys.Update(w)
	if h.Current != 80-23 {
		t.Fatalf("expected broken armor to absorb 2.5, got health %d", h.Current)
	}
}

func TestDamagePacifistHealerHealsTeammate(t *testing.T) {
	w := newArena(t)
	healer := addParticipant(t, w, 0, "Ash", 100)
	near := addParticipant(t, w, 1, "Brin", 150)
	far := addParticipant(t, w, 2, "Cato", 700)
	boss := addBoss(t, w, 1, "Slime")
	health(t, w, near).Current = 50
	health(t, w, far).Current = 50

	src := hexed(hex.FlashyNone, hex.ModifierNone, hex.PacifistHealer)
	src.set.PacifistHealer = 0
	queueHit(w, boss, participantHit(0, 20, hex.DamageMelee))
	queueHit(w, boss, participantHit(1, 20, hex.DamageMelee))
	NewDamageSystem(src, hex.DefaultTuning()).Update(w)

	if got := health(t, w, boss).Current; got != 1000-20 {
		t.Fatalf("expected only the teammate's hit to land, boss at %d", got)
	}
	if got := health(t, w, near).Current; got != 60 {
		t.Fatalf("expected nearest teammate healed to 60, got %d", got)
	}
	if got := health(t, w, far).Current; got != 50 {
		t.Fatalf("far teammate should not be healed, got %d", got)
	}
	if health(t, w, healer).Current != 100 {
		t.Fatalf("healer healed itself")
	}
}

func TestDamageDeathEvent(t *testing.T) {
	w := newArena(t)
	p := addParticipant(t, w, 0, "Ash", 100)
	queueHit(w, p, component.HitEvent{Hit: hex.Hit{Amount: 500, From: hex.SideHazard, To: hex.SideParticipant}})
	NewDamageSystem(nil, hex.DefaultTuning()).Update(w)

	if !health(t, w, p).Dead {
		t.Fatalf("participant survived a lethal hit")
	}
	died := false
	for _, evt := range w.Events().Drain() {
		died = died || evt.Type == ecs.EventParticipantDied
	}
	if !died {
		t.Fatalf("missing death event")
	}
}
