package system

import (
	"strings"
	"testing"

	"github.com/milk9111/bosshex/ecs"
	"github.com/milk9111/bosshex/ecs/component"
	"github.com/milk9111/bosshex/hex"
)

func TestEncounterRollsOnceAndAnnounces(t *testing.T) {
	w := newArena(t)
	addParticipant(t, w, 0, "Ash", 100)
	addParticipant(t, w, 1, "Brin", 200)
	addParticipant(t, w, 2, "Cato", 300)
	addBoss(t, w, 1, "Slime")

	reg := hex.NewRegistry(onlyCatalog(hex.HugeBoss, hex.Frail, hex.Grounded), hex.DefaultTuning(), hex.NewRand(1))
	sys := NewEncounterSystem(reg)

	sys.Update(w)
	set := reg.Current()
	if set.Flashy != hex.HugeBoss || set.Modifier != hex.Frail || set.Constraint != hex.Grounded {
		t.Fatalf("unexpected roll: %+v", set)
	}
	got := announcements(w)
	if len(got) != 1 || !strings.Contains(got[0].Text, "Huge Boss") {
		t.Fatalf("expected one fight-start announcement, got %+v", got)
	}

	sys.Update(w)
	if reg.Current() != set {
		t.Fatalf("second tick replaced the running set")
	}
	if got := announcements(w); len(got) != 0 {
		t.Fatalf("second tick announced again: %+v", got)
	}
}

func TestEncounterDefeatAndDespawn(t *testing.T) {
	w := newArena(t)
	addParticipant(t, w, 0, "Ash", 100)
	boss := addBoss(t, w, 7, "Eye")

	reg := hex.NewRegistry(onlyCatalog(hex.WingClip, hex.ModifierNone, hex.ConstraintNone), hex.DefaultTuning(), hex.NewRand(2))
	sys := NewEncounterSystem(reg)
	sys.Update(w)
	first, ok := reg.Persisted(7)
	if !ok {
		t.Fatalf("boss type not persisted after spawn")
	}

	// despawn without defeat keeps the roll
	ecs.DestroyEntity(w, boss)
	sys.Update(w)
	if _, current := reg.CurrentBoss(); current {
		t.Fatalf("encounter still current after despawn")
	}
	if set, ok := reg.Persisted(7); !ok || set != first {
		t.Fatalf("despawn dropped the persisted set")
	}

	boss = addBoss(t, w, 7, "Eye")
	sys.Update(w)
	if reg.Current() != first {
		t.Fatalf("re-engagement rolled a new set")
	}

	health(t, w, boss).ApplyDamage(5000, "")
	w.Events().Drain()
	sys.Update(w)
	if _, ok := reg.Persisted(7); ok {
		t.Fatalf("defeat kept the persisted set")
	}
	if ecs.IsAlive(w, boss) {
		t.Fatalf("defeated boss was not removed")
	}
	defeated := false
	for _, evt := range w.Events().Drain() {
		if evt.Type == ecs.EventBossDefeated {
			defeated = true
		}
	}
	if !defeated {
		t.Fatalf("missing boss defeated event")
	}
	if reg.Current().HasAny() {
		t.Fatalf("idle registry should report an empty set")
	}
}

func TestEncounterAnnouncesHealer(t *testing.T) {
	w := newArena(t)
	addParticipant(t, w, 0, "Ash", 100)
	addParticipant(t, w, 1, "Brin", 200)
	addParticipant(t, w, 2, "Cato", 300)
	addBoss(t, w, 1, "Slime")

	reg := hex.NewRegistry(onlyCatalog(hex.FlashyNone, hex.ModifierNone, hex.PacifistHealer), hex.DefaultTuning(), hex.NewRand(3))
	sys := NewEncounterSystem(reg)
	sys.Update(w)

	if reg.Current().PacifistHealer == hex.NoParticipant {
		t.Fatalf("expected a healer with three participants")
	}
	found := false
	for _, a := range announcements(w) {
		if strings.Contains(a.Text, "healer") {
			found = true
		}
	}
	if !found {
		t.Fatalf("healer was not announced")
	}
}

func TestEncounterEndRestoresGravity(t *testing.T) {
	tests := []struct {
		name string
		end  func(t *testing.T, w *ecs.World, boss ecs.Entity)
	}{
		{
			name: "defeat",
			end: func(t *testing.T, w *ecs.World, boss ecs.Entity) {
				health(t, w, boss).ApplyDamage(5000, "")
			},
		},
		{
			name: "despawn",
			end: func(_ *testing.T, w *ecs.World, boss ecs.Entity) {
				ecs.DestroyEntity(w, boss)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newArena(t)
			var party []ecs.Entity
			for i, name := range []string{"Ash", "Brin", "Cato"} {
				party = append(party, addParticipant(t, w, i, name, float64(100*(i+1))))
			}
			boss := addBoss(t, w, 4, "Golem")

			tn := fastTuning()
			tn.GravityMinTicks = 1
			tn.GravityOneIn = 1
			reg := hex.NewRegistry(onlyCatalog(hex.UnstableGravity, hex.ModifierNone, hex.ConstraintNone), tn, hex.NewRand(1))
			enc := NewEncounterSystem(reg)
			haz := NewHexHazardSystem(reg, hex.NewScheduler(tn, hex.NewRand(1), nil), tn, true)

			enc.Update(w)
			haz.Update(w)
			for _, e := range party {
				g, _ := ecs.Get(w, e, component.GravityScaleComponent.Kind())
				if g.Sign != -1 {
					t.Fatalf("gravity was not flipped during the fight: sign %v", g.Sign)
				}
			}

			tt.end(t, w, boss)
			enc.Update(w)
			for _, e := range party {
				g, _ := ecs.Get(w, e, component.GravityScaleComponent.Kind())
				if g.Sign != 1 {
					t.Fatalf("gravity stayed inverted after the encounter: sign %v", g.Sign)
				}
			}
		})
	}
}
