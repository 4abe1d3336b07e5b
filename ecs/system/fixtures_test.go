package system

import (
	"testing"

	"github.com/milk9111/bosshex/ecs"
	"github.com/milk9111/bosshex/ecs/component"
	"github.com/milk9111/bosshex/ecs/entity"
	"github.com/milk9111/bosshex/hex"
	"github.com/milk9111/bosshex/prefabs"
)

// staticSource serves a fixed set.
type staticSource struct{ set *hex.ActiveSet }

func (s staticSource) Current() *hex.ActiveSet { return s.set }

func hexed(f hex.Flashy, m hex.Modifier, c hex.Constraint) staticSource {
	set := hex.NewActiveSet()
	set.Flashy, set.Modifier, set.Constraint = f, m, c
	return staticSource{set: set}
}

// onlyCatalog makes exactly one hex eligible per category; None leaves the
// category empty.
func onlyCatalog(f hex.Flashy, m hex.Modifier, c hex.Constraint) *hex.Catalog {
	cat := hex.DefaultCatalog()
	for i := range cat.Flashy {
		cat.Flashy[i].Eligible = cat.Flashy[i].ID == f
	}
	for i := range cat.Modifier {
		cat.Modifier[i].Eligible = cat.Modifier[i].ID == m
	}
	for i := range cat.Constraint {
		cat.Constraint[i].Eligible = cat.Constraint[i].ID == c
	}
	return cat
}

var testBounds = component.LevelBounds{Width: 800, Height: 400, FloorY: 400}

func addParticipant(t *testing.T, w *ecs.World, slot int, name string, x float64) ecs.Entity {
	t.Helper()
	e, err := entity.NewParticipant(w, prefabs.ParticipantSpec{
		Name:        name,
		Slot:        slot,
		X:           x,
		Health:      100,
		Defense:     10,
		FlightTicks: 30,
		DoubleJumps: 1,
		Bot:         true,
		Weapon:      prefabs.WeaponSpec{Class: "melee", Damage: 20, Range: 80, CooldownTicks: 10},
		Tool:        prefabs.ToolSpec{Name: "hook", Style: hex.GrappleStyle, Range: 300, Pull: 10, CooldownTicks: 30},
	}, testBounds)
	if err != nil {
		t.Fatalf("NewParticipant: %v", err)
	}
	return e
}

func addBoss(t *testing.T, w *ecs.World, typ int, name string) ecs.Entity {
	t.Helper()
	e, err := entity.NewBoss(w, prefabs.BossSpec{Type: typ, Name: name, Health: 1000, ContactDamage: 10, Speed: 2, Width: 60, Height: 60}, testBounds)
	if err != nil {
		t.Fatalf("NewBoss: %v", err)
	}
	return e
}

func newArena(t *testing.T) *ecs.World {
	t.Helper()
	w := ecs.NewWorld()
	bounds := testBounds
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.LevelBoundsComponent.Kind(), &bounds); err != nil {
		t.Fatalf("add bounds: %v", err)
	}
	return w
}

func health(t *testing.T, w *ecs.World, e ecs.Entity) *component.Health {
	t.Helper()
	h, ok := ecs.Get(w, e, component.HealthComponent.Kind())
	if !ok {
		t.Fatalf("entity %v has no health", e)
	}
	return h
}

func announcements(w *ecs.World) []hex.Announcement {
	var out []hex.Announcement
	for _, evt := range w.Events().Drain() {
		if a, ok := evt.Data.(hex.Announcement); ok && evt.Type == ecs.EventHexAnnounce {
			out = append(out, a)
		}
	}
	return out
}
