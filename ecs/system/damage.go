package system

import (
	"fmt"
	"math"

	"github.com/milk9111/bosshex/ecs"
	"github.com/milk9111/bosshex/ecs/component"
	"github.com/milk9111/bosshex/hex"
)

const hurtInvulnFrames = 30

// DamageSystem resolves queued hits through the active hexes and armor, then
// applies them. Healing produced by the healer hex goes to the nearest living
// teammate.
type DamageSystem struct {
	source HexSource
	tuning hex.Tuning
}

func NewDamageSystem(source HexSource, tuning hex.Tuning) *DamageSystem {
	return &DamageSystem{source: source, tuning: tuning}
}

func (s *DamageSystem) SetTuning(t hex.Tuning) { s.tuning = t }

func (s *DamageSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	set := currentSet(s.source)

	ecs.ForEach(w, component.PendingDamageComponent.Kind(), func(e ecs.Entity, pd *component.PendingDamage) {
		hits := pd.Hits
		_ = ecs.Remove(w, e, component.PendingDamageComponent.Kind())

		health, ok := ecs.Get(w, e, component.HealthComponent.Kind())
		if !ok || health.Dead {
			return
		}
		for _, hit := range hits {
			if ecs.Has(w, e, component.InvulnerableComponent.Kind()) {
				return
			}
			res := hex.ResolveHit(set, hit.Hit, s.tuning)
			if res.Heal > 0 {
				s.healNearest(w, hit.Hit.FromID, res.Heal)
			}
			amount := s.mitigate(w, e, health, res.Amount)
			if amount <= 0 {
				continue
			}
			if health.ApplyDamage(amount, hit.Reason) {
				s.onDeath(w, e, health)
				return
			}
			flash(w, e)
			if hit.Hit.From == hex.SideBoss {
				_ = ecs.Add(w, e, component.InvulnerableComponent.Kind(), &component.Invulnerable{Frames: hurtInvulnFrames})
			}
		}
	})
}

// mitigate rounds the damage and subtracts half the target's defense, never
// dropping a landed hit below 1.
func (s *DamageSystem) mitigate(w *ecs.World, e ecs.Entity, health *component.Health, amount float64) int {
	if amount <= 0 {
		return 0
	}
	defense := float64(health.Defense)
	if st, ok := ecs.Get(w, e, component.StatusesComponent.Kind()); ok {
		defense *= st.Factor(hex.StatusArmorBreak)
	}
	dmg := int(math.Round(amount - defense/2))
	return max(1, dmg)
}

func (s *DamageSystem) onDeath(w *ecs.World, e ecs.Entity, health *component.Health) {
	if p, ok := ecs.Get(w, e, component.ParticipantComponent.Kind()); ok {
		reason := health.DeathReason
		if reason == "" {
			reason = fmt.Sprintf("%s was slain.", p.Name)
			health.DeathReason = reason
		}
		w.Events().Push(ecs.Event{Type: ecs.EventParticipantDied, Data: reason})
	}
}

func (s *DamageSystem) healNearest(w *ecs.World, healerSlot int, amount float64) {
	healer, ok := participantBySlot(w, healerSlot)
	if !ok {
		return
	}
	ht, ok := ecs.Get(w, healer, component.TransformComponent.Kind())
	if !ok {
		return
	}

	var (
		best     ecs.Entity
		bestDist = math.Inf(1)
	)
	ecs.ForEach2(w, component.ParticipantComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, _ *component.Participant, t *component.Transform) {
		if e == healer || !participantAlive(w, e) {
			return
		}
		if d := math.Hypot(t.X-ht.X, t.Y-ht.Y); d < bestDist {
			best, bestDist = e, d
		}
	})
	if math.IsInf(bestDist, 1) {
		return
	}
	if h, ok := ecs.Get(w, best, component.HealthComponent.Kind()); ok {
		h.Heal(int(math.Round(amount)))
	}
}
