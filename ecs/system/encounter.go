package system

import (
	"fmt"
	"log"
	"strings"

	"github.com/milk9111/bosshex/ecs"
	"github.com/milk9111/bosshex/ecs/component"
	"github.com/milk9111/bosshex/hex"
)

// EncounterSystem watches boss presence and drives the registry transitions.
// Only the authoritative game installs it.
type EncounterSystem struct {
	registry *hex.Registry
	last     *hex.ActiveSet
}

func NewEncounterSystem(registry *hex.Registry) *EncounterSystem {
	return &EncounterSystem{registry: registry}
}

func (s *EncounterSystem) Update(w *ecs.World) {
	if s == nil || s.registry == nil || w == nil {
		return
	}

	var (
		alive      []ecs.Entity
		defeated   []ecs.Entity
		aliveTypes = map[hex.BossType]bool{}
	)
	ecs.ForEach2(w, component.BossComponent.Kind(), component.HealthComponent.Kind(), func(e ecs.Entity, b *component.Boss, h *component.Health) {
		if h.Dead {
			defeated = append(defeated, e)
			return
		}
		alive = append(alive, e)
		aliveTypes[b.Type] = true
	})

	ended := false
	for _, e := range defeated {
		b, _ := ecs.Get(w, e, component.BossComponent.Kind())
		// another boss of the same type keeps the encounter going
		if !aliveTypes[b.Type] {
			s.registry.OnBossDefeated(b.Type)
			ended = true
			w.Events().Push(ecs.Event{Type: ecs.EventBossDefeated, Data: b.Type})
			w.Events().Push(ecs.Event{Type: ecs.EventHexAnnounce, Data: hex.Announcement{
				Text:  fmt.Sprintf("%s has been defeated!", b.Name),
				Color: hex.ColorGreen,
			}})
			log.Printf("encounter: %s (type %d) defeated", b.Name, b.Type)
		}
		ecs.DestroyEntity(w, e)
	}

	if len(alive) == 0 {
		if _, ok := s.registry.CurrentBoss(); ok {
			s.registry.OnAllBossesDespawned()
			ended = true
			log.Printf("encounter: all bosses gone, encounter paused")
		}
		if ended {
			resetGravity(w)
		}
		s.last = nil
		return
	}

	boss, _ := ecs.Get(w, alive[0], component.BossComponent.Kind())
	roster := buildRoster(w)
	set, fresh := s.registry.OnBossSpawn(boss.Type, roster)
	if set == s.last {
		return
	}
	s.last = set
	resetGravity(w)
	if fresh {
		log.Printf("encounter: rolled %v for %s", set.Names(), boss.Name)
	}
	w.Events().Push(ecs.Event{Type: ecs.EventHexRolled, Data: set.Clone()})
	s.announceStart(w, boss, set, roster)
}

func (s *EncounterSystem) announceStart(w *ecs.World, boss *component.Boss, set *hex.ActiveSet, roster hex.Roster) {
	if !set.HasAny() {
		return
	}
	w.Events().Push(ecs.Event{Type: ecs.EventHexAnnounce, Data: hex.Announcement{
		Text:  fmt.Sprintf("%s is hexed: %s", boss.Name, strings.Join(set.Names(), ", ")),
		Color: hex.ColorPurple,
	}})
	if set.PacifistHealer == hex.NoParticipant {
		return
	}
	if p, ok := roster.Find(set.PacifistHealer); ok {
		w.Events().Push(ecs.Event{Type: ecs.EventHexAnnounce, Data: hex.Announcement{
			Text:  fmt.Sprintf("%s has been chosen as the healer.", p.Name),
			Color: hex.ColorGreen,
		}})
	}
}

// resetGravity rights every participant. Flips only last as long as the
// encounter that caused them.
func resetGravity(w *ecs.World) {
	ecs.ForEach2(w, component.ParticipantComponent.Kind(), component.GravityScaleComponent.Kind(), func(_ ecs.Entity, _ *component.Participant, g *component.GravityScale) {
		g.Sign = 1
	})
}
