package system

import (
	"github.com/milk9111/bosshex/ecs"
	"github.com/milk9111/bosshex/ecs/component"
	"github.com/milk9111/bosshex/hex"
)

// HexSource provides the hex set effects should follow this tick.
type HexSource interface {
	Current() *hex.ActiveSet
}

// buildRoster reports every participant in slot order of creation.
func buildRoster(w *ecs.World) hex.Roster {
	var roster hex.Roster
	ecs.ForEach2(w, component.ParticipantComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, p *component.Participant, t *component.Transform) {
		dead := false
		if h, ok := ecs.Get(w, e, component.HealthComponent.Kind()); ok {
			dead = h.Dead
		}
		roster = append(roster, hex.Participant{
			ID:     p.Slot,
			Name:   p.Name,
			Active: p.Active,
			Dead:   dead,
			X:      t.X,
			Y:      t.Y,
		})
	})
	return roster
}

func participantBySlot(w *ecs.World, slot int) (ecs.Entity, bool) {
	var found ecs.Entity
	ok := false
	ecs.ForEach(w, component.ParticipantComponent.Kind(), func(e ecs.Entity, p *component.Participant) {
		if !ok && p.Slot == slot {
			found, ok = e, true
		}
	})
	return found, ok
}

func participantAlive(w *ecs.World, e ecs.Entity) bool {
	p, ok := ecs.Get(w, e, component.ParticipantComponent.Kind())
	if !ok || !p.Active {
		return false
	}
	h, ok := ecs.Get(w, e, component.HealthComponent.Kind())
	return !ok || !h.Dead
}

// currentSet tolerates a nil source.
func currentSet(src HexSource) *hex.ActiveSet {
	if src == nil {
		return hex.NewActiveSet()
	}
	set := src.Current()
	if set == nil {
		return hex.NewActiveSet()
	}
	return set
}
