package system

import (
	"github.com/milk9111/bosshex/ecs"
	"github.com/milk9111/bosshex/ecs/component"
)

// CooldownSystem counts down weapon cooldowns, tool cooldowns and timed
// invulnerability, removing the finished components.
type CooldownSystem struct{}

func NewCooldownSystem() *CooldownSystem {
	return &CooldownSystem{}
}

func (s *CooldownSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.CooldownComponent.Kind(), func(e ecs.Entity, cd *component.Cooldown) {
		if cd.Frames > 0 {
			cd.Frames--
			if cd.Frames > 0 {
				return
			}
		}
		_ = ecs.Remove(w, e, component.CooldownComponent.Kind())
	})

	ecs.ForEach(w, component.ToolComponent.Kind(), func(e ecs.Entity, tool *component.Tool) {
		if tool.Cooldown > 0 {
			tool.Cooldown--
		}
	})

	ecs.ForEach(w, component.InvulnerableComponent.Kind(), func(e ecs.Entity, inv *component.Invulnerable) {
		// zero frames means until removed
		if inv.Frames == 0 {
			return
		}
		inv.Frames--
		if inv.Frames <= 0 {
			_ = ecs.Remove(w, e, component.InvulnerableComponent.Kind())
		}
	})
}
