package system

import (
	"github.com/milk9111/bosshex/common"
	"github.com/milk9111/bosshex/ecs"
	"github.com/milk9111/bosshex/ecs/component"
	"github.com/milk9111/bosshex/hex"
)

// HexEffectSystem applies the per-tick effects of the current hex set to
// bosses and participants. Damage-side effects are resolved by DamageSystem.
type HexEffectSystem struct {
	source HexSource
	tuning hex.Tuning
}

func NewHexEffectSystem(source HexSource, tuning hex.Tuning) *HexEffectSystem {
	return &HexEffectSystem{source: source, tuning: tuning}
}

func (s *HexEffectSystem) SetTuning(t hex.Tuning) { s.tuning = t }

func (s *HexEffectSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	set := currentSet(s.source)
	effects := hex.Effects(set, s.tuning)

	hidden, boosted := false, false
	for _, e := range effects {
		switch e.Kind {
		case hex.EffectHide:
			hidden = true
		case hex.EffectSpeedBoost:
			boosted = true
			s.boostBosses(w, e)
		}
	}

	ecs.ForEach2(w, component.BossRuntimeComponent.Kind(), component.SpriteComponent.Kind(), func(e ecs.Entity, rt *component.BossRuntime, sp *component.Sprite) {
		sp.Hidden = hidden
		if !boosted {
			rt.Boost = 0
		}
	})

	for _, e := range effects {
		switch e.Target {
		case hex.TargetBoss:
			s.applyToBosses(w, e)
		case hex.TargetParticipants:
			s.applyToParticipants(w, e)
		}
	}
}

func (s *HexEffectSystem) applyToBosses(w *ecs.World, eff hex.Effect) {
	switch eff.Kind {
	case hex.EffectStatus:
		ecs.ForEach2(w, component.BossComponent.Kind(), component.StatusesComponent.Kind(), func(_ ecs.Entity, _ *component.Boss, st *component.Statuses) {
			st.Apply(eff.Status, eff.Ticks, eff.Factor)
		})
	case hex.EffectScaleOnce:
		ecs.ForEach2(w, component.BossRuntimeComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, rt *component.BossRuntime, t *component.Transform) {
			if rt.ScaleApplied {
				return
			}
			t.ScaleX *= eff.Factor
			t.ScaleY *= eff.Factor
			rt.ScaleApplied = true
		})
	}
}

func (s *HexEffectSystem) boostBosses(w *ecs.World, eff hex.Effect) {
	ecs.ForEach2(w, component.BossComponent.Kind(), component.BossRuntimeComponent.Kind(), func(_ ecs.Entity, b *component.Boss, rt *component.BossRuntime) {
		from := max(rt.Boost, b.Speed)
		rt.Boost = common.Clamp(common.Lerp(from, eff.Cap, eff.Smoothing), b.Speed, max(b.Speed, eff.Cap))
	})
}

func (s *HexEffectSystem) applyToParticipants(w *ecs.World, eff hex.Effect) {
	ecs.ForEach(w, component.ParticipantComponent.Kind(), func(e ecs.Entity, _ *component.Participant) {
		switch eff.Kind {
		case hex.EffectZeroFlight:
			if a, ok := ecs.Get(w, e, component.AbilitiesComponent.Kind()); ok {
				a.Flight = 0
			}
		case hex.EffectStatus, hex.EffectMaxHealth, hex.EffectNoJump, hex.EffectDenyTool:
			if st, ok := ecs.Get(w, e, component.StatusesComponent.Kind()); ok {
				st.Apply(eff.Status, eff.Ticks, eff.Factor)
			}
		}
	})
}
