package system

import (
	"log"
	"math"

	"github.com/milk9111/bosshex/ecs"
	"github.com/milk9111/bosshex/ecs/component"
	"github.com/milk9111/bosshex/hex"
)

const bossDespawnFrames = 180

// BossSystem walks each boss toward the nearest living participant. A boss
// left without anyone to chase despawns, which pauses its encounter.
type BossSystem struct{}

func NewBossSystem() *BossSystem { return &BossSystem{} }

func (s *BossSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	targets := buildRoster(w).Valid()

	ecs.ForEach3(w,
		component.BossComponent.Kind(),
		component.BossRuntimeComponent.Kind(),
		component.PhysicsBodyComponent.Kind(),
		func(e ecs.Entity, boss *component.Boss, rt *component.BossRuntime, body *component.PhysicsBody) {
			if h, ok := ecs.Get(w, e, component.HealthComponent.Kind()); ok && h.Dead {
				return
			}
			if len(targets) == 0 {
				rt.IdleFrames++
				if rt.IdleFrames >= bossDespawnFrames {
					log.Printf("boss: %s lost interest and left", boss.Name)
					ecs.DestroyEntity(w, e)
				}
				return
			}
			rt.IdleFrames = 0
			if body.Body == nil {
				return
			}

			pos := body.Body.Position()
			target := nearest(targets, pos.X, pos.Y)
			rt.Target = uint64(target.ID)

			speed := math.Max(boss.Speed, rt.Boost)
			if st, ok := ecs.Get(w, e, component.StatusesComponent.Kind()); ok {
				speed *= st.Factor(hex.StatusHaste)
			}

			vel := body.Body.Velocity()
			dx := target.X - pos.X
			switch {
			case math.Abs(dx) < speed:
				vel.X = dx
			case dx < 0:
				vel.X = -speed
			default:
				vel.X = speed
			}
			body.Body.SetVelocityVector(vel)
		})
}

func nearest(targets []hex.Participant, x, y float64) hex.Participant {
	best := targets[0]
	bestDist := math.Inf(1)
	for _, p := range targets {
		if d := math.Hypot(p.X-x, p.Y-y); d < bestDist {
			best, bestDist = p, d
		}
	}
	return best
}
