package system

import (
	"log"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/bosshex/ecs"
	"github.com/milk9111/bosshex/ecs/component"
)

const defaultRespawnFrames = 300

// RespawnSystem queues a respawn for every dead participant and revives them
// at their spawn point when it runs out.
type RespawnSystem struct {
	frames int
}

func NewRespawnSystem(frames int) *RespawnSystem {
	if frames <= 0 {
		frames = defaultRespawnFrames
	}
	return &RespawnSystem{frames: frames}
}

func (s *RespawnSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	ecs.ForEach2(w, component.ParticipantComponent.Kind(), component.HealthComponent.Kind(), func(e ecs.Entity, _ *component.Participant, h *component.Health) {
		if h.Dead && !ecs.Has(w, e, component.RespawnRequestComponent.Kind()) {
			_ = ecs.Add(w, e, component.RespawnRequestComponent.Kind(), &component.RespawnRequest{Frames: s.frames})
		}
	})

	ecs.ForEach(w, component.RespawnRequestComponent.Kind(), func(e ecs.Entity, req *component.RespawnRequest) {
		if req.Frames > 0 {
			req.Frames--
			if req.Frames > 0 {
				return
			}
		}
		_ = ecs.Remove(w, e, component.RespawnRequestComponent.Kind())
		s.revive(w, e)
	})
}

func (s *RespawnSystem) revive(w *ecs.World, e ecs.Entity) {
	p, ok := ecs.Get(w, e, component.ParticipantComponent.Kind())
	if !ok {
		return
	}
	if h, ok := ecs.Get(w, e, component.HealthComponent.Kind()); ok {
		h.Revive()
	}
	if g, ok := ecs.Get(w, e, component.GravityScaleComponent.Kind()); ok {
		g.Sign = 1
	}
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		t.X, t.Y = p.SpawnX, p.SpawnY
	}
	if body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok && body.Body != nil {
		body.Body.SetPosition(cp.Vector{X: p.SpawnX, Y: p.SpawnY})
		body.Body.SetVelocityVector(cp.Vector{})
		body.Body.SetAngularVelocity(0)
	}
	if a, ok := ecs.Get(w, e, component.AbilitiesComponent.Kind()); ok {
		a.Refill()
	}
	_ = ecs.Add(w, e, component.InvulnerableComponent.Kind(), &component.Invulnerable{Frames: hurtInvulnFrames * 2})
	log.Printf("respawn: %s is back", p.Name)
}
