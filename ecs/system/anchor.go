package system

import (
	"math"

	"github.com/milk9111/bosshex/ecs"
	"github.com/milk9111/bosshex/ecs/component"
	"github.com/milk9111/bosshex/hex"
)

const anchorArriveDist = 24.0

// AnchorSystem flies grapple hooks to their target and then reels the owner
// in. A hook is dropped when the owner arrives, dies or loses grappling.
type AnchorSystem struct{}

func NewAnchorSystem() *AnchorSystem { return &AnchorSystem{} }

func (s *AnchorSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.AnchorComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, a *component.Anchor, t *component.Transform) {
		owner := ecs.Entity(a.Owner)
		if !participantAlive(w, owner) {
			ecs.DestroyEntity(w, e)
			return
		}
		if st, ok := ecs.Get(w, owner, component.StatusesComponent.Kind()); ok && st.Has(hex.StatusNoGrapple) {
			ecs.DestroyEntity(w, e)
			return
		}

		if !a.Latched {
			dx := a.TargetX - t.X
			dy := a.TargetY - t.Y
			dist := math.Hypot(dx, dy)

			step := a.Speed
			if step <= 0 {
				step = 10
			}
			if dist <= step {
				t.X, t.Y = a.TargetX, a.TargetY
				a.Latched = true
			} else {
				t.X += dx / dist * step
				t.Y += dy / dist * step
			}
			return
		}

		body, ok := ecs.Get(w, owner, component.PhysicsBodyComponent.Kind())
		if !ok || body.Body == nil {
			ecs.DestroyEntity(w, e)
			return
		}
		pos := body.Body.Position()
		dx, dy := t.X-pos.X, t.Y-pos.Y
		dist := math.Hypot(dx, dy)
		if dist <= anchorArriveDist {
			ecs.DestroyEntity(w, e)
			return
		}
		body.Body.SetVelocity(dx/dist*a.Pull, dy/dist*a.Pull)
	})
}
