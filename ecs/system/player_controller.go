package system

import (
	"log"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/bosshex/ecs"
	"github.com/milk9111/bosshex/ecs/component"
	"github.com/milk9111/bosshex/ecs/entity"
	"github.com/milk9111/bosshex/hex"
)

const (
	flightLiftFactor = 0.55
	anchorSpeed      = 18.0
	anchorFrames     = 90
	teleportStyle    = "teleport"
)

// ParticipantControlSystem turns Input into movement, jumps, flight and tool
// use. Statuses left by hexes gate each of them.
type ParticipantControlSystem struct{}

func NewParticipantControlSystem() *ParticipantControlSystem {
	return &ParticipantControlSystem{}
}

func (p *ParticipantControlSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach3(w, component.ParticipantComponent.Kind(), component.InputComponent.Kind(), component.PhysicsBodyComponent.Kind(), func(e ecs.Entity, part *component.Participant, input *component.Input, bodyComp *component.PhysicsBody) {
		if bodyComp.Body == nil {
			return
		}
		if !participantAlive(w, e) {
			bodyComp.Body.SetVelocity(0, bodyComp.Body.Velocity().Y)
			return
		}

		st, _ := ecs.Get(w, e, component.StatusesComponent.Kind())
		down := 1.0
		if g, ok := ecs.Get(w, e, component.GravityScaleComponent.Kind()); ok && g.Sign < 0 {
			down = -1
		}
		grounded := false
		if pc, ok := ecs.Get(w, e, component.PlayerCollisionComponent.Kind()); ok {
			grounded = pc.Grounded || pc.GroundGrace > 0
		}
		abilities, _ := ecs.Get(w, e, component.AbilitiesComponent.Kind())
		if grounded && abilities != nil {
			abilities.Refill()
		}

		vel := bodyComp.Body.Velocity()
		vel.X = input.MoveX * part.MoveSpeed * st.Factor(hex.StatusSlow)

		canJump := !st.Has(hex.StatusGrounded)
		switch {
		case canJump && input.JumpPressed && grounded:
			vel.Y = -part.JumpSpeed * down
		case canJump && input.JumpPressed && abilities != nil && abilities.DoubleJumps > 0:
			abilities.DoubleJumps--
			vel.Y = -part.JumpSpeed * down
		case canJump && input.Jump && !grounded && abilities != nil && abilities.Flight > 0:
			abilities.Flight--
			vel.Y = -part.JumpSpeed * flightLiftFactor * down
		}

		bodyComp.Body.SetVelocityVector(vel)
		bodyComp.Body.SetAngle(0)
		bodyComp.Body.SetAngularVelocity(0)

		if input.UseTool {
			useTool(w, e, input, bodyComp, st)
		}
	})
}

func useTool(w *ecs.World, e ecs.Entity, input *component.Input, bodyComp *component.PhysicsBody, st *component.Statuses) {
	tool, ok := ecs.Get(w, e, component.ToolComponent.Kind())
	if !ok || tool.Cooldown > 0 {
		return
	}
	if tool.Style == hex.GrappleStyle && st.Has(hex.StatusNoGrapple) {
		return
	}

	pos := bodyComp.Body.Position()
	dx, dy := input.AimX-pos.X, input.AimY-pos.Y
	dist := math.Hypot(dx, dy)
	if dist < 1 {
		return
	}
	reach := math.Min(dist, tool.Range)
	tx, ty := pos.X+dx/dist*reach, pos.Y+dy/dist*reach

	switch tool.Style {
	case hex.GrappleStyle:
		if _, err := entity.NewAnchorAt(w, e, pos.X, pos.Y, tx, ty, anchorSpeed, tool.Pull, anchorFrames); err != nil {
			log.Printf("tool: %v", err)
			return
		}
	case teleportStyle:
		bodyComp.Body.SetPosition(cp.Vector{X: tx, Y: ty})
		bodyComp.Body.SetVelocityVector(cp.Vector{})
	default:
		return
	}
	tool.Cooldown = tool.CooldownTicks
}
