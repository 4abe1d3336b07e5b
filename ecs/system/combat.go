package system

import (
	"fmt"
	"log"
	"math"

	"github.com/milk9111/bosshex/ecs"
	"github.com/milk9111/bosshex/ecs/component"
	"github.com/milk9111/bosshex/ecs/entity"
	"github.com/milk9111/bosshex/hex"
)

const boltFrames = 120

// CombatSystem fires participant weapons. Projectile weapons launch a bolt
// toward the aim point; the rest strike every boss within range.
type CombatSystem struct{}

func NewCombatSystem() *CombatSystem { return &CombatSystem{} }

func (s *CombatSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach4(w,
		component.ParticipantComponent.Kind(),
		component.InputComponent.Kind(),
		component.WeaponComponent.Kind(),
		component.TransformComponent.Kind(),
		func(e ecs.Entity, p *component.Participant, input *component.Input, weapon *component.Weapon, t *component.Transform) {
			if !input.Attack || ecs.Has(w, e, component.CooldownComponent.Kind()) || !participantAlive(w, e) {
				return
			}

			if weapon.Projectile {
				s.fire(w, e, p, input, weapon, t)
			} else {
				s.strike(w, e, p, weapon, t)
			}

			if weapon.CooldownTicks > 0 {
				_ = ecs.Add(w, e, component.CooldownComponent.Kind(), &component.Cooldown{Frames: weapon.CooldownTicks})
			}
		})
}

func (s *CombatSystem) fire(w *ecs.World, e ecs.Entity, p *component.Participant, input *component.Input, weapon *component.Weapon, t *component.Transform) {
	dx, dy := input.AimX-t.X, input.AimY-t.Y
	dist := math.Hypot(dx, dy)
	if dist < 1 {
		dx, dy, dist = 1, 0, 1
	}
	speed := weapon.Speed
	if speed <= 0 {
		speed = 12
	}
	if _, err := entity.NewBolt(w, e, p.Slot, t.X, t.Y, dx/dist*speed, dy/dist*speed, *weapon, boltFrames); err != nil {
		log.Printf("combat: %v", err)
	}
}

func (s *CombatSystem) strike(w *ecs.World, e ecs.Entity, p *component.Participant, weapon *component.Weapon, t *component.Transform) {
	ecs.ForEach2(w, component.BossComponent.Kind(), component.TransformComponent.Kind(), func(be ecs.Entity, boss *component.Boss, bt *component.Transform) {
		if math.Hypot(bt.X-t.X, bt.Y-t.Y) > weapon.Range+bossReach(w, be) {
			return
		}
		queueHit(w, be, component.HitEvent{
			Source: uint64(e),
			Hit: hex.Hit{
				Amount: float64(weapon.Damage),
				Class:  weapon.Class,
				From:   hex.SideParticipant,
				FromID: p.Slot,
				To:     hex.SideBoss,
			},
			Reason: fmt.Sprintf("%s struck %s", p.Name, boss.Name),
		})
	})
}

// bossReach is half the boss's scaled width.
func bossReach(w *ecs.World, e ecs.Entity) float64 {
	body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
	if !ok {
		return 0
	}
	scale := 1.0
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		scale = t.Scale()
	}
	return body.Width * scale / 2
}
