package system

import (
	"math"

	"github.com/milk9111/bosshex/ecs"
	"github.com/milk9111/bosshex/ecs/component"
	"github.com/milk9111/bosshex/hex"
)

const (
	botJumpOneIn = 90
	botToolOneIn = 240
)

// BotInputSystem drives participants that no one controls. Bots keep inside
// weapon range of the nearest boss and attack whenever they can.
type BotInputSystem struct {
	rng hex.Rand
}

func NewBotInputSystem(rng hex.Rand) *BotInputSystem {
	return &BotInputSystem{rng: rng}
}

func (s *BotInputSystem) Update(w *ecs.World) {
	if s == nil || w == nil || s.rng == nil {
		return
	}

	ecs.ForEach4(w,
		component.BotTagComponent.Kind(),
		component.InputComponent.Kind(),
		component.TransformComponent.Kind(),
		component.WeaponComponent.Kind(),
		func(e ecs.Entity, _ *component.BotTag, input *component.Input, t *component.Transform, weapon *component.Weapon) {
			*input = component.Input{}
			bx, by, ok := nearestBoss(w, t.X, t.Y)
			if !ok {
				return
			}

			dx := bx - t.X
			dist := math.Hypot(dx, by-t.Y)
			keep := weapon.Range * 0.8
			switch {
			case dist > keep && dx < 0:
				input.MoveX = -1
			case dist > keep:
				input.MoveX = 1
			case dist < keep*0.5 && weapon.Projectile:
				// back off to stay out of contact
				input.MoveX = -math.Copysign(1, dx)
			}

			input.AimX, input.AimY = bx, by
			input.Attack = dist <= weapon.Range
			input.JumpPressed = hex.OneIn(s.rng, botJumpOneIn)
			input.Jump = input.JumpPressed
			input.UseTool = hex.OneIn(s.rng, botToolOneIn)
		})
}

func nearestBoss(w *ecs.World, x, y float64) (float64, float64, bool) {
	bestDist := math.Inf(1)
	var bx, by float64
	ecs.ForEach2(w, component.BossComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, _ *component.Boss, t *component.Transform) {
		if d := math.Hypot(t.X-x, t.Y-y); d < bestDist {
			bestDist, bx, by = d, t.X, t.Y
		}
	})
	return bx, by, !math.IsInf(bestDist, 1)
}
