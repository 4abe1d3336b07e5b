package entity

import (
	"image/color"

	"github.com/milk9111/bosshex/ecs"
	"github.com/milk9111/bosshex/ecs/component"
	"github.com/milk9111/bosshex/hex"
	"github.com/milk9111/bosshex/prefabs"
)

var defaultBossColor = color.NRGBA{R: 220, G: 60, B: 60, A: 255}

// NewBoss spawns a boss from spec. A zero Y drops it onto the floor.
func NewBoss(w *ecs.World, spec prefabs.BossSpec, bounds component.LevelBounds) (ecs.Entity, error) {
	width, height := spec.Width, spec.Height
	if width <= 0 {
		width = 64
	}
	if height <= 0 {
		height = 64
	}
	x := spec.X
	if x == 0 {
		x = bounds.Width / 2
	}
	y := spec.Y
	if y == 0 {
		y = bounds.FloorY - height/2 - 1
	}
	health := spec.Health
	if health <= 0 {
		health = 500
	}

	return buildEntity(w, "boss "+spec.Name,
		with(component.BossComponent.Kind(), &component.Boss{
			Type:          hex.BossType(spec.Type),
			Name:          spec.Name,
			Speed:         spec.Speed,
			ContactDamage: spec.ContactDamage,
		}),
		with(component.BossRuntimeComponent.Kind(), &component.BossRuntime{}),
		with(component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1}),
		with(component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Width: width, Height: height, Mass: 10}),
		with(component.GravityScaleComponent.Kind(), &component.GravityScale{Scale: 1, Sign: 1}),
		with(component.HealthComponent.Kind(), &component.Health{BaseMax: health, Max: health, Current: health}),
		with(component.StatusesComponent.Kind(), &component.Statuses{}),
		with(component.SpriteComponent.Kind(), &component.Sprite{
			Color:  spec.Color.ColorOr(defaultBossColor),
			Width:  width,
			Height: height,
		}),
	)
}
