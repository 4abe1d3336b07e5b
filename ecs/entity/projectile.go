package entity

import (
	"image/color"

	"github.com/milk9111/bosshex/common"
	"github.com/milk9111/bosshex/ecs"
	"github.com/milk9111/bosshex/ecs/component"
	"github.com/milk9111/bosshex/hex"
)

const (
	meteorRadius = 8
	boltRadius   = 5
)

var (
	meteorColor = color.NRGBA{R: 255, G: 140, B: 40, A: 255}
	boltColor   = color.NRGBA{R: 240, G: 240, B: 140, A: 255}
	magicColor  = color.NRGBA{R: 190, G: 110, B: 255, A: 255}
)

// NewMeteor spawns one meteor. Meteors hurt participants and bosses alike and
// fly in a straight line until they hit something or expire.
func NewMeteor(w *ecs.World, m hex.MeteorSpawn, ttl int) (ecs.Entity, error) {
	return buildEntity(w, "meteor",
		with(component.MeteorTagComponent.Kind(), &component.MeteorTag{}),
		with(component.TransformComponent.Kind(), &component.Transform{X: m.X, Y: m.Y, ScaleX: 1, ScaleY: 1, Rotation: -common.DegToRad(m.AngleDeg)}),
		with(component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Radius: meteorRadius, Mass: 1, Sensor: true}),
		with(component.GravityScaleComponent.Kind(), &component.GravityScale{Scale: 0, Sign: 1}),
		with(component.ProjectileComponent.Kind(), &component.Projectile{
			OwnerSlot:        hex.NoParticipant,
			From:             hex.SideHazard,
			Damage:           m.Damage,
			HitsParticipants: true,
			HitsBosses:       true,
			VX:               m.VX,
			VY:               m.VY,
		}),
		with(component.TTLComponent.Kind(), &component.TTL{Frames: ttl}),
		with(component.SpriteComponent.Kind(), &component.Sprite{Color: meteorColor, Width: meteorRadius * 2, Height: meteorRadius * 2, Circle: true}),
	)
}

// NewBolt spawns a participant's projectile heading along (vx, vy).
func NewBolt(w *ecs.World, owner ecs.Entity, slot int, x, y, vx, vy float64, weapon component.Weapon, ttl int) (ecs.Entity, error) {
	c := color.Color(boltColor)
	if weapon.Class == hex.DamageMagic {
		c = magicColor
	}
	return buildEntity(w, "bolt",
		with(component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1}),
		with(component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Radius: boltRadius, Mass: 0.1, Sensor: true}),
		with(component.GravityScaleComponent.Kind(), &component.GravityScale{Scale: 0, Sign: 1}),
		with(component.ProjectileComponent.Kind(), &component.Projectile{
			Owner:      uint64(owner),
			OwnerSlot:  slot,
			From:       hex.SideParticipant,
			Class:      weapon.Class,
			Damage:     weapon.Damage,
			HitsBosses: true,
			VX:         vx,
			VY:         vy,
		}),
		with(component.TTLComponent.Kind(), &component.TTL{Frames: ttl}),
		with(component.SpriteComponent.Kind(), &component.Sprite{Color: c, Width: boltRadius * 2, Height: boltRadius * 2, Circle: true}),
	)
}
