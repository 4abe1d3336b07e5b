package entity

import (
	"image/color"

	"github.com/milk9111/bosshex/ecs"
	"github.com/milk9111/bosshex/ecs/component"
	"github.com/milk9111/bosshex/hex"
	"github.com/milk9111/bosshex/prefabs"
)

const (
	participantWidth  = 24
	participantHeight = 40
)

var defaultParticipantColor = color.NRGBA{R: 90, G: 170, B: 255, A: 255}

// NewParticipant places a participant on the floor at spec.X.
func NewParticipant(w *ecs.World, spec prefabs.ParticipantSpec, bounds component.LevelBounds) (ecs.Entity, error) {
	x := spec.X
	y := bounds.FloorY - participantHeight/2 - 1
	health := spec.Health
	if health <= 0 {
		health = 100
	}
	moveSpeed := spec.MoveSpeed
	if moveSpeed <= 0 {
		moveSpeed = 4
	}
	jumpSpeed := spec.JumpSpeed
	if jumpSpeed <= 0 {
		jumpSpeed = 9
	}

	adders := []componentBuildFn{
		with(component.ParticipantComponent.Kind(), &component.Participant{
			Slot:      spec.Slot,
			Name:      spec.Name,
			Active:    true,
			MoveSpeed: moveSpeed,
			JumpSpeed: jumpSpeed,
			SpawnX:    x,
			SpawnY:    y,
			Width:     participantWidth,
			Height:    participantHeight,
		}),
		with(component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1}),
		with(component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
			Width:    participantWidth,
			Height:   participantHeight,
			Mass:     1,
			Friction: 0,
		}),
		with(component.GravityScaleComponent.Kind(), &component.GravityScale{Scale: 1, Sign: 1}),
		with(component.HealthComponent.Kind(), &component.Health{BaseMax: health, Max: health, Current: health, Defense: spec.Defense}),
		with(component.InputComponent.Kind(), &component.Input{}),
		with(component.PlayerCollisionComponent.Kind(), &component.PlayerCollision{}),
		with(component.AbilitiesComponent.Kind(), &component.Abilities{
			MaxFlight:      spec.FlightTicks,
			Flight:         spec.FlightTicks,
			MaxDoubleJumps: spec.DoubleJumps,
			DoubleJumps:    spec.DoubleJumps,
		}),
		with(component.StatusesComponent.Kind(), &component.Statuses{}),
		with(component.SpriteComponent.Kind(), &component.Sprite{
			Color:  spec.Color.ColorOr(defaultParticipantColor),
			Width:  participantWidth,
			Height: participantHeight,
		}),
	}
	if spec.Weapon.Damage > 0 {
		adders = append(adders, with(component.WeaponComponent.Kind(), &component.Weapon{
			Class:         hex.ParseDamageClass(spec.Weapon.Class),
			Damage:        spec.Weapon.Damage,
			Range:         spec.Weapon.Range,
			Projectile:    spec.Weapon.Projectile,
			Speed:         spec.Weapon.Speed,
			CooldownTicks: spec.Weapon.CooldownTicks,
		}))
	}
	if spec.Tool.Style != "" {
		adders = append(adders, with(component.ToolComponent.Kind(), &component.Tool{
			Name:          spec.Tool.Name,
			Style:         spec.Tool.Style,
			Range:         spec.Tool.Range,
			Pull:          spec.Tool.Pull,
			CooldownTicks: spec.Tool.CooldownTicks,
		}))
	}
	if spec.Bot {
		adders = append(adders, with(component.BotTagComponent.Kind(), &component.BotTag{}))
	} else {
		adders = append(adders, with(component.PlayerTagComponent.Kind(), &component.PlayerTag{}))
	}
	return buildEntity(w, "participant "+spec.Name, adders...)
}
