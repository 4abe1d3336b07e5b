package entity

import (
	"image/color"

	"github.com/milk9111/bosshex/ecs"
	"github.com/milk9111/bosshex/ecs/component"
)

const anchorSize = 6

var anchorColor = color.NRGBA{R: 200, G: 200, B: 200, A: 255}

// NewAnchorAt launches a grapple hook from (x, y) toward the target.
func NewAnchorAt(w *ecs.World, owner ecs.Entity, x, y, targetX, targetY, speed, pull float64, ttl int) (ecs.Entity, error) {
	return buildEntity(w, "anchor",
		with(component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1}),
		with(component.AnchorComponent.Kind(), &component.Anchor{
			Owner:   uint64(owner),
			TargetX: targetX,
			TargetY: targetY,
			Speed:   speed,
			Pull:    pull,
		}),
		with(component.TTLComponent.Kind(), &component.TTL{Frames: ttl}),
		with(component.SpriteComponent.Kind(), &component.Sprite{Color: anchorColor, Width: anchorSize, Height: anchorSize}),
	)
}
