package component

import "image/color"

// Sprite is a flat debug shape. Hidden sprites are skipped by the renderer.
type Sprite struct {
	Color  color.Color
	Width  float64
	Height float64
	Circle bool
	Hidden bool
}

var SpriteComponent = NewComponent[Sprite]()
