package component

// Transform is the entity's centre in world space. ScaleX/ScaleY multiply the
// rendered and collided size.
type Transform struct {
	X        float64
	Y        float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
}

// Scale returns the uniform scale, treating an unset transform as 1.
func (t *Transform) Scale() float64 {
	if t == nil || t.ScaleX == 0 {
		return 1
	}
	return t.ScaleX
}

var TransformComponent = NewComponent[Transform]()
