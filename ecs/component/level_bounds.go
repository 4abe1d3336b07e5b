package component

// LevelBounds stores the arena rectangle. FloorY is the walkable floor.
type LevelBounds struct {
	Width  float64
	Height float64
	FloorY float64
}

var LevelBoundsComponent = NewComponent[LevelBounds]()
