package component

import "github.com/jakecoffman/cp"

// PhysicsBody stores Chipmunk2D runtime data and collider configuration.
// Sensor bodies report overlaps without pushing anything.
type PhysicsBody struct {
	Body       *cp.Body
	Shape      *cp.Shape
	Width      float64
	Height     float64
	Radius     float64
	Mass       float64
	Friction   float64
	Elasticity float64
	Static     bool
	Sensor     bool

	// Scale is the transform scale the shape was built at. A change
	// rebuilds the shape.
	Scale float64
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
