package entity

import (
	"fmt"

	"github.com/milk9111/bosshex/ecs"
	"github.com/milk9111/bosshex/ecs/component"
)

type componentBuildFn func(w *ecs.World, e ecs.Entity) error

// buildEntity creates an entity and runs every adder in order. A failing adder
// destroys the half-built entity.
func buildEntity(w *ecs.World, name string, adders ...componentBuildFn) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("%s: world is nil", name)
	}
	e := ecs.CreateEntity(w)
	for _, add := range adders {
		if err := add(w, e); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("%s: %w", name, err)
		}
	}
	return e, nil
}

// with adapts a component value into an adder.
func with[T any](kind component.ComponentKind[T], value *T) componentBuildFn {
	return func(w *ecs.World, e ecs.Entity) error {
		return ecs.Add(w, e, kind, value)
	}
}

func SetEntityTransform(w *ecs.World, e ecs.Entity, x, y, rotation float64) error {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok || t == nil {
		t = &component.Transform{ScaleX: 1, ScaleY: 1}
	}
	t.X = x
	t.Y = y
	t.Rotation = rotation
	return ecs.Add(w, e, component.TransformComponent.Kind(), t)
}
