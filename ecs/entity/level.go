package entity

import (
	"fmt"

	"github.com/milk9111/bosshex/ecs"
	"github.com/milk9111/bosshex/ecs/component"
	"github.com/milk9111/bosshex/prefabs"
)

const (
	defaultArenaWidth  = 1280
	defaultArenaHeight = 720
)

// LoadArenaToWorld creates the arena bounds and every participant in spec.
// Bosses are left to the summoner.
func LoadArenaToWorld(w *ecs.World, spec prefabs.ArenaSpec) error {
	if w == nil {
		return fmt.Errorf("arena: world is nil")
	}
	bounds := ArenaBounds(spec)
	if _, err := buildEntity(w, "arena", with(component.LevelBoundsComponent.Kind(), &bounds)); err != nil {
		return err
	}
	for _, p := range spec.Participants {
		if _, err := NewParticipant(w, p, bounds); err != nil {
			return err
		}
	}
	return nil
}

// ArenaBounds fills in the defaults of an arena spec.
func ArenaBounds(spec prefabs.ArenaSpec) component.LevelBounds {
	b := component.LevelBounds{Width: spec.Width, Height: spec.Height, FloorY: spec.FloorY}
	if b.Width <= 0 {
		b.Width = defaultArenaWidth
	}
	if b.Height <= 0 {
		b.Height = defaultArenaHeight
	}
	if b.FloorY <= 0 || b.FloorY > b.Height {
		b.FloorY = b.Height
	}
	return b
}
