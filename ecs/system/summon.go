package system

import (
	"log"

	"github.com/milk9111/bosshex/ecs"
	"github.com/milk9111/bosshex/ecs/component"
	"github.com/milk9111/bosshex/ecs/entity"
	"github.com/milk9111/bosshex/hex"
	"github.com/milk9111/bosshex/prefabs"
)

const defaultSummonFrames = 240

// SummonSystem brings bosses into an empty arena. A boss that left without
// being defeated comes back with the same hexes; a defeated one makes way for
// the next boss in the arena spec.
type SummonSystem struct {
	bosses   []prefabs.BossSpec
	registry *hex.Registry
	frames   int

	wait     int
	index    int
	summoned bool
}

func NewSummonSystem(bosses []prefabs.BossSpec, registry *hex.Registry, frames int) *SummonSystem {
	if frames <= 0 {
		frames = defaultSummonFrames
	}
	return &SummonSystem{bosses: bosses, registry: registry, frames: frames, wait: frames}
}

func (s *SummonSystem) Update(w *ecs.World) {
	if s == nil || w == nil || len(s.bosses) == 0 {
		return
	}
	if ecs.Count(w, component.BossComponent.Kind()) > 0 {
		s.wait = s.frames
		return
	}
	if len(buildRoster(w).Valid()) == 0 {
		return
	}
	if s.wait > 0 {
		s.wait--
		return
	}

	if s.summoned && s.registry != nil {
		if _, ok := s.registry.Persisted(hex.BossType(s.bosses[s.index].Type)); !ok {
			s.index = (s.index + 1) % len(s.bosses)
		}
	}

	boundsEnt, ok := ecs.First(w, component.LevelBoundsComponent.Kind())
	if !ok {
		return
	}
	bounds, _ := ecs.Get(w, boundsEnt, component.LevelBoundsComponent.Kind())
	spec := s.bosses[s.index]
	if _, err := entity.NewBoss(w, spec, *bounds); err != nil {
		log.Printf("summon: %v", err)
		return
	}
	s.summoned = true
	s.wait = s.frames
	log.Printf("summon: %s enters the arena", spec.Name)
}
