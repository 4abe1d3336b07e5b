package system

import (
	"log"

	"github.com/milk9111/bosshex/ecs"
	"github.com/milk9111/bosshex/ecs/component"
	"github.com/milk9111/bosshex/ecs/entity"
	"github.com/milk9111/bosshex/hex"
)

// HexHazardSystem advances the timed hexes of the running encounter against
// the world.
type HexHazardSystem struct {
	source        HexSource
	scheduler     *hex.Scheduler
	tuning        hex.Tuning
	authoritative bool
}

func NewHexHazardSystem(source HexSource, scheduler *hex.Scheduler, tuning hex.Tuning, authoritative bool) *HexHazardSystem {
	return &HexHazardSystem{source: source, scheduler: scheduler, tuning: tuning, authoritative: authoritative}
}

func (s *HexHazardSystem) SetTuning(t hex.Tuning) { s.tuning = t }

func (s *HexHazardSystem) Update(w *ecs.World) {
	if s == nil || w == nil || s.scheduler == nil {
		return
	}
	s.scheduler.Advance(currentSet(s.source), &worldHost{w: w, sys: s})
}

// worldHost exposes the world to the scheduler for one tick.
type worldHost struct {
	w   *ecs.World
	sys *HexHazardSystem
}

func (h *worldHost) Authoritative() bool { return h.sys.authoritative }

func (h *worldHost) Roster() hex.Roster { return buildRoster(h.w) }

func (h *worldHost) Kill(id, damage int, reason string) {
	e, ok := participantBySlot(h.w, id)
	if !ok {
		return
	}
	health, ok := ecs.Get(h.w, e, component.HealthComponent.Kind())
	if !ok {
		return
	}
	if health.ApplyDamage(damage, reason) {
		h.w.Events().Push(ecs.Event{Type: ecs.EventParticipantDied, Data: reason})
	}
	_ = ecs.Add(h.w, e, component.HealthComponent.Kind(), health)
}

func (h *worldHost) FlipGravity(id int) {
	e, ok := participantBySlot(h.w, id)
	if !ok {
		return
	}
	g, ok := ecs.Get(h.w, e, component.GravityScaleComponent.Kind())
	if !ok {
		g = &component.GravityScale{Scale: 1, Sign: 1}
	}
	if g.Sign == 0 {
		g.Sign = 1
	}
	g.Sign = -g.Sign
	_ = ecs.Add(h.w, e, component.GravityScaleComponent.Kind(), g)
}

func (h *worldHost) Announce(a hex.Announcement) {
	h.w.Events().Push(ecs.Event{Type: ecs.EventHexAnnounce, Data: a})
}

func (h *worldHost) SpawnMeteor(m hex.MeteorSpawn) {
	if _, err := entity.NewMeteor(h.w, m, h.sys.tuning.MeteorTTL); err != nil {
		log.Printf("hex: spawn meteor: %v", err)
	}
}
