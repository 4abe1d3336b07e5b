package system

import (
	"github.com/milk9111/bosshex/ecs"
	"github.com/milk9111/bosshex/ecs/component"
	"github.com/milk9111/bosshex/hex"
)

// StatusSystem derives stats from the active statuses, then counts them down.
type StatusSystem struct{}

func NewStatusSystem() *StatusSystem {
	return &StatusSystem{}
}

func (s *StatusSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.StatusesComponent.Kind(), func(e ecs.Entity, st *component.Statuses) {
		if h, ok := ecs.Get(w, e, component.HealthComponent.Kind()); ok && !h.Dead {
			limit := h.BaseMax
			if st.Has(hex.StatusFrail) {
				limit = int(float64(h.BaseMax) * st.Factor(hex.StatusFrail))
			}
			if limit != h.Max {
				h.SetMax(limit)
			}
		}
		st.Tick()
	})
}
