package component

// Health tracks hit points. BaseMax is the unmodified maximum; Max may be
// lowered by hexes while they last.
type Health struct {
	BaseMax     int
	Max         int
	Current     int
	Defense     int
	Dead        bool
	DeathReason string
}

// ApplyDamage subtracts amount and reports whether this hit was lethal.
func (h *Health) ApplyDamage(amount int, reason string) bool {
	if h == nil || h.Dead || amount <= 0 {
		return false
	}
	h.Current -= amount
	if h.Current > 0 {
		return false
	}
	h.Current = 0
	h.Dead = true
	h.DeathReason = reason
	return true
}

func (h *Health) Heal(amount int) {
	if h == nil || h.Dead || amount <= 0 {
		return
	}
	h.Current = min(h.Max, h.Current+amount)
}

// SetMax changes the maximum and clamps current health to it.
func (h *Health) SetMax(max int) {
	if max < 1 {
		max = 1
	}
	h.Max = max
	if h.Current > max {
		h.Current = max
	}
}

// Revive restores full health.
func (h *Health) Revive() {
	h.Dead = false
	h.DeathReason = ""
	h.Max = h.BaseMax
	h.Current = h.BaseMax
}

var HealthComponent = NewComponent[Health]()
