package hex

// BossType identifies a kind of boss. Hexes persist per type, not per entity.
type BossType int

// Registry remembers the hexes rolled for each boss type and which encounter
// is running. Only the authoritative simulation drives its transitions.
type Registry struct {
	catalog *Catalog
	tuning  Tuning
	rng     Rand

	persisted   map[BossType]*ActiveSet
	current     *ActiveSet
	currentBoss BossType
	hasCurrent  bool
}

func NewRegistry(c *Catalog, t Tuning, r Rand) *Registry {
	if c == nil {
		c = DefaultCatalog()
	}
	return &Registry{
		catalog:   c,
		tuning:    t,
		rng:       r,
		persisted: make(map[BossType]*ActiveSet),
	}
}

// OnBossSpawn makes boss the current encounter. The persisted set is reused
// when present; otherwise a fresh one is rolled and stored. Calling it again
// for the running encounter is a no-op. The returned flag reports a fresh roll.
func (g *Registry) OnBossSpawn(boss BossType, roster Roster) (*ActiveSet, bool) {
	if g.hasCurrent && g.currentBoss == boss && g.current.HasAny() {
		return g.current, false
	}
	g.currentBoss = boss
	g.hasCurrent = true

	if set, ok := g.persisted[boss]; ok {
		g.current = set
		return set, false
	}

	set := RollEncounter(g.catalog, g.tuning, roster, g.rng)
	g.persisted[boss] = set
	g.current = set
	return set, true
}

// OnBossDefeated forgets the boss's hexes so the next fight rolls again.
func (g *Registry) OnBossDefeated(boss BossType) {
	delete(g.persisted, boss)
	if g.hasCurrent && g.currentBoss == boss {
		g.clearCurrent()
	}
}

// OnAllBossesDespawned ends the running encounter but keeps every persisted set.
func (g *Registry) OnAllBossesDespawned() {
	g.clearCurrent()
}

// OnWorldLoad drops everything.
func (g *Registry) OnWorldLoad() {
	g.persisted = make(map[BossType]*ActiveSet)
	g.clearCurrent()
}

func (g *Registry) clearCurrent() {
	g.current = nil
	g.currentBoss = 0
	g.hasCurrent = false
}

// Current returns the running encounter's set, or an empty set when idle.
// The running set is the persisted instance itself.
func (g *Registry) Current() *ActiveSet {
	if g == nil || g.current == nil {
		return NewActiveSet()
	}
	return g.current
}

func (g *Registry) CurrentBoss() (BossType, bool) {
	return g.currentBoss, g.hasCurrent
}

func (g *Registry) Persisted(boss BossType) (*ActiveSet, bool) {
	set, ok := g.persisted[boss]
	return set, ok
}

func (g *Registry) Len() int {
	return len(g.persisted)
}

// SetCatalog swaps the catalog used for future rolls.
func (g *Registry) SetCatalog(c *Catalog) {
	if c != nil {
		g.catalog = c
	}
}

func (g *Registry) SetTuning(t Tuning) {
	g.tuning = t
}
