package hex

// TickGravity advances the flip accumulator and reports whether gravity flips
// this tick. Past the minimum delay every tick flips with chance 1/GravityOneIn;
// a non-zero NextGravityFlipAt forces the flip once reached.
func TickGravity(set *ActiveSet, t Tuning, r Rand) bool {
	if set == nil {
		return false
	}
	set.GravityFlipTicks++
	if set.GravityFlipTicks < t.GravityMinTicks {
		return false
	}
	forced := set.NextGravityFlipAt > 0 && set.GravityFlipTicks >= set.NextGravityFlipAt
	if !forced && !OneIn(r, t.GravityOneIn) {
		return false
	}
	set.GravityFlipTicks = 0
	return true
}
