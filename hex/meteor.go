package hex

import (
	"math"

	"github.com/milk9111/bosshex/common"
)

// ScheduledCluster is a meteor cluster waiting for its spawn tick.
type ScheduledCluster struct {
	SpawnTick    int
	Target       int
	BaseAngleDeg float64
	OffsetX      float64
}

// MeteorSpawn is one projectile to create. Angle 0 points straight down.
type MeteorSpawn struct {
	X, Y     float64
	VX, VY   float64
	AngleDeg float64
	Damage   int
	Target   int
}

// ClusterCount turns an expected value into a count: the integer part is
// guaranteed and the fraction is the chance of one more.
func ClusterCount(expected float64, r Rand) int {
	if expected <= 0 {
		return 0
	}
	n := int(expected)
	if Chance(r, expected-float64(n)) {
		n++
	}
	return n
}

// ScheduleWindow plans the clusters of the window that opens at fight tick start.
func ScheduleWindow(start int, targets []Participant, t Tuning, r Rand, curve IntensityCurve) []ScheduledCluster {
	if curve == nil {
		curve = DefaultCurve
	}
	seconds := float64(start) / float64(t.TicksPerSecond)
	n := ClusterCount(curve.Intensity(seconds)*t.MeteorScaling, r)

	var out []ScheduledCluster
	for i := 0; i < n; i++ {
		tick := start + r.Intn(max(1, t.MeteorWindowTicks))
		target, ok := pick(r, targets)
		if !ok {
			continue
		}
		out = append(out, ScheduledCluster{
			SpawnTick:    tick,
			Target:       target.ID,
			BaseAngleDeg: (r.Float64() - 0.5) * t.MeteorArcDeg,
			OffsetX:      (r.Float64() - 0.5) * t.MeteorSpreadX,
		})
	}
	return out
}

// ExpandCluster lays the cluster's meteors out in a loose line along the travel
// direction, above the target. Each meteor's aim leans against its sideways
// jitter so the line converges slightly.
func ExpandCluster(c ScheduledCluster, target Participant, t Tuning, r Rand) []MeteorSpawn {
	base := common.DegToRad(c.BaseAngleDeg)
	dirX, dirY := math.Sin(base), math.Cos(base)
	perpX, perpY := -dirY, dirX

	spawnX := target.X + c.OffsetX
	spawnY := target.Y - t.MeteorSpawnHeight

	out := make([]MeteorSpawn, 0, t.MeteorPerCluster)
	for i := 0; i < t.MeteorPerCluster; i++ {
		along := float64(i)*t.MeteorSpacing + Spread(r, t.MeteorSpacingJitter)
		perp := Spread(r, t.MeteorPerpJitter)

		adjust := 0.0
		if t.MeteorPerpJitter > 0 {
			adjust = -perp / t.MeteorPerpJitter * t.MeteorAngleJitter
		}
		angle := c.BaseAngleDeg + adjust
		rad := common.DegToRad(angle)
		speed := t.MeteorSpeedMin + r.Float64()*t.MeteorSpeedRange

		out = append(out, MeteorSpawn{
			X:        spawnX - dirX*along + perpX*perp,
			Y:        spawnY - dirY*along + perpY*perp,
			VX:       math.Sin(rad) * speed,
			VY:       math.Cos(rad) * speed,
			AngleDeg: angle,
			Damage:   t.MeteorDamage,
			Target:   target.ID,
		})
	}
	return out
}
