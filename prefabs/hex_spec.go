package prefabs

import (
	"fmt"

	"github.com/milk9111/bosshex/hex"
)

const HexSpecFile = "hexes.yaml"

type HexSpec struct {
	TicksPerSecond int `yaml:"ticks_per_second"`
	// category -> hex name -> eligible
	Catalog   map[string]map[string]bool `yaml:"catalog"`
	TimeLimit TimeLimitSpec              `yaml:"time_limit"`
	Gravity   GravitySpec                `yaml:"gravity"`
	Meteor    MeteorSpec                 `yaml:"meteor"`
	Effects   EffectSpec                 `yaml:"effects"`
}

type TimeLimitSpec struct {
	Seconds      float64     `yaml:"seconds"`
	LethalDamage int         `yaml:"lethal_damage"`
	DeathReason  string      `yaml:"death_reason"`
	Alerts       []AlertSpec `yaml:"alerts"`
}

type AlertSpec struct {
	Seconds float64 `yaml:"seconds"`
	Text    string  `yaml:"text"`
	Color   string  `yaml:"color"`
}

type GravitySpec struct {
	MinSeconds   float64 `yaml:"min_seconds"`
	OneInSeconds float64 `yaml:"one_in_seconds"`
	MaxSeconds   float64 `yaml:"max_seconds"`
	Text         string  `yaml:"text"`
}

type MeteorSpec struct {
	WindowSeconds   float64 `yaml:"window_seconds"`
	Scaling         float64 `yaml:"scaling"`
	ArcDegrees      float64 `yaml:"arc_degrees"`
	SpreadX         float64 `yaml:"spread_x"`
	PerCluster      int     `yaml:"per_cluster"`
	Spacing         float64 `yaml:"spacing"`
	SpacingJitter   float64 `yaml:"spacing_jitter"`
	PerpJitter      float64 `yaml:"perp_jitter"`
	AngleJitter     float64 `yaml:"angle_jitter"`
	SpawnHeight     float64 `yaml:"spawn_height"`
	SpeedMin        float64 `yaml:"speed_min"`
	SpeedRange      float64 `yaml:"speed_range"`
	Damage          int     `yaml:"damage"`
	BossScale       float64 `yaml:"boss_scale"`
	TTLSeconds      float64 `yaml:"ttl_seconds"`
	IntensityScript string  `yaml:"intensity_script"`
}

type EffectSpec struct {
	StatusTicks        int     `yaml:"status_ticks"`
	TinyScale          float64 `yaml:"tiny_scale"`
	TinySpeedCap       float64 `yaml:"tiny_speed_cap"`
	TinySpeedSmoothing float64 `yaml:"tiny_speed_smoothing"`
	HugeScale          float64 `yaml:"huge_scale"`
	SluggishFactor     float64 `yaml:"sluggish_factor"`
	SwiftFactor        float64 `yaml:"swift_factor"`
	FrailFactor        float64 `yaml:"frail_factor"`
	GlassCannonFactor  float64 `yaml:"glass_cannon_factor"`
	HealerShare        float64 `yaml:"healer_share"`
}

func LoadHexSpec() (HexSpec, error) {
	return LoadSpec[HexSpec](HexSpecFile)
}

// BuildCatalog applies the eligibility overrides to the default catalog.
func (s HexSpec) BuildCatalog() (*hex.Catalog, error) {
	c := hex.DefaultCatalog()
	for catName, entries := range s.Catalog {
		cat, err := hex.ParseCategory(catName)
		if err != nil {
			return nil, fmt.Errorf("prefabs: %s: %w", HexSpecFile, err)
		}
		for name, eligible := range entries {
			if err := c.SetEligible(cat, name, eligible); err != nil {
				return nil, fmt.Errorf("prefabs: %s: %w", HexSpecFile, err)
			}
		}
	}
	return c, nil
}

// BuildTuning starts from the defaults for the tick rate and overrides every
// field hexes.yaml sets.
func (s HexSpec) BuildTuning() hex.Tuning {
	t := hex.TuningFor(s.TicksPerSecond)
	ticks := func(seconds float64) int { return int(seconds*float64(t.TicksPerSecond) + 0.5) }

	setInt(&t.TimeLimitTicks, ticks(s.TimeLimit.Seconds))
	setInt(&t.LethalDamage, s.TimeLimit.LethalDamage)
	setString(&t.DeathReason, s.TimeLimit.DeathReason)
	if len(s.TimeLimit.Alerts) > 0 {
		t.TimeLimitAlerts = t.TimeLimitAlerts[:0:0]
		for _, a := range s.TimeLimit.Alerts {
			color := a.Color
			if color == "" {
				color = hex.ColorYellow
			}
			t.TimeLimitAlerts = append(t.TimeLimitAlerts, hex.Threshold{Ticks: ticks(a.Seconds), Text: a.Text, Color: color})
		}
	}

	setInt(&t.GravityMinTicks, ticks(s.Gravity.MinSeconds))
	setInt(&t.GravityOneIn, ticks(s.Gravity.OneInSeconds))
	setInt(&t.GravityMaxTicks, ticks(s.Gravity.MaxSeconds))
	setString(&t.GravityText, s.Gravity.Text)

	m := s.Meteor
	setInt(&t.MeteorWindowTicks, ticks(m.WindowSeconds))
	setFloat(&t.MeteorScaling, m.Scaling)
	setFloat(&t.MeteorArcDeg, m.ArcDegrees)
	setFloat(&t.MeteorSpreadX, m.SpreadX)
	setInt(&t.MeteorPerCluster, m.PerCluster)
	setFloat(&t.MeteorSpacing, m.Spacing)
	setFloat(&t.MeteorSpacingJitter, m.SpacingJitter)
	setFloat(&t.MeteorPerpJitter, m.PerpJitter)
	setFloat(&t.MeteorAngleJitter, m.AngleJitter)
	setFloat(&t.MeteorSpawnHeight, m.SpawnHeight)
	setFloat(&t.MeteorSpeedMin, m.SpeedMin)
	setFloat(&t.MeteorSpeedRange, m.SpeedRange)
	setInt(&t.MeteorDamage, m.Damage)
	setFloat(&t.MeteorBossScale, m.BossScale)
	setInt(&t.MeteorTTL, ticks(m.TTLSeconds))

	e := s.Effects
	setInt(&t.StatusTicks, e.StatusTicks)
	setFloat(&t.TinyScale, e.TinyScale)
	setFloat(&t.TinySpeedCap, e.TinySpeedCap)
	setFloat(&t.TinySpeedSmoothing, e.TinySpeedSmoothing)
	setFloat(&t.HugeScale, e.HugeScale)
	setFloat(&t.SluggishFactor, e.SluggishFactor)
	setFloat(&t.SwiftFactor, e.SwiftFactor)
	setFloat(&t.FrailFactor, e.FrailFactor)
	setFloat(&t.GlassCannonFactor, e.GlassCannonFactor)
	setFloat(&t.HealerShare, e.HealerShare)
	return t
}

func setInt(dst *int, v int) {
	if v > 0 {
		*dst = v
	}
}

func setFloat(dst *float64, v float64) {
	if v > 0 {
		*dst = v
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
