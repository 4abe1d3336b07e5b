package hex

// Announcement colors.
const (
	ColorYellow = "#ffff00"
	ColorOrange = "#ffa500"
	ColorRed    = "#ff0000"
	ColorPurple = "#b464ff"
	ColorGreen  = "#64ff64"
)

// Threshold is a remaining-ticks value at which the time limit announces.
type Threshold struct {
	Ticks int
	Text  string
	Color string
}

// Tuning holds every numeric knob of the hex engine.
type Tuning struct {
	TicksPerSecond int

	TimeLimitTicks  int
	TimeLimitAlerts []Threshold
	LethalDamage    int
	DeathReason     string // formatted with the participant name

	GravityMinTicks int
	GravityOneIn    int
	GravityMaxTicks int // 0 leaves the wait unbounded
	GravityText     string

	MeteorWindowTicks   int
	MeteorScaling       float64
	MeteorArcDeg        float64
	MeteorSpreadX       float64
	MeteorPerCluster    int
	MeteorSpacing       float64
	MeteorSpacingJitter float64
	MeteorPerpJitter    float64
	MeteorAngleJitter   float64
	MeteorSpawnHeight   float64
	MeteorSpeedMin      float64
	MeteorSpeedRange    float64
	MeteorDamage        int
	MeteorBossScale     float64
	MeteorTTL           int

	StatusTicks        int
	TinyScale          float64
	TinySpeedCap       float64
	TinySpeedSmoothing float64
	HugeScale          float64
	SluggishFactor     float64
	SwiftFactor        float64
	FrailFactor        float64
	GlassCannonFactor  float64
	HealerShare        float64
}

// DefaultTuning returns the shipped values at 60 ticks per second.
func DefaultTuning() Tuning {
	return TuningFor(60)
}

// TuningFor derives tick-based defaults from a tick rate.
func TuningFor(tps int) Tuning {
	if tps <= 0 {
		tps = 60
	}
	return Tuning{
		TicksPerSecond: tps,

		TimeLimitTicks: 180 * tps,
		TimeLimitAlerts: []Threshold{
			{Ticks: 120 * tps, Text: "2 minutes remaining!", Color: ColorYellow},
			{Ticks: 60 * tps, Text: "1 minute remaining!", Color: ColorYellow},
			{Ticks: 30 * tps, Text: "30 seconds remaining!", Color: ColorOrange},
			{Ticks: 10 * tps, Text: "10 seconds!", Color: ColorRed},
		},
		LethalDamage: 9999,
		DeathReason:  "%s ran out of time.",

		GravityMinTicks: 5 * tps,
		GravityOneIn:    5 * tps,
		GravityText:     "Gravity shifts!",

		MeteorWindowTicks:   3 * tps,
		MeteorScaling:       0.35,
		MeteorArcDeg:        120,
		MeteorSpreadX:       1600,
		MeteorPerCluster:    5,
		MeteorSpacing:       40,
		MeteorSpacingJitter: 10,
		MeteorPerpJitter:    15,
		MeteorAngleJitter:   1,
		MeteorSpawnHeight:   700,
		MeteorSpeedMin:      14,
		MeteorSpeedRange:    4,
		MeteorDamage:        30,
		MeteorBossScale:     0.1,
		MeteorTTL:           4 * tps,

		StatusTicks:        2,
		TinyScale:          0.5,
		TinySpeedCap:       24,
		TinySpeedSmoothing: 0.05,
		HugeScale:          2.0,
		SluggishFactor:     0.75,
		SwiftFactor:        1.25,
		FrailFactor:        0.8,
		GlassCannonFactor:  1.5,
		HealerShare:        0.5,
	}
}
