package prefabs

const ArenaSpecFile = "arena.yaml"

type ArenaSpec struct {
	Name         string            `yaml:"name"`
	Width        float64           `yaml:"width"`
	Height       float64           `yaml:"height"`
	FloorY       float64           `yaml:"floor_y"`
	Gravity      float64           `yaml:"gravity"`
	RespawnTicks int               `yaml:"respawn_ticks"`
	SummonTicks  int               `yaml:"summon_ticks"`
	Participants []ParticipantSpec `yaml:"participants"`
	Bosses       []BossSpec        `yaml:"bosses"`
}

type ParticipantSpec struct {
	Name        string     `yaml:"name"`
	Slot        int        `yaml:"slot"`
	X           float64    `yaml:"x"`
	Health      int        `yaml:"health"`
	Defense     int        `yaml:"defense"`
	MoveSpeed   float64    `yaml:"move_speed"`
	JumpSpeed   float64    `yaml:"jump_speed"`
	FlightTicks int        `yaml:"flight_ticks"`
	DoubleJumps int        `yaml:"double_jumps"`
	Bot         bool       `yaml:"bot"`
	Color       *YAMLColor `yaml:"color"`
	Weapon      WeaponSpec `yaml:"weapon"`
	Tool        ToolSpec   `yaml:"tool"`
}

type WeaponSpec struct {
	Class         string  `yaml:"class"`
	Damage        int     `yaml:"damage"`
	Range         float64 `yaml:"range"`
	Projectile    bool    `yaml:"projectile"`
	Speed         float64 `yaml:"speed"`
	CooldownTicks int     `yaml:"cooldown_ticks"`
}

type ToolSpec struct {
	Name          string  `yaml:"name"`
	Style         string  `yaml:"style"`
	Range         float64 `yaml:"range"`
	Pull          float64 `yaml:"pull"`
	CooldownTicks int     `yaml:"cooldown_ticks"`
}

type BossSpec struct {
	Type          int        `yaml:"type"`
	Name          string     `yaml:"name"`
	Health        int        `yaml:"health"`
	ContactDamage int        `yaml:"contact_damage"`
	Speed         float64    `yaml:"speed"`
	Width         float64    `yaml:"width"`
	Height        float64    `yaml:"height"`
	X             float64    `yaml:"x"`
	Y             float64    `yaml:"y"`
	Color         *YAMLColor `yaml:"color"`
}

func LoadArenaSpec(name string) (ArenaSpec, error) {
	if name == "" {
		name = ArenaSpecFile
	}
	return LoadSpec[ArenaSpec](name)
}
