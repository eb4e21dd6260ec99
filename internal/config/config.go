// Package config provides YAML/TOML-based game configuration loading,
// validation and difficulty presets for the runner.
package config

// TrexConfig contains all configuration for the Topsy Turvey T-Rex runner.
type TrexConfig struct {
	World     TrexWorld     `yaml:"world" toml:"world"`
	Player    TrexPlayer    `yaml:"player" toml:"player"`
	Jump      TrexJump      `yaml:"jump" toml:"jump"`
	Obstacles TrexObstacles `yaml:"obstacles" toml:"obstacles"`
	Collision TrexCollision `yaml:"collision" toml:"collision"`
	Score     TrexScore     `yaml:"score" toml:"score"`
	Clock     TrexClock     `yaml:"clock" toml:"clock"`
}

// TrexWorld defines the visible band and the obstacle entry/exit lines.
type TrexWorld struct {
	SpawnX     float64 `yaml:"spawn_x" toml:"spawn_x"`
	RecycleX   float64 `yaml:"recycle_x" toml:"recycle_x"`
	ViewLeft   float64 `yaml:"view_left" toml:"view_left"`
	ViewRight  float64 `yaml:"view_right" toml:"view_right"`
	ViewBottom float64 `yaml:"view_bottom" toml:"view_bottom"`
	ViewTop    float64 `yaml:"view_top" toml:"view_top"`
}

// TrexPlayer defines the player's baseline position and sprite size.
type TrexPlayer struct {
	X    float64 `yaml:"x" toml:"x"`
	Y    float64 `yaml:"y" toml:"y"`
	Size float64 `yaml:"size" toml:"size"`
}

// TrexJump defines the jump arc.
type TrexJump struct {
	HoldTicks int     `yaml:"hold_ticks" toml:"hold_ticks"`
	Step      float64 `yaml:"step" toml:"step"`
}

// TrexObstacles defines the per-kind obstacle pools.
type TrexObstacles struct {
	Short  ObstacleKindConfig `yaml:"short" toml:"short"`
	Long   ObstacleKindConfig `yaml:"long" toml:"long"`
	Flying ObstacleKindConfig `yaml:"flying" toml:"flying"`
}

// ObstacleKindConfig defines one obstacle kind's pool.
// Grace periods are drawn uniformly from [GraceMin, GraceMax) ticks.
type ObstacleKindConfig struct {
	Count    int     `yaml:"count" toml:"count"`
	Y        float64 `yaml:"y" toml:"y"`
	Size     float64 `yaml:"size" toml:"size"`
	Speed    float64 `yaml:"speed" toml:"speed"` // world units per second
	GraceMin int     `yaml:"grace_min" toml:"grace_min"`
	GraceMax int     `yaml:"grace_max" toml:"grace_max"`
}

// TrexCollision selects how many obstacles are tested per tick.
type TrexCollision struct {
	Policy string `yaml:"policy" toml:"policy"` // "all" or "first_per_kind"
}

// Collision policies.
const (
	CollisionAll          = "all"
	CollisionFirstPerKind = "first_per_kind"
)

// TrexScore defines score timer behaviour.
type TrexScore struct {
	ResetEveryRun bool `yaml:"reset_every_run" toml:"reset_every_run"`
}

// TrexClock bounds the host-supplied delta time.
type TrexClock struct {
	MaxDelta float64 `yaml:"max_delta" toml:"max_delta"`
}
