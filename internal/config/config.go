// Package config provides YAML-based configuration loading and validation
// for the game. All gameplay tunables live here as one structure.
package config

// Config contains every tunable constant for the game.
type Config struct {
	Playfield  PlayfieldConfig  `yaml:"playfield"`
	Bird       BirdConfig       `yaml:"bird"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	Ground     GroundConfig     `yaml:"ground"`
	Simulation SimulationConfig `yaml:"simulation"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Particles  ParticleConfig   `yaml:"particles"`
	Debug      DebugConfig      `yaml:"debug"`
}

// PlayfieldConfig defines the virtual pixel space the simulation runs in.
// The terminal renderer scales this space onto character cells, so gameplay
// is identical regardless of terminal size.
type PlayfieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BirdConfig defines the controlled entity's physics and hitbox.
type BirdConfig struct {
	X              float64 `yaml:"x"`                // Fixed horizontal position
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	Gravity        float64 `yaml:"gravity"`          // Downward accel per reference frame
	JumpImpulse    float64 `yaml:"jump_impulse"`     // Velocity set on jump (negative = up)
	MaxFallSpeed   float64 `yaml:"max_fall_speed"`   // Terminal velocity
	HitboxPadding  float64 `yaml:"hitbox_padding"`   // Inward shrink before collision tests
	JumpCooldownMS int     `yaml:"jump_cooldown_ms"` // Input-layer debounce between jumps
	WingRate       float64 `yaml:"wing_rate"`        // Wing animation advance per reference frame
}

// ObstacleConfig defines pipe dimensions, motion, and spawn cadence.
type ObstacleConfig struct {
	PipeWidth     float64 `yaml:"pipe_width"`
	BaseGap       float64 `yaml:"base_gap"`
	MinPipeHeight float64 `yaml:"min_pipe_height"`
	BaseSpeed     float64 `yaml:"base_speed"`     // Leftward motion per reference frame
	SpawnInterval int     `yaml:"spawn_interval"` // In simulation ticks, not wall-clock
	SpawnMargin   float64 `yaml:"spawn_margin"`   // Extra clearance below the gap
}

// GroundConfig defines the ground band at the bottom of the playfield.
type GroundConfig struct {
	Height      float64 `yaml:"height"`
	ScrollSpeed float64 `yaml:"scroll_speed"` // Per reference frame
}

// SimulationConfig defines the timing model.
type SimulationConfig struct {
	TargetFPS       int     `yaml:"target_fps"`
	MaxFrameDeltaMS int     `yaml:"max_frame_delta_ms"` // Clamp for stalls/backgrounding
	RotationEasing  float64 `yaml:"rotation_easing"`
}

// DifficultyConfig defines how difficulty ramps with score.
type DifficultyConfig struct {
	Enabled               bool    `yaml:"enabled"`
	SpeedIncreasePerScore float64 `yaml:"speed_increase_per_score"`
	MaxSpeedMultiplier    float64 `yaml:"max_speed_multiplier"`
	GapDecreasePerScore   float64 `yaml:"gap_decrease_per_score"`
	MinGap                float64 `yaml:"min_gap"`
}

// ParticleConfig defines the cosmetic particle buffer.
type ParticleConfig struct {
	MaxCount       int `yaml:"max_count"` // Global cap, oldest evicted first
	JumpBurst      int `yaml:"jump_burst"`
	ScoreBurst     int `yaml:"score_burst"`
	CollisionBurst int `yaml:"collision_burst"`
	ImpactBurst    int `yaml:"impact_burst"`
}

// DebugConfig defines debug visualization options.
type DebugConfig struct {
	ShowHitboxes bool `yaml:"show_hitboxes"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ApplyPreset modifies the difficulty section based on a named preset.
// "fixed" disables the ramp entirely; an empty preset leaves config as-is.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	case DifficultyEasy:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.SpeedIncreasePerScore = 0.01
		cfg.Difficulty.GapDecreasePerScore = 1.0
	case DifficultyNormal:
		cfg.Difficulty.Enabled = true
	case DifficultyHard:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.SpeedIncreasePerScore = 0.04
		cfg.Difficulty.GapDecreasePerScore = 3.0
		cfg.Difficulty.MinGap = 90
	}
}
