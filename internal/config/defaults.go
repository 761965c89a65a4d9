package config

import (
	_ "embed"
)

//go:embed defaults/skyflap.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
// Kept in sync with defaults/skyflap.yaml; used as a last-resort fallback
// if the embedded YAML somehow fails to parse.
func Default() Config {
	return Config{
		Playfield: PlayfieldConfig{
			Width:  400,
			Height: 600,
		},
		Bird: BirdConfig{
			X:              80,
			Width:          34,
			Height:         24,
			Gravity:        0.6,
			JumpImpulse:    -10.0,
			MaxFallSpeed:   10.0,
			HitboxPadding:  4,
			JumpCooldownMS: 100,
			WingRate:       0.2,
		},
		Obstacles: ObstacleConfig{
			PipeWidth:     60,
			BaseGap:       150,
			MinPipeHeight: 50,
			BaseSpeed:     3.0,
			SpawnInterval: 120,
			SpawnMargin:   20,
		},
		Ground: GroundConfig{
			Height:      80,
			ScrollSpeed: 3.0,
		},
		Simulation: SimulationConfig{
			TargetFPS:       60,
			MaxFrameDeltaMS: 100,
			RotationEasing:  0.15,
		},
		Difficulty: DifficultyConfig{
			Enabled:               true,
			SpeedIncreasePerScore: 0.02,
			MaxSpeedMultiplier:    2.0,
			GapDecreasePerScore:   2.0,
			MinGap:                100,
		},
		Particles: ParticleConfig{
			MaxCount:       120,
			JumpBurst:      5,
			ScoreBurst:     8,
			CollisionBurst: 3,
			ImpactBurst:    10,
		},
		Debug: DebugConfig{
			ShowHitboxes: false,
		},
	}
}
