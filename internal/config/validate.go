package config

import (
	"errors"
	"fmt"
)

// Validate checks the configuration for values the simulation cannot run
// with. It runs once at load time so every per-tick computation can assume
// already-valid state.
func (c Config) Validate() error {
	var errs []error

	if c.Playfield.Width <= 0 || c.Playfield.Height <= 0 {
		errs = append(errs, fmt.Errorf("playfield dimensions must be positive, got %gx%g",
			c.Playfield.Width, c.Playfield.Height))
	}
	if c.Bird.Width <= 0 || c.Bird.Height <= 0 {
		errs = append(errs, fmt.Errorf("bird dimensions must be positive, got %gx%g",
			c.Bird.Width, c.Bird.Height))
	}
	if c.Bird.Gravity <= 0 {
		errs = append(errs, fmt.Errorf("bird gravity must be positive, got %g", c.Bird.Gravity))
	}
	if c.Bird.JumpImpulse >= 0 {
		errs = append(errs, fmt.Errorf("bird jump_impulse must be negative (upward), got %g", c.Bird.JumpImpulse))
	}
	if c.Bird.MaxFallSpeed <= 0 {
		errs = append(errs, fmt.Errorf("bird max_fall_speed must be positive, got %g", c.Bird.MaxFallSpeed))
	}
	if c.Bird.HitboxPadding < 0 {
		errs = append(errs, fmt.Errorf("bird hitbox_padding must not be negative, got %g", c.Bird.HitboxPadding))
	}
	if 2*c.Bird.HitboxPadding >= c.Bird.Width || 2*c.Bird.HitboxPadding >= c.Bird.Height {
		errs = append(errs, fmt.Errorf("bird hitbox_padding %g leaves no hitbox for a %gx%g bird",
			c.Bird.HitboxPadding, c.Bird.Width, c.Bird.Height))
	}
	if c.Obstacles.PipeWidth <= 0 {
		errs = append(errs, fmt.Errorf("obstacle pipe_width must be positive, got %g", c.Obstacles.PipeWidth))
	}
	if c.Obstacles.BaseGap <= 0 {
		errs = append(errs, fmt.Errorf("obstacle base_gap must be positive, got %g", c.Obstacles.BaseGap))
	}
	if c.Obstacles.SpawnInterval <= 0 {
		errs = append(errs, fmt.Errorf("obstacle spawn_interval must be at least 1 tick, got %d", c.Obstacles.SpawnInterval))
	}
	if c.Obstacles.BaseSpeed <= 0 {
		errs = append(errs, fmt.Errorf("obstacle base_speed must be positive, got %g", c.Obstacles.BaseSpeed))
	}
	if c.Obstacles.MinPipeHeight < 0 {
		errs = append(errs, fmt.Errorf("obstacle min_pipe_height must not be negative, got %g", c.Obstacles.MinPipeHeight))
	}
	if c.Ground.Height < 0 || c.Ground.Height >= c.Playfield.Height {
		errs = append(errs, fmt.Errorf("ground height %g must be within playfield height %g",
			c.Ground.Height, c.Playfield.Height))
	}
	if c.Simulation.TargetFPS <= 0 {
		errs = append(errs, fmt.Errorf("simulation target_fps must be positive, got %d", c.Simulation.TargetFPS))
	}
	if c.Simulation.MaxFrameDeltaMS <= 0 {
		errs = append(errs, fmt.Errorf("simulation max_frame_delta_ms must be positive, got %d", c.Simulation.MaxFrameDeltaMS))
	}
	if c.Simulation.RotationEasing <= 0 || c.Simulation.RotationEasing > 1 {
		errs = append(errs, fmt.Errorf("simulation rotation_easing must be in (0, 1], got %g", c.Simulation.RotationEasing))
	}
	if c.Difficulty.MaxSpeedMultiplier < 1 {
		errs = append(errs, fmt.Errorf("difficulty max_speed_multiplier must be at least 1, got %g", c.Difficulty.MaxSpeedMultiplier))
	}
	if c.Difficulty.MinGap <= 0 || c.Difficulty.MinGap > c.Obstacles.BaseGap {
		errs = append(errs, fmt.Errorf("difficulty min_gap %g must be positive and not exceed base_gap %g",
			c.Difficulty.MinGap, c.Obstacles.BaseGap))
	}
	if c.Difficulty.SpeedIncreasePerScore < 0 || c.Difficulty.GapDecreasePerScore < 0 {
		errs = append(errs, errors.New("difficulty per-score rates must not be negative"))
	}
	if c.Particles.MaxCount < 0 {
		errs = append(errs, fmt.Errorf("particles max_count must not be negative, got %d", c.Particles.MaxCount))
	}

	// The gap plus margins must actually fit between ceiling and ground,
	// otherwise pipe spawning has no valid top-height range.
	usable := c.Playfield.Height - c.Ground.Height - c.Obstacles.SpawnMargin - c.Obstacles.MinPipeHeight
	if len(errs) == 0 && c.Obstacles.BaseGap > usable {
		errs = append(errs, fmt.Errorf("obstacle base_gap %g does not fit the playfield (usable %g)",
			c.Obstacles.BaseGap, usable))
	}

	return errors.Join(errs...)
}
