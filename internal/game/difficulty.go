package game

import "github.com/avanyukov/skyflap/internal/config"

// Difficulty derives the speed multiplier and gap size from cumulative
// score. Recomputed when score increments, not every tick. Both outputs are
// deterministic functions of score with one-directional clamps, so
// difficulty never decreases within a game until the caps are hit.
type Difficulty struct {
	SpeedMultiplier float64 // >= 1, <= MaxSpeedMultiplier
	CurrentGap      float64 // <= baseGap, >= MinGap

	cfg     config.DifficultyConfig
	baseGap float64
}

// NewDifficulty creates a difficulty controller over the configured ramp.
func NewDifficulty(cfg config.DifficultyConfig, baseGap float64) *Difficulty {
	d := &Difficulty{cfg: cfg, baseGap: baseGap}
	d.Reset()
	return d
}

// Reset restores the starting values (multiplier 1, full gap).
func (d *Difficulty) Reset() {
	d.SpeedMultiplier = 1
	d.CurrentGap = d.baseGap
}

// Recompute updates both outputs from the given cumulative score.
// With the ramp disabled both outputs stay at their starting values.
func (d *Difficulty) Recompute(score int) {
	if !d.cfg.Enabled {
		d.SpeedMultiplier = 1
		d.CurrentGap = d.baseGap
		return
	}

	m := 1 + float64(score)*d.cfg.SpeedIncreasePerScore
	if m > d.cfg.MaxSpeedMultiplier {
		m = d.cfg.MaxSpeedMultiplier
	}
	d.SpeedMultiplier = m

	g := d.baseGap - float64(score)*d.cfg.GapDecreasePerScore
	if g < d.cfg.MinGap {
		g = d.cfg.MinGap
	}
	d.CurrentGap = g
}
