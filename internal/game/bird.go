package game

import (
	"math"

	"github.com/avanyukov/skyflap/internal/config"
	"github.com/avanyukov/skyflap/internal/core"
)

// Rotation response to velocity: target angle is velocity scaled by
// rotationPerVel, clamped to [noseUpLimit, noseDownLimit] degrees.
const (
	rotationPerVel = 4.0
	noseUpLimit    = -30.0
	noseDownLimit  = 90.0
	wingFrames     = 3
)

// Boundary reports a playfield edge contact detected during a bird update.
type Boundary int

const (
	BoundaryNone Boundary = iota
	BoundaryCeiling
	BoundaryGround
)

// Bird is the controlled entity. X is fixed; only the vertical state
// mutates. Created once at startup and reset in place between games.
type Bird struct {
	Y         float64 // Top of hitbox
	Vel       float64 // Vertical velocity, negative = up
	Rotation  float64 // Degrees, eased toward a velocity-derived target
	WingPhase float64 // Cyclic animation counter in [0, wingFrames)

	cfg        config.BirdConfig
	easing     float64
	groundLine float64 // Y of the ground surface
	centerY    float64 // Resting position for a new game
}

// NewBird creates the bird for a playfield with the given ground line.
func NewBird(cfg config.BirdConfig, sim config.SimulationConfig, playfieldH, groundLine float64) *Bird {
	b := &Bird{
		cfg:        cfg,
		easing:     sim.RotationEasing,
		groundLine: groundLine,
		centerY:    playfieldH/2 - cfg.Height/2,
	}
	b.Reset()
	return b
}

// Jump sets the velocity to the configured upward impulse, replacing any
// prior velocity. Input flooding is debounced by the input layer, not here.
func (b *Bird) Jump() {
	b.Vel = b.cfg.JumpImpulse
}

// Update integrates one simulation step scaled by the normalized delta and
// returns any boundary contact. Ground contact snaps the bird onto the
// ground and zeroes velocity; ceiling contact clamps without killing.
func (b *Bird) Update(delta float64) Boundary {
	b.Vel += b.cfg.Gravity * delta
	if b.Vel > b.cfg.MaxFallSpeed {
		b.Vel = b.cfg.MaxFallSpeed
	}
	b.Y += b.Vel * delta

	// Rotation easing is a flat per-tick factor, intentionally not scaled
	// by delta. Tilt response varies slightly at off-target frame rates.
	target := core.ClampF(b.Vel*rotationPerVel, noseUpLimit, noseDownLimit)
	b.Rotation += (target - b.Rotation) * b.easing

	b.WingPhase = math.Mod(b.WingPhase+b.cfg.WingRate*delta, wingFrames)

	if b.Y+b.cfg.Height >= b.groundLine {
		b.Y = b.groundLine - b.cfg.Height
		b.Vel = 0
		return BoundaryGround
	}
	if b.Y < 0 {
		b.Y = 0
		b.Vel = 0
		return BoundaryCeiling
	}
	return BoundaryNone
}

// Reset restores the bird to the vertical center with no motion.
// The same instance persists across games.
func (b *Bird) Reset() {
	b.Y = b.centerY
	b.Vel = 0
	b.Rotation = 0
	b.WingPhase = 0
}

// Rect returns the bird's full bounding box.
func (b *Bird) Rect() core.RectF {
	return core.NewRectF(b.cfg.X, b.Y, b.cfg.Width, b.cfg.Height)
}

// Hitbox returns the bounding box shrunk by the configured padding,
// used for all collision tests.
func (b *Bird) Hitbox() core.RectF {
	return b.Rect().Inset(b.cfg.HitboxPadding)
}

// WingFrame returns the current wing animation frame (0..2), render-only.
func (b *Bird) WingFrame() int {
	return int(b.WingPhase) % wingFrames
}
