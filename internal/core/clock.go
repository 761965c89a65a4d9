package core

import "time"

// FrameClock converts wall-clock frame timestamps into a bounded,
// frame-rate-independent simulation step. A normalized delta of 1.0 equals
// exactly one reference frame at the target rate, so all per-tick physics
// increments are expressed as "per-reference-frame amount * delta".
type FrameClock struct {
	prev       time.Time
	targetFPS  float64
	maxDeltaMS float64
	started    bool
}

// NewFrameClock creates a clock for the given target frame rate.
// maxDelta bounds a single raw step so that stalls (terminal suspended,
// debugger pauses) do not produce one enormous simulation jump.
func NewFrameClock(targetFPS int, maxDelta time.Duration) *FrameClock {
	if targetFPS <= 0 {
		targetFPS = 60
	}
	return &FrameClock{
		targetFPS:  float64(targetFPS),
		maxDeltaMS: float64(maxDelta.Milliseconds()),
	}
}

// Tick records a new frame timestamp and returns the normalized delta since
// the previous one. The previous timestamp is stored unconditionally, so the
// clock keeps tracking real time even while gameplay is not advancing.
// The first tick after construction or Resync returns 0.
func (c *FrameClock) Tick(now time.Time) float64 {
	if !c.started {
		c.prev = now
		c.started = true
		return 0
	}

	rawMS := float64(now.Sub(c.prev)) / float64(time.Millisecond)
	c.prev = now

	if rawMS < 0 {
		rawMS = 0
	}
	if rawMS > c.maxDeltaMS {
		rawMS = c.maxDeltaMS
	}

	refFrameMS := 1000.0 / c.targetFPS
	return rawMS / refFrameMS
}

// Resync forgets the previous timestamp so the next Tick returns 0.
// Called when resuming from pause: without it the whole paused interval
// would arrive as one (clamped) delta and be indistinguishable from a stall.
func (c *FrameClock) Resync() {
	c.started = false
}
