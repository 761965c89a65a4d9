package game

import (
	"math/rand"

	"github.com/avanyukov/skyflap/internal/config"
	"github.com/avanyukov/skyflap/internal/core"
)

// Pipe is a gap obstacle. X decreases monotonically while active. Gap and
// speed are captured at spawn time and never change: a pipe spawned before
// a difficulty step keeps its original pace for its whole lifetime.
type Pipe struct {
	X         float64
	Width     float64
	TopHeight float64 // Height of the top obstacle, gap starts below it
	Gap       float64
	Speed     float64 // Leftward motion per reference frame
	Scored    bool    // Latched true once, never reset
}

// TopRect returns the collision band of the top obstacle.
func (p Pipe) TopRect() core.RectF {
	return core.NewRectF(p.X, 0, p.Width, p.TopHeight)
}

// BottomRect returns the collision band of the bottom obstacle, which
// extends down to the ground line.
func (p Pipe) BottomRect(groundLine float64) core.RectF {
	top := p.TopHeight + p.Gap
	return core.NewRectF(p.X, top, p.Width, groundLine-top)
}

// CollidesWith tests the (already padded) hitbox against this pipe:
// horizontal overlap with the pipe's width band, then a breach of either
// gap bound.
func (p Pipe) CollidesWith(hitbox core.RectF) bool {
	if hitbox.Right() <= p.X || hitbox.X >= p.X+p.Width {
		return false
	}
	return hitbox.Y < p.TopHeight || hitbox.Bottom() > p.TopHeight+p.Gap
}

// PipeField owns the ordered pipe sequence. Order is spawn order (oldest
// first), which is also leftmost-first since per-pipe speeds never decrease
// across spawns within a game.
type PipeField struct {
	pipes      []Pipe
	rng        *rand.Rand
	cfg        config.ObstacleConfig
	playfieldW float64
	groundLine float64
}

// NewPipeField creates an empty field for the given playfield.
func NewPipeField(cfg config.ObstacleConfig, playfieldW, groundLine float64, seed int64) *PipeField {
	f := &PipeField{
		pipes:      make([]Pipe, 0, 8),
		cfg:        cfg,
		playfieldW: playfieldW,
		groundLine: groundLine,
	}
	f.Reset(seed)
	return f
}

// Reset clears all pipes and reseeds the RNG for a new game.
func (f *PipeField) Reset(seed int64) {
	f.pipes = f.pipes[:0]
	f.rng = rand.New(rand.NewSource(seed))
}

// Spawn creates one pipe at the right edge of the playfield. The top
// obstacle height is sampled uniformly between the minimum pipe height and
// the tallest top that still leaves the gap plus the clearance margin above
// the ground line.
func (f *PipeField) Spawn(gap, speedMultiplier float64) {
	minH := f.cfg.MinPipeHeight
	maxH := f.groundLine - gap - f.cfg.SpawnMargin
	if maxH < minH {
		maxH = minH
	}

	f.pipes = append(f.pipes, Pipe{
		X:         f.playfieldW,
		Width:     f.cfg.PipeWidth,
		TopHeight: minH + f.rng.Float64()*(maxH-minH),
		Gap:       gap,
		Speed:     f.cfg.BaseSpeed * speedMultiplier,
	})
}

// Advance moves all pipes left by their captured speeds, latches the scored
// flag for pipes whose right edge passed birdX, and drops pipes fully off
// the left edge. Updates and verdicts are computed over the current
// sequence first, then the sequence is rebuilt, so removal never disturbs
// the relative order of survivors. Returns the number of pipes scored this
// step.
func (f *PipeField) Advance(delta float64, birdX float64) int {
	scored := 0
	for i := range f.pipes {
		f.pipes[i].X -= f.pipes[i].Speed * delta
		if !f.pipes[i].Scored && f.pipes[i].X+f.pipes[i].Width < birdX {
			f.pipes[i].Scored = true
			scored++
		}
	}

	alive := f.pipes[:0]
	for _, p := range f.pipes {
		if p.X+p.Width >= 0 {
			alive = append(alive, p)
		}
	}
	f.pipes = alive

	return scored
}

// CollideAny tests the hitbox against every pipe and returns the first
// colliding pipe, if any.
func (f *PipeField) CollideAny(hitbox core.RectF) (Pipe, bool) {
	for _, p := range f.pipes {
		if p.CollidesWith(hitbox) {
			return p, true
		}
	}
	return Pipe{}, false
}

// Pipes returns the active sequence, oldest first.
func (f *PipeField) Pipes() []Pipe {
	return f.pipes
}
