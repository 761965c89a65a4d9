package game

import (
	"math/rand"

	"github.com/avanyukov/skyflap/internal/config"
)

// ParticleKind tags a particle with the event that spawned it, so the
// renderer can pick a color. Purely cosmetic; no gameplay reads particles.
type ParticleKind int

const (
	ParticleJump ParticleKind = iota
	ParticleScore
	ParticleCollision
	ParticleImpact
)

// Particle is an ephemeral visual-feedback entity. Life decays from 1 to 0;
// the renderer treats life as opacity.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Gravity float64 // Per-particle, some kinds float instead of falling
	Life    float64
	Size    float64
	Kind    ParticleKind
}

// Per-reference-frame life decay.
const particleDecay = 0.025

// ParticleBuffer is a capped buffer of particles, oldest evicted first when
// the cap is exceeded. It has its own RNG so cosmetic emission never
// perturbs the gameplay random sequence.
type ParticleBuffer struct {
	particles []Particle
	cfg       config.ParticleConfig
	rng       *rand.Rand
}

// NewParticleBuffer creates an empty buffer with the configured cap.
func NewParticleBuffer(cfg config.ParticleConfig, seed int64) *ParticleBuffer {
	b := &ParticleBuffer{
		particles: make([]Particle, 0, cfg.MaxCount),
		cfg:       cfg,
	}
	b.Reset(seed)
	return b
}

// Reset drops all particles and reseeds for a new game.
func (b *ParticleBuffer) Reset(seed int64) {
	b.particles = b.particles[:0]
	b.rng = rand.New(rand.NewSource(seed))
}

// Emit spawns the configured burst for the given event at (x, y).
func (b *ParticleBuffer) Emit(kind ParticleKind, x, y float64) {
	var n int
	switch kind {
	case ParticleJump:
		n = b.cfg.JumpBurst
	case ParticleScore:
		n = b.cfg.ScoreBurst
	case ParticleCollision:
		n = b.cfg.CollisionBurst
	case ParticleImpact:
		n = b.cfg.ImpactBurst
	}

	for i := 0; i < n; i++ {
		b.particles = append(b.particles, b.spawn(kind, x, y))
	}

	// Cap enforcement, oldest first
	if over := len(b.particles) - b.cfg.MaxCount; over > 0 {
		b.particles = append(b.particles[:0], b.particles[over:]...)
	}
}

func (b *ParticleBuffer) spawn(kind ParticleKind, x, y float64) Particle {
	p := Particle{
		X:    x,
		Y:    y,
		Life: 1,
		Size: 2 + b.rng.Float64()*3,
		Kind: kind,
	}
	switch kind {
	case ParticleJump:
		// Trail behind and below the leading edge
		p.VX = -1 - b.rng.Float64()*2
		p.VY = 1 + b.rng.Float64()*2
		p.Gravity = 0.1
	case ParticleScore:
		// Celebratory upward spray
		p.VX = (b.rng.Float64() - 0.5) * 6
		p.VY = -2 - b.rng.Float64()*3
		p.Gravity = 0.15
	case ParticleCollision:
		p.VX = (b.rng.Float64() - 0.5) * 8
		p.VY = (b.rng.Float64() - 0.5) * 8
		p.Gravity = 0.2
	case ParticleImpact:
		// Dust kicked up along the ground
		p.VX = (b.rng.Float64() - 0.5) * 10
		p.VY = -1 - b.rng.Float64()*4
		p.Gravity = 0.3
	}
	return p
}

// Update advances and culls particles by the normalized delta.
func (b *ParticleBuffer) Update(delta float64) {
	alive := b.particles[:0]
	for _, p := range b.particles {
		p.VY += p.Gravity * delta
		p.X += p.VX * delta
		p.Y += p.VY * delta
		p.Life -= particleDecay * delta
		if p.Life > 0 {
			alive = append(alive, p)
		}
	}
	b.particles = alive
}

// Particles returns the live particles, oldest first.
func (b *ParticleBuffer) Particles() []Particle {
	return b.particles
}

// Len returns the number of live particles.
func (b *ParticleBuffer) Len() int {
	return len(b.particles)
}
