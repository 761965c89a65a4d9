package game

// Snapshot is a read-only copy of the state the renderer needs, taken once
// per tick. It also backs the determinism tests.
type Snapshot struct {
	Phase        Phase
	Score        int
	Best         int
	FrameCounter int
	Debug        bool

	Bird         BirdState
	Pipes        []Pipe
	Particles    []Particle
	Clouds       []Cloud
	GroundOffset float64
}

// BirdState is the bird's renderable pose.
type BirdState struct {
	X, Y      float64
	W, H      float64
	Velocity  float64
	Rotation  float64
	WingFrame int
}

// Snapshot returns the current renderer-facing state. Slices are copied so
// the renderer can hold the snapshot across the next mutation.
func (s *Sim) Snapshot() Snapshot {
	r := s.bird.Rect()
	return Snapshot{
		Phase:        s.phase,
		Score:        s.score,
		Best:         s.best,
		FrameCounter: s.frameCounter,
		Debug:        s.debugOverlay,
		Bird: BirdState{
			X: r.X, Y: r.Y, W: r.W, H: r.H,
			Velocity:  s.bird.Vel,
			Rotation:  s.bird.Rotation,
			WingFrame: s.bird.WingFrame(),
		},
		Pipes:        append([]Pipe(nil), s.pipes.Pipes()...),
		Particles:    append([]Particle(nil), s.particles.Particles()...),
		Clouds:       append([]Cloud(nil), s.background.Clouds()...),
		GroundOffset: s.background.GroundOffset(),
	}
}
