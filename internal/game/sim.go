package game

import (
	"time"

	"github.com/avanyukov/skyflap/internal/config"
	"github.com/avanyukov/skyflap/internal/core"
)

// ScoreRecorder persists finished runs. Implemented by the sqlite store;
// a nil recorder disables persistence entirely.
type ScoreRecorder interface {
	// BestScore returns the best score across all recorded runs.
	BestScore() (int, error)
	// RecordRun stores the score of one finished run.
	RecordRun(score int) error
}

// Sim is the state machine orchestrating the whole simulation. It owns all
// mutable game state and is the only mutator of it. The platform calls
// Advance once per display frame with the frame timestamp and delivers
// discrete input events between frames; everything runs on one goroutine.
type Sim struct {
	cfg        config.Config
	phase      Phase
	bird       *Bird
	pipes      *PipeField
	particles  *ParticleBuffer
	background *Background
	difficulty *Difficulty
	clock      *core.FrameClock

	score        int
	best         int
	frameCounter int
	debugOverlay bool

	recorder ScoreRecorder
	seed     int64 // 0 = time-seed each run
	runSeed  int64
}

// New creates the simulation in the start phase. The previous best score is
// read from the recorder once; a missing or unreadable value counts as 0.
func New(cfg config.Config, seed int64, rec ScoreRecorder) *Sim {
	groundLine := cfg.Playfield.Height - cfg.Ground.Height

	s := &Sim{
		cfg:        cfg,
		phase:      PhaseStart,
		bird:       NewBird(cfg.Bird, cfg.Simulation, cfg.Playfield.Height, groundLine),
		difficulty: NewDifficulty(cfg.Difficulty, cfg.Obstacles.BaseGap),
		clock: core.NewFrameClock(cfg.Simulation.TargetFPS,
			time.Duration(cfg.Simulation.MaxFrameDeltaMS)*time.Millisecond),
		recorder:     rec,
		seed:         seed,
		debugOverlay: cfg.Debug.ShowHitboxes,
	}
	s.runSeed = s.nextRunSeed()
	s.pipes = NewPipeField(cfg.Obstacles, cfg.Playfield.Width, groundLine, s.runSeed)
	s.particles = NewParticleBuffer(cfg.Particles, s.runSeed+1)
	s.background = NewBackground(cfg.Playfield.Width, cfg.Playfield.Height, cfg.Ground, s.runSeed+2)

	if rec != nil {
		if best, err := rec.BestScore(); err == nil {
			s.best = best
		}
	}
	return s
}

func (s *Sim) nextRunSeed() int64 {
	if s.seed != 0 {
		return s.seed
	}
	return time.Now().UnixNano()
}

// Jump handles the jump input event according to the current phase: it
// starts a new game from the start and game-over screens, flaps while
// playing, and is ignored while paused. The input layer debounces repeats.
func (s *Sim) Jump() {
	switch s.phase {
	case PhaseStart, PhaseGameOver:
		s.startGame()
	case PhasePlaying:
		s.flap()
	case PhasePaused:
		// Ignored; pause is left via the pause toggle only.
	}
}

// flap applies the jump impulse and emits trail particles at the bird's
// leading edge. The bird faces right, so the leading edge is the right one.
func (s *Sim) flap() {
	s.bird.Jump()
	r := s.bird.Rect()
	s.particles.Emit(ParticleJump, r.Right(), r.Bottom())
}

// startGame resets all per-game state and immediately applies the first
// jump, so the starting input doubles as the initial upward impulse.
func (s *Sim) startGame() {
	s.runSeed = s.nextRunSeed()
	s.score = 0
	s.frameCounter = 0
	s.difficulty.Reset()
	s.pipes.Reset(s.runSeed)
	s.particles.Reset(s.runSeed + 1)
	s.background.Reset()
	s.bird.Reset()
	s.phase = PhasePlaying
	s.flap()
}

// TogglePause flips between playing and paused. Pause is unreachable from
// the start and game-over phases. Resuming resynchronizes the clock so the
// paused interval does not arrive as one giant delta.
func (s *Sim) TogglePause() {
	switch s.phase {
	case PhasePlaying:
		s.phase = PhasePaused
	case PhasePaused:
		s.clock.Resync()
		s.phase = PhasePlaying
	}
}

// ToggleDebug flips the hitbox debug overlay.
func (s *Sim) ToggleDebug() {
	s.debugOverlay = !s.debugOverlay
}

// Advance runs one simulation tick for the given frame timestamp. The clock
// always consumes the timestamp so real time keeps flowing through pauses;
// gameplay mutation is gated on the playing phase, while the parallax
// background animates in every phase.
func (s *Sim) Advance(now time.Time) {
	delta := s.clock.Tick(now)
	s.background.Advance(delta)

	if s.phase != PhasePlaying {
		return
	}
	s.step(delta)
}

// step advances gameplay by one tick of the given normalized delta.
// Separated from Advance so tests can drive exact reference frames.
func (s *Sim) step(delta float64) {
	// Spawn cadence is counted in ticks, not elapsed time: the counter
	// advances by one per tick whatever the delta, so real-time cadence
	// follows the actual frame rate while pipe motion stays time-scaled.
	s.frameCounter++
	if s.frameCounter%s.cfg.Obstacles.SpawnInterval == 0 {
		s.pipes.Spawn(s.difficulty.CurrentGap, s.difficulty.SpeedMultiplier)
	}

	switch s.bird.Update(delta) {
	case BoundaryGround:
		r := s.bird.Rect()
		s.particles.Emit(ParticleImpact, r.X+r.W/2, r.Bottom())
		s.endGame()
		return
	case BoundaryCeiling:
		// Clamped, not fatal.
	}

	scored := s.pipes.Advance(delta, s.cfg.Bird.X)
	for i := 0; i < scored; i++ {
		s.score++
		s.difficulty.Recompute(s.score)
		r := s.bird.Rect()
		s.particles.Emit(ParticleScore, r.Right(), r.Y)
	}

	if pipe, hit := s.pipes.CollideAny(s.bird.Hitbox()); hit {
		r := s.bird.Rect()
		s.particles.Emit(ParticleCollision, core.ClampF(r.Right(), pipe.X, pipe.X+pipe.Width), r.Y+r.H/2)
		s.endGame()
		return
	}

	s.background.AdvanceGround(delta, s.difficulty.SpeedMultiplier)
	s.particles.Update(delta)
}

// endGame transitions to game over, folds the run into the best score, and
// records it. The write is fire and forget: a failed write only means the
// stored best does not move this session.
func (s *Sim) endGame() {
	s.phase = PhaseGameOver
	if s.score > s.best {
		s.best = s.score
	}
	if s.recorder != nil && s.score > 0 {
		_ = s.recorder.RecordRun(s.score)
	}
}

// Phase returns the current phase.
func (s *Sim) Phase() Phase {
	return s.phase
}

// Score returns the current run's score.
func (s *Sim) Score() int {
	return s.score
}

// Best returns the best score seen, including the persisted history.
func (s *Sim) Best() int {
	return s.best
}
