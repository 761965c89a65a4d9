package game

import (
	"testing"

	"github.com/avanyukov/skyflap/internal/config"
)

func testPipeField(t *testing.T, seed int64) *PipeField {
	t.Helper()
	cfg := config.Default()
	groundLine := cfg.Playfield.Height - cfg.Ground.Height
	return NewPipeField(cfg.Obstacles, cfg.Playfield.Width, groundLine, seed)
}

func TestPipeSpawnWithinBounds(t *testing.T) {
	cfg := config.Default()
	groundLine := cfg.Playfield.Height - cfg.Ground.Height
	f := testPipeField(t, 7)

	for i := 0; i < 500; i++ {
		f.Spawn(cfg.Obstacles.BaseGap, 1)
	}

	// With defaults the top height range is [50, 350]: the tallest top
	// leaves exactly gap + spawn margin above the ground line.
	minH := cfg.Obstacles.MinPipeHeight
	maxH := groundLine - cfg.Obstacles.BaseGap - cfg.Obstacles.SpawnMargin
	observedMax := 0.0
	for _, p := range f.Pipes() {
		if p.X != cfg.Playfield.Width {
			t.Fatalf("pipe should spawn at the right edge %g, got %g", cfg.Playfield.Width, p.X)
		}
		if p.TopHeight < minH || p.TopHeight > maxH {
			t.Fatalf("top height %g outside [%g, %g]", p.TopHeight, minH, maxH)
		}
		if p.TopHeight > observedMax {
			observedMax = p.TopHeight
		}
		if p.Gap != cfg.Obstacles.BaseGap {
			t.Fatalf("gap = %g, want %g", p.Gap, cfg.Obstacles.BaseGap)
		}
		if p.Speed != cfg.Obstacles.BaseSpeed {
			t.Fatalf("speed = %g, want base %g", p.Speed, cfg.Obstacles.BaseSpeed)
		}
	}

	// The sampler must cover the whole range, not a narrowed one: 500
	// uniform draws land above 300 with near certainty.
	if observedMax <= maxH-minH {
		t.Errorf("observed max top height %g never approached the upper bound %g", observedMax, maxH)
	}
}

func TestPipeSpeedCapturedAtSpawn(t *testing.T) {
	cfg := config.Default()
	f := testPipeField(t, 7)

	f.Spawn(cfg.Obstacles.BaseGap, 1)
	f.Spawn(cfg.Obstacles.BaseGap, 1.5)

	pipes := f.Pipes()
	if pipes[0].Speed != cfg.Obstacles.BaseSpeed {
		t.Errorf("earlier pipe keeps its spawn speed, got %g", pipes[0].Speed)
	}
	if pipes[1].Speed != cfg.Obstacles.BaseSpeed*1.5 {
		t.Errorf("later pipe captures the new multiplier, got %g", pipes[1].Speed)
	}

	// Advancing never rewrites captured speeds.
	f.Advance(1, 0)
	if f.Pipes()[0].Speed != cfg.Obstacles.BaseSpeed {
		t.Errorf("advance must not change captured speed, got %g", f.Pipes()[0].Speed)
	}
}

func TestPipeScoredLatchesOnce(t *testing.T) {
	f := testPipeField(t, 7)
	birdX := 80.0

	// Right edge just ahead of the bird: one advance crosses it.
	f.pipes = append(f.pipes, Pipe{X: birdX - 59, Width: 60, TopHeight: 100, Gap: 150, Speed: 3})

	if scored := f.Advance(1, birdX); scored != 1 {
		t.Fatalf("first crossing should score exactly once, got %d", scored)
	}
	if !f.Pipes()[0].Scored {
		t.Fatal("scored flag should be latched")
	}

	for i := 0; i < 10; i++ {
		if scored := f.Advance(1, birdX); scored != 0 {
			t.Fatalf("scored flag must never fire twice, got %d", scored)
		}
	}
}

func TestPipeRemovalWhenFullyOffscreen(t *testing.T) {
	f := testPipeField(t, 7)

	// Right edge still visible: stays.
	f.pipes = append(f.pipes, Pipe{X: -1, Width: 60, TopHeight: 100, Gap: 150, Speed: 3, Scored: true})
	f.Advance(1, 0)
	if len(f.Pipes()) != 1 {
		t.Fatalf("pipe with visible right edge should survive, got %d pipes", len(f.Pipes()))
	}

	// Fully past the left edge: dropped on the next cleanup pass.
	f.pipes[0].X = -61
	f.Advance(1, 0)
	if len(f.Pipes()) != 0 {
		t.Fatalf("fully offscreen pipe should be removed, got %d pipes", len(f.Pipes()))
	}
}

func TestPipeRemovalPreservesOrder(t *testing.T) {
	f := testPipeField(t, 7)
	f.pipes = append(f.pipes,
		Pipe{X: -100, Width: 60, TopHeight: 100, Gap: 150, Speed: 0, Scored: true},
		Pipe{X: 50, Width: 60, TopHeight: 110, Gap: 150, Speed: 0, Scored: true},
		Pipe{X: 200, Width: 60, TopHeight: 120, Gap: 150, Speed: 0},
	)

	f.Advance(1, 0)

	pipes := f.Pipes()
	if len(pipes) != 2 {
		t.Fatalf("expected 2 surviving pipes, got %d", len(pipes))
	}
	if pipes[0].TopHeight != 110 || pipes[1].TopHeight != 120 {
		t.Errorf("removal disturbed relative order: %v", pipes)
	}
}

func TestPipeCollision(t *testing.T) {
	pipe := Pipe{X: 70, Width: 60, TopHeight: 200, Gap: 150}
	cfg := config.Default()
	groundLine := cfg.Playfield.Height - cfg.Ground.Height
	b := NewBird(cfg.Bird, cfg.Simulation, cfg.Playfield.Height, groundLine)

	// Fully inside the gap: no collision.
	b.Y = 250
	if pipe.CollidesWith(b.Hitbox()) {
		t.Error("bird inside the gap should not collide")
	}

	// Breaching the top bound.
	b.Y = 190
	if !pipe.CollidesWith(b.Hitbox()) {
		t.Error("bird above the gap should collide with the top pipe")
	}

	// Breaching the bottom bound.
	b.Y = 340
	if !pipe.CollidesWith(b.Hitbox()) {
		t.Error("bird below the gap should collide with the bottom pipe")
	}

	// No horizontal overlap: breach is irrelevant.
	far := Pipe{X: 300, Width: 60, TopHeight: 200, Gap: 150}
	b.Y = 0
	if far.CollidesWith(b.Hitbox()) {
		t.Error("pipe outside the bird's x band should never collide")
	}
}

func TestPipeHitboxPaddingForgives(t *testing.T) {
	cfg := config.Default()
	groundLine := cfg.Playfield.Height - cfg.Ground.Height
	b := NewBird(cfg.Bird, cfg.Simulation, cfg.Playfield.Height, groundLine)
	pipe := Pipe{X: 70, Width: 60, TopHeight: 200, Gap: 150}

	// Sprite grazes the top pipe but the padded hitbox stays clear.
	b.Y = 200 - cfg.Bird.HitboxPadding/2
	if pipe.CollidesWith(b.Hitbox()) {
		t.Error("padding should forgive a graze within the padded margin")
	}
}
