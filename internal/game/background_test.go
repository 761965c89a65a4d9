package game

import (
	"testing"

	"github.com/avanyukov/skyflap/internal/config"
)

func testBackground() *Background {
	cfg := config.Default()
	return NewBackground(cfg.Playfield.Width, cfg.Playfield.Height, cfg.Ground, 7)
}

func TestBackgroundCloudsDrift(t *testing.T) {
	b := testBackground()
	before := append([]Cloud(nil), b.Clouds()...)

	b.Advance(1)

	for i, c := range b.Clouds() {
		if c.X >= before[i].X {
			t.Errorf("cloud %d did not drift left: %g -> %g", i, before[i].X, c.X)
		}
	}
}

func TestBackgroundCloudParallax(t *testing.T) {
	b := testBackground()
	before := append([]Cloud(nil), b.Clouds()...)

	b.Advance(1)

	for i, c := range b.Clouds() {
		moved := before[i].X - c.X
		want := farCloudSpeed
		if c.Depth == 1 {
			want = nearCloudSpeed
		}
		if !almostEqual(moved, want) {
			t.Errorf("cloud %d (depth %d) moved %g, want %g", i, c.Depth, moved, want)
		}
	}
}

func TestBackgroundCloudWraps(t *testing.T) {
	cfg := config.Default()
	b := testBackground()
	b.clouds[0].X = -b.clouds[0].Size // fully past the left edge after one more step

	b.Advance(1)

	if b.Clouds()[0].X != cfg.Playfield.Width {
		t.Errorf("offscreen cloud should wrap to the right edge, X = %g", b.Clouds()[0].X)
	}
}

func TestBackgroundGroundScrollWraps(t *testing.T) {
	b := testBackground()

	// Base scroll is 3 per frame: 8 frames is exactly one tile.
	for i := 0; i < 8; i++ {
		b.AdvanceGround(1, 1)
	}
	if !almostEqual(b.GroundOffset(), 0) {
		t.Errorf("offset after one full tile = %g, want 0", b.GroundOffset())
	}

	b.AdvanceGround(1, 2)
	if !almostEqual(b.GroundOffset(), 6) {
		t.Errorf("offset should scale with the speed multiplier, got %g", b.GroundOffset())
	}
}

func TestBackgroundResetKeepsClouds(t *testing.T) {
	b := testBackground()
	b.Advance(1)
	b.AdvanceGround(1, 1)
	clouds := append([]Cloud(nil), b.Clouds()...)

	b.Reset()

	if b.GroundOffset() != 0 {
		t.Errorf("reset should clear the ground offset, got %g", b.GroundOffset())
	}
	for i, c := range b.Clouds() {
		if c != clouds[i] {
			t.Error("cloud positions should persist across games")
			break
		}
	}
}
