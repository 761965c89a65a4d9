package game

import (
	"math"
	"math/rand"

	"github.com/avanyukov/skyflap/internal/config"
)

// Cloud is a parallax background element. Depth controls both speed and
// render size: far clouds drift slower and draw smaller.
type Cloud struct {
	X, Y  float64
	Depth int // 0 = far, 1 = near
	Size  float64
}

const (
	cloudCount     = 6
	farCloudSpeed  = 0.3 // Per reference frame
	nearCloudSpeed = 0.7
	groundTileW    = 24 // Scroll offset wraps at this width
)

// Background holds the parallax cloud layers and the ground scroll offset.
// Clouds animate in every phase; the ground scrolls only while gameplay
// advances, since it moves at obstacle speed.
type Background struct {
	clouds       []Cloud
	groundOffset float64

	playfieldW float64
	playfieldH float64
	ground     config.GroundConfig
}

// NewBackground scatters the initial cloud layers across the playfield.
func NewBackground(playfieldW, playfieldH float64, ground config.GroundConfig, seed int64) *Background {
	b := &Background{
		playfieldW: playfieldW,
		playfieldH: playfieldH,
		ground:     ground,
	}
	rng := rand.New(rand.NewSource(seed))
	skyH := playfieldH - ground.Height
	for i := 0; i < cloudCount; i++ {
		b.clouds = append(b.clouds, Cloud{
			X:     rng.Float64() * playfieldW,
			Y:     rng.Float64() * skyH * 0.6,
			Depth: i % 2,
			Size:  20 + rng.Float64()*30,
		})
	}
	return b
}

// Advance drifts the clouds left, wrapping them to the right edge.
// Called every tick regardless of phase.
func (b *Background) Advance(delta float64) {
	for i := range b.clouds {
		speed := farCloudSpeed
		if b.clouds[i].Depth == 1 {
			speed = nearCloudSpeed
		}
		b.clouds[i].X -= speed * delta
		if b.clouds[i].X+b.clouds[i].Size < 0 {
			b.clouds[i].X = b.playfieldW
		}
	}
}

// AdvanceGround scrolls the ground texture at gameplay speed.
// Called only while the game is in the playing phase.
func (b *Background) AdvanceGround(delta, speedMultiplier float64) {
	b.groundOffset = math.Mod(b.groundOffset+b.ground.ScrollSpeed*speedMultiplier*delta, groundTileW)
}

// Reset clears the ground scroll. Cloud positions persist across games.
func (b *Background) Reset() {
	b.groundOffset = 0
}

// Clouds returns the parallax elements for rendering.
func (b *Background) Clouds() []Cloud {
	return b.clouds
}

// GroundOffset returns the current ground scroll offset in [0, tile width).
func (b *Background) GroundOffset() float64 {
	return b.groundOffset
}
