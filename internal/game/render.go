package game

import (
	"fmt"

	"github.com/avanyukov/skyflap/internal/core"
)

// Visual characters for rendering
const (
	PipeChar      = '█'
	PipeCapTop    = '▄'
	PipeCapBottom = '▀'
	GroundChar    = '═'
	DirtChar      = '░'
	CloudChar     = '~'
)

// Bird glyphs: head by pitch, wing by animation frame.
var (
	wingGlyphs = [wingFrames]rune{'▴', '▸', '▾'}
)

// Render draws the current state onto the screen buffer, scaling the
// virtual playfield to the terminal dimensions. The simulation itself never
// depends on anything computed here.
func (s *Sim) Render(dst *core.Screen) {
	dst.Clear()

	w, h := dst.Width(), dst.Height()
	scaleX := float64(w) / s.cfg.Playfield.Width
	scaleY := float64(h) / s.cfg.Playfield.Height
	px := func(x float64) int { return int(x * scaleX) }
	py := func(y float64) int { return int(y * scaleY) }

	groundRow := core.Clamp(py(s.cfg.Playfield.Height-s.cfg.Ground.Height), 0, h-1)

	s.renderClouds(dst, px, py)
	s.renderPipes(dst, px, py, groundRow)
	s.renderGround(dst, px, groundRow)
	s.renderParticles(dst, px, py)
	s.renderBird(dst, px, py)

	dst.DrawTextColored(2, 0, fmt.Sprintf(" Score: %d  Best: %d ", s.score, s.best), core.ColorBrightWhite)

	if s.debugOverlay {
		s.renderDebug(dst, px, py)
	}

	switch s.phase {
	case PhaseStart:
		s.renderMessage(dst, "SKYFLAP", "Press Space to flap")
	case PhasePaused:
		s.renderMessage(dst, "PAUSED", "Press P to resume")
	case PhaseGameOver:
		s.renderMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  Best: %d  |  Space to retry", s.score, s.best))
	}
}

func (s *Sim) renderClouds(dst *core.Screen, px, py func(float64) int) {
	for _, c := range s.background.Clouds() {
		color := core.ColorGray
		if c.Depth == 1 {
			color = core.ColorWhite
		}
		width := core.Max(2, px(c.Size))
		dst.DrawHLine(px(c.X), py(c.Y), width, CloudChar, color)
	}
}

func (s *Sim) renderPipes(dst *core.Screen, px, py func(float64) int, groundRow int) {
	for _, p := range s.pipes.Pipes() {
		x0 := px(p.X)
		x1 := px(p.X + p.Width)
		if x1 <= x0 {
			x1 = x0 + 1
		}
		gapTop := py(p.TopHeight)
		gapBottom := py(p.TopHeight + p.Gap)

		for x := x0; x < x1; x++ {
			dst.DrawVLine(x, 0, gapTop-1, PipeChar, core.ColorGreen)
			if gapTop > 0 {
				dst.SetCell(x, gapTop-1, PipeCapTop, core.ColorGreen)
			}
			if gapBottom < groundRow {
				dst.SetCell(x, gapBottom, PipeCapBottom, core.ColorGreen)
			}
			dst.DrawVLine(x, gapBottom+1, groundRow-gapBottom-1, PipeChar, core.ColorGreen)
		}
	}
}

func (s *Sim) renderGround(dst *core.Screen, px func(float64) int, groundRow int) {
	offset := px(s.background.GroundOffset())
	for x := 0; x < dst.Width(); x++ {
		r := GroundChar
		if (x+offset)%4 == 0 {
			r = '╪'
		}
		dst.SetCell(x, groundRow, r, core.ColorYellow)
	}
	for y := groundRow + 1; y < dst.Height(); y++ {
		dst.DrawHLine(0, y, dst.Width(), DirtChar, core.ColorYellow)
	}
}

func (s *Sim) renderParticles(dst *core.Screen, px, py func(float64) int) {
	for _, p := range s.particles.Particles() {
		var r rune
		switch {
		case p.Life > 0.66:
			r = '•'
		case p.Life > 0.33:
			r = '∘'
		default:
			r = '·'
		}

		color := core.ColorWhite
		switch p.Kind {
		case ParticleScore:
			color = core.ColorBrightYellow
		case ParticleCollision:
			color = core.ColorRed
		case ParticleImpact:
			color = core.ColorGray
		}
		dst.SetCell(px(p.X), py(p.Y), r, color)
	}
}

func (s *Sim) renderBird(dst *core.Screen, px, py func(float64) int) {
	r := s.bird.Rect()
	x, y := px(r.X), py(r.Y+r.H/2)

	head := '▶'
	switch {
	case s.bird.Rotation < -10:
		head = '◥'
	case s.bird.Rotation > 30:
		head = '◢'
	}

	dst.SetCell(x, y, wingGlyphs[s.bird.WingFrame()], core.ColorBrightYellow)
	dst.SetCell(x+1, y, head, core.ColorBrightYellow)
}

func (s *Sim) renderDebug(dst *core.Screen, px, py func(float64) int) {
	hb := s.bird.Hitbox()
	drawOutline(dst, px(hb.X), py(hb.Y), core.Max(2, px(hb.W)), core.Max(2, py(hb.H)), core.ColorCyan)

	groundLine := s.cfg.Playfield.Height - s.cfg.Ground.Height
	for _, p := range s.pipes.Pipes() {
		top := p.TopRect()
		bottom := p.BottomRect(groundLine)
		drawOutline(dst, px(top.X), py(top.Y), core.Max(2, px(top.W)), core.Max(2, py(top.H)), core.ColorRed)
		drawOutline(dst, px(bottom.X), py(bottom.Y), core.Max(2, px(bottom.W)), core.Max(2, py(bottom.H)), core.ColorRed)
	}

	info := fmt.Sprintf(" %s frame=%d vel=%.1f rot=%.0f pipes=%d particles=%d ",
		s.phase, s.frameCounter, s.bird.Vel, s.bird.Rotation, len(s.pipes.Pipes()), s.particles.Len())
	dst.DrawTextColored(2, 1, info, core.ColorCyan)
}

// drawOutline marks rectangle corners and edges with '+' so hitboxes stay
// visible without overwriting the whole sprite.
func drawOutline(dst *core.Screen, x, y, w, h int, c core.Color) {
	for i := 0; i < w; i++ {
		dst.SetCell(x+i, y, '┄', c)
		dst.SetCell(x+i, y+h-1, '┄', c)
	}
	for i := 0; i < h; i++ {
		dst.SetCell(x, y+i, '┆', c)
		dst.SetCell(x+w-1, y+i, '┆', c)
	}
	dst.SetCell(x, y, '+', c)
	dst.SetCell(x+w-1, y, '+', c)
	dst.SetCell(x, y+h-1, '+', c)
	dst.SetCell(x+w-1, y+h-1, '+', c)
}

// renderMessage draws a centered message box, matching the arcade overlay style.
func (s *Sim) renderMessage(dst *core.Screen, title, subtitle string) {
	w, h := dst.Width(), dst.Height()

	boxW := core.Min(core.Max(len(title), len(subtitle))+4, w)
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ')
	dst.DrawBox(boxX, boxY, boxW, boxH)

	dst.DrawTextCentered(boxY+1, title)
	dst.DrawTextCentered(boxY+3, subtitle)
}
