package render

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/juggler/sim"
	"github.com/milk9111/juggler/skins"
	"golang.org/x/image/colornames"
)

const (
	indicatorMargin = 30
	indicatorY      = 50
)

func (r *Renderer) palette(tick uint64, speed float64) skins.Palette {
	if r.skins == nil {
		return skins.Fallback
	}
	return r.skins.Get(r.Skin()).Palette(tick, speed)
}

func (r *Renderer) drawBall(dst *ebiten.Image, snap sim.Snapshot) {
	b := snap.Ball
	rad := b.Radius
	if rad <= 0 {
		return
	}
	pal := r.palette(snap.Tick, b.Vel.Length())

	if pal.Glow > 0 {
		for i := 3; i >= 1; i-- {
			grow := 1 + pal.Glow*0.15*float64(i)
			vector.FillCircle(dst, float32(b.Pos.X), float32(b.Pos.Y), float32(rad*grow), withAlpha(pal.Base, pal.Glow*0.12), true)
		}
	}

	// body shades from the edge colour to the base colour toward the light
	const shades = 4
	vector.FillCircle(dst, float32(b.Pos.X), float32(b.Pos.Y), float32(rad), pal.Edge, true)
	for i := 1; i <= shades; i++ {
		t := float64(i) / shades
		c := b.Pos.Add(cp.Vector{X: -0.3 * rad * t, Y: -0.3 * rad * t})
		vector.FillCircle(dst, float32(c.X), float32(c.Y), float32(rad*(1-0.2*t)), lerpColor(pal.Edge, pal.Base, t), true)
	}

	drawPattern(dst, b, pal)

	vector.FillCircle(dst, float32(b.Pos.X-rad*0.3), float32(b.Pos.Y-rad*0.3), float32(rad*0.4), withAlpha(colornames.White, 0.3), true)
}

func drawPattern(dst *ebiten.Image, b sim.Ball, pal skins.Palette) {
	rad := b.Radius
	rot := b.Rotation

	switch pal.Pattern {
	case skins.PatternStars:
		for i := 0; i < 8; i++ {
			a := rot + float64(i)*math.Pi/4
			pts := []cp.Vector{
				{Y: -rad * 0.3},
				{X: rad * 0.1, Y: -rad * 0.1},
				{Y: rad * 0.3},
				{X: -rad * 0.1, Y: -rad * 0.1},
			}
			for j := range pts {
				pts[j] = b.Pos.Add(rotate(pts[j], a))
			}
			fillPolygon(dst, pts, pal.Accent)
		}
	case skins.PatternRings:
		ring := withAlpha(pal.Accent, 0.5)
		vector.StrokeCircle(dst, float32(b.Pos.X), float32(b.Pos.Y), float32(rad*0.6), 2, ring, true)
		vector.StrokeCircle(dst, float32(b.Pos.X), float32(b.Pos.Y), float32(rad*0.3), 2, ring, true)
	case skins.PatternFlames:
		flame := withAlpha(pal.Accent, 0.6)
		for i := 0; i < 6; i++ {
			a := float64(i)*math.Pi/3 + rot*2
			c := b.Pos.Add(rotate(cp.Vector{Y: -rad * 0.5}, a))
			fillPolygon(dst, ellipse(c, rad*0.15, rad*0.3, a, 0, 2*math.Pi, 16), flame)
		}
	default:
		size := rad * 0.55
		fillPolygon(dst, regularPolygon(b.Pos, 5, size*0.6, rot), pal.Accent)
		for i := 0; i < 5; i++ {
			a := rot + float64(i)*2*math.Pi/5
			c := b.Pos.Add(rotate(cp.Vector{Y: -rad * 0.75}, a))
			fillPolygon(dst, regularPolygon(c, 5, size*0.4, a), pal.Accent)
		}
	}
}

// drawIndicator points at the ball while it is entirely above the view.
func (r *Renderer) drawIndicator(dst *ebiten.Image, snap sim.Snapshot) {
	if !snap.Ball.AboveView() {
		return
	}

	w := snap.Layout.Width
	x := snap.Ball.Pos.X
	if w > 2*indicatorMargin {
		x = min(max(x, indicatorMargin), w-indicatorMargin)
	}
	at := cp.Vector{X: x, Y: indicatorY}

	ms := float64(snap.Tick) * 1000 / 60
	pulse := 1 + math.Sin(ms/150)*0.2

	arrow := func(scale float64) [][]cp.Vector {
		p := func(x, y float64) cp.Vector {
			return at.Add(cp.Vector{X: x * scale, Y: y * scale})
		}
		return [][]cp.Vector{
			{p(0, -15), p(-20, 15), p(0, 5)},
			{p(0, -15), p(0, 5), p(20, 15)},
		}
	}
	for _, tri := range arrow(pulse * 1.3) {
		fillPolygon(dst, tri, withAlpha(colornames.White, 0.25))
	}
	for _, tri := range arrow(pulse) {
		fillPolygon(dst, tri, colornames.White)
	}
}
