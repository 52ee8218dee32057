package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/juggler/sim"
)

var (
	skyTop     = color.RGBA{R: 0x1e, G: 0x3c, B: 0x72, A: 0xff}
	skyBottom  = color.RGBA{R: 0x2a, G: 0x52, B: 0x98, A: 0xff}
	standColor = color.RGBA{R: 0x11, G: 0x11, B: 0x11, A: 0xff}
	grassTop   = color.RGBA{R: 0x2e, G: 0x7d, B: 0x32, A: 0xff}
	grassDeep  = color.RGBA{R: 0x1b, G: 0x5e, B: 0x20, A: 0xff}

	floodlight = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x1a}
	crowdColor = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x1a}
	mowStripe  = color.NRGBA{A: 0x0d}
	lineColor  = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xcc}
)

func (r *Renderer) drawBackground(dst *ebiten.Image, l sim.Layout) {
	w, h := l.Width, l.Height
	fillGradientRect(dst, 0, 0, w, h, skyTop, skyBottom)

	vector.FillCircle(dst, 100, 100, 150, floodlight, true)
	vector.FillCircle(dst, float32(w-100), 100, 150, floodlight, true)

	standTop := h * 0.4
	standHeight := h * 0.4
	vector.FillRect(dst, 0, float32(standTop), float32(w), float32(standHeight), standColor, false)

	for _, p := range r.crowdFor(w, standTop, standHeight) {
		vector.FillCircle(dst, float32(p.X), float32(p.Y), 2, crowdColor, true)
	}
}

// crowdFor returns the spectator dots, regenerating them when the stand
// changes size.
func (r *Renderer) crowdFor(w, top, height float64) []cp.Vector {
	if r.crowd != nil && r.crowdW == w && r.crowdH == height {
		return r.crowd
	}
	r.crowd = r.crowd[:0]
	for i := 0; i < crowdDots; i++ {
		r.crowd = append(r.crowd, cp.Vector{
			X: r.crowdRand.Float64() * w,
			Y: top + r.crowdRand.Float64()*height,
		})
	}
	r.crowdW, r.crowdH = w, height
	return r.crowd
}

func (r *Renderer) drawPitch(dst *ebiten.Image, l sim.Layout) {
	w, h := l.Width, l.Height
	pitchY := h * 0.8
	fillGradientRect(dst, 0, pitchY, w, h-pitchY, grassTop, grassDeep)

	stripe := 50 * l.Scale
	for x := 0.0; x < w; x += stripe * 2 {
		// stripes converge toward the centre of the far edge
		fillPolygon(dst, []cp.Vector{
			{X: x + stripe*0.5, Y: pitchY},
			{X: x + stripe*1.5, Y: pitchY},
			{X: x + stripe + (w/2-(x+stripe))*0.4, Y: h},
			{X: x + (w/2-x)*0.4, Y: h},
		}, mowStripe)
	}

	vector.StrokeLine(dst, 0, float32(pitchY+10), float32(w), float32(pitchY+10), 4, lineColor, true)
}
