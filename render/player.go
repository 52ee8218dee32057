package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/juggler/sim"
	"golang.org/x/image/colornames"
)

var (
	skinBack  = color.RGBA{R: 0xcb, G: 0xa3, B: 0x76, A: 0xff}
	skinFront = color.RGBA{R: 0xe0, G: 0xac, B: 0x69, A: 0xff}
	shorts    = color.RGBA{R: 0x0d, G: 0x47, B: 0xa1, A: 0xff}
	shirt     = color.RGBA{R: 0xd3, G: 0x2f, B: 0x2f, A: 0xff}
	shoeLight = color.RGBA{R: 0xff, G: 0x52, B: 0x52, A: 0xff}
	hair      = color.RGBA{R: 0x21, G: 0x21, B: 0x21, A: 0xff}

	seam      = color.NRGBA{A: 0x33}
	crease    = color.NRGBA{A: 0x1a}
	reachGlow = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x1a}
)

func (r *Renderer) drawPlayer(dst *ebiten.Image, snap sim.Snapshot) {
	rig := snap.Rig
	s := snap.Layout.Scale
	hip := rig.Hip

	drawLeg(dst, hip, rig.Left, -1, rig.FootRadius, s, skinBack)
	drawLeg(dst, hip, rig.Right, 1, rig.FootRadius, s, skinFront)
	if snap.State == sim.StatePlaying {
		vector.FillCircle(dst, float32(rig.Right.Pos.X), float32(rig.Right.Pos.Y), float32(rig.FootRadius*1.5), reachGlow, true)
	}

	rect := func(x, y, w, h float64, clr color.Color) {
		vector.FillRect(dst, float32(hip.X+x*s), float32(hip.Y+y*s), float32(w*s), float32(h*s), clr, false)
	}
	rect(-35, -20, 70, 45, shorts)
	rect(-1, 0, 2, 25, seam)
	rect(-32, -20, 5, 45, colornames.White)
	rect(27, -20, 5, 45, colornames.White)
	rect(-32, -85, 64, 75, shirt)

	fillPolygon(dst, []cp.Vector{
		{X: hip.X, Y: hip.Y - 85*s},
		{X: hip.X - 10*s, Y: hip.Y - 65*s},
		{X: hip.X + 10*s, Y: hip.Y - 65*s},
	}, crease)

	vector.FillCircle(dst, float32(hip.X), float32(hip.Y-95*s), float32(20*s), skinFront, true)
	fillPolygon(dst, ellipse(cp.Vector{X: hip.X, Y: hip.Y - 98*s}, 22*s, 22*s, 0, math.Pi, 2.2*math.Pi, 24), hair)
}

// drawLeg draws one leg from the hip to the foot and its shoe. side is -1
// for the left leg.
func drawLeg(dst *ebiten.Image, hip cp.Vector, f sim.Foot, side, footRadius, s float64, clr color.Color) {
	x0 := hip.X + side*10*s
	vector.StrokeLine(dst, float32(x0), float32(hip.Y), float32(f.Pos.X), float32(f.Pos.Y), float32(6*s), clr, true)
	vector.FillCircle(dst, float32(x0), float32(hip.Y), float32(3*s), clr, true)
	vector.FillCircle(dst, float32(f.Pos.X), float32(f.Pos.Y), float32(3*s), clr, true)

	drawShoe(dst, f.Pos, footRadius, math.Atan2(f.Vel.Y, f.Vel.X)*0.3)
}

func drawShoe(dst *ebiten.Image, at cp.Vector, r, angle float64) {
	fillPolygon(dst, ellipse(at, r*1.3, r*0.55, angle, 0, 2*math.Pi, 24), shirt)
	fillPolygon(dst, ellipse(at.Add(rotate(cp.Vector{X: -r * 0.3, Y: -r * 0.15}, angle)), r*0.8, r*0.3, angle, 0, 2*math.Pi, 16), shoeLight)
	fillPolygon(dst, ellipse(at.Add(rotate(cp.Vector{Y: r * 0.2}, angle)), r*1.2, r*0.4, angle, 0, math.Pi, 16), colornames.White)

	a := at.Add(rotate(cp.Vector{X: -r * 0.4, Y: -r * 0.2}, angle))
	b := at.Add(rotate(cp.Vector{X: r * 0.2}, angle))
	vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 4, colornames.White, true)
}
