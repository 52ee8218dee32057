package render

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
)

var whiteImage = ebiten.NewImage(3, 3)

// whiteSubImage is a 1x1 opaque source for DrawTriangles.
var whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)

func init() {
	whiteImage.Fill(color.White)
}

// fillPolygon fills the closed polygon through pts.
func fillPolygon(dst *ebiten.Image, pts []cp.Vector, clr color.Color) {
	if len(pts) < 3 {
		return
	}

	var path vector.Path
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := straight(clr)
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = r
		vs[i].ColorG = g
		vs[i].ColorB = b
		vs[i].ColorA = a
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	dst.DrawTriangles(vs, is, whiteSubImage, op)
}

func straight(clr color.Color) (r, g, b, a float32) {
	n := color.NRGBAModel.Convert(clr).(color.NRGBA)
	return float32(n.R) / 0xff, float32(n.G) / 0xff, float32(n.B) / 0xff, float32(n.A) / 0xff
}

// fillGradientRect approximates a vertical linear gradient with bands.
func fillGradientRect(dst *ebiten.Image, x, y, w, h float64, top, bottom color.RGBA) {
	const bands = 32
	if h <= 0 || w <= 0 {
		return
	}
	step := h / bands
	for i := 0; i < bands; i++ {
		t := float64(i) / (bands - 1)
		vector.FillRect(dst, float32(x), float32(y+float64(i)*step), float32(w), float32(step+1), lerpColor(top, bottom, t), false)
	}
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

// withAlpha returns clr at the given opacity.
func withAlpha(clr color.RGBA, alpha float64) color.NRGBA {
	alpha = min(max(alpha, 0), 1)
	return color.NRGBA{R: clr.R, G: clr.G, B: clr.B, A: uint8(alpha * 0xff)}
}

// rotate turns v by angle radians around the origin.
func rotate(v cp.Vector, angle float64) cp.Vector {
	s, c := math.Sincos(angle)
	return cp.Vector{X: v.X*c - v.Y*s, Y: v.X*s + v.Y*c}
}

// ellipse returns points on an ellipse centered at c with radii rx, ry,
// rotated by angle, from start to end radians.
func ellipse(c cp.Vector, rx, ry, angle, start, end float64, segments int) []cp.Vector {
	pts := make([]cp.Vector, 0, segments+1)
	for i := 0; i <= segments; i++ {
		t := start + (end-start)*float64(i)/float64(segments)
		p := cp.Vector{X: math.Cos(t) * rx, Y: math.Sin(t) * ry}
		pts = append(pts, c.Add(rotate(p, angle)))
	}
	return pts
}

// regularPolygon returns the corners of an n-gon of radius r with one
// corner pointing up before rotation.
func regularPolygon(c cp.Vector, n int, r, angle float64) []cp.Vector {
	pts := make([]cp.Vector, 0, n)
	for i := 0; i < n; i++ {
		a := 2*math.Pi/float64(n)*float64(i) - math.Pi/2
		p := cp.Vector{X: math.Cos(a) * r, Y: math.Sin(a) * r}
		pts = append(pts, c.Add(rotate(p, angle)))
	}
	return pts
}
