package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/juggler/sim"
	"golang.org/x/image/colornames"
)

var sparkGold = color.RGBA{R: 0xff, G: 0xd7, B: 0x00, A: 0xff}

func drawShockwaves(dst *ebiten.Image, waves []sim.Shockwave) {
	for _, s := range waves {
		if s.Alpha <= 0 || s.Radius <= 0 {
			continue
		}
		vector.StrokeCircle(dst, float32(s.Pos.X), float32(s.Pos.Y), float32(s.Radius), float32(s.Width), withAlpha(colornames.White, s.Alpha), true)
	}
}

func drawParticles(dst *ebiten.Image, particles []sim.Particle) {
	for _, p := range particles {
		if p.Life <= 0 {
			continue
		}
		clr := colornames.White
		if p.Gold {
			clr = sparkGold
		}
		vector.FillCircle(dst, float32(p.Pos.X), float32(p.Pos.Y), float32(p.Size), withAlpha(clr, p.Life), true)
	}
}
