package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/juggler/sim"
	"golang.org/x/image/colornames"
)

const hintText = "HOLD & DRAG TO KICK"

func (r *Renderer) drawHUD(dst *ebiten.Image, snap sim.Snapshot) {
	w, h := snap.Layout.Width, snap.Layout.Height
	s := snap.Layout.Scale

	r.drawText(dst, fmt.Sprint(snap.Score), 60*s, w/2, 16, colornames.White)
	r.drawText(dst, fmt.Sprintf("BEST: %d", snap.HighScore), 20*s, w/2, 16+64*s, sparkGold)
	r.drawText(dst, hintText, 18*s, w/2, h-16-24*s, withAlpha(colornames.White, 0.6))
}

// drawText draws str horizontally centred on x with its top at y.
func (r *Renderer) drawText(dst *ebiten.Image, str string, size, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	text.Draw(dst, str, r.Face(size), op)
}
