package main

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/juggler/sim"
	"github.com/milk9111/juggler/skins"
)

var (
	styleSky    = tcell.StyleDefault.Background(tcell.NewRGBColor(0x1e, 0x3c, 0x72))
	styleStand  = tcell.StyleDefault.Background(tcell.NewRGBColor(0x11, 0x11, 0x11)).Foreground(tcell.ColorDimGray)
	stylePitch  = tcell.StyleDefault.Background(tcell.NewRGBColor(0x2e, 0x7d, 0x32)).Foreground(tcell.ColorWhite)
	styleLeg    = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0xe0, 0xac, 0x69))
	styleShoe   = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0xd3, 0x2f, 0x2f))
	styleShirt  = tcell.StyleDefault.Background(tcell.NewRGBColor(0xd3, 0x2f, 0x2f))
	styleShorts = tcell.StyleDefault.Background(tcell.NewRGBColor(0x0d, 0x47, 0xa1))
	styleHead   = tcell.StyleDefault.Background(tcell.NewRGBColor(0xe0, 0xac, 0x69))
	styleText   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleGold   = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0xff, 0xd7, 0x00)).Bold(true)
)

// canvas maps playfield pixels to terminal cells.
type canvas struct {
	screen tcell.Screen
	cols   int
	rows   int
}

func (c canvas) cell(p cp.Vector) (int, int) {
	return int(math.Floor(p.X / cellWidth)), int(math.Floor(p.Y / cellHeight))
}

// put draws r over whatever background the cell already has.
func (c canvas) put(x, y int, r rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= c.cols || y >= c.rows {
		return
	}
	_, _, under, _ := c.screen.GetContent(x, y)
	_, bg, _ := under.Decompose()
	fg, _, attrs := style.Decompose()
	if _, styleBg, _ := style.Decompose(); styleBg != tcell.ColorDefault {
		bg = styleBg
	}
	c.screen.SetContent(x, y, r, nil, tcell.StyleDefault.Foreground(fg).Background(bg).Attributes(attrs))
}

func (c canvas) text(y int, s string, style tcell.Style) {
	x := (c.cols - len(s)) / 2
	for i, r := range s {
		c.put(x+i, y, r, style)
	}
}

// line plots the segment a-b one cell at a time.
func (c canvas) line(a, b cp.Vector, r rune, style tcell.Style) {
	x0, y0 := c.cell(a)
	x1, y1 := c.cell(b)
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := sign(x1-x0), sign(y1-y0)
	err := dx + dy
	for {
		c.put(x0, y0, r, style)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// rect fills the pixel rectangle with the style's background.
func (c canvas) rect(x, y, w, h float64, style tcell.Style) {
	x0, y0 := c.cell(cp.Vector{X: x, Y: y})
	x1, y1 := c.cell(cp.Vector{X: x + w, Y: y + h})
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			c.put(cx, cy, ' ', style)
		}
	}
}

// disc fills every cell whose centre lies within radius of at.
func (c canvas) disc(at cp.Vector, radius float64, r rune, style tcell.Style) {
	x0, y0 := c.cell(at.Sub(cp.Vector{X: radius, Y: radius}))
	x1, y1 := c.cell(at.Add(cp.Vector{X: radius, Y: radius}))
	hit := false
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			centre := cp.Vector{X: (float64(cx) + 0.5) * cellWidth, Y: (float64(cy) + 0.5) * cellHeight}
			if centre.Distance(at) <= radius {
				c.put(cx, cy, r, style)
				hit = true
			}
		}
	}
	// small shapes still get one cell
	if !hit {
		x, y := c.cell(at)
		c.put(x, y, r, style)
	}
}

func draw(screen tcell.Screen, s sim.Snapshot, skin *skins.Skin, sound bool) {
	cols, rows := screen.Size()
	c := canvas{screen: screen, cols: cols, rows: rows}
	l := s.Layout

	screen.Clear()
	c.rect(0, 0, l.Width, l.Height, styleSky)
	c.rect(0, l.Height*0.4, l.Width, l.Height*0.4, styleStand)
	c.rect(0, l.Height*0.8, l.Width, l.Height*0.2, stylePitch)
	_, pitchRow := c.cell(cp.Vector{Y: l.Height*0.8 + 10})
	for x := 0; x < cols; x++ {
		c.put(x, pitchRow, '─', stylePitch)
	}

	drawPlayer(c, s)
	if s.State != sim.StateStart {
		drawBall(c, s, skin)
		for _, p := range s.Particles {
			c.put(int(p.Pos.X/cellWidth), int(p.Pos.Y/cellHeight), '*', styleGold)
		}
	}
	drawHUD(c, s, sound)

	screen.Show()
}

func drawPlayer(c canvas, s sim.Snapshot) {
	rig := s.Rig
	sc := s.Layout.Scale
	hip := rig.Hip

	c.line(hip.Add(cp.Vector{X: -10 * sc}), rig.Left.Pos, '|', styleLeg)
	c.line(hip.Add(cp.Vector{X: 10 * sc}), rig.Right.Pos, '|', styleLeg)
	c.disc(rig.Left.Pos, rig.FootRadius, '▄', styleShoe)
	c.disc(rig.Right.Pos, rig.FootRadius, '▄', styleShoe)

	c.rect(hip.X-35*sc, hip.Y-20*sc, 70*sc, 45*sc, styleShorts)
	c.rect(hip.X-32*sc, hip.Y-85*sc, 64*sc, 65*sc, styleShirt)
	c.disc(hip.Add(cp.Vector{Y: -95 * sc}), 20*sc, ' ', styleHead)
}

func drawBall(c canvas, s sim.Snapshot, skin *skins.Skin) {
	b := s.Ball
	if b.AboveView() {
		x := int(min(max(b.Pos.X, 30), s.Layout.Width-30) / cellWidth)
		c.put(x, 0, '▲', styleText)
		return
	}

	pal := skin.Palette(s.Tick, b.Vel.Length())
	body := tcell.StyleDefault.
		Background(tcell.NewRGBColor(int32(pal.Base.R), int32(pal.Base.G), int32(pal.Base.B))).
		Foreground(tcell.NewRGBColor(int32(pal.Accent.R), int32(pal.Accent.G), int32(pal.Accent.B)))
	c.disc(b.Pos, b.Radius, ' ', body)

	// a mark that turns with the ball
	mark := b.Pos.Add(cp.Vector{X: math.Cos(b.Rotation), Y: math.Sin(b.Rotation)}.Mult(b.Radius * 0.5))
	x, y := c.cell(mark)
	c.put(x, y, '●', body)
}

func drawHUD(c canvas, s sim.Snapshot, sound bool) {
	c.text(1, fmt.Sprintf("%d", s.Score), styleText)
	c.text(2, fmt.Sprintf("BEST: %d", s.HighScore), styleGold)

	soundLabel := "on"
	if !sound {
		soundLabel = "off"
	}
	footer := fmt.Sprintf("mouse: kick   enter: play   s: sound %s   q: quit", soundLabel)

	switch s.State {
	case sim.StateStart:
		c.text(c.rows/3, "PRO JUGGLER", styleText)
		c.text(c.rows/3+2, "press enter to play", styleText)
	case sim.StateGameOver:
		y := c.rows / 4
		c.text(y, "GAME OVER", styleText)
		c.text(y+2, fmt.Sprintf("score %d   best %d", s.Score, s.HighScore), styleGold)
		for i, score := range s.Leaderboard {
			c.text(y+4+i, fmt.Sprintf("%2d. %5d", i+1, score), styleText)
		}
	}
	c.text(c.rows-1, footer, styleText)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
