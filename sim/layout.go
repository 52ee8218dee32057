package sim

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/juggler/common"
)

// Layout holds the playfield dimensions and every size derived from them.
type Layout struct {
	Width      float64
	Height     float64
	Scale      float64
	BallRadius float64
	FootRadius float64
	LegLength  float64
}

// NewLayout derives a layout from playfield pixel dimensions. Non-positive
// dimensions are raised to one pixel so the derived sizes stay finite.
func NewLayout(width, height float64) Layout {
	if !(width >= 1) {
		width = 1
	}
	if !(height >= 1) {
		height = 1
	}

	scale := math.Min(width/BaseWidth, height/BaseHeight)
	scale = common.Clamp(scale, MinScale, MaxScale)

	return Layout{
		Width:      width,
		Height:     height,
		Scale:      scale,
		BallRadius: BallRadius * scale,
		FootRadius: FootRadius * scale,
		LegLength:  height * LegLengthRatio,
	}
}

// Bounds is the playfield as a bounding box in screen orientation (B is the
// top edge, T the floor).
func (l Layout) Bounds() cp.BB {
	return cp.BB{L: 0, B: 0, R: l.Width, T: l.Height}
}

// Hip is the rig anchor at rest.
func (l Layout) Hip() cp.Vector {
	return cp.Vector{X: l.Width / 2, Y: l.Height * HipHeightRatio}
}

// BallStart is where a reset places the ball.
func (l Layout) BallStart() cp.Vector {
	return cp.Vector{X: l.Width / 2, Y: l.Height * BallStartRatio}
}

// RestOffset is the resting foot offset from the hip; side is -1 for the
// left leg and +1 for the right.
func (l Layout) RestOffset(side float64) cp.Vector {
	return cp.Vector{X: side * RestFootOffset * l.Scale, Y: l.LegLength}
}
