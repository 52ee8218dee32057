package sim

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/juggler/common"
)

// Update advances the rig one tick. The hip eases toward the input, then
// both feet snap to their reach-constrained targets.
func (r *Rig) Update(l Layout, in InputState) {
	center := l.Width / 2
	target := center
	if in.Active {
		target = center*SwayCenterWeight + in.Pos.X*SwayInputWeight
	}
	r.Hip.X = common.Lerp(r.Hip.X, target, SwayFollow)

	r.Left.snap(r.leftTarget(l))
	r.Right.snap(r.rightTarget(l, in))
}

// RightReach is the maximum hip-to-foot distance of the kicking leg.
func (r *Rig) RightReach() float64 {
	return r.LegLength * RightReachFactor
}

func (r *Rig) leftTarget(l Layout) cp.Vector {
	return r.Hip.Add(l.RestOffset(-1).Clamp(r.LegLength))
}

func (r *Rig) rightTarget(l Layout, in InputState) cp.Vector {
	target := r.Hip.Add(l.RestOffset(1))
	if in.Active {
		target = in.Pos
	}
	return ClampReach(r.Hip, target, r.RightReach())
}

// ClampReach limits target to within reach of hip. An out-of-reach target
// keeps its horizontal offset (capped at reach) and has its vertical offset
// recomputed onto the reach circle on the same side of the hip, so the foot
// slides along the arc instead of being pulled toward the hip.
func ClampReach(hip, target cp.Vector, reach float64) cp.Vector {
	d := target.Sub(hip)
	if d.Length() <= reach {
		return target
	}

	dx := d.X
	if math.Abs(dx) > reach {
		dx = common.Sign(dx) * reach
	}
	dy := math.Sqrt(math.Max(0, reach*reach-dx*dx))
	if d.Y < 0 {
		dy = -dy
	}

	return hip.Add(cp.Vector{X: dx, Y: dy})
}

func (f *Foot) snap(to cp.Vector) {
	f.Last = f.Pos
	f.Pos = to
	f.Vel = f.Pos.Sub(f.Last)
}
