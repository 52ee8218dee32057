package sim

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/juggler/common"
)

// Contact describes a resolved foot/ball hit.
type Contact struct {
	Normal  cp.Vector // foot to ball
	Closing float64   // relative normal velocity before the impulse, negative
	Point   cp.Vector // underside of the ball after push-out
	Scored  bool
}

// ResolveFootCollision applies the kick response between the ball and a foot.
// The hitbox is HitboxFactor times the visual contact distance, and only a
// closing contact counts. On a hit the ball gets a restitution impulse along
// the normal, a share of the foot's velocity, a clamped horizontal speed,
// positional push-out and a spin nudge.
func ResolveFootCollision(b *Ball, f Foot, footRadius float64) (Contact, bool) {
	delta := b.Pos.Sub(f.Pos)
	dist := delta.Length()
	minDist := (b.Radius + footRadius) * HitboxFactor
	if dist >= minDist || dist == 0 {
		return Contact{}, false
	}

	n := delta.Mult(1 / dist)
	vn := b.Vel.Sub(f.Vel).Dot(n)
	if vn >= 0 {
		return Contact{}, false
	}

	j := -(1 + Restitution) * vn
	b.Vel = b.Vel.Add(n.Mult(j))
	if math.Abs(n.X) < SideKickNormalLimit {
		b.Vel.X *= SideKickDamping
	}

	b.Vel = b.Vel.Add(f.Vel.Mult(KickPower))
	b.Vel.X = common.Clamp(b.Vel.X, -MaxBallSpeedX, MaxBallSpeedX)

	b.Pos = b.Pos.Add(n.Mult(minDist - dist))
	b.AngularVelocity += (f.Vel.X - n.X*vn) * SpinTransfer

	return Contact{
		Normal:  n,
		Closing: vn,
		Point:   cp.Vector{X: b.Pos.X, Y: b.Pos.Y + b.Radius},
		Scored:  b.Vel.Y < ScoreLiftVelocity,
	}, true
}
