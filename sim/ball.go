package sim

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Integrate advances the ball by one tick. The order is fixed: gravity, air
// drag, position, rotation, spin damping.
func (b *Ball) Integrate() {
	b.Vel.Y += Gravity
	b.Vel.X *= AirResistance
	b.Pos = b.Pos.Add(b.Vel)
	b.Rotation += b.AngularVelocity
	b.AngularVelocity *= SpinDamping
}

// BounceWalls keeps the ball inside the side walls of bounds. A ball that
// crossed a wall is clamped back inside and sent inward at WallDamping times
// its horizontal speed. It reports whether a wall was hit.
func (b *Ball) BounceWalls(bounds cp.BB) bool {
	box := cp.NewBBForCircle(b.Pos, b.Radius)
	hit := false

	if box.L < bounds.L {
		b.Pos.X = bounds.L + b.Radius
		b.Vel.X = math.Abs(b.Vel.X) * WallDamping
		hit = true
	}
	if box.R > bounds.R {
		b.Pos.X = bounds.R - b.Radius
		b.Vel.X = -math.Abs(b.Vel.X) * WallDamping
		hit = true
	}

	return hit
}

// Fell reports whether the ball's lower edge is past the floor while it is
// still moving down. The floor never bounces.
func (b *Ball) Fell(floor float64) bool {
	return b.Pos.Y+b.Radius > floor && b.Vel.Y > 0
}

// AboveView reports whether the ball is entirely above the top edge.
func (b *Ball) AboveView() bool {
	return b.Pos.Y < -b.Radius
}
