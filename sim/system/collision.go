package system

import "github.com/milk9111/juggler/sim"

// CollisionSystem resolves the kicking foot against the ball and scores clean
// upward kicks. The left foot never collides.
type CollisionSystem struct{}

func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{}
}

func (c *CollisionSystem) ActiveIn(state sim.GameState) bool {
	return state == sim.StatePlaying
}

func (c *CollisionSystem) Update(w *sim.World) {
	if w == nil || w.FloorCrossed() {
		return
	}

	contact, ok := sim.ResolveFootCollision(&w.Ball, w.Rig.Right, w.Rig.FootRadius)
	if !ok {
		return
	}

	w.Emit(sim.EventKick)
	w.EmitAt(sim.EventBurst, contact.Point)
	sim.SpawnBlast(w, contact.Point)

	if contact.Scored {
		w.Score++
		w.Emit(sim.EventScore)
	}
}
