package system

import "github.com/milk9111/juggler/sim"

// BallSystem integrates the ball and applies the playfield boundaries.
type BallSystem struct{}

func NewBallSystem() *BallSystem {
	return &BallSystem{}
}

func (b *BallSystem) ActiveIn(state sim.GameState) bool {
	return state == sim.StatePlaying
}

func (b *BallSystem) Update(w *sim.World) {
	if w == nil {
		return
	}

	ball := &w.Ball
	ball.Integrate()

	if ball.Fell(w.Layout.Height) {
		w.MarkFloorCrossed()
	}
	if ball.BounceWalls(w.Layout.Bounds()) {
		w.Emit(sim.EventWall)
	}
}
