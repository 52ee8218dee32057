package system

import "github.com/milk9111/juggler/sim"

// RigSystem moves the player rig every tick in every state. Before a session
// starts the hip is pinned to the centre of the playfield.
type RigSystem struct{}

func NewRigSystem() *RigSystem {
	return &RigSystem{}
}

func (r *RigSystem) Update(w *sim.World) {
	if w == nil {
		return
	}
	if w.State == sim.StateStart {
		w.Rig.Hip.X = w.Layout.Width / 2
	}
	w.Rig.Update(w.Layout, w.Input)
}
