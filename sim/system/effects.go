package system

import "github.com/milk9111/juggler/sim"

// EffectsSystem ages kick particles and shockwaves and drops the expired
// ones.
type EffectsSystem struct{}

func NewEffectsSystem() *EffectsSystem {
	return &EffectsSystem{}
}

func (e *EffectsSystem) ActiveIn(state sim.GameState) bool {
	return state != sim.StateStart
}

func (e *EffectsSystem) Update(w *sim.World) {
	if w == nil {
		return
	}
	w.Particles = sim.AdvanceParticles(w.Particles)
	w.Shockwaves = sim.AdvanceShockwaves(w.Shockwaves)
}
