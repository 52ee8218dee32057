package audio

import (
	"sync/atomic"

	"github.com/milk9111/juggler/sim"
)

// Output is a device that can play cues once activated.
type Output interface {
	Activate()
	Play(kind sim.EventKind)
}

// Player routes simulation notifications to an Output. It is the game's
// AudioCapability: Activate is idempotent and safe from any input handler.
// Sound can be muted without losing the activation.
type Player struct {
	out     Output
	enabled atomic.Bool
}

func NewPlayer(out Output, enabled bool) *Player {
	p := &Player{out: out}
	p.enabled.Store(enabled)
	return p
}

func (p *Player) Activate() {
	if p == nil || p.out == nil {
		return
	}
	p.out.Activate()
}

func (p *Player) SetEnabled(enabled bool) {
	p.enabled.Store(enabled)
}

func (p *Player) Enabled() bool {
	return p.enabled.Load()
}

// Notify plays the cue for evt, if it has one and sound is on.
func (p *Player) Notify(evt sim.Event) {
	if p == nil || p.out == nil || !p.enabled.Load() {
		return
	}
	if _, ok := Cues[evt.Kind]; !ok {
		return
	}
	p.out.Play(evt.Kind)
}
