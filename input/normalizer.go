package input

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/juggler/sim"
)

// Kind identifies the device an event came from.
type Kind int

const (
	KindMouse Kind = iota
	KindTouch
)

// Point is a position in viewport coordinates.
type Point struct {
	X, Y float64
}

// Rect is the playfield's bounding rectangle in viewport coordinates.
type Rect struct {
	X, Y, W, H float64
}

// Event is one raw pointer event. Mouse events carry exactly one point;
// touch events carry the active contacts, possibly none.
type Event struct {
	Kind   Kind
	Points []Point
}

// AudioCapability is unlocked by the first user interaction. Activate must
// be idempotent.
type AudioCapability interface {
	Activate()
}

// Normalizer turns raw pointer and touch events into the world's InputState.
type Normalizer struct {
	bounds func() Rect
	audio  AudioCapability
}

// NewNormalizer reads the playfield rectangle from bounds on every event, so
// layout changes are picked up without caching.
func NewNormalizer(bounds func() Rect, audio AudioCapability) *Normalizer {
	return &Normalizer{bounds: bounds, audio: audio}
}

// Apply folds ev into w.Input. It must run with exclusive access to w (see
// sim.Driver.Do). Every event activates audio; the input itself is only
// applied while playing.
func (n *Normalizer) Apply(w *sim.World, ev Event) {
	if n == nil || w == nil {
		return
	}
	if n.audio != nil {
		n.audio.Activate()
	}
	if w.State != sim.StatePlaying {
		return
	}

	in := &w.Input
	switch ev.Kind {
	case KindTouch:
		in.IsTouch = true
		if len(ev.Points) == 0 {
			in.Active = false
			return
		}
		in.Pos = n.local(ev.Points[0])
		in.Active = true
	case KindMouse:
		if in.IsTouch || len(ev.Points) == 0 {
			return
		}
		in.Pos = n.local(ev.Points[0])
		in.Active = true
	}
}

func (n *Normalizer) local(p Point) cp.Vector {
	var r Rect
	if n.bounds != nil {
		r = n.bounds()
	}
	return cp.Vector{X: p.X - r.X, Y: p.Y - r.Y}
}
