package input

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/juggler/sim"
)

type countingAudio struct {
	calls int
}

func (a *countingAudio) Activate() { a.calls++ }

func playingWorld() *sim.World {
	w := sim.NewWorld(400, 750, sim.WithSeed(1))
	w.State = sim.StatePlaying
	return w
}

func mouse(x, y float64) Event {
	return Event{Kind: KindMouse, Points: []Point{{X: x, Y: y}}}
}

func touch(points ...Point) Event {
	return Event{Kind: KindTouch, Points: points}
}

func TestNormalizerMouse(t *testing.T) {
	w := playingWorld()
	audio := &countingAudio{}
	n := NewNormalizer(func() Rect { return Rect{X: 10, Y: 20, W: 400, H: 750} }, audio)

	n.Apply(w, mouse(110, 220))

	if !w.Input.Active || w.Input.Pos != (cp.Vector{X: 100, Y: 200}) {
		t.Fatalf("expected active input at (100, 200), got %+v", w.Input)
	}
	if w.Input.IsTouch {
		t.Fatalf("mouse must not set the touch latch")
	}
	if audio.calls != 1 {
		t.Fatalf("expected audio activation, got %d calls", audio.calls)
	}
}

func TestNormalizerTouchLatch(t *testing.T) {
	w := playingWorld()
	n := NewNormalizer(func() Rect { return Rect{W: 400, H: 750} }, nil)

	n.Apply(w, touch(Point{X: 50, Y: 60}, Point{X: 300, Y: 300}))
	if !w.Input.IsTouch || !w.Input.Active || w.Input.Pos != (cp.Vector{X: 50, Y: 60}) {
		t.Fatalf("expected first touch point to drive input, got %+v", w.Input)
	}

	n.Apply(w, mouse(200, 200))
	if w.Input.Pos != (cp.Vector{X: 50, Y: 60}) {
		t.Fatalf("mouse should be ignored after a touch, got %+v", w.Input)
	}

	n.Apply(w, touch())
	if w.Input.Active {
		t.Fatalf("lifting every finger should deactivate input")
	}
	if !w.Input.IsTouch {
		t.Fatalf("touch latch should persist")
	}

	n.Apply(w, mouse(200, 200))
	if w.Input.Active {
		t.Fatalf("mouse should stay ignored once latched")
	}
}

func TestNormalizerOutsidePlay(t *testing.T) {
	cases := []struct {
		name  string
		state sim.GameState
	}{
		{"start", sim.StateStart},
		{"gameover", sim.StateGameOver},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := sim.NewWorld(400, 750)
			w.State = c.state
			before := w.Input
			audio := &countingAudio{}
			n := NewNormalizer(func() Rect { return Rect{W: 400, H: 750} }, audio)

			n.Apply(w, mouse(1, 2))
			n.Apply(w, touch(Point{X: 3, Y: 4}))

			if w.Input != before {
				t.Fatalf("input changed outside play: %+v", w.Input)
			}
			if audio.calls != 2 {
				t.Fatalf("every event should activate audio, got %d", audio.calls)
			}
		})
	}
}

func TestNormalizerReadsBoundsPerEvent(t *testing.T) {
	w := playingWorld()
	origin := Rect{}
	n := NewNormalizer(func() Rect { return origin }, nil)

	n.Apply(w, mouse(100, 100))
	origin = Rect{X: 50, Y: 25}
	n.Apply(w, mouse(100, 100))

	if w.Input.Pos != (cp.Vector{X: 50, Y: 75}) {
		t.Fatalf("expected updated origin to apply, got %v", w.Input.Pos)
	}
}
