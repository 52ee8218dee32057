package sim

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jakecoffman/cp"
)

type emitSystem struct {
	kind EventKind
}

func (e emitSystem) Update(w *World) {
	w.Emit(e.kind)
}

type gatedSystem struct {
	runs  *int
	state GameState
}

func (g gatedSystem) ActiveIn(s GameState) bool { return s == g.state }
func (g gatedSystem) Update(w *World)           { *g.runs++ }

type recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *recorder) Notify(evt Event) {
	r.mu.Lock()
	r.events = append(r.events, evt)
	r.mu.Unlock()
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

func TestDriverStartStop(t *testing.T) {
	w := NewWorld(400, 750, WithSeed(1))
	rec := &recorder{}
	d := NewDriver(w, NewScheduler(emitSystem{kind: EventWall}), rec)

	if d.Tick() {
		t.Fatalf("tick before Start should not run")
	}
	if w.Tick != 0 {
		t.Fatalf("expected tick counter 0, got %d", w.Tick)
	}

	d.Start()
	d.Start()
	if !d.Running() {
		t.Fatalf("expected running after Start")
	}
	if !d.Tick() || !d.Tick() {
		t.Fatalf("expected ticks to run")
	}
	if rec.count() != 2 {
		t.Fatalf("expected 2 notifications, got %d", rec.count())
	}
	if w.Events().Len() != 0 {
		t.Fatalf("events should be drained after a tick")
	}

	d.Stop()
	d.Stop()
	if d.Running() || d.Tick() {
		t.Fatalf("expected no ticks after Stop")
	}
	if rec.count() != 2 {
		t.Fatalf("notification after Stop: %d", rec.count())
	}
}

func TestDriverRun(t *testing.T) {
	t.Run("not_running", func(t *testing.T) {
		d := NewDriver(NewWorld(400, 750), NewScheduler())
		if err := d.Run(context.Background(), time.Millisecond); !errors.Is(err, ErrNotRunning) {
			t.Fatalf("expected ErrNotRunning, got %v", err)
		}
	})

	t.Run("stops_on_stop", func(t *testing.T) {
		w := NewWorld(400, 750)
		d := NewDriver(w, NewScheduler())
		d.Start()

		done := make(chan error, 1)
		go func() { done <- d.Run(context.Background(), time.Millisecond) }()

		deadline := time.Now().Add(2 * time.Second)
		for d.Snapshot().Tick < 3 {
			if time.Now().After(deadline) {
				t.Fatalf("driver did not tick")
			}
			time.Sleep(time.Millisecond)
		}
		d.Stop()
		after := d.Snapshot().Tick

		select {
		case err := <-done:
			if err != nil {
				t.Fatalf("expected nil error, got %v", err)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("Run did not return after Stop")
		}

		time.Sleep(5 * time.Millisecond)
		if got := d.Snapshot().Tick; got != after {
			t.Fatalf("ticked after Stop returned: %d -> %d", after, got)
		}
	})

	t.Run("stops_on_cancel", func(t *testing.T) {
		d := NewDriver(NewWorld(400, 750), NewScheduler())
		d.Start()
		ctx, cancel := context.WithCancel(context.Background())

		done := make(chan error, 1)
		go func() { done <- d.Run(ctx, time.Millisecond) }()
		cancel()

		select {
		case err := <-done:
			if !errors.Is(err, context.Canceled) {
				t.Fatalf("expected context.Canceled, got %v", err)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("Run did not return after cancel")
		}
	})
}

func TestDriverDoSerializesMutation(t *testing.T) {
	w := NewWorld(400, 750)
	d := NewDriver(w, NewScheduler())
	d.Start()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				d.Do(func(w *World) { w.Score++ })
				d.Tick()
			}
		}()
	}
	wg.Wait()

	s := d.Snapshot()
	if s.Score != 800 || s.Tick != 800 {
		t.Fatalf("expected score 800 and tick 800, got %d and %d", s.Score, s.Tick)
	}
}

func TestSchedulerGating(t *testing.T) {
	var playing, start int
	s := NewScheduler(
		gatedSystem{runs: &playing, state: StatePlaying},
		gatedSystem{runs: &start, state: StateStart},
		nil,
	)
	if len(s.Systems()) != 2 {
		t.Fatalf("nil systems should be skipped, got %d", len(s.Systems()))
	}

	w := NewWorld(400, 750)
	s.Update(w)
	if playing != 0 || start != 1 {
		t.Fatalf("expected only the START system to run, got playing=%d start=%d", playing, start)
	}
}

func TestWorldResetIsLayoutPure(t *testing.T) {
	w := NewWorld(400, 750, WithSeed(3))
	w.Ball.Pos = cp.Vector{X: 12, Y: 34}
	w.Ball.Vel = cp.Vector{X: 5, Y: -5}
	w.Score = 9
	SpawnBlast(w, cp.Vector{X: 1, Y: 1})

	w.Reset()
	first := w.Snapshot()
	w.Reset()
	second := w.Snapshot()

	if first.Ball != second.Ball || first.Rig != second.Rig || first.Input != second.Input {
		t.Fatalf("reset is not idempotent")
	}
	if first.Score != 0 || len(first.Particles) != 0 || len(first.Shockwaves) != 0 {
		t.Fatalf("reset left session state behind: %+v", first)
	}
	if first.Ball.Pos != w.Layout.BallStart() || first.Ball.Vel != (cp.Vector{}) {
		t.Fatalf("ball not at start: %+v", first.Ball)
	}
	if first.Input.Active {
		t.Fatalf("input should be parked inactive")
	}
}

func TestWorldResizeKeepsBall(t *testing.T) {
	w := NewWorld(400, 750)
	w.Ball.Pos = cp.Vector{X: 150, Y: 300}
	w.Ball.Vel = cp.Vector{X: 2, Y: 1}

	w.Resize(800, 1500)

	if w.Ball.Pos != (cp.Vector{X: 150, Y: 300}) || w.Ball.Vel != (cp.Vector{X: 2, Y: 1}) {
		t.Fatalf("resize moved the ball: %+v", w.Ball)
	}
	if !near(w.Ball.Radius, BallRadius*w.Layout.Scale) {
		t.Fatalf("ball radius not rescaled: %v", w.Ball.Radius)
	}
	if w.Rig.Hip != w.Layout.Hip() || !near(w.Rig.LegLength, 1500*LegLengthRatio) {
		t.Fatalf("rig not re-seated: %+v", w.Rig)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	w := NewWorld(400, 750, WithSeed(5))
	SpawnBlast(w, cp.Vector{})
	w.Leaderboard = []int{3, 2}

	s := w.Snapshot()
	s.Particles[0].Life = -1
	s.Leaderboard[0] = 99

	if w.Particles[0].Life != 1 || w.Leaderboard[0] != 3 {
		t.Fatalf("snapshot shares memory with the world")
	}
}
