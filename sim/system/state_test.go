package system

import (
	"reflect"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/juggler/sim"
	"github.com/milk9111/juggler/store"
)

type harness struct {
	world   *sim.World
	driver  *sim.Driver
	records *store.Records
	events  []sim.Event
}

func newHarness(t *testing.T, records *store.Records) *harness {
	t.Helper()
	if records == nil {
		records = store.NewRecords(store.NewMemoryKV(), sim.LeaderboardSize)
	}
	h := &harness{records: records}
	h.world = sim.NewWorld(400, 750, sim.WithSeed(1), sim.WithStore(records))
	h.driver = sim.NewDriver(h.world, sim.NewScheduler(Pipeline(nil)...), sim.ListenerFunc(func(evt sim.Event) {
		h.events = append(h.events, evt)
	}))
	h.driver.Start()
	return h
}

func (h *harness) start(t *testing.T) {
	t.Helper()
	h.driver.Do(func(w *sim.World) { w.RequestReset() })
	h.driver.Tick()
	if h.world.State != sim.StatePlaying {
		t.Fatalf("expected PLAYING after reset, got %s", h.world.State)
	}
}

// drop parks the ball away from the kicking foot just above the floor,
// falling, with the given session score.
func (h *harness) drop(score int) {
	h.driver.Do(func(w *sim.World) {
		w.Score = score
		w.Ball.Pos = cp.Vector{X: 40, Y: w.Layout.Height - w.Ball.Radius - 1}
		w.Ball.Vel = cp.Vector{Y: 5}
	})
	h.driver.Tick()
}

func (h *harness) count(kind sim.EventKind) int {
	n := 0
	for _, evt := range h.events {
		if evt.Kind == kind {
			n++
		}
	}
	return n
}

func TestStartWaitsForReset(t *testing.T) {
	h := newHarness(t, nil)
	start := h.world.Ball

	for i := 0; i < 30; i++ {
		h.driver.Tick()
	}
	if h.world.State != sim.StateStart {
		t.Fatalf("expected START, got %s", h.world.State)
	}
	if h.world.Ball != start {
		t.Fatalf("ball moved before play started")
	}
	if h.world.Rig.Hip.X != h.world.Layout.Width/2 {
		t.Fatalf("hip should stay centred before play, got %v", h.world.Rig.Hip.X)
	}
}

func TestGameOverTransition(t *testing.T) {
	h := newHarness(t, nil)
	h.start(t)
	h.drop(5)

	if h.world.State != sim.StateGameOver {
		t.Fatalf("expected GAMEOVER, got %s", h.world.State)
	}
	frozen := h.world.Ball
	for i := 0; i < 20; i++ {
		h.driver.Tick()
	}
	if h.count(sim.EventLose) != 1 {
		t.Fatalf("expected exactly one lose notification, got %d", h.count(sim.EventLose))
	}
	if h.world.Ball != frozen {
		t.Fatalf("ball should not move after game over")
	}
	if h.world.Score != 5 {
		t.Fatalf("final score should be kept, got %d", h.world.Score)
	}
}

func TestResetIgnoredWhilePlaying(t *testing.T) {
	h := newHarness(t, nil)
	h.start(t)

	h.driver.Do(func(w *sim.World) {
		w.Score = 3
		w.RequestReset()
	})
	h.driver.Tick()

	if h.world.State != sim.StatePlaying || h.world.Score != 3 {
		t.Fatalf("reset during play should be ignored: state=%s score=%d", h.world.State, h.world.Score)
	}

	// the ignored request must not linger into the game-over screen
	h.drop(3)
	h.driver.Tick()
	if h.world.State != sim.StateGameOver {
		t.Fatalf("expected GAMEOVER, got %s", h.world.State)
	}
}

func TestPlayAgainResetsSession(t *testing.T) {
	h := newHarness(t, nil)
	h.start(t)
	h.drop(4)
	h.start(t)

	w := h.world
	if w.Score != 0 {
		t.Fatalf("expected score reset, got %d", w.Score)
	}
	if w.Ball.Pos.Distance(w.Layout.BallStart()) > 1 {
		t.Fatalf("ball should restart near %v, got %v", w.Layout.BallStart(), w.Ball.Pos)
	}
	if w.HighScore != 4 {
		t.Fatalf("high score should survive a restart, got %d", w.HighScore)
	}
}

func TestScoresArePersisted(t *testing.T) {
	kv := store.NewMemoryKV()
	records := store.NewRecords(kv, sim.LeaderboardSize)
	h := newHarness(t, records)

	sessions := []struct {
		score     int
		wantHigh  int
		wantBoard []int
	}{
		{5, 5, []int{5}},
		{3, 5, []int{5, 3}},
		{0, 5, []int{5, 3}},
		{8, 8, []int{8, 5, 3}},
	}

	for _, s := range sessions {
		h.start(t)
		h.drop(s.score)

		if h.world.HighScore != s.wantHigh || records.HighScore() != s.wantHigh {
			t.Fatalf("score %d: expected high %d, got world=%d stored=%d", s.score, s.wantHigh, h.world.HighScore, records.HighScore())
		}
		if !reflect.DeepEqual(records.Leaderboard(), s.wantBoard) {
			t.Fatalf("score %d: expected board %v, got %v", s.score, s.wantBoard, records.Leaderboard())
		}
		if !reflect.DeepEqual(h.world.Leaderboard, s.wantBoard) {
			t.Fatalf("score %d: world board %v, want %v", s.score, h.world.Leaderboard, s.wantBoard)
		}
	}

	reloaded := sim.NewWorld(400, 750, sim.WithStore(store.NewRecords(kv, sim.LeaderboardSize)))
	if reloaded.HighScore != 8 || !reflect.DeepEqual(reloaded.Leaderboard, []int{8, 5, 3}) {
		t.Fatalf("records not loaded: high=%d board=%v", reloaded.HighScore, reloaded.Leaderboard)
	}
}

func TestKickScores(t *testing.T) {
	h := newHarness(t, nil)
	h.start(t)

	w := h.world
	foot := w.Rig.Right.Pos
	h.driver.Do(func(w *sim.World) {
		w.Input = sim.InputState{Pos: foot, Active: true}
		w.Ball.Pos = cp.Vector{X: foot.X, Y: 100}
		w.Ball.Vel = cp.Vector{}
	})
	h.driver.Tick()

	// The foot rises 8px this tick while the ball lands on it from above.
	h.events = nil
	h.driver.Do(func(w *sim.World) {
		w.Input.Pos = foot.Sub(cp.Vector{Y: 8})
		w.Ball.Pos = cp.Vector{X: foot.X, Y: foot.Y - 8 - 40 - (3 + sim.Gravity)}
		w.Ball.Vel = cp.Vector{Y: 3}
	})
	h.driver.Tick()

	if w.Rig.Right.Vel != (cp.Vector{Y: -8}) {
		t.Fatalf("expected foot velocity (0, -8), got %v", w.Rig.Right.Vel)
	}
	if w.Score != 1 {
		t.Fatalf("expected a point, got %d (ball v=%v)", w.Score, w.Ball.Vel)
	}
	kinds := make([]sim.EventKind, 0, len(h.events))
	for _, evt := range h.events {
		kinds = append(kinds, evt.Kind)
	}
	want := []sim.EventKind{sim.EventKick, sim.EventBurst, sim.EventScore}
	if !reflect.DeepEqual(kinds, want) {
		t.Fatalf("expected events %v, got %v", want, kinds)
	}
	if len(w.Shockwaves) != 1 || len(w.Particles) != sim.BlastParticles {
		t.Fatalf("expected a blast, got %d shockwaves and %d particles", len(w.Shockwaves), len(w.Particles))
	}
}

func TestWallNotification(t *testing.T) {
	h := newHarness(t, nil)
	h.start(t)

	h.events = nil
	h.driver.Do(func(w *sim.World) {
		w.Ball.Pos = cp.Vector{X: w.Ball.Radius + 1, Y: 100}
		w.Ball.Vel = cp.Vector{X: -6}
	})
	h.driver.Tick()

	if h.count(sim.EventWall) != 1 {
		t.Fatalf("expected one wall notification, got %d", h.count(sim.EventWall))
	}
	if h.world.Ball.Vel.X <= 0 {
		t.Fatalf("ball should bounce back inward, vx=%v", h.world.Ball.Vel.X)
	}
}

func TestTransitionsAreReported(t *testing.T) {
	type transition struct{ from, to sim.GameState }
	var seen []transition

	state := NewGameStateSystem()
	state.OnTransition = func(from, to sim.GameState) {
		seen = append(seen, transition{from, to})
	}
	w := sim.NewWorld(400, 750, sim.WithSeed(1))
	sched := sim.NewScheduler(Pipeline(state)...)

	w.RequestReset()
	sched.Update(w)
	w.Ball.Pos = cp.Vector{X: 40, Y: w.Layout.Height}
	w.Ball.Vel = cp.Vector{Y: 5}
	sched.Update(w)
	w.RequestReset()
	sched.Update(w)

	want := []transition{
		{sim.StateStart, sim.StatePlaying},
		{sim.StatePlaying, sim.StateGameOver},
		{sim.StateGameOver, sim.StatePlaying},
	}
	if !reflect.DeepEqual(seen, want) {
		t.Fatalf("expected %v, got %v", want, seen)
	}
}

func TestNoKickOnceTheBallIsDown(t *testing.T) {
	h := newHarness(t, nil)
	h.start(t)

	// Hold the foot just below the floor and let it settle.
	h.driver.Do(func(w *sim.World) {
		w.Input = sim.InputState{Pos: cp.Vector{X: w.Layout.Width / 2, Y: w.Layout.Height + 10}, Active: true}
		w.Ball.Pos = cp.Vector{X: w.Layout.Width / 2, Y: 100}
		w.Ball.Vel = cp.Vector{}
	})
	h.driver.Tick()

	h.events = nil
	h.driver.Do(func(w *sim.World) {
		w.Ball.Pos = cp.Vector{X: w.Layout.Width / 2, Y: w.Layout.Height - w.Ball.Radius + 2}
		w.Ball.Vel = cp.Vector{Y: 5}
	})
	h.driver.Tick()

	if h.world.State != sim.StateGameOver {
		t.Fatalf("expected GAMEOVER, got %s", h.world.State)
	}
	if h.world.Score != 0 || h.count(sim.EventKick) != 0 || h.count(sim.EventScore) != 0 {
		t.Fatalf("a ball past the floor must not be kicked: score=%d events=%v", h.world.Score, h.events)
	}
	if h.count(sim.EventLose) != 1 {
		t.Fatalf("expected one lose notification, got %d", h.count(sim.EventLose))
	}
}
