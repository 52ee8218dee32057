package sim

import (
	"math/rand/v2"
	"time"

	"github.com/jakecoffman/cp"
)

// ScoreStore is the persistence boundary the game-over transition writes to.
type ScoreStore interface {
	HighScore() int
	SetHighScore(score int) error
	Leaderboard() []int
	SetLeaderboard(board []int) error
}

// World is the whole simulation state. Systems mutate it through the
// Driver; presentation reads Snapshot copies.
type World struct {
	Layout      Layout
	Ball        Ball
	Rig         Rig
	Input       InputState
	State       GameState
	Score       int
	HighScore   int
	Leaderboard []int
	Particles   []Particle
	Shockwaves  []Shockwave
	Tick        uint64

	events         EventQueue
	rng            *rand.Rand
	store          ScoreStore
	resetRequested bool
	floorCrossed   bool
}

// Option configures a World at construction.
type Option func(w *World)

// WithSeed makes effect randomness reproducible.
func WithSeed(seed uint64) Option {
	return func(w *World) {
		w.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// WithStore attaches the score persistence adapter. The stored high score
// and leaderboard are read immediately.
func WithStore(store ScoreStore) Option {
	return func(w *World) {
		w.store = store
	}
}

// NewWorld creates a world in the START state for the given playfield size.
func NewWorld(width, height float64, opts ...Option) *World {
	w := &World{State: StateStart}
	for _, opt := range opts {
		if opt != nil {
			opt(w)
		}
	}
	if w.rng == nil {
		seed := uint64(time.Now().UnixNano())
		w.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
	if w.store != nil {
		w.HighScore = w.store.HighScore()
		w.Leaderboard = w.store.Leaderboard()
	}

	w.Layout = NewLayout(width, height)
	w.Ball = Ball{Pos: w.Layout.BallStart(), Radius: w.Layout.BallRadius}
	w.seatRig()
	w.parkInput()
	return w
}

// Events returns the tick's notification queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// Emit queues a notification without a position.
func (w *World) Emit(kind EventKind) {
	w.events.Push(Event{Kind: kind})
}

// EmitAt queues a positioned notification.
func (w *World) EmitAt(kind EventKind, pos cp.Vector) {
	w.events.Push(Event{Kind: kind, Pos: pos})
}

// Rand is the world's effect randomness source.
func (w *World) Rand() *rand.Rand {
	return w.rng
}

// Store returns the attached persistence adapter, if any.
func (w *World) Store() ScoreStore {
	return w.store
}

// Resize recomputes the layout. The rig is re-seated and the ball radius
// rescaled; the ball keeps its position and velocity.
func (w *World) Resize(width, height float64) {
	w.Layout = NewLayout(width, height)
	w.Ball.Radius = w.Layout.BallRadius
	w.seatRig()
}

// RequestReset asks the state machine to start a new session on its next
// update.
func (w *World) RequestReset() {
	w.resetRequested = true
}

// ConsumeReset reports and clears a pending reset request.
func (w *World) ConsumeReset() bool {
	requested := w.resetRequested
	w.resetRequested = false
	return requested
}

// Reset puts the ball and rig at their layout-derived starting positions and
// clears the session. It depends only on the current layout.
func (w *World) Reset() {
	w.Ball = Ball{Pos: w.Layout.BallStart(), Radius: w.Layout.BallRadius}
	w.seatRig()
	w.parkInput()
	w.Score = 0
	w.Particles = w.Particles[:0]
	w.Shockwaves = w.Shockwaves[:0]
	w.floorCrossed = false
}

// MarkFloorCrossed records that the ball fell through the floor this tick.
func (w *World) MarkFloorCrossed() {
	w.floorCrossed = true
}

// FloorCrossed reports whether the ball fell through the floor.
func (w *World) FloorCrossed() bool {
	return w.floorCrossed
}

func (w *World) seatRig() {
	l := w.Layout
	hip := l.Hip()
	left := hip.Add(l.RestOffset(-1).Clamp(l.LegLength))
	right := hip.Add(l.RestOffset(1))
	w.Rig = Rig{
		Hip:        hip,
		LegLength:  l.LegLength,
		FootRadius: l.FootRadius,
		Left:       Foot{Pos: left, Last: left},
		Right:      Foot{Pos: right, Last: right},
	}
}

func (w *World) parkInput() {
	w.Input.Active = false
	w.Input.Pos = w.Rig.Hip.Add(cp.Vector{X: ParkedInputOffset * w.Layout.Scale, Y: w.Rig.LegLength})
}

// Snapshot is a read-only copy of the world for presentation.
type Snapshot struct {
	Layout      Layout
	Ball        Ball
	Rig         Rig
	Input       InputState
	State       GameState
	Score       int
	HighScore   int
	Leaderboard []int
	Particles   []Particle
	Shockwaves  []Shockwave
	Tick        uint64
}

// Snapshot copies everything presentation may read.
func (w *World) Snapshot() Snapshot {
	return Snapshot{
		Layout:      w.Layout,
		Ball:        w.Ball,
		Rig:         w.Rig,
		Input:       w.Input,
		State:       w.State,
		Score:       w.Score,
		HighScore:   w.HighScore,
		Leaderboard: append([]int(nil), w.Leaderboard...),
		Particles:   append([]Particle(nil), w.Particles...),
		Shockwaves:  append([]Shockwave(nil), w.Shockwaves...),
		Tick:        w.Tick,
	}
}
