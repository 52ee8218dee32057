package system

import (
	"log"

	"github.com/milk9111/juggler/sim"
	"github.com/milk9111/juggler/store"
)

// stateHandler runs one game state. Update returns the state for the next
// tick; returning a different state triggers Exit/Enter.
type stateHandler interface {
	Name() string
	Enter(w *sim.World)
	Exit(w *sim.World)
	Update(w *sim.World) sim.GameState
}

// State singletons (avoid allocations on transitions).
var (
	stateStart    stateHandler = startState{}
	statePlaying  stateHandler = playingState{}
	stateGameOver stateHandler = gameOverState{}
)

func handlerFor(s sim.GameState) stateHandler {
	switch s {
	case sim.StatePlaying:
		return statePlaying
	case sim.StateGameOver:
		return stateGameOver
	default:
		return stateStart
	}
}

type startState struct{}

type playingState struct{}

type gameOverState struct{}

func (startState) Name() string       { return "start" }
func (startState) Enter(w *sim.World) {}
func (startState) Exit(w *sim.World)  {}
func (startState) Update(w *sim.World) sim.GameState {
	if w.ConsumeReset() {
		return sim.StatePlaying
	}
	return sim.StateStart
}

func (playingState) Name() string { return "playing" }
func (playingState) Enter(w *sim.World) {
	w.Reset()
}
func (playingState) Exit(w *sim.World) {}
func (playingState) Update(w *sim.World) sim.GameState {
	// A session cannot be restarted mid-play.
	w.ConsumeReset()
	if w.FloorCrossed() {
		return sim.StateGameOver
	}
	return sim.StatePlaying
}

func (gameOverState) Name() string { return "gameover" }
func (gameOverState) Enter(w *sim.World) {
	w.Emit(sim.EventLose)
	recordScore(w)
}
func (gameOverState) Exit(w *sim.World) {}
func (gameOverState) Update(w *sim.World) sim.GameState {
	if w.ConsumeReset() {
		return sim.StatePlaying
	}
	return sim.StateGameOver
}

// recordScore updates the high score and leaderboard for a finished session
// and writes them through the world's store. Store failures are logged; the
// in-memory values are kept either way.
func recordScore(w *sim.World) {
	st := w.Store()

	if w.Score > w.HighScore {
		w.HighScore = w.Score
		if st != nil {
			if err := st.SetHighScore(w.Score); err != nil {
				log.Printf("state: persist high score: %v", err)
			}
		}
	}

	if w.Score <= 0 {
		return
	}

	board := w.Leaderboard
	if st != nil {
		board = st.Leaderboard()
	}
	w.Leaderboard = store.InsertScore(board, w.Score, sim.LeaderboardSize)
	if st != nil {
		if err := st.SetLeaderboard(w.Leaderboard); err != nil {
			log.Printf("state: persist leaderboard: %v", err)
		}
	}
}

// GameStateSystem drives START -> PLAYING -> GAMEOVER -> PLAYING.
type GameStateSystem struct {
	// Debug logs every transition.
	Debug bool
	// OnTransition, if set, is called after each transition.
	OnTransition func(from, to sim.GameState)
}

func NewGameStateSystem() *GameStateSystem {
	return &GameStateSystem{}
}

func (g *GameStateSystem) Update(w *sim.World) {
	if g == nil || w == nil {
		return
	}

	from := w.State
	current := handlerFor(from)
	next := current.Update(w)
	if next == from {
		return
	}

	current.Exit(w)
	w.State = next
	handlerFor(next).Enter(w)

	if g.Debug {
		log.Printf("state: %s -> %s (score=%d tick=%d)", current.Name(), handlerFor(next).Name(), w.Score, w.Tick)
	}
	if g.OnTransition != nil {
		g.OnTransition(from, next)
	}
}

// Pipeline returns the systems of one simulation tick in order.
func Pipeline(state *GameStateSystem) []sim.System {
	if state == nil {
		state = NewGameStateSystem()
	}
	return []sim.System{
		NewRigSystem(),
		NewBallSystem(),
		NewCollisionSystem(),
		state,
		NewEffectsSystem(),
	}
}
