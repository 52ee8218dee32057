package sim

import "github.com/jakecoffman/cp"

// GameState is the top-level game phase.
type GameState int

const (
	StateStart GameState = iota
	StatePlaying
	StateGameOver
)

func (s GameState) String() string {
	switch s {
	case StateStart:
		return "start"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Foot is a rig end effector. Vel is the per-tick position delta, not an
// integrated quantity.
type Foot struct {
	Pos  cp.Vector
	Vel  cp.Vector
	Last cp.Vector
}

// Rig is the two-legged player. Left is a passive stance marker; only Right
// follows input and collides with the ball.
type Rig struct {
	Hip        cp.Vector
	LegLength  float64
	FootRadius float64
	Left       Foot
	Right      Foot
}

// Ball is the juggled circle. Rotation and AngularVelocity only drive the
// rendered spin.
type Ball struct {
	Pos             cp.Vector
	Vel             cp.Vector
	Radius          float64
	Rotation        float64
	AngularVelocity float64
}

// InputState is the normalized player intent. IsTouch latches once any touch
// event has been seen.
type InputState struct {
	Pos     cp.Vector
	Active  bool
	IsTouch bool
}

// Particle is a kick burst fragment.
type Particle struct {
	Pos  cp.Vector
	Vel  cp.Vector
	Life float64
	Size float64
	Gold bool
}

// Shockwave is an expanding ring spawned on a kick.
type Shockwave struct {
	Pos    cp.Vector
	Radius float64
	Speed  float64
	Alpha  float64
	Width  float64
}
