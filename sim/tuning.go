package sim

// Reference playfield the scale factor is measured against.
const (
	BaseWidth  = 400.0
	BaseHeight = 750.0
	MinScale   = 0.6
	MaxScale   = 1.4
)

// Ball dynamics, per tick.
const (
	Gravity       = 0.18
	AirResistance = 0.992
	WallDamping   = 0.5
	SpinDamping   = 0.98
)

// Sizes at scale 1. Leg length follows the playfield height instead.
const (
	BallRadius        = 32.0
	FootRadius        = 16.0
	LegLengthRatio    = 0.15
	HipHeightRatio    = 0.68
	BallStartRatio    = 0.2
	RestFootOffset    = 35.0
	ParkedInputOffset = 40.0
)

// Rig.
const (
	RightReachFactor = 3.0
	SwayFollow       = 0.3
	SwayCenterWeight = 0.4
	SwayInputWeight  = 0.6
)

// Foot/ball contact.
const (
	HitboxFactor        = 1.35
	Restitution         = 0.5
	SideKickNormalLimit = 0.5
	SideKickDamping     = 0.5
	KickPower           = 0.45
	MaxBallSpeedX       = 10.0
	SpinTransfer        = 0.03
	ScoreLiftVelocity   = -2.0 // post-kick vy must be below this to score
)

// Kick blast visuals.
const (
	BlastParticles      = 15
	ParticleSpread      = 20.0
	ParticleDecay       = 0.04
	ParticleMinSize     = 2.0
	ParticleSizeRange   = 6.0
	ShockwaveRadius     = 10.0
	ShockwaveSpeed      = 8.0
	ShockwaveWidth      = 5.0
	ShockwaveFade       = 0.08
	ShockwaveWidthDecay = 0.9
)

const LeaderboardSize = 10
