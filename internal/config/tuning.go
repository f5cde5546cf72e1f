package config

import "time"

// Game configuration constants.
// All tunable game parameters are centralized here for easy adjustment.

// Frame timing
const (
	TargetFPS       = 60
	TargetFrameTime = time.Second / TargetFPS
)

// Resolution limits (logical pixels)
const (
	MinWidth  = 800
	MaxWidth  = 1920
	MinHeight = 600
	MaxHeight = 1080
	MinScale  = 0.5
	MaxScale  = 1.0
)

// Defaults for the configuration surface
const (
	DefaultDisplayWidth     = 1920
	DefaultDisplayHeight    = 1080
	DefaultScale            = 0.75
	DefaultAsteroids        = 6
	DefaultBullets          = 3
	DefaultPoweredBullets   = 5
	MinAsteroids            = 1
	MaxAsteroids            = 20
	MinBullets              = 1
	MaxBullets              = 10
	MaxPoweredBullets       = 15
	InitialShipHeightFactor = 0.77 // Ship spawns at this fraction of the screen height
)

// Ship
const (
	ShipManeuverability = 5.0    // Degrees per tick
	ShipAcceleration    = 0.2    // Units per tick²
	ShipFriction        = -0.015 // Velocity fraction lost per tick without thrust
	ShipMaxSpeed        = 11.0
	ShipBounceSpeed     = 5.0 // Inward speed forced at the screen edges
	ShieldKnockback     = -1.3
	ShipSkins           = 4
)

// Asteroids
const (
	AsteroidMinSpeed = 4
	AsteroidMaxSpeed = 6
	AsteroidClampPad = 5.0 // Distance kept inside the inset after a bounce
)

// AsteroidInset is the bounce inset per asteroid size before resolution scaling.
var AsteroidInset = map[int]float64{
	3: 50,
	2: 35,
	1: 25,
}

// Timers (milliseconds on the shared game clock)
const (
	InvulnerabilityMs    = 600
	PowerUpIntervalEasy  = 5000
	PowerUpIntervalHard  = 8000
	PowerUpDurationMs    = 2000
	PowerUpSeparation    = 100.0
	PowerUpSpawnAttempts = 64
)

// Slow motion
const (
	SlowMotionFactor    = 0.3
	SlowMotionRestore   = 3.33
	SlowMotionThreshold = 4.0 // Only asteroids slower than this are restored
)

// Scoring
const (
	ScoreHard    = 1.0
	ScoreEasy    = 0.5
	TopScoreSize = 3
)

// Menu
const (
	MenuDividerOffset = 100.0 // Divider sits this far below the half-screen line
)
