package sim

import (
	"github.com/google/uuid"

	"github.com/tomz197/destroyds/internal/config"
)

// Mode is the difficulty of a round.
type Mode int

const (
	ModeHard Mode = iota
	ModeEasy
)

func (m Mode) String() string {
	if m == ModeEasy {
		return "easy"
	}
	return "hard"
}

// Points is the score awarded per destroyed asteroid.
func (m Mode) Points() float64 {
	if m == ModeEasy {
		return config.ScoreEasy
	}
	return config.ScoreHard
}

// PowerUpInterval is the time between power-up waves in milliseconds.
func (m Mode) PowerUpInterval() int64 {
	if m == ModeEasy {
		return config.PowerUpIntervalEasy
	}
	return config.PowerUpIntervalHard
}

// Outcome describes how a round ended.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeLost
	OutcomeWon
)

func (o Outcome) String() string {
	switch o {
	case OutcomeLost:
		return "lost"
	case OutcomeWon:
		return "won"
	default:
		return "none"
	}
}

// Round is the bookkeeping of a single play session from launch to win or loss.
type Round struct {
	ID        uuid.UUID
	Mode      Mode
	Score     float64
	Destroyed int   // Asteroids destroyed by bullets
	StartedAt int64 // Clock time of launch
	EndedAt   int64 // Clock time of the win or loss
	LoseTime  int64 // Clock time of the last shield hit
	ShieldHit bool  // Set once the shield has absorbed a hit
	Outcome   Outcome
}

// Over reports whether the round has ended.
func (r Round) Over() bool {
	return r.Outcome != OutcomeNone
}

// DurationMs returns how long the round lasted, or 0 while it runs.
func (r Round) DurationMs() int64 {
	if !r.Over() {
		return 0
	}
	return r.EndedAt - r.StartedAt
}
