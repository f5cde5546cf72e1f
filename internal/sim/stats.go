package sim

import (
	"github.com/tomz197/destroyds/internal/config"
)

// RunStatistics outlives individual games: it is created once per process (or
// per SSH session) and handed to every engine built on restart.
type RunStatistics struct {
	Scores        *ScoreBoard
	Rounds        int     // Rounds finished, won or lost
	FastestBullet float64 // Fastest bullet fired in any round, units per tick
	Shield        bool    // Easy mode: new ships start with a shield
	ShipKind      int     // Selected ship skin
	TimePlayedMs  int64   // Sum of finished round durations
}

// NewRunStatistics returns empty statistics with a top-3 score board.
func NewRunStatistics() *RunStatistics {
	return &RunStatistics{Scores: NewScoreBoard(config.TopScoreSize)}
}

// Mode returns the game mode new rounds start in.
func (s *RunStatistics) Mode() Mode {
	if s.Shield {
		return ModeEasy
	}
	return ModeHard
}

// ToggleMode switches between easy and hard mode.
func (s *RunStatistics) ToggleMode() {
	s.Shield = !s.Shield
}

// NextShip cycles through the ship skins.
func (s *RunStatistics) NextShip() {
	s.ShipKind = (s.ShipKind + 1) % config.ShipSkins
}

// RecordBullet keeps the fastest bullet speed seen so far.
func (s *RunStatistics) RecordBullet(speed float64) {
	if speed > s.FastestBullet {
		s.FastestBullet = speed
	}
}
