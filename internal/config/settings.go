package config

import (
	"math"

	"github.com/charmbracelet/log"
)

// Settings is the configuration surface fixed before a game starts.
// Values are always within range: Load and Clamp never reject input.
type Settings struct {
	Scale          float64 // Resolution scale factor in [MinScale, MaxScale]
	Width          int     // Effective logical width
	Height         int     // Effective logical height
	Asteroids      int     // Initial asteroid count
	Bullets        int     // Concurrent bullet cap
	PoweredBullets int     // Concurrent bullet cap while the bullet power-up is active
	SoundsDir      string  // Optional directory of <name>.wav overrides
	Seed           int64   // Random seed; 0 picks one from the clock
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return NewSettings(DefaultDisplayWidth, DefaultDisplayHeight, DefaultScale,
		DefaultAsteroids, DefaultBullets, DefaultPoweredBullets)
}

// NewSettings builds clamped settings from a display size and the tunable counts.
func NewSettings(displayW, displayH int, scale float64, asteroids, bullets, powered int) Settings {
	s := Settings{
		Scale:          scale,
		Asteroids:      asteroids,
		Bullets:        bullets,
		PoweredBullets: powered,
	}
	if math.IsNaN(s.Scale) || math.IsInf(s.Scale, 0) {
		s.Scale = DefaultScale
	}
	s.Scale = clampFloat(s.Scale, MinScale, MaxScale)
	s.Width = clampInt(int(float64(displayW)*s.Scale), MinWidth, MaxWidth)
	s.Height = clampInt(int(float64(displayH)*s.Scale), MinHeight, MaxHeight)
	s.Clamp()
	return s
}

// Clamp forces the counts into their valid ranges.
func (s *Settings) Clamp() {
	s.Scale = clampFloat(s.Scale, MinScale, MaxScale)
	s.Width = clampInt(s.Width, MinWidth, MaxWidth)
	s.Height = clampInt(s.Height, MinHeight, MaxHeight)
	s.Asteroids = clampInt(s.Asteroids, MinAsteroids, MaxAsteroids)
	s.Bullets = clampInt(s.Bullets, MinBullets, MaxBullets)
	s.PoweredBullets = clampInt(s.PoweredBullets, s.Bullets, MaxPoweredBullets)
}

// Load reads settings from the environment. Unparsable values fall back to
// their defaults and are reported on logger.
func Load(logger *log.Logger) Settings {
	if logger == nil {
		logger = log.Default()
	}

	intVar := func(key string, fallback int) int {
		v, ok := GetEnvInt(key, fallback)
		if !ok {
			logger.Warn("ignoring invalid setting", "key", key, "value", GetEnv(key, ""))
		}
		return v
	}
	scale, ok := GetEnvFloat("GAME_SCALE", DefaultScale)
	if !ok {
		logger.Warn("ignoring invalid setting", "key", "GAME_SCALE", "value", GetEnv("GAME_SCALE", ""))
	}

	s := NewSettings(
		intVar("DISPLAY_WIDTH", DefaultDisplayWidth),
		intVar("DISPLAY_HEIGHT", DefaultDisplayHeight),
		scale,
		intVar("GAME_ASTEROIDS", DefaultAsteroids),
		intVar("GAME_BULLETS", DefaultBullets),
		intVar("GAME_POWERED_BULLETS", DefaultPoweredBullets),
	)
	s.SoundsDir = GetEnv("GAME_SOUNDS_DIR", "")
	s.Seed = int64(intVar("GAME_SEED", 0))
	return s
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

func clampFloat(v, lo, hi float64) float64 {
	return max(lo, min(v, hi))
}
