package asset

import "github.com/tomz197/destroyds/internal/physics"

type v = physics.Vec2

// Base widths before the resolution scale is applied.
const (
	asteroidWidth  = 48.0
	spaceshipWidth = 40.0
	bulletWidth    = 10.0
	poweredWidth   = 12.0
	powerUpWidth   = 40.0
	explosionWidth = 60.0
)

var asteroidShapes = map[string][]v{
	"asteroid": {
		{0, -1}, {0.55, -0.8}, {0.95, -0.35}, {0.8, 0.2}, {1, 0.55},
		{0.45, 0.95}, {-0.1, 0.8}, {-0.6, 0.9}, {-0.95, 0.35}, {-0.8, -0.45},
	},
	"asteroid1": {
		{-0.2, -0.95}, {0.4, -1}, {0.9, -0.55}, {0.95, 0.1}, {0.6, 0.85},
		{0, 0.95}, {-0.5, 0.7}, {-1, 0.2}, {-0.75, -0.2}, {-0.9, -0.6},
	},
	"asteroid2": {
		{0.1, -1}, {0.7, -0.7}, {0.6, -0.25}, {1, 0.2}, {0.7, 0.75},
		{0.15, 1}, {-0.45, 0.85}, {-0.95, 0.4}, {-0.85, -0.3}, {-0.45, -0.85},
	},
}

var spaceshipShapes = [][]v{
	{{0, -1}, {0.7, 0.85}, {0, 0.45}, {-0.7, 0.85}},
	{{0, -1}, {0.35, -0.1}, {0.95, 0.7}, {0.3, 0.55}, {0, 0.9}, {-0.3, 0.55}, {-0.95, 0.7}, {-0.35, -0.1}},
	{{0, -1}, {0.5, 0}, {0.5, 0.9}, {0, 0.6}, {-0.5, 0.9}, {-0.5, 0}},
	{{0, -1}, {0.25, -0.4}, {0.9, 0.2}, {0.9, 0.6}, {0.25, 0.5}, {0, 0.95}, {-0.25, 0.5}, {-0.9, 0.6}, {-0.9, 0.2}, {-0.25, -0.4}},
}

var diamond = []v{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Three stacked rounds inside a frame.
var bulletsPowerUp = [][]v{
	{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}},
	{{-0.5, -0.7}, {-0.3, -0.5}, {-0.3, 0.6}, {-0.7, 0.6}, {-0.7, -0.5}},
	{{0, -0.7}, {0.2, -0.5}, {0.2, 0.6}, {-0.2, 0.6}, {-0.2, -0.5}},
	{{0.5, -0.7}, {0.7, -0.5}, {0.7, 0.6}, {0.3, 0.6}, {0.3, -0.5}},
}

// Hourglass inside a frame.
var slowMotionPowerUp = [][]v{
	{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}},
	{{-0.6, -0.7}, {0.6, -0.7}, {0, 0}, {0.6, 0.7}, {-0.6, 0.7}, {0, 0}},
}

var explosionBurst = []v{
	{0, -1}, {0.25, -0.35}, {0.85, -0.6}, {0.45, -0.05}, {1, 0.3},
	{0.3, 0.35}, {0.35, 0.95}, {0, 0.45}, {-0.4, 0.9}, {-0.35, 0.3},
	{-0.95, 0.4}, {-0.45, -0.05}, {-0.9, -0.7}, {-0.25, -0.35},
}
