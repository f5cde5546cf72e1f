package loop

import "time"

// Screen layout, as fractions of the play field unless noted.
const (
	menuTitleY     = 0.15
	menuSpacing    = 0.08
	overlayY       = 0.3
	overlayLine1   = 100.0 // Logical pixels below the overlay title, before scaling
	overlayLine2   = 175.0
	scoreTableX    = 0.05
	scoreTableY    = 0.25
	scoreRowOffset = 120.0 // Logical pixels below the table title, before scaling
	scoreRowStep   = 100.0
	scoreGridTop   = 80.0
	scoreGridH     = 280.0
	scoreGridW     = 0.25
	controlsY      = 0.95
)

// Audio cues
const (
	musicFadeOut = 600 * time.Millisecond
)

// Player
const (
	PlayerBlinkFrequency = 10.0 // Hz
)
