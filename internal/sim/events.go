package sim

import (
	"github.com/tomz197/destroyds/internal/object"
	"github.com/tomz197/destroyds/internal/physics"
)

// EventKind identifies something that happened during a tick.
type EventKind int

const (
	EventShot EventKind = iota
	EventAsteroidDestroyed
	EventShieldBroken
	EventShipDestroyed
	EventPowerUpCollected
	EventWon
)

func (k EventKind) String() string {
	switch k {
	case EventShot:
		return "shot"
	case EventAsteroidDestroyed:
		return "asteroid_destroyed"
	case EventShieldBroken:
		return "shield_broken"
	case EventShipDestroyed:
		return "ship_destroyed"
	case EventPowerUpCollected:
		return "powerup_collected"
	case EventWon:
		return "won"
	default:
		return "unknown"
	}
}

// Event is reported by the engine so the game can play cues.
type Event struct {
	Kind    EventKind
	Pos     physics.Vec2
	Size    object.AsteroidSize // EventAsteroidDestroyed
	PowerUp object.PowerUpKind  // EventPowerUpCollected
	Powered bool                // EventShot
}
