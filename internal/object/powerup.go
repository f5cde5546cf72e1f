package object

import (
	"github.com/tomz197/destroyds/internal/asset"
	"github.com/tomz197/destroyds/internal/physics"
)

// PowerUpKind identifies the effect of a power-up.
type PowerUpKind int

const (
	PowerUpBullets PowerUpKind = iota
	PowerUpSlowMotion
)

// PowerUpKinds lists every kind in spawn order.
var PowerUpKinds = []PowerUpKind{PowerUpBullets, PowerUpSlowMotion}

func (k PowerUpKind) String() string {
	switch k {
	case PowerUpBullets:
		return "bullets"
	case PowerUpSlowMotion:
		return "slow_motion"
	default:
		return "unknown"
	}
}

// SpriteName returns the catalog name of the power-up image.
func (k PowerUpKind) SpriteName() string {
	switch k {
	case PowerUpSlowMotion:
		return asset.SlowMotionPowerUp
	default:
		return asset.BulletsPowerUp
	}
}

// PowerUp is a stationary pickup.
type PowerUp struct {
	Body
	Kind PowerUpKind
}

// NewPowerUp places a power-up of the given kind at pos.
func NewPowerUp(pos physics.Vec2, kind PowerUpKind, sprite asset.Sprite) *PowerUp {
	return &PowerUp{
		Body: NewBody(pos, physics.Vec2{}, sprite),
		Kind: kind,
	}
}
