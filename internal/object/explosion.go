package object

import (
	"github.com/tomz197/destroyds/internal/asset"
	"github.com/tomz197/destroyds/internal/physics"
)

// Explosion marks the place where the ship was destroyed.
type Explosion struct {
	Body
}

// NewExplosion creates a stationary explosion at pos.
func NewExplosion(pos physics.Vec2, sprite asset.Sprite) *Explosion {
	return &Explosion{Body: NewBody(pos, physics.Vec2{}, sprite)}
}
