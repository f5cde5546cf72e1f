package object

import (
	"github.com/tomz197/destroyds/internal/asset"
	"github.com/tomz197/destroyds/internal/physics"
)

// Bullet is a shot fired by the ship. Powered bullets only look different.
type Bullet struct {
	Body
	Powered bool
}

// NewBullet creates a bullet at pos travelling with vel.
func NewBullet(pos, vel physics.Vec2, sprite asset.Sprite, powered bool) *Bullet {
	return &Bullet{
		Body:    NewBody(pos, vel, sprite),
		Powered: powered,
	}
}

// Speed returns the bullet speed in units per tick.
func (b *Bullet) Speed() float64 {
	return b.Vel.Len()
}

// Draw paints the bullet along its flight direction.
func (b *Bullet) Draw(r Renderer) {
	r.DrawSprite(b.Sprite, b.Pos, b.Vel)
}
