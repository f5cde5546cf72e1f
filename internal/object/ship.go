package object

import (
	"github.com/tomz197/destroyds/internal/asset"
	"github.com/tomz197/destroyds/internal/config"
	"github.com/tomz197/destroyds/internal/physics"
)

// shieldGap is the distance between the hull and the shield ring.
const shieldGap = 8.0

// Ship is the player-controlled spaceship.
type Ship struct {
	Body
	Direction physics.Vec2 // Unit heading
	Shield    bool
	Skin      int
}

// NewShip creates a stationary ship at pos pointing up.
func NewShip(pos physics.Vec2, sprite asset.Sprite, skin int, shield bool) *Ship {
	return &Ship{
		Body:      NewBody(pos, physics.Vec2{}, sprite),
		Direction: physics.Up,
		Shield:    shield,
		Skin:      skin,
	}
}

// Rotate turns the heading by the ship's maneuverability.
func (s *Ship) Rotate(clockwise bool) {
	angle := config.ShipManeuverability
	if !clockwise {
		angle = -angle
	}
	s.Direction = s.Direction.Rotate(angle)
}

// Accelerate thrusts along the heading. Very slow ships get an extra kick,
// ships close to the limit keep a gentler push, and speed is capped.
func (s *Ship) Accelerate() {
	s.Vel = s.Vel.Add(s.Direction.Scale(config.ShipAcceleration))

	switch speed := s.Vel.Len(); {
	case speed < 0.5:
		s.Vel = s.Vel.Add(s.Direction.Scale(config.ShipAcceleration * 2))
	case speed > 9.5 && speed < config.ShipMaxSpeed:
		s.Vel = s.Vel.Add(s.Direction.Scale(config.ShipAcceleration * 0.8))
	case speed >= config.ShipMaxSpeed:
		s.Vel = s.Vel.ScaleToLength(config.ShipMaxSpeed)
	}
}

// ApplyFriction slows the ship down when it is not thrusting.
func (s *Ship) ApplyFriction() {
	s.Vel = s.Vel.Add(s.Vel.Scale(config.ShipFriction))
}

// Bounce pushes the ship back inside a w×h screen. The position is left as is;
// only the velocity component of the crossed edge is replaced.
func (s *Ship) Bounce(w, h float64) {
	x, y := s.Vel.X, s.Vel.Y
	if s.Pos.X >= w {
		s.Vel = physics.Vec2{X: -config.ShipBounceSpeed, Y: y}
	}
	if s.Pos.Y >= h {
		s.Vel = physics.Vec2{X: x, Y: -config.ShipBounceSpeed}
	}
	if s.Pos.X <= 0 {
		s.Vel = physics.Vec2{X: config.ShipBounceSpeed, Y: y}
	}
	if s.Pos.Y <= 0 {
		s.Vel = physics.Vec2{X: x, Y: config.ShipBounceSpeed}
	}
}

// BreakShield drops the shield and knocks the ship back.
func (s *Ship) BreakShield() {
	s.Shield = false
	s.Vel = s.Vel.Scale(config.ShieldKnockback)
}

// MuzzleVelocity returns the velocity of a bullet fired right now.
// The bullet speed depends on the ship speed so shots never crawl and never fly
// off much faster than the ship can follow.
func (s *Ship) MuzzleVelocity() physics.Vec2 {
	speed := s.Vel.Len()
	aim := func(length, factor float64) physics.Vec2 {
		return s.Direction.ScaleToLength(length).Scale(factor).Add(s.Vel)
	}

	var out physics.Vec2
	switch {
	case speed <= 3:
		out = aim(6, 1.2)
		if out.Len() < 5.5 {
			out = aim(7, 1.2)
		}
	case speed <= 6:
		out = aim(5.5, 1)
		if out.Len() < 5 {
			out = aim(7, 1.4)
		}
	case speed <= 10:
		out = aim(4, 1)
	default:
		out = aim(3, 1)
	}

	// Shooting backwards while moving: boost the shot so it leaves the ship.
	if out.Len() < speed {
		switch l := out.Len(); {
		case l <= 5.5:
			out = aim(8.5, 1.6)
		case l <= 8:
			out = aim(6, 1.8)
		default:
			out = aim(5, 1.8)
		}

		switch l := out.Len(); {
		case l < 4.6:
			out = aim(10, 1.9)
		case l > 8.5:
			out = aim(6, 1.5)
		}
	}
	return out
}

// Shoot creates a bullet at the ship position.
func (s *Ship) Shoot(sprite asset.Sprite, powered bool) *Bullet {
	return NewBullet(s.Pos, s.MuzzleVelocity(), sprite, powered)
}

// Draw paints the hull along the heading and the shield ring when it is up.
func (s *Ship) Draw(r Renderer) {
	if s.Shield {
		r.DrawRing(s.Pos, s.Radius+shieldGap)
	}
	r.DrawSprite(s.Sprite, s.Pos, s.Direction)
}
