package object

import (
	"math/rand"

	"github.com/tomz197/destroyds/internal/asset"
	"github.com/tomz197/destroyds/internal/config"
	"github.com/tomz197/destroyds/internal/physics"
)

// AsteroidSize represents the size category of an asteroid.
type AsteroidSize int

const (
	AsteroidSmall  AsteroidSize = 1
	AsteroidMedium AsteroidSize = 2
	AsteroidLarge  AsteroidSize = 3
)

// Sprite scale per size category.
var asteroidScales = map[AsteroidSize]float64{
	AsteroidSmall:  0.7,
	AsteroidMedium: 1.2,
	AsteroidLarge:  2.1,
}

// Valid reports whether s is one of the three size categories.
func (s AsteroidSize) Valid() bool {
	return s >= AsteroidSmall && s <= AsteroidLarge
}

// Asteroid is a space rock that splits when destroyed.
type Asteroid struct {
	Body
	Size     AsteroidSize
	Heading  physics.Vec2 // Display rotation only
	Spin     float64      // Degrees per tick
	variants []asset.Sprite
}

// NewAsteroid creates an asteroid at pos with a random sprite variant, a random
// velocity and a random spin. variants holds the unscaled asteroid images.
func NewAsteroid(rng *rand.Rand, pos physics.Vec2, size AsteroidSize, variants []asset.Sprite) *Asteroid {
	sprite := variants[rng.Intn(len(variants))].Scaled(asteroidScales[size])
	vel := physics.RandomVelocity(rng, config.AsteroidMinSpeed, config.AsteroidMaxSpeed)

	return &Asteroid{
		Body:     NewBody(pos, vel, sprite),
		Size:     size,
		Heading:  physics.Up,
		Spin:     randomSpin(rng),
		variants: variants,
	}
}

func randomSpin(rng *rand.Rand) float64 {
	speed := 0.3
	if rng.Intn(2) == 1 {
		speed = 0.4
	}
	if rng.Intn(2) == 1 {
		return -speed
	}
	return speed
}

// Split returns the two children of a destroyed asteroid, one size smaller and
// at the same position with fresh velocities. The smallest asteroids leave nothing.
func (a *Asteroid) Split(rng *rand.Rand) []*Asteroid {
	if a.Size <= AsteroidSmall {
		return nil
	}
	return []*Asteroid{
		NewAsteroid(rng, a.Pos, a.Size-1, a.variants),
		NewAsteroid(rng, a.Pos, a.Size-1, a.variants),
	}
}

// Bounce reflects the asteroid off an inset border of a w×h screen. The inset
// depends on the size and is multiplied by scale. In menu mode the bottom bound
// is the middle of the screen and only downward motion is turned around there.
func (a *Asteroid) Bounce(w, h, scale float64, menu bool) {
	inset := config.AsteroidInset[int(a.Size)] * scale
	pad := config.AsteroidClampPad
	right := w - inset
	bottom := h - inset

	if a.Pos.X > right {
		a.Pos.X = right - pad
		a.Vel.X = -a.Vel.X
	}
	if a.Pos.X < inset {
		a.Pos.X = inset + pad
		a.Vel.X = -a.Vel.X
	}
	if a.Pos.Y < inset {
		a.Pos.Y = inset + pad
		a.Vel.Y = -a.Vel.Y
	}

	if menu {
		limit := (bottom + config.AsteroidInset[int(AsteroidLarge)]*scale) / 2
		if a.Pos.Y > limit && a.Vel.Y > 0 {
			a.Vel.Y = -a.Vel.Y
		}
		return
	}
	if a.Pos.Y > bottom {
		a.Pos.Y = bottom - pad
		a.Vel.Y = -a.Vel.Y
	}
}

// RandomRotation advances the cosmetic rotation by one tick.
func (a *Asteroid) RandomRotation() {
	a.Heading = a.Heading.Rotate(a.Spin)
}

// Draw paints the asteroid at its current rotation.
func (a *Asteroid) Draw(r Renderer) {
	r.DrawSprite(a.Sprite, a.Pos, a.Heading)
}
