package object

import (
	"math/rand"

	"github.com/tomz197/destroyds/internal/asset"
	"github.com/tomz197/destroyds/internal/physics"
)

// AsteroidSpawner fills the field with large asteroids up to a target count.
type AsteroidSpawner struct {
	target   int
	variants []asset.Sprite
}

// NewAsteroidSpawner creates a spawner with a target asteroid count.
func NewAsteroidSpawner(target int, variants []asset.Sprite) *AsteroidSpawner {
	if target < 0 {
		target = 0
	}
	return &AsteroidSpawner{
		target:   target,
		variants: variants,
	}
}

// Fill returns the large asteroids needed to bring current up to the target.
// They are placed in the upper half of a w×h screen, where the menu keeps them.
func (s *AsteroidSpawner) Fill(rng *rand.Rand, current, w, h int) []*Asteroid {
	var out []*Asteroid
	for n := current; n < s.target; n++ {
		pos := physics.MenuRandomPosition(rng, w, h)
		out = append(out, NewAsteroid(rng, pos, AsteroidLarge, s.variants))
	}
	return out
}
