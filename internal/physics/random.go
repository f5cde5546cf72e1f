package physics

import "math/rand"

// RandomVelocity returns a vector with an integer speed in [minSpeed, maxSpeed]
// pointing in a random whole-degree direction in [0, 360].
func RandomVelocity(rng *rand.Rand, minSpeed, maxSpeed int) Vec2 {
	speed := minSpeed + rng.Intn(maxSpeed-minSpeed+1)
	angle := rng.Intn(361)
	return Vec2{X: 0, Y: float64(speed)}.Rotate(float64(angle))
}

// RandomPosition returns a position inside the play field with a 70 unit margin:
// x in [0, w-70), y in [70, h-70).
func RandomPosition(rng *rand.Rand, w, h int) Vec2 {
	return Vec2{
		X: float64(randRange(rng, 70, w) - 70),
		Y: float64(randRange(rng, 70, h-70)),
	}
}

// MenuRandomPosition returns a position in the upper half of the screen,
// x in [100, w-100), y in [100, h/2).
func MenuRandomPosition(rng *rand.Rand, w, h int) Vec2 {
	return Vec2{
		X: float64(randRange(rng, 100, w-100)),
		Y: float64(randRange(rng, 100, h/2)),
	}
}

// randRange returns an int in [lo, hi). Empty ranges collapse to lo.
func randRange(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo)
}
