package object

import (
	"math"
	"math/rand"
	"sync"

	"github.com/tomz197/destroyds/internal/physics"
)

// debrisPool is a sync.Pool for reusing Debris objects to reduce allocations.
var debrisPool = sync.Pool{
	New: func() any {
		return &Debris{}
	},
}

// Debris is a short-lived cosmetic particle thrown off by destroyed objects.
// It never collides with anything.
type Debris struct {
	Pos     physics.Vec2
	Vel     physics.Vec2
	Life    int     // Ticks remaining
	MaxLife int     // Initial lifetime (for fade calculation)
	Drag    float64 // Velocity kept per tick (1.0 = no drag)
}

// NewDebris creates a single particle from the pool.
func NewDebris(pos, vel physics.Vec2, life int) *Debris {
	d := debrisPool.Get().(*Debris)
	d.Pos = pos
	d.Vel = vel
	d.Life = life
	d.MaxLife = life
	d.Drag = 0.95
	return d
}

// Release returns the particle to the pool for reuse.
// Should be called when the particle is removed from the game.
func (d *Debris) Release() {
	debrisPool.Put(d)
}

// Burst creates count particles flying out of pos in random directions.
// speed is in units per tick and life in ticks; both vary per particle.
func Burst(rng *rand.Rand, pos physics.Vec2, count int, speed float64, life int) []*Debris {
	out := make([]*Debris, 0, count)
	for i := 0; i < count; i++ {
		angle := rng.Float64() * 2 * math.Pi
		// Random speed variation (50% to 150%)
		spd := speed * (0.5 + rng.Float64())
		// Random lifetime variation (50% to 100%)
		l := max(1, int(float64(life)*(0.5+rng.Float64()*0.5)))

		vel := physics.Vec2{X: math.Cos(angle) * spd, Y: math.Sin(angle) * spd}
		out = append(out, NewDebris(pos, vel, l))
	}
	return out
}

// Update moves the particle one tick. Returns true once it has burnt out.
func (d *Debris) Update() bool {
	d.Life--
	if d.Life <= 0 {
		return true
	}
	d.Vel = d.Vel.Scale(d.Drag)
	d.Pos = d.Pos.Add(d.Vel)
	return false
}

// Draw renders the particle as a single pixel until it has mostly faded.
func (d *Debris) Draw(r Renderer) {
	if d.MaxLife > 0 && float64(d.Life)/float64(d.MaxLife) < 0.25 {
		return
	}
	r.DrawPoint(d.Pos)
}
