package asset

import (
	"fmt"
	"hash/fnv"
	"math/rand"
	"sort"

	"github.com/tomz197/destroyds/internal/physics"
)

// Logical sprite names.
const (
	Bullet            = "bullet"
	PoweredBullet     = "bullet1"
	BulletsPowerUp    = "bullets"
	SlowMotionPowerUp = "slow_motion"
	Explosion         = "explosion"
)

// AsteroidNames are the interchangeable asteroid images.
var AsteroidNames = []string{"asteroid", "asteroid1", "asteroid2"}

// SpaceshipNames are the selectable ship skins, indexed by skin number.
var SpaceshipNames = []string{"spaceship0", "spaceship1", "spaceship2", "spaceship3"}

// BackgroundNames are the star fields a game picks from.
var BackgroundNames = []string{"space", "space2", "space3", "space4", "space5"}

var backgroundStars = map[string]int{
	"space":  90,
	"space2": 140,
	"space3": 60,
	"space4": 200,
	"space5": 110,
}

// Catalog maps logical names to sprites drawn at a fixed resolution scale.
type Catalog struct {
	scale   float64
	sprites map[string]Sprite
}

// NewCatalog builds the sprite catalog with every width multiplied by scale.
func NewCatalog(scale float64) *Catalog {
	c := &Catalog{
		scale:   scale,
		sprites: make(map[string]Sprite),
	}

	for name, outline := range asteroidShapes {
		c.add(Sprite{Name: name, Width: asteroidWidth, Paths: [][]physics.Vec2{outline}})
	}
	for i, name := range SpaceshipNames {
		c.add(Sprite{Name: name, Width: spaceshipWidth, Paths: [][]physics.Vec2{spaceshipShapes[i]}})
	}
	c.add(Sprite{Name: Bullet, Width: bulletWidth, Paths: [][]physics.Vec2{diamond}, Filled: true})
	c.add(Sprite{Name: PoweredBullet, Width: poweredWidth, Paths: [][]physics.Vec2{diamond}, Filled: true})
	c.add(Sprite{Name: BulletsPowerUp, Width: powerUpWidth, Paths: bulletsPowerUp})
	c.add(Sprite{Name: SlowMotionPowerUp, Width: powerUpWidth, Paths: slowMotionPowerUp})
	c.add(Sprite{Name: Explosion, Width: explosionWidth, Paths: [][]physics.Vec2{explosionBurst}})

	return c
}

func (c *Catalog) add(s Sprite) {
	c.sprites[s.Name] = s.Scaled(c.scale)
}

// Scale returns the resolution scale the catalog was built with.
func (c *Catalog) Scale() float64 {
	return c.scale
}

// Sprite looks up a sprite by name.
func (c *Catalog) Sprite(name string) (Sprite, error) {
	s, ok := c.sprites[name]
	if !ok {
		return Sprite{}, fmt.Errorf("sprite %q: %w", name, ErrMissing)
	}
	return s, nil
}

// Sprites resolves several names at once, failing on the first unknown one.
func (c *Catalog) Sprites(names ...string) ([]Sprite, error) {
	out := make([]Sprite, 0, len(names))
	for _, name := range names {
		s, err := c.Sprite(name)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// Names lists every sprite in the catalog, sorted.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.sprites))
	for name := range c.sprites {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Background returns the star positions of a named background, normalized to
// [0,1) on both axes. The same name always yields the same stars.
func (c *Catalog) Background(name string) ([]physics.Vec2, error) {
	count, ok := backgroundStars[name]
	if !ok {
		return nil, fmt.Errorf("background %q: %w", name, ErrMissing)
	}

	h := fnv.New64a()
	h.Write([]byte(name))
	rng := rand.New(rand.NewSource(int64(h.Sum64())))

	stars := make([]physics.Vec2, count)
	for i := range stars {
		stars[i] = physics.Vec2{X: rng.Float64(), Y: rng.Float64()}
	}
	return stars, nil
}
