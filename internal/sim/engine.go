// Package sim advances a game world one fixed tick at a time: movement,
// boundary bounces, collisions, asteroid splitting, power-up timers and scoring.
package sim

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/tomz197/destroyds/internal/asset"
	"github.com/tomz197/destroyds/internal/config"
	"github.com/tomz197/destroyds/internal/object"
	"github.com/tomz197/destroyds/internal/physics"
)

// Controls is the held input applied to the ship on a tick.
type Controls struct {
	Left   bool
	Right  bool
	Thrust bool
}

// sprites holds every image the engine hands to new entities.
type sprites struct {
	asteroids []asset.Sprite
	ships     []asset.Sprite
	bullet    asset.Sprite
	powered   asset.Sprite
	explosion asset.Sprite
	powerUps  map[object.PowerUpKind]asset.Sprite
}

func loadSprites(c *asset.Catalog) (sprites, error) {
	var s sprites
	var err error

	if s.asteroids, err = c.Sprites(asset.AsteroidNames...); err != nil {
		return s, err
	}
	if s.ships, err = c.Sprites(asset.SpaceshipNames...); err != nil {
		return s, err
	}
	single, err := c.Sprites(asset.Bullet, asset.PoweredBullet, asset.Explosion)
	if err != nil {
		return s, err
	}
	s.bullet, s.powered, s.explosion = single[0], single[1], single[2]

	s.powerUps = make(map[object.PowerUpKind]asset.Sprite, len(object.PowerUpKinds))
	for _, kind := range object.PowerUpKinds {
		sp, err := c.Sprite(kind.SpriteName())
		if err != nil {
			return s, err
		}
		s.powerUps[kind] = sp
	}
	return s, nil
}

// Engine owns every entity of one game. It is not safe for concurrent use;
// the game loop drives it from a single goroutine.
type Engine struct {
	settings config.Settings
	width    float64
	height   float64
	clock    Clock
	rng      *rand.Rand
	stats    *RunStatistics
	sprites  sprites
	spawner  *object.AsteroidSpawner
	grid     *physics.SpatialGrid

	Ship       *object.Ship // nil in the menu and after a fatal hit
	Asteroids  []*object.Asteroid
	Bullets    []*object.Bullet
	PowerUps   []*object.PowerUp
	Explosions []*object.Explosion
	Debris     []*object.Debris
	Round      Round

	menu        bool
	bulletPower bool
	slowPower   bool
	slowActive  bool
	powerWindow int64 // Clock time of the last pickup or the launch

	spawned []*object.Asteroid // Children created during the current pass
	events  []Event
}

// NewEngine builds a game in menu mode with the initial asteroid population.
// Missing sprites are reported as errors wrapping asset.ErrMissing.
func NewEngine(settings config.Settings, catalog *asset.Catalog, stats *RunStatistics, clock Clock, rng *rand.Rand) (*Engine, error) {
	sp, err := loadSprites(catalog)
	if err != nil {
		return nil, fmt.Errorf("load sprites: %w", err)
	}
	if stats == nil {
		stats = NewRunStatistics()
	}

	e := &Engine{
		settings: settings,
		width:    float64(settings.Width),
		height:   float64(settings.Height),
		clock:    clock,
		rng:      rng,
		stats:    stats,
		sprites:  sp,
		spawner:  object.NewAsteroidSpawner(settings.Asteroids, sp.asteroids),
		grid:     physics.NewSpatialGrid(float64(settings.Width), float64(settings.Height), 0),
		menu:     true,
	}
	e.Asteroids = e.spawner.Fill(rng, 0, settings.Width, settings.Height)
	return e, nil
}

// Width returns the logical play field width.
func (e *Engine) Width() float64 { return e.width }

// Height returns the logical play field height.
func (e *Engine) Height() float64 { return e.height }

// Stats returns the run statistics the engine reports into.
func (e *Engine) Stats() *RunStatistics { return e.stats }

// InMenu reports whether the round has not been launched yet.
func (e *Engine) InMenu() bool { return e.menu }

// BulletPower reports whether the bullet power-up is active.
func (e *Engine) BulletPower() bool { return e.bulletPower }

// SlowMotion reports whether the slow motion power-up is active.
func (e *Engine) SlowMotion() bool { return e.slowPower }

// Won reports whether the round was won.
func (e *Engine) Won() bool { return e.Round.Outcome == OutcomeWon }

// Lost reports whether the ship was destroyed.
func (e *Engine) Lost() bool { return e.Round.Outcome == OutcomeLost }

// SpawnPoint is where ships appear: centred horizontally, low on the screen.
func (e *Engine) SpawnPoint() physics.Vec2 {
	return physics.Vec2{
		X: float64(e.settings.Width / 2),
		Y: float64(int(e.height * config.InitialShipHeightFactor)),
	}
}

// PreviewShip returns the ship a launch would create, for drawing in the menu.
func (e *Engine) PreviewShip() *object.Ship {
	kind := e.stats.ShipKind % len(e.sprites.ships)
	return object.NewShip(e.SpawnPoint(), e.sprites.ships[kind], kind, e.stats.Shield)
}

// GraceRemaining returns how long the ship stays invulnerable after a shield hit.
func (e *Engine) GraceRemaining() int64 {
	if !e.Round.ShieldHit {
		return 0
	}
	return max(0, e.Round.LoseTime+config.InvulnerabilityMs-e.clock.Now())
}

// Launch leaves the menu: it spawns the ship, fixes the mode from the run
// statistics and arms the power-up timer. The menu asteroids stay in play.
func (e *Engine) Launch() {
	if !e.menu {
		return
	}
	now := e.clock.Now()
	e.menu = false
	e.Ship = e.PreviewShip()
	e.powerWindow = now
	e.Round = Round{
		ID:        uuid.New(),
		Mode:      e.stats.Mode(),
		StartedAt: now,
	}
}

// StepMenu advances the menu animation: asteroids drift and spin in the top half.
func (e *Engine) StepMenu() {
	for _, a := range e.Asteroids {
		a.Move()
		a.RandomRotation()
		a.Bounce(e.width, e.height, e.settings.Scale, true)
	}
}

// Control applies held input to the ship. Without thrust the ship slows down.
func (e *Engine) Control(c Controls) {
	if e.Ship == nil {
		return
	}
	if c.Right {
		e.Ship.Rotate(true)
	}
	if c.Left {
		e.Ship.Rotate(false)
	}
	if c.Thrust {
		e.Ship.Accelerate()
	} else {
		e.Ship.ApplyFriction()
	}
}

// BulletCap returns how many bullets may be in flight right now.
// Once every asteroid is gone the cap no longer applies and 0 is returned.
func (e *Engine) BulletCap() int {
	switch {
	case len(e.Asteroids) == 0:
		return 0
	case e.bulletPower:
		return e.settings.PoweredBullets
	default:
		return e.settings.Bullets
	}
}

// Shoot fires a bullet if the ship exists and the cap allows it.
func (e *Engine) Shoot() bool {
	if e.Ship == nil {
		return false
	}
	if limit := e.BulletCap(); limit > 0 && len(e.Bullets) >= limit {
		return false
	}

	powered := e.bulletPower && len(e.Asteroids) > 0
	sprite := e.sprites.bullet
	if powered {
		sprite = e.sprites.powered
	}
	b := e.Ship.Shoot(sprite, powered)
	e.Bullets = append(e.Bullets, b)
	e.stats.RecordBullet(b.Speed())
	e.emit(Event{Kind: EventShot, Pos: b.Pos, Powered: powered})
	return true
}

// Step advances the round by one tick and returns what happened, including
// shots fired since the previous step.
func (e *Engine) Step() []Event {
	if e.menu {
		e.StepMenu()
		return e.drain()
	}
	now := e.clock.Now()

	e.moveAll()

	if e.Ship != nil {
		if now-e.powerWindow > config.PowerUpDurationMs {
			e.bulletPower = false
		}
		if !e.Won() && now-e.powerWindow > e.Round.Mode.PowerUpInterval() {
			e.spawnPowerUps()
		}
		e.collectPowerUps(now)
		e.collideShip(now)
	}

	e.updateSlowMotion(now)
	e.collideBullets()

	if e.Won() || e.Ship == nil {
		for _, p := range e.PowerUps {
			p.MarkDestroyed()
		}
	}

	field := physics.Rect{W: e.width, H: e.height}
	for _, b := range e.Bullets {
		if !field.Contains(b.Pos) {
			b.MarkDestroyed()
		}
	}

	e.commit()
	e.bounce()
	e.detectWin(now)

	return e.drain()
}

func (e *Engine) moveAll() {
	for _, a := range e.Asteroids {
		a.Move()
	}
	for _, b := range e.Bullets {
		b.Move()
	}
	for _, p := range e.PowerUps {
		p.Move()
	}
	for _, x := range e.Explosions {
		x.Move()
	}
	if e.Ship != nil {
		e.Ship.Move()
	}

	kept := e.Debris[:0]
	for _, d := range e.Debris {
		if d.Update() {
			object.ReleaseObject(d)
			continue
		}
		kept = append(kept, d)
	}
	clear(e.Debris[len(kept):])
	e.Debris = kept
}

func (e *Engine) bounce() {
	if e.Ship != nil {
		e.Ship.Bounce(e.width, e.height)
	}
	for _, a := range e.Asteroids {
		a.Bounce(e.width, e.height, e.settings.Scale, false)
	}
}

func (e *Engine) detectWin(now int64) {
	if e.Ship == nil || e.Round.Over() || len(e.Asteroids) > 0 {
		return
	}
	e.endRound(now, OutcomeWon)
	e.emit(Event{Kind: EventWon, Pos: e.Ship.Pos})
}

// endRound finalizes the round statistics and commits the score once.
func (e *Engine) endRound(now int64, outcome Outcome) {
	e.Round.Outcome = outcome
	e.Round.EndedAt = now
	e.stats.Rounds++
	e.stats.TimePlayedMs += e.Round.DurationMs()
	e.stats.Scores.Commit(e.Round.Score)
}

// destroyAsteroid removes an asteroid, queues its children and throws debris.
func (e *Engine) destroyAsteroid(a *object.Asteroid) {
	a.MarkDestroyed()
	e.spawned = append(e.spawned, a.Split(e.rng)...)
	e.Debris = append(e.Debris, object.Burst(e.rng, a.Pos, int(a.Size)*4, 2, 30)...)
}

// commit drops everything marked destroyed and adds the asteroids spawned
// during the pass.
func (e *Engine) commit() {
	e.Asteroids = compact(e.Asteroids)
	e.Bullets = compact(e.Bullets)
	e.PowerUps = compact(e.PowerUps)

	e.Asteroids = append(e.Asteroids, e.spawned...)
	clear(e.spawned)
	e.spawned = e.spawned[:0]
}

func compact[T object.Destructible](s []T) []T {
	kept := s[:0]
	for _, v := range s {
		if !v.IsDestroyed() {
			kept = append(kept, v)
		}
	}
	clear(s[len(kept):])
	return kept
}

func (e *Engine) emit(ev Event) {
	e.events = append(e.events, ev)
}

func (e *Engine) drain() []Event {
	if len(e.events) == 0 {
		return nil
	}
	out := e.events
	e.events = nil
	return out
}
