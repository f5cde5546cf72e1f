package sim

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/uuid"

	"github.com/tomz197/destroyds/internal/asset"
	"github.com/tomz197/destroyds/internal/config"
	"github.com/tomz197/destroyds/internal/object"
	"github.com/tomz197/destroyds/internal/physics"
)

func newTestEngine(t *testing.T, easy bool) (*Engine, *ManualClock) {
	t.Helper()

	clock := &ManualClock{}
	clock.Set(10_000)
	stats := NewRunStatistics()
	stats.Shield = easy

	settings := config.NewSettings(800, 600, 1, 6, 3, 5)
	e, err := NewEngine(settings, asset.NewCatalog(1), stats, clock, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return e, clock
}

func launched(t *testing.T, easy bool) (*Engine, *ManualClock) {
	t.Helper()
	e, clock := newTestEngine(t, easy)
	e.Launch()
	return e, clock
}

func (e *Engine) testAsteroid(pos, vel physics.Vec2, size object.AsteroidSize) *object.Asteroid {
	a := object.NewAsteroid(e.rng, pos, size, e.sprites.asteroids)
	a.Vel = vel
	return a
}

func (e *Engine) testBullet(pos, vel physics.Vec2) *object.Bullet {
	return object.NewBullet(pos, vel, e.sprites.bullet, false)
}

func countEvents(events []Event, kind EventKind) int {
	n := 0
	for _, ev := range events {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}

func TestLaunch(t *testing.T) {
	e, _ := newTestEngine(t, true)
	if !e.InMenu() || e.Ship != nil {
		t.Fatal("new engine must start in the menu without a ship")
	}
	if len(e.Asteroids) != 6 {
		t.Fatalf("menu asteroids = %d, want 6", len(e.Asteroids))
	}

	e.Launch()

	if e.InMenu() {
		t.Error("still in menu after Launch")
	}
	if e.Ship == nil {
		t.Fatal("no ship after Launch")
	}
	if e.Ship.Pos != (physics.Vec2{X: 400, Y: 462}) {
		t.Errorf("ship at %v, want (400, 462)", e.Ship.Pos)
	}
	if !e.Ship.Shield {
		t.Error("easy mode ship without shield")
	}
	if e.Round.Mode != ModeEasy {
		t.Errorf("Mode = %v, want easy", e.Round.Mode)
	}
	if e.Round.ID == uuid.Nil {
		t.Error("round has no id")
	}
	if len(e.Asteroids) != 6 {
		t.Errorf("menu asteroids not carried into the round: %d", len(e.Asteroids))
	}
}

func TestMenuKeepsAsteroidsInUpperHalf(t *testing.T) {
	e, _ := newTestEngine(t, false)

	for i := 0; i < 600; i++ {
		if ev := e.Step(); ev != nil {
			t.Fatalf("menu step produced events: %v", ev)
		}
		for _, a := range e.Asteroids {
			// Large asteroids turn around at (600-50+50)/2 = 300.
			if a.Pos.Y > 300+config.AsteroidMaxSpeed {
				t.Fatalf("tick %d: asteroid at %v left the upper half", i, a.Pos)
			}
		}
	}
}

func TestBulletSplitsAsteroid(t *testing.T) {
	tests := []struct {
		name      string
		easy      bool
		wantScore float64
	}{
		{"hard", false, 1},
		{"easy", true, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := launched(t, tt.easy)
			rock := e.testAsteroid(physics.Vec2{X: 100, Y: 100}, physics.Vec2{X: 5, Y: 0}, object.AsteroidLarge)
			e.Asteroids = []*object.Asteroid{rock}
			e.Bullets = []*object.Bullet{e.testBullet(physics.Vec2{X: 105, Y: 100}, physics.Vec2{})}

			events := e.Step()

			if len(e.Asteroids) != 2 {
				t.Fatalf("asteroids = %d, want 2", len(e.Asteroids))
			}
			for _, c := range e.Asteroids {
				if c == rock {
					t.Fatal("destroyed asteroid still in play")
				}
				if c.Size != object.AsteroidMedium {
					t.Errorf("child size = %d, want 2", c.Size)
				}
				if c.Pos != rock.Pos {
					t.Errorf("child at %v, want parent position %v", c.Pos, rock.Pos)
				}
			}
			if len(e.Bullets) != 0 {
				t.Errorf("bullet survived the hit")
			}
			if e.Round.Destroyed != 1 {
				t.Errorf("Destroyed = %d, want 1", e.Round.Destroyed)
			}
			if e.Round.Score != tt.wantScore {
				t.Errorf("Score = %v, want %v", e.Round.Score, tt.wantScore)
			}
			if countEvents(events, EventAsteroidDestroyed) != 1 {
				t.Errorf("events = %v, want one asteroid_destroyed", events)
			}
		})
	}
}

func TestOneBulletDestroysOneAsteroid(t *testing.T) {
	e, _ := launched(t, false)
	a := e.testAsteroid(physics.Vec2{X: 200, Y: 200}, physics.Vec2{}, object.AsteroidSmall)
	b := e.testAsteroid(physics.Vec2{X: 205, Y: 200}, physics.Vec2{}, object.AsteroidSmall)
	e.Asteroids = []*object.Asteroid{a, b}
	e.Bullets = []*object.Bullet{e.testBullet(physics.Vec2{X: 202, Y: 200}, physics.Vec2{})}

	e.Step()

	if len(e.Asteroids) != 1 || e.Asteroids[0] != b {
		t.Errorf("expected only the first asteroid to be destroyed, %d left", len(e.Asteroids))
	}
	if e.Round.Destroyed != 1 {
		t.Errorf("Destroyed = %d, want 1", e.Round.Destroyed)
	}
}

func TestFirstBulletTakesTheHit(t *testing.T) {
	e, _ := launched(t, false)
	e.Asteroids = []*object.Asteroid{
		e.testAsteroid(physics.Vec2{X: 100, Y: 100}, physics.Vec2{}, object.AsteroidSmall),
		e.testAsteroid(physics.Vec2{X: 600, Y: 400}, physics.Vec2{}, object.AsteroidSmall),
	}
	far := e.testBullet(physics.Vec2{X: 700, Y: 100}, physics.Vec2{})
	first := e.testBullet(physics.Vec2{X: 102, Y: 100}, physics.Vec2{})
	second := e.testBullet(physics.Vec2{X: 98, Y: 100}, physics.Vec2{})
	other := e.testBullet(physics.Vec2{X: 600, Y: 402}, physics.Vec2{})
	e.Bullets = []*object.Bullet{far, first, second, other}

	e.Step()

	if len(e.Asteroids) != 0 {
		t.Fatalf("asteroids left = %d, want 0", len(e.Asteroids))
	}
	if len(e.Bullets) != 2 || e.Bullets[0] != far || e.Bullets[1] != second {
		t.Errorf("bullets left = %v, want the far and the second bullet", e.Bullets)
	}
	if e.Round.Destroyed != 2 {
		t.Errorf("Destroyed = %d, want 2", e.Round.Destroyed)
	}
}

func TestShieldAbsorbsHit(t *testing.T) {
	e, clock := launched(t, true)
	e.Ship.Vel = physics.Vec2{X: 1, Y: 0}
	e.Asteroids = []*object.Asteroid{e.testAsteroid(physics.Vec2{X: 401, Y: 462}, physics.Vec2{}, object.AsteroidLarge)}

	events := e.Step()

	if e.Ship == nil {
		t.Fatal("shielded ship destroyed")
	}
	if e.Ship.Shield {
		t.Error("shield still up after the hit")
	}
	if math.Abs(e.Ship.Vel.X+1.3) > 1e-9 || e.Ship.Vel.Y != 0 {
		t.Errorf("Vel = %v, want (-1.3, 0)", e.Ship.Vel)
	}
	if e.Stats().Scores.Len() != 0 {
		t.Error("score committed on a shield hit")
	}
	if countEvents(events, EventShieldBroken) != 1 {
		t.Errorf("events = %v, want one shield_broken", events)
	}
	if e.GraceRemaining() != config.InvulnerabilityMs {
		t.Errorf("GraceRemaining() = %d, want %d", e.GraceRemaining(), config.InvulnerabilityMs)
	}

	// Still touching, but inside the grace window.
	e.Step()
	if e.Ship == nil {
		t.Fatal("ship destroyed during the grace window")
	}

	clock.Advance(config.InvulnerabilityMs + 1)
	events = e.Step()
	if e.Ship != nil {
		t.Fatal("ship survived after the grace window")
	}
	if countEvents(events, EventShipDestroyed) != 1 {
		t.Errorf("events = %v, want one ship_destroyed", events)
	}
}

func TestOneShipHitPerTick(t *testing.T) {
	t.Run("unshielded", func(t *testing.T) {
		e, _ := launched(t, false)
		e.Asteroids = []*object.Asteroid{
			e.testAsteroid(physics.Vec2{X: 400, Y: 462}, physics.Vec2{}, object.AsteroidSmall),
			e.testAsteroid(physics.Vec2{X: 404, Y: 462}, physics.Vec2{}, object.AsteroidSmall),
		}

		events := e.Step()

		if e.Ship != nil {
			t.Fatal("ship survived")
		}
		if len(e.Asteroids) != 1 {
			t.Errorf("asteroids left = %d, want 1", len(e.Asteroids))
		}
		if countEvents(events, EventShipDestroyed) != 1 {
			t.Errorf("events = %v, want one ship_destroyed", events)
		}
		if e.Stats().Scores.Len() != 1 {
			t.Errorf("score committed %d times, want once", e.Stats().Scores.Len())
		}
	})

	t.Run("shielded", func(t *testing.T) {
		e, _ := launched(t, true)
		e.Ship.Vel = physics.Vec2{X: 1, Y: 0}
		e.Asteroids = []*object.Asteroid{
			e.testAsteroid(physics.Vec2{X: 400, Y: 462}, physics.Vec2{}, object.AsteroidSmall),
			e.testAsteroid(physics.Vec2{X: 404, Y: 462}, physics.Vec2{}, object.AsteroidSmall),
		}

		events := e.Step()

		if e.Ship == nil {
			t.Fatal("shielded ship destroyed")
		}
		if e.Ship.Shield {
			t.Error("shield still up")
		}
		if math.Abs(e.Ship.Vel.X+1.3) > 1e-9 || e.Ship.Vel.Y != 0 {
			t.Errorf("Vel = %v, want (-1.3, 0) from a single bounce", e.Ship.Vel)
		}
		if len(e.Asteroids) != 2 {
			t.Errorf("asteroids left = %d, want 2", len(e.Asteroids))
		}
		if countEvents(events, EventShieldBroken) != 1 || countEvents(events, EventShipDestroyed) != 0 {
			t.Errorf("events = %v, want exactly one shield_broken", events)
		}
		if e.Stats().Scores.Len() != 0 {
			t.Error("score committed on a shield hit")
		}
	})
}

func TestUnshieldedHitEndsRound(t *testing.T) {
	e, _ := launched(t, false)
	e.Round.Score = 7
	e.Asteroids = []*object.Asteroid{e.testAsteroid(physics.Vec2{X: 400, Y: 462}, physics.Vec2{}, object.AsteroidLarge)}
	e.PowerUps = []*object.PowerUp{object.NewPowerUp(physics.Vec2{X: 100, Y: 100}, object.PowerUpBullets, e.sprites.powerUps[object.PowerUpBullets])}

	events := e.Step()

	if e.Ship != nil {
		t.Fatal("ship survived")
	}
	if !e.Lost() || !e.Round.Over() {
		t.Error("round not marked lost")
	}
	if got := e.Stats().Scores.Ranked(); len(got) != 1 || got[0] != 7 {
		t.Errorf("Ranked() = %v, want [7]", got)
	}
	if e.Stats().Rounds != 1 {
		t.Errorf("Rounds = %d, want 1", e.Stats().Rounds)
	}
	if len(e.Explosions) != 1 {
		t.Errorf("explosions = %d, want 1", len(e.Explosions))
	}
	if len(e.Asteroids) != 2 {
		t.Errorf("the asteroid that hit the ship did not split: %d asteroids", len(e.Asteroids))
	}
	if len(e.PowerUps) != 0 {
		t.Errorf("power-ups survived the loss: %d", len(e.PowerUps))
	}
	if countEvents(events, EventShipDestroyed) != 1 {
		t.Errorf("events = %v, want one ship_destroyed", events)
	}
	if e.Shoot() {
		t.Error("shot fired without a ship")
	}
}

func TestNoScoreWithoutShip(t *testing.T) {
	e, _ := launched(t, false)
	e.Asteroids = []*object.Asteroid{e.testAsteroid(physics.Vec2{X: 400, Y: 462}, physics.Vec2{}, object.AsteroidSmall)}
	e.Step()
	if e.Ship != nil {
		t.Fatal("ship survived")
	}

	e.Asteroids = []*object.Asteroid{e.testAsteroid(physics.Vec2{X: 200, Y: 200}, physics.Vec2{}, object.AsteroidSmall)}
	e.Bullets = []*object.Bullet{e.testBullet(physics.Vec2{X: 200, Y: 200}, physics.Vec2{})}
	e.Step()

	if e.Round.Score != 0 {
		t.Errorf("Score = %v, want 0", e.Round.Score)
	}
	if e.Round.Destroyed != 1 {
		t.Errorf("Destroyed = %d, want 1", e.Round.Destroyed)
	}
	if e.Won() {
		t.Error("round won without a ship")
	}
}

func TestWinEnteredOnce(t *testing.T) {
	e, _ := launched(t, false)
	e.Asteroids = []*object.Asteroid{e.testAsteroid(physics.Vec2{X: 200, Y: 200}, physics.Vec2{}, object.AsteroidSmall)}
	e.Bullets = []*object.Bullet{e.testBullet(physics.Vec2{X: 200, Y: 200}, physics.Vec2{})}

	won := countEvents(e.Step(), EventWon)
	for i := 0; i < 10; i++ {
		won += countEvents(e.Step(), EventWon)
	}

	if won != 1 {
		t.Errorf("won events = %d, want 1", won)
	}
	if !e.Won() {
		t.Error("round not won")
	}
	if got := e.Stats().Scores.Ranked(); len(got) != 1 || got[0] != 1 {
		t.Errorf("Ranked() = %v, want [1]", got)
	}
	if e.Stats().Rounds != 1 {
		t.Errorf("Rounds = %d, want 1", e.Stats().Rounds)
	}
}

func TestBulletRemovalBoundary(t *testing.T) {
	tests := []struct {
		name string
		pos  physics.Vec2
		vel  physics.Vec2
		kept bool
	}{
		{"inside", physics.Vec2{X: 798, Y: 300}, physics.Vec2{X: 1}, true},
		{"past right edge", physics.Vec2{X: 799.5, Y: 300}, physics.Vec2{X: 1}, false},
		{"above top edge", physics.Vec2{X: 10, Y: 0.5}, physics.Vec2{Y: -1}, false},
		{"on top edge", physics.Vec2{X: 10, Y: 0}, physics.Vec2{}, true},
		{"on bottom edge", physics.Vec2{X: 10, Y: 599}, physics.Vec2{Y: 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := launched(t, false)
			e.Asteroids = []*object.Asteroid{e.testAsteroid(physics.Vec2{X: 600, Y: 100}, physics.Vec2{}, object.AsteroidSmall)}
			e.Bullets = []*object.Bullet{e.testBullet(tt.pos, tt.vel)}

			e.Step()

			if kept := len(e.Bullets) == 1; kept != tt.kept {
				t.Errorf("bullet kept = %v, want %v", kept, tt.kept)
			}
		})
	}
}

func TestBulletCap(t *testing.T) {
	e, _ := launched(t, false)

	for i := 0; i < 3; i++ {
		if !e.Shoot() {
			t.Fatalf("shot %d refused", i+1)
		}
	}
	if e.Shoot() {
		t.Error("fourth bullet fired past the cap")
	}
	if e.Stats().FastestBullet <= 0 {
		t.Error("fastest bullet not recorded")
	}

	events := e.Step()
	if countEvents(events, EventShot) != 3 {
		t.Errorf("shot events = %d, want 3", countEvents(events, EventShot))
	}

	e.Asteroids = nil
	e.Bullets = nil
	for i := 0; i < 20; i++ {
		if !e.Shoot() {
			t.Fatalf("shot %d refused with no asteroids left", i+1)
		}
	}
}

func TestBulletPowerUp(t *testing.T) {
	e, clock := launched(t, false)
	e.PowerUps = []*object.PowerUp{object.NewPowerUp(e.Ship.Pos, object.PowerUpBullets, e.sprites.powerUps[object.PowerUpBullets])}

	events := e.Step()
	if !e.BulletPower() {
		t.Fatal("bullet power not active after pickup")
	}
	if len(e.PowerUps) != 0 {
		t.Error("collected power-up still on the field")
	}
	if countEvents(events, EventPowerUpCollected) != 1 {
		t.Errorf("events = %v, want one powerup_collected", events)
	}

	for i := 0; i < 5; i++ {
		if !e.Shoot() {
			t.Fatalf("powered shot %d refused", i+1)
		}
	}
	if e.Shoot() {
		t.Error("sixth powered bullet fired past the cap")
	}
	for _, b := range e.Bullets {
		if !b.Powered {
			t.Error("bullet fired under the power-up is not powered")
		}
	}

	clock.Advance(config.PowerUpDurationMs + 1)
	e.Step()
	if e.BulletPower() {
		t.Error("bullet power still active after expiry")
	}
	if e.BulletCap() != 3 {
		t.Errorf("BulletCap() = %d, want 3", e.BulletCap())
	}
}

func TestSlowMotionIdempotent(t *testing.T) {
	e, clock := launched(t, false)
	rock := e.testAsteroid(physics.Vec2{X: 200, Y: 150}, physics.Vec2{X: 4}, object.AsteroidLarge)
	e.Asteroids = []*object.Asteroid{rock}
	slow := func() *object.PowerUp {
		return object.NewPowerUp(e.Ship.Pos, object.PowerUpSlowMotion, e.sprites.powerUps[object.PowerUpSlowMotion])
	}

	e.PowerUps = []*object.PowerUp{slow()}
	e.Step()
	if !e.SlowMotion() {
		t.Fatal("slow motion not active")
	}
	if math.Abs(rock.Vel.Len()-1.2) > 1e-9 {
		t.Fatalf("speed = %v, want 1.2", rock.Vel.Len())
	}

	e.PowerUps = []*object.PowerUp{slow()}
	e.Step()
	if math.Abs(rock.Vel.Len()-1.2) > 1e-9 {
		t.Errorf("speed after re-trigger = %v, want 1.2", rock.Vel.Len())
	}

	clock.Advance(config.PowerUpDurationMs + 1)
	e.Step()
	if e.SlowMotion() {
		t.Error("slow motion still active after expiry")
	}
	if math.Abs(rock.Vel.Len()-1.2*config.SlowMotionRestore) > 1e-9 {
		t.Errorf("restored speed = %v, want %v", rock.Vel.Len(), 1.2*config.SlowMotionRestore)
	}
}

func TestSlowMotionRestoreSkipsFullSpeedAsteroids(t *testing.T) {
	e, clock := launched(t, false)
	slowed := e.testAsteroid(physics.Vec2{X: 200, Y: 150}, physics.Vec2{X: 4}, object.AsteroidLarge)
	e.Asteroids = []*object.Asteroid{slowed}
	e.PowerUps = []*object.PowerUp{object.NewPowerUp(e.Ship.Pos, object.PowerUpSlowMotion, e.sprites.powerUps[object.PowerUpSlowMotion])}

	e.Step()
	if !e.SlowMotion() {
		t.Fatal("slow motion not active")
	}

	// Arrives at full speed while the effect is running, like a fresh split child.
	fresh := e.testAsteroid(physics.Vec2{X: 300, Y: 100}, physics.Vec2{X: 3, Y: 4}, object.AsteroidMedium)
	e.Asteroids = append(e.Asteroids, fresh)
	e.Step()

	clock.Advance(config.PowerUpDurationMs + 1)
	e.Step()
	if e.SlowMotion() {
		t.Fatal("slow motion still active after expiry")
	}
	if fresh.Vel != (physics.Vec2{X: 3, Y: 4}) {
		t.Errorf("full-speed asteroid changed to %v", fresh.Vel)
	}
	if math.Abs(slowed.Vel.Len()-1.2*config.SlowMotionRestore) > 1e-9 {
		t.Errorf("slowed asteroid at %v, want %v", slowed.Vel.Len(), 1.2*config.SlowMotionRestore)
	}
}

func TestPowerUpSpawnGivesUp(t *testing.T) {
	e, clock := launched(t, false)

	// Every free spot is within the separation distance of a bullets
	// power-up, so the missing slow motion one has nowhere to go. Spots the
	// ship would collect are left empty.
	var crowd []*object.PowerUp
	for y := 0.0; y < e.Height(); y += 60 {
		for x := 0.0; x < e.Width(); x += 60 {
			pos := physics.Vec2{X: x, Y: y}
			if pos.DistanceTo(e.Ship.Pos) < 50 {
				continue
			}
			crowd = append(crowd, object.NewPowerUp(pos, object.PowerUpBullets, e.sprites.powerUps[object.PowerUpBullets]))
		}
	}
	e.PowerUps = append([]*object.PowerUp(nil), crowd...)

	clock.Advance(config.PowerUpIntervalHard + 1)
	e.Step()

	if len(e.PowerUps) != len(crowd) {
		t.Fatalf("power-ups = %d, want the %d already placed", len(e.PowerUps), len(crowd))
	}
	for _, p := range e.PowerUps {
		if p.Kind == object.PowerUpSlowMotion {
			t.Fatalf("slow motion placed at %v despite the crowd", p.Pos)
		}
	}

	// Once there is room again the next tick places it.
	e.PowerUps = nil
	e.Step()
	if len(e.PowerUps) != 2 {
		t.Fatalf("power-ups after clearing = %d, want 2", len(e.PowerUps))
	}
}

func TestPowerUpSpawning(t *testing.T) {
	e, clock := launched(t, false)

	clock.Advance(config.PowerUpIntervalHard)
	e.Step()
	if len(e.PowerUps) != 0 {
		t.Fatalf("power-ups spawned before the interval elapsed")
	}

	clock.Advance(1)
	e.Step()
	if len(e.PowerUps) != 2 {
		t.Fatalf("power-ups = %d, want 2", len(e.PowerUps))
	}
	if e.PowerUps[0].Kind == e.PowerUps[1].Kind {
		t.Error("two power-ups of the same kind")
	}
	if d := e.PowerUps[0].Pos.DistanceTo(e.PowerUps[1].Pos); d <= config.PowerUpSeparation {
		t.Errorf("power-ups only %v apart", d)
	}
	for _, p := range e.PowerUps {
		if d := p.Pos.DistanceTo(e.Ship.Pos); d <= config.PowerUpSeparation {
			t.Errorf("power-up only %v from the ship", d)
		}
	}

	e.Step()
	if len(e.PowerUps) != 2 {
		t.Errorf("power-ups = %d after another tick, want 2", len(e.PowerUps))
	}
}

func TestPowerUpsEasyInterval(t *testing.T) {
	e, clock := launched(t, true)
	clock.Advance(config.PowerUpIntervalEasy + 1)
	e.Step()
	if len(e.PowerUps) != 2 {
		t.Errorf("power-ups = %d, want 2", len(e.PowerUps))
	}
}

func TestNoPowerUpsAfterWin(t *testing.T) {
	e, clock := launched(t, false)
	e.Asteroids = nil
	e.Step()
	if !e.Won() {
		t.Fatal("round not won with an empty field")
	}

	clock.Advance(config.PowerUpIntervalHard + 1)
	e.Step()
	if len(e.PowerUps) != 0 {
		t.Errorf("power-ups spawned after the win: %d", len(e.PowerUps))
	}
}

func TestControl(t *testing.T) {
	e, _ := launched(t, false)

	e.Control(Controls{Thrust: true})
	if !(e.Ship.Vel.Y < 0) {
		t.Errorf("thrust did not move the ship up: %v", e.Ship.Vel)
	}

	before := e.Ship.Vel.Len()
	e.Control(Controls{})
	if e.Ship.Vel.Len() >= before {
		t.Error("friction not applied without thrust")
	}

	e.Control(Controls{Right: true})
	if got := physics.Up.AngleTo(e.Ship.Direction); math.Abs(got-config.ShipManeuverability) > 1e-9 {
		t.Errorf("heading = %v°, want %v°", got, config.ShipManeuverability)
	}
}

func TestDebrisBurnsOut(t *testing.T) {
	e, _ := launched(t, false)
	e.Asteroids = []*object.Asteroid{
		e.testAsteroid(physics.Vec2{X: 200, Y: 200}, physics.Vec2{}, object.AsteroidSmall),
		e.testAsteroid(physics.Vec2{X: 600, Y: 100}, physics.Vec2{}, object.AsteroidSmall),
	}
	e.Bullets = []*object.Bullet{e.testBullet(physics.Vec2{X: 200, Y: 200}, physics.Vec2{})}

	e.Step()
	if len(e.Debris) == 0 {
		t.Fatal("no debris after destroying an asteroid")
	}
	for i := 0; i < 60; i++ {
		e.Step()
	}
	if len(e.Debris) != 0 {
		t.Errorf("debris left after 60 ticks: %d", len(e.Debris))
	}
}

func TestNewEngineWithoutStats(t *testing.T) {
	e, err := NewEngine(config.DefaultSettings(), asset.NewCatalog(0.75), nil, NewSystemClock(), rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatal(err)
	}
	if e.Stats() == nil || e.Stats().Scores == nil {
		t.Error("engine without statistics has no score board")
	}
}
