package sim

import (
	"github.com/tomz197/destroyds/internal/config"
	"github.com/tomz197/destroyds/internal/object"
	"github.com/tomz197/destroyds/internal/physics"
)

// spawnPowerUps adds the kinds missing from the field. Every new power-up must
// keep its distance from the ship, the power-ups already present and the other
// new one. When no placement is found within the retry budget the wave is
// skipped for this tick.
func (e *Engine) spawnPowerUps() {
	var missing []object.PowerUpKind
	for _, kind := range object.PowerUpKinds {
		if !e.hasPowerUp(kind) {
			missing = append(missing, kind)
		}
	}
	if len(missing) == 0 {
		return
	}

	candidates := make([]physics.Vec2, len(missing))
	for attempt := 0; attempt < config.PowerUpSpawnAttempts; attempt++ {
		for i := range candidates {
			candidates[i] = physics.RandomPosition(e.rng, e.settings.Width, e.settings.Height)
		}
		if !e.placementOK(candidates) {
			continue
		}
		for i, kind := range missing {
			e.PowerUps = append(e.PowerUps, object.NewPowerUp(candidates[i], kind, e.sprites.powerUps[kind]))
		}
		return
	}
}

func (e *Engine) hasPowerUp(kind object.PowerUpKind) bool {
	for _, p := range e.PowerUps {
		if p.Kind == kind && !p.IsDestroyed() {
			return true
		}
	}
	return false
}

func (e *Engine) placementOK(candidates []physics.Vec2) bool {
	for i, c := range candidates {
		if c.DistanceTo(e.Ship.Pos) <= config.PowerUpSeparation {
			return false
		}
		for _, p := range e.PowerUps {
			if !p.IsDestroyed() && c.DistanceTo(p.Pos) <= config.PowerUpSeparation {
				return false
			}
		}
		for _, other := range candidates[i+1:] {
			if c.DistanceTo(other) <= config.PowerUpSeparation {
				return false
			}
		}
	}
	return true
}

// collectPowerUps applies every power-up the ship touches and re-arms the
// shared effect window.
func (e *Engine) collectPowerUps(now int64) {
	for _, p := range e.PowerUps {
		if p.IsDestroyed() || !e.Ship.Collides(p) {
			continue
		}
		p.MarkDestroyed()
		e.powerWindow = now
		switch p.Kind {
		case object.PowerUpBullets:
			e.bulletPower = true
		case object.PowerUpSlowMotion:
			e.slowPower = true
		}
		e.emit(Event{Kind: EventPowerUpCollected, Pos: p.Pos, PowerUp: p.Kind})
	}
}

// updateSlowMotion slows every asteroid once when the effect starts and speeds
// the slow ones back up when the window expires. Asteroids spawned in between
// already move at full speed and are left alone. It runs even without a ship.
func (e *Engine) updateSlowMotion(now int64) {
	if !e.slowPower {
		return
	}
	if !e.slowActive {
		for _, a := range e.Asteroids {
			a.Vel = a.Vel.Scale(config.SlowMotionFactor)
		}
		e.slowActive = true
		return
	}
	if now-e.powerWindow > config.PowerUpDurationMs {
		for _, a := range e.Asteroids {
			if a.Vel.Len() < config.SlowMotionThreshold {
				a.Vel = a.Vel.Scale(config.SlowMotionRestore)
			}
		}
		e.slowPower = false
		e.slowActive = false
	}
}
