package sim

import (
	"github.com/tomz197/destroyds/internal/config"
	"github.com/tomz197/destroyds/internal/object"
)

// collideShip resolves at most one ship/asteroid contact per tick.
func (e *Engine) collideShip(now int64) {
	ship := e.Ship
	for _, a := range e.Asteroids {
		if a.IsDestroyed() || !ship.Collides(a) {
			continue
		}

		switch {
		case ship.Shield:
			ship.BreakShield()
			e.Round.LoseTime = now
			e.Round.ShieldHit = true
			e.emit(Event{Kind: EventShieldBroken, Pos: ship.Pos})
		case !e.Round.ShieldHit || now > e.Round.LoseTime+config.InvulnerabilityMs:
			e.Explosions = append(e.Explosions, object.NewExplosion(ship.Pos, e.sprites.explosion))
			e.Debris = append(e.Debris, object.Burst(e.rng, ship.Pos, 16, 3, 45)...)
			e.Ship = nil
			e.destroyAsteroid(a)
			e.endRound(now, OutcomeLost)
			e.emit(Event{Kind: EventShipDestroyed, Pos: ship.Pos})
		}
		return
	}
}

// collideBullets pairs every asteroid with the first bullet touching it.
// An asteroid or bullet that is already destroyed takes no further part.
// Bullets are bucketed in a grid whose cells span the largest asteroid and
// bullet radii, so only neighboring cells need checking.
func (e *Engine) collideBullets() {
	var reach float64
	for _, a := range e.Asteroids {
		reach = max(reach, a.Radius)
	}
	var bulletRadius float64
	for _, b := range e.Bullets {
		bulletRadius = max(bulletRadius, b.Radius)
	}

	e.grid.Reset(reach + bulletRadius)
	for i, b := range e.Bullets {
		if !b.IsDestroyed() {
			e.grid.Insert(b.Pos, i)
		}
	}

	for _, a := range e.Asteroids {
		if a.IsDestroyed() {
			continue
		}
		a.RandomRotation()

		hit := -1
		e.grid.QueryAround(a.Pos, func(i int) bool {
			if hit >= 0 && i > hit {
				return false
			}
			if b := e.Bullets[i]; !b.IsDestroyed() && a.Collides(b) {
				hit = i
			}
			return false
		})
		if hit < 0 {
			continue
		}

		e.Bullets[hit].MarkDestroyed()
		e.destroyAsteroid(a)
		if e.Ship != nil {
			e.Round.Score += e.Round.Mode.Points()
		}
		e.Round.Destroyed++
		e.emit(Event{Kind: EventAsteroidDestroyed, Pos: a.Pos, Size: a.Size})
	}
}
