package loop

import (
	"github.com/tomz197/destroyds/internal/audio"
	"github.com/tomz197/destroyds/internal/sim"
)

// cue plays the sounds for what happened during a tick.
func (g *Game) cue(events []sim.Event) {
	for _, ev := range events {
		switch ev.Kind {
		case sim.EventShot:
			g.audio.PlaySound(audio.Shoot)
		case sim.EventAsteroidDestroyed:
			g.audio.PlaySound(g.pick(audio.ImpactSounds))
		case sim.EventShieldBroken:
			g.audio.PlaySound(audio.ShieldExplosion)
		case sim.EventPowerUpCollected:
			g.audio.PlaySound(audio.PowerUp)
		case sim.EventShipDestroyed:
			g.audio.FadeOutMusic(musicFadeOut)
			g.audio.PlaySequence(audio.ShipDie, g.pick(audio.LoseSounds))
		case sim.EventWon:
			g.audio.FadeOutMusic(musicFadeOut)
			g.audio.PlaySound(audio.WinSound)
		}
	}
}

func (g *Game) pick(names []string) string {
	return names[g.rng.Intn(len(names))]
}
