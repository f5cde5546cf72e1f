package loop

import (
	"fmt"
	"time"

	"github.com/tomz197/destroyds/internal/input"
	"github.com/tomz197/destroyds/internal/sim"
)

// updatePlaying applies ship controls and steps the round. The world keeps
// moving after the round ends until the player restarts or quits.
func (g *Game) updatePlaying(in input.Input) {
	if in.Space {
		g.engine.Shoot()
	}
	g.engine.Control(sim.Controls{Left: in.Left, Right: in.Right, Thrust: in.Up})

	g.cue(g.engine.Step())

	switch {
	case g.state == StatePlaying && g.engine.Lost():
		g.setState(StateRoundOver)
		g.logRound()
	case g.state == StatePlaying && g.engine.Won():
		g.setState(StateWon)
		g.logRound()
	}
}

// logRound reports the finished round and the run so far.
func (g *Game) logRound() {
	r := g.engine.Round
	g.logger.Info("round finished",
		"round", g.stats.Rounds,
		"id", r.ID,
		"outcome", r.Outcome,
		"mode", r.Mode,
		"score", r.Score,
		"destroyed", r.Destroyed,
		"duration", time.Duration(r.DurationMs())*time.Millisecond,
		"time_played", time.Duration(g.stats.TimePlayedMs)*time.Millisecond,
		"fastest_bullet", fmt.Sprintf("%.2f", g.stats.FastestBullet),
	)
}
