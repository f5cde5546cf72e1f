package loop

import (
	"fmt"
	"time"

	"github.com/tomz197/destroyds/internal/input"
	"github.com/tomz197/destroyds/internal/physics"
)

// idleTracker warns and then disconnects players who stop pressing keys.
// A zero disconnect duration disables it.
type idleTracker struct {
	warn       time.Duration
	disconnect time.Duration
	last       time.Time
}

func newIdleTracker(warn, disconnect time.Duration, now time.Time) *idleTracker {
	return &idleTracker{warn: warn, disconnect: disconnect, last: now}
}

func active(in input.Input) bool {
	return len(in.Pressed) > 0 || len(in.Clicks) > 0 ||
		in.Left || in.Right || in.Up || in.Space || in.F1 || in.Escape
}

// observe records the frame input. It returns how long until disconnection
// once the warning period has passed, and expired when time is up.
func (t *idleTracker) observe(in input.Input, now time.Time) (warning bool, remaining time.Duration, expired bool) {
	if t.disconnect <= 0 {
		return false, 0, false
	}
	if active(in) {
		t.last = now
		return false, 0, false
	}
	idle := now.Sub(t.last)
	if idle >= t.disconnect {
		return true, 0, true
	}
	return idle >= t.warn, t.disconnect - idle, false
}

// drawIdleWarning draws the inactivity notice over the frame.
func drawIdleWarning(d Display, w, h float64, remaining time.Duration) {
	center := physics.Vec2{X: w / 2, Y: h / 2}
	d.DrawText("INACTIVITY WARNING", physics.Vec2{X: center.X, Y: center.Y - h*menuSpacing}, heading)
	msg := fmt.Sprintf("You have been inactive for too long. You will be disconnected in %d seconds.",
		int(remaining.Seconds())+1)
	d.DrawText(msg, center, centered)
	d.DrawText("Press any key to continue", physics.Vec2{X: center.X, Y: center.Y + h*menuSpacing}, hint)
}
