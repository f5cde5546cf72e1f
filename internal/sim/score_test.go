package sim

import (
	"slices"
	"testing"
	"testing/quick"
)

func TestScoreBoardCommit(t *testing.T) {
	b := NewScoreBoard(3)

	for _, s := range []float64{2, 5, 1} {
		if !b.Commit(s) {
			t.Fatalf("Commit(%v) refused while the board had room", s)
		}
	}
	if b.Commit(1) {
		t.Error("equal to the minimum must not replace it")
	}
	if b.Commit(0.5) {
		t.Error("lower score accepted on a full board")
	}
	if !b.Commit(3.5) {
		t.Error("higher score refused")
	}

	want := []float64{5, 3.5, 2}
	if got := b.Ranked(); !slices.Equal(got, want) {
		t.Errorf("Ranked() = %v, want %v", got, want)
	}
}

func TestScoreBoardKeepsTopThree(t *testing.T) {
	prop := func(scores []float64) bool {
		b := NewScoreBoard(3)
		for _, s := range scores {
			b.Commit(s)
		}

		sorted := slices.Clone(scores)
		slices.Sort(sorted)
		slices.Reverse(sorted)
		if len(sorted) > 3 {
			sorted = sorted[:3]
		}

		return b.Len() <= 3 && slices.Equal(b.Ranked(), sorted)
	}

	if err := quick.Check(prop, nil); err != nil {
		t.Error(err)
	}
}

func TestRunStatistics(t *testing.T) {
	s := NewRunStatistics()
	if s.Mode() != ModeHard {
		t.Errorf("default mode = %v, want hard", s.Mode())
	}
	s.ToggleMode()
	if s.Mode() != ModeEasy {
		t.Errorf("toggled mode = %v, want easy", s.Mode())
	}

	for i := 0; i < 4; i++ {
		s.NextShip()
	}
	if s.ShipKind != 0 {
		t.Errorf("ShipKind = %d after a full cycle, want 0", s.ShipKind)
	}

	s.RecordBullet(7)
	s.RecordBullet(3)
	if s.FastestBullet != 7 {
		t.Errorf("FastestBullet = %v, want 7", s.FastestBullet)
	}
}

func TestManualClock(t *testing.T) {
	var c ManualClock
	c.Advance(16)
	c.Advance(17)
	if c.Now() != 33 {
		t.Errorf("Now() = %d, want 33", c.Now())
	}
	c.Set(5)
	if c.Now() != 5 {
		t.Errorf("Now() = %d, want 5", c.Now())
	}
}
