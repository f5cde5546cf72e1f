package sim

import (
	"slices"
	"sync"

	"github.com/tomz197/destroyds/internal/config"
)

// ScoreBoard keeps the highest scores committed during the process lifetime.
// It is safe for concurrent use.
type ScoreBoard struct {
	mu     sync.Mutex
	size   int
	scores []float64
}

// NewScoreBoard creates an empty board holding at most size scores.
func NewScoreBoard(size int) *ScoreBoard {
	if size < 1 {
		size = config.TopScoreSize
	}
	return &ScoreBoard{size: size}
}

// Commit offers a score. While the board has room the score is always added;
// afterwards it replaces the lowest entry only when strictly greater.
// Returns true if the board changed.
func (b *ScoreBoard) Commit(score float64) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.scores) < b.size {
		b.scores = append(b.scores, score)
		return true
	}

	minIdx := 0
	for i, s := range b.scores {
		if s < b.scores[minIdx] {
			minIdx = i
		}
	}
	if score > b.scores[minIdx] {
		b.scores[minIdx] = score
		return true
	}
	return false
}

// Ranked returns the scores from best to worst.
func (b *ScoreBoard) Ranked() []float64 {
	b.mu.Lock()
	out := slices.Clone(b.scores)
	b.mu.Unlock()

	slices.SortFunc(out, func(a, b float64) int {
		switch {
		case a > b:
			return -1
		case a < b:
			return 1
		}
		return 0
	})
	return out
}

// Len returns the number of scores on the board.
func (b *ScoreBoard) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.scores)
}
