// Package loop provides the main game loop and state management.
package loop

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/destroyds/internal/asset"
	"github.com/tomz197/destroyds/internal/audio"
	"github.com/tomz197/destroyds/internal/config"
	"github.com/tomz197/destroyds/internal/draw"
	"github.com/tomz197/destroyds/internal/input"
	"github.com/tomz197/destroyds/internal/sim"
)

// Options configures Run.
type Options struct {
	Settings     config.Settings
	Stats        *sim.RunStatistics // Created by Run when nil
	Audio        Audio              // Silent when nil
	Logger       *log.Logger
	TermSizeFunc draw.TermSizeFunc

	// Players idle for IdleWarn see a warning and are dropped after
	// IdleDisconnect. Zero IdleDisconnect never drops anyone.
	IdleWarn       time.Duration
	IdleDisconnect time.Duration
}

// Run plays games on the terminal behind r and w until the player quits, the
// input ends or ctx is cancelled. Restarting keeps the run statistics.
func Run(ctx context.Context, r *bufio.Reader, w io.Writer, opts Options) error {
	if opts.Stats == nil {
		opts.Stats = sim.NewRunStatistics()
	}
	if opts.Audio == nil {
		opts.Audio = audio.Silent{}
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	settings := opts.Settings

	seed := settings.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	catalog := asset.NewCatalog(settings.Scale)

	term := draw.NewTerminal(w, settings.Width, settings.Height, opts.TermSizeFunc)
	defer term.Close()
	stream := input.StartStream(r)
	idle := newIdleTracker(opts.IdleWarn, opts.IdleDisconnect, time.Now())

	for {
		game, err := NewGame(GameOptions{
			Settings: settings,
			Catalog:  catalog,
			Stats:    opts.Stats,
			Audio:    opts.Audio,
			Logger:   opts.Logger,
			Clock:    sim.NewSystemClock(),
			Rand:     rng,
		})
		if err != nil {
			return fmt.Errorf("new game: %w", err)
		}

		outcome, err := runFrames(ctx, game, stream, term, idle)
		if err != nil {
			return err
		}
		if outcome == Quit {
			opts.Logger.Info("run finished", "rounds", opts.Stats.Rounds,
				"top_scores", opts.Stats.Scores.Ranked())
			return nil
		}
		opts.Logger.Debug("restart")
	}
}

// runFrames drives one game with the Input → Update → Draw cycle at a fixed
// frame rate.
func runFrames(ctx context.Context, game *Game, stream *input.Stream, term *draw.Terminal, idle *idleTracker) (Outcome, error) {
	for {
		frameStart := time.Now()

		if ctx.Err() != nil {
			return Quit, nil
		}

		// ===== INPUT + UPDATE PHASE =====
		if err := term.Begin(); err != nil {
			return Quit, err
		}
		inp := input.ReadInput(stream)
		warning, remaining, expired := idle.observe(inp, frameStart)
		if expired {
			game.logger.Info("disconnecting idle player")
			return Quit, nil
		}
		if outcome := game.Tick(inp, term); outcome != Continue {
			return outcome, nil
		}

		// ===== DRAW PHASE =====
		game.Draw(term)
		if warning {
			drawIdleWarning(term, game.engine.Width(), game.engine.Height(), remaining)
		}
		if err := term.Present(); err != nil {
			return Quit, fmt.Errorf("present frame: %w", err)
		}

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < config.TargetFrameTime {
			time.Sleep(config.TargetFrameTime - elapsed)
		}
	}
}
