package loop

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/destroyds/internal/asset"
	"github.com/tomz197/destroyds/internal/audio"
	"github.com/tomz197/destroyds/internal/config"
	"github.com/tomz197/destroyds/internal/input"
	"github.com/tomz197/destroyds/internal/object"
	"github.com/tomz197/destroyds/internal/physics"
	"github.com/tomz197/destroyds/internal/sim"
)

// Display is where a game draws itself each frame.
type Display interface {
	object.Renderer
	// ToLogical maps a 1-based terminal cell to play field coordinates.
	ToLogical(col, row int) (physics.Vec2, bool)
}

//go:generate go tool mockgen -destination=./mocks/audio_mock.go -package=mocks . Audio

// Audio plays sound cues. Implementations must not block.
type Audio interface {
	PlaySound(name string)
	PlaySequence(names ...string)
	PlayMusic(name string, loop bool)
	FadeOutMusic(d time.Duration)
}

// GameOptions configures NewGame.
type GameOptions struct {
	Settings config.Settings
	Catalog  *asset.Catalog
	Stats    *sim.RunStatistics // Kept across restarts by the caller
	Audio    Audio
	Logger   *log.Logger
	Clock    sim.Clock
	Rand     *rand.Rand
}

// Game is one run from the title screen to a restart. Restarting builds a
// new Game around the same run statistics.
type Game struct {
	engine   *sim.Engine
	settings config.Settings
	stats    *sim.RunStatistics
	audio    Audio
	logger   *log.Logger
	rng      *rand.Rand

	state      State
	showScores bool
	stars      []physics.Vec2
	menuRects  [menuItemCount]physics.Rect
}

// NewGame builds a game on the title screen and starts the background music.
func NewGame(opts GameOptions) (*Game, error) {
	if opts.Stats == nil {
		opts.Stats = sim.NewRunStatistics()
	}
	if opts.Audio == nil {
		opts.Audio = audio.Silent{}
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Clock == nil {
		opts.Clock = sim.NewSystemClock()
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Catalog == nil {
		opts.Catalog = asset.NewCatalog(opts.Settings.Scale)
	}

	engine, err := sim.NewEngine(opts.Settings, opts.Catalog, opts.Stats, opts.Clock, opts.Rand)
	if err != nil {
		return nil, err
	}

	name := asset.BackgroundNames[opts.Rand.Intn(len(asset.BackgroundNames))]
	stars, err := opts.Catalog.Background(name)
	if err != nil {
		return nil, fmt.Errorf("load background: %w", err)
	}
	w, h := engine.Width(), engine.Height()
	for i, s := range stars {
		stars[i] = physics.Vec2{X: s.X * w, Y: s.Y * h}
	}

	g := &Game{
		engine:   engine,
		settings: opts.Settings,
		stats:    opts.Stats,
		audio:    opts.Audio,
		logger:   opts.Logger,
		rng:      opts.Rand,
		state:    StateMenu,
		stars:    stars,
	}
	g.audio.PlayMusic(audio.BackgroundMusic, true)
	g.logger.Debug("game created", "background", name, "asteroids", len(engine.Asteroids))
	return g, nil
}

// State returns the current phase.
func (g *Game) State() State { return g.state }

// Engine exposes the simulation, mainly for tests.
func (g *Game) Engine() *sim.Engine { return g.engine }

// Tick applies one frame of input and advances the simulation one step.
func (g *Game) Tick(in input.Input, d Display) Outcome {
	if in.Quit || in.Escape || in.Closed {
		return Quit
	}
	if in.F1 || in.PressedKey('r', 'R') {
		return Restart
	}

	if g.state == StateMenu {
		return g.updateMenu(in, d)
	}
	g.updatePlaying(in)
	return Continue
}

func (g *Game) setState(s State) {
	if s == g.state {
		return
	}
	g.logger.Debug("state change", "from", g.state, "to", s)
	g.state = s
}

// updateMenu handles title screen selections by key or mouse.
func (g *Game) updateMenu(in input.Input, d Display) Outcome {
	for item := range menuItemCount {
		if !g.menuSelected(item, in, d) {
			continue
		}
		switch item {
		case itemPlay:
			g.engine.Launch()
			g.setState(StatePlaying)
			g.logger.Info("round started", "id", g.engine.Round.ID, "mode", g.engine.Round.Mode,
				"ship", g.stats.ShipKind)
			return Continue
		case itemToggleMode:
			g.stats.ToggleMode()
		case itemScoreTable:
			g.showScores = !g.showScores
		case itemChangeShip:
			g.stats.NextShip()
		case itemQuit:
			return Quit
		}
	}
	g.engine.Step()
	return Continue
}

func (g *Game) menuSelected(item menuItem, in input.Input, d Display) bool {
	if item == itemPlay && in.Space {
		return true
	}
	if item != itemPlay && in.PressedKey(item.key()) {
		return true
	}
	rect := g.menuRects[item]
	if rect.W == 0 || d == nil {
		return false
	}
	for _, c := range in.Clicks {
		if p, ok := d.ToLogical(c.Col, c.Row); ok && rect.Contains(p) {
			return true
		}
	}
	return false
}
