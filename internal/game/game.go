package game

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"brickout/internal/audio"
	"brickout/internal/component"
	"brickout/internal/config"
	"brickout/internal/ecs"
	"brickout/internal/level"
	"brickout/internal/render"
	"brickout/internal/system"
)

// State names.
const (
	StateWaiting = "waiting"
	StateRunning = "running"
)

// Options carries the optional collaborators of a Game. Zero values fall
// back to the wall clock, a time-seeded RNG, no logging and no sound.
type Options struct {
	Log   *zap.Logger
	Clock system.Clock
	Rand  *rand.Rand
	Audio *audio.Player
}

// Game is the top-level orchestrator: it owns the world, the state machine
// and the screen, and steps them once per tick.
type Game struct {
	cfg      *config.Config
	screen   tcell.Screen
	renderer *render.Renderer
	world    *ecs.World
	machine  *Machine
	keys     *Keyboard
	rules    *system.Rules
	clock    system.Clock
	log      *zap.Logger
	audio    *audio.Player

	layout  *level.Layout
	bricks  []level.Brick
	round   int
	started time.Time // when the current round was launched
	paused  bool
}

// New creates a Game on a fresh terminal screen.
func New(cfg *config.Config, opts Options) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	g, err := NewWithScreen(screen, cfg, opts)
	if err != nil {
		screen.Fini()
		return nil, err
	}
	return g, nil
}

// NewWithScreen creates a Game drawing to an initialised screen.
func NewWithScreen(screen tcell.Screen, cfg *config.Config, opts Options) (*Game, error) {
	layout, err := level.Resolve(cfg.Game.Level)
	if err != nil {
		return nil, fmt.Errorf("load level: %w", err)
	}
	bricks, err := layout.Bricks(cfg)
	if err != nil {
		return nil, fmt.Errorf("load level: %w", err)
	}

	if opts.Log == nil {
		opts.Log = zap.NewNop()
	}
	if opts.Clock == nil {
		opts.Clock = system.SystemClock{}
	}
	if opts.Rand == nil {
		seed := cfg.Game.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		opts.Rand = rand.New(rand.NewSource(seed))
	}

	g := &Game{
		cfg:      cfg,
		screen:   screen,
		renderer: render.NewRenderer(screen, cfg.Window.Width, cfg.Window.Height),
		world:    component.NewWorld(),
		machine:  NewMachine(),
		keys:     NewKeyboard(opts.Clock, cfg.Input.HoldWindow),
		rules:    system.NewRules(cfg, opts.Clock, opts.Rand, opts.Log),
		clock:    opts.Clock,
		log:      opts.Log,
		audio:    opts.Audio,
		layout:   layout,
		bricks:   bricks,
		round:    1,
	}
	g.machine.Register(StateWaiting, &waitingState{g: g})
	g.machine.Register(StateRunning, &runningState{g: g})
	return g, nil
}

// Start enters the first state. Run calls it when needed.
func (g *Game) Start() {
	if g.machine.Current() == "" {
		g.transition(StateWaiting)
	}
}

// Run is the main game loop. It returns when the player quits, the screen
// closes or ctx is done. Run owns the screen and finalises it on return.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Fini()

	events := make(chan tcell.Event, 32)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(g.cfg.Game.TickRate)
	defer ticker.Stop()

	g.Start()
	g.Draw()
	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if g.HandleEvent(ev) {
				return nil
			}
		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now
			if err := g.Step(dt); err != nil {
				return err
			}
			g.Draw()
		}
	}
}

// HandleEvent applies one terminal event and reports whether the player
// asked to quit.
func (g *Game) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		g.screen.Sync()
		g.renderer.Resize()
	case *tcell.EventKey:
		switch keyToAction(ev) {
		case ActionLeft:
			g.keys.Press(system.KeyLeft)
		case ActionRight:
			g.keys.Press(system.KeyRight)
		case ActionLaunch:
			g.keys.Press(system.KeyLaunch)
		case ActionPause:
			g.paused = !g.paused
		case ActionQuit:
			return true
		}
	}
	return false
}

// Step advances the game by dt, clamped to the configured maximum step. A
// component contract violation inside the frame aborts it and is returned
// as an error wrapping *ecs.MissingComponentError.
func (g *Game) Step(dt time.Duration) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		perr, ok := r.(error)
		var missing *ecs.MissingComponentError
		if !ok || !errors.As(perr, &missing) {
			panic(r)
		}
		g.log.Error("frame aborted", zap.String("state", g.machine.Current()), zap.Error(perr))
		err = fmt.Errorf("step %s: %w", g.machine.Current(), perr)
	}()

	if g.paused {
		return nil
	}
	g.machine.Update(min(dt, g.cfg.Game.MaxStep).Seconds())
	return nil
}

// Draw renders the current frame.
func (g *Game) Draw() {
	g.renderer.DrawFrame(g.world, g.hud())
}

func (g *Game) hud() render.HUD {
	h := render.HUD{
		Level:    g.layout.Name,
		Round:    g.round,
		Bricks:   system.BricksLeft(g.world),
		Broken:   g.rules.Stats.BricksBroken,
		Piercing: system.PiercingLeft(g.world, g.clock.Now()),
	}
	switch {
	case g.paused:
		h.Prompt = "PAUSED - P to resume"
	case g.machine.Current() == StateWaiting:
		h.Prompt = "SPACE to launch   ←/→ to move   Q to quit"
	}
	return h
}

func (g *Game) transition(name string) {
	if err := g.machine.Switch(name); err != nil {
		panic(err)
	}
	g.log.Debug("state", zap.String("enter", name), zap.Int("round", g.round))
}

// gameOver restarts from the first round.
func (g *Game) gameOver() {
	g.log.Info("round lost", zap.Int("round", g.round), zap.Int("bricks_broken", g.rules.Stats.BricksBroken))
	g.recordRound(OutcomeLost)
	g.round = 1
	g.rules.Stats = system.Stats{}
	g.transition(StateWaiting)
}

// levelCleared rebuilds the level for the next round.
func (g *Game) levelCleared() {
	g.log.Info("round cleared", zap.Int("round", g.round))
	g.recordRound(OutcomeCleared)
	g.round++
	g.transition(StateWaiting)
}

func (g *Game) recordRound(outcome string) {
	if !g.cfg.Game.RunLog {
		return
	}
	now := g.clock.Now()
	saveRunLog(RoundRecord{
		Finished:          now,
		Level:             g.layout.Name,
		Round:             g.round,
		Outcome:           outcome,
		Duration:          now.Sub(g.started),
		BricksBroken:      g.rules.Stats.BricksBroken,
		PowerUpsCollected: g.rules.Stats.PowerUpsCollected,
		Bounces:           g.rules.Stats.Bounces,
	}, g.log)
}

// World returns the game's ECS world.
func (g *Game) World() *ecs.World { return g.world }

// State returns the name of the current state.
func (g *Game) State() string { return g.machine.Current() }

// Round returns the current round, starting at 1.
func (g *Game) Round() int { return g.round }
