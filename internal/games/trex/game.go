// Package trex implements the Topsy Turvey T-Rex runner: a Dino Runner
// variant where the player can jump above the ground line or dive below it
// to dodge pooled obstacles.
//
// The simulation (Tick and the components it drives) is pure: it consumes
// an input frame and a delta time and mutates a SimulationContext. Game
// wraps a context with configuration, seeding, logging and rendering for
// the terminal host.
package trex

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/topsy-trex/internal/config"
	"github.com/vovakirdan/topsy-trex/internal/core"
)

// Game implements the runner for the terminal host.
type Game struct {
	cfg     config.TrexConfig
	ctx     *SimulationContext
	runtime core.RuntimeConfig
	logger  *log.Logger
}

// New creates a game with the given configuration. A nil logger discards output.
func New(cfg config.TrexConfig, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		cfg:    cfg,
		logger: logger,
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "trex"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Topsy Turvey T-Rex"
}

// Reset discards all state, including the best time, and starts paused.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.ctx = NewContext(ParamsFromConfig(g.cfg), rand.New(rand.NewSource(runtime.Seed)))
	g.logger.Debug("game reset", "seed", runtime.Seed, "policy", g.cfg.Collision.Policy)
}

// Step advances the game by one tick of dt seconds.
func (g *Game) Step(in core.InputFrame, dt float64) TickResult {
	if g.ctx == nil {
		g.Reset(g.runtime)
	}
	result := Tick(g.ctx, in, dt)
	for _, ev := range result.Events {
		g.logEvent(ev)
	}
	return result
}

func (g *Game) logEvent(ev Event) {
	switch ev.Kind {
	case EventRunStarted:
		g.logger.Info("run started", "obstacles", g.ctx.PoolSize(), "elapsed", ev.Elapsed)
	case EventRunOver:
		g.logger.Info("run over", "elapsed", ev.Elapsed, "best", ev.Best)
	case EventNewBest:
		g.logger.Info("new best", "best", ev.Best)
	}
}

// Context exposes the simulation state.
func (g *Game) Context() *SimulationContext {
	return g.ctx
}

// Snapshot returns a read-only copy of the current state.
func (g *Game) Snapshot() Snapshot {
	if g.ctx == nil {
		return Snapshot{}
	}
	return g.ctx.Snapshot()
}

// State returns the current game state.
func (g *Game) State() GameState {
	if g.ctx == nil {
		return Paused
	}
	return g.ctx.State
}
