package trex

import (
	"github.com/vovakirdan/topsy-trex/internal/config"
	"github.com/vovakirdan/topsy-trex/internal/core"
)

// KindParams are the fixed parameters of one obstacle pool.
type KindParams struct {
	Count    int
	Y        float64
	Radius   float64
	Speed    float64 // world units per second
	GraceMin int     // inclusive, ticks
	GraceMax int     // exclusive, ticks
}

// Params are the fixed parameters of a simulation.
type Params struct {
	SpawnX        float64
	RecycleX      float64
	PlayerStart   core.Vec2
	PlayerRadius  float64
	JumpHold      int
	JumpStep      float64
	Kinds         [kindCount]KindParams
	Policy        CollisionPolicy
	ResetEveryRun bool
}

// ParamsFromConfig derives simulation parameters from a loaded config.
// Radii are half the configured sprite sizes.
func ParamsFromConfig(cfg config.TrexConfig) Params {
	kind := func(k config.ObstacleKindConfig) KindParams {
		return KindParams{
			Count:    k.Count,
			Y:        k.Y,
			Radius:   k.Size / 2,
			Speed:    k.Speed,
			GraceMin: k.GraceMin,
			GraceMax: k.GraceMax,
		}
	}

	policy := CollideAll
	if cfg.Collision.Policy == config.CollisionFirstPerKind {
		policy = CollideFirstPerKind
	}

	return Params{
		SpawnX:       cfg.World.SpawnX,
		RecycleX:     cfg.World.RecycleX,
		PlayerStart:  core.Vec2{X: cfg.Player.X, Y: cfg.Player.Y},
		PlayerRadius: cfg.Player.Size / 2,
		JumpHold:     cfg.Jump.HoldTicks,
		JumpStep:     cfg.Jump.Step,
		Kinds: [kindCount]KindParams{
			ShortObstacle:  kind(cfg.Obstacles.Short),
			LongObstacle:   kind(cfg.Obstacles.Long),
			FlyingObstacle: kind(cfg.Obstacles.Flying),
		},
		Policy:        policy,
		ResetEveryRun: cfg.Score.ResetEveryRun,
	}
}

// SimulationContext holds all mutable simulation state. The host loop owns
// it and passes it to every tick; nothing in the simulation is global.
type SimulationContext struct {
	State     GameState
	Player    *Player // nil until the first run starts
	Obstacles [kindCount][]Obstacle
	Score     ScoreTimer
	Ticks     int // ticks spent Running in the current run

	params     Params
	rng        RandomSource
	pending    GameState
	hasPending bool
	events     []Event
}

// NewContext creates a paused simulation with empty obstacle pools.
func NewContext(params Params, rng RandomSource) *SimulationContext {
	ctx := &SimulationContext{
		State:  Paused,
		params: params,
		rng:    rng,
	}
	for k := range ctx.Obstacles {
		ctx.Obstacles[k] = make([]Obstacle, 0, max(params.Kinds[k].Count, 0))
	}
	return ctx
}

// Params returns the simulation's fixed parameters.
func (ctx *SimulationContext) Params() Params {
	return ctx.params
}

// resetPlayer puts the player back on the baseline, grounded.
func (ctx *SimulationContext) resetPlayer() {
	start := ctx.params.PlayerStart
	if ctx.Player == nil {
		ctx.Player = &Player{}
	}
	*ctx.Player = Player{
		X:     start.X,
		Y:     start.Y,
		BaseY: start.Y,
	}
}

// PoolSize returns the number of live obstacles across all pools.
func (ctx *SimulationContext) PoolSize() int {
	n := 0
	for _, pool := range ctx.Obstacles {
		n += len(pool)
	}
	return n
}

// TickResult is returned by Tick.
type TickResult struct {
	State  GameState
	Events []Event
}

// Tick advances the simulation by one step of dt seconds.
//
// The branch is chosen by the state at the start of the tick and state
// changes are applied only at its end, so a run that ends this tick cannot
// restart in the same tick. Running ticks execute in fixed order: jump,
// timer, obstacle motion, recycling, collision.
func Tick(ctx *SimulationContext, in core.InputFrame, dt float64) TickResult {
	if dt < 0 {
		dt = 0
	}

	switch ctx.State {
	case Paused:
		listenRestart(ctx, in.Has(core.ActionRestart))
	case Running:
		ctx.Ticks++
		advanceJump(ctx, in)
		ctx.Score.Advance(dt)
		moveObstacles(ctx, dt)
		recycleObstacles(ctx)
		if detectCollision(ctx) {
			ctx.requestTransition(Paused)
		}
	}

	applyTransition(ctx)

	result := TickResult{State: ctx.State, Events: ctx.events}
	ctx.events = nil
	return result
}

// PlayerView is a read-only copy of the player for renderers.
type PlayerView struct {
	X, Y   float64
	Radius float64
	Jump   JumpPhase
}

// ObstacleView is a read-only copy of an obstacle for renderers.
type ObstacleView struct {
	Kind    ObstacleKind
	X, Y    float64
	Radius  float64
	Waiting bool
}

// Snapshot is everything a renderer or HUD may read.
type Snapshot struct {
	State     GameState
	Player    *PlayerView
	Obstacles []ObstacleView
	Elapsed   float64
	Best      float64
	Ticks     int
}

// Snapshot copies the current state for rendering.
func (ctx *SimulationContext) Snapshot() Snapshot {
	snap := Snapshot{
		State:     ctx.State,
		Elapsed:   ctx.Score.Elapsed,
		Best:      ctx.Score.Best,
		Ticks:     ctx.Ticks,
		Obstacles: make([]ObstacleView, 0, ctx.PoolSize()),
	}
	if p := ctx.Player; p != nil {
		snap.Player = &PlayerView{
			X:      p.X,
			Y:      p.Y,
			Radius: ctx.params.PlayerRadius,
			Jump:   p.Jump.Phase,
		}
	}
	for k, pool := range ctx.Obstacles {
		for _, o := range pool {
			snap.Obstacles = append(snap.Obstacles, ObstacleView{
				Kind:    o.Kind,
				X:       o.X,
				Y:       o.Y,
				Radius:  ctx.params.Kinds[k].Radius,
				Waiting: o.Motion.State == MotionWaiting,
			})
		}
	}
	return snap
}
