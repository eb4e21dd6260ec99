package trex

import "github.com/vovakirdan/topsy-trex/internal/core"

// ObstacleKind tags an obstacle's pool.
type ObstacleKind uint8

const (
	ShortObstacle ObstacleKind = iota
	LongObstacle
	FlyingObstacle

	kindCount = 3
)

// Kinds lists every obstacle kind in pool order.
var Kinds = [kindCount]ObstacleKind{ShortObstacle, LongObstacle, FlyingObstacle}

// String returns a human-readable name for the kind.
func (k ObstacleKind) String() string {
	switch k {
	case ShortObstacle:
		return "short"
	case LongObstacle:
		return "long"
	case FlyingObstacle:
		return "flying"
	default:
		return "unknown"
	}
}

// MotionState tags an obstacle's motion phase.
type MotionState uint8

const (
	MotionWaiting MotionState = iota // parked at the spawn edge, counting down
	MotionMoving                     // scrolling toward the player
)

// MotionPhase is a motion state paired with the ticks left to wait.
// Wait is only meaningful while MotionWaiting.
type MotionPhase struct {
	State MotionState
	Wait  int
}

// Waiting returns a waiting phase with n ticks of grace left.
func Waiting(n int) MotionPhase {
	return MotionPhase{State: MotionWaiting, Wait: n}
}

// Moving returns the moving phase.
func Moving() MotionPhase {
	return MotionPhase{State: MotionMoving}
}

// Obstacle is one pooled entity. Obstacles are mutated in place while a run
// lasts and only dropped in bulk when the game pauses.
type Obstacle struct {
	Kind   ObstacleKind
	X, Y   float64
	Motion MotionPhase
}

// Pos returns the obstacle's position.
func (o *Obstacle) Pos() core.Vec2 {
	return core.Vec2{X: o.X, Y: o.Y}
}

// RandomSource supplies uniform integers in [0, n). *math/rand.Rand satisfies it.
type RandomSource interface {
	Intn(n int) int
}

// graceTicks draws a fresh grace period for kind k.
func graceTicks(ctx *SimulationContext, k ObstacleKind) int {
	kp := ctx.params.Kinds[k]
	if kp.GraceMax <= kp.GraceMin {
		return kp.GraceMin
	}
	return kp.GraceMin + ctx.rng.Intn(kp.GraceMax-kp.GraceMin)
}

// spawnObstacles rebuilds every pool with its configured roster, each
// obstacle parked at the spawn edge with its own grace period.
func spawnObstacles(ctx *SimulationContext) {
	for _, k := range Kinds {
		kp := ctx.params.Kinds[k]
		pool := ctx.Obstacles[k][:0]
		for i := 0; i < kp.Count; i++ {
			pool = append(pool, Obstacle{
				Kind:   k,
				X:      ctx.params.SpawnX,
				Y:      kp.Y,
				Motion: Waiting(graceTicks(ctx, k)),
			})
		}
		ctx.Obstacles[k] = pool
	}
}

// despawnObstacles drops every obstacle, keeping pool capacity.
func despawnObstacles(ctx *SimulationContext) {
	for k := range ctx.Obstacles {
		ctx.Obstacles[k] = ctx.Obstacles[k][:0]
	}
}

// moveObstacles counts down waiting obstacles and scrolls moving ones.
// An obstacle whose wait is over enters at the spawn edge without moving
// on that tick, however long it waited.
func moveObstacles(ctx *SimulationContext, dt float64) {
	for k := range ctx.Obstacles {
		speed := ctx.params.Kinds[k].Speed
		pool := ctx.Obstacles[k]
		for i := range pool {
			o := &pool[i]
			switch o.Motion.State {
			case MotionWaiting:
				if o.Motion.Wait == 0 {
					o.Motion = Moving()
					o.X = ctx.params.SpawnX
					continue
				}
				o.Motion.Wait--
			case MotionMoving:
				o.X -= speed * dt
			}
		}
	}
}

// recycleObstacles sends moving obstacles that left the band back to the
// spawn edge with a fresh grace period.
func recycleObstacles(ctx *SimulationContext) {
	for _, k := range Kinds {
		pool := ctx.Obstacles[k]
		for i := range pool {
			o := &pool[i]
			if o.Motion.State == MotionMoving && o.X < ctx.params.RecycleX {
				o.X = ctx.params.SpawnX
				o.Motion = Waiting(graceTicks(ctx, k))
			}
		}
	}
}
