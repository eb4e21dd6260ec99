package trex

import (
	"testing"

	"github.com/vovakirdan/topsy-trex/internal/core"
)

// collisionContext places a player at the origin and the given short obstacles.
func collisionContext(policy CollisionPolicy, xs ...float64) *SimulationContext {
	params := emptyParams()
	params.PlayerStart = core.Vec2{}
	params.PlayerRadius = 37.5
	params.Kinds[ShortObstacle].Radius = 37.5
	params.Policy = policy

	ctx := NewContext(params, fixedRand{})
	ctx.resetPlayer()
	for _, x := range xs {
		ctx.Obstacles[ShortObstacle] = append(ctx.Obstacles[ShortObstacle], Obstacle{
			Kind:   ShortObstacle,
			X:      x,
			Motion: Moving(),
		})
	}
	return ctx
}

func TestDetectCollision(t *testing.T) {
	tests := []struct {
		name     string
		xs       []float64
		expected bool
	}{
		{"overlapping at 50", []float64{50}, true},
		{"same position", []float64{0}, true},
		{"touching at 75", []float64{75}, false},
		{"far away", []float64{400}, false},
		{"behind the player", []float64{-60}, true},
		{"no obstacles", nil, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctx := collisionContext(CollideAll, tc.xs...)
			if got := detectCollision(ctx); got != tc.expected {
				t.Errorf("detectCollision() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestDetectCollisionDiagonal(t *testing.T) {
	ctx := collisionContext(CollideAll)
	ctx.Obstacles[FlyingObstacle] = append(ctx.Obstacles[FlyingObstacle], Obstacle{
		Kind: FlyingObstacle, X: 60, Y: 60, Motion: Moving(),
	})
	ctx.params.Kinds[FlyingObstacle].Radius = 37.5

	// Distance ~84.85 is beyond 75 even though both axes are within it
	if detectCollision(ctx) {
		t.Error("diagonal obstacle at (60, 60) should not collide")
	}

	ctx.Obstacles[FlyingObstacle][0].Y = 40
	if !detectCollision(ctx) {
		t.Error("obstacle at (60, 40) should collide")
	}
}

func TestCollisionPolicies(t *testing.T) {
	// Only the second obstacle in the pool overlaps the player.
	xs := []float64{500, 10}

	if !detectCollision(collisionContext(CollideAll, xs...)) {
		t.Error("CollideAll should find the second obstacle")
	}
	if detectCollision(collisionContext(CollideFirstPerKind, xs...)) {
		t.Error("CollideFirstPerKind should only test the first obstacle")
	}

	// The first obstacle of every pool is still tested.
	ctx := collisionContext(CollideFirstPerKind, 500)
	ctx.Obstacles[LongObstacle] = append(ctx.Obstacles[LongObstacle], Obstacle{Kind: LongObstacle, X: 20, Motion: Moving()})
	ctx.params.Kinds[LongObstacle].Radius = 37.5
	if !detectCollision(ctx) {
		t.Error("CollideFirstPerKind should test the first obstacle of each kind")
	}
}

func TestDetectCollisionWithoutPlayer(t *testing.T) {
	ctx := collisionContext(CollideAll, 0)
	ctx.Player = nil

	if detectCollision(ctx) {
		t.Error("no player means no collision")
	}
}

func TestForcedOverlapEndsRun(t *testing.T) {
	ctx := startRun(t, defaultParams())

	o := &ctx.Obstacles[ShortObstacle][0]
	o.X, o.Y = ctx.Player.X, ctx.Player.Y

	res := Tick(ctx, idle(), tick)

	if res.State != Paused {
		t.Fatalf("State = %v, expected Paused after overlap", res.State)
	}
	if !hasEvent(res.Events, EventRunOver) {
		t.Errorf("events %v should contain RunOver", res.Events)
	}
	if ctx.PoolSize() != 0 {
		t.Errorf("PoolSize() = %d after game over, expected all obstacles despawned", ctx.PoolSize())
	}

	// The next tick is paused: nothing is re-evaluated.
	res = Tick(ctx, idle(), tick)
	if res.State != Paused || len(res.Events) != 0 {
		t.Errorf("paused tick produced state %v events %v", res.State, res.Events)
	}
}

func TestForcedOverlapWithFirstPerKindPolicy(t *testing.T) {
	params := defaultParams()
	params.Policy = CollideFirstPerKind
	ctx := startRun(t, params)

	second := &ctx.Obstacles[ShortObstacle][1]
	second.X, second.Y = ctx.Player.X, ctx.Player.Y
	if res := Tick(ctx, idle(), tick); res.State != Running {
		t.Fatalf("second obstacle should be ignored, got %v", res.State)
	}

	first := &ctx.Obstacles[ShortObstacle][0]
	first.X, first.Y = ctx.Player.X, ctx.Player.Y
	if res := Tick(ctx, idle(), tick); res.State != Paused {
		t.Fatalf("first obstacle should end the run, got %v", res.State)
	}
}
