package trex

import "github.com/vovakirdan/topsy-trex/internal/core"

// CollisionPolicy selects which obstacles are tested each tick.
type CollisionPolicy uint8

const (
	// CollideAll tests every obstacle in every pool.
	CollideAll CollisionPolicy = iota
	// CollideFirstPerKind tests only the first obstacle of each pool,
	// matching the early-exit behaviour of the first prototypes.
	CollideFirstPerKind
)

// detectCollision reports whether the player overlaps an obstacle.
// Overlap is strict: circles that merely touch do not collide.
func detectCollision(ctx *SimulationContext) bool {
	p := ctx.Player
	if p == nil {
		return false
	}
	pos := p.Pos()

	for k, pool := range ctx.Obstacles {
		reach := ctx.params.PlayerRadius + ctx.params.Kinds[k].Radius
		for i := range pool {
			if core.Dist(pos, pool[i].Pos()) < reach {
				return true
			}
			if ctx.params.Policy == CollideFirstPerKind {
				break
			}
		}
	}
	return false
}
