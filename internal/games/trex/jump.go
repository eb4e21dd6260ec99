package trex

import "github.com/vovakirdan/topsy-trex/internal/core"

// JumpPhase identifies the active segment of a jump arc.
type JumpPhase uint8

const (
	JumpNone             JumpPhase = iota // grounded, may start a jump
	JumpAscending                         // rising above the ground line
	JumpDescending                        // diving below the ground line
	JumpAscendingReturn                   // falling back from an ascent
	JumpDescendingReturn                  // rising back from a dive
)

// String returns a human-readable name for the phase.
func (p JumpPhase) String() string {
	switch p {
	case JumpNone:
		return "None"
	case JumpAscending:
		return "Ascending"
	case JumpDescending:
		return "Descending"
	case JumpAscendingReturn:
		return "AscendingReturn"
	case JumpDescendingReturn:
		return "DescendingReturn"
	default:
		return "Unknown"
	}
}

// direction is the sign of the vertical step applied while the phase holds.
func (p JumpPhase) direction() int {
	switch p {
	case JumpAscending, JumpDescendingReturn:
		return 1
	case JumpDescending, JumpAscendingReturn:
		return -1
	default:
		return 0
	}
}

// returnPhase maps an outbound phase to its return leg.
func (p JumpPhase) returnPhase() JumpPhase {
	if p == JumpDescending {
		return JumpDescendingReturn
	}
	return JumpAscendingReturn
}

// isReturn reports whether p is the second leg of an arc.
func (p JumpPhase) isReturn() bool {
	return p == JumpAscendingReturn || p == JumpDescendingReturn
}

// JumpState is a phase paired with the ticks left before it reverses.
// Countdown is meaningless for JumpNone.
type JumpState struct {
	Phase     JumpPhase
	Countdown int
}

// Grounded reports whether a new jump may start.
func (s JumpState) Grounded() bool {
	return s.Phase == JumpNone
}

// Player is the single runner entity.
type Player struct {
	X, Y  float64
	BaseY float64 // ground line the arc starts and ends on
	Lift  int     // whole steps away from BaseY
	Jump  JumpState
}

// Pos returns the player's position.
func (p *Player) Pos() core.Vec2 {
	return core.Vec2{X: p.X, Y: p.Y}
}

// displace moves the player by dir whole steps. Y is derived from the step
// count so an arc always lands exactly on BaseY.
func (p *Player) displace(dir int, step float64) {
	p.Lift += dir
	p.Y = p.BaseY + float64(p.Lift)*step
}

// advanceJump ingests this tick's jump input and advances the active phase.
//
// An arc with hold K takes 2K+2 ticks: the initiation step, K hold steps,
// the apex reversal step, K-1 return hold steps and the landing step.
// Both legs therefore move K+1 steps.
func advanceJump(ctx *SimulationContext, in core.InputFrame) {
	p := ctx.Player
	if p == nil {
		return
	}
	hold, step := ctx.params.JumpHold, ctx.params.JumpStep

	if p.Jump.Phase == JumpNone {
		// JumpUp is listed first and wins when both arrive on the same tick.
		switch {
		case in.Has(core.ActionJumpUp):
			p.Jump = JumpState{Phase: JumpAscending, Countdown: hold}
		case in.Has(core.ActionJumpDown):
			p.Jump = JumpState{Phase: JumpDescending, Countdown: hold}
		default:
			return
		}
		p.displace(p.Jump.Phase.direction(), step)
		return
	}

	if p.Jump.Countdown > 0 {
		p.displace(p.Jump.Phase.direction(), step)
		p.Jump.Countdown--
		return
	}

	if p.Jump.Phase.isReturn() {
		p.displace(p.Jump.Phase.direction(), step)
		p.Jump = JumpState{Phase: JumpNone}
		return
	}

	// Apex reversal
	p.Jump = JumpState{Phase: p.Jump.Phase.returnPhase(), Countdown: max(hold-1, 0)}
	p.displace(p.Jump.Phase.direction(), step)
}
