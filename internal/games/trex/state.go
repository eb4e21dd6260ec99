package trex

// GameState is the top-level state of a simulation.
type GameState uint8

const (
	Paused GameState = iota
	Running
)

// String returns a human-readable name for the state.
func (s GameState) String() string {
	switch s {
	case Paused:
		return "Paused"
	case Running:
		return "Running"
	default:
		return "Unknown"
	}
}

// EventKind identifies something that happened during a tick.
type EventKind uint8

const (
	EventRunStarted EventKind = iota // entered Running, obstacles spawned
	EventRunOver                     // collision, entered Paused
	EventNewBest                     // the finished run beat the best time
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventRunStarted:
		return "RunStarted"
	case EventRunOver:
		return "RunOver"
	case EventNewBest:
		return "NewBest"
	default:
		return "Unknown"
	}
}

// Event is emitted by a tick. Elapsed and Best are the timer values at the
// moment of the event.
type Event struct {
	Kind    EventKind
	Elapsed float64
	Best    float64
}

// requestTransition records a state change to apply at the end of the tick.
func (ctx *SimulationContext) requestTransition(to GameState) {
	ctx.pending = to
	ctx.hasPending = true
}

func (ctx *SimulationContext) emit(kind EventKind) {
	ctx.events = append(ctx.events, Event{
		Kind:    kind,
		Elapsed: ctx.Score.Elapsed,
		Best:    ctx.Score.Best,
	})
}

// listenRestart is the only work done while paused.
func listenRestart(ctx *SimulationContext, restart bool) {
	if !restart {
		return
	}
	if ctx.Score.Restart(ctx.params.ResetEveryRun) {
		ctx.emit(EventNewBest)
	}
	ctx.requestTransition(Running)
}

// applyTransition performs the pending state change, if any.
func applyTransition(ctx *SimulationContext) {
	if !ctx.hasPending {
		return
	}
	to := ctx.pending
	ctx.hasPending = false
	if to == ctx.State {
		return
	}

	switch to {
	case Running:
		ctx.resetPlayer()
		spawnObstacles(ctx)
		ctx.Ticks = 0
		ctx.State = Running
		ctx.emit(EventRunStarted)
	case Paused:
		despawnObstacles(ctx)
		ctx.State = Paused
		ctx.emit(EventRunOver)
	}
}
