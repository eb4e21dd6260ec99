package trex

import (
	"testing"

	"github.com/vovakirdan/topsy-trex/internal/config"
	"github.com/vovakirdan/topsy-trex/internal/core"
)

const tick = 1.0 / 60.0

// fixedRand always returns the same value, clamped into [0, n).
type fixedRand struct{ v int }

func (r fixedRand) Intn(n int) int {
	if r.v >= n {
		return n - 1
	}
	return r.v
}

func defaultParams() Params {
	return ParamsFromConfig(config.DefaultTrexConfig())
}

// emptyParams has no obstacles at all.
func emptyParams() Params {
	p := defaultParams()
	for k := range p.Kinds {
		p.Kinds[k].Count = 0
	}
	return p
}

func restart() core.InputFrame {
	return core.NewInputFrame(core.ActionRestart)
}

func idle() core.InputFrame {
	return core.NewInputFrame()
}

// startRun returns a context that has just entered Running.
func startRun(t *testing.T, params Params) *SimulationContext {
	t.Helper()
	ctx := NewContext(params, fixedRand{})
	res := Tick(ctx, restart(), tick)
	if res.State != Running {
		t.Fatalf("restart should enter Running, got %v", res.State)
	}
	return ctx
}

func hasEvent(events []Event, kind EventKind) bool {
	for _, ev := range events {
		if ev.Kind == kind {
			return true
		}
	}
	return false
}
