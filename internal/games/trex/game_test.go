package trex

import (
	"strings"
	"testing"

	"github.com/vovakirdan/topsy-trex/internal/config"
	"github.com/vovakirdan/topsy-trex/internal/core"
)

func newTestGame(seed int64) *Game {
	g := New(config.DefaultTrexConfig(), nil)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	return g
}

func TestGameDeterminism(t *testing.T) {
	// Same seed and inputs must produce identical runs
	inputs := make([]core.InputFrame, 600)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch {
		case i == 0:
			inputs[i].Set(core.ActionRestart)
		case i%45 == 0:
			inputs[i].Set(core.ActionJumpUp)
		case i%70 == 0:
			inputs[i].Set(core.ActionJumpDown)
		}
	}

	run := func() Snapshot {
		g := newTestGame(12345)
		for _, in := range inputs {
			g.Step(in, tick)
		}
		return g.Snapshot()
	}

	s1, s2 := run(), run()

	if s1.State != s2.State || s1.Elapsed != s2.Elapsed || s1.Ticks != s2.Ticks {
		t.Errorf("Determinism failed: %+v vs %+v", s1, s2)
	}
	if len(s1.Obstacles) != len(s2.Obstacles) {
		t.Fatalf("Determinism failed: %d vs %d obstacles", len(s1.Obstacles), len(s2.Obstacles))
	}
	for i := range s1.Obstacles {
		if s1.Obstacles[i] != s2.Obstacles[i] {
			t.Errorf("obstacle %d differs: %+v vs %+v", i, s1.Obstacles[i], s2.Obstacles[i])
		}
	}
}

func TestGameStepBeforeReset(t *testing.T) {
	g := New(config.DefaultTrexConfig(), nil)

	if g.State() != Paused {
		t.Errorf("State() = %v before reset, expected Paused", g.State())
	}
	res := g.Step(core.NewInputFrame(core.ActionRestart), tick)
	if res.State != Running {
		t.Errorf("Step should lazily reset and start a run, got %v", res.State)
	}
}

func TestGameResetClearsBest(t *testing.T) {
	g := newTestGame(1)
	g.Context().Score = ScoreTimer{Elapsed: 3, Best: 10}

	g.Reset(core.DefaultConfig())

	if s := g.Snapshot(); s.Best != 0 || s.Elapsed != 0 || s.State != Paused {
		t.Errorf("Reset should start fresh, got %+v", s)
	}
}

func TestRenderPaused(t *testing.T) {
	g := newTestGame(1)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	out := screen.String()

	if !strings.Contains(out, "PAUSED") {
		t.Errorf("paused screen should show PAUSED:\n%s", out)
	}
	if !strings.Contains(screen.Row(0), "Topsy Turvey T-Rex") {
		t.Errorf("HUD should show the title, got %q", screen.Row(0))
	}
	if strings.ContainsRune(out, PlayerChar) {
		t.Error("no player should be drawn before the first run")
	}
}

func TestRenderRunning(t *testing.T) {
	g := newTestGame(1)
	g.Step(core.NewInputFrame(core.ActionRestart), tick)
	g.Step(core.NewInputFrame(), 0.5)

	// Bring one obstacle into view
	o := &g.Context().Obstacles[LongObstacle][0]
	o.Motion = Moving()
	o.X = 0

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	if strings.Contains(out, "PAUSED") {
		t.Error("running screen should not show PAUSED")
	}
	if !strings.ContainsRune(out, PlayerChar) {
		t.Errorf("player should be drawn:\n%s", out)
	}
	if !strings.ContainsRune(out, LongChar) {
		t.Errorf("long obstacle should be drawn:\n%s", out)
	}
	if !strings.ContainsRune(out, GroundChar) {
		t.Errorf("ground should be drawn:\n%s", out)
	}
	if !strings.Contains(screen.Row(0), "Time:   0.5s") {
		t.Errorf("HUD should show elapsed time, got %q", screen.Row(0))
	}
}

func TestRenderGroundBelowPlayer(t *testing.T) {
	g := newTestGame(1)
	g.Step(core.NewInputFrame(core.ActionRestart), tick)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	playerRow, groundRow := -1, -1
	for y := 0; y < screen.Height(); y++ {
		row := screen.Row(y)
		if playerRow < 0 && strings.ContainsRune(row, PlayerChar) {
			playerRow = y
		}
		if strings.ContainsRune(row, GroundChar) {
			groundRow = y
		}
	}

	if playerRow < 0 || groundRow <= playerRow {
		t.Errorf("ground row %d should be below player row %d:\n%s", groundRow, playerRow, screen.String())
	}
}
