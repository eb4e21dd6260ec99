package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/topsy-trex/internal/config"
	"github.com/vovakirdan/topsy-trex/internal/core"
	"github.com/vovakirdan/topsy-trex/internal/games/trex"
)

func newTestModel() (Model, *trex.Game) {
	game := trex.New(config.DefaultTrexConfig(), nil)
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}
	return NewModel(game, cfg, 0.1), game
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return model
}

func TestModelRestartOnTick(t *testing.T) {
	m, game := newTestModel()
	now := time.Unix(100, 0)

	m = update(t, m, runeKey('r'))
	if game.State() != trex.Paused {
		t.Fatal("keys should only take effect on the next tick")
	}

	m = update(t, m, TickMsg(now))
	if game.State() != trex.Running {
		t.Fatalf("State() = %v after restart tick, expected Running", game.State())
	}

	// The input frame is cleared after each tick
	update(t, m, TickMsg(now.Add(16*time.Millisecond)))
	if got := game.Snapshot().Elapsed; got <= 0 || got > 0.02 {
		t.Errorf("Elapsed = %v, expected one ~16ms step", got)
	}
}

func TestModelJumpInput(t *testing.T) {
	m, game := newTestModel()
	now := time.Unix(100, 0)

	m = update(t, m, runeKey('r'))
	m = update(t, m, TickMsg(now))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	update(t, m, TickMsg(now.Add(16*time.Millisecond)))

	snap := game.Snapshot()
	if snap.Player == nil || snap.Player.Jump != trex.JumpDescending {
		t.Errorf("player = %+v, expected a dive", snap.Player)
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel()

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if v := next.View(); v != "" {
		t.Errorf("View() after quit = %q, expected empty", v)
	}
}

func TestModelView(t *testing.T) {
	m, _ := newTestModel()

	view := m.View()

	if !strings.Contains(view, "PAUSED") {
		t.Error("initial view should show the paused box")
	}
	if !strings.Contains(view, "jump") || !strings.Contains(view, "quit") {
		t.Error("view should end with the key help line")
	}
}

func TestModelResize(t *testing.T) {
	m, _ := newTestModel()

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if m.screen.Width() != 100 || m.screen.Height() != 30-helpRows {
		t.Errorf("screen = %dx%d, expected 100x%d", m.screen.Width(), m.screen.Height(), 30-helpRows)
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawTextColored(0, 0, "Hello", core.ColorCyan)
	s.DrawText(0, 1, "World")

	out := RenderScreen(s)

	if !strings.Contains(out, "Hello") || !strings.Contains(out, "World") {
		t.Errorf("RenderScreen() = %q, expected both rows", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("RenderScreen() should join 2 rows with 1 newline, got %q", out)
	}
}
