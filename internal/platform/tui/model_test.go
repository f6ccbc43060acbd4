package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/the-collector/internal/assets"
	"github.com/vovakirdan/the-collector/internal/config"
	"github.com/vovakirdan/the-collector/internal/core"
	"github.com/vovakirdan/the-collector/internal/games/collector"
)

type memKeeper struct {
	high  int
	saves []int
}

func (k *memKeeper) Load() int { return k.high }

func (k *memKeeper) Save(score int) error {
	k.saves = append(k.saves, score)
	k.high = score
	return nil
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	game := collector.New(config.DefaultCollectorConfig(), assets.Defaults(), &memKeeper{})
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickInterval: 10 * time.Millisecond, Seed: 7}
	return NewModel(game, nil, cfg, "tester")
}

func press(m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestMapKeyByPhase(t *testing.T) {
	tests := []struct {
		name  string
		phase collector.Phase
		msg   tea.KeyMsg
		want  core.Action
	}{
		{"space on title", collector.PhaseTitle, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionStart},
		{"arrow on title", collector.PhaseTitle, tea.KeyMsg{Type: tea.KeyUp}, core.ActionNone},
		{"up while running", collector.PhaseRunning, tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"down while running", collector.PhaseRunning, tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"left while running", collector.PhaseRunning, tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"right while running", collector.PhaseRunning, tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"space while running", collector.PhaseRunning, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionNone},
		{"arrow after game over", collector.PhaseGameOver, tea.KeyMsg{Type: tea.KeyLeft}, core.ActionNone},
		{"quit always", collector.PhaseGameOver, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, core.ActionQuit},
		{"ctrl+c always", collector.PhaseRunning, tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"screenshot", collector.PhaseRunning, tea.KeyMsg{Type: tea.KeyCtrlS}, core.ActionScreenshot},
		{"unbound key", collector.PhaseRunning, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keys := DefaultKeyMap()
			keys.ForPhase(tt.phase)
			if got := keys.MapKey(tt.msg); got != tt.want {
				t.Errorf("MapKey = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestModelStartsTickingOnSpace(t *testing.T) {
	m := newTestModel(t)

	if cmd := m.Init(); cmd != nil {
		t.Error("Init should not schedule a tick on the title screen")
	}
	if !strings.Contains(m.View(), "Press SPACE to Start") {
		t.Error("title screen should prompt for SPACE")
	}

	m, cmd := press(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if cmd == nil {
		t.Fatal("starting the round should schedule a tick")
	}
	if m.Game().Phase() != collector.PhaseRunning {
		t.Fatalf("phase = %v, want running", m.Game().Phase())
	}

	// A second space does nothing once running.
	if _, cmd = press(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}); cmd != nil {
		t.Error("space while running should not schedule another tick")
	}
}

func TestModelTickIgnoredBeforeStart(t *testing.T) {
	m := newTestModel(t)

	next, cmd := m.Update(TickMsg(time.Now()))
	if cmd != nil {
		t.Error("tick on the title screen should not reschedule")
	}
	if next.(Model).Game().Ticks() != 0 {
		t.Error("tick on the title screen should not advance the game")
	}
}

func TestModelStopsTickingAtGameOver(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})

	// Step below the lower border: start y is -250, boundary is 290.
	for i := 0; i < 5; i++ {
		m, _ = press(m, tea.KeyMsg{Type: tea.KeyDown})
	}

	next, cmd := m.Update(TickMsg(time.Now()))
	m = next.(Model)
	if cmd != nil {
		t.Error("no tick should be scheduled after game over")
	}
	if m.Game().Phase() != collector.PhaseGameOver {
		t.Fatalf("phase = %v, want game over", m.Game().Phase())
	}
	if !strings.Contains(m.View(), "Game Over!") {
		t.Error("summary should be rendered after game over")
	}

	// Late ticks are ignored.
	if _, cmd = m.Update(TickMsg(time.Now())); cmd != nil {
		t.Error("late tick after game over should not reschedule")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t)

	m, cmd := press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelResize(t *testing.T) {
	m := newTestModel(t)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = next.(Model)
	if m.screen.Width() != 100 || m.screen.Height() != 40 {
		t.Errorf("screen = %dx%d, want 100x40", m.screen.Width(), m.screen.Height())
	}
}

func TestModelViewOnEmptyWindow(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"zero rows", 80, 0},
		{"zero columns", 0, 24},
		{"one row", 80, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t)
			m, _ = press(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})

			next, _ := m.Update(tea.WindowSizeMsg{Width: tt.width, Height: tt.height})
			defer func() {
				if r := recover(); r != nil {
					t.Fatalf("View panicked: %v", r)
				}
			}()
			_ = next.(Model).View()
		})
	}
}
