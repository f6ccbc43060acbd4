package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/the-collector/internal/core"
	"github.com/vovakirdan/the-collector/internal/games/collector"
	"github.com/vovakirdan/the-collector/internal/storage"
)

// Model is the Bubble Tea model for one play session: title, one round, summary.
type Model struct {
	game     *collector.Game
	screen   *core.Screen
	store    *storage.Store // Round history; nil when unavailable
	logger   *log.Logger    // Operator log; nil for local play
	config   core.RuntimeConfig
	player   string
	keys     KeyMap
	help     help.Model
	quitting bool
	recorded bool // Whether the finished round has been written to history
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *collector.Game, store *storage.Store, cfg core.RuntimeConfig, player string) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	game.Reset(cfg)

	keys := DefaultKeyMap()
	keys.ForPhase(game.Phase())

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		config: cfg,
		player: player,
		keys:   keys,
		help:   help.New(),
	}
}

// WithLogger returns a copy of the model that reports to logger.
func (m Model) WithLogger(logger *log.Logger) Model {
	m.logger = logger
	return m
}

// Init waits on the title screen; ticking starts with the round.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Moves are applied immediately, between
// ticks, and run their own collision check.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionScreenshot:
		m.saveScreenshot()
		return m, nil

	case core.ActionStart:
		if m.game.Start() {
			m.keys.ForPhase(m.game.Phase())
			return m, tickCmd(m.config.TickInterval)
		}
		return m, nil
	}

	if dir, ok := collector.DirectionFor(action); ok {
		m.game.Move(dir)
	}
	return m, nil
}

// handleTick runs one simulation step and schedules the next one until the
// round is over.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.game.Phase() != collector.PhaseRunning {
		return m, nil
	}

	result := m.game.Step()
	if !result.State.GameOver {
		return m, tickCmd(m.config.TickInterval)
	}

	m.keys.ForPhase(m.game.Phase())
	if err := m.game.SaveErr(); err != nil && m.logger != nil {
		m.logger.Warn("could not save high score", "player", m.player, "error", err)
	}
	m.recordRound(result.State)
	return m, nil
}

// recordRound appends the finished round to the history once.
func (m *Model) recordRound(st core.GameState) {
	if m.recorded || st.Score == 0 {
		return
	}
	m.recorded = true
	if m.store == nil {
		return
	}

	_, err := m.store.RecordRound(storage.RoundEntry{
		Player: m.player,
		Score:  st.Score,
		Ticks:  m.game.Ticks(),
		Seed:   m.game.Seed(),
	})
	if err != nil && m.logger != nil {
		m.logger.Warn("could not record round", "player", m.player, "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".collector", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return renderRows(m.screen, m.screen.Height()-1) + "\n" + m.help.View(m.keys)
}

// Game returns the game driven by this model.
func (m Model) Game() *collector.Game {
	return m.game
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(game *collector.Game, store *storage.Store, cfg core.RuntimeConfig, player string) error {
	model := NewModel(game, store, cfg, player)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
