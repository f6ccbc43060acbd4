// Package collector implements The Collector: steer a ship around a square
// field, pick up crates, and dodge the asteroids that every pickup adds.
//
// Game owns a single State. The platform drives it from two entry points that
// share one collision check: Step on every tick and Move on every arrow key.
package collector

import (
	"github.com/vovakirdan/the-collector/internal/assets"
	"github.com/vovakirdan/the-collector/internal/config"
	"github.com/vovakirdan/the-collector/internal/core"
)

// ScoreKeeper loads and stores the best score across rounds.
type ScoreKeeper interface {
	Load() int
	Save(score int) error
}

// Phase is the round lifecycle.
type Phase int

const (
	PhaseTitle    Phase = iota // Waiting for the start key
	PhaseRunning               // Ticking
	PhaseGameOver              // Terminal; no more ticks
)

func (p Phase) String() string {
	switch p {
	case PhaseTitle:
		return "title"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Game implements The Collector game logic.
type Game struct {
	cfg     config.CollectorConfig
	rules   Rules
	runtime core.RuntimeConfig
	sprites assets.Set
	keeper  ScoreKeeper

	state   State
	phase   Phase
	saveErr error // Last failure persisting the high score
}

// New creates a game. keeper may be nil, in which case high scores only live
// for the lifetime of the Game.
func New(cfg config.CollectorConfig, sprites assets.Set, keeper ScoreKeeper) *Game {
	return &Game{
		cfg:     cfg,
		rules:   RulesFrom(cfg),
		sprites: sprites,
		keeper:  keeper,
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "collector"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "The Collector"
}

// Reset returns to the title screen and reloads the stored high score.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.phase = PhaseTitle
	g.saveErr = nil

	high := g.state.HighScore
	if g.keeper != nil {
		high = max(high, g.keeper.Load())
	}

	g.state = State{
		Arena:     NewArena(runtime.Seed, &g.cfg),
		HighScore: high,
	}
}

// Start begins the round: score 0, ship at its start position facing up, a
// fresh crate and exactly one asteroid. Only valid from the title screen.
func (g *Game) Start() bool {
	if g.phase != PhaseTitle {
		return false
	}

	g.state.Arena.Reset(g.runtime.Seed)
	g.state.Score = 0
	g.state.Terminal = false
	g.state.Ticks = 0

	g.state.Arena.RespawnCollectible()
	g.state.Arena.SpawnObstacle()

	g.phase = PhaseRunning
	return true
}

// Move handles one arrow key: turn the ship, move it one step and check
// collisions straight away, independently of the tick cadence.
func (g *Game) Move(d Direction) Outcome {
	if g.phase != PhaseRunning || g.state.Terminal {
		return Outcome{}
	}

	p := &g.state.Arena.Player
	p.Facing = d
	p.Pos = p.Pos.Add(d.Unit().Scale(g.cfg.Player.Step))

	return EvaluateCollisions(&g.state, g.rules)
}

// Step advances the round by one tick. A round that a key press already ended
// does not advance; it goes straight to game over.
func (g *Game) Step() core.StepResult {
	if g.phase != PhaseRunning {
		return core.StepResult{State: g.State()}
	}

	if !g.state.Terminal {
		g.state.Ticks++
		g.state.Arena.AdvanceObstacles()
		EvaluateCollisions(&g.state, g.rules)
	}

	if g.state.Terminal {
		g.finishRound()
	}

	return core.StepResult{State: g.State()}
}

// finishRound enters game over and persists the score if it beats the best.
func (g *Game) finishRound() {
	g.phase = PhaseGameOver

	if g.state.Score <= g.state.HighScore {
		return
	}
	g.state.HighScore = g.state.Score
	if g.keeper != nil {
		g.saveErr = g.keeper.Save(g.state.Score)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.state.Score,
		HighScore: g.state.HighScore,
		Running:   g.phase == PhaseRunning,
		GameOver:  g.phase == PhaseGameOver,
	}
}

// Phase returns the current lifecycle phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Ticks returns the number of ticks simulated in this round.
func (g *Game) Ticks() int {
	return g.state.Ticks
}

// Seed returns the RNG seed of the current round.
func (g *Game) Seed() int64 {
	return g.runtime.Seed
}

// SaveErr returns the error from the last high-score write, if any.
func (g *Game) SaveErr() error {
	return g.saveErr
}
