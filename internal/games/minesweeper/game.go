// Package minesweeper wraps the mines board as an arcade game: a cursor
// driven by semantic actions, a first-move timer, chord highlighting and
// scoring.
package minesweeper

import (
	"math/rand"

	"github.com/vovakirdan/grid-arcade/internal/config"
	"github.com/vovakirdan/grid-arcade/internal/core"
	"github.com/vovakirdan/grid-arcade/internal/games/minesweeper/mines"
	"github.com/vovakirdan/grid-arcade/internal/registry"
)

// GameID is the registry id of the configurable game.
const GameID = "minesweeper"

// maxDisplaySeconds is where the three-digit timer stops.
const maxDisplaySeconds = 999

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets a custom config file path for the game.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset selects the level used by the configurable game.
// An unknown name clears the preset.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil || preset == "" {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New("")
	})
	for _, level := range []string{config.LevelBeginner, config.LevelIntermediate, config.LevelExpert} {
		registry.RegisterVariant(GameID+"_"+level, GameID, func() registry.Game {
			return New(level)
		})
	}
}

// Game implements Minesweeper.
type Game struct {
	level string // fixed level name; empty follows config and preset

	cfg   config.MinesweeperConfig
	board *mines.Board
	rng   *rand.Rand

	cursor   core.Point
	tick     uint64
	tickRate int
	playTick int // ticks spent in progress

	highlight      []core.Point
	highlightTicks int
	exposed        bool
	paused         bool
	score          int

	runtime core.RuntimeConfig
}

// New creates a game. level names a fixed level (beginner, intermediate,
// expert); an empty level uses the configured default and any preset.
func New(level string) *Game {
	return &Game{level: level}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.level == "" {
		return GameID
	}
	return GameID + "_" + g.level
}

// Title returns the display name.
func (g *Game) Title() string {
	switch g.level {
	case config.LevelBeginner:
		return "Minesweeper (Beginner)"
	case config.LevelIntermediate:
		return "Minesweeper (Intermediate)"
	case config.LevelExpert:
		return "Minesweeper (Expert)"
	}
	return "Minesweeper"
}

// Reset loads configuration and deals a new board.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg, err := config.LoadMinesweeper(configPath)
	if err != nil {
		cfg = config.DefaultMinesweeperConfig()
	}
	if g.level == "" && difficultyPreset != "" {
		config.ApplyMinesweeperPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg
	g.runtime = rc
	g.tickRate = rc.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.deal()
}

// deal starts a fresh board with the current configuration.
func (g *Game) deal() {
	lvl, err := g.cfg.Board(g.level)
	if err != nil {
		lvl, _ = config.DefaultMinesweeperConfig().Board(config.LevelIntermediate)
	}
	board, err := mines.New(mines.Config{Width: lvl.Width, Height: lvl.Height, Mines: lvl.Mines}, g.rng)
	if err != nil {
		board, _ = mines.New(mines.Config{Width: 16, Height: 16, Mines: 40}, g.rng)
	}

	g.board = board
	g.cursor = core.Pt(board.Width()/2, board.Height()/2)
	g.tick = 0
	g.playTick = 0
	g.highlight = nil
	g.highlightTicks = 0
	g.exposed = false
	g.paused = false
	g.score = 0
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if in.Has(core.ActionRestart) {
		g.rng = rand.New(rand.NewSource(g.rng.Int63()))
		g.deal()
		return core.StepResult{State: g.State()}
	}

	status := g.board.Status()
	if in.Has(core.ActionPause) && !status.Finished() {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.moveCursor(in.Movement())

	if !status.Finished() {
		g.applyMoves(in)
	}
	if g.board.Status() == mines.InProgress {
		g.playTick++
	}
	if g.highlightTicks > 0 {
		g.highlightTicks--
		if g.highlightTicks == 0 {
			g.highlight = nil
		}
	}

	g.score = g.computeScore()
	return core.StepResult{State: g.State()}
}

func (g *Game) moveCursor(d core.Point) {
	if d == (core.Point{}) {
		return
	}
	g.cursor = core.Pt(
		core.Clamp(g.cursor.X+d.X, 0, g.board.Width()-1),
		core.Clamp(g.cursor.Y+d.Y, 0, g.board.Height()-1),
	)
}

// applyMoves runs the board operations requested this tick. Rejected moves
// are ignored; the board is unchanged by them.
func (g *Game) applyMoves(in core.InputFrame) {
	cell, _ := g.board.Cell(g.cursor)

	switch {
	case in.Has(core.ActionChord), in.Has(core.ActionConfirm) && cell.State == mines.Revealed:
		res, err := g.board.Chord(g.cursor)
		if err == nil && len(res.Highlight) > 0 {
			g.highlight = res.Highlight
			g.highlightTicks = max(g.cfg.Display.HighlightTicks, 1)
		}
	case in.Has(core.ActionConfirm):
		//nolint:errcheck // flagged and out-of-range reveals are no-ops
		g.board.Reveal(g.cursor)
	case in.Has(core.ActionFlag):
		//nolint:errcheck // revealed cells ignore flags
		g.board.ToggleFlag(g.cursor)
	}

	if g.board.Status() == mines.Lost && !g.exposed {
		g.board.ExposeMines()
		g.exposed = true
	}
}

// Elapsed returns whole seconds since the first move, capped for display.
func (g *Game) Elapsed() int {
	return min(g.playTick/g.tickRate, maxDisplaySeconds)
}

func (g *Game) computeScore() int {
	score := g.board.RevealedCount() * g.cfg.Scoring.CellPoints
	if g.board.Status() == mines.Won {
		score += max(g.cfg.Scoring.WinBonus-g.Elapsed(), 0)
	}
	return score
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Score:   g.score,
		Paused:  g.paused,
		Elapsed: g.Elapsed(),
	}
	switch g.board.Status() {
	case mines.Won:
		st.GameOver = true
		st.Outcome = core.OutcomeWon
	case mines.Lost:
		st.GameOver = true
		st.Outcome = core.OutcomeLost
	}
	return st
}

// Board exposes the underlying board for inspection.
func (g *Game) Board() *mines.Board {
	return g.board
}
