// Package gemgem wraps the match3 board as a timed gem swap game.
package gemgem

import (
	"math/rand"
	"strconv"

	"github.com/vovakirdan/grid-arcade/internal/config"
	"github.com/vovakirdan/grid-arcade/internal/core"
	"github.com/vovakirdan/grid-arcade/internal/games/gemgem/match3"
	"github.com/vovakirdan/grid-arcade/internal/registry"
)

// GameID is the registry id of the game.
const GameID = "gemgem"

// floaterTicks is how long a "+N" indicator stays on screen.
const floaterTicks = 20

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets a custom config file path for the game.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset selects easy, normal or hard. An unknown name clears
// the preset.
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
		return New()
	})
	for _, preset := range []config.DifficultyPreset{config.DifficultyEasy, config.DifficultyHard} {
		registry.RegisterVariant(GameID+"_"+string(preset), GameID, func() registry.Game {
			return NewWithPreset(preset)
		})
	}
}

type phase int

const (
	phaseIdle      phase = iota // waiting for the player
	phaseResolving              // removing runs until none are left
)

// floater is a score indicator rising from a resolved run.
type floater struct {
	cell  core.Point
	text  string
	ticks int
}

// Game implements the gem swap game.
type Game struct {
	preset config.DifficultyPreset // fixed preset; empty follows SetDifficultyPreset

	cfg   config.GemGemConfig
	board *match3.Board
	rng   *rand.Rand

	cursor   core.Point
	selected *core.Point
	phase    phase
	floaters []floater

	tick       uint64
	tickRate   int
	ticksLeft  int
	score      int
	reshuffles int
	gameOver   bool
	paused     bool
}

// New creates a gem swap game.
func New() *Game {
	return &Game{}
}

// NewWithPreset creates a game pinned to a difficulty preset.
func NewWithPreset(preset config.DifficultyPreset) *Game {
	return &Game{preset: preset}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.preset == "" {
		return GameID
	}
	return GameID + "_" + string(g.preset)
}

// Title returns the display name.
func (g *Game) Title() string {
	switch g.preset {
	case config.DifficultyEasy:
		return "Gemgem (Easy)"
	case config.DifficultyHard:
		return "Gemgem (Hard)"
	}
	return "Gemgem"
}

// Reset loads configuration and deals a new board.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg, err := config.LoadGemGem(configPath)
	if err != nil {
		cfg = config.DefaultGemGemConfig()
	}
	preset := g.preset
	if preset == "" {
		preset = difficultyPreset
	}
	if preset != "" {
		config.ApplyGemGemPreset(&cfg, preset)
	}
	g.cfg = cfg
	g.tickRate = rc.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.deal()
}

func (g *Game) boardConfig() match3.Config {
	return match3.Config{
		Size:     g.cfg.Board.Size,
		GemTypes: g.cfg.Board.GemTypes,
		CellSize: g.cfg.Board.CellSize,
		Speed:    g.cfg.Board.Speed,
		Reward:   g.cfg.Scoring.Reward,
	}
}

// deal starts a new round.
func (g *Game) deal() {
	board, err := match3.New(g.boardConfig(), g.rng)
	if err != nil {
		g.cfg = config.DefaultGemGemConfig()
		board, _ = match3.New(g.boardConfig(), g.rng)
	}
	g.board = board
	g.cursor = core.Pt(board.Size()/2, board.Size()/2)
	g.selected = nil
	g.phase = phaseIdle
	g.floaters = nil
	g.tick = 0
	g.ticksLeft = g.cfg.Round.TimeLimit * g.tickRate
	g.score = 0
	g.reshuffles = 0
	g.gameOver = false
	g.paused = false
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if in.Has(core.ActionRestart) {
		g.rng = rand.New(rand.NewSource(g.rng.Int63()))
		g.deal()
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}
	if g.paused || g.gameOver {
		return core.StepResult{State: g.State()}
	}

	g.ticksLeft--
	if g.ticksLeft <= 0 {
		g.ticksLeft = 0
		g.gameOver = true
		g.selected = nil
		return core.StepResult{State: g.State()}
	}

	g.moveCursor(in.Movement())
	g.ageFloaters()

	if !g.board.Step() {
		return core.StepResult{State: g.State()}
	}

	switch g.phase {
	case phaseResolving:
		g.resolve()
	case phaseIdle:
		if in.Has(core.ActionConfirm) {
			g.pick()
		}
	}
	return core.StepResult{State: g.State()}
}

func (g *Game) moveCursor(d core.Point) {
	if d == (core.Point{}) {
		return
	}
	last := g.board.Size() - 1
	g.cursor = core.Pt(core.Clamp(g.cursor.X+d.X, 0, last), core.Clamp(g.cursor.Y+d.Y, 0, last))
}

// pick handles a selection at the cursor: the first pick selects a gem, a
// pick on an adjacent gem swaps the two, any other pick clears the
// selection.
func (g *Game) pick() {
	if g.selected == nil {
		c := g.cursor
		g.selected = &c
		return
	}

	from := *g.selected
	g.selected = nil
	if !from.Adjacent(g.cursor) {
		return
	}

	out, err := g.board.TrySwap(from, g.cursor)
	if err == nil && out.Matched {
		g.phase = phaseResolving
	}
}

// resolve removes one run per settled tick so each cascade step is seen
// falling into place. Once nothing is left to remove, a stuck board is
// reshuffled.
func (g *Game) resolve() {
	res := g.board.ResolveMatches()
	if res.Removed > 0 {
		g.score += res.Reward
		cells := res.Match.Cells()
		g.floaters = append(g.floaters, floater{
			cell:  cells[len(cells)/2],
			text:  "+" + strconv.Itoa(res.Reward),
			ticks: floaterTicks,
		})
		return
	}

	g.phase = phaseIdle
	if !g.board.HasLegalMove() {
		g.board.Regenerate()
		g.reshuffles++
	}
}

func (g *Game) ageFloaters() {
	kept := g.floaters[:0]
	for _, f := range g.floaters {
		f.ticks--
		if f.ticks > 0 {
			kept = append(kept, f)
		}
	}
	g.floaters = kept
}

// SecondsLeft returns the whole seconds remaining in the round, rounded up.
func (g *Game) SecondsLeft() int {
	return (g.ticksLeft + g.tickRate - 1) / g.tickRate
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Score:   g.score,
		Paused:  g.paused,
		Elapsed: g.cfg.Round.TimeLimit - g.SecondsLeft(),
	}
	if g.gameOver {
		st.GameOver = true
		st.Outcome = core.OutcomeTimeout
	}
	return st
}

// Board exposes the underlying board for inspection.
func (g *Game) Board() *match3.Board {
	return g.board
}
