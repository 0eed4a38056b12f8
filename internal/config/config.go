// Package config provides YAML-based game configuration loading and
// difficulty presets for the arcade platform.
package config

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/grid-arcade/internal/core"
)

// MinesweeperConfig contains all configuration for Minesweeper.
type MinesweeperConfig struct {
	Level   string                      `yaml:"level"` // name of the level used by default
	Levels  map[string]MinesweeperLevel `yaml:"levels"`
	Scoring MinesweeperScoring          `yaml:"scoring"`
	Display MinesweeperDisplay          `yaml:"display"`
}

// MinesweeperLevel is one board layout.
type MinesweeperLevel struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Mines  int `yaml:"mines"`
}

// MinesweeperScoring defines how a finished board is scored.
type MinesweeperScoring struct {
	CellPoints int `yaml:"cell_points"` // points per revealed safe cell
	WinBonus   int `yaml:"win_bonus"`   // bonus on a win, minus elapsed seconds
}

// MinesweeperDisplay holds presentation timings, in ticks.
type MinesweeperDisplay struct {
	HighlightTicks int `yaml:"highlight_ticks"` // how long a failed chord stays highlighted
}

// Board returns the configured layout for the given level name, or the
// default level when name is empty.
func (c MinesweeperConfig) Board(name string) (MinesweeperLevel, error) {
	if name == "" {
		name = c.Level
	}
	lvl, ok := c.Levels[name]
	if !ok {
		return MinesweeperLevel{}, fmt.Errorf("config: unknown minesweeper level %q: %w", name, core.ErrInvalidConfig)
	}
	return lvl, nil
}

// Validate checks that every level can produce a board.
func (c MinesweeperConfig) Validate() error {
	if len(c.Levels) == 0 {
		return fmt.Errorf("config: minesweeper has no levels: %w", core.ErrInvalidConfig)
	}
	for name, lvl := range c.Levels {
		if lvl.Width <= 0 || lvl.Height <= 0 || lvl.Mines < 0 || lvl.Mines >= lvl.Width*lvl.Height {
			return fmt.Errorf("config: minesweeper level %q is %dx%d with %d mines: %w",
				name, lvl.Width, lvl.Height, lvl.Mines, core.ErrInvalidConfig)
		}
	}
	if _, err := c.Board(""); err != nil {
		return err
	}
	return nil
}

// GemGemConfig contains all configuration for the gem swap game.
type GemGemConfig struct {
	Board   GemBoard   `yaml:"board"`
	Scoring GemScoring `yaml:"scoring"`
	Round   GemRound   `yaml:"round"`
}

// GemBoard defines the grid and its animation.
type GemBoard struct {
	Size     int `yaml:"size"`      // cells per side
	GemTypes int `yaml:"gem_types"` // distinct gem kinds
	CellSize int `yaml:"cell_size"` // animation units per cell
	Speed    int `yaml:"speed"`     // animation units moved per tick
}

// GemScoring defines points awarded.
type GemScoring struct {
	Reward int `yaml:"reward"` // points per removed run
}

// GemRound defines the round timer.
type GemRound struct {
	TimeLimit int `yaml:"time_limit"` // seconds
}

// Validate checks that the board can be generated and animated.
func (c GemGemConfig) Validate() error {
	b := c.Board
	switch {
	case b.Size < 3:
		return fmt.Errorf("config: gemgem board size %d is below 3: %w", b.Size, core.ErrInvalidConfig)
	case b.GemTypes < 4:
		return fmt.Errorf("config: gemgem needs at least 4 gem types, got %d: %w", b.GemTypes, core.ErrInvalidConfig)
	case b.CellSize <= 0 || b.Speed <= 0:
		return fmt.Errorf("config: gemgem cell_size and speed must be positive: %w", core.ErrInvalidConfig)
	case c.Round.TimeLimit <= 0:
		return fmt.Errorf("config: gemgem time_limit must be positive: %w", core.ErrInvalidConfig)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Minesweeper level names.
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelExpert       = "expert"
)

// ParsePreset accepts a preset name or one of the minesweeper level names
// and returns the matching preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(DifficultyNormal), LevelIntermediate:
		return DifficultyNormal, nil
	case string(DifficultyEasy), LevelBeginner:
		return DifficultyEasy, nil
	case string(DifficultyHard), LevelExpert:
		return DifficultyHard, nil
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
}

// MinesweeperLevelFor maps a preset to a minesweeper level name.
func MinesweeperLevelFor(preset DifficultyPreset) string {
	switch preset {
	case DifficultyEasy:
		return LevelBeginner
	case DifficultyHard:
		return LevelExpert
	default:
		return LevelIntermediate
	}
}

// ApplyMinesweeperPreset selects the level matching the preset.
func ApplyMinesweeperPreset(cfg *MinesweeperConfig, preset DifficultyPreset) {
	name := MinesweeperLevelFor(preset)
	if _, ok := cfg.Levels[name]; ok {
		cfg.Level = name
	}
}

// ApplyGemGemPreset adjusts gem variety and round length.
func ApplyGemGemPreset(cfg *GemGemConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Board.GemTypes = 5
		cfg.Round.TimeLimit = 420
	case DifficultyHard:
		cfg.Board.GemTypes = 7
		cfg.Round.TimeLimit = 180
	}
}
