package config

import (
	_ "embed"
)

//go:embed defaults/minesweeper.yaml
var defaultMinesweeperYAML []byte

//go:embed defaults/gemgem.yaml
var defaultGemGemYAML []byte

// DefaultMinesweeperConfig returns the built-in Minesweeper configuration.
func DefaultMinesweeperConfig() MinesweeperConfig {
	return MinesweeperConfig{
		Level: LevelIntermediate,
		Levels: map[string]MinesweeperLevel{
			LevelBeginner:     {Width: 9, Height: 9, Mines: 10},
			LevelIntermediate: {Width: 16, Height: 16, Mines: 40},
			LevelExpert:       {Width: 30, Height: 16, Mines: 99},
		},
		Scoring: MinesweeperScoring{
			CellPoints: 1,
			WinBonus:   999,
		},
		Display: MinesweeperDisplay{
			HighlightTicks: 8,
		},
	}
}

// DefaultGemGemConfig returns the built-in gem swap configuration.
func DefaultGemGemConfig() GemGemConfig {
	return GemGemConfig{
		Board: GemBoard{
			Size:     8,
			GemTypes: 7,
			CellSize: 64,
			Speed:    16,
		},
		Scoring: GemScoring{
			Reward: 10,
		},
		Round: GemRound{
			TimeLimit: 300,
		},
	}
}
