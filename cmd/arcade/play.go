package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/grid-arcade/internal/platform/tui"
	"github.com/vovakirdan/grid-arcade/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Arrows/hjkl/wasd - Move the cursor
  Space/Enter      - Open a cell / pick a gem
  F                - Cycle flag and question mark (Minesweeper)
  C                - Chord: open around a satisfied number (Minesweeper)
  P                - Pause
  R                - New board
  Esc/B            - Leave the game
  Q/Ctrl+C         - Quit
  Ctrl+S           - Save a text screenshot to ~/.arcade/screenshots

Difficulty options:
  easy   - Minesweeper beginner board, Gemgem with 5 gem kinds and 7 minutes
  normal - Minesweeper intermediate board, Gemgem as configured
  hard   - Minesweeper expert board, Gemgem with 3 minutes on the clock
  The Minesweeper level names beginner, intermediate and expert work too.

Playing a game that has variants without --difficulty opens a level picker.

Examples:
  arcade play minesweeper
  arcade play minesweeper_expert
  arcade play gemgem --difficulty easy
  arcade play gemgem --config ./my-gemgem.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard (or beginner, intermediate, expert)")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}
	if err := configureGames(gameID, flagConfig, flagDifficulty); err != nil {
		return err
	}

	cfg := runtimeConfig()

	if flagDifficulty == "" && len(registry.Variants(gameID)) > 0 {
		picked, _, err := tui.RunLevelSelector(gameID, cfg)
		if err != nil {
			return err
		}
		if picked == "" {
			return nil
		}
		gameID = picked
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if _, err := tui.Run(game, store, cfg); err != nil {
		return fmt.Errorf("running %s: %w", gameID, err)
	}
	return nil
}
