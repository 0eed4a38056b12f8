package main

import (
	"errors"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/vovakirdan/grid-arcade/internal/config"
	"github.com/vovakirdan/grid-arcade/internal/core"
	"github.com/vovakirdan/grid-arcade/internal/games/gemgem"
	"github.com/vovakirdan/grid-arcade/internal/games/minesweeper"
	"github.com/vovakirdan/grid-arcade/internal/storage"
)

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the score database. Games still run without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

// configureGames hands --config and --difficulty to the game family that
// owns gameID. An empty gameID configures every family.
func configureGames(gameID, configPath, difficulty string) error {
	if difficulty != "" {
		if _, err := config.ParsePreset(difficulty); err != nil {
			return err
		}
	}
	if configPath != "" {
		if err := checkConfig(gameID, configPath); err != nil {
			return err
		}
	}
	if gameID == "" || family(gameID) == minesweeper.GameID {
		minesweeper.SetConfigPath(configPath)
		minesweeper.SetDifficultyPreset(difficulty)
	}
	if gameID == "" || family(gameID) == gemgem.GameID {
		gemgem.SetConfigPath(configPath)
		gemgem.SetDifficultyPreset(difficulty)
	}
	return nil
}

// checkConfig loads an explicit config file the way the games will, so a
// missing or invalid file fails the command instead of falling back to
// defaults. Without a gameID the file must suit at least one family.
func checkConfig(gameID, path string) error {
	switch family(gameID) {
	case minesweeper.GameID:
		_, err := config.LoadMinesweeper(path)
		return err
	case gemgem.GameID:
		_, err := config.LoadGemGem(path)
		return err
	}

	_, minesErr := config.LoadMinesweeper(path)
	_, gemsErr := config.LoadGemGem(path)
	switch {
	case minesErr != nil && gemsErr != nil:
		return errors.Join(minesErr, gemsErr)
	case minesErr != nil:
		logger.Warn("config does not suit minesweeper, using defaults", "path", path, "err", minesErr)
	case gemsErr != nil:
		logger.Warn("config does not suit gemgem, using defaults", "path", path, "err", gemsErr)
	}
	return nil
}

// family strips the variant suffix from a game ID.
func family(gameID string) string {
	base, _, _ := strings.Cut(gameID, "_")
	return base
}
