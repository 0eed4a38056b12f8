package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/grid-arcade/internal/core"
)

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestLoadMinesweeperEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadMinesweeper("")
	if err != nil {
		t.Fatalf("LoadMinesweeper() error = %v", err)
	}

	lvl, err := cfg.Board("")
	if err != nil {
		t.Fatalf("Board() error = %v", err)
	}
	if lvl != (MinesweeperLevel{Width: 16, Height: 16, Mines: 40}) {
		t.Errorf("default level = %+v, want 16x16/40", lvl)
	}
	if got := cfg.Levels[LevelExpert].Mines; got != 99 {
		t.Errorf("expert mines = %d, want 99", got)
	}
}

func TestLoadGemGemEmbeddedMatchesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadGemGem("")
	if err != nil {
		t.Fatalf("LoadGemGem() error = %v", err)
	}
	if cfg != DefaultGemGemConfig() {
		t.Errorf("embedded config = %+v, want %+v", cfg, DefaultGemGemConfig())
	}
}

func TestLoadCustomPathOverridesKeys(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "gem.yaml")
	writeFile(t, path, "round:\n  time_limit: 60\n")

	cfg, err := LoadGemGem(path)
	if err != nil {
		t.Fatalf("LoadGemGem() error = %v", err)
	}
	if cfg.Round.TimeLimit != 60 {
		t.Errorf("TimeLimit = %d, want 60", cfg.Round.TimeLimit)
	}
	if cfg.Board.Size != 8 {
		t.Errorf("Board.Size = %d, want default 8", cfg.Board.Size)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadMinesweeper(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	writeFile(t, bad, "levels:\n  intermediate:\n    width: 3\n    height: 3\n    mines: 9\n")
	_, err := LoadMinesweeper(bad)
	if !errors.Is(err, core.ErrInvalidConfig) {
		t.Errorf("LoadMinesweeper(bad) error = %v, want ErrInvalidConfig", err)
	}
}

func TestLoadUserConfigDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeFile(t, filepath.Join(home, ".arcade", "configs", "minesweeper.yaml"), "level: expert\n")

	cfg, err := LoadMinesweeper("")
	if err != nil {
		t.Fatalf("LoadMinesweeper() error = %v", err)
	}
	if cfg.Level != LevelExpert {
		t.Errorf("Level = %q, want expert", cfg.Level)
	}
}

func TestLoadUserConfigInvalidFallsBack(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeFile(t, filepath.Join(home, ".arcade", "configs", "gemgem.yaml"), "board:\n  gem_types: 2\n")

	cfg, err := LoadGemGem("")
	if err != nil {
		t.Fatalf("LoadGemGem() error = %v", err)
	}
	if cfg.Board.GemTypes != 7 {
		t.Errorf("GemTypes = %d, want embedded 7", cfg.Board.GemTypes)
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{"Beginner", DifficultyEasy, false},
		{"expert", DifficultyHard, false},
		{"hard", DifficultyHard, false},
		{"insane", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParsePreset(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParsePreset(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("ParsePreset(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestApplyPresets(t *testing.T) {
	ms := DefaultMinesweeperConfig()
	ApplyMinesweeperPreset(&ms, DifficultyEasy)
	if ms.Level != LevelBeginner {
		t.Errorf("Level = %q, want beginner", ms.Level)
	}

	gg := DefaultGemGemConfig()
	ApplyGemGemPreset(&gg, DifficultyHard)
	if gg.Round.TimeLimit != 180 || gg.Validate() != nil {
		t.Errorf("hard preset = %+v", gg)
	}
	ApplyGemGemPreset(&gg, DifficultyEasy)
	if gg.Board.GemTypes != 5 {
		t.Errorf("GemTypes = %d, want 5", gg.Board.GemTypes)
	}
}
