package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"

	"github.com/vovakirdan/grid-arcade/internal/storage"
)

func TestApplyEnv(t *testing.T) {
	newFlags := func() *pflag.FlagSet {
		fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
		fs.Int("fps", 30, "")
		fs.String("db", "default.db", "")
		return fs
	}

	t.Run("env fills defaults", func(t *testing.T) {
		t.Setenv("ARCADE_FPS", "45")
		t.Setenv("ARCADE_DB", "/tmp/env.db")
		fs := newFlags()
		if err := applyEnv(fs); err != nil {
			t.Fatalf("applyEnv() error = %v", err)
		}
		if got, _ := fs.GetInt("fps"); got != 45 {
			t.Errorf("fps = %d, want 45", got)
		}
		if got, _ := fs.GetString("db"); got != "/tmp/env.db" {
			t.Errorf("db = %q", got)
		}
	})

	t.Run("explicit flag wins", func(t *testing.T) {
		t.Setenv("ARCADE_FPS", "45")
		fs := newFlags()
		if err := fs.Parse([]string{"--fps", "10"}); err != nil {
			t.Fatal(err)
		}
		if err := applyEnv(fs); err != nil {
			t.Fatalf("applyEnv() error = %v", err)
		}
		if got, _ := fs.GetInt("fps"); got != 10 {
			t.Errorf("fps = %d, want 10", got)
		}
	})

	t.Run("bad value", func(t *testing.T) {
		t.Setenv("ARCADE_FPS", "fast")
		if err := applyEnv(newFlags()); err == nil {
			t.Error("applyEnv() accepted a non-numeric ARCADE_FPS")
		}
	})
}

func TestFamily(t *testing.T) {
	tests := map[string]string{
		"minesweeper":        "minesweeper",
		"minesweeper_expert": "minesweeper",
		"gemgem_easy":        "gemgem",
	}
	for id, want := range tests {
		if got := family(id); got != want {
			t.Errorf("family(%q) = %q, want %q", id, got, want)
		}
	}
}

func TestConfigureGamesRejectsUnknownDifficulty(t *testing.T) {
	t.Cleanup(func() { _ = configureGames("", "", "") })

	if err := configureGames("gemgem", "", "insane"); err == nil {
		t.Error("configureGames() accepted an unknown difficulty")
	}
	if err := configureGames("gemgem", "", "hard"); err != nil {
		t.Errorf("configureGames() error = %v", err)
	}
}

func TestConfigureGamesChecksConfigFile(t *testing.T) {
	t.Cleanup(func() { _ = configureGames("", "", "") })

	dir := t.TempDir()
	write := func(name, body string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
			t.Fatal(err)
		}
		return path
	}
	tiny := write("tiny.yaml", "board:\n  size: 2\n")
	broken := write("broken.yaml", "board: [\n")
	good := write("gems.yaml", "board:\n  size: 6\n")

	tests := []struct {
		name    string
		gameID  string
		path    string
		wantErr bool
	}{
		{"missing file", "gemgem", filepath.Join(dir, "typo.yaml"), true},
		{"missing file for every game", "", filepath.Join(dir, "typo.yaml"), true},
		{"invalid board", "gemgem", tiny, true},
		{"invalid board for a variant", "gemgem_hard", tiny, true},
		{"unparsable", "minesweeper", broken, true},
		{"valid", "gemgem", good, false},
		{"suits one family", "", tiny, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := configureGames(tt.gameID, tt.path, "")
			if (err != nil) != tt.wantErr {
				t.Errorf("configureGames(%q, %q) error = %v, wantErr %v", tt.gameID, tt.path, err, tt.wantErr)
			}
		})
	}
}

func TestListScores(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })

	for i := range 12 {
		outcome := "lost"
		if i%2 == 0 {
			outcome = "won"
		}
		if _, err := store.SaveResult(storage.Result{GameID: "gemgem", Score: i * 10, Outcome: outcome, Duration: 100 - i}); err != nil {
			t.Fatal(err)
		}
	}

	tests := []struct {
		name    string
		limit   int
		fastest bool
		want    int
	}{
		{"top", 5, false, 5},
		{"every result", 0, false, 12},
		{"fastest", 3, true, 3},
		{"every win", 0, true, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := listScores(store, "gemgem", tt.limit, tt.fastest)
			if err != nil {
				t.Fatalf("listScores() error = %v", err)
			}
			if len(got) != tt.want {
				t.Errorf("listScores() returned %d entries, want %d", len(got), tt.want)
			}
		})
	}

	stats, err := store.GetGameStats("gemgem")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := statsLine(stats), "Played 12, won 6, best 110, best time 1:30"; got != want {
		t.Errorf("statsLine() = %q, want %q", got, want)
	}
}
