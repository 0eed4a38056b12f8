package minesweeper

import (
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/grid-arcade/internal/core"
	"github.com/vovakirdan/grid-arcade/internal/games/minesweeper/mines"
)

func newGame(t *testing.T, level string) *Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	g := New(level)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 10, Seed: 42})
	return g
}

// withBoard swaps in a fixed layout so tests know where the mines are.
func withBoard(t *testing.T, g *Game, w, h int, minePos ...core.Point) {
	t.Helper()
	b, err := mines.NewWithMines(w, h, minePos)
	if err != nil {
		t.Fatalf("NewWithMines() error = %v", err)
	}
	g.board = b
}

func press(g *Game, actions ...core.Action) core.StepResult {
	return g.Step(core.NewInputFrame(actions...))
}

func TestDeterminism(t *testing.T) {
	g1 := newGame(t, "")
	g2 := newGame(t, "")

	script := [][]core.Action{
		{core.ActionLeft}, {core.ActionLeft}, {core.ActionUp}, {core.ActionFlag},
		{core.ActionDown}, {core.ActionConfirm}, {}, {core.ActionRight}, {core.ActionConfirm},
	}
	for _, actions := range script {
		press(g1, actions...)
		press(g2, actions...)
	}

	if s1, s2 := g1.Snapshot(), g2.Snapshot(); !reflect.DeepEqual(s1, s2) {
		t.Errorf("snapshots differ:\n%+v\n%+v", s1, s2)
	}
}

func TestLevels(t *testing.T) {
	tests := []struct {
		level      string
		w, h, mine int
	}{
		{"", 16, 16, 40},
		{"beginner", 9, 9, 10},
		{"intermediate", 16, 16, 40},
		{"expert", 30, 16, 99},
	}

	for _, tc := range tests {
		t.Run(tc.level, func(t *testing.T) {
			g := newGame(t, tc.level)
			b := g.Board()
			if b.Width() != tc.w || b.Height() != tc.h || b.MineCount() != tc.mine {
				t.Errorf("board = %dx%d/%d, want %dx%d/%d",
					b.Width(), b.Height(), b.MineCount(), tc.w, tc.h, tc.mine)
			}
		})
	}
}

func TestPresetSelectsLevel(t *testing.T) {
	SetDifficultyPreset("easy")
	defer SetDifficultyPreset("")

	g := newGame(t, "")
	if g.Board().Width() != 9 {
		t.Errorf("easy preset board width = %d, want 9", g.Board().Width())
	}

	g = newGame(t, "expert")
	if g.Board().Width() != 30 {
		t.Error("fixed level should ignore the preset")
	}
}

func TestCursorClamps(t *testing.T) {
	g := newGame(t, "beginner")
	g.cursor = core.Pt(0, 0)

	press(g, core.ActionLeft)
	press(g, core.ActionUp)
	if g.cursor != core.Pt(0, 0) {
		t.Errorf("cursor = %v, want (0,0)", g.cursor)
	}
	for range 20 {
		press(g, core.ActionRight, core.ActionDown)
	}
	if g.cursor != core.Pt(8, 8) {
		t.Errorf("cursor = %v, want (8,8)", g.cursor)
	}
}

func TestTimerStartsOnFirstMove(t *testing.T) {
	g := newGame(t, "")
	withBoard(t, g, 9, 9, core.Pt(0, 0))

	for range 30 {
		press(g)
	}
	if g.Elapsed() != 0 {
		t.Fatalf("Elapsed() = %d before any move, want 0", g.Elapsed())
	}

	g.cursor = core.Pt(1, 1)
	press(g, core.ActionConfirm)
	if g.Board().Status() != mines.InProgress {
		t.Fatalf("Status() = %v, want in progress", g.Board().Status())
	}
	for range 10 {
		press(g)
	}
	if g.Elapsed() != 1 {
		t.Errorf("Elapsed() = %d, want 1", g.Elapsed())
	}

	press(g, core.ActionPause)
	for range 30 {
		press(g)
	}
	if g.Elapsed() != 1 || !g.State().Paused {
		t.Errorf("paused game kept counting: Elapsed() = %d", g.Elapsed())
	}
}

func TestWinScore(t *testing.T) {
	g := newGame(t, "")
	withBoard(t, g, 3, 3, core.Pt(0, 0))
	g.cursor = core.Pt(2, 2)

	res := press(g, core.ActionConfirm)

	if !res.State.GameOver || res.State.Outcome != core.OutcomeWon {
		t.Fatalf("State = %+v, want won", res.State)
	}
	if want := 8 + 999; res.State.Score != want {
		t.Errorf("Score = %d, want %d", res.State.Score, want)
	}
}

func TestLossExposesMisflags(t *testing.T) {
	g := newGame(t, "")
	withBoard(t, g, 3, 3, core.Pt(0, 0), core.Pt(2, 2))

	g.cursor = core.Pt(1, 0)
	press(g, core.ActionFlag)
	g.cursor = core.Pt(0, 0)
	res := press(g, core.ActionConfirm)

	if res.State.Outcome != core.OutcomeLost {
		t.Fatalf("Outcome = %q, want lost", res.State.Outcome)
	}
	c, _ := g.Board().Cell(core.Pt(1, 0))
	if !c.Misflagged {
		t.Error("wrong flag not marked after loss")
	}

	// finished boards ignore moves but still restart
	press(g, core.ActionConfirm)
	res = press(g, core.ActionRestart)
	if res.State.GameOver || g.Board().Status() != mines.NotStarted {
		t.Errorf("restart left state %+v", res.State)
	}
}

func TestChordHighlightExpires(t *testing.T) {
	g := newGame(t, "")
	withBoard(t, g, 3, 3, core.Pt(0, 0), core.Pt(2, 0))
	g.cursor = core.Pt(1, 1)

	press(g, core.ActionConfirm)
	press(g, core.ActionChord)
	if len(g.highlight) == 0 {
		t.Fatal("failed chord should highlight hidden neighbours")
	}

	for range g.cfg.Display.HighlightTicks {
		press(g)
	}
	if g.highlight != nil {
		t.Errorf("highlight still set after %d ticks", g.cfg.Display.HighlightTicks)
	}
}

func TestRender(t *testing.T) {
	g := newGame(t, "")
	s := core.NewScreen(80, 24)
	g.Render(s)

	out := s.String()
	for _, want := range []string{"Mines: 040", ":)", "Time: 000", "["} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q:\n%s", want, out)
		}
	}

	small := core.NewScreen(30, 10)
	g.Render(small)
	if !strings.Contains(small.String(), "too small") {
		t.Errorf("small screen render:\n%s", small.String())
	}
}
