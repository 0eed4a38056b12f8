package tui

import (
	"fmt"
	"net"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/grid-arcade/internal/core"
	"github.com/vovakirdan/grid-arcade/internal/registry"
	"github.com/vovakirdan/grid-arcade/internal/storage"
)

// stubGame finishes after finishAfter steps with a fixed score.
type stubGame struct {
	id          string
	steps       int
	resets      int
	finishAfter int
	flagged     bool
}

func (g *stubGame) ID() string              { return g.id }
func (g *stubGame) Title() string           { return "Stub " + g.id }
func (g *stubGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "STUB") }

func (g *stubGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.steps = 0
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	g.flagged = g.flagged || in.Has(core.ActionFlag)
	return core.StepResult{State: g.State()}
}

func (g *stubGame) State() core.GameState {
	st := core.GameState{Score: 42, Elapsed: 7}
	if g.finishAfter > 0 && g.steps >= g.finishAfter {
		st.GameOver = true
		st.Outcome = core.OutcomeWon
	}
	return st
}

var lastStub *stubGame

func init() {
	registry.Register("stub", func() registry.Game {
		lastStub = &stubGame{id: "stub"}
		return lastStub
	})
	registry.RegisterVariant("stub_hard", "stub", func() registry.Game {
		lastStub = &stubGame{id: "stub_hard", finishAfter: 2}
		return lastStub
	})
}

func keyOf(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

func update(t *testing.T, m tea.Model, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	s, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return s
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSessionFlow(t *testing.T) {
	store := openStore(t)
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30}
	m := NewSessionModel(store, cfg, "alice")

	if !strings.Contains(m.View(), "Stub stub ...") {
		t.Fatalf("menu should list the stub game with a level marker:\n%s", m.View())
	}

	m = update(t, m, keyOf(tea.KeyEnter))
	if m.screen != screenLevels {
		t.Fatalf("screen = %v after picking a game with variants, want levels", m.screen)
	}
	if !strings.Contains(m.View(), "(configured)") {
		t.Errorf("level view should mark the configured entry:\n%s", m.View())
	}

	m = update(t, m, keyOf(tea.KeyDown))
	m = update(t, m, keyOf(tea.KeyEnter))
	if m.screen != screenGame {
		t.Fatalf("screen = %v after picking a level, want game", m.screen)
	}
	if lastStub.id != "stub_hard" || lastStub.resets != 1 {
		t.Fatalf("started %q with %d resets, want stub_hard reset once", lastStub.id, lastStub.resets)
	}

	stale := TickMsg{Gen: m.gen - 1}
	m = update(t, m, stale)
	if lastStub.steps != 0 {
		t.Errorf("stale tick stepped the game")
	}

	m = update(t, m, runeKey('f'))
	m = update(t, m, TickMsg{Gen: m.gen})
	m = update(t, m, TickMsg{Gen: m.gen})
	m = update(t, m, TickMsg{Gen: m.gen})
	if !lastStub.flagged {
		t.Error("flag key never reached the game")
	}
	if !strings.Contains(m.View(), "STUB") {
		t.Errorf("game view missing game output:\n%s", m.View())
	}

	entries, err := store.AllScores("stub_hard")
	if err != nil {
		t.Fatalf("AllScores() error = %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("stored %d results over two game-over ticks, want 1", len(entries))
	}
	if e := entries[0]; e.Score != 42 || e.Outcome != "won" || e.Duration != 7 || e.Player != "alice" {
		t.Errorf("stored %+v", e)
	}

	m = update(t, m, keyOf(tea.KeyEsc))
	if m.screen != screenMenu {
		t.Fatalf("screen = %v after back, want menu", m.screen)
	}

	m = update(t, m, keyOf(tea.KeyTab))
	if m.screen != screenScores {
		t.Fatalf("screen = %v after tab, want scores", m.screen)
	}
	m = update(t, m, keyOf(tea.KeyEsc))
	if m.screen != screenMenu {
		t.Fatalf("screen = %v after leaving scores, want menu", m.screen)
	}

	m = update(t, m, runeKey('q'))
	if !m.quitting || m.View() != "" {
		t.Error("q on the menu should end the session")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	g := &stubGame{id: "stub"}
	m := NewModel(g, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 10, Seed: 1})
	m.Init()

	next, _ := m.Update(TickMsg{Gen: 0})
	m = next.(Model)
	next, _ = m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	m = next.(Model)

	if g.resets != 1 {
		t.Errorf("resets = %d after resize, want 1", g.resets)
	}
	if m.screen.Width() != 60 || m.screen.Height() != 19 {
		t.Errorf("screen = %dx%d, want 60x19 with a help row", m.screen.Width(), m.screen.Height())
	}
}

func TestScoreRow(t *testing.T) {
	row := scoreRow(3, storage.ScoreEntry{Score: 120, Duration: 125, Player: "bob"})
	want := []string{"#3", "120", "-", "2:05", "bob"}
	for i, w := range want {
		if row[i] != w {
			t.Errorf("row[%d] = %q, want %q", i, row[i], w)
		}
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 100, 30)
	if !strings.Contains(m.View(), "Score database unavailable.") {
		t.Errorf("View() =\n%s", m.View())
	}
}

func TestSSHAdmit(t *testing.T) {
	s := &SSHServer{
		config:   SSHServerConfig{SessionsPerMinute: 2},
		limiters: make(map[string]*hostLimiter),
	}
	for i, want := range []bool{true, true, false} {
		if got := s.admit("10.0.0.1"); got != want {
			t.Errorf("admit #%d = %v, want %v", i+1, got, want)
		}
	}
	if !s.admit("10.0.0.2") {
		t.Error("another host should have its own budget")
	}

	s.config.SessionsPerMinute = 0
	if !s.admit("10.0.0.1") {
		t.Error("a zero limit should admit everything")
	}
}

func TestSSHLimiterSweep(t *testing.T) {
	s := &SSHServer{
		config:   SSHServerConfig{SessionsPerMinute: 2},
		limiters: make(map[string]*hostLimiter),
	}
	now := time.Now()
	for i := range maxLimiters - 1 {
		s.limiter(fmt.Sprintf("10.1.%d.%d", i/256, i%256), now.Add(-2*limiterIdle))
	}
	s.limiter("10.9.9.9", now.Add(-time.Second))

	if len(s.limiters) != maxLimiters {
		t.Fatalf("len(limiters) = %d, want %d", len(s.limiters), maxLimiters)
	}

	s.limiter("10.0.0.1", now)
	if len(s.limiters) != 2 {
		t.Errorf("len(limiters) after sweep = %d, want 2", len(s.limiters))
	}
	if _, ok := s.limiters["10.9.9.9"]; !ok {
		t.Error("a recently seen host was swept")
	}
}

func TestRemoteHost(t *testing.T) {
	addr := &net.TCPAddr{IP: net.ParseIP("192.0.2.7"), Port: 2222}
	if got := remoteHost(addr); got != "192.0.2.7" {
		t.Errorf("remoteHost() = %q", got)
	}
	if got := remoteHost(nil); got != "" {
		t.Errorf("remoteHost(nil) = %q", got)
	}
}
