package gemgem

import "github.com/vovakirdan/grid-arcade/internal/games/gemgem/match3"

// Snapshot captures the game state for determinism tests and replays.
type Snapshot struct {
	Tick        uint64
	Score       int
	SecondsLeft int
	CursorX     int
	CursorY     int
	Selected    bool
	Settled     bool
	Reshuffles  int
	Types       [][]match3.GemType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:        g.tick,
		Score:       g.score,
		SecondsLeft: g.SecondsLeft(),
		CursorX:     g.cursor.X,
		CursorY:     g.cursor.Y,
		Selected:    g.selected != nil,
		Settled:     g.board.IsSettled(),
		Reshuffles:  g.reshuffles,
		Types:       g.board.Types(),
	}
}
