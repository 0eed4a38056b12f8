package minesweeper

// Snapshot captures the game state for determinism tests and replays.
type Snapshot struct {
	Tick     uint64
	Level    string
	Status   string
	CursorX  int
	CursorY  int
	Revealed int
	Flagged  int
	Score    int
	Elapsed  int
	Mines    []int // row-major indices of mined cells
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:     g.tick,
		Level:    g.level,
		Status:   g.board.Status().String(),
		CursorX:  g.cursor.X,
		CursorY:  g.cursor.Y,
		Revealed: g.board.RevealedCount(),
		Flagged:  g.board.FlaggedCount(),
		Score:    g.score,
		Elapsed:  g.Elapsed(),
	}
	for i, c := range g.board.Cells() {
		if c.Mine {
			s.Mines = append(s.Mines, i)
		}
	}
	return s
}
