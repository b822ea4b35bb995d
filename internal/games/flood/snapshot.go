package flood

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateBoardDone   GameStateType = "board_done"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick         uint64
	Mode         string
	Level        int
	Score        int
	Moves        int
	Width        int
	Height       int
	Colors       int
	CurrentColor Color
	RegionSize   int
	Cursor       int
	State        GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.paused:
		state = StatePaused
	case g.board.Finished:
		state = StateBoardDone
	}

	return Snapshot{
		Tick:         g.tick,
		Mode:         string(g.mode),
		Level:        g.level,
		Score:        g.board.Score,
		Moves:        g.board.Moves,
		Width:        g.board.Width,
		Height:       g.board.Height,
		Colors:       g.board.Colors,
		CurrentColor: g.board.CurrentColor,
		RegionSize:   len(g.board.Region),
		Cursor:       g.cursor,
		State:        state,
	}
}
