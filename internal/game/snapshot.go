package game

import "github.com/dus-study/game-2048-model/internal/model"

// State describes what phase a session is in.
type State string

const (
	StatePlaying  State = "playing"
	StateWon      State = "won"
	StateGameOver State = "game_over"
)

// Snapshot captures a session for rendering, persistence and determinism
// tests.
type Snapshot struct {
	Rows     [][]model.Rank
	Score    int
	MaxValue int
	State    State
}

// Snapshot returns the current session snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.over:
		state = StateGameOver
	case g.won:
		state = StateWon
	}

	return Snapshot{
		Rows:     g.board.Rows(),
		Score:    g.score,
		MaxValue: TileValue(g.board.MaxRank()),
		State:    state,
	}
}
