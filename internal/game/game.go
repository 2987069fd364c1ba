// Package game wraps the rules engine in a playable session: it applies
// slides, spawns a tile after every move that changed the board, and tracks
// score, win and game-over state. The engine in internal/model stays pure;
// everything stateful about "a game being played" lives here.
package game

import (
	"math/rand"

	"github.com/dus-study/game-2048-model/internal/config"
	"github.com/dus-study/game-2048-model/internal/model"
)

// TileValue maps a rank to its displayed face value: rank 1 -> 2,
// rank 2 -> 4, and so on. Rank 0 (empty) maps to 0.
func TileValue(r model.Rank) int {
	if r == 0 {
		return 0
	}
	return 1 << r
}

// Game is one 2048 session.
type Game struct {
	cfg   config.Config
	board *model.Board
	rng   *rand.Rand
	score int
	over  bool
	won   bool
}

// New creates a game with the given configuration and seed, spawning the
// configured number of initial tiles. The same configuration and seed always
// produce the same game.
func New(cfg config.Config, seed int64) *Game {
	g := &Game{
		cfg:   cfg,
		board: model.New(cfg.BoardSize),
		rng:   rand.New(rand.NewSource(seed)),
	}
	for i := 0; i < cfg.InitialTiles; i++ {
		//nolint:errcheck // A validated config never asks for more initial tiles than cells
		g.board.Spawn(g.rng, cfg.Spawn)
	}
	return g
}

// Resume recreates a session from a previously saved board and score.
func Resume(cfg config.Config, seed int64, board *model.Board, score int) *Game {
	g := &Game{
		cfg:   cfg,
		board: board.Clone(),
		rng:   rand.New(rand.NewSource(seed)),
		score: score,
	}
	g.won = board.MaxRank() >= cfg.WinRank
	g.over = !board.CanMove()
	return g
}

// Move slides the board in the given direction and reports whether the board
// changed. Only a move that changed the board spawns a new tile, scores its
// merges and can end the game.
func (g *Game) Move(dir model.Direction) bool {
	if g.over {
		return false
	}

	merges, moved := g.board.SlideMerges(dir)
	if !moved {
		return false
	}

	for _, r := range merges {
		g.score += TileValue(r)
		if r >= g.cfg.WinRank {
			g.won = true
		}
	}

	//nolint:errcheck // A board that just changed always has an empty cell
	g.board.Spawn(g.rng, g.cfg.Spawn)

	if !g.board.CanMove() {
		g.over = true
	}
	return true
}

// Board returns a copy of the current board.
func (g *Game) Board() *model.Board {
	return g.board.Clone()
}

// Score returns the accumulated score.
func (g *Game) Score() int {
	return g.score
}

// Over reports whether no further move can change the board.
func (g *Game) Over() bool {
	return g.over
}

// Won reports whether a tile of the winning rank has been made.
func (g *Game) Won() bool {
	return g.won
}
