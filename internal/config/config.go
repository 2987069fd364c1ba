// Package config provides YAML-based configuration for the 2048 game:
// board geometry, spawn policy and win condition.
package config

import (
	"fmt"

	"github.com/dus-study/game-2048-model/internal/model"
)

// Config contains all tunable game parameters.
type Config struct {
	// BoardSize is the board dimension (4 for the classic game).
	BoardSize int `yaml:"board_size"`

	// InitialTiles is how many tiles a fresh board starts with.
	InitialTiles int `yaml:"initial_tiles"`

	// WinRank is the tile rank that wins the game (11 = 2048).
	WinRank model.Rank `yaml:"win_rank"`

	// Spawn controls the rank of newly spawned tiles.
	Spawn model.SpawnPolicy `yaml:"spawn"`
}

// Default returns the classic game configuration.
func Default() Config {
	return Config{
		BoardSize:    model.DefaultSize,
		InitialTiles: 2,
		WinRank:      11,
		Spawn:        model.DefaultSpawnPolicy(),
	}
}

// Validate checks the configuration for values the engine cannot work with.
func (c Config) Validate() error {
	if c.BoardSize < 2 {
		return fmt.Errorf("config: board_size %d is too small", c.BoardSize)
	}
	if c.InitialTiles < 1 || c.InitialTiles > c.BoardSize*c.BoardSize {
		return fmt.Errorf("config: initial_tiles %d does not fit a %dx%d board",
			c.InitialTiles, c.BoardSize, c.BoardSize)
	}
	if c.WinRank < 2 {
		return fmt.Errorf("config: win_rank %d is too small", c.WinRank)
	}
	if c.Spawn.LowRank < 1 || c.Spawn.HighRank <= c.Spawn.LowRank {
		return fmt.Errorf("config: spawn ranks %d/%d must satisfy 1 <= low < high",
			c.Spawn.LowRank, c.Spawn.HighRank)
	}
	if c.Spawn.HighThreshold < 0 || c.Spawn.HighThreshold > 10 {
		return fmt.Errorf("config: spawn high_threshold %d must be in [0, 10]", c.Spawn.HighThreshold)
	}
	return nil
}
