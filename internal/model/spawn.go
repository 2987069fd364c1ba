package model

import "errors"

// ErrNoEmptyCell is returned by Spawn when every cell is occupied. It is a
// signal, not a defect: the caller decides whether it means game over.
var ErrNoEmptyCell = errors.New("model: no empty cell for a new tile")

// Rng is the randomness capability the spawner needs.
// *math/rand.Rand satisfies it.
type Rng interface {
	// Intn returns a uniformly distributed int in [0, n). n must be >= 1.
	Intn(n int) int
}

// spawnDie is the size of the value draw: one roll in [0, spawnDie) decides
// between the policy's low and high rank.
const spawnDie = 10

// SpawnPolicy controls which rank a spawned tile gets. One uniform draw in
// [0, 10) at or above HighThreshold selects HighRank, otherwise LowRank.
type SpawnPolicy struct {
	LowRank       Rank `yaml:"low_rank"`
	HighRank      Rank `yaml:"high_rank"`
	HighThreshold int  `yaml:"high_threshold"`
}

// DefaultSpawnPolicy returns the classic policy: 90% rank 1, 10% rank 2.
func DefaultSpawnPolicy() SpawnPolicy {
	return SpawnPolicy{LowRank: 1, HighRank: 2, HighThreshold: 9}
}

// Spawn writes a new tile into one uniformly chosen empty cell. The cell is
// picked by drawing an index over the current empty cells and scanning in
// row-major order; the rank comes from the policy's value draw.
//
// If no cell is empty, Spawn returns ErrNoEmptyCell and the board is left
// bit-for-bit unchanged.
func (b *Board) Spawn(rng Rng, policy SpawnPolicy) error {
	empties := b.EmptyCount()
	if empties == 0 {
		return ErrNoEmptyCell
	}

	target := rng.Intn(empties)
	rank := policy.LowRank
	if rng.Intn(spawnDie) >= policy.HighThreshold {
		rank = policy.HighRank
	}

	for i, v := range b.cells {
		if v != 0 {
			continue
		}
		if target == 0 {
			b.cells[i] = rank
			break
		}
		target--
	}
	return nil
}
