package model

import (
	"errors"
	"math/rand"
	"testing"
)

// scriptRng feeds Spawn a fixed sequence of draws.
type scriptRng struct {
	draws []int
	pos   int
}

func (r *scriptRng) Intn(n int) int {
	if r.pos >= len(r.draws) {
		return 0
	}
	v := r.draws[r.pos] % n
	r.pos++
	return v
}

func TestSpawnFillsAnEmptyCell(t *testing.T) {
	b := New(4)
	rng := &scriptRng{draws: []int{0, 0}}

	if err := b.Spawn(rng, DefaultSpawnPolicy()); err != nil {
		t.Fatalf("Spawn() failed: %v", err)
	}

	assertBoard(t, b, []Rank{
		1, 0, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
	})
}

func TestSpawnSkipsOccupiedCells(t *testing.T) {
	b := mustBoard(t, []Rank{
		6, 5, 4, 3,
		0, 0, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
	})

	// Index 0 over the empty cells is the first cell after the occupied row.
	rng := &scriptRng{draws: []int{0, 0}}
	if err := b.Spawn(rng, DefaultSpawnPolicy()); err != nil {
		t.Fatalf("Spawn() failed: %v", err)
	}

	assertBoard(t, b, []Rank{
		6, 5, 4, 3,
		1, 0, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
	})
}

func TestSpawnPicksDrawnEmptyCell(t *testing.T) {
	b := mustBoard(t, []Rank{
		1, 0, 2, 0,
		0, 3, 0, 4,
		0, 0, 0, 0,
		0, 0, 0, 0,
	})

	// The 12 empty cells are scanned in row-major order; draw 4 lands on
	// flat index 8.
	rng := &scriptRng{draws: []int{4, 0}}
	if err := b.Spawn(rng, DefaultSpawnPolicy()); err != nil {
		t.Fatalf("Spawn() failed: %v", err)
	}

	if got := b.At(2, 0); got != 1 {
		t.Errorf("At(2,0) = %d, want 1", got)
	}
	if got := b.EmptyCount(); got != 11 {
		t.Errorf("EmptyCount() = %d, want 11", got)
	}
}

func TestSpawnValueDrawThreshold(t *testing.T) {
	policy := DefaultSpawnPolicy()

	tests := []struct {
		name string
		draw int
		want Rank
	}{
		{name: "draw below threshold spawns low rank", draw: 8, want: policy.LowRank},
		{name: "draw at threshold spawns high rank", draw: 9, want: policy.HighRank},
		{name: "lowest draw spawns low rank", draw: 0, want: policy.LowRank},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(4)
			rng := &scriptRng{draws: []int{0, tt.draw}}
			if err := b.Spawn(rng, policy); err != nil {
				t.Fatalf("Spawn() failed: %v", err)
			}
			if got := b.At(0, 0); got != tt.want {
				t.Errorf("spawned rank = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSpawnOnFullBoardFailsUnchanged(t *testing.T) {
	cells := []Rank{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 1,
	}
	b := mustBoard(t, cells)
	before := b.Clone()

	err := b.Spawn(rand.New(rand.NewSource(1)), DefaultSpawnPolicy())
	if !errors.Is(err, ErrNoEmptyCell) {
		t.Fatalf("Spawn() error = %v, want ErrNoEmptyCell", err)
	}
	if !b.Equal(before) {
		t.Errorf("failed spawn changed the board: %v -> %v", before.Flat(), b.Flat())
	}
}

func TestSpawnWithOneEmptyCellFillsExactlyThatCell(t *testing.T) {
	cells := []Rank{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 0, 12,
		13, 14, 15, 1,
	}
	b := mustBoard(t, cells)

	if err := b.Spawn(rand.New(rand.NewSource(7)), DefaultSpawnPolicy()); err != nil {
		t.Fatalf("Spawn() failed: %v", err)
	}

	if got := b.At(2, 2); got == 0 {
		t.Error("the single empty cell should have been filled")
	}
	if got := b.EmptyCount(); got != 0 {
		t.Errorf("EmptyCount() = %d, want 0", got)
	}
	// Every other cell is untouched
	for i, v := range b.Flat() {
		if i == 10 {
			continue
		}
		if v != cells[i] {
			t.Errorf("cell %d = %d, want %d", i, v, cells[i])
		}
	}
}

func TestSpawnIsDeterministicWithSeed(t *testing.T) {
	b1 := New(4)
	b2 := New(4)

	rng1 := rand.New(rand.NewSource(12345))
	rng2 := rand.New(rand.NewSource(12345))

	for i := 0; i < 10; i++ {
		if err := b1.Spawn(rng1, DefaultSpawnPolicy()); err != nil {
			t.Fatalf("Spawn() failed: %v", err)
		}
		if err := b2.Spawn(rng2, DefaultSpawnPolicy()); err != nil {
			t.Fatalf("Spawn() failed: %v", err)
		}
	}

	if !b1.Equal(b2) {
		t.Errorf("same seed should give the same spawns:\n%v\nvs\n%v", b1.Flat(), b2.Flat())
	}
}
