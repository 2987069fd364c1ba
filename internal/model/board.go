// Package model implements the rules engine for the sliding-tile merge
// puzzle: the board, the slide/merge transformation and the random tile
// spawner. It contains no UI or persistence dependencies so the rules stay
// pure and testable.
//
// Cells hold ranks, not face values: rank 0 is empty, rank r > 0 is a tile.
// Merging two tiles of rank r produces one tile of rank r+1. Mapping a rank
// to a displayed number (rank 1 -> 2, rank 2 -> 4, ...) is a presentation
// concern outside this package.
package model

import "fmt"

// Rank is the value a single cell holds. Zero means empty.
type Rank uint8

// DefaultSize is the classic board dimension.
const DefaultSize = 4

// Board is a square tile board stored in row-major order:
// flat index = row*size + col.
type Board struct {
	size  int
	cells []Rank
}

// New creates an empty size x size board.
func New(size int) *Board {
	if size < 2 {
		size = DefaultSize
	}
	return &Board{
		size:  size,
		cells: make([]Rank, size*size),
	}
}

// FromFlat creates a board from a flat row-major sequence of ranks.
// The slice length must be exactly size*size.
func FromFlat(size int, cells []Rank) (*Board, error) {
	if size < 2 {
		return nil, fmt.Errorf("model: board size %d is too small", size)
	}
	if len(cells) != size*size {
		return nil, fmt.Errorf("model: flat board has %d cells, want %d", len(cells), size*size)
	}
	b := New(size)
	copy(b.cells, cells)
	return b, nil
}

// FromRows creates a board from a nested row/column matrix.
// The matrix must be square: len(rows) rows of len(rows) cells each.
func FromRows(rows [][]Rank) (*Board, error) {
	size := len(rows)
	if size < 2 {
		return nil, fmt.Errorf("model: board size %d is too small", size)
	}
	b := New(size)
	for r, row := range rows {
		if len(row) != size {
			return nil, fmt.Errorf("model: row %d has %d cells, want %d", r, len(row), size)
		}
		copy(b.cells[r*size:(r+1)*size], row)
	}
	return b, nil
}

// Size returns the board dimension.
func (b *Board) Size() int {
	return b.size
}

// At returns the rank at the given row and column.
func (b *Board) At(row, col int) Rank {
	return b.cells[row*b.size+col]
}

// Flat returns the board as a flat row-major sequence of ranks.
// The returned slice is a copy.
func (b *Board) Flat() []Rank {
	out := make([]Rank, len(b.cells))
	copy(out, b.cells)
	return out
}

// Rows returns the board as a nested row/column matrix.
// The returned rows are copies.
func (b *Board) Rows() [][]Rank {
	out := make([][]Rank, b.size)
	for r := range out {
		row := make([]Rank, b.size)
		copy(row, b.cells[r*b.size:(r+1)*b.size])
		out[r] = row
	}
	return out
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	cells := make([]Rank, len(b.cells))
	copy(cells, b.cells)
	return &Board{size: b.size, cells: cells}
}

// Equal reports whether two boards have the same size and cell ranks.
func (b *Board) Equal(other *Board) bool {
	if other == nil || b.size != other.size {
		return false
	}
	for i, v := range b.cells {
		if other.cells[i] != v {
			return false
		}
	}
	return true
}

// EmptyCount returns the number of empty cells.
func (b *Board) EmptyCount() int {
	count := 0
	for _, v := range b.cells {
		if v == 0 {
			count++
		}
	}
	return count
}

// MaxRank returns the highest rank on the board, 0 for an empty board.
func (b *Board) MaxRank() Rank {
	var max Rank
	for _, v := range b.cells {
		if v > max {
			max = v
		}
	}
	return max
}

// CanMove reports whether any slide direction could change the board:
// there is an empty cell, or two equal tiles are orthogonally adjacent.
func (b *Board) CanMove() bool {
	if b.EmptyCount() > 0 {
		return true
	}
	for row := 0; row < b.size; row++ {
		for col := 0; col < b.size; col++ {
			v := b.At(row, col)
			if col < b.size-1 && b.At(row, col+1) == v {
				return true
			}
			if row < b.size-1 && b.At(row+1, col) == v {
				return true
			}
		}
	}
	return false
}
