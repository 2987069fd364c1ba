package model

// Slide shifts all tiles toward the given direction, merging equal adjacent
// tiles along the way, and reports whether any cell changed. Sliding a board
// with no legal move in that direction is well-defined: the board is left
// untouched and moved is false.
func (b *Board) Slide(dir Direction) bool {
	_, moved := b.SlideMerges(dir)
	return moved
}

// SlideMerges is Slide plus the successor rank of every merge performed, in
// traversal order. Callers that keep score map these ranks to face values;
// the engine itself never needs them.
//
// Each line is processed in three passes: compact tiles toward the near
// edge, merge equal adjacent pairs once, compact again to close the gaps
// merges leave behind. Compaction before merging is what lets two equal
// tiles separated only by empty cells find each other; re-compaction keeps
// a tile produced by a merge from merging again in the same move.
func (b *Board) SlideMerges(dir Direction) ([]Rank, bool) {
	next := make([]Rank, len(b.cells))
	copy(next, b.cells)

	order := traversal(b.size, dir)
	var merges []Rank
	for line := 0; line < len(order); line += b.size {
		seg := order[line : line+b.size]
		compactLine(next, seg)
		merges = mergeLine(next, seg, merges)
		compactLine(next, seg)
	}

	moved := false
	for i, v := range next {
		if b.cells[i] != v {
			moved = true
			break
		}
	}
	if !moved {
		return nil, false
	}

	// The scratch copy is swapped in wholesale so a caller never observes a
	// half-slid board.
	b.cells = next
	return merges, true
}

// compactLine slides every non-empty cell of one line toward the near edge,
// preserving order. seg holds the line's flat indices, near to far.
func compactLine(cells []Rank, seg []int) {
	write := 0
	for read := 0; read < len(seg); read++ {
		v := cells[seg[read]]
		if v == 0 {
			continue
		}
		if read != write {
			cells[seg[write]] = v
			cells[seg[read]] = 0
		}
		write++
	}
}

// mergeLine merges equal adjacent pairs of one compacted line, near to far.
// A merged cell is retired immediately: it cannot take part in a second
// merge this move. Appends the successor rank of each merge to merges.
func mergeLine(cells []Rank, seg []int, merges []Rank) []Rank {
	cand := -1
	for i := 0; i < len(seg); i++ {
		v := cells[seg[i]]
		if v == 0 {
			// Line is compacted, everything past here is empty.
			break
		}
		if cand >= 0 && cells[seg[cand]] == v && cand+1 == i {
			cells[seg[cand]] = v + 1
			cells[seg[i]] = 0
			merges = append(merges, v+1)
			cand = -1
		} else {
			cand = i
		}
	}
	return merges
}
