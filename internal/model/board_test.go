package model

import "testing"

func TestNewBoardIsEmpty(t *testing.T) {
	b := New(DefaultSize)

	if b.Size() != DefaultSize {
		t.Errorf("Size() = %d, want %d", b.Size(), DefaultSize)
	}
	for i, v := range b.Flat() {
		if v != 0 {
			t.Errorf("cell %d = %d, want 0", i, v)
		}
	}
}

func TestFromFlatRoundTrip(t *testing.T) {
	input := []Rank{
		0, 1, 1, 0,
		1, 2, 2, 1,
		1, 2, 2, 1,
		0, 1, 1, 0,
	}

	b, err := FromFlat(4, input)
	if err != nil {
		t.Fatalf("FromFlat() failed: %v", err)
	}

	got := b.Flat()
	for i, v := range input {
		if got[i] != v {
			t.Errorf("Flat()[%d] = %d, want %d", i, got[i], v)
		}
	}
}

func TestFromRowsRoundTrip(t *testing.T) {
	input := [][]Rank{
		{0, 1, 1, 0},
		{1, 2, 2, 1},
		{1, 2, 2, 1},
		{0, 1, 1, 0},
	}

	b, err := FromRows(input)
	if err != nil {
		t.Fatalf("FromRows() failed: %v", err)
	}

	got := b.Rows()
	for r := range input {
		for c := range input[r] {
			if got[r][c] != input[r][c] {
				t.Errorf("Rows()[%d][%d] = %d, want %d", r, c, got[r][c], input[r][c])
			}
		}
	}
}

func TestFlatAndRowsViewsAgree(t *testing.T) {
	flat := []Rank{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 0,
	}

	b, err := FromFlat(4, flat)
	if err != nil {
		t.Fatalf("FromFlat() failed: %v", err)
	}

	// flat index = row*4 + col, in both directions
	rows := b.Rows()
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if rows[r][c] != flat[r*4+c] {
				t.Errorf("Rows()[%d][%d] = %d, want flat[%d] = %d",
					r, c, rows[r][c], r*4+c, flat[r*4+c])
			}
			if b.At(r, c) != flat[r*4+c] {
				t.Errorf("At(%d,%d) = %d, want %d", r, c, b.At(r, c), flat[r*4+c])
			}
		}
	}

	// And back again through the other constructor
	b2, err := FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows() failed: %v", err)
	}
	if !b.Equal(b2) {
		t.Error("FromRows(Rows()) should reproduce the original board")
	}
}

func TestFromFlatRejectsWrongLength(t *testing.T) {
	if _, err := FromFlat(4, make([]Rank, 15)); err == nil {
		t.Error("FromFlat() should reject a 15-cell board")
	}
	if _, err := FromFlat(4, make([]Rank, 17)); err == nil {
		t.Error("FromFlat() should reject a 17-cell board")
	}
	if _, err := FromFlat(1, make([]Rank, 1)); err == nil {
		t.Error("FromFlat() should reject a 1x1 board")
	}
}

func TestFromRowsRejectsRaggedInput(t *testing.T) {
	ragged := [][]Rank{
		{0, 1, 1},
		{1, 2, 2},
		{1, 2, 2, 1},
	}
	if _, err := FromRows(ragged); err == nil {
		t.Error("FromRows() should reject ragged rows")
	}

	if _, err := FromRows([][]Rank{{1}}); err == nil {
		t.Error("FromRows() should reject a 1x1 board")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	b, err := FromFlat(4, []Rank{
		1, 0, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 1,
	})
	if err != nil {
		t.Fatalf("FromFlat() failed: %v", err)
	}

	clone := b.Clone()
	if !b.Equal(clone) {
		t.Fatal("Clone() should equal the original")
	}

	b.Slide(DirLeft)
	if b.Equal(clone) {
		t.Error("mutating the original should not affect the clone")
	}
}

func TestEmptyCountAndMaxRank(t *testing.T) {
	b, err := FromFlat(4, []Rank{
		1, 0, 3, 0,
		0, 6, 0, 8,
		9, 0, 11, 0,
		0, 4, 0, 6,
	})
	if err != nil {
		t.Fatalf("FromFlat() failed: %v", err)
	}

	if got := b.EmptyCount(); got != 8 {
		t.Errorf("EmptyCount() = %d, want 8", got)
	}
	if got := b.MaxRank(); got != 11 {
		t.Errorf("MaxRank() = %d, want 11", got)
	}
}

func TestCanMove(t *testing.T) {
	tests := []struct {
		name  string
		cells []Rank
		want  bool
	}{
		{
			name: "empty cell available",
			cells: []Rank{
				1, 2, 3, 4,
				5, 6, 7, 8,
				9, 10, 0, 12,
				13, 14, 15, 11,
			},
			want: true,
		},
		{
			name: "full board with adjacent pair",
			cells: []Rank{
				1, 1, 3, 4,
				5, 6, 7, 8,
				9, 10, 11, 12,
				13, 14, 15, 2,
			},
			want: true,
		},
		{
			name: "full board with vertical pair",
			cells: []Rank{
				1, 2, 3, 4,
				5, 6, 7, 8,
				9, 6, 11, 12,
				13, 14, 15, 2,
			},
			want: true,
		},
		{
			name: "dead board",
			cells: []Rank{
				1, 2, 3, 4,
				5, 6, 7, 8,
				9, 10, 11, 12,
				13, 14, 15, 2,
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := FromFlat(4, tt.cells)
			if err != nil {
				t.Fatalf("FromFlat() failed: %v", err)
			}
			if got := b.CanMove(); got != tt.want {
				t.Errorf("CanMove() = %v, want %v", got, tt.want)
			}
		})
	}
}
