package tetris

import (
	"strings"
	"testing"
)

// rows builds the expected String() output from row strings.
func rows(r ...string) string {
	return strings.Join(r, "\n")
}

func TestNewBoardEmpty(t *testing.T) {
	b := NewBoard(20, 10)

	if b.Rows() != 20 || b.Cols() != 10 {
		t.Fatalf("NewBoard(20, 10) dims = %dx%d", b.Rows(), b.Cols())
	}
	if b.Len() != 200 {
		t.Errorf("Len() = %d, expected 200", b.Len())
	}

	lines := strings.Split(b.String(), "\n")
	if len(lines) != 20 {
		t.Fatalf("expected 20 rendered rows, got %d", len(lines))
	}
	for i, line := range lines {
		if line != "- - - - - - - - - -" {
			t.Errorf("row %d = %q", i, line)
		}
	}
}

func TestBoardFillAndAt(t *testing.T) {
	b := NewBoard(4, 10)
	b.Fill([]int{4, 14, 15, 5})

	for _, idx := range []int{4, 5, 14, 15} {
		if b.At(idx) != CellOccupied {
			t.Errorf("At(%d) should be occupied", idx)
		}
	}
	if b.AtRC(1, 5) != CellOccupied {
		t.Error("AtRC(1, 5) should be occupied")
	}
	if b.At(0) != CellEmpty {
		t.Error("At(0) should be empty")
	}

	// Out of range is ignored
	b.Fill([]int{-1, 40, 100})
	if b.At(-1) != CellEmpty || b.At(40) != CellEmpty {
		t.Error("out of range reads should be empty")
	}
}

func TestBoardCanOccupy(t *testing.T) {
	b := NewBoard(4, 10)
	b.Fill([]int{14})

	tests := []struct {
		name    string
		indices []int
		want    bool
	}{
		{"all free", []int{4, 5, 6, 7}, true},
		{"one occupied", []int{4, 14, 24, 34}, false},
		{"negative index", []int{-1, 0, 1, 2}, false},
		{"past the end", []int{37, 38, 39, 40}, false},
		{"empty set", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.CanOccupy(tt.indices); got != tt.want {
				t.Errorf("CanOccupy(%v) = %v, want %v", tt.indices, got, tt.want)
			}
		})
	}
}

func TestBoardHasFullColumn(t *testing.T) {
	b := NewBoard(4, 10)
	if b.HasFullColumn() {
		t.Error("empty board should not have a full column")
	}

	// A full row is not a full column
	b.Fill([]int{30, 31, 32, 33, 34, 35, 36, 37, 38, 39})
	if b.HasFullColumn() {
		t.Error("full row should not count as a full column")
	}

	b.Fill([]int{7, 17, 27})
	if !b.HasFullColumn() {
		t.Error("column 7 is fully occupied")
	}
}

func TestBoardRemoveFullLines(t *testing.T) {
	b := NewBoard(4, 10)
	b.Fill([]int{0})                                      // row 0
	b.Fill([]int{13, 14})                                 // row 1
	b.Fill([]int{20, 21, 22, 23, 24, 25, 26, 27, 28, 29}) // row 2, full
	b.Fill([]int{35})                                     // row 3

	removed := b.RemoveFullLines()
	if removed != 1 {
		t.Errorf("RemoveFullLines() = %d, expected 1", removed)
	}

	want := rows(
		"- - - - - - - - - -",
		"0 - - - - - - - - -",
		"- - - 0 0 - - - - -",
		"- - - - - 0 - - - -",
	)
	if got := b.String(); got != want {
		t.Errorf("after RemoveFullLines:\n%s\nwant:\n%s", got, want)
	}
	if b.Len() != 40 {
		t.Errorf("cell count changed to %d", b.Len())
	}
}

func TestBoardRemoveFullLinesBottomRow(t *testing.T) {
	b := NewBoard(4, 10)
	b.Fill([]int{30, 31, 32, 33, 34, 35, 36, 37, 38, 39})
	b.Fill([]int{24})

	b.RemoveFullLines()

	want := rows(
		"- - - - - - - - - -",
		"- - - - - - - - - -",
		"- - - - - - - - - -",
		"- - - - 0 - - - - -",
	)
	if got := b.String(); got != want {
		t.Errorf("after RemoveFullLines:\n%s\nwant:\n%s", got, want)
	}
}

func TestBoardRemoveFullLinesMultiple(t *testing.T) {
	b := NewBoard(5, 4)
	b.Fill([]int{1})              // row 0
	b.Fill([]int{4, 5, 6, 7})     // row 1, full
	b.Fill([]int{10})             // row 2
	b.Fill([]int{12, 13, 14, 15}) // row 3, full
	b.Fill([]int{19})             // row 4

	if removed := b.RemoveFullLines(); removed != 2 {
		t.Errorf("RemoveFullLines() = %d, expected 2", removed)
	}

	want := rows(
		"- - - -",
		"- - - -",
		"- 0 - -",
		"- - 0 -",
		"- - - 0",
	)
	if got := b.String(); got != want {
		t.Errorf("after RemoveFullLines:\n%s\nwant:\n%s", got, want)
	}
}

func TestBoardRemoveFullLinesNone(t *testing.T) {
	b := NewBoard(4, 4)
	b.Fill([]int{0, 5, 10, 15})
	before := b.String()

	if removed := b.RemoveFullLines(); removed != 0 {
		t.Errorf("RemoveFullLines() = %d, expected 0", removed)
	}
	if b.String() != before {
		t.Error("board without full rows should be unchanged")
	}
}

func TestBoardCloneIndependent(t *testing.T) {
	b := NewBoard(4, 4)
	c := b.Clone()
	c.Fill([]int{0})

	if b.At(0) != CellEmpty {
		t.Error("filling a clone should not affect the original")
	}
}

func TestBoardFormat(t *testing.T) {
	b := NewBoard(2, 4)
	b.Fill([]int{1, 6})

	want := ". # . .\n. . # ."
	if got := b.Format('.', '#'); got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}
