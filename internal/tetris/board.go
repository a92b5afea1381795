// Package tetris implements the piece/grid state machine of the text-mode
// Tetris engine. It contains no I/O so every rule can be tested directly.
package tetris

import (
	"strings"
)

// Cell is the content of a single grid position.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellOccupied
)

// Default text markers used by Board.String.
const (
	EmptyMarker  = '-'
	FilledMarker = '0'
)

// Board is a fixed-size cell matrix addressed by linear index
// (row*cols + col). It knows nothing about pieces or rotation.
type Board struct {
	rows  int
	cols  int
	cells []Cell
}

// NewBoard creates an all-empty board.
func NewBoard(rows, cols int) *Board {
	return &Board{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}
}

// Rows returns the number of rows.
func (b *Board) Rows() int {
	return b.rows
}

// Cols returns the number of columns.
func (b *Board) Cols() int {
	return b.cols
}

// Len returns rows*cols.
func (b *Board) Len() int {
	return len(b.cells)
}

// inBounds reports whether idx addresses a cell of this board.
func (b *Board) inBounds(idx int) bool {
	return idx >= 0 && idx < len(b.cells)
}

// At returns the cell at linear index idx.
// Out-of-range indices read as empty.
func (b *Board) At(idx int) Cell {
	if !b.inBounds(idx) {
		return CellEmpty
	}
	return b.cells[idx]
}

// AtRC returns the cell at (row, col).
func (b *Board) AtRC(row, col int) Cell {
	if row < 0 || row >= b.rows || col < 0 || col >= b.cols {
		return CellEmpty
	}
	return b.cells[row*b.cols+col]
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	c := &Board{
		rows:  b.rows,
		cols:  b.cols,
		cells: make([]Cell, len(b.cells)),
	}
	copy(c.cells, b.cells)
	return c
}

// Fill marks every given index occupied.
// Out-of-range indices are silently ignored.
func (b *Board) Fill(indices []int) {
	for _, idx := range indices {
		if b.inBounds(idx) {
			b.cells[idx] = CellOccupied
		}
	}
}

// CanOccupy reports whether every given index is free on this board, i.e.
// a piece could be placed there without a collision. An out-of-range index
// counts as blocked.
func (b *Board) CanOccupy(indices []int) bool {
	for _, idx := range indices {
		if !b.inBounds(idx) || b.cells[idx] == CellOccupied {
			return false
		}
	}
	return true
}

// HasFullColumn reports whether some column is occupied in every row.
// This is the end-of-game condition checked when a piece lands.
func (b *Board) HasFullColumn() bool {
	for col := 0; col < b.cols; col++ {
		full := true
		for row := 0; row < b.rows; row++ {
			if b.cells[row*b.cols+col] != CellOccupied {
				full = false
				break
			}
		}
		if full {
			return true
		}
	}
	return false
}

// rowFull reports whether every cell of the row is occupied.
func (b *Board) rowFull(row int) bool {
	start := row * b.cols
	for _, c := range b.cells[start : start+b.cols] {
		if c != CellOccupied {
			return false
		}
	}
	return true
}

// RemoveFullLines drops every full row, compacts the remaining rows toward
// the bottom keeping their order, and inserts the same number of empty rows
// at the top. Returns the number of rows removed.
func (b *Board) RemoveFullLines() int {
	cells := make([]Cell, len(b.cells))

	// Walk from the bottom up, copying surviving rows into place
	write := b.rows - 1
	for row := b.rows - 1; row >= 0; row-- {
		if b.rowFull(row) {
			continue
		}
		copy(cells[write*b.cols:(write+1)*b.cols], b.cells[row*b.cols:(row+1)*b.cols])
		write--
	}

	b.cells = cells
	return write + 1
}

// Format renders the board as rows of space-separated markers joined by
// newlines. No trailing newline.
func (b *Board) Format(empty, filled rune) string {
	var sb strings.Builder
	sb.Grow(len(b.cells)*2 + b.rows)

	for row := 0; row < b.rows; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < b.cols; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			if b.cells[row*b.cols+col] == CellOccupied {
				sb.WriteRune(filled)
			} else {
				sb.WriteRune(empty)
			}
		}
	}
	return sb.String()
}

// String renders the board with the default markers.
func (b *Board) String() string {
	return b.Format(EmptyMarker, FilledMarker)
}
