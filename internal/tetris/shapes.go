package tetris

import (
	"fmt"
	"strings"
)

// CanonicalWidth is the board width the shape tables are written for.
const CanonicalWidth = 10

// Kind identifies one of the seven tetrominoes by its letter.
type Kind byte

const (
	KindI Kind = 'I'
	KindS Kind = 'S'
	KindZ Kind = 'Z'
	KindL Kind = 'L'
	KindJ Kind = 'J'
	KindO Kind = 'O'
	KindT Kind = 'T'
)

// Kinds lists every piece kind in table order.
var Kinds = []Kind{KindI, KindS, KindZ, KindL, KindJ, KindO, KindT}

// String returns the piece letter.
func (k Kind) String() string {
	if k == 0 {
		return ""
	}
	return string(rune(k))
}

// ParseKind converts a piece letter (case-insensitive, surrounding spaces
// ignored) into a Kind.
func ParseKind(s string) (Kind, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) == 1 {
		k := Kind(s[0])
		if _, ok := canonicalShapes[k]; ok {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownPiece, s)
}

// Rotation is one orientation of a piece: four linear cell indices.
type Rotation [4]int

// Shape holds the four rotation states of a piece.
type Shape [4]Rotation

// canonicalShapes are row-major indices in the 10-column reference frame.
// Never mutated; width-adjusted copies are built by NewShapeTable.
var canonicalShapes = map[Kind]Shape{
	KindI: {{4, 14, 24, 34}, {3, 4, 5, 6}, {4, 14, 24, 34}, {3, 4, 5, 6}},
	KindS: {{5, 4, 14, 13}, {4, 14, 15, 25}, {5, 4, 14, 13}, {4, 14, 15, 25}},
	KindZ: {{4, 5, 15, 16}, {5, 15, 14, 24}, {4, 5, 15, 16}, {5, 15, 14, 24}},
	KindL: {{4, 14, 24, 25}, {5, 15, 14, 13}, {4, 5, 15, 25}, {6, 5, 4, 14}},
	KindJ: {{5, 15, 25, 24}, {15, 5, 4, 3}, {5, 4, 14, 24}, {4, 14, 15, 16}},
	KindO: {{4, 14, 15, 5}, {4, 14, 15, 5}, {4, 14, 15, 5}, {4, 14, 15, 5}},
	KindT: {{4, 14, 24, 15}, {4, 13, 14, 15}, {5, 15, 25, 14}, {4, 5, 6, 15}},
}

// ShapeTable maps each kind to its shape for one board width.
// It is a per-game value; tables for different widths never interfere.
type ShapeTable map[Kind]Shape

// NewShapeTable builds the shape table for the given board width.
// Width 10 returns the canonical indices unchanged.
func NewShapeTable(width int) ShapeTable {
	table := make(ShapeTable, len(canonicalShapes))
	for kind, shape := range canonicalShapes {
		if width != CanonicalWidth {
			shape = adjustShape(shape, width)
		}
		table[kind] = shape
	}
	return table
}

// Shape returns the shape for a kind.
func (t ShapeTable) Shape(k Kind) (Shape, bool) {
	s, ok := t[k]
	return s, ok
}

// adjustShape re-centers a canonical shape on a board of the given width.
func adjustShape(shape Shape, width int) Shape {
	offset := floorDiv(CanonicalWidth-width, 2)
	for r := range shape {
		for i, idx := range shape[r] {
			shape[r][i] = idx%CanonicalWidth - offset + idx/CanonicalWidth*width
		}
	}
	return shape
}

// floorDiv divides rounding toward negative infinity, so boards wider than
// the canonical frame shift pieces right by the correct amount.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// floorMod is the modulo matching floorDiv.
func floorMod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

// shifted returns the shape with every index moved by delta.
func (s Shape) shifted(delta int) Shape {
	for r := range s {
		for i := range s[r] {
			s[r][i] += delta
		}
	}
	return s
}
