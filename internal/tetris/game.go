package tetris

import (
	"errors"
	"fmt"
)

// Board size limits. The minimum fits every shape in every width
// adjustment; the maximum keeps rows*cols far from overflow.
const (
	MinWidth  = 4
	MinHeight = 4
	MaxWidth  = 1024
	MaxHeight = 1024
)

var (
	// ErrGameOver is returned by every operation once the game has ended.
	ErrGameOver = errors.New("tetris: game over")

	// ErrUnknownPiece is returned for a letter that names no piece kind.
	ErrUnknownPiece = errors.New("tetris: unknown piece")

	// ErrInvalidDimensions is returned by New for boards that cannot hold a piece.
	ErrInvalidDimensions = errors.New("tetris: invalid board dimensions")
)

// InvariantError is the single fatal failure of the engine: a spawn that
// collides with locked cells, or a landing with a fully occupied column.
// It unwraps to ErrGameOver.
type InvariantError struct {
	Op     string
	Reason string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("tetris: %s: %s", e.Op, e.Reason)
}

func (e *InvariantError) Unwrap() error {
	return ErrGameOver
}

// State is the phase of the piece state machine.
type State int

const (
	StateNoPiece State = iota
	StatePieceActive
	StatePieceLanded
	StateGameOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateNoPiece:
		return "no_piece"
	case StatePieceActive:
		return "piece_active"
	case StatePieceLanded:
		return "piece_landed"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Game owns the board and the active piece.
//
// Two boards are kept. template is the collision reference captured when a
// piece spawns (or after lines are cleared) and holds the locked cells.
// grid is what gets rendered: the template plus the falling piece's current
// cells. A piece locks simply by being captured into the next template.
type Game struct {
	rows   int
	cols   int
	shapes ShapeTable

	template *Board
	grid     *Board

	state     State
	kind      Kind
	rotation  int
	positions Shape
}

// New creates a game on an empty width x height board.
func New(width, height int) (*Game, error) {
	if width < MinWidth || height < MinHeight || width > MaxWidth || height > MaxHeight {
		return nil, fmt.Errorf("%w: %dx%d (must be between %dx%d and %dx%d)",
			ErrInvalidDimensions, width, height, MinWidth, MinHeight, MaxWidth, MaxHeight)
	}

	g := &Game{
		rows:   height,
		cols:   width,
		shapes: NewShapeTable(width),
	}
	g.Reset()
	return g, nil
}

// Reset clears the board and returns to the no-piece state.
func (g *Game) Reset() {
	g.template = NewBoard(g.rows, g.cols)
	g.grid = NewBoard(g.rows, g.cols)
	g.state = StateNoPiece
	g.kind = 0
	g.rotation = 0
	g.positions = Shape{}
}

// Width returns the number of columns.
func (g *Game) Width() int {
	return g.cols
}

// Height returns the number of rows.
func (g *Game) Height() int {
	return g.rows
}

// State returns the current state machine phase.
func (g *Game) State() State {
	return g.state
}

// Kind returns the active piece kind, or 0 before the first spawn.
func (g *Game) Kind() Kind {
	return g.kind
}

// Rotation returns the active rotation index (0-3).
func (g *Game) Rotation() int {
	return g.rotation
}

// Cells returns the absolute cells of the current rotation state.
func (g *Game) Cells() Rotation {
	return g.positions[g.rotation]
}

// Grid returns the rendered board. The returned board must not be modified.
func (g *Game) Grid() *Board {
	return g.grid
}

// Template returns the collision reference board.
func (g *Game) Template() *Board {
	return g.template
}

// String renders the grid with the default markers.
func (g *Game) String() string {
	return g.grid.String()
}

// Shapes returns the width-adjusted shape table used by this game.
func (g *Game) Shapes() ShapeTable {
	return g.shapes
}

// renderGrid derives the visible board: the template plus the given cells.
func (g *Game) renderGrid(cells Rotation) *Board {
	b := g.template.Clone()
	b.Fill(cells[:])
	return b
}

// Spawn captures the current grid as the new template and places a piece
// of the given kind in rotation 0. The initial cells must be free unless
// the board already has a full column. A collision ends the game.
func (g *Game) Spawn(kind Kind) error {
	if g.state == StateGameOver {
		return ErrGameOver
	}

	shape, ok := g.shapes.Shape(kind)
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownPiece, kind.String())
	}

	g.template = g.grid.Clone()
	g.kind = kind
	g.rotation = 0
	g.positions = shape
	g.state = StatePieceActive

	if !g.template.CanOccupy(g.positions[0][:]) && !g.grid.HasFullColumn() {
		g.state = StateGameOver
		return &InvariantError{Op: "spawn", Reason: fmt.Sprintf("piece %s collides with locked cells", kind)}
	}

	g.grid = g.renderGrid(g.positions[0])
	return nil
}

// Descend is the gravity step. All four rotation states move down one row
// together when the current state's translated cells are free; otherwise,
// or when the piece already touches the floor, the piece lands.
//
// A landed piece is not translated again; only the end-of-game check runs.
func (g *Game) Descend() error {
	switch g.state {
	case StateGameOver:
		return ErrGameOver
	case StateNoPiece:
		return nil
	case StatePieceLanded:
		return g.land("descend")
	}

	area := g.rows * g.cols
	cur := g.positions[g.rotation]

	if allAbove(cur, g.cols, area) {
		next := g.positions.shifted(g.cols)
		if !g.template.CanOccupy(next[g.rotation][:]) {
			return g.land("descend")
		}
		g.positions = next
		g.grid = g.renderGrid(next[g.rotation])
	}

	if !allAbove(g.positions[g.rotation], g.cols, area) {
		return g.land("descend")
	}
	return nil
}

// land marks the piece landed and checks the end-of-game condition.
func (g *Game) land(op string) error {
	g.state = StatePieceLanded
	if g.grid.HasFullColumn() {
		g.state = StateGameOver
		return &InvariantError{Op: op, Reason: "column fully occupied"}
	}
	return nil
}

// allAbove reports whether every cell has a row below it.
func allAbove(cells Rotation, cols, area int) bool {
	for _, idx := range cells {
		if idx+cols >= area {
			return false
		}
	}
	return true
}

// Rotate advances the rotation index cyclically, unless the piece has
// landed, then runs a descent step.
func (g *Game) Rotate() error {
	switch g.state {
	case StateGameOver:
		return ErrGameOver
	case StateNoPiece:
		return nil
	case StatePieceActive:
		g.rotation = (g.rotation + 1) % len(g.positions)
	}
	return g.Descend()
}

// MoveLeft shifts every rotation state one column left when no current
// cell is on the left edge, then runs a descent step.
func (g *Game) MoveLeft() error {
	return g.move(-1)
}

// MoveRight shifts every rotation state one column right when no current
// cell is on the right edge, then runs a descent step.
func (g *Game) MoveRight() error {
	return g.move(1)
}

func (g *Game) move(dx int) error {
	switch g.state {
	case StateGameOver:
		return ErrGameOver
	case StateNoPiece:
		return nil
	case StatePieceActive:
		if !g.atEdge(dx) {
			g.positions = g.positions.shifted(dx)
		}
	}
	return g.Descend()
}

// atEdge reports whether a current cell sits on the edge in direction dx.
func (g *Game) atEdge(dx int) bool {
	for _, idx := range g.positions[g.rotation] {
		if dx < 0 && floorMod(idx, g.cols) == 0 {
			return true
		}
		if dx > 0 && floorMod(idx+1, g.cols) == 0 {
			return true
		}
	}
	return false
}

// ClearLines removes full rows from the grid and re-captures it as the
// collision template. Returns the number of rows removed.
func (g *Game) ClearLines() (int, error) {
	if g.state == StateGameOver {
		return 0, ErrGameOver
	}
	n := g.grid.RemoveFullLines()
	g.template = g.grid.Clone()
	return n, nil
}
