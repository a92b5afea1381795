package tetris

// Snapshot captures the complete game state as a comparable value, so
// tests can check that a command left the game unchanged.
type Snapshot struct {
	State    State
	Kind     Kind
	Rotation int
	Cells    Rotation
	Template string
	Grid     string
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		State:    g.state,
		Kind:     g.kind,
		Rotation: g.rotation,
		Cells:    g.positions[g.rotation],
		Template: g.template.String(),
		Grid:     g.grid.String(),
	}
}
