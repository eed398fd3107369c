package level

import "minebombers/pkg/engine/world"

// Grid holds the cell state of every board cell.
type Grid struct {
	cells world.Layer[State]
}

// NewGrid creates a grid with every cell set to Passage.
func NewGrid() *Grid {
	g := &Grid{}
	g.cells.Fill(Passage)
	return g
}

// At returns the state of the cell under the cursor.
func (g *Grid) At(c world.Cursor) State {
	return g.cells.At(c)
}

// Set replaces the state of the cell under the cursor.
func (g *Grid) Set(c world.Cursor, s State) {
	g.cells.Set(c, s)
}

// Fill sets every cell to s.
func (g *Grid) Fill(s State) {
	g.cells.Fill(s)
}

// Count returns the number of cells whose state satisfies pred.
func (g *Grid) Count(pred func(State) bool) int {
	return g.cells.Count(pred)
}

// CountState returns the number of cells holding exactly s.
func (g *Grid) CountState(s State) int {
	return g.cells.Count(func(v State) bool { return v == s })
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{cells: *g.cells.Clone()}
}

// Equal reports whether two grids hold the same states.
func (g *Grid) Equal(other *Grid) bool {
	return g.cells == other.cells
}
