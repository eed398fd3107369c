package world

import "iter"

// Board dimensions. They never change during a round.
const (
	Rows = 45
	Cols = 64

	// Cells is the total number of cells on the board.
	Cells = Rows * Cols
)

// Cursor is a bounded (row, column) address on the board.
type Cursor struct {
	Row int
	Col int
}

// NewCursor returns a cursor for the given position. The position must be on the board.
func NewCursor(row, col int) Cursor {
	if !IsValidPosition(row, col) {
		panic("cursor out of bounds")
	}
	return Cursor{Row: row, Col: col}
}

// IsValidPosition checks if a row/col position is within board bounds
func IsValidPosition(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Cols
}

// IsInteriorPosition checks if a position lies strictly inside the border ring
func IsInteriorPosition(row, col int) bool {
	return row > 0 && row < Rows-1 && col > 0 && col < Cols-1
}

// Index returns the row-major index of the cursor.
func (c Cursor) Index() int {
	return c.Row*Cols + c.Col
}

// IsBorder reports whether the cursor is on the outermost row or column.
func (c Cursor) IsBorder() bool {
	return !IsInteriorPosition(c.Row, c.Col)
}

// To moves one cell in the given direction, staying put at the board edge.
func (c Cursor) To(dir Direction) Cursor {
	dr, dc := dir.Delta()
	return Cursor{Row: clamp(c.Row+dr, 0, Rows-1), Col: clamp(c.Col+dc, 0, Cols-1)}
}

// Offset returns the cursor shifted by (dRow, dCol). The second result is false
// when the destination is outside the interior of the board.
func (c Cursor) Offset(dRow, dCol int) (Cursor, bool) {
	row, col := c.Row+dRow, c.Col+dCol
	if !IsInteriorPosition(row, col) {
		return c, false
	}
	return Cursor{Row: row, Col: col}, true
}

// OffsetClamp returns the cursor shifted by (dRow, dCol), clamped into the board.
func (c Cursor) OffsetClamp(dRow, dCol int) Cursor {
	return Cursor{Row: clamp(c.Row+dRow, 0, Rows-1), Col: clamp(c.Col+dCol, 0, Cols-1)}
}

// Distance returns the absolute row and column distances between two cursors.
func Distance(a, b Cursor) (rows, cols int) {
	return abs(a.Row - b.Row), abs(a.Col - b.Col)
}

// AllCursors yields every cell of the board in row-major order.
func AllCursors() iter.Seq[Cursor] {
	return func(yield func(Cursor) bool) {
		for row := 0; row < Rows; row++ {
			for col := 0; col < Cols; col++ {
				if !yield(Cursor{Row: row, Col: col}) {
					return
				}
			}
		}
	}
}

// InteriorCursors yields every non-border cell in row-major order.
func InteriorCursors() iter.Seq[Cursor] {
	return func(yield func(Cursor) bool) {
		for row := 1; row < Rows-1; row++ {
			for col := 1; col < Cols-1; col++ {
				if !yield(Cursor{Row: row, Col: col}) {
					return
				}
			}
		}
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
