package world

// Layer is a fixed-size per-cell array covering the whole board. Layers are
// stacked to hold the different aspects of a cell (state, integrity, timers).
type Layer[T any] struct {
	cells [Cells]T
}

// NewLayer creates a layer with every cell set to the zero value.
func NewLayer[T any]() *Layer[T] {
	return &Layer[T]{}
}

// At returns the value stored for the cursor.
func (l *Layer[T]) At(c Cursor) T {
	return l.cells[c.Index()]
}

// Set stores a value for the cursor.
func (l *Layer[T]) Set(c Cursor, v T) {
	l.cells[c.Index()] = v
}

// Fill sets every cell to v.
func (l *Layer[T]) Fill(v T) {
	for i := range l.cells {
		l.cells[i] = v
	}
}

// ForEachCell iterates over all cells in row-major order, calling the provided function for each
func (l *Layer[T]) ForEachCell(fn func(c Cursor, v T)) {
	for c := range AllCursors() {
		fn(c, l.cells[c.Index()])
	}
}

// Count returns the number of cells whose value satisfies pred.
func (l *Layer[T]) Count(pred func(T) bool) int {
	n := 0
	for _, v := range l.cells {
		if pred(v) {
			n++
		}
	}
	return n
}

// Values returns a copy of the layer contents in row-major order.
func (l *Layer[T]) Values() []T {
	out := make([]T, Cells)
	copy(out, l.cells[:])
	return out
}

// Load replaces the layer contents from a row-major slice. It returns false
// when the slice length does not match the board.
func (l *Layer[T]) Load(values []T) bool {
	if len(values) != Cells {
		return false
	}
	copy(l.cells[:], values)
	return true
}

// Clone returns an independent copy of the layer.
func (l *Layer[T]) Clone() *Layer[T] {
	cp := *l
	return &cp
}
