package world

// ViewDistance is how far a view ray reaches ahead of the viewer along each axis.
const ViewDistance = 20

// Fog tracks which cells are still hidden from the players.
type Fog struct {
	hidden Layer[bool]
}

// NewFog creates a fog layer with every cell hidden.
func NewFog() *Fog {
	f := &Fog{}
	f.hidden.Fill(true)
	return f
}

// IsHidden reports whether the cell has not been revealed yet.
func (f *Fog) IsHidden(c Cursor) bool {
	return f.hidden.At(c)
}

// Reveal clears the fog bit of a cell. It returns true if the cell was hidden.
func (f *Fog) Reveal(c Cursor) bool {
	if !f.hidden.At(c) {
		return false
	}
	f.hidden.Set(c, false)
	return true
}

// RevealAll clears the whole fog layer.
func (f *Fog) RevealAll() {
	f.hidden.Fill(false)
}

// HiddenCount returns the number of cells still hidden.
func (f *Fog) HiddenCount() int {
	return f.hidden.Count(func(h bool) bool { return h })
}

// CastRay reveals cells on the Bresenham line from `from` to `target`. The ray
// stops after the first cell that seeThrough rejects; that cell is still revealed.
// Newly revealed cells are reported to onReveal, which may be nil.
func (f *Fog) CastRay(from, target Cursor, seeThrough func(Cursor) bool, onReveal func(Cursor)) {
	dRows, dCols := Distance(from, target)

	// x walks the longer axis, y the shorter one
	vertical := dRows > dCols
	deltaX, deltaY := dCols, dRows
	if vertical {
		deltaX, deltaY = dRows, dCols
	}

	slopeError := 2*deltaY - deltaX
	y := 0
	for x := 0; x <= deltaX; x++ {
		rowStep, colStep := y, x
		if vertical {
			rowStep, colStep = x, y
		}
		current := Cursor{
			Row: towards(from.Row, target.Row, rowStep),
			Col: towards(from.Col, target.Col, colStep),
		}

		if f.Reveal(current) && onReveal != nil {
			onReveal(current)
		}
		if !seeThrough(current) {
			break
		}

		if slopeError > 0 {
			y++
			slopeError -= 2 * deltaX
		}
		slopeError += 2 * deltaY
	}
}

// RevealView casts a fan of rays from the viewer towards the edge of a square
// in front of it, 2*ViewDistance+1 cells wide.
func (f *Fog) RevealView(from Cursor, facing Direction, seeThrough func(Cursor) bool, onReveal func(Cursor)) {
	var start Cursor
	var sweep Direction
	switch facing {
	case West:
		start, sweep = from.OffsetClamp(-ViewDistance, -ViewDistance), South
	case North:
		start, sweep = from.OffsetClamp(-ViewDistance, -ViewDistance), East
	case East:
		start, sweep = from.OffsetClamp(-ViewDistance, ViewDistance), South
	default:
		start, sweep = from.OffsetClamp(ViewDistance, -ViewDistance), East
	}

	target := start
	for i := 0; i <= 2*ViewDistance; i++ {
		f.CastRay(from, target, seeThrough, onReveal)
		target = target.To(sweep)
	}
}

// towards moves `delta` steps from `from` in the direction of `to`.
func towards(from, to, delta int) int {
	if to < from {
		return from - delta
	}
	return from + delta
}
