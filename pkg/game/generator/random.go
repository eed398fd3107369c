package generator

import (
	"minebombers/pkg/engine/rng"
	"minebombers/pkg/engine/world"
	"minebombers/pkg/game/level"
)

// RandomGenerator builds a stone field with sand, gravel, treasures and
// scattered extras, surrounded by metal wall.
type RandomGenerator struct{}

// Name returns the name of this generator
func (g *RandomGenerator) Name() string {
	return "Random"
}

// Generate creates a new random map. treasures is clamped to [0, MaxTreasures].
func (g *RandomGenerator) Generate(src rng.Source, treasures int) *level.Grid {
	return RandomMap(src, treasures)
}

// RandomMap creates a new random map. Entrances are not carved; see GenerateEntrances.
func RandomMap(src rng.Source, treasures int) *level.Grid {
	treasures = max(0, min(treasures, MaxTreasures))

	b := &builder{grid: level.NewGrid(), src: src}
	b.placeStone()
	b.finalize()
	b.placeTreasures(treasures)
	b.placeExtras()
	b.placeBorders()
	return b.grid
}

type builder struct {
	grid *level.Grid
	src  rng.Source
}

// stoneTemplates are the shapes stamped around a chunk anchor as (row, col)
// offsets. Shape 8 is a ring without its centre; shapes 6 and 7 are the same.
var stoneTemplates = [10][][2]int{
	{{0, 0}},
	{{0, 0}, {1, 0}},
	{{0, 0}, {-1, 0}},
	{{0, 0}, {0, 1}},
	{{0, 0}, {-1, 0}, {1, 0}},
	{{0, 0}, {-1, 0}, {1, 0}, {0, -1}},
	{{0, 0}, {-1, 0}, {1, 0}, {0, -1}, {0, 1}},
	{{0, 0}, {-1, 0}, {1, 0}, {0, -1}, {0, 1}},
	{{-1, 0}, {1, 0}, {0, -1}, {-1, -1}, {1, 1}, {1, -1}, {-1, 1}},
	{{0, 0}, {-1, 0}, {1, 0}, {0, -1}, {0, 1}, {-1, -1}, {1, 1}, {1, -1}, {-1, 1}},
}

func (b *builder) placeStone() {
	chunks := rng.Range(b.src, 29, 40)
	for i := 0; i < chunks; i++ {
		b.placeStoneChunk()
	}
}

func (b *builder) placeStoneChunk() {
	col := rng.Range(b.src, 1, world.Cols-1)
	row := rng.Range(b.src, 1, world.Rows-1)
	for {
		for _, off := range stoneTemplates[b.src.Intn(len(stoneTemplates))] {
			b.grid.Set(world.NewCursor(row+off[0], col+off[1]), level.Stone1)
		}

		if b.src.Intn(100) > rng.Range(b.src, 93, 103) {
			return
		}

		row = randomOffset(b.src, row, world.Rows)
		col = randomOffset(b.src, col, world.Cols)
	}
}

// randomOffset nudges a chunk anchor by -1, 0 or +1, pushing it back inward
// when it gets within two cells of the border.
func randomOffset(src rng.Source, coord, limit int) int {
	switch {
	case coord < 2:
		return coord + 1
	case coord >= limit-2:
		return coord - 1
	default:
		return coord + 1 - src.Intn(3)
	}
}

// neighbours returns the states right, down, left and up of c.
func (b *builder) neighbours(c world.Cursor) (right, down, left, up level.State) {
	return b.grid.At(c.To(world.East)), b.grid.At(c.To(world.South)),
		b.grid.At(c.To(world.West)), b.grid.At(c.To(world.North))
}

// corner picks a rounded corner variant from which two of the four
// neighbours are solid. It returns false if the pattern matches no corner.
func corner(right, down, left, up bool) (level.State, bool) {
	switch {
	case right && down && !left && !up:
		return level.StoneTopLeft, true
	case right && !down && !left && up:
		return level.StoneBottomLeft, true
	case !right && down && left && !up:
		return level.StoneTopRight, true
	case !right && !down && left && up:
		return level.StoneBottomRight, true
	}
	return 0, false
}

func (b *builder) finalize() {
	g := b.grid

	// lonely stones become boulders
	for c := range world.InteriorCursors() {
		right, down, left, up := b.neighbours(c)
		if g.At(c).IsStoneLike() && right == level.Passage && down == level.Passage &&
			left == level.Passage && up == level.Passage {
			g.Set(c, level.Boulder)
		}
	}

	// empty cells tucked between two stones get a corner piece
	for c := range world.InteriorCursors() {
		if g.At(c) != level.Passage {
			continue
		}
		right, down, left, up := b.neighbours(c)
		if right != level.Stone1 && right != level.Passage ||
			down != level.Stone1 && down != level.Passage ||
			left != level.Stone1 && left != level.Passage ||
			up != level.Stone1 && up != level.Passage {
			continue
		}
		if s, ok := corner(right == level.Stone1, down == level.Stone1, left == level.Stone1, up == level.Stone1); ok {
			g.Set(c, s)
		}
	}

	// stone with two open sides gets rounded
	for c := range world.InteriorCursors() {
		if g.At(c) != level.Stone1 {
			continue
		}
		right, down, left, up := b.neighbours(c)
		if !oneOf(right) || !oneOf(down) || !oneOf(left) || !oneOf(up) {
			continue
		}
		if s, ok := corner(right.IsStoneLike(), down.IsStoneLike(), left.IsStoneLike(), up.IsStoneLike()); ok {
			g.Set(c, s)
		}
	}

	// textures
	stones := [...]level.State{level.Stone1, level.Stone2, level.Stone3, level.Stone4}
	sands := [...]level.State{level.Sand1, level.Sand2, level.Sand3}
	for c := range world.AllCursors() {
		switch g.At(c) {
		case level.Stone1:
			g.Set(c, stones[b.src.Intn(len(stones))])
		case level.Passage:
			g.Set(c, sands[b.src.Intn(len(sands))])
		}
	}

	for i := 0; i < 300; i++ {
		c := b.pickRandomCoord(func(c world.Cursor) bool { return g.At(c).IsSand() })
		if rng.Bool(b.src) {
			g.Set(c, level.LightGravel)
		} else {
			g.Set(c, level.HeavyGravel)
		}
	}
}

// oneOf reports whether a neighbour takes part in corner rounding at all:
// it must be either open passage or some kind of stone.
func oneOf(s level.State) bool {
	return s == level.Passage || s.IsStoneLike()
}

func (b *builder) randomCoord() world.Cursor {
	col := rng.Range(b.src, 1, world.Cols-1)
	row := rng.Range(b.src, 1, world.Rows-1)
	return world.NewCursor(row, col)
}

// pickRandomCoord scans row-major from a random interior cell for a cell
// matching pred, restarting from a fresh random cell when the scan runs off
// the bottom of the board. After one board's worth of steps it gives up and
// returns wherever the scan stopped.
func (b *builder) pickRandomCoord(pred func(world.Cursor) bool) world.Cursor {
	c := b.randomCoord()
	for i := 0; i < world.Cells; i++ {
		if pred(c) {
			break
		}
		if c.Col < world.Cols-1 {
			c.Col++
		} else {
			c.Col = 0
			c.Row++
		}
		if c.Row > world.Rows-1 {
			c = b.randomCoord()
		}
	}
	return c
}

func (b *builder) placeBorders() {
	for row := 0; row < world.Rows; row++ {
		b.grid.Set(world.NewCursor(row, 0), level.MetalWall)
		b.grid.Set(world.NewCursor(row, world.Cols-1), level.MetalWall)
	}
	for col := 0; col < world.Cols; col++ {
		b.grid.Set(world.NewCursor(0, col), level.MetalWall)
		b.grid.Set(world.NewCursor(world.Rows-1, col), level.MetalWall)
	}
}
