package generator

import (
	"minebombers/pkg/engine/rng"
	"minebombers/pkg/engine/world"
	"minebombers/pkg/game/level"
)

// GenerateEntrances carves short passages along the border at the spawn
// corners. The top-left and bottom-right corners are always opened; the other
// two only for games with more than two players.
func GenerateEntrances(g *level.Grid, src rng.Source, players int) {
	const (
		top    = 1
		bottom = world.Rows - 2
		left   = 1
		right  = world.Cols - 2
	)
	run := func() int { return rng.Range(src, 4, 10) }
	carve := func(row, col int) { g.Set(world.NewCursor(row, col), level.Passage) }

	// top left
	for n, i := run(), 1; i <= n; i++ {
		carve(top, i)
	}
	for n, i := run(), 1; i <= n; i++ {
		carve(i, left)
	}

	// bottom right
	for n, i := run(), 1; i <= n; i++ {
		carve(bottom, world.Cols-1-i)
	}
	for n, i := run(), 1; i <= n; i++ {
		carve(world.Rows-1-i, right)
	}

	if players <= 2 {
		return
	}

	// top right
	for n, i := run(), 1; i <= n; i++ {
		carve(top, world.Cols-1-i)
	}
	for n, i := run(), 1; i <= n; i++ {
		carve(i, right)
	}

	// bottom left
	for n, i := run(), 1; i <= n; i++ {
		carve(bottom, i)
	}
	for n, i := run(), 1; i <= n; i++ {
		carve(world.Rows-1-i, left)
	}
}
