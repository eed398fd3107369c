package devtools

import (
	"minebombers/pkg/engine/world"
	"minebombers/pkg/game/entities"
	"minebombers/pkg/game/level"
)

// showcase groups, in the order they are laid out
var showcaseGroups = []func(level.State) bool{
	func(s level.State) bool {
		return s == level.Passage || s == level.MetalWall || s.IsSand() || s == level.LightGravel ||
			s == level.HeavyGravel || s.IsStoneLike() || s == level.Boulder || s.IsBrickLike()
	},
	func(s level.State) bool {
		_, _, ok := entities.MonsterFromState(s)
		return ok
	},
	level.State.IsBomb,
	level.State.IsExplodable,
	func(s level.State) bool { return s.IsTreasure() || s.GoldValue() > 0 },
	func(level.State) bool { return true },
}

// DevMap builds a board holding every named cell state once, for checking
// how each one is drawn and how it reacts to blasts. States are placed with
// a margin between them, grouped by kind in rows.
func DevMap() *level.Grid {
	g := level.NewGrid()
	for c := range world.AllCursors() {
		if c.IsBorder() {
			g.Set(c, level.MetalWall)
		}
	}

	const margin = 2
	placed := map[level.State]bool{}
	row, col := 2, 2
	for _, inGroup := range showcaseGroups {
		placedAny := false
		for code := 0; code < 256; code++ {
			s := level.State(code)
			if s.IsReserved() || placed[s] || !inGroup(s) {
				continue
			}
			if col >= world.Cols-2 {
				row += margin + 1
				col = 2
			}
			g.Set(world.NewCursor(row, col), s)
			placed[s] = true
			col += margin + 1
			placedAny = true
		}
		if placedAny {
			row += margin + 1
			col = 2
		}
	}
	return g
}
