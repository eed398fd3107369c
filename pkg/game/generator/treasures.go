package generator

import (
	"github.com/zyedidia/generic/mapset"

	"minebombers/pkg/engine/rng"
	"minebombers/pkg/engine/world"
	"minebombers/pkg/game/level"
)

// treasuresInStone is how many treasures are buried in stone before the rest
// are scattered at random.
const treasuresInStone = 20

var treasureTable = []struct {
	state  level.State
	weight int
}{
	{level.SmallPickaxe, 18},
	{level.LargePickaxe, 12},
	{level.Drill, 8},
	{level.GoldShield, 200},
	{level.GoldEgg, 200},
	{level.GoldPileCoins, 200},
	{level.GoldBracelet, 200},
	{level.GoldBar, 200},
	{level.GoldCross, 180},
	{level.GoldScepter, 160},
	{level.GoldRubin, 140},
	{level.GoldCrown, 80},
	{level.Diamond, 3},
}

var treasureWeightTotal = func() int {
	total := 0
	for _, t := range treasureTable {
		total += t.weight
	}
	return total
}()

// randomTreasure draws one entry from the weighted treasure table.
func randomTreasure(src rng.Source) level.State {
	roll := src.Intn(treasureWeightTotal)
	for _, t := range treasureTable {
		if roll < t.weight {
			return t.state
		}
		roll -= t.weight
	}
	return treasureTable[len(treasureTable)-1].state
}

// placeTreasures puts exactly n treasures on interior cells. The first ones go
// into stone; the remainder land anywhere that is not already a treasure.
func (b *builder) placeTreasures(n int) {
	occupied := mapset.New[world.Cursor]()
	for i := 0; i < n; i++ {
		item := randomTreasure(b.src)

		c, ok := world.Cursor{}, false
		if i < treasuresInStone {
			c = b.pickRandomCoord(func(c world.Cursor) bool {
				return !c.IsBorder() && b.grid.At(c).IsStone()
			})
			ok = !c.IsBorder() && !occupied.Has(c)
		}
		if !ok {
			c = b.freeCoord(occupied)
		}

		b.grid.Set(c, item)
		occupied.Put(c)
	}
}

// freeCoord draws random interior cells until one is not in taken. It falls
// back to a row-major scan if the draws keep colliding.
func (b *builder) freeCoord(taken mapset.Set[world.Cursor]) world.Cursor {
	for i := 0; i < world.Cells; i++ {
		c := b.randomCoord()
		if !taken.Has(c) {
			return c
		}
	}
	for c := range world.InteriorCursors() {
		if !taken.Has(c) {
			return c
		}
	}
	return b.randomCoord()
}

// placeExtras scatters boulders, weapon crates, medikits and teleport pairs.
// Each category keeps placing while a biased coin keeps coming up, and never
// covers a treasure. Teleport pads are kept too, so a pair never shares a cell.
func (b *builder) placeExtras() {
	kept := mapset.New[world.Cursor]()
	for c := range world.InteriorCursors() {
		if b.grid.At(c).IsTreasure() {
			kept.Put(c)
		}
	}

	for b.src.Intn(100) > 70 {
		b.grid.Set(b.freeCoord(kept), level.Boulder)
	}
	for b.src.Intn(100) > 70 {
		b.grid.Set(b.freeCoord(kept), level.WeaponsCrate)
	}
	for b.src.Intn(100) > 65 {
		b.grid.Set(b.freeCoord(kept), level.Medikit)
	}
	for b.src.Intn(100) > 70 {
		for range 2 {
			c := b.freeCoord(kept)
			b.grid.Set(c, level.Teleport)
			kept.Put(c)
		}
	}
}
