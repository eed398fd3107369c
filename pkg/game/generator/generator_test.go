package generator

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"minebombers/pkg/engine/rng"
	"minebombers/pkg/engine/world"
	"minebombers/pkg/game/level"
)

func TestBordersAreMetalWall(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		g := RandomMap(rng.New(seed), MaxTreasures)
		for c := range world.AllCursors() {
			if c.IsBorder() && g.At(c) != level.MetalWall {
				t.Fatalf("seed %d: border cell %v = %v, want MetalWall", seed, c, g.At(c))
			}
		}
	}
}

func TestExactTreasureCount(t *testing.T) {
	src := rng.New(7)
	for n := 0; n <= MaxTreasures; n++ {
		g := RandomMap(src, n)
		if got := g.Count(level.State.IsTreasure); got != n {
			t.Fatalf("treasures = %d, want %d", got, n)
		}
	}
}

func TestTreasureCountIsClamped(t *testing.T) {
	g := RandomMap(rng.New(3), 500)
	if got := g.Count(level.State.IsTreasure); got != MaxTreasures {
		t.Errorf("treasures = %d, want %d", got, MaxTreasures)
	}
}

func TestGeneratedTerrain(t *testing.T) {
	g := RandomMap(rng.New(99), 0)

	if n := g.CountState(level.Passage); n != 0 {
		t.Errorf("%d plain passage cells left, want all re-skinned to sand", n)
	}
	if n := g.CountState(level.Stone1); n == 0 {
		t.Error("no stone generated")
	}
	gravel := g.CountState(level.LightGravel) + g.CountState(level.HeavyGravel)
	if gravel == 0 || gravel > 300 {
		t.Errorf("gravel cells = %d, want 1..300", gravel)
	}
}

func TestFinalizeMakesExactlyThreeHundredGravel(t *testing.T) {
	for seed := int64(1); seed <= 3; seed++ {
		b := &builder{grid: level.NewGrid(), src: rng.New(seed)}
		b.finalize()

		gravel := b.grid.CountState(level.LightGravel) + b.grid.CountState(level.HeavyGravel)
		if gravel != 300 {
			t.Errorf("seed %d: gravel cells = %d, want 300", seed, gravel)
		}
		if n := b.grid.Count(level.State.IsSand); n != world.Cells-300 {
			t.Errorf("seed %d: sand cells = %d, want %d", seed, n, world.Cells-300)
		}
	}
}

func TestTeleportPairsNeverShareACell(t *testing.T) {
	// no boulders, crates or medikits; one teleport pair whose second pad
	// first draws the cell of the first one
	src := rng.NewScript(0, 0, 0, 80, 5, 5, 5, 5, 6, 6, 0)
	b := &builder{grid: level.NewGrid(), src: src}

	b.placeExtras()

	if n := b.grid.CountState(level.Teleport); n != 2 {
		t.Fatalf("teleports = %d, want 2", n)
	}
	for _, c := range []world.Cursor{world.NewCursor(6, 6), world.NewCursor(7, 7)} {
		if s := b.grid.At(c); s != level.Teleport {
			t.Errorf("%v = %v, want Teleport", c, s)
		}
	}
}

func TestRandomOffsetStaysInside(t *testing.T) {
	src := rng.New(5)
	for coord := 1; coord < world.Rows-1; coord++ {
		for i := 0; i < 20; i++ {
			got := randomOffset(src, coord, world.Rows)
			if got < 1 || got > world.Rows-2 {
				t.Fatalf("randomOffset(%d) = %d outside interior", coord, got)
			}
		}
	}
	if got := randomOffset(src, 1, world.Cols); got != 2 {
		t.Errorf("randomOffset(1) = %d, want 2", got)
	}
	if got := randomOffset(src, world.Cols-2, world.Cols); got != world.Cols-3 {
		t.Errorf("randomOffset(%d) = %d, want %d", world.Cols-2, got, world.Cols-3)
	}
}

func TestPickRandomCoordGivesUp(t *testing.T) {
	b := &builder{grid: level.NewGrid(), src: rng.New(1)}
	c := b.pickRandomCoord(func(world.Cursor) bool { return false })
	if !world.IsValidPosition(c.Row, c.Col) {
		t.Errorf("pickRandomCoord returned %v off the board", c)
	}
}

func TestRandomTreasureWeights(t *testing.T) {
	if got := randomTreasure(rng.NewScript(0)); got != level.SmallPickaxe {
		t.Errorf("roll 0 = %v, want SmallPickaxe", got)
	}
	if got := randomTreasure(rng.NewScript(treasureWeightTotal - 1)); got != level.Diamond {
		t.Errorf("last roll = %v, want Diamond", got)
	}
	if got := randomTreasure(rng.NewScript(18)); got != level.LargePickaxe {
		t.Errorf("roll 18 = %v, want LargePickaxe", got)
	}
}

func TestGenerateEntrances(t *testing.T) {
	g := level.NewGrid()
	g.Fill(level.Stone1)
	// every run is the minimum length of 4
	GenerateEntrances(g, rng.NewScript(), 2)

	for i := 1; i <= 4; i++ {
		if g.At(world.NewCursor(1, i)) != level.Passage || g.At(world.NewCursor(i, 1)) != level.Passage {
			t.Errorf("top-left entrance not carved at step %d", i)
		}
		if g.At(world.NewCursor(world.Rows-2, world.Cols-1-i)) != level.Passage ||
			g.At(world.NewCursor(world.Rows-1-i, world.Cols-2)) != level.Passage {
			t.Errorf("bottom-right entrance not carved at step %d", i)
		}
	}
	if g.At(world.NewCursor(1, 5)) != level.Stone1 {
		t.Error("top-left run longer than drawn")
	}
	if g.At(world.NewCursor(1, world.Cols-2)) != level.Stone1 {
		t.Error("top-right corner carved for two players")
	}

	GenerateEntrances(g, rng.NewScript(), 4)
	if g.At(world.NewCursor(1, world.Cols-2)) != level.Passage {
		t.Error("top-right corner not carved for four players")
	}
	if g.At(world.NewCursor(world.Rows-2, 1)) != level.Passage {
		t.Error("bottom-left corner not carved for four players")
	}
}

func TestPrepareSinglePlayerKeepsOneExit(t *testing.T) {
	g := level.NewGrid()
	exits := []world.Cursor{world.NewCursor(2, 2), world.NewCursor(10, 10), world.NewCursor(30, 40)}
	for _, c := range exits {
		g.Set(c, level.Exit)
	}
	if err := PrepareSinglePlayer(g, rng.NewScript(1)); err != nil {
		t.Fatalf("PrepareSinglePlayer: %v", err)
	}
	if g.CountState(level.Exit) != 1 {
		t.Fatalf("exits = %d, want 1", g.CountState(level.Exit))
	}
	if g.At(exits[1]) != level.Exit {
		t.Errorf("kept exit at wrong cell")
	}

	if err := PrepareSinglePlayer(level.NewGrid(), rng.NewScript()); !errors.Is(err, ErrNoExit) {
		t.Errorf("error = %v, want ErrNoExit", err)
	}
}

func TestFileGeneratorFallsBack(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "broken.MNL")
	if err := os.WriteFile(bad, []byte("short"), 0o644); err != nil {
		t.Fatal(err)
	}
	gen := &FileGenerator{Path: bad}
	g := gen.Generate(rng.New(2), 10)
	if got := g.Count(level.State.IsTreasure); got != 10 {
		t.Errorf("fallback map treasures = %d, want 10", got)
	}

	good := filepath.Join(dir, "LEVEL3.MNL")
	want := level.NewGrid()
	want.Set(world.NewCursor(4, 4), level.Exit)
	if err := want.Save(good); err != nil {
		t.Fatal(err)
	}
	gen = &FileGenerator{Path: good}
	if got := gen.Generate(rng.New(2), 10); !got.Equal(want) {
		t.Error("file generator did not return the stored map")
	}

	loaded, err := LoadSinglePlayer(dir, 3, rng.New(1))
	if err != nil {
		t.Fatalf("LoadSinglePlayer: %v", err)
	}
	if loaded.CountState(level.Exit) != 1 {
		t.Error("single player level lost its exit")
	}
}
