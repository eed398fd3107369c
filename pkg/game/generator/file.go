package generator

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"

	"minebombers/pkg/engine/rng"
	"minebombers/pkg/engine/world"
	"minebombers/pkg/game/level"
)

// ErrNoExit is returned when a single-player level has no exit cell.
var ErrNoExit = errors.New("level has no exit")

// FileGenerator loads a persisted map and falls back to another generator
// when the file cannot be used.
type FileGenerator struct {
	Path     string
	Fallback MapGenerator
}

// Name returns the name of this generator
func (g *FileGenerator) Name() string {
	return "File " + filepath.Base(g.Path)
}

// Generate loads the map file. Load failures are logged and the fallback
// generator (Random when unset) builds the map instead.
func (g *FileGenerator) Generate(src rng.Source, treasures int) *level.Grid {
	grid, err := level.Load(g.Path)
	if err == nil {
		return grid
	}
	fallback := g.Fallback
	if fallback == nil {
		fallback = Random
	}
	log.Printf("map %s unusable, using %s generator: %v", g.Path, fallback.Name(), err)
	return fallback.Generate(src, treasures)
}

// LevelPath returns the file name of a single-player level for a round.
func LevelPath(dir string, round int) string {
	return filepath.Join(dir, fmt.Sprintf("LEVEL%d.MNL", round))
}

// LoadSinglePlayer loads the level for a round and keeps one of its exits.
func LoadSinglePlayer(dir string, round int, src rng.Source) (*level.Grid, error) {
	grid, err := level.Load(LevelPath(dir, round))
	if err != nil {
		return nil, err
	}
	if err := PrepareSinglePlayer(grid, src); err != nil {
		return nil, fmt.Errorf("level %d: %w", round, err)
	}
	return grid, nil
}

// PrepareSinglePlayer keeps one randomly chosen exit and turns every other
// exit into passage.
func PrepareSinglePlayer(grid *level.Grid, src rng.Source) error {
	exits := grid.CountState(level.Exit)
	if exits == 0 {
		return ErrNoExit
	}
	selected := src.Intn(exits)
	idx := 0
	for c := range world.AllCursors() {
		if grid.At(c) != level.Exit {
			continue
		}
		if idx != selected {
			grid.Set(c, level.Passage)
		}
		idx++
	}
	return nil
}
