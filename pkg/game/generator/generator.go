package generator

import (
	"minebombers/pkg/engine/rng"
	"minebombers/pkg/game/level"
)

// MaxTreasures is the largest treasure count a generated map supports.
const MaxTreasures = 75

// MapGenerator is an interface for map sources
type MapGenerator interface {
	Generate(src rng.Source, treasures int) *level.Grid
	Name() string
}

// Available generators
var (
	Random = &RandomGenerator{}
)

// DefaultGenerator is the default map generator
var DefaultGenerator MapGenerator = Random
