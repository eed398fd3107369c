package level

import (
	"minebombers/pkg/engine/rng"
	"minebombers/pkg/engine/world"
)

// Hit points of freshly placed items and grown biomass.
const (
	MetalWallHits = 30000
	BiomassHits   = 400
	PlasticHits   = 400
	ItemHits      = 20
)

// Map is the full per-round board: cell states plus the integrity, timer and
// fog layers that run alongside them.
type Map struct {
	Level *Grid
	Hits  *world.Layer[int32]
	Timer *world.Layer[uint16]
	Fog   *world.Fog
}

// NewMap builds the round layers for a grid. Integrity comes from the
// material of each cell, biomass gets a random regrowth countdown and the
// whole board starts hidden.
func NewMap(g *Grid, src rng.Source) *Map {
	m := &Map{
		Level: g,
		Hits:  world.NewLayer[int32](),
		Timer: world.NewLayer[uint16](),
		Fog:   world.NewFog(),
	}
	for c := range world.AllCursors() {
		s := g.At(c)
		m.Hits.Set(c, DefaultHits(s))
		if s == Biomass {
			m.Timer.Set(c, uint16(src.Intn(30)))
		}
	}
	return m
}

// DefaultHits returns the integrity a cell of the given material starts with.
func DefaultHits(s State) int32 {
	switch s {
	case MetalWall:
		return MetalWallHits
	case Sand1:
		return 22
	case Sand2:
		return 23
	case Sand3:
		return 24
	case LightGravel:
		return 108
	case HeavyGravel:
		return 347
	case StoneTopLeft, StoneTopRight, StoneBottomRight, StoneBottomLeft:
		return 1227
	case Boulder:
		return 24
	case Stone1:
		return 2000
	case Stone2:
		return 2150
	case Stone3:
		return 2200
	case Stone4:
		return 2100
	case Plastic, Biomass:
		return 400
	case StoneLightCracked:
		return 1000
	case StoneHeavyCracked:
		return 500
	case Brick:
		return 8000
	case BrickLightCracked:
		return 4000
	case BrickHeavyCracked:
		return 2000
	}
	return 0
}
