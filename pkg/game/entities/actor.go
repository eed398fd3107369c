package entities

import (
	"minebombers/pkg/engine/world"
	"minebombers/pkg/game/level"
)

// Kind represents the type of an actor
type Kind int

const (
	KindPlayer    Kind = iota // Human-controlled digger
	KindFurry                 // Fast, weak monster
	KindGrenadier             // Slow monster that throws grenades
	KindSlime                 // Leaves slime instead of blood
	KindAlien                 // Tough monster
)

// String returns the display name of the kind
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "Player"
	case KindFurry:
		return "Furry"
	case KindGrenadier:
		return "Grenadier"
	case KindSlime:
		return "Slime"
	case KindAlien:
		return "Alien"
	default:
		return "Unknown"
	}
}

// InitialHealth returns the health a monster of this kind spawns with.
// Players start with PlayerHealth.
func (k Kind) InitialHealth() int {
	switch k {
	case KindFurry, KindGrenadier:
		return 29
	case KindSlime:
		return 10
	case KindAlien:
		return 66
	default:
		return PlayerHealth
	}
}

// PlayerHealth is the base health of a player without armor.
const PlayerHealth = 100

// Actor is a player or monster standing on the board
type Actor struct {
	Kind      Kind
	Pos       world.Cursor
	Facing    world.Direction
	Health    int
	MaxHealth int
	Player    int // player index, or -1 for monsters
	Dead      bool
}

// monsterStates maps the monster markers found in map files to the monster they spawn.
var monsterStates = map[level.State]struct {
	kind   Kind
	facing world.Direction
}{
	level.FurryRight:     {KindFurry, world.East},
	level.FurryLeft:      {KindFurry, world.West},
	level.FurryUp:        {KindFurry, world.North},
	level.FurryDown:      {KindFurry, world.South},
	level.GrenadierRight: {KindGrenadier, world.East},
	level.GrenadierLeft:  {KindGrenadier, world.West},
	level.GrenadierUp:    {KindGrenadier, world.North},
	level.GrenadierDown:  {KindGrenadier, world.South},
	level.SlimeRight:     {KindSlime, world.East},
	level.SlimeLeft:      {KindSlime, world.West},
	level.SlimeUp:        {KindSlime, world.North},
	level.SlimeDown:      {KindSlime, world.South},
	level.AlienRight:     {KindAlien, world.East},
	level.AlienLeft:      {KindAlien, world.West},
	level.AlienUp:        {KindAlien, world.North},
	level.AlienDown:      {KindAlien, world.South},
}

// MonsterFromState returns the monster a map cell spawns, if any.
func MonsterFromState(s level.State) (Kind, world.Direction, bool) {
	m, ok := monsterStates[s]
	return m.kind, m.facing, ok
}
