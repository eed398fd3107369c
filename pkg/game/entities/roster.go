package entities

import (
	"minebombers/pkg/engine/rng"
	"minebombers/pkg/engine/world"
	"minebombers/pkg/game/level"
)

// Spawn corners, matching the entrances carved by the generator.
var (
	SpawnTopLeft     = world.Cursor{Row: 1, Col: 1}
	SpawnBottomRight = world.Cursor{Row: world.Rows - 2, Col: world.Cols - 2}
	SpawnBottomLeft  = world.Cursor{Row: world.Rows - 2, Col: 1}
	SpawnTopRight    = world.Cursor{Row: 1, Col: world.Cols - 2}
)

// Position is a read-only view of one actor.
type Position struct {
	Index  int
	Cursor world.Cursor
	Facing world.Direction
	Kind   Kind
	Player int
	Health int
	Dead   bool
}

// DamageResult reports the outcome of damaging one actor.
type DamageResult struct {
	Health int
	Died   bool // the actor died from this hit
}

// Roster holds every actor of a round. Players come first, so the actor index
// of a player equals its player index.
type Roster struct {
	actors  []*Actor
	players int
}

// NewRoster creates the players of a round at their spawn corners. Which
// corner pair a player gets is decided by coin flips.
func NewRoster(players int, src rng.Source) *Roster {
	r := &Roster{players: players}
	spawns := []world.Cursor{SpawnTopLeft}
	if players > 1 {
		if rng.Bool(src) {
			spawns = []world.Cursor{SpawnTopLeft, SpawnBottomRight}
		} else {
			spawns = []world.Cursor{SpawnBottomRight, SpawnTopLeft}
		}
	}
	switch {
	case players == 3 && rng.Bool(src):
		spawns = append(spawns, SpawnBottomLeft)
	case players == 3:
		spawns = append(spawns, SpawnTopRight)
	case players == 4 && rng.Bool(src):
		spawns = append(spawns, SpawnBottomLeft, SpawnTopRight)
	case players == 4:
		spawns = append(spawns, SpawnTopRight, SpawnBottomLeft)
	}

	for i := 0; i < players; i++ {
		r.actors = append(r.actors, &Actor{
			Kind:      KindPlayer,
			Pos:       spawns[i],
			Facing:    world.East,
			Health:    PlayerHealth,
			MaxHealth: PlayerHealth,
			Player:    i,
		})
	}
	return r
}

// SpawnMonsters turns every monster marker on the grid into an actor and
// clears the marker to passage.
func (r *Roster) SpawnMonsters(g *level.Grid) {
	for c := range world.AllCursors() {
		kind, facing, ok := MonsterFromState(g.At(c))
		if !ok {
			continue
		}
		r.Add(&Actor{
			Kind:      kind,
			Pos:       c,
			Facing:    facing,
			Health:    kind.InitialHealth(),
			MaxHealth: kind.InitialHealth(),
			Player:    -1,
		})
		g.Set(c, level.Passage)
	}
}

// Add appends an actor and returns its index.
func (r *Roster) Add(a *Actor) int {
	r.actors = append(r.actors, a)
	return len(r.actors) - 1
}

// Players returns the number of players in the round.
func (r *Roster) Players() int {
	return r.players
}

// Actor returns the actor at index i, or nil if out of range.
func (r *Roster) Actor(i int) *Actor {
	if i < 0 || i >= len(r.actors) {
		return nil
	}
	return r.actors[i]
}

// Len returns the number of actors.
func (r *Roster) Len() int {
	return len(r.actors)
}

// Positions returns a snapshot of every actor.
func (r *Roster) Positions() []Position {
	out := make([]Position, len(r.actors))
	for i, a := range r.actors {
		out[i] = Position{
			Index:  i,
			Cursor: a.Pos,
			Facing: a.Facing,
			Kind:   a.Kind,
			Player: a.Player,
			Health: a.Health,
			Dead:   a.Dead,
		}
	}
	return out
}

// ApplyDamage lowers the health of actor i, never below zero. An actor whose
// health reaches zero is marked dead; Died is only set on that first hit.
func (r *Roster) ApplyDamage(i, damage int) DamageResult {
	a := r.Actor(i)
	if a == nil {
		return DamageResult{}
	}
	a.Health = max(0, a.Health-damage)
	res := DamageResult{Health: a.Health}
	if a.Health == 0 && !a.Dead {
		a.Dead = true
		res.Died = true
	}
	return res
}

// AlivePlayers returns how many players are still alive.
func (r *Roster) AlivePlayers() int {
	n := 0
	for _, a := range r.actors[:r.players] {
		if !a.Dead {
			n++
		}
	}
	return n
}
