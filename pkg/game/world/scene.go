package world

import "minebombers/pkg/engine/world"

// Splatter is the kind of decoration left next to a corpse
type Splatter int

const (
	SplatterBlood Splatter = iota
	SplatterSlime
)

// Scene receives notifications about cells and players that need to be
// redrawn. Calls must return immediately.
type Scene interface {
	Redraw(c world.Cursor)
	Splatter(c world.Cursor, dir world.Direction, kind Splatter)
	MarkBurnedBorder(c world.Cursor)
	PlayerHealthChanged(player int)
}

// NopScene ignores every notification
type NopScene struct{}

func (NopScene) Redraw(world.Cursor) {}
func (NopScene) Splatter(world.Cursor, world.Direction, Splatter) {}
func (NopScene) MarkBurnedBorder(world.Cursor) {}
func (NopScene) PlayerHealthChanged(int) {}
