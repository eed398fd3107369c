package world

import (
	"minebombers/pkg/engine/world"
	"minebombers/pkg/game/audio"
	"minebombers/pkg/game/level"
)

// expansion describes one wavefront effect. admit decides whether growth may
// enter cell c moving in direction dir.
type expansion struct {
	budget           int
	detonateContacts bool
	admit            func(w *World, s level.State, c world.Cursor, dir world.Direction) bool
	onAdmit          func(w *World, c world.Cursor)
	finalize         func(w *World, c world.Cursor)
}

var (
	explosivePlasticExpansion = expansion{
		budget:   50,
		admit:    admitPassable,
		finalize: func(w *World, c world.Cursor) { w.placePlastic(c, true) },
	}

	plasticExpansion = expansion{
		budget:   45,
		admit:    admitPassable,
		finalize: func(w *World, c world.Cursor) { w.placePlastic(c, false) },
	}

	diggerExpansion = expansion{
		budget:           75,
		detonateContacts: true,
		admit: func(_ *World, s level.State, _ world.Cursor, _ world.Direction) bool {
			return s.IsStone() || s.IsStoneCorner() || s == level.Boulder
		},
		finalize: func(w *World, c world.Cursor) { w.explodeCell(c, 10, true) },
	}

	napalmExpansion = expansion{
		budget:           75,
		detonateContacts: true,
		admit: func(_ *World, s level.State, _ world.Cursor, _ world.Direction) bool {
			return s.IsBurnable()
		},
		onAdmit:  func(w *World, c world.Cursor) { w.setHits(c, 0) },
		finalize: burn(220),
	}
)

func admitPassable(_ *World, s level.State, _ world.Cursor, _ world.Direction) bool {
	return s.IsPassable()
}

func burn(damage int) func(w *World, c world.Cursor) {
	return func(w *World, c world.Cursor) {
		w.setState(c, level.Passage)
		w.explodeCell(c, damage, true)
	}
}

// expand grows e outwards from origin pass by pass until a pass admits
// nothing or the budget is spent, then finalizes every reached cell.
// Explodables touched on the way are queued when the effect detonates them.
func (w *World) expand(origin world.Cursor, e expansion) {
	w.setState(origin, level.Passage)
	w.frontier.Set(origin, true)

	admitted := 0
	for admitted < e.budget {
		spread := false
		for c := range world.InteriorCursors() {
			if !w.frontier.At(c) {
				continue
			}
			for _, dir := range world.AllDirections() {
				n := c.To(dir)
				if w.frontier.At(n) || w.nextFrontier.At(n) {
					continue
				}
				s := w.state(n)
				if e.detonateContacts && s.IsExplodable() {
					w.enqueue(n)
				} else if e.admit(w, s, n, dir) {
					w.nextFrontier.Set(n, true)
					w.setState(n, level.Passage)
					w.scene.Redraw(n)
					admitted++
					spread = true
					if e.onAdmit != nil {
						e.onAdmit(w, n)
					}
				}
			}
		}
		if !spread {
			break
		}
		w.nextFrontier.ForEachCell(func(c world.Cursor, marked bool) {
			if marked {
				w.frontier.Set(c, true)
			}
		})
		w.nextFrontier.Fill(false)
	}

	var reached []world.Cursor
	w.frontier.ForEachCell(func(c world.Cursor, marked bool) {
		if marked {
			reached = append(reached, c)
		}
	})
	w.frontier.Fill(false)
	w.nextFrontier.Fill(false)

	for _, c := range reached {
		e.finalize(w, c)
	}
}

// placePlastic leaves plastic residue on c unless a player stands there.
func (w *World) placePlastic(c world.Cursor, explosive bool) {
	switch {
	case w.playerAt(c):
		w.setState(c, level.Passage)
		w.setTimer(c, 0)
	case explosive:
		w.setState(c, level.ExplosivePlastic)
		w.setHits(c, level.PlasticHits)
		w.setTimer(c, 250)
	default:
		w.setState(c, level.Plastic)
		w.setHits(c, level.PlasticHits)
		w.setTimer(c, 0)
	}
	w.scene.Redraw(c)
}

func (w *World) playerAt(c world.Cursor) bool {
	for _, p := range w.actors.Positions() {
		if p.Index < w.actors.Players() && p.Cursor == c {
			return true
		}
	}
	return false
}

// FireFlamethrower shoots a cone of fire from `from` in direction dir. The
// flame starts on the next cell when fire can pass it, otherwise on `from`.
func (w *World) FireFlamethrower(from world.Cursor, dir world.Direction) {
	w.play(audio.Explos4, audio.NormalFrequency, from)

	start := from
	if next := from.To(dir); w.state(next).IsFlamePassable() {
		start = next
	}

	e := expansion{
		budget:           30,
		detonateContacts: true,
		admit: func(_ *World, s level.State, c world.Cursor, growth world.Direction) bool {
			return s.IsFlamePassable() && inFlameCone(start, dir, c, growth)
		},
		finalize: burn(34),
	}

	w.chain = 0
	w.expand(start, e)
	w.drain()
}

// inFlameCone reports whether growth in direction growth into c stays inside
// the cone of a flame fired from start towards dir. Growth along the firing
// direction is always allowed and growth back towards the shooter never is.
// Sideways growth needs the sideways distance of c from start to be at least
// twice its distance along the firing axis.
func inFlameCone(start world.Cursor, dir world.Direction, c world.Cursor, growth world.Direction) bool {
	switch growth {
	case dir:
		return true
	case dir.Opposite():
		return false
	}
	rows, cols := world.Distance(start, c)
	along, perp := cols, rows
	if dir.IsVertical() {
		along, perp = rows, cols
	}
	return perp >= 2*along
}
