package world

import (
	"minebombers/pkg/engine/world"
	"minebombers/pkg/game/level"
)

// Tick advances the round by one frame: timers count down, fuses burn and
// anything whose timer runs out is detonated.
func (w *World) Tick() {
	w.flash = false
	w.tickTimers()
	if w.shake > 0 {
		w.shake--
	}
	w.trackEndOfRound()
	w.round++
}

// endOfRoundLimit is the counter value past which the round is over.
const endOfRoundLimit = 100

// trackEndOfRound advances the end-of-round counter. A single player that
// died, or a multiplayer round with fewer than two survivors, winds the round
// down over a few seconds; so does a multiplayer board with no gold left.
func (w *World) trackEndOfRound() {
	players := w.actors.Players()
	if w.round%5 == 0 {
		alive := w.alivePlayers()
		switch {
		case players == 1 && alive == 0:
			w.endCounter += 2
		case players > 1 && alive < 2:
			w.endCounter += 3
		}
	}
	if w.round%20 == 0 && players > 1 && w.GoldRemaining() == 0 {
		w.endCounter += 20
	}
}

func (w *World) alivePlayers() int {
	n := 0
	for _, p := range w.actors.Positions() {
		if p.Player >= 0 && !p.Dead {
			n++
		}
	}
	return n
}

// Exit ends the round early, as when the single player walks out through an exit.
func (w *World) Exit() {
	w.exited = true
}

// IsEndOfRound reports whether the round has finished
func (w *World) IsEndOfRound() bool {
	return w.exited || w.endCounter > endOfRoundLimit
}

func (w *World) tickTimers() {
	for c := range world.AllCursors() {
		clock := int(w.maps.Timer.At(c))
		switch {
		case clock == 0:
		case clock == 1:
			w.setTimer(c, 0)
			if out, ok := w.fuseWentOut(w.state(c)); ok {
				w.setState(c, out)
				w.scene.Redraw(c)
			} else {
				w.Detonate(c, 0)
			}
		default:
			w.setTimer(c, clock-1)
			if next, ok := fuseAnimation(w.state(c), clock); ok {
				w.setState(c, next)
				w.scene.Redraw(c)
			}
		}
	}
}

// fuseWentOut gives a burnt-down bomb a small chance to fizzle instead of exploding.
func (w *World) fuseWentOut(s level.State) (level.State, bool) {
	var out level.State
	switch s {
	case level.SmallBomb3:
		out = level.SmallBombExtinguished
	case level.BigBomb3:
		out = level.BigBombExtinguished
	case level.Dynamite3:
		out = level.DynamiteExtinguished
	case level.Napalm1, level.Napalm2:
		out = level.NapalmExtinguished
	default:
		return s, false
	}
	if w.src.Intn(1000) <= 10 {
		return out, true
	}
	return s, false
}

// fuseAnimation returns the next animation frame of a burning item given the
// timer value before the decrement.
func fuseAnimation(s level.State, clock int) (level.State, bool) {
	switch {
	case s == level.SmallBomb1 && clock <= 60:
		return level.SmallBomb2, true
	case s == level.SmallBomb2 && clock <= 30:
		return level.SmallBomb3, true
	case s == level.BigBomb1 && clock <= 60:
		return level.BigBomb2, true
	case s == level.BigBomb2 && clock <= 30:
		return level.BigBomb3, true
	case s == level.Dynamite1 && clock <= 40:
		return level.Dynamite2, true
	case s == level.Dynamite2 && clock <= 20:
		return level.Dynamite3, true
	case s == level.Napalm1:
		return level.Napalm2, true
	case s == level.Napalm2:
		return level.Napalm1, true
	case s == level.Atomic1:
		return level.Atomic2, true
	case s == level.Atomic2:
		return level.Atomic3, true
	case s == level.Atomic3:
		return level.Atomic1, true
	}
	return s, false
}
