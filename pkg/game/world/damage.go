package world

import (
	"minebombers/pkg/engine/world"
	"minebombers/pkg/game/audio"
	"minebombers/pkg/game/entities"
	"minebombers/pkg/game/level"
)

// applyDamageInCell hurts every actor standing on c and reports whether any
// of them was alive before the hit. Actors left without health turn the cell
// into a dying animation, or straight into a corpse when damage is zero.
func (w *World) applyDamageInCell(c world.Cursor, damage int) bool {
	foundAlive := false
	multiplayer := w.actors.Players() > 1
	for _, p := range w.actors.Positions() {
		if p.Cursor != c {
			continue
		}

		effective := damage
		if p.Kind == entities.KindPlayer && multiplayer {
			effective = damage * w.cfg.BombDamage / 100
		}
		res := w.actors.ApplyDamage(p.Index, effective)
		if p.Kind == entities.KindPlayer {
			w.scene.PlayerHealthChanged(p.Player)
		}

		foundAlive = foundAlive || !p.Dead
		if res.Health > 0 {
			continue
		}
		if damage > 0 {
			w.setState(c, dyingState(p.Kind))
			w.setTimer(c, 3)
		} else {
			w.setState(c, corpseState(p.Kind))
		}
		if res.Died {
			w.play(deathSound(p.Kind), audio.NormalFrequency, c)
		}
	}
	return foundAlive
}

func dyingState(k entities.Kind) level.State {
	if k == entities.KindSlime {
		return level.SlimeDying
	}
	return level.MonsterDying
}

func corpseState(k entities.Kind) level.State {
	if k == entities.KindSlime {
		return level.SlimeCorpse
	}
	return level.Blood
}

func deathSound(k entities.Kind) audio.Effect {
	if k == entities.KindSlime {
		return audio.Urethan
	}
	return audio.Aargh
}
