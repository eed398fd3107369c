package world

import (
	"math"

	"github.com/zyedidia/generic/mapset"

	"minebombers/pkg/engine/rng"
	"minebombers/pkg/engine/world"
	"minebombers/pkg/game/audio"
	"minebombers/pkg/game/level"
)

// Blast patterns as (row, col) offsets from the center, center excluded.
var (
	smallPattern = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

	bigPattern = [][2]int{
		{-1, 0}, {1, 0}, {0, -1}, {0, 1},
		{-2, 0}, {-1, 1}, {0, 2}, {1, 1}, {2, 0}, {1, -1}, {0, -2}, {-1, -1},
	}

	dynamitePattern = [][2]int{
		{-1, 0}, {1, 0}, {0, -1}, {0, 1},
		{-2, 0}, {-1, 1}, {0, 2}, {1, 1}, {2, 0}, {1, -1}, {0, -2}, {-1, -1},
		{-3, 0}, {-3, 1}, {-2, 1}, {-2, 2}, {-1, 2}, {-1, 3}, {0, 3}, {1, 3},
		{1, 2}, {2, 2}, {2, 1}, {3, 1}, {3, 0}, {3, -1}, {2, -1}, {2, -2},
		{1, -2}, {1, -3}, {0, -3}, {-1, -3}, {-1, -2}, {-2, -2}, {-2, -1}, {-3, -1},
	}
)

const atomicRadius = 12

// Detonate activates the cell at c: bombs explode, decaying cells advance a
// stage, biomass grows. total is the number of detonations that already led
// up to this one; a value above MaxChainReaction makes the call a no-op.
// Everything the activation sets off is resolved before Detonate returns.
func (w *World) Detonate(c world.Cursor, total int) {
	if total > MaxChainReaction {
		return
	}
	w.chain = total
	w.dispatch(c)
	w.drain()
}

// enqueue schedules a chain reaction at c
func (w *World) enqueue(c world.Cursor) {
	if w.pending.Has(c) {
		return
	}
	w.pending.Put(c)
	w.queue = append(w.queue, c)
}

// drain runs queued detonations in order until the queue is empty or the
// chain counter passes MaxChainReaction.
func (w *World) drain() {
	for len(w.queue) > 0 {
		c := w.queue[0]
		w.queue = w.queue[1:]
		w.pending.Remove(c)

		w.chain++
		if w.chain > MaxChainReaction {
			w.queue = nil
			w.pending = mapset.New[world.Cursor]()
			return
		}
		w.dispatch(c)
	}
}

func (w *World) dispatch(c world.Cursor) {
	w.detonations++

	s := w.state(c)
	switch s {
	case level.MetalWall, level.Door:
		w.applyDamageInCell(c, 50)
	case level.ButtonOff, level.ButtonOn:
	case level.MetalWallPlaced:
		w.setState(c, level.MetalWall)
		w.scene.Redraw(c)
		w.play(audio.Picaxe, audio.NormalFrequency, c)
		w.setHits(c, level.MetalWallHits)
	case level.JumpingBomb:
		w.explodeJumpingBomb(c)
	case level.Barrel:
		w.explodeBarrel(c)
	case level.GrenadeFlyingRight, level.GrenadeFlyingLeft, level.GrenadeFlyingDown, level.GrenadeFlyingUp:
		w.flyGrenade(c)
	case level.Atomic1, level.Atomic2, level.Atomic3:
		w.explodeAtomic(c)

	case level.SmallBomb1, level.SmallBomb2, level.SmallBomb3, level.Mine, level.SmallBombExtinguished:
		w.setState(c, level.Passage)
		w.explodePattern(c, 60, smallPattern)
		w.play(audio.Pikkupom, audio.NormalFrequency, c)
	case level.BigBomb1, level.BigBomb2, level.BigBomb3,
		level.SmallRadioBlue, level.SmallRadioRed, level.SmallRadioGreen, level.SmallRadioYellow,
		level.ExplosivePlastic, level.BigBombExtinguished:
		w.setState(c, level.Passage)
		w.explodePattern(c, 84, bigPattern)
		w.play(audio.Explos1, audio.NormalFrequency, c)
	case level.Dynamite1, level.Dynamite2, level.Dynamite3,
		level.BigRadioBlue, level.BigRadioRed, level.BigRadioGreen, level.BigRadioYellow,
		level.Teleport, level.DynamiteExtinguished:
		w.setState(c, level.Passage)
		w.explodePattern(c, 100, dynamitePattern)
		w.play(audio.Explos2, audio.NormalFrequency, c)
	case level.SmallCrucifixBomb, level.LargeCrucifixBomb:
		w.explodeCrucifix(c, s == level.SmallCrucifixBomb)

	case level.ExplosivePlasticBomb:
		w.expand(c, explosivePlasticExpansion)
		w.play(audio.Urethan, audio.NormalFrequency, c)
	case level.PlasticBomb:
		w.expand(c, plasticExpansion)
		w.play(audio.Urethan, audio.NormalFrequency, c)
	case level.DiggerBomb:
		w.expand(c, diggerExpansion)
		w.play(audio.Explos5, audio.NormalFrequency, c)
	case level.Napalm1, level.Napalm2, level.NapalmExtinguished:
		w.expand(c, napalmExpansion)
		w.play(audio.Explos5, audio.NormalFrequency, c)

	case level.Explosion:
		w.decay(c, level.Smoke1, 3)
	case level.Smoke1:
		w.decay(c, level.Smoke2, 3)
	case level.Smoke2:
		w.decay(c, level.Passage, 0)
	case level.MonsterDying:
		w.decay(c, level.MonsterSmoke1, 3)
	case level.MonsterSmoke1:
		w.decay(c, level.MonsterSmoke2, 3)
	case level.MonsterSmoke2:
		w.decay(c, level.Blood, 0)
		w.splatter(c, SplatterBlood)
	case level.SlimeDying:
		w.decay(c, level.SlimeSmoke1, 3)
	case level.SlimeSmoke1:
		w.decay(c, level.SlimeSmoke2, 3)
	case level.SlimeSmoke2:
		w.decay(c, level.SlimeCorpse, 0)
		w.splatter(c, SplatterSlime)

	case level.Biomass:
		w.growBiomass(c)
	}
}

func (w *World) decay(c world.Cursor, next level.State, timer int) {
	w.setState(c, next)
	w.setTimer(c, timer)
	w.scene.Redraw(c)
}

func (w *World) splatter(c world.Cursor, kind Splatter) {
	for _, dir := range world.AllDirections() {
		if w.state(c.To(dir)).CanSplatter() {
			w.scene.Splatter(c, dir, kind)
		}
	}
}

func (w *World) growBiomass(c world.Cursor) {
	clock := w.src.Intn(30)
	w.setTimer(c, clock)

	dir := world.AllDirections()[w.src.Intn(4)]
	next := c.To(dir)
	if w.state(next) == level.Passage {
		w.setState(next, level.Biomass)
		w.setTimer(next, clock)
		w.setHits(next, level.BiomassHits)
		w.scene.Redraw(next)
	}
}

func (w *World) explodeAtomic(c world.Cursor) {
	w.setState(c, level.Passage)
	w.explodeCell(c, 255, true)

	// the chord is rounded up, so the blast is slightly wider than a circle
	for dc := -atomicRadius; dc <= atomicRadius; dc++ {
		cathet := int(math.Ceil(math.Sqrt(float64(atomicRadius*atomicRadius - dc*dc))))
		for dr := -cathet; dr <= cathet; dr++ {
			if n, ok := c.Offset(dr, dc); ok {
				w.explodeCell(n, 255, true)
			}
		}
	}

	w.play(audio.Explos3, 5000, c)
	w.play(audio.Explos3, 9900, c)
	w.play(audio.Explos3, 10000, c)
	w.flash = true
	w.shake = min(w.shake+10, world.Rows)
}

func (w *World) explodeCrucifix(c world.Cursor, small bool) {
	damage := 200
	if small {
		damage = 100
	}
	w.setState(c, level.Passage)
	w.explodeCell(c, damage, false)

	for _, dir := range world.AllDirections() {
		cur := c
		for distance := 0; !small || distance < 15; distance++ {
			next := cur.To(dir)
			if next == cur {
				break
			}
			cur = next
			if stopsCrucifix(w.state(cur)) {
				break
			}
			w.explodeCell(cur, damage, false)
		}
	}

	if small {
		w.play(audio.Explos1, audio.NormalFrequency, c)
	} else {
		w.play(audio.Explos3, audio.NormalFrequency, c)
	}
}

func stopsCrucifix(s level.State) bool {
	switch s {
	case level.MetalWall, level.Exit, level.Door, level.ButtonOff, level.ButtonOn:
		return true
	}
	return false
}

var jumpingBombForms = []level.State{level.SmallBomb1, level.BigBomb1, level.Dynamite1}

func (w *World) explodeJumpingBomb(c world.Cursor) {
	w.setState(c, jumpingBombForms[w.src.Intn(len(jumpingBombForms))])
	// settle this bomb's own chain before jumping; work queued earlier waits
	w.chain++
	if w.chain <= MaxChainReaction {
		outer := w.queue
		w.queue = nil
		w.dispatch(c)
		w.drain()
		if w.chain <= MaxChainReaction {
			w.queue = append(outer, w.queue...)
		}
	}

	jumps := int(w.maps.Hits.At(c))
	if jumps <= 1 {
		return
	}

	// the last valid candidate wins
	next := c
	for range 6 {
		dr := rng.Range(w.src, -4, 4)
		dc := rng.Range(w.src, -4, 4)
		if cand, ok := c.Offset(dr, dc); ok && w.state(cand).IsJumpTarget() {
			next = cand
		}
	}

	w.setState(next, level.JumpingBomb)
	w.setHits(c, 0)
	w.setHits(next, jumps-1)
	w.scene.Redraw(next)
	w.setTimer(next, rng.Range(w.src, 1, 181))
}

func (w *World) explodeBarrel(c world.Cursor) {
	w.setState(c, level.Explosion)
	w.setTimer(c, 3)
	w.scene.Redraw(c)
	w.play(audio.Explos1, audio.NormalFrequency, c)

	count := 10 + w.src.Intn(6)
	for range count {
		center := c
		for range world.Cells {
			dr := rng.Range(w.src, -10, 10)
			dc := rng.Range(w.src, -10, 10)
			if n, ok := c.Offset(dr, dc); ok {
				center = n
				break
			}
		}
		w.explodePattern(center, 84, bigPattern)
		w.play(audio.Explos1, audio.NormalFrequency, center)
	}
}

func grenadeDirection(s level.State) world.Direction {
	switch s {
	case level.GrenadeFlyingLeft:
		return world.West
	case level.GrenadeFlyingDown:
		return world.South
	case level.GrenadeFlyingUp:
		return world.North
	}
	return world.East
}

func grenadeState(dir world.Direction) level.State {
	switch dir {
	case world.West:
		return level.GrenadeFlyingLeft
	case world.South:
		return level.GrenadeFlyingDown
	case world.North:
		return level.GrenadeFlyingUp
	}
	return level.GrenadeFlyingRight
}

func (w *World) flyGrenade(c world.Cursor) {
	s := w.state(c)
	next := c.To(grenadeDirection(s))
	target := w.state(next)

	if next != c && (target.IsPassable() || target == s) && !w.applyDamageInCell(next, 0) {
		w.setState(c, level.Passage)
		w.applyDamageInCell(c, 0)
		w.scene.Redraw(c)

		w.setState(next, s)
		w.scene.Redraw(next)
		w.setTimer(next, 2)
		return
	}

	w.setState(c, level.SmallBomb1)
	w.dispatch(c)
}

// explodeCell hits a single cell with a blast. Explodable contents are queued
// for their own detonation; rock and brick crack or vaporize; anything else
// turns into an explosion that damages whoever stands there.
func (w *World) explodeCell(c world.Cursor, damage int, heavy bool) {
	s := w.state(c)
	switch {
	case s.IsExplodable():
		w.enqueue(c)
	case s.IsStone() || s.IsStoneCorner() || s == level.Boulder:
		switch {
		case heavy:
			w.setState(c, level.Explosion)
			w.setTimer(c, 3)
		case rng.Bool(w.src):
			w.setState(c, level.StoneHeavyCracked)
			w.setHits(c, 500)
		default:
			w.setState(c, level.StoneLightCracked)
			w.setHits(c, 1000)
		}
	case s.IsBrickLike():
		switch {
		case heavy || s == level.BrickHeavyCracked:
			w.setState(c, level.Explosion)
			w.setTimer(c, 3)
		case s == level.Brick:
			w.setHits(c, 4000)
			w.setState(c, level.BrickLightCracked)
		default:
			w.setHits(c, 2000)
			w.setState(c, level.BrickHeavyCracked)
		}
	default:
		w.setState(c, level.Explosion)
		w.setTimer(c, 3)
		w.applyDamageInCell(c, damage)
	}

	w.scene.Redraw(c)
	w.scene.MarkBurnedBorder(c)
}

func (w *World) explodePattern(center world.Cursor, damage int, pattern [][2]int) {
	w.explodeCell(center, damage, false)
	for _, d := range pattern {
		if n, ok := center.Offset(d[0], d[1]); ok {
			w.explodeCell(n, damage, false)
		}
	}
}
