package world

import (
	"minebombers/pkg/engine/rng"
	"minebombers/pkg/engine/world"
	"minebombers/pkg/game/entities"
	"minebombers/pkg/game/level"
)

const extinguisherRange = 6

// UseItem activates item for player standing at `at` and facing `facing`.
// Bombs are dropped on the player's cell. One item is taken from inv when
// the activation succeeds.
func (w *World) UseItem(player int, inv *entities.Inventory, item entities.Equipment, at world.Cursor, facing world.Direction) bool {
	if !inv.Has(item) {
		return false
	}

	switch item {
	case entities.Flamethrower:
		w.FireFlamethrower(at, facing)
	case entities.Extinguisher:
		w.Extinguish(at, facing)
	case entities.SmallPickaxe, entities.LargePickaxe, entities.Drill, entities.Armor:
		return false
	case entities.Clone, entities.SuperDrill:
		// actor effects, handled outside the battlefield
		return false
	default:
		if !w.state(at).CanPlaceBomb() {
			return false
		}
		s, ok := placementState(item, facing, player)
		if !ok {
			return false
		}
		w.setState(at, s)
		w.setTimer(at, w.placementTimer(item))
		w.setHits(at, w.placementHits(item))
		w.scene.Redraw(at)
	}

	inv.Take(item)
	return true
}

var radioStates = map[entities.Equipment][4]level.State{
	entities.SmallRadio: {level.SmallRadioBlue, level.SmallRadioRed, level.SmallRadioGreen, level.SmallRadioYellow},
	entities.LargeRadio: {level.BigRadioBlue, level.BigRadioRed, level.BigRadioGreen, level.BigRadioYellow},
}

var placementStates = map[entities.Equipment]level.State{
	entities.SmallBomb:        level.SmallBomb1,
	entities.LargeBomb:        level.BigBomb1,
	entities.Dynamite:         level.Dynamite1,
	entities.AtomicBomb:       level.Atomic1,
	entities.Mine:             level.Mine,
	entities.Napalm:           level.Napalm1,
	entities.Barrel:           level.Barrel,
	entities.SmallCrucifix:    level.SmallCrucifixBomb,
	entities.LargeCrucifix:    level.LargeCrucifixBomb,
	entities.Plastic:          level.PlasticBomb,
	entities.ExplosivePlastic: level.ExplosivePlasticBomb,
	entities.Digger:           level.DiggerBomb,
	entities.MetalWall:        level.MetalWallPlaced,
	entities.Teleport:         level.Teleport,
	entities.Biomass:          level.Biomass,
	entities.JumpingBomb:      level.JumpingBomb,
}

func placementState(item entities.Equipment, facing world.Direction, player int) (level.State, bool) {
	if item == entities.Grenade {
		return grenadeState(facing), true
	}
	if colours, ok := radioStates[item]; ok {
		if player < 0 || player >= len(colours) {
			return 0, false
		}
		return colours[player], true
	}
	s, ok := placementStates[item]
	return s, ok
}

func (w *World) placementTimer(item entities.Equipment) int {
	switch item {
	case entities.Mine, entities.SmallRadio, entities.LargeRadio, entities.Barrel, entities.Teleport:
		return 0
	case entities.Napalm:
		return 260
	case entities.AtomicBomb:
		return 280
	case entities.MetalWall:
		return 1
	case entities.ExplosivePlastic:
		return 90
	case entities.Dynamite:
		return 80
	case entities.JumpingBomb:
		return rng.Range(w.src, 80, 160)
	case entities.Biomass:
		return w.src.Intn(80)
	case entities.Grenade:
		return 1
	}
	return 100
}

// placementHits doubles as the jump count of a jumping bomb.
func (w *World) placementHits(item entities.Equipment) int {
	switch item {
	case entities.JumpingBomb:
		return rng.Range(w.src, 7, 27)
	case entities.Biomass:
		return level.BiomassHits
	case entities.Grenade:
		return 0
	}
	return level.ItemHits
}

// TriggerRemote arms every radio bomb of the given player to go off on the next tick.
func (w *World) TriggerRemote(player int) {
	for c := range world.AllCursors() {
		if w.state(c).RadioOwner() == player {
			w.setTimer(c, 1)
		}
	}
}

// Extinguish sprays from `from` in direction dir. Burning fuses go out and
// open ground fills with smoke; the spray stops at the first other cell.
func (w *World) Extinguish(from world.Cursor, dir world.Direction) {
	c := from
	for range extinguisherRange {
		c = c.To(dir)
		if !w.extinguishCell(c) {
			return
		}
	}
}

func (w *World) extinguishCell(c world.Cursor) bool {
	s := w.state(c)
	switch {
	case s.IsExtinguishable():
		w.setState(c, extinguishedState(s))
		w.setTimer(c, 0)
		w.setHits(c, level.ItemHits)
	case s.IsPassable():
		w.setState(c, level.Smoke1)
		w.setTimer(c, 3)
	default:
		return false
	}
	w.scene.Redraw(c)
	return true
}

func extinguishedState(s level.State) level.State {
	switch s {
	case level.SmallBomb1, level.SmallBomb2, level.SmallBomb3:
		return level.SmallBombExtinguished
	case level.BigBomb1, level.BigBomb2, level.BigBomb3:
		return level.BigBombExtinguished
	case level.Dynamite1, level.Dynamite2, level.Dynamite3:
		return level.DynamiteExtinguished
	}
	return level.NapalmExtinguished
}

// RevealView lifts the fog in front of actor i
func (w *World) RevealView(i int) {
	for _, p := range w.actors.Positions() {
		if p.Index != i {
			continue
		}
		w.maps.Fog.RevealView(p.Cursor, p.Facing,
			func(c world.Cursor) bool { return w.state(c).IsSeeThrough() },
			w.scene.Redraw)
		return
	}
}
