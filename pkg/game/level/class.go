package level

import "github.com/zyedidia/generic/mapset"

// StateSet is a set of cell states.
type StateSet = mapset.Set[State]

func newStateSet(states ...State) StateSet {
	set := mapset.New[State]()
	for _, s := range states {
		set.Put(s)
	}
	return set
}

func stateRange(from, to State) []State {
	var out []State
	for s := int(from); s <= int(to); s++ {
		out = append(out, State(s))
	}
	return out
}

func concat(groups ...[]State) []State {
	var out []State
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// explodableStates react to a nearby blast by running their own detonation.
var explodableStates = concat(
	[]State{MetalWall, SmallBomb1, BigBomb1, Dynamite1},
	[]State{SmallRadioBlue, BigRadioBlue, Mine},
	stateRange(SmallRadioGreen, Door),
	[]State{SmallBomb2, SmallBomb3},
	stateRange(NapalmExtinguished, BigRadioRed),
	stateRange(SmallCrucifixBomb, Dynamite3),
	stateRange(Teleport, JumpingBomb),
	[]State{ButtonOff, ButtonOn},
)

var (
	explodable = newStateSet(explodableStates...)

	// cannotPlaceBomb is the explodable set minus explosive plastic residue,
	// which a player may drop new items onto.
	cannotPlaceBomb = func() StateSet {
		set := newStateSet(explodableStates...)
		set.Remove(ExplosivePlastic)
		return set
	}()

	// burnable cells are consumed by napalm and the flamethrower.
	burnable = newStateSet(
		Passage, Smoke1, Smoke2, Blood, Biomass, Explosion,
		MonsterDying, MonsterSmoke1, MonsterSmoke2, Plastic, SlimeCorpse,
	)

	// extinguishable bombs still have a burning fuse.
	extinguishable = newStateSet(
		SmallBomb1, SmallBomb2, SmallBomb3,
		BigBomb1, BigBomb2, BigBomb3,
		Dynamite1, Dynamite2, Dynamite3,
		Napalm1, Napalm2,
	)

	// landing spots for a jumping bomb
	jumpTargets = newStateSet(
		Passage, Sand1, Sand2, Sand3,
		StoneTopLeft, StoneTopRight, StoneBottomRight, StoneBottomLeft,
		Stone1, Stone2, Stone3, Stone4,
		Boulder, Explosion,
	)
)

// IsExplodable reports whether the state detonates when caught in a blast.
func (s State) IsExplodable() bool { return explodable.Has(s) }

// CanPlaceBomb reports whether a new item may be dropped on a cell in this state.
func (s State) CanPlaceBomb() bool { return !cannotPlaceBomb.Has(s) }

// IsBurnable reports whether napalm and flames spread into the cell.
func (s State) IsBurnable() bool { return burnable.Has(s) }

// IsExtinguishable reports whether the state is a bomb with a lit fuse.
func (s State) IsExtinguishable() bool { return extinguishable.Has(s) }

// IsJumpTarget reports whether a jumping bomb may land on the cell.
func (s State) IsJumpTarget() bool { return jumpTargets.Has(s) }

// IsStone reports whether the state is one of the plain stone textures.
func (s State) IsStone() bool {
	return s >= Stone1 && s <= Stone4
}

// IsStoneCorner reports whether the state is a rounded stone corner.
func (s State) IsStoneCorner() bool {
	switch s {
	case StoneTopLeft, StoneTopRight, StoneBottomRight, StoneBottomLeft:
		return true
	}
	return false
}

// IsStoneLike covers plain, cornered and cracked stone.
func (s State) IsStoneLike() bool {
	return s.IsStone() || s.IsStoneCorner() || s == StoneLightCracked || s == StoneHeavyCracked
}

// IsSand reports whether the state is one of the sand textures.
func (s State) IsSand() bool {
	return s >= Sand1 && s <= Sand3
}

// IsBrickLike reports whether the state is a brick in any crack stage.
func (s State) IsBrickLike() bool {
	return s >= Brick && s <= BrickHeavyCracked
}

// IsPassable reports whether an actor can walk into the cell without digging.
func (s State) IsPassable() bool {
	return s == Passage || s == Blood || s == SlimeCorpse
}

// IsFlamePassable reports whether a flame jet can start in the cell.
func (s State) IsFlamePassable() bool {
	return s.IsPassable() ||
		(s >= Smoke1 && s <= Smoke2) ||
		s == Biomass ||
		(s >= Explosion && s <= MonsterSmoke2) ||
		s == Plastic
}

// CanSplatter reports whether a corpse next to this cell leaves a splatter on it.
func (s State) CanSplatter() bool {
	switch {
	case s == MetalWall, s.IsSand(), s == LightGravel, s == HeavyGravel, s.IsStoneLike():
		return true
	case s == Biomass, s == Plastic, s == ExplosivePlastic, s.IsBrickLike():
		return true
	}
	return false
}

// IsSeeThrough reports whether sight passes through the cell.
func (s State) IsSeeThrough() bool {
	switch {
	case s == MetalWall, s.IsSand(), s == LightGravel, s == HeavyGravel:
		return false
	case s.IsStoneLike(), s == Boulder, s.IsBrickLike():
		return false
	case s == Biomass, s == Plastic, s == ExplosivePlastic, s == Door:
		return false
	}
	return true
}

// RadioOwner returns the index of the player whose remote triggers the
// state, or -1 if the state is not a radio bomb.
func (s State) RadioOwner() int {
	switch s {
	case SmallRadioBlue, BigRadioBlue:
		return 0
	case SmallRadioRed, BigRadioRed:
		return 1
	case SmallRadioGreen, BigRadioGreen:
		return 2
	case SmallRadioYellow, BigRadioYellow:
		return 3
	}
	return -1
}

// IsBomb reports whether the state is an armed item that will go off on its own.
func (s State) IsBomb() bool {
	switch s {
	case SmallBomb1, SmallBomb2, SmallBomb3, BigBomb1, BigBomb2, BigBomb3,
		Dynamite1, Dynamite2, Dynamite3, Napalm1, Napalm2,
		SmallCrucifixBomb, LargeCrucifixBomb, PlasticBomb, ExplosivePlastic, ExplosivePlasticBomb,
		Atomic1, Atomic2, Atomic3, DiggerBomb, Barrel,
		GrenadeFlyingRight, GrenadeFlyingLeft, GrenadeFlyingDown, GrenadeFlyingUp,
		MetalWallPlaced, JumpingBomb:
		return true
	}
	return false
}

// GoldValue returns how much money picking up the cell is worth.
func (s State) GoldValue() int {
	switch s {
	case GoldShield:
		return 15
	case GoldEgg:
		return 25
	case GoldPileCoins:
		return 15
	case GoldBracelet:
		return 10
	case GoldBar:
		return 30
	case GoldCross:
		return 35
	case GoldScepter:
		return 50
	case GoldRubin:
		return 65
	case GoldCrown:
		return 100
	case Diamond:
		return 1000
	}
	return 0
}

// IsTreasure reports whether the state is a collectible placed by the treasure
// pass of the generator: digging tools, gold and diamonds.
func (s State) IsTreasure() bool {
	return (s >= SmallPickaxe && s <= GoldCrown) || s == Diamond
}
