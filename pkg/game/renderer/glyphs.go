package renderer

import "minebombers/pkg/game/level"

// Glyphs used for cells that are not drawn from their state.
const (
	GlyphFog    = ' '
	GlyphPlayer = '@'
)

// Glyph returns the character a cell state is drawn with.
func Glyph(s level.State) rune {
	switch {
	case s == level.Passage:
		return '.'
	case s == level.MetalWall || s == level.MetalWallPlaced:
		return '#'
	case s.IsSand():
		return ':'
	case s == level.LightGravel || s == level.HeavyGravel:
		return '%'
	case s == level.Boulder:
		return 'o'
	case s.IsStoneLike():
		return 'O'
	case s.IsBrickLike():
		return '='
	case s == level.Exit:
		return 'E'
	case s == level.Door:
		return '|'
	case s == level.ButtonOff || s == level.ButtonOn:
		return '_'
	case s == level.Explosion:
		return '*'
	case s == level.Smoke1 || s == level.Smoke2 || s == level.MonsterSmoke1 || s == level.MonsterSmoke2 ||
		s == level.SlimeSmoke1 || s == level.SlimeSmoke2:
		return '^'
	case s == level.Blood || s == level.SlimeCorpse || s == level.MonsterDying || s == level.SlimeDying:
		return 'x'
	case s == level.Biomass:
		return 'G'
	case s == level.Plastic || s == level.ExplosivePlastic:
		return '~'
	case s == level.Diamond:
		return 'D'
	case s.GoldValue() > 0:
		return '$'
	case s.IsTreasure():
		return 't'
	case s == level.Medikit || s == level.LifeItem:
		return 'h'
	case s == level.WeaponsCrate:
		return 'w'
	case s == level.Teleport:
		return 'T'
	case s == level.Mine:
		return 'm'
	case s.RadioOwner() >= 0:
		return 'r'
	case s == level.JumpingBomb:
		return 'j'
	case s == level.Barrel:
		return 'k'
	case s >= level.GrenadeFlyingRight && s <= level.GrenadeFlyingUp:
		return 'g'
	case s == level.SmallCrucifixBomb || s == level.LargeCrucifixBomb:
		return '+'
	case s >= level.Atomic1 && s <= level.Atomic3:
		return 'A'
	case s == level.Napalm1 || s == level.Napalm2 || s == level.NapalmExtinguished:
		return 'n'
	case s == level.PlasticBomb || s == level.ExplosivePlasticBomb || s == level.DiggerBomb:
		return 'p'
	case s == level.Dynamite1 || s == level.Dynamite2 || s == level.Dynamite3 || s == level.DynamiteExtinguished:
		return 'd'
	case s == level.BigBomb1 || s == level.BigBomb2 || s == level.BigBomb3 || s == level.BigBombExtinguished:
		return 'B'
	case s == level.SmallBomb1 || s == level.SmallBomb2 || s == level.SmallBomb3 || s == level.SmallBombExtinguished:
		return 'b'
	case s >= level.FurryRight && s <= level.AlienDown:
		return 'M'
	}
	return '?'
}

// Style returns the text style a cell state is drawn with.
func Style(s level.State) TextStyle {
	switch Glyph(s) {
	case '.':
		return StyleOpen
	case '#', '|', '_', 'E':
		return StyleWall
	case ':', '%':
		return StyleSoil
	case 'O', 'o':
		return StyleRock
	case '=':
		return StyleBrick
	case '*', '^':
		return StyleFire
	case 'x':
		return StyleCorpse
	case 'G', '~', 'M':
		return StyleLife
	case '$', 'D', 't':
		return StyleTreasure
	case 'h', 'w', 'T':
		return StyleItem
	case '?':
		return StyleNormal
	}
	return StyleBomb
}

// LegendEntry pairs a glyph with the translation key describing it.
type LegendEntry struct {
	Glyph rune
	Key   string
}

// Legend lists every glyph in display order.
var Legend = []LegendEntry{
	{'.', "LEGEND_PASSAGE"},
	{'#', "LEGEND_METAL_WALL"},
	{':', "LEGEND_SAND"},
	{'%', "LEGEND_GRAVEL"},
	{'O', "LEGEND_STONE"},
	{'o', "LEGEND_BOULDER"},
	{'=', "LEGEND_BRICK"},
	{'E', "LEGEND_EXIT"},
	{'|', "LEGEND_DOOR"},
	{'_', "LEGEND_BUTTON"},
	{'*', "LEGEND_EXPLOSION"},
	{'^', "LEGEND_SMOKE"},
	{'x', "LEGEND_CORPSE"},
	{'G', "LEGEND_BIOMASS"},
	{'~', "LEGEND_PLASTIC"},
	{'$', "LEGEND_GOLD"},
	{'D', "LEGEND_DIAMOND"},
	{'t', "LEGEND_TOOL"},
	{'h', "LEGEND_MEDIKIT"},
	{'w', "LEGEND_WEAPONS_CRATE"},
	{'T', "LEGEND_TELEPORT"},
	{'m', "LEGEND_MINE"},
	{'r', "LEGEND_RADIO"},
	{'j', "LEGEND_JUMPING_BOMB"},
	{'k', "LEGEND_BARREL"},
	{'g', "LEGEND_GRENADE"},
	{'+', "LEGEND_CRUCIFIX"},
	{'A', "LEGEND_ATOMIC"},
	{'n', "LEGEND_NAPALM"},
	{'p', "LEGEND_EXPANDING_BOMB"},
	{'d', "LEGEND_DYNAMITE"},
	{'B', "LEGEND_BIG_BOMB"},
	{'b', "LEGEND_SMALL_BOMB"},
	{'M', "LEGEND_MONSTER"},
	{'?', "LEGEND_UNKNOWN"},
	{GlyphPlayer, "LEGEND_PLAYER"},
}
