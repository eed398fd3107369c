package level

import "fmt"

// State is the content of one board cell. Every byte value is a valid State so
// that persisted maps round-trip exactly; values without a name are reserved
// and behave as inert filler.
type State byte

// Named cell states. Gaps in the numbering are reserved codes.
const (
	Passage               State = 0x30
	MetalWall             State = 0x31
	Sand1                 State = 0x32
	Sand2                 State = 0x33
	Sand3                 State = 0x34
	LightGravel           State = 0x35
	HeavyGravel           State = 0x36
	StoneTopLeft          State = 0x37
	StoneTopRight         State = 0x38
	StoneBottomRight      State = 0x39
	StoneBottomLeft       State = 0x41
	Boulder               State = 0x42
	Stone1                State = 0x43
	Stone2                State = 0x44
	Stone3                State = 0x45
	Stone4                State = 0x46
	FurryRight            State = 0x47
	FurryLeft             State = 0x48
	FurryUp               State = 0x49
	FurryDown             State = 0x4A
	GrenadierRight        State = 0x4B
	GrenadierLeft         State = 0x4C
	GrenadierUp           State = 0x4D
	GrenadierDown         State = 0x4E
	SlimeRight            State = 0x4F
	SlimeLeft             State = 0x50
	SlimeUp               State = 0x51
	SlimeDown             State = 0x52
	AlienRight            State = 0x53
	AlienLeft             State = 0x54
	AlienUp               State = 0x55
	AlienDown             State = 0x56
	SmallBomb1            State = 0x57
	BigBomb1              State = 0x58
	Dynamite1             State = 0x59
	Smoke1                State = 0x61
	Smoke2                State = 0x62
	SmallRadioBlue        State = 0x63
	BigRadioBlue          State = 0x64
	Mine                  State = 0x65
	Blood                 State = 0x66
	SmallRadioGreen       State = 0x67
	BigRadioGreen         State = 0x68
	SmallRadioYellow      State = 0x69
	BigRadioYellow        State = 0x6A
	Exit                  State = 0x6B
	Door                  State = 0x6C
	Medikit               State = 0x6D
	Biomass               State = 0x6F
	StoneLightCracked     State = 0x70
	StoneHeavyCracked     State = 0x71
	Diamond               State = 0x73
	SmallBomb2            State = 0x77
	SmallBomb3            State = 0x78
	WeaponsCrate          State = 0x79
	NapalmExtinguished    State = 0x7C
	SmallBombExtinguished State = 0x7D
	BigBombExtinguished   State = 0x7E
	Napalm1               State = 0x7F
	LargeCrucifixBomb     State = 0x80
	PlasticBomb           State = 0x81
	SmallRadioRed         State = 0x82
	BigRadioRed           State = 0x83
	Explosion             State = 0x84
	MonsterDying          State = 0x85
	MonsterSmoke1         State = 0x86
	MonsterSmoke2         State = 0x87
	SmallCrucifixBomb     State = 0x8A
	BigBomb2              State = 0x8B
	BigBomb3              State = 0x8C
	Dynamite2             State = 0x8D
	Dynamite3             State = 0x8E
	SmallPickaxe          State = 0x8F
	LargePickaxe          State = 0x90
	Drill                 State = 0x91
	GoldShield            State = 0x92
	GoldEgg               State = 0x93
	GoldPileCoins         State = 0x94
	GoldBracelet          State = 0x95
	GoldBar               State = 0x96
	GoldCross             State = 0x97
	GoldScepter           State = 0x98
	GoldRubin             State = 0x99
	GoldCrown             State = 0x9A
	Plastic               State = 0x9B
	Teleport              State = 0x9C
	Atomic1               State = 0x9D
	Atomic2               State = 0x9E
	Atomic3               State = 0x9F
	ExplosivePlastic      State = 0xA0
	ExplosivePlasticBomb  State = 0xA1
	DiggerBomb            State = 0xA2
	Napalm2               State = 0xA3
	Barrel                State = 0xA4
	GrenadeFlyingRight    State = 0xA5
	GrenadeFlyingLeft     State = 0xA6
	GrenadeFlyingDown     State = 0xA7
	GrenadeFlyingUp       State = 0xA8
	MetalWallPlaced       State = 0xA9
	DynamiteExtinguished  State = 0xAA
	JumpingBomb           State = 0xAB
	Brick                 State = 0xAC
	BrickLightCracked     State = 0xAD
	BrickHeavyCracked     State = 0xAE
	SlimeCorpse           State = 0xAF
	SlimeDying            State = 0xB0
	SlimeSmoke1           State = 0xB1
	SlimeSmoke2           State = 0xB2
	LifeItem              State = 0xB3
	ButtonOff             State = 0xB4
	ButtonOn              State = 0xB5
	Item182               State = 0xB6
)

var stateNames = map[State]string{
	Passage:               "Passage",
	MetalWall:             "MetalWall",
	Sand1:                 "Sand1",
	Sand2:                 "Sand2",
	Sand3:                 "Sand3",
	LightGravel:           "LightGravel",
	HeavyGravel:           "HeavyGravel",
	StoneTopLeft:          "StoneTopLeft",
	StoneTopRight:         "StoneTopRight",
	StoneBottomRight:      "StoneBottomRight",
	StoneBottomLeft:       "StoneBottomLeft",
	Boulder:               "Boulder",
	Stone1:                "Stone1",
	Stone2:                "Stone2",
	Stone3:                "Stone3",
	Stone4:                "Stone4",
	FurryRight:            "FurryRight",
	FurryLeft:             "FurryLeft",
	FurryUp:               "FurryUp",
	FurryDown:             "FurryDown",
	GrenadierRight:        "GrenadierRight",
	GrenadierLeft:         "GrenadierLeft",
	GrenadierUp:           "GrenadierUp",
	GrenadierDown:         "GrenadierDown",
	SlimeRight:            "SlimeRight",
	SlimeLeft:             "SlimeLeft",
	SlimeUp:               "SlimeUp",
	SlimeDown:             "SlimeDown",
	AlienRight:            "AlienRight",
	AlienLeft:             "AlienLeft",
	AlienUp:               "AlienUp",
	AlienDown:             "AlienDown",
	SmallBomb1:            "SmallBomb1",
	BigBomb1:              "BigBomb1",
	Dynamite1:             "Dynamite1",
	Smoke1:                "Smoke1",
	Smoke2:                "Smoke2",
	SmallRadioBlue:        "SmallRadioBlue",
	BigRadioBlue:          "BigRadioBlue",
	Mine:                  "Mine",
	Blood:                 "Blood",
	SmallRadioGreen:       "SmallRadioGreen",
	BigRadioGreen:         "BigRadioGreen",
	SmallRadioYellow:      "SmallRadioYellow",
	BigRadioYellow:        "BigRadioYellow",
	Exit:                  "Exit",
	Door:                  "Door",
	Medikit:               "Medikit",
	Biomass:               "Biomass",
	StoneLightCracked:     "StoneLightCracked",
	StoneHeavyCracked:     "StoneHeavyCracked",
	Diamond:               "Diamond",
	SmallBomb2:            "SmallBomb2",
	SmallBomb3:            "SmallBomb3",
	WeaponsCrate:          "WeaponsCrate",
	NapalmExtinguished:    "NapalmExtinguished",
	SmallBombExtinguished: "SmallBombExtinguished",
	BigBombExtinguished:   "BigBombExtinguished",
	Napalm1:               "Napalm1",
	LargeCrucifixBomb:     "LargeCrucifixBomb",
	PlasticBomb:           "PlasticBomb",
	SmallRadioRed:         "SmallRadioRed",
	BigRadioRed:           "BigRadioRed",
	Explosion:             "Explosion",
	MonsterDying:          "MonsterDying",
	MonsterSmoke1:         "MonsterSmoke1",
	MonsterSmoke2:         "MonsterSmoke2",
	SmallCrucifixBomb:     "SmallCrucifixBomb",
	BigBomb2:              "BigBomb2",
	BigBomb3:              "BigBomb3",
	Dynamite2:             "Dynamite2",
	Dynamite3:             "Dynamite3",
	SmallPickaxe:          "SmallPickaxe",
	LargePickaxe:          "LargePickaxe",
	Drill:                 "Drill",
	GoldShield:            "GoldShield",
	GoldEgg:               "GoldEgg",
	GoldPileCoins:         "GoldPileCoins",
	GoldBracelet:          "GoldBracelet",
	GoldBar:               "GoldBar",
	GoldCross:             "GoldCross",
	GoldScepter:           "GoldScepter",
	GoldRubin:             "GoldRubin",
	GoldCrown:             "GoldCrown",
	Plastic:               "Plastic",
	Teleport:              "Teleport",
	Atomic1:               "Atomic1",
	Atomic2:               "Atomic2",
	Atomic3:               "Atomic3",
	ExplosivePlastic:      "ExplosivePlastic",
	ExplosivePlasticBomb:  "ExplosivePlasticBomb",
	DiggerBomb:            "DiggerBomb",
	Napalm2:               "Napalm2",
	Barrel:                "Barrel",
	GrenadeFlyingRight:    "GrenadeFlyingRight",
	GrenadeFlyingLeft:     "GrenadeFlyingLeft",
	GrenadeFlyingDown:     "GrenadeFlyingDown",
	GrenadeFlyingUp:       "GrenadeFlyingUp",
	MetalWallPlaced:       "MetalWallPlaced",
	DynamiteExtinguished:  "DynamiteExtinguished",
	JumpingBomb:           "JumpingBomb",
	Brick:                 "Brick",
	BrickLightCracked:     "BrickLightCracked",
	BrickHeavyCracked:     "BrickHeavyCracked",
	SlimeCorpse:           "SlimeCorpse",
	SlimeDying:            "SlimeDying",
	SlimeSmoke1:           "SlimeSmoke1",
	SlimeSmoke2:           "SlimeSmoke2",
	LifeItem:              "LifeItem",
	ButtonOff:             "ButtonOff",
	ButtonOn:              "ButtonOn",
	Item182:               "Item182",
}

// String returns the state name, or a hex code for reserved values.
func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Reserved(0x%02X)", byte(s))
}

// IsReserved reports whether the state has no defined meaning.
func (s State) IsReserved() bool {
	_, ok := stateNames[s]
	return !ok
}
