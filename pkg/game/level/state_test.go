package level

import (
	"testing"

	"minebombers/pkg/engine/rng"
	"minebombers/pkg/engine/world"
)

func TestReservedStates(t *testing.T) {
	if Passage.IsReserved() {
		t.Error("Passage reported as reserved")
	}
	for _, s := range []State{0x00, 0x2F, 0x3A, 0x5A, 0x7A, 0x88, 0x89, 0xFF} {
		if !s.IsReserved() {
			t.Errorf("%#x should be reserved", byte(s))
		}
		if s.IsExplodable() || s.IsPassable() || s.IsBurnable() {
			t.Errorf("reserved %v should be inert", s)
		}
	}
	if got := State(0x3B).String(); got != "Reserved(0x3B)" {
		t.Errorf("String = %q", got)
	}
	if got := JumpingBomb.String(); got != "JumpingBomb" {
		t.Errorf("String = %q, want JumpingBomb", got)
	}
}

func TestStateClasses(t *testing.T) {
	tests := []struct {
		name string
		got  bool
		want bool
	}{
		{"metal wall explodable", MetalWall.IsExplodable(), true},
		{"explosion not explodable", Explosion.IsExplodable(), false},
		{"plastic residue accepts bombs", ExplosivePlastic.CanPlaceBomb(), true},
		{"mine blocks bombs", Mine.CanPlaceBomb(), false},
		{"passage accepts bombs", Passage.CanPlaceBomb(), true},
		{"cracked stone is stone-like", StoneHeavyCracked.IsStoneLike(), true},
		{"cracked stone is not plain stone", StoneHeavyCracked.IsStone(), false},
		{"slime corpse passable", SlimeCorpse.IsPassable(), true},
		{"plastic flame passable", Plastic.IsFlamePassable(), true},
		{"sand not flame passable", Sand2.IsFlamePassable(), false},
		{"biomass burnable", Biomass.IsBurnable(), true},
		{"boulder is jump target", Boulder.IsJumpTarget(), true},
		{"gravel is not jump target", LightGravel.IsJumpTarget(), false},
		{"pickaxe is treasure", SmallPickaxe.IsTreasure(), true},
		{"crate is not treasure", WeaponsCrate.IsTreasure(), false},
		{"brick splatters", BrickLightCracked.CanSplatter(), true},
		{"passage does not splatter", Passage.CanSplatter(), false},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestRadioOwner(t *testing.T) {
	if got := BigRadioYellow.RadioOwner(); got != 3 {
		t.Errorf("BigRadioYellow owner = %d, want 3", got)
	}
	if got := SmallRadioRed.RadioOwner(); got != 1 {
		t.Errorf("SmallRadioRed owner = %d, want 1", got)
	}
	if got := Mine.RadioOwner(); got != -1 {
		t.Errorf("Mine owner = %d, want -1", got)
	}
}

func TestNewMapLayers(t *testing.T) {
	g := NewGrid()
	stone := world.NewCursor(3, 3)
	bio := world.NewCursor(4, 4)
	g.Set(stone, Stone3)
	g.Set(bio, Biomass)

	m := NewMap(g, rng.NewScript(17))
	if got := m.Hits.At(stone); got != 2200 {
		t.Errorf("stone hits = %d, want 2200", got)
	}
	if got := m.Hits.At(bio); got != BiomassHits {
		t.Errorf("biomass hits = %d, want %d", got, BiomassHits)
	}
	if got := m.Timer.At(bio); got != 17 {
		t.Errorf("biomass timer = %d, want 17", got)
	}
	if got := m.Fog.HiddenCount(); got != world.Cells {
		t.Errorf("hidden cells = %d, want all", got)
	}
}
