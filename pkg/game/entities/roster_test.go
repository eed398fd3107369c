package entities

import (
	"testing"

	"minebombers/pkg/engine/rng"
	"minebombers/pkg/engine/world"
	"minebombers/pkg/game/level"
)

func TestNewRosterSpawnCorners(t *testing.T) {
	r := NewRoster(4, rng.NewScript(0, 0))
	want := []world.Cursor{SpawnTopLeft, SpawnBottomRight, SpawnBottomLeft, SpawnTopRight}
	for i, c := range want {
		if got := r.Actor(i).Pos; got != c {
			t.Errorf("player %d at %v, want %v", i, got, c)
		}
		if r.Actor(i).Player != i {
			t.Errorf("player %d has index %d", i, r.Actor(i).Player)
		}
	}

	single := NewRoster(1, rng.NewScript())
	if single.Actor(0).Pos != SpawnTopLeft {
		t.Errorf("single player at %v, want %v", single.Actor(0).Pos, SpawnTopLeft)
	}
}

func TestSpawnMonstersClearsMarkers(t *testing.T) {
	g := level.NewGrid()
	g.Set(world.NewCursor(5, 6), level.SlimeUp)
	g.Set(world.NewCursor(7, 8), level.AlienLeft)

	r := NewRoster(1, rng.NewScript())
	r.SpawnMonsters(g)

	if r.Len() != 3 {
		t.Fatalf("actors = %d, want 3", r.Len())
	}
	slime := r.Actor(1)
	if slime.Kind != KindSlime || slime.Health != 10 || slime.Facing != world.North {
		t.Errorf("slime = %+v", slime)
	}
	if alien := r.Actor(2); alien.Kind != KindAlien || alien.Health != 66 {
		t.Errorf("alien = %+v", alien)
	}
	if g.At(world.NewCursor(5, 6)) != level.Passage {
		t.Error("monster marker left on the map")
	}
}

func TestApplyDamage(t *testing.T) {
	r := NewRoster(1, rng.NewScript())
	if res := r.ApplyDamage(0, 60); res.Health != 40 || res.Died {
		t.Errorf("first hit = %+v, want health 40 alive", res)
	}
	if res := r.ApplyDamage(0, 60); res.Health != 0 || !res.Died {
		t.Errorf("second hit = %+v, want died", res)
	}
	if res := r.ApplyDamage(0, 60); res.Died {
		t.Error("a dead actor died twice")
	}
	if r.AlivePlayers() != 0 {
		t.Errorf("AlivePlayers = %d, want 0", r.AlivePlayers())
	}
	if res := r.ApplyDamage(5, 10); res != (DamageResult{}) {
		t.Errorf("out of range damage = %+v", res)
	}
}

func TestInventory(t *testing.T) {
	var inv Inventory
	if inv.Take(Dynamite) {
		t.Error("took from an empty inventory")
	}
	inv.Add(Dynamite, 2)
	if !inv.Take(Dynamite) || !inv.Has(Dynamite) {
		t.Error("inventory lost items")
	}
	if Armor.IsSelectable() || !Napalm.IsSelectable() {
		t.Error("selectable flags wrong")
	}
	if got := JumpingBomb.String(); got != "Jumping Bomb" {
		t.Errorf("String = %q", got)
	}
}
