package main

import (
	"testing"

	"minebombers/pkg/engine/rng"
	engine "minebombers/pkg/engine/world"
	"minebombers/pkg/game/entities"
	"minebombers/pkg/game/level"
	"minebombers/pkg/game/state"
	"minebombers/pkg/game/world"
)

func newTestRound() *round {
	g := level.NewGrid()
	for c := range engine.AllCursors() {
		if c.IsBorder() {
			g.Set(c, level.MetalWall)
		}
	}
	roster := entities.NewRoster(1, rng.NewScript())
	w := world.New(level.NewMap(g, rng.NewScript()), world.Collaborators{Actors: roster},
		rng.NewScript(), world.DefaultConfig())
	return &round{
		game:      state.NewGame([]string{"Alice"}, state.DefaultOptions()),
		w:         w,
		roster:    roster,
		collected: make([]int, 1),
	}
}

func TestStepCollectsGoldAndExits(t *testing.T) {
	r := newTestRound()
	m := r.w.Map()
	m.Level.Set(engine.NewCursor(1, 2), level.GoldCrown)
	m.Level.Set(engine.NewCursor(1, 3), level.Exit)

	if !r.step(0, engine.East) {
		t.Fatal("step onto gold failed")
	}
	if r.collected[0] != 100 || m.Level.At(engine.NewCursor(1, 2)) != level.Passage {
		t.Errorf("collected = %d, cell = %v", r.collected[0], m.Level.At(engine.NewCursor(1, 2)))
	}

	if r.step(0, engine.North) {
		t.Error("walked into the border")
	}
	if got := r.roster.Actor(0).Pos; got != engine.NewCursor(1, 2) {
		t.Errorf("pos = %v, want (1,2)", got)
	}

	r.step(0, engine.East)
	if !r.w.IsEndOfRound() {
		t.Error("walking into the exit should end the round")
	}
}

func TestCycleAndUseItem(t *testing.T) {
	r := newTestRound()
	inv := &r.game.Players[0].Inventory
	inv.Add(entities.SmallBomb, 1)
	inv.Add(entities.Grenade, 1)

	if got := r.cycleItem(0, 1); got != entities.Grenade {
		t.Errorf("next = %v, want Grenade", got)
	}
	if got := r.cycleItem(0, 1); got != entities.SmallBomb {
		t.Errorf("next = %v, want Small Bomb", got)
	}

	if !r.use(0) {
		t.Fatal("use failed")
	}
	if got := r.w.Map().Level.At(entities.SpawnTopLeft); got != level.SmallBomb1 {
		t.Errorf("cell = %v, want SmallBomb1", got)
	}
	if inv.Has(entities.SmallBomb) {
		t.Error("bomb not taken from inventory")
	}
}

func TestDeadSinglePlayerLosesLife(t *testing.T) {
	r := newTestRound()
	r.collected[0] = 50
	r.roster.Actor(0).Dead = true

	res := state.RoundResult{Collected: r.collected, Dead: []bool{!r.alive(0)}}
	r.game.EndOfRound(res)

	p := r.game.Players[0]
	if p.Lives != state.StartingLives-1 || p.Cash != 853 {
		t.Errorf("lives = %d, cash = %d", p.Lives, p.Cash)
	}
}
