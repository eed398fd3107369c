package main

import (
	"fmt"

	engine "minebombers/pkg/engine/world"
	"minebombers/pkg/game/entities"
	"minebombers/pkg/game/level"
	"minebombers/pkg/game/renderer"
	"minebombers/pkg/game/state"
	"minebombers/pkg/game/world"
)

// round ties one battlefield to the match it is played in
type round struct {
	game      *state.Game
	w         *world.World
	roster    *entities.Roster
	collected []int
	selected  []entities.Equipment
}

func (r *round) alive(i int) bool {
	a := r.roster.Actor(i)
	return a != nil && !a.Dead
}

// step moves player i one cell towards dir. Gold in the way is picked up
// first; the player only walks into free cells.
func (r *round) step(i int, dir engine.Direction) bool {
	a := r.roster.Actor(i)
	a.Facing = dir
	next := a.Pos.To(dir)
	m := r.w.Map()

	s := m.Level.At(next)
	if v := s.GoldValue(); v > 0 {
		r.collected[i] += v
		m.Level.Set(next, level.Passage)
		s = level.Passage
	}
	if s == level.Exit && r.game.IsSinglePlayer() {
		a.Pos = next
		r.w.Exit()
		return true
	}
	if !s.IsPassable() {
		r.w.RevealView(i)
		return false
	}
	a.Pos = next
	r.w.RevealView(i)
	return true
}

// cycleItem moves the selection of player i to the next usable item it carries.
func (r *round) cycleItem(i, delta int) entities.Equipment {
	if r.selected == nil {
		r.selected = make([]entities.Equipment, len(r.game.Players))
	}
	inv := &r.game.Players[i].Inventory
	cur := r.selected[i]
	for range entities.EquipmentCount {
		cur = entities.Equipment((int(cur) + delta + entities.EquipmentCount) % entities.EquipmentCount)
		if cur.IsSelectable() && inv.Has(cur) {
			break
		}
	}
	r.selected[i] = cur
	return cur
}

// use fires the selected item of player i. Bombs are dropped on the player's cell.
func (r *round) use(i int) bool {
	if r.selected == nil || !r.game.Players[i].Inventory.Has(r.selected[i]) {
		r.cycleItem(i, 1)
	}
	a := r.roster.Actor(i)
	return r.w.UseItem(i, &r.game.Players[i].Inventory, r.selected[i], a.Pos, a.Facing)
}

// demo runs the round unattended: players wander, drop whatever they carry
// and back off from it.
func (r *round) demo(ticks int) {
	players := r.roster.Players()
	for t := range ticks {
		if r.w.IsEndOfRound() {
			break
		}
		for i := range players {
			if !r.alive(i) || t%10 != 0 {
				continue
			}
			a := r.roster.Actor(i)
			if t%40 == 0 {
				r.use(i)
				a.Facing = a.Facing.Opposite()
			}
			if !r.step(i, a.Facing) {
				a.Facing = (a.Facing + 1) % 4
			}
		}
		r.w.Tick()
	}
	renderer.Current.PrintMap(r.w.Map(), r.roster.Positions(), *darkness)
}

// finish settles the round into the match and prints the standings
func (r *round) finish() {
	res := state.RoundResult{
		Collected:     r.collected,
		Dead:          make([]bool, len(r.game.Players)),
		GoldRemaining: r.w.GoldRemaining(),
	}
	for i := range res.Dead {
		res.Dead[i] = !r.alive(i)
	}
	r.game.EndOfRound(res)

	fmt.Println(renderer.Current.FormatText("GT{ROUND_OVER} %d", r.w.Round()))
	for _, p := range r.game.Players {
		fmt.Println(renderer.Current.FormatText("%s: GOLD{%d}", p.Name, p.Cash))
	}
	for _, msg := range r.game.Messages {
		fmt.Println(msg)
	}
}
