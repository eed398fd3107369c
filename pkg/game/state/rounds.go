package state

import (
	"github.com/leonelquinteros/gotext"
)

// InterestPercent is the interest paid on saved cash after every round.
const InterestPercent = 7

// Players that end a round below MinimumCash are topped up by Bailout.
const (
	MinimumCash = 100
	Bailout     = 150
)

// RoundResult is what a finished round hands back to the match
type RoundResult struct {
	// Collected is the gold each player picked up this round, by player index.
	Collected []int
	// Dead marks the players that did not survive the round.
	Dead []bool
	// GoldRemaining is the value still lying on the board.
	GoldRemaining int
}

func (r RoundResult) collected(i int) int {
	if i < len(r.Collected) {
		return r.Collected[i]
	}
	return 0
}

func (r RoundResult) dead(i int) bool {
	return i < len(r.Dead) && r.Dead[i]
}

// EndOfRound pays interest on saved cash and settles the gold collected
// during the round. A single player keeps everything, losing a life on death.
// In multiplayer the dead forfeit their pickings to the survivors.
func (g *Game) EndOfRound(r RoundResult) {
	for _, p := range g.Players {
		p.Cash = ((100+InterestPercent)*p.Cash + 50) / 100
	}

	if g.IsSinglePlayer() {
		p := g.Players[0]
		p.Cash += r.collected(0)
		if r.dead(0) {
			p.Lives--
			p.Stats.Deaths++
			g.AddMessage(gotext.Get("MSG_LIFE_LOST", p.Lives))
		}
	} else {
		g.distributeMoney(r)
	}

	for i, p := range g.Players {
		p.Stats.TotalMoney += r.collected(i)
		p.Stats.Rounds++
	}
}

func (g *Game) distributeMoney(r RoundResult) {
	lost, alive := 0, 0
	for i, p := range g.Players {
		if r.dead(i) {
			lost += r.collected(i)
			p.Stats.Deaths++
		} else {
			alive++
		}
	}
	if alive == 1 {
		// the last one standing also takes 40% of what is left in the mine
		lost += r.GoldRemaining * 2 / 5
	}

	for i, p := range g.Players {
		if !r.dead(i) {
			p.Cash += lost/alive + r.collected(i)
			if alive != len(g.Players) {
				p.Stats.RoundsWon++
				g.AddMessage(gotext.Get("MSG_ROUND_SURVIVED", p.Name))
			}
		}
		if p.Cash < MinimumCash {
			p.Cash += Bailout
		}
	}
}

// IsFinalRound returns true if the current round is the last one of the match.
func (g *Game) IsFinalRound() bool {
	return g.Round >= g.Options.Rounds
}

// IsOver reports whether the match has ended: all rounds played, or a
// single player out of lives.
func (g *Game) IsOver() bool {
	if g.IsSinglePlayer() && g.Players[0].Lives <= 0 {
		return true
	}
	return g.Round > g.Options.Rounds
}

// NextRound advances to the next round and returns false once the match is over.
func (g *Game) NextRound() bool {
	g.Round++
	g.ClearMessages()
	return !g.IsOver()
}

// Leader returns the index of the player ahead under the match's win
// condition. Ties go to the lower index.
func (g *Game) Leader() int {
	best := 0
	for i, p := range g.Players {
		if g.score(p) > g.score(g.Players[best]) {
			best = i
		}
	}
	return best
}

func (g *Game) score(p *Player) int {
	if g.Options.Win == WinByRounds {
		return p.Stats.RoundsWon
	}
	return p.Cash
}
