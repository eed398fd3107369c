// Package state keeps the match-level bookkeeping that outlives a single
// round: player cash, lives, statistics and the message log.
package state

import (
	"minebombers/pkg/game/entities"
)

// WinCondition decides who wins the match once the last round is played
type WinCondition int

// Win conditions
const (
	WinByMoney WinCondition = iota
	WinByRounds
)

// Options are the match settings chosen before the first round
type Options struct {
	Players    int
	Treasures  int
	Rounds     int
	Cash       int
	Darkness   bool
	BombDamage int
	Win        WinCondition
}

// DefaultOptions returns the standard match settings
func DefaultOptions() Options {
	return Options{
		Players:    2,
		Treasures:  45,
		Rounds:     15,
		Cash:       750,
		Darkness:   false,
		BombDamage: 100,
		Win:        WinByMoney,
	}
}

// StartingLives is how many deaths a single player may survive.
const StartingLives = 3

// Stats tracks one player over the whole match
type Stats struct {
	Rounds     int
	RoundsWon  int
	Deaths     int
	TotalMoney int
}

// Player is a participant of the match. Cash only holds money that is safe;
// gold picked up during a round is settled by EndOfRound.
type Player struct {
	Name      string
	Cash      int
	Lives     int
	Inventory entities.Inventory
	Stats     Stats
}

// Game represents the match state
type Game struct {
	Options Options
	Players []*Player

	Round int // Current round number, starting at 1

	Messages []string
}

// NewGame creates a match for the named players
func NewGame(names []string, opts Options) *Game {
	g := &Game{
		Options:  opts,
		Round:    1,
		Messages: make([]string, 0),
	}
	for _, name := range names {
		g.Players = append(g.Players, &Player{
			Name:  name,
			Cash:  opts.Cash,
			Lives: StartingLives,
		})
	}
	return g
}

// IsSinglePlayer reports whether only one player takes part
func (g *Game) IsSinglePlayer() bool {
	return len(g.Players) == 1
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	const maxMessages = 5
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}
