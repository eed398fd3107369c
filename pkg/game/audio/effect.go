// Package audio plays the sound effects requested by the simulation.
package audio

import "minebombers/pkg/engine/world"

// Effect identifies a sound effect
type Effect int

const (
	Kili Effect = iota
	Picaxe
	Explos1
	Explos2
	Explos3
	Explos4
	Explos5
	Aargh
	Karjaisu
	Pikkupom
	Urethan
)

// String returns the effect name
func (e Effect) String() string {
	switch e {
	case Kili:
		return "Kili"
	case Picaxe:
		return "Picaxe"
	case Explos1:
		return "Explos1"
	case Explos2:
		return "Explos2"
	case Explos3:
		return "Explos3"
	case Explos4:
		return "Explos4"
	case Explos5:
		return "Explos5"
	case Aargh:
		return "Aargh"
	case Karjaisu:
		return "Karjaisu"
	case Pikkupom:
		return "Pikkupom"
	case Urethan:
		return "Urethan"
	default:
		return "Unknown"
	}
}

// NormalFrequency is the playback rate at which an effect sounds at its natural pitch.
const NormalFrequency = 11000

// Sink receives sound requests. Implementations must not block.
type Sink interface {
	Play(effect Effect, frequency int, at world.Cursor)
}

// Request is one recorded call to Play.
type Request struct {
	Effect    Effect
	Frequency int
	At        world.Cursor
}

// Recorder is a Sink that keeps every request, for tests and replays.
type Recorder struct {
	Requests []Request
}

// Play implements Sink.
func (r *Recorder) Play(effect Effect, frequency int, at world.Cursor) {
	r.Requests = append(r.Requests, Request{Effect: effect, Frequency: frequency, At: at})
}

// Count returns how many times effect was requested.
func (r *Recorder) Count(effect Effect) int {
	n := 0
	for _, req := range r.Requests {
		if req.Effect == effect {
			n++
		}
	}
	return n
}

// Silent is a Sink that drops every request.
type Silent struct{}

// Play implements Sink.
func (Silent) Play(Effect, int, world.Cursor) {}
