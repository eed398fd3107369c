// Package world runs the battlefield simulation for one round: bombs, chain
// reactions, spreading hazards and timed decay over the level layers.
// It extends the generic engine/world primitives with the game rules.
package world

import (
	"github.com/zyedidia/generic/mapset"

	"minebombers/pkg/engine/rng"
	"minebombers/pkg/engine/world"
	"minebombers/pkg/game/audio"
	"minebombers/pkg/game/entities"
	"minebombers/pkg/game/level"
)

// MaxChainReaction is the number of follow-up detonations a single
// detonation may trigger. Anything queued beyond it is dropped.
const MaxChainReaction = 200

// Actors gives the simulation read access to actor positions and a way to hurt them.
type Actors interface {
	Positions() []entities.Position
	ApplyDamage(index, damage int) entities.DamageResult
	Players() int
}

// Config holds per-round rule switches
type Config struct {
	// BombDamage is the percentage of blast damage players take in multiplayer games.
	BombDamage int
	// Darkness keeps the fog on; without it the whole board starts revealed.
	Darkness bool
}

// DefaultConfig returns the standard rules
func DefaultConfig() Config {
	return Config{BombDamage: 100, Darkness: false}
}

// Collaborators are the outside parts the simulation notifies. Nil fields
// fall back to silent implementations.
type Collaborators struct {
	Scene  Scene
	Audio  audio.Sink
	Actors Actors
}

// World owns the level layers of one round and advances them tick by tick.
type World struct {
	maps   *level.Map
	scene  Scene
	audio  audio.Sink
	actors Actors
	src    rng.Source
	cfg    Config

	flash bool
	shake int
	round int

	endCounter int
	exited     bool

	// chain reaction work queue
	queue   []world.Cursor
	pending mapset.Set[world.Cursor]
	chain   int

	// expansion marks
	frontier     world.Layer[bool]
	nextFrontier world.Layer[bool]

	detonations int
}

// New creates a world for the given map
func New(m *level.Map, c Collaborators, src rng.Source, cfg Config) *World {
	w := &World{
		maps:    m,
		scene:   c.Scene,
		audio:   c.Audio,
		actors:  c.Actors,
		src:     src,
		cfg:     cfg,
		pending: mapset.New[world.Cursor](),
	}
	if w.scene == nil {
		w.scene = NopScene{}
	}
	if w.audio == nil {
		w.audio = audio.Silent{}
	}
	if w.actors == nil {
		w.actors = noActors{}
	}
	if !cfg.Darkness {
		m.Fog.RevealAll()
	}
	return w
}

// Map returns the level layers
func (w *World) Map() *level.Map {
	return w.maps
}

// Flash reports whether an atomic blast lit up the screen this tick
func (w *World) Flash() bool {
	return w.flash
}

// Shake returns the remaining screen shake
func (w *World) Shake() int {
	return w.shake
}

// Round returns the number of ticks run so far
func (w *World) Round() int {
	return w.round
}

// Detonations returns how many cells have been detonated since the world was created
func (w *World) Detonations() int {
	return w.detonations
}

// GoldRemaining sums the value of all gold still lying on the board
func (w *World) GoldRemaining() int {
	total := 0
	for c := range world.AllCursors() {
		total += w.maps.Level.At(c).GoldValue()
	}
	return total
}

func (w *World) state(c world.Cursor) level.State {
	return w.maps.Level.At(c)
}

func (w *World) setState(c world.Cursor, s level.State) {
	w.maps.Level.Set(c, s)
}

func (w *World) setTimer(c world.Cursor, t int) {
	w.maps.Timer.Set(c, uint16(t))
}

func (w *World) setHits(c world.Cursor, h int) {
	w.maps.Hits.Set(c, int32(h))
}

func (w *World) play(effect audio.Effect, frequency int, c world.Cursor) {
	w.audio.Play(effect, frequency, c)
}

type noActors struct{}

func (noActors) Positions() []entities.Position { return nil }
func (noActors) ApplyDamage(int, int) entities.DamageResult { return entities.DamageResult{} }
func (noActors) Players() int { return 0 }
