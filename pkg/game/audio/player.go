package audio

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"minebombers/pkg/engine/world"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// voice describes how an effect is synthesised at its natural pitch
type voice struct {
	tone     float64 // base frequency in Hz; 0 for pure noise
	noise    float64 // share of white noise mixed in, 0..1
	duration time.Duration
	volume   float64
}

var voices = map[Effect]voice{
	Kili:     {tone: 1800, duration: 80 * time.Millisecond, volume: 0.4},
	Picaxe:   {tone: 900, noise: 0.3, duration: 60 * time.Millisecond, volume: 0.5},
	Explos1:  {tone: 70, noise: 0.8, duration: 500 * time.Millisecond, volume: 0.8},
	Explos2:  {tone: 55, noise: 0.85, duration: 700 * time.Millisecond, volume: 0.9},
	Explos3:  {tone: 40, noise: 0.9, duration: 1200 * time.Millisecond, volume: 1},
	Explos4:  {tone: 120, noise: 0.95, duration: 400 * time.Millisecond, volume: 0.6},
	Explos5:  {tone: 90, noise: 0.7, duration: 600 * time.Millisecond, volume: 0.7},
	Aargh:    {tone: 220, noise: 0.2, duration: 450 * time.Millisecond, volume: 0.7},
	Karjaisu: {tone: 330, noise: 0.1, duration: 300 * time.Millisecond, volume: 0.6},
	Pikkupom: {tone: 110, noise: 0.6, duration: 250 * time.Millisecond, volume: 0.6},
	Urethan:  {tone: 160, noise: 0.4, duration: 350 * time.Millisecond, volume: 0.5},
}

// Player is a Sink that synthesises effects through the system speaker.
// Requests are mixed in and return immediately.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer creates a player. Call Initialize before sounds are heard.
func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close silences everything still playing
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// Play implements Sink. frequency scales the pitch relative to NormalFrequency
// and the column of `at` pans the sound between the speakers.
func (p *Player) Play(effect Effect, frequency int, at world.Cursor) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	v, ok := voices[effect]
	if !ok {
		return
	}

	speaker.Lock()
	p.mixer.Add(stream(v, frequency, at))
	speaker.Unlock()
}

// stream builds the finite streamer for one effect request.
func stream(v voice, frequency int, at world.Cursor) beep.Streamer {
	pitch := float64(frequency) / NormalFrequency
	if pitch <= 0 {
		pitch = 1
	}
	// higher playback rate also makes the sample shorter
	duration := time.Duration(float64(v.duration) / pitch)

	src := beep.Take(sampleRate.N(duration), newTone(v.tone*pitch, v.noise, sampleRate.N(duration)))
	pan := &effects.Pan{Streamer: src, Pan: panFor(at)}
	return &effects.Volume{Streamer: pan, Base: 2, Volume: math.Log2(v.volume)}
}

// panFor maps a board column to a stereo position in [-1, 1].
func panFor(at world.Cursor) float64 {
	return float64(at.Col)/float64(world.Cols-1)*2 - 1
}

// tone generates a decaying mix of a sine wave and white noise
type tone struct {
	freq   float64
	noise  float64
	pos    int
	length int
}

func newTone(freq, noise float64, length int) *tone {
	return &tone{freq: freq, noise: noise, length: length}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		tm := float64(t.pos) / float64(sampleRate)
		env := 1.0
		if t.length > 0 {
			env = 1 - float64(t.pos)/float64(t.length)
			if env < 0 {
				env = 0
			}
		}
		s := (1-t.noise)*math.Sin(2*math.Pi*t.freq*tm) + t.noise*(rand.Float64()*2-1)
		s *= env
		samples[i][0] = s
		samples[i][1] = s
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }
