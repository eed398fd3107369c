package audio

import (
	"testing"

	"minebombers/pkg/engine/world"
)

func TestRecorder(t *testing.T) {
	var r Recorder
	r.Play(Explos1, NormalFrequency, world.NewCursor(3, 3))
	r.Play(Explos1, 5000, world.NewCursor(4, 4))
	r.Play(Aargh, NormalFrequency, world.NewCursor(4, 4))
	if got := r.Count(Explos1); got != 2 {
		t.Errorf("Count(Explos1) = %d, want 2", got)
	}
	if r.Requests[1].Frequency != 5000 {
		t.Errorf("frequency = %d, want 5000", r.Requests[1].Frequency)
	}
}

func TestUninitializedPlayerIsSilent(t *testing.T) {
	p := NewPlayer()
	// must not block or panic without a speaker
	p.Play(Explos3, NormalFrequency, world.NewCursor(0, 0))
	p.Close()
}

func TestStreamLength(t *testing.T) {
	v := voices[Pikkupom]
	normal := drain(stream(v, NormalFrequency, world.NewCursor(10, 10)))
	fast := drain(stream(v, 2*NormalFrequency, world.NewCursor(10, 10)))
	if normal != sampleRate.N(v.duration) {
		t.Errorf("normal length = %d, want %d", normal, sampleRate.N(v.duration))
	}
	if fast >= normal {
		t.Errorf("double frequency length %d not shorter than %d", fast, normal)
	}
}

func TestPanRange(t *testing.T) {
	if got := panFor(world.NewCursor(0, 0)); got != -1 {
		t.Errorf("pan left = %v, want -1", got)
	}
	if got := panFor(world.NewCursor(0, world.Cols-1)); got != 1 {
		t.Errorf("pan right = %v, want 1", got)
	}
}

func drain(s interface {
	Stream([][2]float64) (int, bool)
}) int {
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok || n == 0 {
			return total
		}
	}
}
