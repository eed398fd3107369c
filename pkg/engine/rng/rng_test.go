package rng

import "testing"

func TestScriptReplaysValues(t *testing.T) {
	s := NewScript(3, 7, 12)
	if got := s.Intn(10); got != 3 {
		t.Errorf("Intn = %d, want 3", got)
	}
	if got := s.Intn(5); got != 2 {
		t.Errorf("Intn = %d, want 2", got)
	}
	if got := Range(s, 10, 20); got != 12 {
		t.Errorf("Range = %d, want 12", got)
	}
	if got := s.Intn(4); got != 0 {
		t.Errorf("exhausted Intn = %d, want fallback 0", got)
	}
	if s.Consumed() != 3 {
		t.Errorf("Consumed = %d, want 3", s.Consumed())
	}
}

func TestSeededSourceIsDeterministic(t *testing.T) {
	a, b := New(42), New(42)
	for i := 0; i < 100; i++ {
		if x, y := a.Intn(1000), b.Intn(1000); x != y {
			t.Fatalf("draw %d differs: %d vs %d", i, x, y)
		}
	}
}
