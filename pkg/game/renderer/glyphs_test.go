package renderer

import (
	"testing"

	"minebombers/pkg/game/level"
)

func TestEveryGlyphHasLegend(t *testing.T) {
	known := map[rune]bool{}
	for _, e := range Legend {
		if known[e.Glyph] {
			t.Errorf("glyph %q listed twice", e.Glyph)
		}
		known[e.Glyph] = true
	}
	for code := 0; code < 256; code++ {
		s := level.State(code)
		if g := Glyph(s); !known[g] {
			t.Errorf("%v drawn as %q, which has no legend entry", s, g)
		}
	}
}

func TestGlyph(t *testing.T) {
	tests := []struct {
		s    level.State
		want rune
	}{
		{level.Passage, '.'},
		{level.MetalWall, '#'},
		{level.Stone3, 'O'},
		{level.StoneTopLeft, 'O'},
		{level.GoldCrown, '$'},
		{level.Drill, 't'},
		{level.BigRadioYellow, 'r'},
		{level.Atomic2, 'A'},
		{level.State(0x5A), '?'},
	}
	for _, tt := range tests {
		if got := Glyph(tt.s); got != tt.want {
			t.Errorf("Glyph(%v) = %q, want %q", tt.s, got, tt.want)
		}
	}
}
