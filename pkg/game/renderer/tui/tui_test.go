package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gookit/color"

	"minebombers/pkg/engine/rng"
	"minebombers/pkg/engine/terminal"
	"minebombers/pkg/engine/world"
	"minebombers/pkg/game/entities"
	"minebombers/pkg/game/level"
)

func newTestRenderer(size terminal.Size) (*TUIRenderer, *bytes.Buffer) {
	var buf bytes.Buffer
	r := NewWithOutput(&buf, func() terminal.Size { return size })
	r.Init()
	return r, &buf
}

func printedLines(buf *bytes.Buffer) []string {
	return strings.Split(strings.TrimSuffix(color.ClearCode(buf.String()), "\n"), "\n")
}

func TestPrintMapFullBoard(t *testing.T) {
	r, buf := newTestRenderer(terminal.Size{Width: 120, Height: 60})
	g := level.NewGrid()
	g.Set(world.NewCursor(0, 0), level.MetalWall)
	g.Set(world.NewCursor(2, 3), level.GoldBar)
	m := level.NewMap(g, rng.NewScript())

	players := []entities.Position{{Cursor: world.NewCursor(1, 1), Kind: entities.KindPlayer}}
	r.PrintMap(m, players, false)

	lines := printedLines(buf)
	if len(lines) != world.Rows {
		t.Fatalf("printed %d rows, want %d", len(lines), world.Rows)
	}
	if len(lines[0]) != world.Cols {
		t.Errorf("row width = %d, want %d", len(lines[0]), world.Cols)
	}
	if lines[0][0] != '#' || lines[1][1] != '@' || lines[2][3] != '$' {
		t.Errorf("unexpected glyphs: %q %q %q", lines[0][:2], lines[1][:2], lines[2][:4])
	}
}

func TestPrintMapCropsToTerminal(t *testing.T) {
	r, buf := newTestRenderer(terminal.Size{Width: 20, Height: 13})
	m := level.NewMap(level.NewGrid(), rng.NewScript())

	r.PrintMap(m, nil, false)

	lines := printedLines(buf)
	if len(lines) != 10 {
		t.Errorf("printed %d rows, want 10", len(lines))
	}
	for _, l := range lines {
		if len(l) != 20 {
			t.Fatalf("row width = %d, want 20", len(l))
		}
	}
}

func TestPrintMapHidesFog(t *testing.T) {
	r, buf := newTestRenderer(terminal.Size{Width: 120, Height: 60})
	m := level.NewMap(level.NewGrid(), rng.NewScript())
	m.Fog.Reveal(world.NewCursor(0, 1))

	r.PrintMap(m, nil, true)

	lines := printedLines(buf)
	if lines[0][:3] != " . " {
		t.Errorf("first row = %q, want fog around one revealed cell", lines[0][:3])
	}
}

func TestFormatText(t *testing.T) {
	r, _ := newTestRenderer(terminal.Default)
	got := color.ClearCode(r.FormatText("GT{LEGEND_GOLD} ITEM{%s}", "Drill"))
	if got != "LEGEND_GOLD Drill" {
		t.Errorf("FormatText = %q", got)
	}
}
