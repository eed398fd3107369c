// Package tui prints battlefields to a terminal with ANSI colours.
package tui

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"minebombers/pkg/engine/terminal"
	"minebombers/pkg/engine/world"
	"minebombers/pkg/game/entities"
	"minebombers/pkg/game/level"
	"minebombers/pkg/game/renderer"
)

// Rows kept free around the map for the header and the prompt.
const ViewportTopMargin = 3

// dynamicGet is used for runtime translation key lookups.
// We use a function variable to avoid go vet's non-constant format string check,
// since we intentionally look up translation keys dynamically from markup.
var dynamicGet = gotext.Get

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out  io.Writer
	size func() terminal.Size

	styles map[renderer.TextStyle]color.Style

	regexpStringFunctions *regexp.Regexp
}

// New creates a renderer printing to stdout and sized to its terminal
func New() *TUIRenderer {
	return NewWithOutput(os.Stdout, terminal.Stdout)
}

// NewWithOutput creates a renderer printing to out. size is asked for the
// screen dimensions every time a map is printed.
func NewWithOutput(out io.Writer, size func() terminal.Size) *TUIRenderer {
	return &TUIRenderer{out: out, size: size}
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() {
	t.styles = map[renderer.TextStyle]color.Style{
		renderer.StyleOpen:        {color.FgGray},
		renderer.StyleWall:        {color.FgWhite, color.OpBold},
		renderer.StyleSoil:        {color.FgYellow},
		renderer.StyleRock:        {color.FgGray, color.OpBold},
		renderer.StyleBrick:       {color.FgRed},
		renderer.StyleBomb:        {color.FgRed, color.OpBold},
		renderer.StyleFire:        {color.FgLightYellow, color.OpBold},
		renderer.StyleTreasure:    {color.FgYellow, color.OpBold},
		renderer.StyleItem:        {color.FgCyan},
		renderer.StyleCorpse:      {color.FgRed},
		renderer.StyleLife:        {color.FgGreen},
		renderer.StyleFog:         {color.FgBlack},
		renderer.StylePlayer:      {color.FgGreen, color.BgBlack, color.OpBold},
		renderer.StyleAction:      {color.FgMagenta},
		renderer.StyleActionShort: {color.FgMagenta, color.OpBold},
		renderer.StyleSubtle:      {color.FgGray, color.OpBold},
	}

	t.regexpStringFunctions = regexp.MustCompile(`([a-zA-Z_]*){([a-z A-Z0-9_,:]+)}`)
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	s, ok := t.styles[style]
	if !ok {
		return text
	}
	return s.Sprint(text)
}

// FormatText formats a message with the markup system
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	ret := fmt.Sprintf(msg, args...)

	matches := t.regexpStringFunctions.FindAllStringSubmatch(ret, -1)

	for _, match := range matches {
		function := match[1]
		operand := match[2]

		var val string

		switch function {
		case "GT":
			val = dynamicGet(operand)
		case "ITEM":
			val = t.StyleText(operand, renderer.StyleItem)
		case "GOLD":
			val = t.StyleText(operand, renderer.StyleTreasure)
		case "ACTION":
			val = t.StyleText(operand[0:1], renderer.StyleActionShort) + t.StyleText(operand[1:], renderer.StyleAction)
		default:
			ret = fmt.Sprintf("ERROR, function not found: %v -> %v", function, operand)
		}

		ret = strings.Replace(ret, match[0], val, -1)
	}

	return ret
}

// GetViewportSize returns how much of the board fits on screen
func (t *TUIRenderer) GetViewportSize() (rows, cols int) {
	size := t.size()
	rows = min(world.Rows, max(1, size.Height-ViewportTopMargin))
	cols = min(world.Cols, max(1, size.Width))
	return rows, cols
}

// viewport returns the top-left corner of the visible window, centered on
// focus where the board is larger than the screen.
func (t *TUIRenderer) viewport(focus world.Cursor) (top, left, rows, cols int) {
	rows, cols = t.GetViewportSize()
	top = min(max(0, focus.Row-rows/2), world.Rows-rows)
	left = min(max(0, focus.Col-cols/2), world.Cols-cols)
	return top, left, rows, cols
}

// PrintMap draws the board, centered on the first living player when it does not fit
func (t *TUIRenderer) PrintMap(m *level.Map, actors []entities.Position, revealedOnly bool) {
	players := map[world.Cursor]bool{}
	focus := world.Cursor{Row: world.Rows / 2, Col: world.Cols / 2}
	focused := false
	for _, a := range actors {
		if a.Kind != entities.KindPlayer || a.Dead {
			continue
		}
		players[a.Cursor] = true
		if !focused {
			focus, focused = a.Cursor, true
		}
	}

	top, left, rows, cols := t.viewport(focus)
	var sb strings.Builder
	for row := top; row < top+rows; row++ {
		for col := left; col < left+cols; col++ {
			c := world.Cursor{Row: row, Col: col}
			switch {
			case players[c]:
				sb.WriteString(t.StyleText(string(renderer.GlyphPlayer), renderer.StylePlayer))
			case revealedOnly && m.Fog.IsHidden(c):
				sb.WriteString(t.StyleText(string(renderer.GlyphFog), renderer.StyleFog))
			default:
				s := m.Level.At(c)
				sb.WriteString(t.StyleText(string(renderer.Glyph(s)), renderer.Style(s)))
			}
		}
		sb.WriteByte('\n')
	}
	fmt.Fprint(t.out, sb.String())
}

// PrintLegend prints one line per glyph
func (t *TUIRenderer) PrintLegend() {
	for _, e := range renderer.Legend {
		glyph := string(e.Glyph)
		if e.Glyph == renderer.GlyphPlayer {
			glyph = t.StyleText(glyph, renderer.StylePlayer)
		}
		fmt.Fprintf(t.out, "%s  %s\n", glyph, t.FormatText("GT{%s}", e.Key))
	}
}
