// Package renderer defines how a battlefield is presented and the glyph
// table shared by every output backend.
package renderer

import (
	"minebombers/pkg/game/entities"
	"minebombers/pkg/game/level"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleOpen
	StyleWall
	StyleSoil
	StyleRock
	StyleBrick
	StyleBomb
	StyleFire
	StyleTreasure
	StyleItem
	StyleCorpse
	StyleLife
	StyleFog
	StylePlayer
	StyleAction
	StyleActionShort
	StyleSubtle
)

// Renderer is implemented by output backends.
type Renderer interface {
	// Init initializes the renderer (colors, etc.)
	Init()

	// StyleText applies a style to text and returns the styled string
	StyleText(text string, style TextStyle) string

	// FormatText formats a message with the renderer's markup system
	FormatText(msg string, args ...any) string

	// PrintMap draws the board with actors on top. Hidden cells are drawn
	// as fog when revealedOnly is set.
	PrintMap(m *level.Map, actors []entities.Position, revealedOnly bool)

	// PrintLegend explains every glyph PrintMap uses
	PrintLegend()

	// GetViewportSize returns the number of board rows and columns that fit on screen
	GetViewportSize() (rows, cols int)
}

// Current holds the active renderer instance
var Current Renderer
