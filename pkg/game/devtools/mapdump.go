// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/leonelquinteros/gotext"

	"minebombers/pkg/engine/world"
	"minebombers/pkg/game/entities"
	"minebombers/pkg/game/level"
	"minebombers/pkg/game/renderer"
)

const mapDumpFilename = "map.txt"

// cellSymbol returns the single-character symbol for a cell (no actor overlay).
// If revealedOnly is true, hidden cells return the fog glyph.
func cellSymbol(m *level.Map, c world.Cursor, revealedOnly bool) rune {
	if revealedOnly && m.Fog.IsHidden(c) {
		return renderer.GlyphFog
	}
	return renderer.Glyph(m.Level.At(c))
}

// writeMapGrid writes the board to w with living players drawn on top.
func writeMapGrid(w io.Writer, m *level.Map, actors []entities.Position, revealedOnly bool) {
	players := map[world.Cursor]bool{}
	for _, a := range actors {
		if a.Kind == entities.KindPlayer && !a.Dead {
			players[a.Cursor] = true
		}
	}
	for row := 0; row < world.Rows; row++ {
		for col := 0; col < world.Cols; col++ {
			c := world.Cursor{Row: row, Col: col}
			if players[c] {
				fmt.Fprint(w, string(renderer.GlyphPlayer))
				continue
			}
			fmt.Fprintf(w, "%c", cellSymbol(m, c, revealedOnly))
		}
		fmt.Fprintln(w)
	}
}

// DumpMap writes a full debug dump: metadata, legend, revealed-only map,
// fully-revealed map, and lists of armed cells and actors.
// Format is human-readable (sections, key: value, consistent structure).
func DumpMap(w io.Writer, m *level.Map, actors []entities.Position) {
	// --- Metadata ---
	fmt.Fprintln(w, "=== MAP DUMP DEBUG (board layers, actors) ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "grid_rows: %d\n", world.Rows)
	fmt.Fprintf(w, "grid_cols: %d\n", world.Cols)
	fmt.Fprintf(w, "coordinate_system: row,col (0-based, row=vertical, col=horizontal)\n")
	fmt.Fprintf(w, "hidden_cells: %d\n", m.Fog.HiddenCount())
	fmt.Fprintf(w, "treasures: %d\n", m.Level.Count(level.State.IsTreasure))
	fmt.Fprintf(w, "exits: %d\n", m.Level.CountState(level.Exit))
	fmt.Fprintln(w, "")

	// --- Legend ---
	fmt.Fprintln(w, "--- Legend (cell symbols) ---")
	for _, e := range renderer.Legend {
		fmt.Fprintf(w, "%c = %s\n", e.Glyph, gotext.Get(e.Key))
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Map (revealed cells only; hidden = blank) ---")
	writeMapGrid(w, m, actors, true)
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Map (fully revealed; full layout) ---")
	writeMapGrid(w, m, actors, false)
	fmt.Fprintln(w, "")

	// Anything with a running timer
	fmt.Fprintln(w, "Timers:")
	m.Timer.ForEachCell(func(c world.Cursor, timer uint16) {
		if timer == 0 {
			return
		}
		fmt.Fprintf(w, "  row: %d col: %d state: %v timer: %d hits: %d\n", c.Row, c.Col, m.Level.At(c), timer, m.Hits.At(c))
	})
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "Actors:")
	if len(actors) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for _, a := range actors {
		fmt.Fprintf(w, "  index: %d kind: %v row: %d col: %d facing: %v health: %d dead: %v\n",
			a.Index, a.Kind, a.Cursor.Row, a.Cursor.Col, a.Facing, a.Health, a.Dead)
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "=== END MAP DUMP ===")
}

// DumpMapToFile writes DumpMap output to map.txt in the current directory
// and returns its absolute path.
func DumpMapToFile(m *level.Map, actors []entities.Position) (string, error) {
	absPath, err := filepath.Abs(mapDumpFilename)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	DumpMap(f, m, actors)

	if err := f.Sync(); err != nil {
		return absPath, err
	}
	return absPath, nil
}
