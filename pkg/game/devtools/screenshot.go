package devtools

import (
	"fmt"
	"html"
	"io"
	"os"
	"strings"
	"time"

	"minebombers/pkg/engine/world"
	"minebombers/pkg/game/entities"
	"minebombers/pkg/game/level"
	"minebombers/pkg/game/renderer"
)

var styleClasses = map[renderer.TextStyle]string{
	renderer.StyleOpen:     "open",
	renderer.StyleWall:     "wall",
	renderer.StyleSoil:     "soil",
	renderer.StyleRock:     "rock",
	renderer.StyleBrick:    "brick",
	renderer.StyleBomb:     "bomb",
	renderer.StyleFire:     "fire",
	renderer.StyleTreasure: "treasure",
	renderer.StyleItem:     "item",
	renderer.StyleCorpse:   "corpse",
	renderer.StyleLife:     "life",
	renderer.StyleFog:      "fog",
	renderer.StylePlayer:   "player",
}

// WriteScreenshotHTML renders the whole board as an HTML page
func WriteScreenshotHTML(w io.Writer, m *level.Map, actors []entities.Position, round int) error {
	var page strings.Builder

	page.WriteString(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>MineBombers - Screenshot</title>
    <style>
        body {
            background-color: #1a1a2e;
            color: #eee;
            font-family: 'Courier New', monospace;
            padding: 20px;
        }
        .header {
            color: #bb86fc;
            font-size: 18px;
            margin-bottom: 10px;
        }
        .map-container {
            background-color: #0f0f1a;
            padding: 20px;
            border-radius: 8px;
            display: inline-block;
            margin: 20px 0;
        }
        .map-row {
            white-space: pre;
            line-height: 1.2;
            font-size: 16px;
        }
        .player { color: #00ff00; font-weight: bold; }
        .open { color: #444; }
        .wall { color: #ddd; font-weight: bold; }
        .soil { color: #aa8833; }
        .rock { color: #888; font-weight: bold; }
        .brick { color: #aa3333; }
        .bomb { color: #ff4444; font-weight: bold; }
        .fire { color: #ffff66; font-weight: bold; }
        .treasure { color: #ffcc00; font-weight: bold; }
        .item { color: #00ffff; }
        .corpse { color: #880000; }
        .life { color: #00aa00; }
        .fog { color: #1a1a2e; }
        .actors { margin-top: 20px; color: #888; }
    </style>
</head>
<body>
`)

	page.WriteString(fmt.Sprintf(`    <div class="header">Round %d</div>`+"\n", round))
	page.WriteString(`    <div class="map-container">` + "\n")

	players := map[world.Cursor]bool{}
	for _, a := range actors {
		if a.Kind == entities.KindPlayer && !a.Dead {
			players[a.Cursor] = true
		}
	}

	for row := 0; row < world.Rows; row++ {
		page.WriteString(`        <div class="map-row">`)
		for col := 0; col < world.Cols; col++ {
			icon, class := cellHTMLInfo(m, world.Cursor{Row: row, Col: col}, players)
			page.WriteString(fmt.Sprintf(`<span class="%s">%s</span>`, class, icon))
		}
		page.WriteString("</div>\n")
	}
	page.WriteString(`    </div>` + "\n")

	page.WriteString(`    <div class="actors">`)
	for i, a := range actors {
		if i > 0 {
			page.WriteString(", ")
		}
		page.WriteString(html.EscapeString(fmt.Sprintf("%v %d/%d", a.Kind, a.Cursor.Row, a.Cursor.Col)))
	}
	page.WriteString(`</div>` + "\n")

	page.WriteString(`</body>
</html>
`)

	_, err := io.WriteString(w, page.String())
	return err
}

// cellHTMLInfo returns the icon and CSS class for a cell
func cellHTMLInfo(m *level.Map, c world.Cursor, players map[world.Cursor]bool) (string, string) {
	switch {
	case players[c]:
		return string(renderer.GlyphPlayer), styleClasses[renderer.StylePlayer]
	case m.Fog.IsHidden(c):
		return "&nbsp;", styleClasses[renderer.StyleFog]
	}
	s := m.Level.At(c)
	class, ok := styleClasses[renderer.Style(s)]
	if !ok {
		class = "open"
	}
	return html.EscapeString(string(renderer.Glyph(s))), class
}

// SaveScreenshotHTML saves the board as a timestamped HTML file and returns its name
func SaveScreenshotHTML(m *level.Map, actors []entities.Position, round int) (string, error) {
	timestamp := time.Now().Format("20060102-150405")
	filename := fmt.Sprintf("screenshot-%s.html", timestamp)

	f, err := os.Create(filename)
	if err != nil {
		return "", err
	}
	if err := WriteScreenshotHTML(f, m, actors, round); err != nil {
		f.Close()
		return "", err
	}
	return filename, f.Close()
}
