package level

import (
	"errors"
	"fmt"
	"os"

	"minebombers/pkg/engine/world"
)

// rowStride is the length of one persisted row: the cell bytes plus CR LF.
const rowStride = world.Cols + 2

// FileSize is the exact length of a persisted map.
const FileSize = world.Rows * rowStride

// ErrInvalidMapSize is returned when persisted map data has the wrong length.
var ErrInvalidMapSize = errors.New("invalid map size")

// MarshalBinary encodes the grid in the persisted map format: one byte per
// cell, each row terminated by CR LF.
func (g *Grid) MarshalBinary() ([]byte, error) {
	return g.Encode(), nil
}

// Encode is MarshalBinary without the error result.
func (g *Grid) Encode() []byte {
	data := make([]byte, 0, FileSize)
	for row := 0; row < world.Rows; row++ {
		for col := 0; col < world.Cols; col++ {
			data = append(data, byte(g.At(world.Cursor{Row: row, Col: col})))
		}
		data = append(data, '\r', '\n')
	}
	return data
}

// UnmarshalBinary decodes the persisted map format. The row terminators are
// not inspected.
func (g *Grid) UnmarshalBinary(data []byte) error {
	if len(data) != FileSize {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidMapSize, len(data), FileSize)
	}
	for row := 0; row < world.Rows; row++ {
		line := data[row*rowStride : row*rowStride+world.Cols]
		for col, b := range line {
			g.Set(world.Cursor{Row: row, Col: col}, State(b))
		}
	}
	return nil
}

// Parse decodes a persisted map.
func Parse(data []byte) (*Grid, error) {
	g := &Grid{}
	if err := g.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	return g, nil
}

// Load reads a persisted map from disk.
func Load(path string) (*Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read map %s: %w", path, err)
	}
	g, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse map %s: %w", path, err)
	}
	return g, nil
}

// Save writes the grid to disk in the persisted format.
func (g *Grid) Save(path string) error {
	if err := os.WriteFile(path, g.Encode(), 0o644); err != nil {
		return fmt.Errorf("write map %s: %w", path, err)
	}
	return nil
}
