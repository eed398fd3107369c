package devtools

import (
	"fmt"
	"io"
	"os"

	"github.com/vmihailenco/msgpack/v5"

	"minebombers/pkg/engine/world"
	"minebombers/pkg/game/level"
)

// Snapshot is a serialisable copy of every layer of a map.
type Snapshot struct {
	Round  int      `msgpack:"round"`
	Level  []byte   `msgpack:"level"`
	Hits   []int32  `msgpack:"hits"`
	Timer  []uint16 `msgpack:"timer"`
	Hidden []bool   `msgpack:"hidden"`
}

// TakeSnapshot copies the layers of m
func TakeSnapshot(m *level.Map, round int) Snapshot {
	s := Snapshot{
		Round:  round,
		Hits:   m.Hits.Values(),
		Timer:  m.Timer.Values(),
		Hidden: make([]bool, 0, world.Cells),
	}
	s.Level = make([]byte, 0, world.Cells)
	for c := range world.AllCursors() {
		s.Level = append(s.Level, byte(m.Level.At(c)))
		s.Hidden = append(s.Hidden, m.Fog.IsHidden(c))
	}
	return s
}

// Restore rebuilds a map from the snapshot
func (s Snapshot) Restore() (*level.Map, error) {
	if len(s.Level) != world.Cells || len(s.Hidden) != world.Cells {
		return nil, fmt.Errorf("snapshot holds %d cells, want %d", len(s.Level), world.Cells)
	}
	m := &level.Map{
		Level: level.NewGrid(),
		Hits:  world.NewLayer[int32](),
		Timer: world.NewLayer[uint16](),
		Fog:   world.NewFog(),
	}
	if !m.Hits.Load(s.Hits) || !m.Timer.Load(s.Timer) {
		return nil, fmt.Errorf("snapshot layers have the wrong size")
	}
	i := 0
	for c := range world.AllCursors() {
		m.Level.Set(c, level.State(s.Level[i]))
		if !s.Hidden[i] {
			m.Fog.Reveal(c)
		}
		i++
	}
	return m, nil
}

// WriteSnapshot encodes a snapshot of m to w
func WriteSnapshot(w io.Writer, m *level.Map, round int) error {
	return msgpack.NewEncoder(w).Encode(TakeSnapshot(m, round))
}

// ReadSnapshot decodes a snapshot written by WriteSnapshot
func ReadSnapshot(r io.Reader) (*level.Map, int, error) {
	var s Snapshot
	if err := msgpack.NewDecoder(r).Decode(&s); err != nil {
		return nil, 0, fmt.Errorf("decode snapshot: %w", err)
	}
	m, err := s.Restore()
	if err != nil {
		return nil, 0, err
	}
	return m, s.Round, nil
}

// SaveSnapshot writes a snapshot file
func SaveSnapshot(path string, m *level.Map, round int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteSnapshot(f, m, round); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// LoadSnapshot reads a snapshot file
func LoadSnapshot(path string) (*level.Map, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()
	return ReadSnapshot(f)
}
