package rng

// Script is a Source that replays a fixed list of values. Each call to Intn
// consumes one value and reduces it modulo n. Once the list is exhausted every
// call returns the Fallback value (reduced the same way).
type Script struct {
	Values   []int
	Fallback int
	pos      int
}

// NewScript creates a scripted source.
func NewScript(values ...int) *Script {
	return &Script{Values: values}
}

// Intn implements Source.
func (s *Script) Intn(n int) int {
	v := s.Fallback
	if s.pos < len(s.Values) {
		v = s.Values[s.pos]
		s.pos++
	}
	if v < 0 {
		v = -v
	}
	return v % n
}

// Consumed returns how many scripted values have been used.
func (s *Script) Consumed() int {
	return s.pos
}
