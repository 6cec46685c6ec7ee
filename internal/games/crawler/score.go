package crawler

// Score counts removed walls. It only grows.
type Score struct {
	value uint32
}

// Add credits delta points.
func (s *Score) Add(delta uint32) {
	s.value += delta
}

// Value returns the current total.
func (s *Score) Value() uint32 {
	return s.value
}
