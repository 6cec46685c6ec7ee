package crawler

// Snapshot captures the complete session state for determinism testing and
// for the headless sim output.
type Snapshot struct {
	Seed       uint32      `yaml:"seed"`
	Player     Position    `yaml:"player"`
	Score      uint32      `yaml:"score"`
	Generation uint64      `yaml:"generation"`
	Steps      uint64      `yaml:"steps"`
	Presses    uint64      `yaml:"presses"`
	Walls      []WallEntry `yaml:"walls"`
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Seed:       s.rng.Seed(),
		Player:     s.Player(),
		Score:      s.Score(),
		Generation: s.Generation(),
		Steps:      s.steps,
		Presses:    s.presses,
		Walls:      s.Walls(),
	}
}
