package crawler

// LCG constants. Changing them changes every generated dungeon.
const (
	lcgMultiplier uint32 = 1103515245
	lcgIncrement  uint32 = 12345
)

// Rand is a 32-bit linear congruential generator. Its only state is the
// seed, which every draw replaces; uint32 arithmetic gives the mod 2^32
// wraparound for free.
type Rand struct {
	seed uint32
}

// NewRand creates a generator starting from seed.
func NewRand(seed uint32) *Rand {
	return &Rand{seed: seed}
}

// Seed returns the current state.
func (r *Rand) Seed() uint32 {
	return r.seed
}

// NextU32 advances the generator and returns the new state.
func (r *Rand) NextU32() uint32 {
	r.seed = lcgMultiplier*r.seed + lcgIncrement
	return r.seed
}

// NextWall draws a wall position: x first, then y.
func (r *Rand) NextWall(l Layout) Position {
	span := l.wallRange()
	x := r.NextU32() % span.W
	y := r.NextU32() % span.H
	return Position{X: x, Y: y}
}

// NextBatch draws a full batch of walls in order and tags them with IDs of
// the given generation.
func (r *Rand) NextBatch(l Layout, generation uint64) []WallEntry {
	batch := make([]WallEntry, 0, l.BatchSize)
	for i := uint64(0); i < l.BatchSize; i++ {
		batch = append(batch, WallEntry{
			ID:  generation*l.BatchSize + i,
			Pos: r.NextWall(l),
		})
	}
	return batch
}
