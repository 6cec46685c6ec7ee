package crawler

// WallEntry is one wall obstacle. IDs are unique within a session and
// encode the generation: ID / batch size is the batch the wall came from.
type WallEntry struct {
	ID  uint64   `yaml:"id"`
	Pos Position `yaml:"pos"`
}

// WallBatch holds the live walls of the current generation.
type WallBatch struct {
	layout Layout
	walls  []WallEntry
}

// NewWallBatch spawns generation 0 from rng.
func NewWallBatch(l Layout, rng *Rand) WallBatch {
	return WallBatch{layout: l, walls: rng.NextBatch(l, 0)}
}

// Walls returns a copy of the live walls in draw order.
func (b *WallBatch) Walls() []WallEntry {
	out := make([]WallEntry, len(b.walls))
	copy(out, b.walls)
	return out
}

// Len is the number of live walls.
func (b *WallBatch) Len() int {
	return len(b.walls)
}

// Generation returns the generation of the live batch.
func (b *WallBatch) Generation() uint64 {
	if len(b.walls) == 0 {
		return 0
	}
	return b.walls[0].ID / b.layout.BatchSize
}

// OnPlayerMoved removes every wall the player now touches and credits the
// score with the number removed. When the last wall of the batch goes, the
// next generation is drawn from rng, which continues the session sequence.
//
// The batch must not be empty on entry; the session never lets it drain
// across a step, so an empty batch is a programming error and panics.
func (b *WallBatch) OnPlayerMoved(player Position, rng *Rand, score *Score) (removed int, respawned bool) {
	if len(b.walls) == 0 {
		panic("crawler: wall batch is empty")
	}
	next := b.Generation() + 1

	var kept []WallEntry
	for i, w := range b.walls {
		if !Touches(player, w.Pos, b.layout) {
			if kept != nil {
				kept = append(kept, w)
			}
			continue
		}
		if kept == nil {
			// First hit: copy the survivors so far into a fresh slice.
			// Batches read from a store cell share their backing array.
			kept = make([]WallEntry, i, len(b.walls))
			copy(kept, b.walls[:i])
		}
	}
	if kept == nil {
		return 0, false
	}
	removed = len(b.walls) - len(kept)
	b.walls = kept

	score.Add(uint32(removed))

	if len(b.walls) == 0 {
		b.walls = rng.NextBatch(b.layout, next)
		return removed, true
	}
	return removed, false
}
