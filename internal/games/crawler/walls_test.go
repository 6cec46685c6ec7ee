package crawler

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTouchesEdgeBoundary(t *testing.T) {
	l := DefaultLayout()
	wall := Position{X: 49, Y: 32}

	tests := []struct {
		name   string
		player Position
		want   bool
	}{
		{"left edge shared", Position{X: 47, Y: 32}, false},
		{"one unit into the left edge", Position{X: 48, Y: 32}, true},
		{"right edge shared", Position{X: 51, Y: 32}, false},
		{"one unit into the right edge", Position{X: 50, Y: 32}, true},
		{"top edge shared", Position{X: 49, Y: 30}, false},
		{"bottom edge shared", Position{X: 49, Y: 34}, false},
		{"corner shared", Position{X: 47, Y: 30}, false},
		{"corner overlap", Position{X: 48, Y: 31}, true},
		{"same spot", wall, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Touches(tc.player, wall, l); got != tc.want {
				t.Errorf("Touches(%+v, %+v) = %v, expected %v", tc.player, wall, got, tc.want)
			}
		})
	}
}

func TestOnPlayerMovedRemovesTouchedWalls(t *testing.T) {
	l := DefaultLayout()
	rng := NewRand(0)
	batch := NewWallBatch(l, rng)
	before := batch.Walls()
	seed := rng.Seed()

	var score Score
	removed, respawned := batch.OnPlayerMoved(Position{X: 49, Y: 32}, rng, &score)

	if removed != 1 || respawned {
		t.Fatalf("OnPlayerMoved() = (%d, %v), expected (1, false)", removed, respawned)
	}
	if score.Value() != 1 {
		t.Errorf("score = %d, expected 1", score.Value())
	}
	if rng.Seed() != seed {
		t.Error("rng must not advance without a respawn")
	}
	// Survivors keep their order.
	if diff := cmp.Diff(before[1:], batch.Walls()); diff != "" {
		t.Errorf("survivors mismatch (-want +got):\n%s", diff)
	}
}

func TestOnPlayerMovedNoTouchKeepsBatch(t *testing.T) {
	l := DefaultLayout()
	rng := NewRand(0)
	batch := NewWallBatch(l, rng)
	before := batch.Walls()

	var score Score
	removed, respawned := batch.OnPlayerMoved(l.Start(), rng, &score)
	if removed != 0 || respawned {
		t.Fatalf("OnPlayerMoved() = (%d, %v), expected (0, false)", removed, respawned)
	}
	if score.Value() != 0 {
		t.Errorf("score = %d, expected 0", score.Value())
	}
	if diff := cmp.Diff(before, batch.Walls()); diff != "" {
		t.Errorf("batch changed (-want +got):\n%s", diff)
	}
}

func TestOnPlayerMovedDoesNotAliasCopies(t *testing.T) {
	l := DefaultLayout()
	rng := NewRand(0)
	orig := NewWallBatch(l, rng)
	before := orig.Walls()

	cp := orig
	var score Score
	cp.OnPlayerMoved(Position{X: 49, Y: 32}, rng, &score)

	if diff := cmp.Diff(before, orig.Walls()); diff != "" {
		t.Errorf("original batch changed through a copy (-want +got):\n%s", diff)
	}
}

func TestOnPlayerMovedRespawnsNextGeneration(t *testing.T) {
	// One wall per batch makes every hit a respawn.
	l := DefaultLayout()
	l.BatchSize = 1

	rng := NewRand(0)
	batch := NewWallBatch(l, rng)
	var score Score

	for gen := uint64(1); gen <= 3; gen++ {
		w := batch.Walls()[0]
		removed, respawned := batch.OnPlayerMoved(w.Pos, rng, &score)
		if removed != 1 || !respawned {
			t.Fatalf("gen %d: OnPlayerMoved() = (%d, %v), expected (1, true)", gen, removed, respawned)
		}
		if batch.Generation() != gen {
			t.Errorf("Generation() = %d, expected %d", batch.Generation(), gen)
		}
		if got := batch.Walls()[0].ID; got != gen {
			t.Errorf("new wall ID = %d, expected %d", got, gen)
		}
	}
	if score.Value() != 3 {
		t.Errorf("score = %d, expected 3", score.Value())
	}
}

func TestOnPlayerMovedPanicsOnEmptyBatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for an empty batch")
		}
	}()

	var batch WallBatch
	var score Score
	batch.OnPlayerMoved(Position{}, NewRand(0), &score)
}

func TestScoreAccumulates(t *testing.T) {
	var s Score
	s.Add(2)
	s.Add(0)
	s.Add(5)
	if s.Value() != 7 {
		t.Errorf("Value() = %d, expected 7", s.Value())
	}
}
