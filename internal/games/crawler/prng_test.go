package crawler

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRandGoldenSequence(t *testing.T) {
	want := []uint32{12345, 3554416254, 2802067423, 3596950572, 229283573, 3256818826}

	r := NewRand(0)
	for i, w := range want {
		if got := r.NextU32(); got != w {
			t.Fatalf("draw %d = %d, expected %d", i, got, w)
		}
		if r.Seed() != w {
			t.Fatalf("seed after draw %d = %d, expected %d", i, r.Seed(), w)
		}
	}
}

func TestRandWrapsAround(t *testing.T) {
	r := NewRand(0xFFFFFFFF)
	// a*(2^32-1) + c is c - a modulo 2^32.
	a, c := uint32(1103515245), uint32(12345)
	want := c - a
	if got := r.NextU32(); got != want {
		t.Errorf("NextU32() = %d, expected %d", got, want)
	}
}

func TestNextWallDrawOrder(t *testing.T) {
	want := []Position{
		{X: 49, Y: 32}, {X: 17, Y: 0}, {X: 3, Y: 22}, {X: 19, Y: 28}, {X: 39, Y: 20},
		{X: 21, Y: 2}, {X: 15, Y: 2}, {X: 3, Y: 28}, {X: 55, Y: 34}, {X: 31, Y: 26},
		{X: 29, Y: 34}, {X: 21, Y: 22}, {X: 5, Y: 0}, {X: 23, Y: 26}, {X: 21, Y: 30},
		{X: 17, Y: 36}, {X: 23, Y: 8}, {X: 27, Y: 18}, {X: 35, Y: 32}, {X: 43, Y: 18},
	}

	l := DefaultLayout()
	r := NewRand(0)
	got := make([]Position, 0, len(want))
	for range want {
		got = append(got, r.NextWall(l))
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("wall positions mismatch (-want +got):\n%s", diff)
	}
}

func TestNextBatchIDs(t *testing.T) {
	l := DefaultLayout()
	batch := NewRand(7).NextBatch(l, 3)

	if uint64(len(batch)) != l.BatchSize {
		t.Fatalf("batch length = %d, expected %d", len(batch), l.BatchSize)
	}
	for i, w := range batch {
		if want := 3*l.BatchSize + uint64(i); w.ID != want {
			t.Errorf("batch[%d].ID = %d, expected %d", i, w.ID, want)
		}
		if w.Pos.X >= l.Dungeon.W-l.Wall.W || w.Pos.Y >= l.Dungeon.H-l.Wall.H {
			t.Errorf("batch[%d] at %+v is outside the draw range", i, w.Pos)
		}
	}
}

func TestRandDeterminism(t *testing.T) {
	l := DefaultLayout()
	a, b := NewRand(12345), NewRand(12345)
	if diff := cmp.Diff(a.NextBatch(l, 0), b.NextBatch(l, 0)); diff != "" {
		t.Errorf("same seed produced different batches (-a +b):\n%s", diff)
	}
	if a.Seed() != b.Seed() {
		t.Errorf("seeds diverged: %d vs %d", a.Seed(), b.Seed())
	}
}
