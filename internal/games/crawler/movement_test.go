package crawler

import (
	"testing"

	"github.com/vovakirdan/tui-crawler/internal/core"
)

func TestParseKey(t *testing.T) {
	tests := []struct {
		key  rune
		want Direction
	}{
		{'h', West},
		{'l', East},
		{'k', North},
		{'j', South},
		{'y', NorthWest},
		{'u', NorthEast},
		{'b', SouthWest},
		{'n', SouthEast},
		{'H', None},
		{'x', None},
		{' ', None},
		{0, None},
	}

	for _, tc := range tests {
		if got := ParseKey(tc.key); got != tc.want {
			t.Errorf("ParseKey(%q) = %v, expected %v", tc.key, got, tc.want)
		}
	}
}

func TestFromActionCoversEveryMove(t *testing.T) {
	seen := make(map[Direction]bool)
	for _, a := range core.MoveActions {
		d := FromAction(a)
		if d == None {
			t.Errorf("FromAction(%v) = None", a)
		}
		seen[d] = true
	}
	if len(seen) != 8 {
		t.Errorf("expected 8 distinct directions, got %d", len(seen))
	}
	if FromAction(core.ActionPause) != None {
		t.Error("non-move action should map to None")
	}
}

func TestAdvance(t *testing.T) {
	l := DefaultLayout() // 60x40 dungeon, 2x2 player, speed 1

	tests := []struct {
		name string
		from Position
		dir  Direction
		want Position
	}{
		{"west", Position{X: 10, Y: 10}, West, Position{X: 9, Y: 10}},
		{"east", Position{X: 10, Y: 10}, East, Position{X: 11, Y: 10}},
		{"north", Position{X: 10, Y: 10}, North, Position{X: 10, Y: 9}},
		{"south", Position{X: 10, Y: 10}, South, Position{X: 10, Y: 11}},
		{"south-east", Position{X: 10, Y: 10}, SouthEast, Position{X: 11, Y: 11}},
		{"none", Position{X: 10, Y: 10}, None, Position{X: 10, Y: 10}},
		{"west wall", Position{X: 0, Y: 10}, West, Position{X: 0, Y: 10}},
		{"east wall", Position{X: 58, Y: 10}, East, Position{X: 58, Y: 10}},
		{"south wall", Position{X: 10, Y: 38}, South, Position{X: 10, Y: 38}},
		// Diagonals keep the free axis moving when the other is blocked.
		{"north-west at left edge", Position{X: 0, Y: 5}, NorthWest, Position{X: 0, Y: 4}},
		{"north-east at top edge", Position{X: 5, Y: 0}, NorthEast, Position{X: 6, Y: 0}},
		{"south-east in corner", Position{X: 58, Y: 38}, SouthEast, Position{X: 58, Y: 38}},
		{"south-west at bottom", Position{X: 5, Y: 38}, SouthWest, Position{X: 4, Y: 38}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Advance(tc.from, tc.dir, l); got != tc.want {
				t.Errorf("Advance(%+v, %v) = %+v, expected %+v", tc.from, tc.dir, got, tc.want)
			}
		})
	}
}

func TestAdvanceClampsLargeSpeed(t *testing.T) {
	l := DefaultLayout()
	l.Speed = 3

	if got := Advance(Position{X: 1, Y: 2}, NorthWest, l); got != (Position{X: 0, Y: 0}) {
		t.Errorf("NW from (1,2) = %+v, expected origin", got)
	}
	if got := Advance(Position{X: 57, Y: 36}, SouthEast, l); got != (Position{X: 58, Y: 38}) {
		t.Errorf("SE from (57,36) = %+v, expected (58,38)", got)
	}
}

func TestNorthWestConvergesToOrigin(t *testing.T) {
	l := DefaultLayout()
	pos := l.Start()
	for range 100 {
		pos = Advance(pos, NorthWest, l)
	}
	if pos != (Position{}) {
		t.Errorf("position after 100 north-west steps = %+v, expected origin", pos)
	}
}

func TestStartIsCentered(t *testing.T) {
	if got := DefaultLayout().Start(); got != (Position{X: 29, Y: 19}) {
		t.Errorf("Start() = %+v, expected (29,19)", got)
	}
}
