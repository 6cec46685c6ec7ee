package crawler

import "github.com/vovakirdan/tui-crawler/internal/core"

// Touches reports whether the player rectangle at player overlaps the wall
// rectangle at wall. Rectangles that only share an edge do not touch.
func Touches(player, wall Position, l Layout) bool {
	return core.RectAt(player, l.Player).Touches(core.RectAt(wall, l.Wall))
}
