// Package core provides fundamental types and utilities for the crawler.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Point is a cell coordinate on the dungeon grid. The grid origin is the
// top-left corner and coordinates never go negative.
type Point struct {
	X, Y uint32
}

// Size is the width and height of an entity footprint.
type Size struct {
	W, H uint32
}

// Rect represents an axis-aligned bounding box used for collision detection.
type Rect struct {
	X, Y uint32 // Top-left corner position
	W, H uint32 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h uint32) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectAt builds the footprint of an entity of the given size at p.
func RectAt(p Point, s Size) Rect {
	return Rect{X: p.X, Y: p.Y, W: s.W, H: s.H}
}

// Origin returns the top-left corner.
func (r Rect) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}

// SpanContains reports whether v lies in the half-open span [start, start+size).
// A zero-sized span contains nothing.
func SpanContains(start, size, v uint32) bool {
	return v >= start && v-start < size
}

// Touches reports whether the two rectangles overlap. On each axis one
// rectangle's leading edge has to fall inside the other's half-open span, so
// rectangles that only share an edge do not touch.
func (r Rect) Touches(other Rect) bool {
	overlapX := SpanContains(other.X, other.W, r.X) || SpanContains(r.X, r.W, other.X)
	overlapY := SpanContains(other.Y, other.H, r.Y) || SpanContains(r.Y, r.H, other.Y)
	return overlapX && overlapY
}

// Contains returns true if the point is inside this rectangle.
func (r Rect) Contains(p Point) bool {
	return SpanContains(r.X, r.W, p.X) && SpanContains(r.Y, r.H, p.Y)
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// SatSub subtracts d from v, flooring at zero.
func SatSub(v, d uint32) uint32 {
	if d > v {
		return 0
	}
	return v - d
}

// SatAddMax adds d to v without wrapping, then ceils the result at limit.
func SatAddMax(v, d, limit uint32) uint32 {
	sum := uint64(v) + uint64(d)
	if sum > math.MaxUint32 {
		sum = math.MaxUint32
	}
	if sum > uint64(limit) {
		return limit
	}
	return uint32(sum)
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
