// Package store provides the small reactive state container the crawler
// session keeps its values in. A Cell holds one value; every write marks the
// cell dirty and synchronously notifies subscribers, so renderers can either
// react to each change or poll the dirty flag once per frame.
//
// Cells are not safe for concurrent mutation. The crawler mutates them from a
// single event loop.
package store

// Cell is a single observable value.
type Cell[T any] struct {
	value  T
	dirty  bool
	nextID int
	subs   []subscription[T]
}

type subscription[T any] struct {
	id int
	fn func(T)
}

// New creates a cell holding initial. A fresh cell starts dirty so the first
// render always happens.
func New[T any](initial T) *Cell[T] {
	return &Cell[T]{value: initial, dirty: true}
}

// Read returns the current value.
func (c *Cell[T]) Read() T {
	return c.value
}

// Write replaces the value and notifies subscribers.
func (c *Cell[T]) Write(v T) {
	c.value = v
	c.changed()
}

// Mutate replaces the value with f applied to the current one.
func (c *Cell[T]) Mutate(f func(T) T) {
	c.Write(f(c.value))
}

// Update edits the value in place through a pointer.
func (c *Cell[T]) Update(f func(*T)) {
	f(&c.value)
	c.changed()
}

// Subscribe registers fn to run after every write. The returned function
// removes the subscription.
func (c *Cell[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	id := c.nextID
	c.nextID++
	c.subs = append(c.subs, subscription[T]{id: id, fn: fn})

	return func() {
		for i, s := range c.subs {
			if s.id == id {
				c.subs = append(c.subs[:i], c.subs[i+1:]...)
				return
			}
		}
	}
}

// Dirty reports whether the cell was written since the last ClearDirty.
func (c *Cell[T]) Dirty() bool {
	return c.dirty
}

// ClearDirty resets the dirty flag.
func (c *Cell[T]) ClearDirty() {
	c.dirty = false
}

func (c *Cell[T]) changed() {
	c.dirty = true
	// Subscribers may unsubscribe while being notified.
	subs := append([]subscription[T](nil), c.subs...)
	for _, s := range subs {
		s.fn(c.value)
	}
}

// Watchable is anything exposing a dirty flag.
type Watchable interface {
	Dirty() bool
	ClearDirty()
}

// Tracker aggregates the dirty flags of several cells.
type Tracker struct {
	watched []Watchable
}

// NewTracker creates a tracker over the given cells.
func NewTracker(cells ...Watchable) *Tracker {
	return &Tracker{watched: cells}
}

// Watch adds cells to the tracker.
func (t *Tracker) Watch(cells ...Watchable) {
	t.watched = append(t.watched, cells...)
}

// Dirty reports whether any watched cell is dirty.
func (t *Tracker) Dirty() bool {
	for _, w := range t.watched {
		if w.Dirty() {
			return true
		}
	}
	return false
}

// ClearDirty resets every watched cell.
func (t *Tracker) ClearDirty() {
	for _, w := range t.watched {
		w.ClearDirty()
	}
}
