package headerview

import (
	"math"
	"sync/atomic"
)

// Value is a float64 cell with a single writer. Reads and writes are atomic
// so the writer may live outside the game loop (the native driver path)
// while frames sample it.
type Value struct {
	bits atomic.Uint64
}

// NewValue returns a cell holding v.
func NewValue(v float64) *Value {
	c := &Value{}
	c.Set(v)
	return c
}

// Set stores v.
func (c *Value) Set(v float64) {
	c.bits.Store(math.Float64bits(v))
}

// Get returns the latest stored value.
func (c *Value) Get() float64 {
	return math.Float64frombits(c.bits.Load())
}

// Interpolate maps the current value through Interpolate.
func (c *Value) Interpolate(in, out [2]float64, ex Extrapolate) float64 {
	return Interpolate(c.Get(), in, out, ex)
}

// ScrollReader is the read-only view of a header scroll view's scroll state
// handed to descendants that track the header.
type ScrollReader interface {
	// Offset is the body's current vertical scroll offset.
	Offset() float64
	// PageY is the container's absolute vertical position on screen.
	PageY() float64
	// ContentPageY is where scrollable content begins on screen.
	ContentPageY() float64
}

// ScrollTracker holds the scroll state of one HeaderScrollView.
type ScrollTracker struct {
	offset    *Value
	pageY     float64
	minHeight float64
	torn      bool
}

// newScrollTracker creates a tracker at offset zero.
func newScrollTracker(minHeight float64) *ScrollTracker {
	return &ScrollTracker{offset: NewValue(0), minHeight: minHeight}
}

// OnLayout measures the container's absolute vertical position and stores
// it. No-op when the container is unavailable.
func (t *ScrollTracker) OnLayout(container *Node) {
	if t.torn || container == nil || container.IsDisposed() {
		return
	}
	refreshWorldTransform(container)
	_, t.pageY = container.LocalToWorld(0, 0)
}

// OnScroll stores the new vertical offset. It reports whether the offset
// was applied.
func (t *ScrollTracker) OnScroll(offsetY float64) bool {
	if t.torn {
		return false
	}
	t.offset.Set(offsetY)
	return true
}

// Cell returns the offset cell. The native driver path writes it directly.
func (t *ScrollTracker) Cell() *Value {
	return t.offset
}

// Offset implements ScrollReader.
func (t *ScrollTracker) Offset() float64 {
	return t.offset.Get()
}

// PageY implements ScrollReader.
func (t *ScrollTracker) PageY() float64 {
	return t.pageY
}

// ContentPageY implements ScrollReader.
func (t *ScrollTracker) ContentPageY() float64 {
	return t.pageY + t.minHeight
}

// teardown stops the tracker from accepting further updates.
func (t *ScrollTracker) teardown() {
	t.torn = true
}
