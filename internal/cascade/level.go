package cascade

import (
	"cmp"
	"slices"

	"github.com/sixfold-origami/remedian/internal/util"
)

// Level is one fixed capacity buffer in a Chain. When the buffer fills it collapses to its median, which is recorded as
// the level's last median and returned to the caller for forwarding.
//
// This type is not concurrency safe.
type Level[T cmp.Ordered] struct {
	buffer []T
	// Scratch space for partial buffer medians, allocated on first use
	sorted []T

	// Diagnostics
	fills   uint64
	flushes uint64

	lastMedian T
}

// NewLevel returns a Level that flushes every capacity pushes. capacity must be positive.
func NewLevel[T cmp.Ordered](capacity int) Level[T] {
	return Level[T]{
		buffer: make([]T, 0, capacity),
	}
}

// Push appends value to the buffer. If the buffer is full after the append, it is sorted and cleared, and its median is
// returned along with true.
func (l *Level[T]) Push(value T) (T, bool) {
	l.buffer = append(l.buffer, value)
	l.fills++
	if len(l.buffer) < cap(l.buffer) {
		var zero T
		return zero, false
	}

	median, _ := util.Median(l.buffer)
	l.lastMedian = median
	l.flushes++
	l.buffer = l.buffer[:0]
	return median, true
}

// Median returns the median of the values currently buffered, without disturbing them. Returns false if the buffer is
// empty. Median sorts into scratch space owned by the level, so it must not be called concurrently, even with itself.
func (l *Level[T]) Median() (T, bool) {
	if l.sorted == nil {
		l.sorted = make([]T, 0, cap(l.buffer))
	}
	l.sorted = append(l.sorted[:0], l.buffer...)
	return util.Median(l.sorted)
}

// LastMedian returns the median computed the last time the buffer filled. Returns false if the buffer has never filled.
func (l *Level[T]) LastMedian() (T, bool) {
	return l.lastMedian, l.flushes > 0
}

// Values returns a copy of the values currently buffered, in the order they were pushed.
func (l *Level[T]) Values() []T {
	return slices.Clone(l.buffer)
}

// Len returns the number of values currently buffered.
func (l *Level[T]) Len() int {
	return len(l.buffer)
}

// Capacity returns the number of values that fill the buffer.
func (l *Level[T]) Capacity() int {
	return cap(l.buffer)
}

// Fills returns the number of values ever pushed into the level.
func (l *Level[T]) Fills() uint64 {
	return l.fills
}

// Flushes returns the number of times the buffer filled.
func (l *Level[T]) Flushes() uint64 {
	return l.flushes
}

// Reset clears the buffer, counters and last median while retaining the capacity.
func (l *Level[T]) Reset() {
	var zero T
	l.buffer = l.buffer[:0]
	l.fills = 0
	l.flushes = 0
	l.lastMedian = zero
}
