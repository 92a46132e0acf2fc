package remedian

import "cmp"

// FlushedEvent indicates a level filled and collapsed to its median.
type FlushedEvent[T cmp.Ordered] struct {
	// The index of the level that filled, where 0 receives samples directly.
	Level int
	// The median of the level's buffer when it filled.
	Median T
	// The number of samples added to the estimator so far, including the one that caused the flush.
	Count uint64
	// Whether the level is the last in the chain.
	Last bool
}
