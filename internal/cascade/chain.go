package cascade

import (
	"cmp"
	"math"

	"github.com/bits-and-blooms/bitset"

	"github.com/sixfold-origami/remedian/internal/util"
)

// FlushListener is called with the level index and median each time a level's buffer fills.
type FlushListener[T cmp.Ordered] func(level int, median T)

// Chain is a sequence of Levels where each level's flush output is pushed into the next level. The last level's flush
// output is retained only as its last median.
//
// This type is not concurrency safe.
type Chain[T cmp.Ordered] struct {
	base     int
	levels   []Level[T]
	flushed  *bitset.BitSet
	listener FlushListener[T]
}

// NewChain returns a Chain of depth levels, each with a capacity of base. base and depth must be positive. listener may
// be nil.
func NewChain[T cmp.Ordered](base, depth int, listener FlushListener[T]) *Chain[T] {
	levels := make([]Level[T], depth)
	for i := range levels {
		levels[i] = NewLevel[T](base)
	}
	return &Chain[T]{
		base:     base,
		levels:   levels,
		flushed:  bitset.New(uint(depth)),
		listener: listener,
	}
}

// Ingest pushes value into the first level, cascading flush outputs through the chain until a level absorbs one without
// filling, or the last level flushes.
func (c *Chain[T]) Ingest(value T) {
	for i := range c.levels {
		median, flushed := c.levels[i].Push(value)
		if !flushed {
			return
		}
		c.flushed.Set(uint(i))
		if c.listener != nil {
			c.listener(i, median)
		}
		value = median
	}
}

// BestEstimate returns the last median of the highest level that has flushed. If no level has flushed, the median of the
// first level's partial buffer is returned. Returns false if no values have been ingested.
func (c *Chain[T]) BestEstimate() (T, bool) {
	if c.flushed.Any() {
		for i := len(c.levels) - 1; i >= 0; i-- {
			if c.flushed.Test(uint(i)) {
				return c.levels[i].LastMedian()
			}
		}
	}
	return c.levels[0].Median()
}

// WeightedMedian returns a median over every value currently held by the chain, where a value buffered at level i stands
// for base^i samples. Once the last level has flushed, its last median stands for base^depth samples. Returns false if
// no values have been ingested.
func (c *Chain[T]) WeightedMedian() (T, bool) {
	var values []util.Weighted[T]
	weight := 1.0
	for i := range c.levels {
		for _, v := range c.levels[i].buffer {
			values = append(values, util.Weighted[T]{Value: v, Weight: weight})
		}
		weight *= float64(c.base)
	}
	if last, ok := c.levels[len(c.levels)-1].LastMedian(); ok {
		values = append(values, util.Weighted[T]{Value: last, Weight: weight})
	}
	return util.WeightedMedian(values)
}

// Saturated returns whether the last level has flushed at least once.
func (c *Chain[T]) Saturated() bool {
	return c.flushed.Test(uint(len(c.levels) - 1))
}

// FlushedLevels returns the number of levels that have flushed at least once.
func (c *Chain[T]) FlushedLevels() int {
	return int(c.flushed.Count())
}

// Capacity returns base^depth, the number of samples that fill every level once, saturating at math.MaxUint64.
func (c *Chain[T]) Capacity() uint64 {
	capacity := uint64(1)
	for range c.levels {
		if capacity > math.MaxUint64/uint64(c.base) {
			return math.MaxUint64
		}
		capacity *= uint64(c.base)
	}
	return capacity
}

// Level returns the level at index i.
func (c *Chain[T]) Level(i int) *Level[T] {
	return &c.levels[i]
}

// Base returns the capacity of each level.
func (c *Chain[T]) Base() int {
	return c.base
}

// Depth returns the number of levels.
func (c *Chain[T]) Depth() int {
	return len(c.levels)
}

// Reset resets every level.
func (c *Chain[T]) Reset() {
	for i := range c.levels {
		c.levels[i].Reset()
	}
	c.flushed.ClearAll()
}
