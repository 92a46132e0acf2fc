package remedian

import (
	"cmp"
	"errors"
	"fmt"
	"log/slog"
)

// ErrNotEnoughData is returned when a median is requested before any samples have been added.
var ErrNotEnoughData = errors.New("not enough data")

// ErrInvalidConfiguration is returned when an Estimator is built with a non-positive base or depth.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// ErrInvalidSample is returned when a NaN sample is added.
var ErrInvalidSample = errors.New("invalid sample")

const (
	// DefaultBase is the default capacity of each level.
	DefaultBase = 11
	// DefaultDepth is the default number of levels. With DefaultBase this covers roughly 25 billion samples while
	// storing at most 110 values.
	DefaultDepth = 10

	// MaxBase is the largest supported base. Every level's buffer is allocated when the Estimator is built.
	MaxBase = 1 << 16
	// MaxDepth is the largest supported depth. Any base of 2 or more covers more than math.MaxUint64 samples at this depth.
	MaxDepth = 64
)

/*
Estimator approximates the median of a stream of samples using the remedian method: a chain of depth buffers, each
holding up to base values. When a buffer fills, it collapses to its median, which is pushed into the next buffer. Memory
is bounded at base*depth values regardless of how many samples are added, and the estimate is most refined once
base^depth samples have been added. After that the last buffer keeps refreshing its median every base^depth samples.

NaN samples are rejected with ErrInvalidSample. Positive and negative infinity are accepted and sort to the ends.

T is the sample type. This type is not concurrency safe, including for concurrent queries, since queries sort into
scratch space owned by the estimator. See Synchronized.
*/
type Estimator[T cmp.Ordered] interface {
	// AddSamplePoint adds a sample to the estimator. Returns ErrInvalidSample if the sample is NaN, in which case the
	// estimator is left unchanged.
	AddSamplePoint(sample T) error

	// Median returns the current estimate: the last median of the most aggregated level that has filled, else the median
	// of the samples added so far if no level has filled yet. Returns ErrNotEnoughData if no samples have been added.
	Median() (T, error)

	// MedianOrDefault returns the current estimate, else the zero value for T if no samples have been added.
	MedianOrDefault() T

	// WeightedMedian returns an estimate computed over every value currently held by the estimator, where each value is
	// weighted by the number of samples it stands for. Returns ErrNotEnoughData if no samples have been added.
	WeightedMedian() (T, error)

	// Count returns the number of samples added.
	Count() uint64

	// Capacity returns base^depth, the number of samples needed to fill every level once, saturating at math.MaxUint64.
	Capacity() uint64

	// Saturated returns whether the last level has filled at least once, meaning at least Capacity samples were added.
	Saturated() bool

	// Base returns the capacity of each level.
	Base() int

	// Depth returns the number of levels.
	Depth() int

	// Reset discards all added samples.
	Reset()
}

// Builder builds Estimator instances.
//
// T is the sample type. This type is not concurrency safe.
type Builder[T cmp.Ordered] interface {
	// WithBase configures the capacity of each level, up to MaxBase. Odd bases are preferred, since even bases never have
	// a single middle element when a level fills.
	WithBase(base int) Builder[T]

	// WithDepth configures the number of levels, up to MaxDepth.
	WithDepth(depth int) Builder[T]

	// WithLogger configures a logger which provides debug logging when the last level fills, and warns about even bases.
	WithLogger(logger *slog.Logger) Builder[T]

	// OnFlush registers the listener to be called when a level fills and collapses to its median. The listener is called
	// after the sample that caused the flush has been fully added, so it may query the estimator. With Synchronized, the
	// listener may be called concurrently and must be concurrency safe.
	OnFlush(listener func(event FlushedEvent[T])) Builder[T]

	// Build returns a new Estimator using the builder's configuration. Returns ErrInvalidConfiguration if the base or depth
	// is not positive, or if the base exceeds MaxBase or the depth exceeds MaxDepth.
	Build() (Estimator[T], error)
}

type config[T cmp.Ordered] struct {
	base    int
	depth   int
	logger  *slog.Logger
	onFlush func(FlushedEvent[T])
}

var _ Builder[float64] = &config[float64]{}

// NewBuilder returns a Builder for sample type T which builds Estimators with a DefaultBase and DefaultDepth.
func NewBuilder[T cmp.Ordered]() Builder[T] {
	return &config[T]{
		base:  DefaultBase,
		depth: DefaultDepth,
	}
}

// New returns a new Estimator for sample type T with the base and depth. Returns ErrInvalidConfiguration if either is
// not positive or exceeds MaxBase or MaxDepth.
func New[T cmp.Ordered](base int, depth int) (Estimator[T], error) {
	return NewBuilder[T]().WithBase(base).WithDepth(depth).Build()
}

// NewWithDefaults returns a new Estimator for sample type T with a DefaultBase and DefaultDepth.
func NewWithDefaults[T cmp.Ordered]() Estimator[T] {
	e, _ := NewBuilder[T]().Build()
	return e
}

func (c *config[T]) WithBase(base int) Builder[T] {
	c.base = base
	return c
}

func (c *config[T]) WithDepth(depth int) Builder[T] {
	c.depth = depth
	return c
}

func (c *config[T]) WithLogger(logger *slog.Logger) Builder[T] {
	c.logger = logger
	return c
}

func (c *config[T]) OnFlush(listener func(event FlushedEvent[T])) Builder[T] {
	c.onFlush = listener
	return c
}

func (c *config[T]) Build() (Estimator[T], error) {
	if c.base <= 0 {
		return nil, fmt.Errorf("%w: base must be positive, got %d", ErrInvalidConfiguration, c.base)
	}
	if c.base > MaxBase {
		return nil, fmt.Errorf("%w: base must be at most %d, got %d", ErrInvalidConfiguration, MaxBase, c.base)
	}
	if c.depth <= 0 {
		return nil, fmt.Errorf("%w: depth must be positive, got %d", ErrInvalidConfiguration, c.depth)
	}
	if c.depth > MaxDepth {
		return nil, fmt.Errorf("%w: depth must be at most %d, got %d", ErrInvalidConfiguration, MaxDepth, c.depth)
	}
	if c.base%2 == 0 && c.logger != nil {
		c.logger.Warn("even remedian base will result in inaccuracies", "base", c.base)
	}
	return newEstimator(*c), nil
}
