package remedian

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"

	"github.com/sixfold-origami/remedian/internal/cascade"
	"github.com/sixfold-origami/remedian/internal/util"
)

type estimator[T cmp.Ordered] struct {
	config[T]
	chain *cascade.Chain[T]

	// Mutable state
	count   uint64
	pending []FlushedEvent[T]
}

var _ Estimator[float64] = &estimator[float64]{}

func newEstimator[T cmp.Ordered](c config[T]) *estimator[T] {
	e := &estimator[T]{config: c}
	e.chain = cascade.NewChain[T](c.base, c.depth, e.flushed)
	return e
}

func (e *estimator[T]) flushed(level int, median T) {
	last := level == e.depth-1
	if last && e.logger != nil && e.logger.Enabled(context.Background(), slog.LevelDebug) {
		e.logger.Debug("remedian estimate refreshed",
			"median", median,
			"count", e.count,
			"depth", e.depth)
	}
	if e.onFlush != nil {
		e.pending = append(e.pending, FlushedEvent[T]{
			Level:  level,
			Median: median,
			Count:  e.count,
			Last:   last,
		})
	}
}

func (e *estimator[T]) AddSamplePoint(sample T) error {
	events, err := e.addSamplePoint(sample)
	e.dispatch(events)
	return err
}

// addSamplePoint adds the sample and returns the flush events it produced, without calling the flush listener.
func (e *estimator[T]) addSamplePoint(sample T) ([]FlushedEvent[T], error) {
	if util.IsNaN(sample) {
		return nil, fmt.Errorf("%w: NaN", ErrInvalidSample)
	}
	e.count++
	e.chain.Ingest(sample)
	events := e.pending
	e.pending = nil
	return events, nil
}

func (e *estimator[T]) dispatch(events []FlushedEvent[T]) {
	for _, event := range events {
		e.onFlush(event)
	}
}

func (e *estimator[T]) Median() (T, error) {
	if median, ok := e.chain.BestEstimate(); ok {
		return median, nil
	}
	var zero T
	return zero, ErrNotEnoughData
}

func (e *estimator[T]) MedianOrDefault() T {
	median, _ := e.Median()
	return median
}

func (e *estimator[T]) WeightedMedian() (T, error) {
	if median, ok := e.chain.WeightedMedian(); ok {
		return median, nil
	}
	var zero T
	return zero, ErrNotEnoughData
}

func (e *estimator[T]) Count() uint64 {
	return e.count
}

func (e *estimator[T]) Capacity() uint64 {
	return e.chain.Capacity()
}

func (e *estimator[T]) Saturated() bool {
	return e.chain.Saturated()
}

func (e *estimator[T]) Base() int {
	return e.base
}

func (e *estimator[T]) Depth() int {
	return e.depth
}

func (e *estimator[T]) Reset() {
	e.chain.Reset()
	e.count = 0
}
