package remedian

import (
	"cmp"
	"sync"
)

// Synchronized returns an Estimator that guards e with a lock, for sharing one estimator between goroutines. e should
// not be used directly afterwards.
//
// For estimators built by this package, flush listeners are called after the lock is released, so a listener may call
// back into the returned Estimator. Listeners may then be called from several goroutines at once, and events from
// different goroutines are not ordered with respect to each other.
//
// The returned Estimator is concurrency safe.
func Synchronized[T cmp.Ordered](e Estimator[T]) Estimator[T] {
	return &synchronized[T]{estimator: e}
}

// flushDeferrer is implemented by estimators that can add a sample without calling their flush listener, so that the
// listener can be called outside of a lock.
type flushDeferrer[T cmp.Ordered] interface {
	addSamplePoint(sample T) ([]FlushedEvent[T], error)
	dispatch(events []FlushedEvent[T])
}

// Median queries sort into scratch space owned by the estimator, so reads take the same exclusive lock as writes.
type synchronized[T cmp.Ordered] struct {
	mu        sync.Mutex
	estimator Estimator[T]
}

func (s *synchronized[T]) AddSamplePoint(sample T) error {
	deferrer, ok := s.estimator.(flushDeferrer[T])
	if !ok {
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.estimator.AddSamplePoint(sample)
	}

	s.mu.Lock()
	events, err := deferrer.addSamplePoint(sample)
	s.mu.Unlock()
	deferrer.dispatch(events)
	return err
}

func (s *synchronized[T]) Median() (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.estimator.Median()
}

func (s *synchronized[T]) MedianOrDefault() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.estimator.MedianOrDefault()
}

func (s *synchronized[T]) WeightedMedian() (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.estimator.WeightedMedian()
}

func (s *synchronized[T]) Count() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.estimator.Count()
}

func (s *synchronized[T]) Capacity() uint64 {
	return s.estimator.Capacity()
}

func (s *synchronized[T]) Saturated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.estimator.Saturated()
}

func (s *synchronized[T]) Base() int {
	return s.estimator.Base()
}

func (s *synchronized[T]) Depth() int {
	return s.estimator.Depth()
}

func (s *synchronized[T]) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.estimator.Reset()
}
