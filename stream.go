package remedian

import (
	"cmp"
	"context"
	"iter"
)

// AddAll adds every sample from seq to e, stopping at the first sample that cannot be added. Returns the number of
// samples added.
func AddAll[T cmp.Ordered](e Estimator[T], seq iter.Seq[T]) (int, error) {
	added := 0
	for sample := range seq {
		if err := e.AddSamplePoint(sample); err != nil {
			return added, err
		}
		added++
	}
	return added, nil
}

// Consume adds samples received from ch to e until ch is closed, the ctx is done, or a sample cannot be added. Returns
// the number of samples added, along with the ctx error if the ctx is done before ch is closed.
func Consume[T cmp.Ordered](ctx context.Context, e Estimator[T], ch <-chan T) (int, error) {
	added := 0
	for {
		select {
		case <-ctx.Done():
			return added, ctx.Err()
		case sample, ok := <-ch:
			if !ok {
				return added, nil
			}
			if err := e.AddSamplePoint(sample); err != nil {
				return added, err
			}
			added++
		}
	}
}
