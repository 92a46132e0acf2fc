package util

import (
	"cmp"
	"slices"
)

// MiddleIndex returns the index of the median element in a sorted slice of the given length. For even lengths this is
// the element at length/2 rather than an average of the two middle elements, so the result is always an input value.
func MiddleIndex(length int) int {
	return length / 2
}

// SortedMedian returns the median of values, which must already be sorted in ascending order. Returns false if values is
// empty.
func SortedMedian[T cmp.Ordered](values []T) (T, bool) {
	if len(values) == 0 {
		var zero T
		return zero, false
	}
	return values[MiddleIndex(len(values))], true
}

// Median sorts values in place and returns their median. Returns false if values is empty.
func Median[T cmp.Ordered](values []T) (T, bool) {
	slices.Sort(values)
	return SortedMedian(values)
}

// Weighted is a value that counts for weight samples.
type Weighted[T cmp.Ordered] struct {
	Value  T
	Weight float64
}

// WeightedMedian sorts values in place by value and returns the first value at which the running weight reaches half of
// the total weight, so equally weighted values give the same result as Median for odd lengths. Returns false if values
// is empty.
func WeightedMedian[T cmp.Ordered](values []Weighted[T]) (T, bool) {
	var zero T
	if len(values) == 0 {
		return zero, false
	}

	slices.SortStableFunc(values, func(a, b Weighted[T]) int {
		return cmp.Compare(a.Value, b.Value)
	})

	var total float64
	for _, v := range values {
		total += v.Weight
	}

	var running float64
	for _, v := range values {
		running += v.Weight
		if running*2 >= total {
			return v.Value, true
		}
	}
	return values[len(values)-1].Value, true
}

// IsNaN returns whether v is a floating point NaN. Always false for non floating point types.
func IsNaN[T cmp.Ordered](v T) bool {
	return v != v
}
