package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExactMedian(t *testing.T) {
	assert.Equal(t, 3.0, ExactMedian([]float64{5, 1, 3}))

	samples := []float64{9, 2, 7, 4, 1}
	ExactMedian(samples)
	assert.Equal(t, []float64{9, 2, 7, 4, 1}, samples)
}

func TestSamplesAreDeterministic(t *testing.T) {
	assert.Equal(t, UniformSamples(7, 100, 10), UniformSamples(7, 100, 10))
	assert.Equal(t, NormalSamples(7, 100, 0, 1), NormalSamples(7, 100, 0, 1))
	for _, s := range UniformSamples(1, 1000, 10) {
		assert.GreaterOrEqual(t, s, 0.0)
		assert.Less(t, s, 10.0)
	}
}
