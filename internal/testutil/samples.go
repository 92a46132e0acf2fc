package testutil

import (
	"math/rand"
	"slices"

	"gonum.org/v1/gonum/stat"
)

// UniformSamples returns n samples drawn uniformly from [0, limit) using a fixed seed.
func UniformSamples(seed int64, n int, limit float64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = rng.Float64() * limit
	}
	return samples
}

// NormalSamples returns n normally distributed samples using a fixed seed.
func NormalSamples(seed int64, n int, mean, stddev float64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = rng.NormFloat64()*stddev + mean
	}
	return samples
}

// ExactMedian returns the empirical median of samples without modifying them.
func ExactMedian(samples []float64) float64 {
	sorted := slices.Clone(samples)
	slices.Sort(sorted)
	return stat.Quantile(0.5, stat.Empirical, sorted, nil)
}
