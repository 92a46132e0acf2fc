/*
Package remedianprom exports a remedian.Estimator as Prometheus metrics.

For a collector named "request_latency", the exported metrics are:

  - request_latency_median: a gauge of the current median estimate, omitted until a sample has been added
  - request_latency_samples_total: a counter of the samples added
  - request_latency_saturated: a gauge that is 1 once the estimator's last level has filled, else 0

Collection reads from the estimator while Prometheus scrapes, so estimators that are written to concurrently should be
wrapped with remedian.Synchronized.
*/
package remedianprom

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/sixfold-origami/remedian"
)

// Number is the set of sample types that can be exported as metric values.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Opts configures a Collector.
type Opts struct {
	// Namespace, Subsystem and Name are joined with underscores to form the metric name prefix. Name is required.
	Namespace string
	Subsystem string
	Name      string
	// Help is the help text for the median metric.
	Help        string
	ConstLabels prometheus.Labels
}

// Collector is a prometheus.Collector for a remedian.Estimator.
//
// This type is concurrency safe if the estimator is.
type Collector[T Number] struct {
	estimator     remedian.Estimator[T]
	medianDesc    *prometheus.Desc
	samplesDesc   *prometheus.Desc
	saturatedDesc *prometheus.Desc
}

var _ prometheus.Collector = &Collector[float64]{}

// NewCollector returns a Collector that exports the estimator using the opts.
func NewCollector[T Number](estimator remedian.Estimator[T], opts Opts) *Collector[T] {
	prefix := prometheus.BuildFQName(opts.Namespace, opts.Subsystem, opts.Name)
	help := opts.Help
	if help == "" {
		help = "Approximate median of observed samples."
	}
	return &Collector[T]{
		estimator:     estimator,
		medianDesc:    prometheus.NewDesc(prefix+"_median", help, nil, opts.ConstLabels),
		samplesDesc:   prometheus.NewDesc(prefix+"_samples_total", "Number of samples observed.", nil, opts.ConstLabels),
		saturatedDesc: prometheus.NewDesc(prefix+"_saturated", "Whether every estimator level has filled at least once.", nil, opts.ConstLabels),
	}
}

func (c *Collector[T]) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.medianDesc
	ch <- c.samplesDesc
	ch <- c.saturatedDesc
}

func (c *Collector[T]) Collect(ch chan<- prometheus.Metric) {
	median, err := c.estimator.Median()
	if err == nil {
		ch <- prometheus.MustNewConstMetric(c.medianDesc, prometheus.GaugeValue, float64(median))
	} else if !errors.Is(err, remedian.ErrNotEnoughData) {
		ch <- prometheus.NewInvalidMetric(c.medianDesc, err)
	}

	ch <- prometheus.MustNewConstMetric(c.samplesDesc, prometheus.CounterValue, float64(c.estimator.Count()))

	saturated := 0.0
	if c.estimator.Saturated() {
		saturated = 1
	}
	ch <- prometheus.MustNewConstMetric(c.saturatedDesc, prometheus.GaugeValue, saturated)
}
