// Package metrics exposes optimizer progress as Prometheus metrics.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/cwbudde/utilityprog/internal/up"
)

const (
	metricsNamespace = "utilityprog"
	searchSubsystem  = "search"
)

var _ up.Observer = (*Collector)(nil)

// Collector records ModifyOptimizer progress. Plug it in as the optimizer's
// Observer.
type Collector struct {
	Calls        prometheus.Counter
	Attempts     prometheus.Counter
	Improvements prometheus.Counter
	Gain         prometheus.Histogram
	BestUtility  prometheus.Gauge
}

// NewCollector creates the search metrics and registers them with reg.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		Calls: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: searchSubsystem,
			Name:      "calls_total",
			Help:      "Total number of optimizer calls",
		}),
		Attempts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: searchSubsystem,
			Name:      "attempts_total",
			Help:      "Total number of restart attempts across all calls",
		}),
		Improvements: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: searchSubsystem,
			Name:      "improvements_total",
			Help:      "Total number of edits that produced a new best utility",
		}),
		Gain: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: searchSubsystem,
			Name:      "gain",
			Help:      "Utility gained per optimizer call",
			Buckets:   []float64{0, 0.5, 1, 2, 5, 10, 20, 50, 100},
		}),
		BestUtility: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: searchSubsystem,
			Name:      "best_utility",
			Help:      "Utility of the object after the most recent call",
		}),
	}

	for _, m := range []prometheus.Collector{c.Calls, c.Attempts, c.Improvements, c.Gain, c.BestUtility} {
		if err := reg.Register(m); err != nil {
			return nil, fmt.Errorf("register search metric: %w", err)
		}
	}
	return c, nil
}

// Attempt counts a restart attempt.
func (c *Collector) Attempt(int) {
	c.Attempts.Inc()
}

// Improved counts a new best.
func (c *Collector) Improved(int, int, float64) {
	c.Improvements.Inc()
}

// Done records the outcome of one call.
func (c *Collector) Done(initial, best float64, _ int) {
	c.Calls.Inc()
	c.Gain.Observe(best - initial)
	c.BestUtility.Set(best)
}

// Summary is a point-in-time snapshot of the counters.
type Summary struct {
	Calls        float64
	Attempts     float64
	Improvements float64
	BestUtility  float64
}

// Summary reads the current metric values.
func (c *Collector) Summary() Summary {
	return Summary{
		Calls:        counterValue(c.Calls),
		Attempts:     counterValue(c.Attempts),
		Improvements: counterValue(c.Improvements),
		BestUtility:  gaugeValue(c.BestUtility),
	}
}

func counterValue(m prometheus.Metric) float64 {
	var pb dto.Metric
	if err := m.Write(&pb); err != nil {
		return 0
	}
	return pb.GetCounter().GetValue()
}

func gaugeValue(m prometheus.Metric) float64 {
	var pb dto.Metric
	if err := m.Write(&pb); err != nil {
		return 0
	}
	return pb.GetGauge().GetValue()
}
