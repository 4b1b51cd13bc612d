// Package metrics exposes prometheus counters describing how the engine's
// number-theory routines behave: which square-root strategy a modulus
// selected and which operations failed with which error kind.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "bigint"

// Collector groups the engine's counters. The zero value is not usable; use
// NewCollector.
type Collector struct {
	sqrtStrategy *prometheus.CounterVec
	failures     *prometheus.CounterVec
}

// NewCollector creates unregistered counters.
func NewCollector() *Collector {
	return &Collector{
		sqrtStrategy: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "modsqrt_strategy_total",
			Help:      "Modular square roots computed, by strategy.",
		}, []string{"strategy"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operation_failures_total",
			Help:      "Operations that returned an error, by operation and error kind.",
		}, []string{"op", "kind"}),
	}
}

// Register registers the counters with reg. Registering the same collector
// twice with one registry is not an error.
func (c *Collector) Register(reg prometheus.Registerer) error {
	for _, cv := range []*prometheus.CounterVec{c.sqrtStrategy, c.failures} {
		if err := reg.Register(cv); err != nil {
			var are prometheus.AlreadyRegisteredError
			if errors.As(err, &are) && are.ExistingCollector == cv {
				continue
			}
			return err
		}
	}
	return nil
}

// ObserveSqrtStrategy counts one square root computed with strategy.
func (c *Collector) ObserveSqrtStrategy(strategy string) {
	c.sqrtStrategy.WithLabelValues(strategy).Inc()
}

// ObserveFailure counts one failed operation.
func (c *Collector) ObserveFailure(op, kind string) {
	c.failures.WithLabelValues(op, kind).Inc()
}

// SqrtStrategyCounter returns the counter for one strategy label.
func (c *Collector) SqrtStrategyCounter(strategy string) prometheus.Counter {
	return c.sqrtStrategy.WithLabelValues(strategy)
}

// FailureCounter returns the counter for one operation and kind.
func (c *Collector) FailureCounter(op, kind string) prometheus.Counter {
	return c.failures.WithLabelValues(op, kind)
}
