package bigint

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/agbru/bigint/internal/metrics"
)

var collector = metrics.NewCollector()

// RegisterMetrics registers the package counters with reg:
//
//	bigint_modsqrt_strategy_total{strategy}
//	bigint_operation_failures_total{op, kind}
//
// Calling it again with the same registry is a no-op.
func RegisterMetrics(reg prometheus.Registerer) error {
	return collector.Register(reg)
}
