// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"crowdfund/internal/core/domain"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "crowdfund"

// Gateway records ledger gateway calls. A nil *Gateway is valid and records
// nothing.
type Gateway struct {
	calls    *prometheus.CounterVec
	duration *prometheus.HistogramVec
	dropped  prometheus.Counter
}

// NewGateway registers the gateway collectors with reg.
func NewGateway(reg prometheus.Registerer) *Gateway {
	factory := promauto.With(reg)
	return &Gateway{
		calls: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ledger_calls_total",
			Help:      "number of ledger node calls by operation and outcome",
		}, []string{"operation", "outcome"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "ledger_call_duration_seconds",
			Help:      "latency of ledger node calls",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		dropped: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "malformed_list_elements_total",
			Help:      "number of campaign list elements dropped as malformed",
		}),
	}
}

// Observe records one call of operation that started at start.
func (g *Gateway) Observe(operation string, start time.Time, err error) {
	if g == nil {
		return
	}
	outcome := "ok"
	if f := domain.Classify(err); f != nil {
		outcome = string(f.Kind)
	}
	g.calls.WithLabelValues(operation, outcome).Inc()
	g.duration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

// Dropped counts n malformed list elements.
func (g *Gateway) Dropped(n int) {
	if g == nil || n <= 0 {
		return
	}
	g.dropped.Add(float64(n))
}
