// Package observability exposes Prometheus metrics for the transformation
// pipeline: how many nodes were rewritten per component kind, how often
// deprecated markup is still seen, and how the transform cache behaves.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/espalier-ui/espalier/pkg/diag"
	"github.com/espalier-ui/espalier/pkg/transform"
)

// Metrics holds the collectors for the transformation pipeline.
type Metrics struct {
	Transforms   *prometheus.CounterVec
	Deprecations *prometheus.CounterVec
	CacheHits    prometheus.Counter
	CacheMisses  prometheus.Counter
	Documents    prometheus.Counter
}

// NewMetrics creates the pipeline collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Transforms: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "espalier",
			Name:      "transforms_total",
			Help:      "Nodes rewritten, by component kind.",
		}, []string{"kind"}),
		Deprecations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "espalier",
			Name:      "deprecations_total",
			Help:      "Deprecated attributes or slots encountered, by old name.",
		}, []string{"old"}),
		CacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "espalier",
			Name:      "cache_hits_total",
			Help:      "Transform cache hits.",
		}),
		CacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "espalier",
			Name:      "cache_misses_total",
			Help:      "Transform cache misses.",
		}),
		Documents: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "espalier",
			Name:      "documents_total",
			Help:      "Documents processed through the pipeline.",
		}),
	}

	reg.MustRegister(m.Transforms, m.Deprecations, m.CacheHits, m.CacheMisses, m.Documents)
	return m
}

// ObserveWalk records the per-kind counts returned by Engine.Walk.
func (m *Metrics) ObserveWalk(counts map[transform.Kind]int) {
	m.Documents.Inc()
	for kind, n := range counts {
		m.Transforms.WithLabelValues(kind.String()).Add(float64(n))
	}
}

// Sink returns a diag.Sink that counts every deprecation warning. Combine it
// with other sinks via diag.Tee when the warnings also need to reach the
// caller.
func (m *Metrics) Sink() diag.Sink {
	return metricSink{deprecations: m.Deprecations}
}

type metricSink struct {
	deprecations *prometheus.CounterVec
}

func (s metricSink) Deprecated(w diag.Warning) {
	s.deprecations.WithLabelValues(w.Old).Inc()
}
