package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds Prometheus collectors for the contract pipeline.
type Metrics struct {
	ExtractionsTotal     *prometheus.CounterVec // result: ok, error, rejected, superseded
	ExtractionDurationMs prometheus.Histogram
	ConfirmsTotal        *prometheus.CounterVec // result: ok, rejected
	ContractsRendered    prometheus.Counter
	ExportsTotal         *prometheus.CounterVec // format x result
}

// New registers the pipeline collectors with reg and returns them. The
// daemon passes prometheus.DefaultRegisterer; tests pass a fresh registry.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ExtractionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "contratos_extractions_total",
			Help: "Extraction submissions by outcome",
		}, []string{"result"}),
		ExtractionDurationMs: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "contratos_extraction_duration_ms",
			Help:    "Wall time of provider extraction calls",
			Buckets: []float64{250, 500, 1000, 2500, 5000, 10000, 30000, 60000},
		}),
		ConfirmsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "contratos_confirms_total",
			Help: "Verification confirms by outcome",
		}, []string{"result"}),
		ContractsRendered: factory.NewCounter(prometheus.CounterOpts{
			Name: "contratos_contracts_rendered_total",
			Help: "Contracts successfully merged from a finalized snapshot",
		}),
		ExportsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "contratos_exports_total",
			Help: "Export attempts by format and outcome",
		}, []string{"format", "result"}),
	}
}
