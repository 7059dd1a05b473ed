package obs

import (
	"errors"
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	domainOnce sync.Once

	// DocumentsCreatedTotal counts invoice editing sessions opened.
	DocumentsCreatedTotal *prometheus.CounterVec
	// RowRecomputeTotal counts line-item recomputations triggered by edits.
	RowRecomputeTotal prometheus.Counter
	// PreviewRenderTotal counts preview render outcomes.
	PreviewRenderTotal *prometheus.CounterVec
	// GenerateTotal counts document-generation requests by outcome.
	GenerateTotal *prometheus.CounterVec
	// GenerateLatency records generation round-trip latency in milliseconds.
	GenerateLatency prometheus.Histogram
)

// MustRegisterDomainMetrics initialises and registers domain-specific Prometheus collectors.
func MustRegisterDomainMetrics(namespace string, reg prometheus.Registerer) {
	domainOnce.Do(func() {
		if reg == nil {
			reg = prometheus.DefaultRegisterer
		}
		DocumentsCreatedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "documents_created_total",
			Help:      "Count of invoice documents created, by seed mode.",
		}, []string{"seeded"})
		RowRecomputeTotal = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "row_recompute_total",
			Help:      "Total number of line-item recomputations.",
		})
		PreviewRenderTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "preview_render_total",
			Help:      "Count of preview render outcomes.",
		}, []string{"result"})
		GenerateTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generate_total",
			Help:      "Count of document-generation attempts by outcome.",
		}, []string{"result"})
		GenerateLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "generate_duration_ms",
			Help:      "Latency of generation service round trips in milliseconds.",
			Buckets:   []float64{50, 100, 250, 500, 1000, 2500, 5000, 10000},
		})

		mustRegisterCollector(reg, DocumentsCreatedTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(*prometheus.CounterVec); ok {
				DocumentsCreatedTotal = v
			}
		})
		mustRegisterCollector(reg, RowRecomputeTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(prometheus.Counter); ok {
				RowRecomputeTotal = v
			}
		})
		mustRegisterCollector(reg, PreviewRenderTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(*prometheus.CounterVec); ok {
				PreviewRenderTotal = v
			}
		})
		mustRegisterCollector(reg, GenerateTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(*prometheus.CounterVec); ok {
				GenerateTotal = v
			}
		})
		mustRegisterCollector(reg, GenerateLatency, func(existing prometheus.Collector) {
			if v, ok := existing.(prometheus.Histogram); ok {
				GenerateLatency = v
			}
		})
	})
}

func mustRegisterCollector(reg prometheus.Registerer, collector prometheus.Collector, reuse func(prometheus.Collector)) {
	if err := reg.Register(collector); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if reuse != nil {
				reuse(are.ExistingCollector)
			}
			return
		}
		panic(fmt.Errorf("register domain metric: %w", err))
	}
}
