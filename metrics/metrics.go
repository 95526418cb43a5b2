// Package metrics exposes search and import activity as Prometheus metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/poiesic/talentq/core"
	"github.com/poiesic/talentq/ingestion"
	"github.com/poiesic/talentq/search"
)

const namespace = "talentq"

// Search modes used as the "mode" label.
const (
	ModeBoolean  = "boolean"
	ModeFallback = "fallback"
)

// Monitor records search and import activity. It implements
// search.SearchMonitor and ingestion.ImportMonitor and is safe for concurrent
// use.
type Monitor struct {
	searchesTotal       *prometheus.CounterVec
	candidatesEvaluated prometheus.Counter
	candidateMatches    prometheus.Counter
	searchDuration      prometheus.Histogram
	importFilesTotal    prometheus.Counter
	profilesImported    prometheus.Counter
	profilesSkipped     prometheus.Counter
}

var (
	_ search.SearchMonitor    = (*Monitor)(nil)
	_ ingestion.ImportMonitor = (*Monitor)(nil)
)

// NewMonitor creates a Monitor and registers its collectors on reg.
func NewMonitor(reg prometheus.Registerer) (*Monitor, error) {
	m := &Monitor{
		searchesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "searches_total",
				Help:      "Total number of searches by evaluation mode",
			},
			[]string{"mode"},
		),
		candidatesEvaluated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "candidates_evaluated_total",
			Help:      "Total number of candidate profiles evaluated against a query",
		}),
		candidateMatches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "candidate_matches_total",
			Help:      "Total number of candidate profiles that satisfied a query",
		}),
		searchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_duration_seconds",
			Help:      "Search duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}),
		importFilesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "import_files_total",
			Help:      "Total number of profile documents imported",
		}),
		profilesImported: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "profiles_imported_total",
			Help:      "Total number of profiles stored by imports",
		}),
		profilesSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "profiles_skipped_total",
			Help:      "Total number of invalid profiles skipped by imports",
		}),
	}

	for _, c := range []prometheus.Collector{
		m.searchesTotal,
		m.candidatesEvaluated,
		m.candidateMatches,
		m.searchDuration,
		m.importFilesTotal,
		m.profilesImported,
		m.profilesSkipped,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Monitor) Start(_ string) {}

func (m *Monitor) Compiled(fallback bool) {
	mode := ModeBoolean
	if fallback {
		mode = ModeFallback
	}
	m.searchesTotal.WithLabelValues(mode).Inc()
}

func (m *Monitor) Evaluated(_ core.ID, matched bool) {
	m.candidatesEvaluated.Inc()
	if matched {
		m.candidateMatches.Inc()
	}
}

func (m *Monitor) Finish(_ []*core.Match, elapsed time.Duration) {
	m.searchDuration.Observe(elapsed.Seconds())
}

// FileImported records the outcome of importing one document.
func (m *Monitor) FileImported(_ string, imported, skipped int) {
	m.importFilesTotal.Inc()
	m.profilesImported.Add(float64(imported))
	m.profilesSkipped.Add(float64(skipped))
}
