package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Journal metrics
	EntriesCreated prometheus.Counter
	EntriesUpdated prometheus.Counter
	EntriesDeleted prometheus.Counter
	EntryErrors    *prometheus.CounterVec

	// Report metrics
	ReportBuilds   *prometheus.CounterVec
	ReportDuration *prometheus.HistogramVec
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		EntriesCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "finova_journal_entries_created_total",
			Help: "Total number of journal entries created",
		}),
		EntriesUpdated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "finova_journal_entries_updated_total",
			Help: "Total number of journal entries replaced in place",
		}),
		EntriesDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "finova_journal_entries_deleted_total",
			Help: "Total number of journal entries deleted",
		}),
		EntryErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finova_journal_entry_errors_total",
				Help: "Total number of rejected journal entries by reason",
			},
			[]string{"reason"},
		),

		ReportBuilds: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finova_report_builds_total",
				Help: "Total number of report builds by report",
			},
			[]string{"report"},
		),
		ReportDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "finova_report_build_duration_seconds",
				Help:    "Duration of report builds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"report"},
		),
	}
}
