package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector exports the service's Prometheus metrics
type Collector struct {
	reportsGenerated *prometheus.CounterVec
	reportDuration   prometheus.Histogram
	knowledgeLookups *prometheus.CounterVec
	reportsStored    prometheus.Gauge
	exportsTotal     *prometheus.CounterVec
}

// NewCollector creates the service metrics and registers them with the
// given registerer.
func NewCollector(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)
	return &Collector{
		reportsGenerated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "compliance_reports_generated_total",
				Help: "Total number of compliance reports generated",
			},
			[]string{"status"},
		),
		reportDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "compliance_report_generation_duration_seconds",
				Help:    "Report generation duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		knowledgeLookups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "compliance_knowledge_lookups_total",
				Help: "Total number of knowledge base lookups",
			},
			[]string{"outcome"},
		),
		reportsStored: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "compliance_reports_stored",
				Help: "Number of reports currently held in the store",
			},
		),
		exportsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "compliance_exports_total",
				Help: "Total number of report exports by format",
			},
			[]string{"format"},
		),
	}
}

// ReportGenerated records a completed generation run.
func (c *Collector) ReportGenerated(status string, duration time.Duration) {
	c.reportsGenerated.WithLabelValues(status).Inc()
	c.reportDuration.Observe(duration.Seconds())
}

// KnowledgeLookup records one knowledge base lookup outcome.
func (c *Collector) KnowledgeLookup(outcome string) {
	c.knowledgeLookups.WithLabelValues(outcome).Inc()
}

// SetReportsStored updates the stored-report gauge.
func (c *Collector) SetReportsStored(count int) {
	c.reportsStored.Set(float64(count))
}

// ExportServed records one report export.
func (c *Collector) ExportServed(format string) {
	c.exportsTotal.WithLabelValues(format).Inc()
}
