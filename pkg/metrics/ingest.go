package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	ResultSuccess = "success"
	ResultInvalid = "invalid"
	ResultFailure = "failure"
)

// IngestMetrics records CSV ingestion outcomes.
type IngestMetrics struct {
	rows     prometheus.Counter
	requests *prometheus.CounterVec
}

// NewIngestMetrics registers the ingest metrics on the provided registerer.
func NewIngestMetrics(reg prometheus.Registerer) *IngestMetrics {
	if reg == nil {
		return &IngestMetrics{}
	}
	rows := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "adspend_ingested_rows_total",
		Help: "Spend records appended to the store.",
	})
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "adspend_ingest_requests_total",
		Help: "Ingest calls by result.",
	}, []string{"result"})
	reg.MustRegister(rows, requests)
	return &IngestMetrics{rows: rows, requests: requests}
}

// ObserveSuccess counts a completed ingest and the rows it appended.
func (m *IngestMetrics) ObserveSuccess(inserted int) {
	if m == nil || m.requests == nil {
		return
	}
	m.requests.WithLabelValues(ResultSuccess).Inc()
	if inserted > 0 {
		m.rows.Add(float64(inserted))
	}
}

// ObserveFailure counts a rejected or failed ingest.
func (m *IngestMetrics) ObserveFailure(result string) {
	if m == nil || m.requests == nil {
		return
	}
	m.requests.WithLabelValues(normalizeLabel(result)).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
